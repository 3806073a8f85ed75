package httprange

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Window, totalSize uzunluğundaki bir kaynak içinde inclusive byte aralığı.
// 0 <= Start <= End < Total invariantı Resolve tarafından garanti edilir.
type Window struct {
	Start int64
	End   int64
	Total int64
}

func (w Window) Length() int64 {
	return w.End - w.Start + 1
}

// ContentRange, 206 yanıtındaki Content-Range başlık değerini üretir.
func (w Window) ContentRange() string {
	return fmt.Sprintf("bytes %d-%d/%d", w.Start, w.End, w.Total)
}

// UnsatisfiableContentRange, 416 yanıtındaki "bytes */<total>" değerini üretir.
func UnsatisfiableContentRange(totalSize int64) string {
	return fmt.Sprintf("bytes */%d", totalSize)
}

var (
	// ErrMalformed: başlık "bytes=N-M" veya "bytes=N-" biçiminde değil.
	// Bilerek reddediyoruz, full resource'a sessizce düşmek client hatalarını gizler.
	ErrMalformed = errors.New("malformed range header")
	// ErrUnsatisfiable: biçim doğru ama aralık kaynak sınırlarının dışında.
	ErrUnsatisfiable = errors.New("unsatisfiable range")
)

// Resolve, Range başlığını kaynak boyutuna karşı çözer.
// Başlık boşsa (nil, nil) döner: full resource, HTTP 200.
// Multi-range istekleri ("bytes=0-10,20-30") desteklenmiyor, malformed sayılır.
func Resolve(header string, totalSize int64) (*Window, error) {
	if header == "" {
		return nil, nil
	}

	spec, ok := strings.CutPrefix(header, "bytes=")
	if !ok {
		return nil, ErrMalformed
	}
	if strings.Contains(spec, ",") {
		return nil, ErrMalformed
	}

	startStr, endStr, ok := strings.Cut(spec, "-")
	if !ok || startStr == "" {
		return nil, ErrMalformed
	}

	start, err := strconv.ParseInt(startStr, 10, 64)
	if err != nil || start < 0 {
		return nil, ErrMalformed
	}

	end := totalSize - 1
	if endStr != "" {
		end, err = strconv.ParseInt(endStr, 10, 64)
		if err != nil || end < 0 {
			return nil, ErrMalformed
		}
	}

	if start > end || end >= totalSize {
		return nil, ErrUnsatisfiable
	}

	return &Window{Start: start, End: end, Total: totalSize}, nil
}
