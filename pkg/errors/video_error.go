package errors

import "fmt"

type VideoError struct {
	Code    string
	Message string
	Err     error
}

func (e *VideoError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *VideoError) Unwrap() error {
	return e.Err
}

var (
	ErrVideoNotFound = func(err error) *VideoError {
		return &VideoError{Code: "video_not_found", Message: "Video bulunamadı", Err: err}
	}
	ErrSegmentNotFound = func(err error) *VideoError {
		return &VideoError{Code: "segment_not_found", Message: "Segment bulunamadı", Err: err}
	}
	ErrInvalidSegmentIndex = func(err error) *VideoError {
		return &VideoError{Code: "invalid_segment_index", Message: "Geçersiz segment index", Err: err}
	}
	ErrMalformedRange = func(err error) *VideoError {
		return &VideoError{Code: "malformed_range", Message: "Geçersiz Range başlığı", Err: err}
	}
	ErrUnsatisfiableRange = func(err error) *VideoError {
		return &VideoError{Code: "unsatisfiable_range", Message: "Range karşılanamıyor", Err: err}
	}
	ErrAlreadyProcessing = func(err error) *VideoError {
		return &VideoError{Code: "already_processing", Message: "Video zaten işleniyor", Err: err}
	}
	ErrProcessingFailed = func(err error) *VideoError {
		return &VideoError{Code: "processing_failed", Message: "Video işlenemedi", Err: err}
	}
	ErrUnsupportedMedia = func(err error) *VideoError {
		return &VideoError{Code: "unsupported_media", Message: "Desteklenmeyen medya formatı", Err: err}
	}
	ErrProbeFailed = func(err error) *VideoError {
		return &VideoError{Code: "probe_failed", Message: "Metadata okunamadı", Err: err}
	}
	ErrFileCantOpen = func(err error) *VideoError {
		return &VideoError{Code: "file_cant_open", Message: "Dosya açılamadı", Err: err}
	}
	ErrInvalidHash = func(err error) *VideoError {
		return &VideoError{Code: "invalid_hash", Message: "Hash doğrulaması başarısız", Err: err}
	}
	ErrInternal = func(err error) *VideoError {
		return &VideoError{Code: "internal_error", Message: "Sunucu hatası", Err: err}
	}
)
