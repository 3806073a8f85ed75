package dto

import "time"

// Tek bir segment dosyası. Index, segments dizisindeki konumuyla aynıdır.
type SegmentRef struct {
	Index    int    `json:"index"`
	Filename string `json:"filename"`
	Path     string `json:"-"`
}

// Bir videonun üretilmiş segment kümesi. Publish sonrası immutable,
// yeniden işleme kümeyi tek adımda yenisiyle değiştirir.
type SegmentSet struct {
	VideoID         string       `json:"video_id"`
	SegmentDuration int          `json:"segment_duration"`
	Segments        []SegmentRef `json:"segments"`
	CreatedAt       time.Time    `json:"created_at"`
}

func (s *SegmentSet) TotalSegments() int {
	return len(s.Segments)
}

func (s *SegmentSet) Filenames() []string {
	names := make([]string, 0, len(s.Segments))
	for _, seg := range s.Segments {
		names = append(names, seg.Filename)
	}
	return names
}

// segments dizini içinde manifest.json olarak saklanan kayıt.
// Restart sonrası rehydrate lexical sıralamaya tek başına güvenmesin diye yazılır.
type SegmentManifest struct {
	VideoID         string    `json:"video_id"`
	SegmentDuration int       `json:"segment_duration"`
	TotalSegments   int       `json:"total_segments"`
	Files           []string  `json:"files"`
	CreatedAt       time.Time `json:"created_at"`
}
