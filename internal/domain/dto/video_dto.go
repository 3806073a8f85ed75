package dto

// Kaynak dosyadan ffprobe ile okunan format bilgisi
type VideoMetadataDTO struct {
	DurationSeconds float64 `json:"duration_seconds"`
	SizeBytes       int64   `json:"size_bytes"`
	Bitrate         int64   `json:"bitrate"`
	ContainerFormat string  `json:"container_format"`
}

type UploadVideoResponse struct {
	Status    string `json:"status"`
	VideoID   string `json:"video_id"`
	Filename  string `json:"filename"`
	SizeBytes int64  `json:"size_bytes"`
}

type ProcessVideoResponse struct {
	Success bool              `json:"success"`
	Data    *ProcessResultDTO `json:"data"`
}

type ProcessResultDTO struct {
	VideoID         string   `json:"video_id"`
	TotalSegments   int      `json:"total_segments"`
	SegmentDuration int      `json:"segment_duration"`
	Segments        []string `json:"segments"`
}

type MetadataResponse struct {
	Success bool              `json:"success"`
	Data    *VideoMetadataDTO `json:"data"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
