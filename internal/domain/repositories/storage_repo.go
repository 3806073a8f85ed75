package repositories

import "mime/multipart"

type VideoStorage interface {
	// SaveSource, yüklenen dosyayı videoID altında saklar ve tam yolunu döner.
	SaveSource(file multipart.File, videoID string) (string, error)

	// ResolveSource, kaynak dosya yoksa video_not_found döner.
	ResolveSource(videoID string) (string, error)

	DeleteSource(videoID string) error
}
