package repositories

import "video-streamer/internal/domain/dto"

// Harici transcode aracının (ffmpeg/ffprobe) sınırı.
type VideoProcessor interface {
	// Segment, kaynağı sabit süreli, sıfır dolgulu isimli segment dosyalarına böler.
	Segment(inputPath, outputDir string, segmentSeconds int) error

	// Probe, kaynak dosyanın format bilgisini okur. Salt okunurdur,
	// eşzamanlı ve tekrarlı çağrılması güvenlidir.
	Probe(inputPath string) (*dto.VideoMetadataDTO, error)

	// Thumbnail, timePosition anından tek kare çıkarır.
	Thumbnail(inputPath, outputPath, timePosition string) error
}
