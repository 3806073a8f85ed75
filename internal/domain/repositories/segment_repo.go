package repositories

import "video-streamer/internal/domain/dto"

type SegmentRepository interface {
	// ResolveSegment, (videoID, index) çiftini okunabilir segment yoluna çözer.
	// Küme yoksa da index aralık dışındaysa da segment_not_found döner.
	ResolveSegment(videoID string, index int) (string, error)

	ListSegments(videoID string) (*dto.SegmentSet, error)

	// RemoveSegments idempotenttir, küme yoksa hata dönmez.
	RemoveSegments(videoID string) error

	// WorkDir, bu video için izole bir geçici çıktı dizini oluşturur.
	WorkDir(videoID string) (string, error)

	// Publish, workDir içindeki segment dosyalarını numaralandırır, manifest yazar
	// ve kümeyi tek görünür adımda yayınlar. Okuyucular asla yarım küme görmez.
	Publish(videoID, workDir string, segmentDuration int) (*dto.SegmentSet, error)
}
