package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"video-streamer/internal/domain/dto"
	"video-streamer/internal/domain/repositories"
	"video-streamer/pkg/errors"

	"github.com/go-redis/redis/v8"
)

const metadataCacheTTL = 10 * time.Minute

type VideoService interface {
	// Process, kaynağı segmentlere böler ve kümeyi atomik yayınlar.
	// Aynı video için eşzamanlı ikinci çağrı already_processing ile reddedilir
	// (deterministik politika, bkz. DESIGN.md). Tamamlanmış bir işlemenin
	// tekrarı idempotent overwrite'tır.
	Process(videoID string) (*dto.SegmentSet, error)
	Metadata(videoID string) (*dto.VideoMetadataDTO, error)
	ResolveSource(videoID string) (string, error)
	ResolveSegment(videoID string, index int) (string, error)
	ListSegments(videoID string) (*dto.SegmentSet, error)
	RemoveSegments(videoID string) error
}

type videoService struct {
	storage    repositories.VideoStorage
	segments   repositories.SegmentRepository
	processor  repositories.VideoProcessor
	rdb        *redis.Client // opsiyonel probe cache, nil olabilir
	segSeconds int
	inflight   sync.Map // video başına en fazla bir segmentasyon
}

func NewVideoService(
	storage repositories.VideoStorage,
	segments repositories.SegmentRepository,
	processor repositories.VideoProcessor,
	rdb *redis.Client,
	segSeconds int,
) VideoService {
	return &videoService{
		storage:    storage,
		segments:   segments,
		processor:  processor,
		rdb:        rdb,
		segSeconds: segSeconds,
	}
}

func (s *videoService) Process(videoID string) (*dto.SegmentSet, error) {
	srcPath, err := s.storage.ResolveSource(videoID)
	if err != nil {
		return nil, err
	}

	if _, loaded := s.inflight.LoadOrStore(videoID, struct{}{}); loaded {
		return nil, errors.ErrAlreadyProcessing(nil)
	}
	defer s.inflight.Delete(videoID)

	// Transcoder'ın hiç tanımadığı girdiyi işlemeye kalkmadan yakala (422)
	if _, err := s.processor.Probe(srcPath); err != nil {
		return nil, errors.ErrUnsupportedMedia(err)
	}

	workDir, err := s.segments.WorkDir(videoID)
	if err != nil {
		return nil, errors.ErrInternal(err)
	}

	log.Printf("Segmentasyon başlatılıyor: video=%s, hedef süre=%ds", videoID, s.segSeconds)
	if err := s.processor.Segment(srcPath, workDir, s.segSeconds); err != nil {
		if rmErr := os.RemoveAll(workDir); rmErr != nil {
			log.Printf("UYARI: Yarım çıktı dizini silinemedi: %s, error: %v", workDir, rmErr)
		}
		return nil, errors.ErrProcessingFailed(err)
	}

	set, err := s.segments.Publish(videoID, workDir, s.segSeconds)
	if err != nil {
		if rmErr := os.RemoveAll(workDir); rmErr != nil && !os.IsNotExist(rmErr) {
			log.Printf("UYARI: Çıktı dizini silinemedi: %s, error: %v", workDir, rmErr)
		}
		return nil, errors.ErrProcessingFailed(err)
	}

	log.Printf("Segmentasyon tamamlandı: video=%s, toplam=%d", videoID, set.TotalSegments())
	return set, nil
}

func (s *videoService) Metadata(videoID string) (*dto.VideoMetadataDTO, error) {
	srcPath, err := s.storage.ResolveSource(videoID)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(srcPath)
	if err != nil {
		return nil, errors.ErrInternal(err)
	}

	// Cache anahtarı mtime içerir, yeniden upload edilen dosya eski kaydı görmez
	cacheKey := fmt.Sprintf("metadata:%s:%d", videoID, info.ModTime().Unix())
	if cached := s.cacheGet(cacheKey); cached != nil {
		return cached, nil
	}

	meta, err := s.processor.Probe(srcPath)
	if err != nil {
		return nil, errors.ErrProbeFailed(err)
	}

	s.cacheSet(cacheKey, meta)
	return meta, nil
}

func (s *videoService) ResolveSource(videoID string) (string, error) {
	return s.storage.ResolveSource(videoID)
}

func (s *videoService) ResolveSegment(videoID string, index int) (string, error) {
	return s.segments.ResolveSegment(videoID, index)
}

func (s *videoService) ListSegments(videoID string) (*dto.SegmentSet, error) {
	return s.segments.ListSegments(videoID)
}

func (s *videoService) RemoveSegments(videoID string) error {
	return s.segments.RemoveSegments(videoID)
}

// Redis yoksa ya da erişilemiyorsa cache sessizce devre dışı kalır
func (s *videoService) cacheGet(key string) *dto.VideoMetadataDTO {
	if s.rdb == nil {
		return nil
	}

	val, err := s.rdb.Get(context.Background(), key).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("UYARI: Metadata cache okunamadı: %v", err)
		}
		return nil
	}

	var meta dto.VideoMetadataDTO
	if err := json.Unmarshal([]byte(val), &meta); err != nil {
		return nil
	}
	return &meta
}

func (s *videoService) cacheSet(key string, meta *dto.VideoMetadataDTO) {
	if s.rdb == nil {
		return
	}

	data, err := json.Marshal(meta)
	if err != nil {
		return
	}
	if err := s.rdb.Set(context.Background(), key, data, metadataCacheTTL).Err(); err != nil {
		log.Printf("UYARI: Metadata cache yazılamadı: %v", err)
	}
}
