package usecases

import (
	"fmt"
	"log"
	"mime/multipart"
	"path/filepath"

	"video-streamer/internal/domain/dto"
	"video-streamer/internal/domain/repositories"
	"video-streamer/internal/infrastructure/queue"
	"video-streamer/internal/pkg/fileutils"
	consts "video-streamer/pkg/constants"
	"video-streamer/pkg/errors"
	fl "video-streamer/pkg/file"

	"github.com/google/uuid"
)

type UploadService interface {
	UploadVideo(fileHeader *multipart.FileHeader, fileHash string) (*dto.UploadVideoResponse, error)
}

type uploadService struct {
	storage repositories.VideoStorage
	thumbs  *queue.WorkerPool // nil olabilir, thumbnail üretimi opsiyonel
}

func NewUploadService(storage repositories.VideoStorage, thumbs *queue.WorkerPool) UploadService {
	return &uploadService{
		storage: storage,
		thumbs:  thumbs,
	}
}

func (s *uploadService) UploadVideo(fileHeader *multipart.FileHeader, fileHash string) (*dto.UploadVideoResponse, error) {
	safeFilename := filepath.Base(fileHeader.Filename)

	if !fl.IsVideoFile(safeFilename) {
		return nil, errors.ErrUnsupportedMedia(fmt.Errorf("desteklenmeyen uzantı: %s", filepath.Ext(safeFilename)))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.ErrFileCantOpen(err)
	}
	defer file.Close()

	// Her upload yeni bir id alır, mevcut bir video asla üzerine yazılmaz
	videoID := uuid.New().String()

	savedPath, err := s.storage.SaveSource(file, videoID)
	if err != nil {
		return nil, errors.ErrInternal(err)
	}

	// Client hash gönderdiyse doğrula
	if err := fileutils.ValidateFileHash(savedPath, fileHash); err != nil {
		if delErr := s.storage.DeleteSource(videoID); delErr != nil {
			log.Printf("UYARI: Bozuk upload silinemedi: %s, error: %v", videoID, delErr)
		}
		return nil, errors.ErrInvalidHash(err)
	}

	log.Printf("Video yüklendi: id=%s, dosya=%s, boyut=%d", videoID, safeFilename, fileHeader.Size)

	if s.thumbs != nil {
		s.thumbs.AddJob(queue.Job{
			VideoID:    videoID,
			Type:       queue.JobThumbnail,
			SourcePath: savedPath,
		})
	}

	return &dto.UploadVideoResponse{
		Status:    consts.StatusOK,
		VideoID:   videoID,
		Filename:  safeFilename,
		SizeBytes: fileHeader.Size,
	}, nil
}
