package queue

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"video-streamer/internal/domain/repositories"

	"github.com/disintegration/imaging"
)

type Worker struct {
	ID        int        // worker id
	JobChan   <-chan Job // iş kuyruğu
	Wg        *sync.WaitGroup
	Processor repositories.VideoProcessor
	ThumbsDir string
}

func (w *Worker) Start(ctx context.Context) { // worker başlatma fonksiyonu
	go func() {
		defer w.Wg.Done()
		for {
			select {
			case job, ok := <-w.JobChan: //channeldan iş alınır
				if !ok {
					log.Printf("Worker %d: Job channel closed", w.ID)
					return
				}
				select {
				case <-ctx.Done():
					log.Printf("Worker %d: job %s cancelled", w.ID, job.VideoID)
					continue
				default:
					w.processJob(job)
				}
			case <-ctx.Done():
				log.Printf("Worker %d: Stopping due to context cancellation", w.ID)
				return
			}
		}
	}()
}

func (w *Worker) processJob(job Job) {
	log.Printf("Worker %d: Processing job %s for video %s", w.ID, job.Type, job.VideoID)

	var err error

	switch job.Type {
	case JobThumbnail:
		err = w.processThumbnail(job)
	default:
		err = fmt.Errorf("unknown job type: %s", job.Type)
	}

	if err != nil {
		log.Printf("Worker %d: Job %s failed: %v", w.ID, job.Type, err)
	} else {
		log.Printf("Worker %d: Job %s succeeded", w.ID, job.Type)
	}
}

// Kaynaktan 1. saniyede kare çıkarır, 320px genişliğe küçültüp
// <thumbsDir>/<videoID>.jpg olarak kaydeder. Hata sadece loglanır,
// thumbnail üretimi upload akışını asla bloklamaz.
func (w *Worker) processThumbnail(job Job) error {
	if job.SourcePath == "" {
		return fmt.Errorf("source path is empty")
	}

	framePath := filepath.Join(w.ThumbsDir, job.VideoID+".frame.jpg")
	finalPath := filepath.Join(w.ThumbsDir, job.VideoID+".jpg")

	if err := w.Processor.Thumbnail(job.SourcePath, framePath, "00:00:01"); err != nil {
		return err
	}
	defer func() {
		if err := os.Remove(framePath); err != nil && !os.IsNotExist(err) {
			log.Printf("UYARI: Ara kare dosyası silinemedi: %s, error: %v", framePath, err)
		}
	}()

	img, err := imaging.Open(framePath)
	if err != nil {
		return fmt.Errorf("kare açılamadı: %w", err)
	}

	resized := imaging.Resize(img, 320, 0, imaging.Lanczos)
	if err := imaging.Save(resized, finalPath); err != nil {
		return fmt.Errorf("thumbnail kaydedilemedi: %w", err)
	}

	return nil
}
