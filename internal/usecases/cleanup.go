package usecases

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type CleanupService interface {
	CleanupStaleWorkDirs(maxAge time.Duration) error
}

// Çöken ya da yarıda kesilen segmentasyonlar segments kökünde
// "<id>.tmp-<nano>" dizinleri bırakır, cron bunları süpürür.
type cleanupService struct {
	segmentsDir string
}

func NewCleanupService(segmentsDir string) CleanupService {
	return &cleanupService{
		segmentsDir: segmentsDir,
	}
}

func (s *cleanupService) CleanupStaleWorkDirs(maxAge time.Duration) error {
	entries, err := os.ReadDir(s.segmentsDir)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, entry := range entries {
		if !entry.IsDir() || !strings.Contains(entry.Name(), ".tmp-") {
			continue
		}

		dirPath := filepath.Join(s.segmentsDir, entry.Name())
		info, err := os.Stat(dirPath)
		if err != nil {
			log.Printf("UYARI: Stat alınamadı: %s, error: %v", dirPath, err)
			continue
		}

		if now.Sub(info.ModTime()) > maxAge {
			if err := os.RemoveAll(dirPath); err != nil {
				log.Printf("UYARI: Eski çalışma dizini silinemedi: %s, error: %v", dirPath, err)
				continue
			}
			log.Printf("Removed stale work dir: %s", dirPath)
		}
	}
	return nil
}
