package repositories

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"video-streamer/internal/domain/dto"
	"video-streamer/pkg/constants"
	"video-streamer/pkg/errors"
	"video-streamer/pkg/helper"
)

// SegmentRepository, video id -> SegmentSet kaydını tutar.
// Kümeler bellekte RWMutex korumalı map'te, diskte ise
// <segmentsDir>/<videoID>/ altında sıfır dolgulu dosyalar + manifest.json olarak durur.
// Publish tek kilit altında map swap yapar: okuyucular ya eski ya yeni kümeyi görür.
type SegmentRepository struct {
	mu          sync.RWMutex
	segmentsDir string
	segSeconds  int // manifest'i olmayan eski dizinler için varsayılan süre
	sets        map[string]*dto.SegmentSet
}

func NewSegmentRepository(segmentsDir string, segmentSeconds int) *SegmentRepository {
	return &SegmentRepository{
		segmentsDir: segmentsDir,
		segSeconds:  segmentSeconds,
		sets:        make(map[string]*dto.SegmentSet),
	}
}

func (r *SegmentRepository) segmentDir(videoID string) string {
	return filepath.Join(r.segmentsDir, videoID)
}

func (r *SegmentRepository) ResolveSegment(videoID string, index int) (string, error) {
	if index < 0 {
		return "", errors.ErrInvalidSegmentIndex(nil)
	}

	set, err := r.getSet(videoID)
	if err != nil {
		return "", err
	}
	if index >= len(set.Segments) {
		// Aralık dışı da "henüz üretilmedi" de aynı sınıf: not found
		return "", errors.ErrSegmentNotFound(nil)
	}
	return set.Segments[index].Path, nil
}

func (r *SegmentRepository) ListSegments(videoID string) (*dto.SegmentSet, error) {
	return r.getSet(videoID)
}

func (r *SegmentRepository) RemoveSegments(videoID string) error {
	if !helper.IsSafeVideoID(videoID) {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sets, videoID)
	if err := os.RemoveAll(r.segmentDir(videoID)); err != nil {
		return errors.ErrInternal(err)
	}
	return nil
}

// WorkDir, aynı segments kökü altında videoya özel geçici çıktı dizini açar.
// Nihai dizinle aynı dosya sisteminde olması rename'in ucuz kalması için gerekli.
func (r *SegmentRepository) WorkDir(videoID string) (string, error) {
	dir := fmt.Sprintf("%s.tmp-%d", r.segmentDir(videoID), time.Now().UnixNano())
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("geçici klasör oluşturulamadı: %w", err)
	}
	return dir, nil
}

func (r *SegmentRepository) Publish(videoID, workDir string, segmentDuration int) (*dto.SegmentSet, error) {
	files, err := enumerateSegmentFiles(workDir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("çıktı dizininde segment yok: %s", workDir)
	}

	finalDir := r.segmentDir(videoID)

	manifest := dto.SegmentManifest{
		VideoID:         videoID,
		SegmentDuration: segmentDuration,
		TotalSegments:   len(files),
		Files:           files,
		CreatedAt:       time.Now(),
	}
	if err := writeManifest(workDir, &manifest); err != nil {
		return nil, err
	}

	set := buildSet(videoID, finalDir, segmentDuration, files, manifest.CreatedAt)

	// Tek görünür adım: dizin değişimi + map swap aynı kilit altında.
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.RemoveAll(finalDir); err != nil {
		return nil, fmt.Errorf("eski segmentler kaldırılamadı: %w", err)
	}
	if err := os.Rename(workDir, finalDir); err != nil {
		return nil, fmt.Errorf("segment dizini taşınamadı: %w", err)
	}
	r.sets[videoID] = set

	return set, nil
}

// getSet önce map'e bakar, yoksa diskten rehydrate dener (restart sonrası durum).
func (r *SegmentRepository) getSet(videoID string) (*dto.SegmentSet, error) {
	if !helper.IsSafeVideoID(videoID) {
		return nil, errors.ErrSegmentNotFound(nil)
	}

	r.mu.RLock()
	set, ok := r.sets[videoID]
	r.mu.RUnlock()
	if ok {
		return set, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Kilidi beklerken başka goroutine yüklemiş olabilir
	if set, ok := r.sets[videoID]; ok {
		return set, nil
	}

	set, err := r.loadFromDisk(videoID)
	if err != nil {
		return nil, err
	}
	r.sets[videoID] = set
	return set, nil
}

func (r *SegmentRepository) loadFromDisk(videoID string) (*dto.SegmentSet, error) {
	dir := r.segmentDir(videoID)
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ErrSegmentNotFound(err)
		}
		return nil, errors.ErrInternal(err)
	}

	// Önce manifest, dizin taraması sadece yedek yol
	if manifest, err := readManifest(dir); err == nil {
		return buildSet(videoID, dir, manifest.SegmentDuration, manifest.Files, manifest.CreatedAt), nil
	}

	log.Printf("UYARI: manifest okunamadı, dizin taramasına düşülüyor: %s", dir)
	files, err := enumerateSegmentFiles(dir)
	if err != nil || len(files) == 0 {
		return nil, errors.ErrSegmentNotFound(err)
	}
	return buildSet(videoID, dir, r.segSeconds, files, time.Now()), nil
}

// enumerateSegmentFiles, segment_NNN.mp4 dosyalarını lexical sıralar ve
// sıralamanın index sırasıyla birebir örtüştüğünü doğrular.
func enumerateSegmentFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("segment dizini okunamadı: %w", err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			continue
		}
		if strings.HasPrefix(name, constants.SegmentFilePrefix) && strings.HasSuffix(name, constants.SegmentFileSuffix) {
			files = append(files, name)
		}
	}
	sort.Strings(files)

	// Sıfır dolgu garantisi: segment_007.mp4 -> index 7
	for i, name := range files {
		numPart := strings.TrimSuffix(strings.TrimPrefix(name, constants.SegmentFilePrefix), constants.SegmentFileSuffix)
		idx, err := strconv.Atoi(numPart)
		if err != nil || idx != i {
			return nil, fmt.Errorf("segment isimlendirmesi sıralamayla uyuşmuyor: %s (beklenen index %d)", name, i)
		}
	}

	return files, nil
}

func buildSet(videoID, dir string, segmentDuration int, files []string, createdAt time.Time) *dto.SegmentSet {
	segments := make([]dto.SegmentRef, len(files))
	for i, name := range files {
		segments[i] = dto.SegmentRef{
			Index:    i,
			Filename: name,
			Path:     filepath.Join(dir, name),
		}
	}
	return &dto.SegmentSet{
		VideoID:         videoID,
		SegmentDuration: segmentDuration,
		Segments:        segments,
		CreatedAt:       createdAt,
	}
}

func writeManifest(dir string, manifest *dto.SegmentManifest) error {
	data, err := json.Marshal(manifest)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, constants.ManifestFilename), data, 0644); err != nil {
		return fmt.Errorf("manifest yazılamadı: %w", err)
	}
	return nil
}

func readManifest(dir string) (*dto.SegmentManifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, constants.ManifestFilename))
	if err != nil {
		return nil, err
	}
	var manifest dto.SegmentManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, err
	}
	return &manifest, nil
}
