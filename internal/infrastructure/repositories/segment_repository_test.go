package repositories

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"video-streamer/pkg/constants"
	"video-streamer/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *SegmentRepository {
	t.Helper()
	return NewSegmentRepository(t.TempDir(), 10)
}

// workDir'i segmenterın bırakacağı halde doldurur
func fillWorkDir(t *testing.T, dir string, count int) {
	t.Helper()
	for i := 0; i < count; i++ {
		name := fmt.Sprintf(constants.SegmentFilePattern, i)
		content := fmt.Sprintf("segment-%d", i)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
}

func publishSet(t *testing.T, repo *SegmentRepository, videoID string, count int) {
	t.Helper()
	workDir, err := repo.WorkDir(videoID)
	require.NoError(t, err)
	fillWorkDir(t, workDir, count)
	_, err = repo.Publish(videoID, workDir, 10)
	require.NoError(t, err)
}

func TestPublishAndResolve(t *testing.T) {
	repo := newTestRepo(t)
	publishSet(t, repo, "vid1", 3)

	set, err := repo.ListSegments("vid1")
	require.NoError(t, err)
	assert.Equal(t, 3, set.TotalSegments())
	assert.Equal(t, 10, set.SegmentDuration)

	for i := 0; i < 3; i++ {
		assert.Equal(t, i, set.Segments[i].Index)
		assert.Equal(t, fmt.Sprintf(constants.SegmentFilePattern, i), set.Segments[i].Filename)

		path, err := repo.ResolveSegment("vid1", i)
		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("segment-%d", i), string(data))
	}
}

func TestResolveSegment_NotFoundClasses(t *testing.T) {
	repo := newTestRepo(t)

	// Hiç işlenmemiş video
	_, err := repo.ResolveSegment("unknown", 0)
	var ve *errors.VideoError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "segment_not_found", ve.Code)

	// İşlenmiş ama index aralık dışında: aynı sınıf
	publishSet(t, repo, "vid1", 2)
	_, err = repo.ResolveSegment("vid1", 3)
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "segment_not_found", ve.Code)
}

func TestResolveSegment_NegativeIndex(t *testing.T) {
	repo := newTestRepo(t)
	publishSet(t, repo, "vid1", 2)

	_, err := repo.ResolveSegment("vid1", -1)
	var ve *errors.VideoError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "invalid_segment_index", ve.Code)
}

func TestRemoveSegments_Idempotent(t *testing.T) {
	repo := newTestRepo(t)
	publishSet(t, repo, "vid1", 2)

	require.NoError(t, repo.RemoveSegments("vid1"))
	_, err := repo.ListSegments("vid1")
	assert.Error(t, err)

	// İkinci silme de hatasız
	require.NoError(t, repo.RemoveSegments("vid1"))
	// Dosyalar da gitmiş olmalı
	_, statErr := os.Stat(filepath.Join(repo.segmentsDir, "vid1"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestPublish_ReplacesPreviousSet(t *testing.T) {
	repo := newTestRepo(t)
	publishSet(t, repo, "vid1", 5)
	publishSet(t, repo, "vid1", 2)

	set, err := repo.ListSegments("vid1")
	require.NoError(t, err)
	assert.Equal(t, 2, set.TotalSegments())

	// Eski kümeye ait 3+ indexler artık yok
	_, err = repo.ResolveSegment("vid1", 4)
	assert.Error(t, err)

	// Diskte de eski dosyalar kalmamış
	files, err := enumerateSegmentFiles(filepath.Join(repo.segmentsDir, "vid1"))
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

// Yeniden yayın sırasında hiçbir okuyucu eski ve yeni küme dışında
// bir toplam görmemeli
func TestPublish_AtomicReplaceUnderConcurrentReaders(t *testing.T) {
	repo := newTestRepo(t)
	publishSet(t, repo, "vid1", 3)

	stop := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				set, err := repo.ListSegments("vid1")
				if err != nil {
					continue
				}
				total := set.TotalSegments()
				if total != 3 && total != 7 {
					t.Errorf("ara durum gözlendi: %d segment", total)
					return
				}
			}
		}()
	}

	for i := 0; i < 10; i++ {
		count := 7
		if i%2 == 1 {
			count = 3
		}
		publishSet(t, repo, "vid1", count)
	}

	close(stop)
	wg.Wait()
}

func TestRehydrateFromDisk_WithManifest(t *testing.T) {
	dir := t.TempDir()
	repo := NewSegmentRepository(dir, 10)
	publishSet(t, repo, "vid1", 4)

	// Restart simülasyonu: yeni repo aynı dizine bakar
	fresh := NewSegmentRepository(dir, 10)
	set, err := fresh.ListSegments("vid1")
	require.NoError(t, err)
	assert.Equal(t, 4, set.TotalSegments())
	assert.Equal(t, 10, set.SegmentDuration)

	path, err := fresh.ResolveSegment("vid1", 2)
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestRehydrateFromDisk_WithoutManifest(t *testing.T) {
	dir := t.TempDir()
	segDir := filepath.Join(dir, "vid1")
	require.NoError(t, os.MkdirAll(segDir, 0755))
	fillWorkDir(t, segDir, 3)

	repo := NewSegmentRepository(dir, 10)
	set, err := repo.ListSegments("vid1")
	require.NoError(t, err)
	assert.Equal(t, 3, set.TotalSegments())
}

func TestEnumerate_RejectsBrokenNaming(t *testing.T) {
	dir := t.TempDir()
	// segment_000 yok, 001 ve 002 var: sıralama index'le uyuşmaz
	require.NoError(t, os.WriteFile(filepath.Join(dir, "segment_001.mp4"), []byte("a"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "segment_002.mp4"), []byte("b"), 0644))

	_, err := enumerateSegmentFiles(dir)
	assert.Error(t, err)
}

func TestEnumerate_IgnoresForeignFiles(t *testing.T) {
	dir := t.TempDir()
	fillWorkDir(t, dir, 2)
	require.NoError(t, os.WriteFile(filepath.Join(dir, constants.ManifestFilename), []byte("{}"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	files, err := enumerateSegmentFiles(dir)
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestPublish_EmptyWorkDirFails(t *testing.T) {
	repo := newTestRepo(t)
	workDir, err := repo.WorkDir("vid1")
	require.NoError(t, err)

	_, err = repo.Publish("vid1", workDir, 10)
	assert.Error(t, err)

	// Hiçbir şey yayınlanmamış olmalı
	_, err = repo.ListSegments("vid1")
	assert.Error(t, err)
}
