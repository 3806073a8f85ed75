package usecases

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"video-streamer/internal/domain/dto"
	infra_repo "video-streamer/internal/infrastructure/repositories"
	"video-streamer/internal/infrastructure/storage"
	"video-streamer/pkg/constants"
	"video-streamer/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Harici transcoder yerine geçen stub: çıktı dizinine gerçek dosyalar yazar
type stubProcessor struct {
	segmentCount int
	segmentErr   error
	probeErr     error
	probeMeta    *dto.VideoMetadataDTO

	started chan struct{} // nil değilse Segment girişte sinyal verir
	release chan struct{} // nil değilse Segment bunu bekler
}

func (p *stubProcessor) Segment(inputPath, outputDir string, segmentSeconds int) error {
	if p.started != nil {
		p.started <- struct{}{}
	}
	if p.release != nil {
		<-p.release
	}
	if p.segmentErr != nil {
		return p.segmentErr
	}
	for i := 0; i < p.segmentCount; i++ {
		name := fmt.Sprintf(constants.SegmentFilePattern, i)
		if err := os.WriteFile(filepath.Join(outputDir, name), []byte("x"), 0644); err != nil {
			return err
		}
	}
	return nil
}

func (p *stubProcessor) Probe(inputPath string) (*dto.VideoMetadataDTO, error) {
	if p.probeErr != nil {
		return nil, p.probeErr
	}
	if p.probeMeta != nil {
		return p.probeMeta, nil
	}
	return &dto.VideoMetadataDTO{DurationSeconds: 42, SizeBytes: 1000, Bitrate: 8000, ContainerFormat: "mov,mp4"}, nil
}

func (p *stubProcessor) Thumbnail(inputPath, outputPath, timePosition string) error {
	return nil
}

type videoServiceFixture struct {
	service     VideoService
	storage     *storage.LocalStorage
	segmentsDir string
	proc        *stubProcessor
}

func newVideoServiceFixture(t *testing.T, proc *stubProcessor) *videoServiceFixture {
	t.Helper()
	localStorage := storage.NewLocalStorage(t.TempDir())
	segmentsDir := t.TempDir()
	segmentRepo := infra_repo.NewSegmentRepository(segmentsDir, 10)
	return &videoServiceFixture{
		service:     NewVideoService(localStorage, segmentRepo, proc, nil, 10),
		storage:     localStorage,
		segmentsDir: segmentsDir,
		proc:        proc,
	}
}

func (f *videoServiceFixture) addSource(t *testing.T, videoID string) {
	t.Helper()
	path := filepath.Join(f.storage.BasePath, videoID+constants.SourceFileExt)
	require.NoError(t, os.WriteFile(path, []byte("fake video bytes"), 0644))
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	var ve *errors.VideoError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, code, ve.Code)
}

func TestProcess_SourceNotFound(t *testing.T) {
	f := newVideoServiceFixture(t, &stubProcessor{segmentCount: 2})

	_, err := f.service.Process("yok-boyle-video")
	assertCode(t, err, "video_not_found")
}

func TestProcess_Success(t *testing.T) {
	f := newVideoServiceFixture(t, &stubProcessor{segmentCount: 3})
	f.addSource(t, "vid1")

	set, err := f.service.Process("vid1")
	require.NoError(t, err)
	assert.Equal(t, 3, set.TotalSegments())
	assert.Equal(t, 10, set.SegmentDuration)
	assert.Equal(t, []string{"segment_000.mp4", "segment_001.mp4", "segment_002.mp4"}, set.Filenames())

	// Küme store üzerinden de görünür
	path, err := f.service.ResolveSegment("vid1", 2)
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestProcess_TranscoderFailureLeavesNothing(t *testing.T) {
	f := newVideoServiceFixture(t, &stubProcessor{segmentErr: fmt.Errorf("corrupt stream")})
	f.addSource(t, "vid1")

	_, err := f.service.Process("vid1")
	assertCode(t, err, "processing_failed")

	// Küme yayınlanmamış, yarım çıktı da temizlenmiş
	_, err = f.service.ListSegments("vid1")
	assertCode(t, err, "segment_not_found")

	entries, readErr := os.ReadDir(f.segmentsDir)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "segments kökünde artık dizin kalmamalı")
}

func TestProcess_UnsupportedInput(t *testing.T) {
	f := newVideoServiceFixture(t, &stubProcessor{probeErr: fmt.Errorf("invalid data found")})
	f.addSource(t, "vid1")

	_, err := f.service.Process("vid1")
	assertCode(t, err, "unsupported_media")
}

func TestProcess_ConcurrentSameVideoRejected(t *testing.T) {
	proc := &stubProcessor{
		segmentCount: 2,
		started:      make(chan struct{}, 1),
		release:      make(chan struct{}),
	}
	f := newVideoServiceFixture(t, proc)
	f.addSource(t, "vid1")

	var wg sync.WaitGroup
	wg.Add(1)
	var firstErr error
	go func() {
		defer wg.Done()
		_, firstErr = f.service.Process("vid1")
	}()

	<-proc.started // ilk işleme segmenter içinde bekliyor

	_, err := f.service.Process("vid1")
	assertCode(t, err, "already_processing")

	close(proc.release)
	wg.Wait()
	require.NoError(t, firstErr)

	// İlk işleme normal tamamlanmış
	set, err := f.service.ListSegments("vid1")
	require.NoError(t, err)
	assert.Equal(t, 2, set.TotalSegments())
}

func TestProcess_ReprocessOverwrites(t *testing.T) {
	proc := &stubProcessor{segmentCount: 5}
	f := newVideoServiceFixture(t, proc)
	f.addSource(t, "vid1")

	_, err := f.service.Process("vid1")
	require.NoError(t, err)

	proc.segmentCount = 2
	set, err := f.service.Process("vid1")
	require.NoError(t, err)
	assert.Equal(t, 2, set.TotalSegments())

	_, err = f.service.ResolveSegment("vid1", 4)
	assertCode(t, err, "segment_not_found")
}

func TestProcess_DifferentVideosDoNotSerialize(t *testing.T) {
	proc := &stubProcessor{segmentCount: 1}
	f := newVideoServiceFixture(t, proc)
	f.addSource(t, "vid1")
	f.addSource(t, "vid2")

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, id := range []string{"vid1", "vid2"} {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			_, errs[i] = f.service.Process(id)
		}(i, id)
	}
	wg.Wait()

	assert.NoError(t, errs[0])
	assert.NoError(t, errs[1])
}

func TestMetadata_Success(t *testing.T) {
	meta := &dto.VideoMetadataDTO{DurationSeconds: 93.5, SizeBytes: 4096, Bitrate: 12000, ContainerFormat: "mov,mp4,m4a"}
	f := newVideoServiceFixture(t, &stubProcessor{probeMeta: meta})
	f.addSource(t, "vid1")

	got, err := f.service.Metadata("vid1")
	require.NoError(t, err)
	assert.Equal(t, meta, got)
}

func TestMetadata_SourceNotFound(t *testing.T) {
	f := newVideoServiceFixture(t, &stubProcessor{})

	_, err := f.service.Metadata("vid-yok")
	assertCode(t, err, "video_not_found")
}

func TestMetadata_ProbeFailed(t *testing.T) {
	f := newVideoServiceFixture(t, &stubProcessor{probeErr: fmt.Errorf("not a media file")})
	f.addSource(t, "vid1")

	_, err := f.service.Metadata("vid1")
	assertCode(t, err, "probe_failed")
}

func TestRemoveSegments_Passthrough(t *testing.T) {
	f := newVideoServiceFixture(t, &stubProcessor{segmentCount: 2})
	f.addSource(t, "vid1")

	_, err := f.service.Process("vid1")
	require.NoError(t, err)

	require.NoError(t, f.service.RemoveSegments("vid1"))
	_, err = f.service.ListSegments("vid1")
	assertCode(t, err, "segment_not_found")

	// Idempotent
	require.NoError(t, f.service.RemoveSegments("vid1"))
}
