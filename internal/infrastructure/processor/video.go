package processor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"video-streamer/internal/domain/dto"
	"video-streamer/pkg/constants"
)

// FFmpegProcessor, repositories.VideoProcessor implementasyonu.
// ffmpeg ve ffprobe binary'lerinin PATH üzerinde olması gerekir.
type FFmpegProcessor struct{}

func NewFFmpegProcessor() *FFmpegProcessor {
	return &FFmpegProcessor{}
}

func (p *FFmpegProcessor) Segment(inputPath, outputDir string, segmentSeconds int) error {
	outputPattern := filepath.Join(outputDir, constants.SegmentFilePattern)

	cmd := exec.Command("ffmpeg",
		"-i", inputPath,
		"-c:v", "libx264",
		"-c:a", "aac",
		"-f", "segment",
		"-segment_time", strconv.Itoa(segmentSeconds),
		"-reset_timestamps", "1",
		"-map", "0",
		"-segment_format", "mp4",
		outputPattern,
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg segment hatası: %w: %s", err, stderrTail(stderr.String()))
	}
	return nil
}

// ffprobe -show_format çıktısındaki format bloğu. Sayısal alanlar string gelir.
type probeFormat struct {
	Format struct {
		Duration   string `json:"duration"`
		Size       string `json:"size"`
		BitRate    string `json:"bit_rate"`
		FormatName string `json:"format_name"`
	} `json:"format"`
}

func (p *FFmpegProcessor) Probe(inputPath string) (*dto.VideoMetadataDTO, error) {
	cmd := exec.Command("ffprobe",
		"-v", "error",
		"-show_format",
		"-of", "json",
		inputPath,
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffprobe hatası: %w: %s", err, stderrTail(stderr.String()))
	}

	var parsed probeFormat
	if err := json.Unmarshal(out, &parsed); err != nil {
		return nil, fmt.Errorf("ffprobe çıktısı çözümlenemedi: %w", err)
	}

	duration, _ := strconv.ParseFloat(parsed.Format.Duration, 64)
	size, _ := strconv.ParseInt(parsed.Format.Size, 10, 64)
	bitrate, _ := strconv.ParseInt(parsed.Format.BitRate, 10, 64)

	return &dto.VideoMetadataDTO{
		DurationSeconds: duration,
		SizeBytes:       size,
		Bitrate:         bitrate,
		ContainerFormat: parsed.Format.FormatName,
	}, nil
}

func (p *FFmpegProcessor) Thumbnail(inputPath, outputPath, timePosition string) error {
	cmd := exec.Command("ffmpeg",
		"-ss", timePosition,
		"-i", inputPath,
		"-vframes", "1",
		"-y",
		outputPath,
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("thumbnail oluşturulamadı: %w: %s", err, stderrTail(stderr.String()))
	}
	return nil
}

// ffmpeg stderr'i uzun olur, hata mesajına sadece son satırlar girsin
func stderrTail(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) > 3 {
		lines = lines[len(lines)-3:]
	}
	return strings.Join(lines, " | ")
}
