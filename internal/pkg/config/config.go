package config

import (
	"os"
	"path/filepath"
	"strconv"
)

type Config struct {
	Server ServerConfig
	Media  MediaConfig
	Redis  RedisConfig
}

type ServerConfig struct {
	Port   string
	Host   string
	Locale string
}

type MediaConfig struct {
	VideosDir      string
	SegmentsDir    string
	ThumbsDir      string
	SegmentSeconds int   // segment hedef süresi (sn)
	MaxFileSize    int64 // bytes
}

type RedisConfig struct {
	Host string
	Port string
}

func LoadConfig() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:   getEnv("SERVER_PORT", "3000"),
			Host:   getEnv("SERVER_HOST", "localhost"),
			Locale: getEnv("LOCALE", "tr"),
		},
		Media: MediaConfig{
			VideosDir:      getEnv("VIDEOS_DIR", "videos"),
			SegmentsDir:    getEnv("SEGMENTS_DIR", "segments"),
			ThumbsDir:      getEnv("THUMBS_DIR", "thumbnails"),
			SegmentSeconds: int(getEnvAsInt64("SEGMENT_SECONDS", 10)),
			MaxFileSize:    getEnvAsInt64("UPLOAD_MAX_FILE_SIZE", 5*1024*1024*1024), // 5GB
		},
		Redis: RedisConfig{
			Host: getEnv("REDIS_HOST", ""),
			Port: getEnv("REDIS_PORT", "6379"),
		},
	}

	// Proje kökü:
	projectRoot, err := findProjectRoot()
	if err != nil {
		panic(err)
	}

	// Klasörleri proje köküne göre oluşturmak için:
	config.Media.VideosDir = filepath.Join(projectRoot, config.Media.VideosDir)
	config.Media.SegmentsDir = filepath.Join(projectRoot, config.Media.SegmentsDir)
	config.Media.ThumbsDir = filepath.Join(projectRoot, config.Media.ThumbsDir)

	for _, dir := range []string{config.Media.VideosDir, config.Media.SegmentsDir, config.Media.ThumbsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			panic(err)
		}
	}

	return config
}

func findProjectRoot() (string, error) {
	current, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(current, "go.mod")); err == nil {
			return current, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			// Root'a ulaştık, go.mod bulunamadı
			return os.Getwd()
		}
		current = parent
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
