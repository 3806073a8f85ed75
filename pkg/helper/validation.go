package helper

import (
	"path/filepath"
	"strings"
)

func GetMimeTypeFromExtension(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".mp4":
		return "video/mp4"
	case ".avi":
		return "video/avi"
	case ".mkv":
		return "video/mkv"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	default:
		return "application/octet-stream"
	}
}

// Video id path parametresi dosya yoluna ekleniyor, ayraç içeremez
func IsSafeVideoID(videoID string) bool {
	if videoID == "" {
		return false
	}
	if strings.ContainsAny(videoID, "/\\") {
		return false
	}
	return filepath.Base(videoID) == videoID && videoID != "." && videoID != ".."
}
