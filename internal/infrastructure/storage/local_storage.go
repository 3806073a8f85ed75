package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"video-streamer/pkg/constants"
	"video-streamer/pkg/errors"
	"video-streamer/pkg/helper"
)

// Kaynak video dosyalarının filesystem deposu. Her video id için tek dosya:
// <BasePath>/<videoID>.mp4
type LocalStorage struct {
	BasePath string
}

func NewLocalStorage(basePath string) *LocalStorage {
	return &LocalStorage{BasePath: basePath}
}

func (l *LocalStorage) sourcePath(videoID string) string {
	return filepath.Join(l.BasePath, videoID+constants.SourceFileExt)
}

func (l *LocalStorage) SaveSource(file multipart.File, videoID string) (string, error) {
	fullPath := l.sourcePath(videoID)

	if err := os.MkdirAll(filepath.Dir(fullPath), os.ModePerm); err != nil {
		return "", fmt.Errorf("klasör oluşturulamadı: %w", err)
	}

	outFile, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("dosya oluşturulamadı: %w", err)
	}
	defer outFile.Close()

	if _, err := io.Copy(outFile, file); err != nil {
		os.Remove(fullPath) // yarım dosya bırakma
		return "", fmt.Errorf("dosya yazılamadı: %w", err)
	}

	return fullPath, nil
}

func (l *LocalStorage) ResolveSource(videoID string) (string, error) {
	if !helper.IsSafeVideoID(videoID) {
		return "", errors.ErrVideoNotFound(nil)
	}

	path := l.sourcePath(videoID)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", errors.ErrVideoNotFound(err)
		}
		return "", errors.ErrInternal(err)
	}
	return path, nil
}

func (l *LocalStorage) DeleteSource(videoID string) error {
	err := os.Remove(l.sourcePath(videoID))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
