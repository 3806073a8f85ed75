package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"video-streamer/internal/pkg/fileutils"
)

// Uçtan uca deneme client'ı: upload -> process -> metadata -> range isteği.
func main() {
	server := flag.String("server", "http://localhost:3000/api/v1", "Server base URL")
	filePath := flag.String("file", "", "Yüklenecek video dosyasının yolu")
	flag.Parse()

	if *filePath == "" {
		log.Fatal("Kullanım: client -file <video.mp4>")
	}

	videoID, err := uploadVideo(*server, *filePath)
	if err != nil {
		log.Fatalf("Upload başarısız: %v", err)
	}
	fmt.Printf("Video yüklendi: %s\n", videoID)

	if err := processVideo(*server, videoID); err != nil {
		log.Fatalf("Process başarısız: %v", err)
	}

	if err := printMetadata(*server, videoID); err != nil {
		log.Fatalf("Metadata alınamadı: %v", err)
	}

	if err := rangeRequest(*server, videoID); err != nil {
		log.Fatalf("Range isteği başarısız: %v", err)
	}
}

func uploadVideo(server, filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("dosya açılamadı: %w", err)
	}
	defer file.Close()

	hash, err := fileutils.CalculateFileHash(filePath)
	if err != nil {
		return "", err
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filepath.Base(filePath))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", err
	}
	if err := writer.WriteField("file_hash", hash); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	resp, err := http.Post(server+"/videos", writer.FormDataContentType(), &body)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		data, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("beklenmeyen status %d: %s", resp.StatusCode, data)
	}

	var parsed struct {
		VideoID string `json:"video_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	return parsed.VideoID, nil
}

func processVideo(server, videoID string) error {
	resp, err := http.Post(fmt.Sprintf("%s/videos/%s/process", server, videoID), "application/json", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d: %s", resp.StatusCode, data)
	}
	fmt.Printf("Process sonucu: %s\n", data)
	return nil
}

func printMetadata(server, videoID string) error {
	resp, err := http.Get(fmt.Sprintf("%s/videos/%s/metadata", server, videoID))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d: %s", resp.StatusCode, data)
	}
	fmt.Printf("Metadata: %s\n", data)
	return nil
}

func rangeRequest(server, videoID string) error {
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/videos/%s/stream", server, videoID), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Range", "bytes=0-1023")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	n, _ := io.Copy(io.Discard, resp.Body)
	if resp.StatusCode != http.StatusPartialContent {
		return fmt.Errorf("beklenen 206, gelen %d", resp.StatusCode)
	}
	fmt.Printf("Range isteği: status=%d, Content-Range=%s, okunan=%d byte\n",
		resp.StatusCode, resp.Header.Get("Content-Range"), n)
	return nil
}
