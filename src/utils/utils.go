package utils

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/LakniR23/EventHub-sub001/src/core/config"
)

// dataURIPrefix matches the "data:image/png;base64," style header that the
// admin frontend prepends to pasted images.
var dataURIPrefix = regexp.MustCompile(`^data:[^;]+;base64,`)

// DecodeBase64Image strips an optional data-URI header and decodes the
// remaining base64 payload.
func DecodeBase64Image(payload string) ([]byte, error) {
	raw := dataURIPrefix.ReplaceAllString(strings.TrimSpace(payload), "")
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 image: %w", err)
	}
	return data, nil
}

// SaveBase64Image decodes payload and writes it under the uploads directory
// at relPath, creating parent directories as needed. It returns the absolute
// path written.
func SaveBase64Image(payload, relPath string) (string, error) {
	data, err := DecodeBase64Image(payload)
	if err != nil {
		return "", err
	}
	fullPath := filepath.Join(config.UploadDir(), relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}
	return fullPath, nil
}

// SaveUpload stores a multipart file under the uploads directory in relDir
// using a uniquified filename, and returns the stored filename.
func SaveUpload(file *multipart.FileHeader, relDir string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	fileName := UniqueFileName(file.Filename)
	dir := filepath.Join(config.UploadDir(), relDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	dst, err := os.Create(filepath.Join(dir, fileName))
	if err != nil {
		return "", fmt.Errorf("failed to create stored file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to copy file content: %w", err)
	}
	return fileName, nil
}

// DeleteStoredFile removes a file under the uploads directory. A file that is
// already gone is not an error.
func DeleteStoredFile(relPath string) error {
	err := os.Remove(filepath.Join(config.UploadDir(), relPath))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// UniqueFileName appends a nanosecond timestamp before the extension so
// repeated uploads of the same file never collide.
func UniqueFileName(fileName string) string {
	ext := filepath.Ext(fileName)
	baseName := strings.TrimSuffix(filepath.Base(fileName), ext)
	return fmt.Sprintf("%s_%d%s", baseName, time.Now().UnixNano(), ext)
}

// PublicURL builds the absolute URL a browser uses to fetch a stored file.
func PublicURL(relPath string) string {
	return fmt.Sprintf("%s/uploads/%s", strings.TrimRight(config.BackendURL(), "/"), filepath.ToSlash(relPath))
}
