package storage

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const maxImageSize = 5 << 20 // 5MB

// allowedImageMIMETypes maps content-detected MIME types to file extensions.
// The client-provided filename is never trusted.
var allowedImageMIMETypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// ImageStore writes analysis images under a configured upload directory
// with random filenames.
type ImageStore struct {
	uploadDir string
}

func NewImageStore(uploadDir string) *ImageStore {
	return &ImageStore{uploadDir: uploadDir}
}

// Save validates and stores image content, returning the public URL path.
func (s *ImageStore) Save(content []byte) (string, error) {
	if len(content) == 0 {
		return "", fmt.Errorf("file is empty")
	}
	if len(content) > maxImageSize {
		return "", fmt.Errorf("file size exceeds 5MB limit")
	}

	mimeType := mimetype.Detect(content).String()
	ext, allowed := allowedImageMIMETypes[mimeType]
	if !allowed {
		return "", fmt.Errorf("unsupported image type: %s", mimeType)
	}

	if err := os.MkdirAll(s.uploadDir, 0750); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	filename, err := secureFilename(ext)
	if err != nil {
		return "", err
	}

	dst := filepath.Join(s.uploadDir, filename)

	// Guard against path traversal even though the name is generated here.
	absUploadDir, err := filepath.Abs(s.uploadDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve upload directory: %w", err)
	}
	absDst, err := filepath.Abs(dst)
	if err != nil {
		return "", fmt.Errorf("failed to resolve destination path: %w", err)
	}
	if !strings.HasPrefix(absDst, absUploadDir) {
		return "", fmt.Errorf("invalid destination path")
	}

	if err := os.WriteFile(dst, content, 0640); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return "/uploads/" + filename, nil
}

func secureFilename(ext string) (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate filename: %w", err)
	}
	return hex.EncodeToString(buf) + ext, nil
}
