package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	uuid "github.com/satori/go.uuid"
	"go.uber.org/zap"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

const maxImageSize = int64(5 * 1024 * 1024)

// ImageStore saves and removes book cover images under <dir>/books.
type ImageStore struct {
	dir string
	log *zap.Logger
}

func NewImageStore(dir string, log *zap.Logger) *ImageStore {
	return &ImageStore{dir: dir, log: log}
}

// Save writes the uploaded file under a uuid filename and returns the
// relative path to store on the book record.
func (s *ImageStore) Save(file *multipart.FileHeader) (string, error) {
	if !allowedImageTypes[file.Header.Get("Content-Type")] {
		return "", fmt.Errorf("file type %s is not allowed", file.Header.Get("Content-Type"))
	}
	if file.Size > maxImageSize {
		return "", fmt.Errorf("file %s exceeds the 5MB size limit", file.Filename)
	}

	dirPath := filepath.Join(s.dir, "books")
	if err := os.MkdirAll(dirPath, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	ext := filepath.Ext(file.Filename)
	filename := uuid.NewV4().String() + ext
	dstPath := filepath.Join(dirPath, filename)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dstPath)
		return "", err
	}

	return filepath.ToSlash(dstPath), nil
}

// Delete removes an image file. Failures are logged and swallowed, a missing
// cover is never worth failing the catalog operation for.
func (s *ImageStore) Delete(imagePath string) {
	if imagePath == "" {
		return
	}
	if err := os.Remove(imagePath); err != nil && !os.IsNotExist(err) {
		s.log.Warn("failed to delete image", zap.String("path", imagePath), zap.Error(err))
	}
}
