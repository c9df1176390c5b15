package utils

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadDir returns the root directory for uploaded files.
func UploadDir() string {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "uploads"
	}
	return dir
}

// SaveReceiptImage stores an uploaded proof-of-payment under
// <UPLOAD_DIR>/receipts with a uuid filename and returns the stored path.
// Only the path is persisted on the order, the bytes live on disk.
func SaveReceiptImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	dir := filepath.Join(UploadDir(), "receipts")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating upload directory: %w", err)
	}

	filename := uuid.New().String() + filepath.Ext(file.Filename)
	path := filepath.Join(dir, filename)

	if err := c.SaveUploadedFile(file, path); err != nil {
		return "", fmt.Errorf("saving receipt image: %w", err)
	}
	return path, nil
}
