package utils

import (
	"fmt"
	"math/rand"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const MaxReceiptSize = 5 << 20 // 5MB

var allowedReceiptExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".pdf":  true,
}

// SaveReceipt stores an uploaded payment receipt under dir with a
// timestamp+random filename and returns the public path it will be served
// from. The file is not cleaned up if the caller's insert later fails.
func SaveReceipt(c *gin.Context, file *multipart.FileHeader, dir string) (string, error) {
	if file.Size > MaxReceiptSize {
		return "", ErrInvalidInput
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedReceiptExts[ext] {
		return "", ErrInvalidInput
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("receipt-%d-%d%s", time.Now().UnixMilli(), rand.Intn(1_000_000_000), ext)
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		return "", err
	}

	return path.Join("/uploads/receipts", name), nil
}
