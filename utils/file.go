package utils

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bnc-store/config"
)

var ErrFileTooLarge = errors.New("file size exceeds maximum allowed size")
var ErrNotAnImage = errors.New("invalid file type. Only images are allowed")

func imageExt(filename string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return ext, true
	}
	return ext, false
}

// UploadFile stores an uploaded product image under UploadDir/subDir
// with a generated name, so two shops uploading "photo.jpg" in the same
// second cannot collide. Returns the path relative to UploadDir.
func UploadFile(c *gin.Context, fileHeader *multipart.FileHeader, subDir string) (string, error) {
	if fileHeader.Size > config.AppConfig.MaxUploadSize {
		return "", ErrFileTooLarge
	}

	ext, ok := imageExt(fileHeader.Filename)
	if !ok {
		return "", ErrNotAnImage
	}

	dir := filepath.Join(config.AppConfig.UploadDir, subDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s%s", uuid.NewString(), ext)
	if err := c.SaveUploadedFile(fileHeader, filepath.Join(dir, name)); err != nil {
		return "", err
	}

	// Forward slashes regardless of OS; the value ends up in a URL.
	return subDir + "/" + name, nil
}

// DeleteFile removes a previously uploaded file. A path that is already
// gone is not an error.
func DeleteFile(relPath string) error {
	err := os.Remove(filepath.Join(config.AppConfig.UploadDir, filepath.FromSlash(relPath)))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
