package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UploadFile handles POST /v1/admin/upload
// It checks that the "file" part really is an image, saves it under the
// upload dir with a random name and returns its public URL.
func (h *Handlers) UploadFile(c *gin.Context) {
	// 1. Cap the body before multipart parsing touches it
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.Upload.MaxBytes+1<<20)

	file, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	if file.Size > h.Upload.MaxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large"})
		return
	}

	// 2. Sniff the content, never trust the client's filename or header
	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read upload"})
		return
	}
	mtype, err := mimetype.DetectReader(src)
	src.Close()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read upload"})
		return
	}
	if !strings.HasPrefix(mtype.String(), "image/") {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "Only image files are allowed"})
		return
	}

	// 3. Save with a generated name
	if err := os.MkdirAll(h.Upload.Dir, 0o755); err != nil {
		h.Log.Error("create upload dir failed", zap.String("dir", h.Upload.Dir), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}
	newFilename := uuid.NewString() + mtype.Extension()
	if err := c.SaveUploadedFile(file, filepath.Join(h.Upload.Dir, newFilename)); err != nil {
		h.Log.Error("save upload failed", zap.String("file", newFilename), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}

	// 4. Return the public URL
	publicURL := fmt.Sprintf("%s/uploads/%s", strings.TrimRight(h.BaseURL, "/"), newFilename)
	c.JSON(http.StatusOK, gin.H{"url": publicURL})
}
