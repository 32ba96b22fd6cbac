package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookwell/services/storage"
)

const maxUploadBytes = 8 << 20 // 8 MiB

// StorageHandler exposes the image upload endpoint used for profile and
// service photos.
type StorageHandler struct {
	Storage storage.StorageService
}

func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{Storage: svc}
}

// UploadImage accepts a multipart "file" field and an optional "folder"
// form value, and returns the stored image's identifier and URL.
func (h *StorageHandler) UploadImage(c *gin.Context) {
	if h.Storage == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage not configured"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file upload", "details": err.Error()})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file exceeds upload size limit"})
		return
	}

	folder := c.PostForm("folder")
	if folder == "" {
		folder = "images"
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read upload", "details": err.Error()})
		return
	}
	defer file.Close()

	publicID, url, err := h.Storage.UploadImage(c.Request.Context(), file, folder)
	if err != nil {
		getLogger(c).Error("image upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"publicId": publicID, "url": url})
}
