package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mizuhara/showcase-api/internal/constants"
	apierrors "github.com/mizuhara/showcase-api/internal/errors"
	"github.com/mizuhara/showcase-api/internal/models"
	"github.com/mizuhara/showcase-api/internal/storage"
	"github.com/mizuhara/showcase-api/internal/utils"
)

// UploadHandler stores work media files and hands back their public URL.
type UploadHandler struct {
	store storage.Storage
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(store storage.Storage) *UploadHandler {
	return &UploadHandler{
		store: store,
	}
}

// Upload accepts a multipart file, writes it to object storage under a
// unique timestamped path, and returns the public URL together with the
// inferred media type tag.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		apierrors.BadRequest(c, "file is required")
		return
	}

	if file.Size > constants.MaxUploadBytes {
		apierrors.BadRequest(c, fmt.Sprintf("file exceeds the %d byte limit", constants.MaxUploadBytes))
		return
	}

	path, err := utils.GenerateObjectPath(file.Filename)
	if err != nil {
		apierrors.InternalError(c, "Failed to store file")
		return
	}

	src, err := file.Open()
	if err != nil {
		apierrors.BadRequest(c, "failed to read uploaded file")
		return
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if err := h.store.Save(c.Request.Context(), path, src, contentType); err != nil {
		apierrors.InternalError(c, "Failed to store file")
		return
	}

	fileType := models.InferFileType(file.Filename)

	c.JSON(http.StatusCreated, gin.H{
		"url":       h.store.URL(path),
		"path":      path,
		"file_type": fileType,
		"size":      file.Size,
	})
}
