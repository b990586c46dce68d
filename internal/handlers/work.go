package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mizuhara/showcase-api/internal/dto"
	apierrors "github.com/mizuhara/showcase-api/internal/errors"
	"github.com/mizuhara/showcase-api/internal/middleware"
	"github.com/mizuhara/showcase-api/internal/models"
	"github.com/mizuhara/showcase-api/internal/services"
	"github.com/mizuhara/showcase-api/internal/utils"
)

// WorkHandler coordinates work CRUD and the public gallery.
type WorkHandler struct {
	workService *services.WorkService
}

// NewWorkHandler creates a new WorkHandler.
func NewWorkHandler(workService *services.WorkService) *WorkHandler {
	return &WorkHandler{
		workService: workService,
	}
}

// ListWorks returns the gallery: all works filtered by an optional free-text
// query and category, ranked by vote count then recency. An empty gallery is
// a 200 with an empty list, never an error.
func (h *WorkHandler) ListWorks(c *gin.Context) {
	works, err := h.workService.ListWorks()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch works")
		return
	}

	search := c.Query("search")
	category := models.Category(c.DefaultQuery("category", string(models.CategoryAll)))

	filtered := services.FilterWorks(works, search, category)
	services.SortWorks(filtered)

	c.JSON(http.StatusOK, dto.ToWorkListResponse(filtered))
}

// GetWork returns a single work with its author.
func (h *WorkHandler) GetWork(c *gin.Context) {
	work, err := h.workService.GetWork(c.Param("id"))
	if err != nil {
		respondWorkError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkDTO(*work))
}

// ListMyWorks returns the session user's own works newest-first.
func (h *WorkHandler) ListMyWorks(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	params := utils.GetPaginationParams(c)
	works, total, err := h.workService.ListWorksByAuthor(userID, params.Page, params.Limit)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch works")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"works": dto.ToWorkListResponse(works).Works,
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// CreateWork submits a new work owned by the session user.
func (h *WorkHandler) CreateWork(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateWorkRequest struct {
		Title               string          `json:"title" binding:"required"`
		Description         string          `json:"description" binding:"required"`
		DetailedDescription string          `json:"detailed_description"`
		Category            models.Category `json:"category" binding:"required"`
		FileURL             string          `json:"file_url" binding:"required"`
		FileType            models.FileType `json:"file_type" binding:"required"`
	}

	var req CreateWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	work, err := h.workService.CreateWork(services.CreateWorkInput{
		Title:               req.Title,
		Description:         req.Description,
		DetailedDescription: req.DetailedDescription,
		Category:            req.Category,
		FileURL:             req.FileURL,
		FileType:            req.FileType,
		AuthorID:            userID,
	})
	if err != nil {
		respondWorkError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToWorkDTO(*work))
}

// UpdateWork edits a work; only its author may succeed.
func (h *WorkHandler) UpdateWork(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type UpdateWorkRequest struct {
		Title               *string          `json:"title"`
		Description         *string          `json:"description"`
		DetailedDescription *string          `json:"detailed_description"`
		Category            *models.Category `json:"category"`
		FileURL             *string          `json:"file_url"`
		FileType            *models.FileType `json:"file_type"`
	}

	var req UpdateWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	work, err := h.workService.UpdateWork(c.Param("id"), userID, services.UpdateWorkInput{
		Title:               req.Title,
		Description:         req.Description,
		DetailedDescription: req.DetailedDescription,
		Category:            req.Category,
		FileURL:             req.FileURL,
		FileType:            req.FileType,
	})
	if err != nil {
		respondWorkError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkDTO(*work))
}

// DeleteWork removes a work with its votes and comments; only its author may
// succeed.
func (h *WorkHandler) DeleteWork(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	if err := h.workService.DeleteWork(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondWorkError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Work deleted successfully",
	})
}

func respondWorkError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrWorkNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNotWorkAuthor):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrDescriptionRequired),
		errors.Is(err, services.ErrInvalidWorkCategory),
		errors.Is(err, services.ErrInvalidFileType),
		errors.Is(err, services.ErrFileURLRequired),
		errors.Is(err, services.ErrWebURLRequired):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
