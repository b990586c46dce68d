package dto

import (
	"time"

	"github.com/mizuhara/showcase-api/internal/models"
)

// WorkDTO represents a work in API responses
type WorkDTO struct {
	ID                  string          `json:"id"`
	Title               string          `json:"title"`
	Description         string          `json:"description"`
	DetailedDescription string          `json:"detailed_description,omitempty"`
	AuthorID            string          `json:"author_id"`
	Category            models.Category `json:"category"`
	FileURL             string          `json:"file_url"`
	FileType            models.FileType `json:"file_type"`
	VoteCount           int64           `json:"vote_count"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
	Author              *AuthorDTO      `json:"author,omitempty"`
}

// WorkListResponse represents the gallery response
type WorkListResponse struct {
	Works []WorkDTO `json:"works"`
	Total int       `json:"total"`
}

// ToWorkDTO converts a Work model to WorkDTO
func ToWorkDTO(work models.Work) WorkDTO {
	dto := WorkDTO{
		ID:                  work.ID,
		Title:               work.Title,
		Description:         work.Description,
		DetailedDescription: work.DetailedDescription,
		AuthorID:            work.AuthorID,
		Category:            work.Category,
		FileURL:             work.FileURL,
		FileType:            work.FileType,
		VoteCount:           work.VoteCount,
		CreatedAt:           work.CreatedAt,
		UpdatedAt:           work.UpdatedAt,
	}

	// Include author if preloaded
	if work.Author.ID != "" {
		author := ToAuthorDTO(work.Author)
		dto.Author = &author
	}

	return dto
}

// ToWorkListResponse converts a slice of works to WorkListResponse
func ToWorkListResponse(works []models.Work) WorkListResponse {
	items := make([]WorkDTO, len(works))
	for i, work := range works {
		items[i] = ToWorkDTO(work)
	}

	return WorkListResponse{
		Works: items,
		Total: len(items),
	}
}
