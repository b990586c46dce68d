package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/mizuhara/showcase-api/internal/models"
	"github.com/mizuhara/showcase-api/internal/repository"
	"github.com/mizuhara/showcase-api/internal/storage"
	"github.com/mizuhara/showcase-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrWorkNotFound        = errors.New("work not found")
	ErrNotWorkAuthor       = errors.New("only the work's author can perform this action")
	ErrTitleRequired       = errors.New("title is required")
	ErrDescriptionRequired = errors.New("description is required")
	ErrInvalidWorkCategory = errors.New("invalid category")
	ErrInvalidFileType     = errors.New("invalid file type")
	ErrFileURLRequired     = errors.New("a file is required for this media type")
	ErrWebURLRequired      = errors.New("a web URL is required for web works")
)

// WorkService handles work business logic
type WorkService struct {
	workRepo repository.WorkRepository
	store    storage.Storage
}

// NewWorkService creates a new WorkService
func NewWorkService(workRepo repository.WorkRepository, store storage.Storage) *WorkService {
	return &WorkService{
		workRepo: workRepo,
		store:    store,
	}
}

// CreateWorkInput represents input for submitting a work
type CreateWorkInput struct {
	Title               string
	Description         string
	DetailedDescription string
	Category            models.Category
	FileURL             string
	FileType            models.FileType
	AuthorID            string
}

// UpdateWorkInput represents input for editing a work. Nil fields are left
// unchanged.
type UpdateWorkInput struct {
	Title               *string
	Description         *string
	DetailedDescription *string
	Category            *models.Category
	FileURL             *string
	FileType            *models.FileType
}

// CreateWork validates and stores a new work with a zero vote count.
func (s *WorkService) CreateWork(input CreateWorkInput) (*models.Work, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)

	if title == "" {
		return nil, ErrTitleRequired
	}
	if description == "" {
		return nil, ErrDescriptionRequired
	}
	if !models.IsValidCategory(input.Category) {
		return nil, ErrInvalidWorkCategory
	}
	if !models.IsValidFileType(input.FileType) {
		return nil, ErrInvalidFileType
	}
	if input.FileType == models.FileTypeWeb {
		if strings.TrimSpace(input.FileURL) == "" {
			return nil, ErrWebURLRequired
		}
	} else if input.FileURL == "" {
		return nil, ErrFileURLRequired
	}

	work := &models.Work{
		ID:                  uuid.NewString(),
		Title:               title,
		Description:         description,
		DetailedDescription: strings.TrimSpace(input.DetailedDescription),
		AuthorID:            input.AuthorID,
		Category:            input.Category,
		FileURL:             input.FileURL,
		FileType:            input.FileType,
		VoteCount:           0,
	}

	if err := s.workRepo.Create(work); err != nil {
		return nil, fmt.Errorf("failed to create work: %w", err)
	}

	return s.workRepo.FindByID(work.ID, "Author")
}

// GetWork returns a work joined with its author's public profile.
func (s *WorkService) GetWork(id string) (*models.Work, error) {
	work, err := s.workRepo.FindByID(id, "Author")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkNotFound
		}
		return nil, fmt.Errorf("failed to find work: %w", err)
	}

	return work, nil
}

// ListWorks returns all works newest-first with authors preloaded.
func (s *WorkService) ListWorks() ([]models.Work, error) {
	works, _, err := s.workRepo.List(repository.WorkFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list works: %w", err)
	}
	return works, nil
}

// ListWorksByAuthor returns one author's works newest-first.
func (s *WorkService) ListWorksByAuthor(authorID string, page, pageSize int) ([]models.Work, int64, error) {
	works, total, err := s.workRepo.List(repository.WorkFilter{
		AuthorID: &authorID,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list works: %w", err)
	}
	return works, total, nil
}

// UpdateWork edits a work if the actor is the author.
func (s *WorkService) UpdateWork(workID, actorID string, input UpdateWorkInput) (*models.Work, error) {
	work, err := s.workRepo.FindByID(workID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkNotFound
		}
		return nil, fmt.Errorf("failed to find work: %w", err)
	}

	if work.AuthorID != actorID {
		return nil, ErrNotWorkAuthor
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, ErrTitleRequired
		}
		work.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		if strings.TrimSpace(*input.Description) == "" {
			return nil, ErrDescriptionRequired
		}
		work.Description = strings.TrimSpace(*input.Description)
	}
	if input.DetailedDescription != nil {
		work.DetailedDescription = strings.TrimSpace(*input.DetailedDescription)
	}
	if input.Category != nil {
		if !models.IsValidCategory(*input.Category) {
			return nil, ErrInvalidWorkCategory
		}
		work.Category = *input.Category
	}
	if input.FileType != nil {
		if !models.IsValidFileType(*input.FileType) {
			return nil, ErrInvalidFileType
		}
		// Switching to web replaces a stored file path with an external URL,
		// so the URL must come with the change.
		if *input.FileType == models.FileTypeWeb && work.FileType != models.FileTypeWeb && input.FileURL == nil {
			return nil, ErrWebURLRequired
		}
		work.FileType = *input.FileType
	}
	if input.FileURL != nil {
		work.FileURL = strings.TrimSpace(*input.FileURL)
	}
	if work.FileType == models.FileTypeWeb {
		if work.FileURL == "" {
			return nil, ErrWebURLRequired
		}
	} else if work.FileURL == "" {
		return nil, ErrFileURLRequired
	}

	// Save refreshes updated_at
	if err := s.workRepo.Update(work); err != nil {
		return nil, fmt.Errorf("failed to update work: %w", err)
	}

	return s.workRepo.FindByID(work.ID, "Author")
}

// DeleteWork removes a work with its votes and comments if the actor is the
// author. The stored file is deleted best-effort afterwards; a storage
// failure does not undo the database delete.
func (s *WorkService) DeleteWork(ctx context.Context, workID, actorID string) error {
	work, err := s.workRepo.FindByID(workID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWorkNotFound
		}
		return fmt.Errorf("failed to find work: %w", err)
	}

	if work.AuthorID != actorID {
		return ErrNotWorkAuthor
	}

	if err := s.workRepo.DeleteCascade(workID); err != nil {
		return fmt.Errorf("failed to delete work: %w", err)
	}

	if s.store != nil && work.FileType != models.FileTypeWeb {
		if path := utils.ExtractObjectPath(work.FileURL); path != "" {
			if err := s.store.Delete(ctx, path); err != nil {
				log.Printf("failed to delete stored file %s: %v", path, err)
			}
		}
	}

	return nil
}
