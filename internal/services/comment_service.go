package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mizuhara/showcase-api/internal/constants"
	"github.com/mizuhara/showcase-api/internal/models"
	"github.com/mizuhara/showcase-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrEmptyComment   = errors.New("comment cannot be empty")
	ErrCommentTooLong = errors.New("comment is too long")
)

// CommentService handles the append-only comment log.
type CommentService struct {
	commentRepo repository.CommentRepository
	workRepo    repository.WorkRepository
	profileRepo repository.ProfileRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repository.CommentRepository, workRepo repository.WorkRepository, profileRepo repository.ProfileRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		workRepo:    workRepo,
		profileRepo: profileRepo,
	}
}

// AddComment appends a comment to a work. The author's display name and
// avatar are snapshotted at write time; later profile renames do not change
// historical comments.
func (s *CommentService) AddComment(workID, userID, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyComment
	}
	if len(content) > constants.MaxCommentLength {
		return nil, ErrCommentTooLong
	}

	if _, err := s.workRepo.FindByID(workID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkNotFound
		}
		return nil, fmt.Errorf("failed to find work: %w", err)
	}

	profile, err := s.profileRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}

	comment := &models.Comment{
		ID:      uuid.NewString(),
		WorkID:  workID,
		UserID:  userID,
		Content: content,
		Author:  profile.Username,
		Avatar:  profile.AvatarURL,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return comment, nil
}

// ListComments returns a work's comments newest-first.
func (s *CommentService) ListComments(workID string) ([]models.Comment, error) {
	if _, err := s.workRepo.FindByID(workID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkNotFound
		}
		return nil, fmt.Errorf("failed to find work: %w", err)
	}

	comments, err := s.commentRepo.ListByWork(workID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}
