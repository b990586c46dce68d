package repository

import (
	"github.com/mizuhara/showcase-api/internal/models"
	"gorm.io/gorm"
)

// GormCommentRepository is a GORM implementation of CommentRepository
type GormCommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &GormCommentRepository{db: db}
}

// Create appends a comment
func (r *GormCommentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// ListByWork returns a work's comments newest-first
func (r *GormCommentRepository) ListByWork(workID string) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("work_id = ?", workID).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}
