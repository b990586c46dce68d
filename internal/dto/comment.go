package dto

import (
	"time"

	"github.com/mizuhara/showcase-api/internal/models"
)

// CommentDTO represents a comment in API responses. Author and avatar are
// the values snapshotted when the comment was written.
type CommentDTO struct {
	ID        string    `json:"id"`
	WorkID    string    `json:"work_id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ToCommentDTO converts a Comment model to CommentDTO
func ToCommentDTO(comment models.Comment) CommentDTO {
	return CommentDTO{
		ID:        comment.ID,
		WorkID:    comment.WorkID,
		UserID:    comment.UserID,
		Content:   comment.Content,
		Author:    comment.Author,
		Avatar:    comment.Avatar,
		CreatedAt: comment.CreatedAt,
	}
}

// ToCommentDTOs converts a slice of comments
func ToCommentDTOs(comments []models.Comment) []CommentDTO {
	items := make([]CommentDTO, len(comments))
	for i, comment := range comments {
		items[i] = ToCommentDTO(comment)
	}
	return items
}
