package models

import "time"

type Category string

const (
	CategoryAIArt           Category = "ai-art"
	CategoryMachineLearning Category = "machine-learning"
	CategoryComputerVision  Category = "computer-vision"
	CategoryNLP             Category = "natural-language-processing"
	CategoryRobotics        Category = "robotics"
	CategoryOther           Category = "other"

	// CategoryAll is a filter sentinel, never stored on a work.
	CategoryAll Category = "all"
)

// Categories lists every storable category in display order.
var Categories = []Category{
	CategoryAIArt,
	CategoryMachineLearning,
	CategoryComputerVision,
	CategoryNLP,
	CategoryRobotics,
	CategoryOther,
}

// IsValidCategory reports whether c may be stored on a work.
func IsValidCategory(c Category) bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

type FileType string

const (
	FileTypeImage    FileType = "image"
	FileTypeVideo    FileType = "video"
	FileTypeAudio    FileType = "audio"
	FileTypeDocument FileType = "document"
	FileTypeWeb      FileType = "web"
)

// IsValidFileType reports whether t is a known media type tag.
func IsValidFileType(t FileType) bool {
	switch t {
	case FileTypeImage, FileTypeVideo, FileTypeAudio, FileTypeDocument, FileTypeWeb:
		return true
	}
	return false
}

// Work is a submitted creative work. It is owned exclusively by its author;
// vote_count is a denormalized aggregate maintained by the vote ledger.
type Work struct {
	ID                  string    `gorm:"type:varchar(36);primarykey" json:"id"`
	Title               string    `gorm:"type:varchar(255);not null" json:"title"`
	Description         string    `gorm:"type:text;not null" json:"description"`
	DetailedDescription string    `gorm:"type:text" json:"detailed_description,omitempty"`
	AuthorID            string    `gorm:"type:varchar(36);index;not null" json:"author_id"`
	Category            Category  `gorm:"type:varchar(50);not null" json:"category"`
	FileURL             string    `gorm:"type:varchar(1000);not null" json:"file_url"`
	FileType            FileType  `gorm:"type:varchar(20);not null" json:"file_type"`
	VoteCount           int64     `gorm:"not null;default:0" json:"vote_count"`
	CreatedAt           time.Time `gorm:"index" json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`

	// Relations
	Author   Profile   `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Votes    []Vote    `gorm:"foreignKey:WorkID" json:"-"`
	Comments []Comment `gorm:"foreignKey:WorkID" json:"-"`
}
