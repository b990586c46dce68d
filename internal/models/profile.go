package models

import "time"

// Profile is the public identity record for a user. One profile exists per
// email address; everything except the avatar is immutable after creation.
type Profile struct {
	ID        string    `gorm:"type:varchar(36);primarykey" json:"id"`
	Username  string    `gorm:"type:varchar(50);not null" json:"username"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	AvatarURL string    `gorm:"type:varchar(500)" json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Works []Work `gorm:"foreignKey:AuthorID" json:"-"`
}
