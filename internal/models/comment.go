package models

import "time"

// Comment is an append-only entry on a work. Author name and avatar are
// snapshotted at write time so later profile changes do not rewrite history.
type Comment struct {
	ID        string    `gorm:"type:varchar(36);primarykey" json:"id"`
	WorkID    string    `gorm:"type:varchar(36);index;not null" json:"work_id"`
	UserID    string    `gorm:"type:varchar(36);not null" json:"user_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Author    string    `gorm:"type:varchar(50);not null" json:"author"`
	Avatar    string    `gorm:"type:varchar(500)" json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
