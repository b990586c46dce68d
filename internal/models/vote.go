package models

import "time"

// Vote records that a user voted for a work. The composite unique index is
// the uniqueness guarantee: at most one vote per (user, work) pair, enforced
// by the database regardless of concurrent writers.
type Vote struct {
	ID        string    `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID    string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_votes_user_work" json:"user_id"`
	WorkID    string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_votes_user_work" json:"work_id"`
	CreatedAt time.Time `json:"created_at"`
}
