package repository

import (
	"github.com/mizuhara/showcase-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormVoteRepository is a GORM implementation of VoteRepository
type GormVoteRepository struct {
	db *gorm.DB
}

// NewVoteRepository creates a new VoteRepository
func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &GormVoteRepository{db: db}
}

// Insert records a vote with insert-or-ignore semantics. The unique index on
// (user_id, work_id) turns a concurrent duplicate into a no-op instead of a
// second row, so the uniqueness invariant holds without any client-side
// sequencing.
func (r *GormVoteRepository) Insert(vote *models.Vote) (bool, error) {
	result := r.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "work_id"}},
			DoNothing: true,
		}).
		Create(vote)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// IncrementVoteCount adds one to the denormalized counter on a work
func (r *GormVoteRepository) IncrementVoteCount(workID string) error {
	return r.db.Model(&models.Work{}).
		Where("id = ?", workID).
		UpdateColumn("vote_count", gorm.Expr("vote_count + ?", 1)).Error
}

// ListWorkIDsByUser returns the ids of all works a user voted for
func (r *GormVoteRepository) ListWorkIDsByUser(userID string) ([]string, error) {
	var workIDs []string
	err := r.db.Model(&models.Vote{}).
		Where("user_id = ?", userID).
		Pluck("work_id", &workIDs).Error
	return workIDs, err
}

// CountByWork returns the true number of vote rows for a work
func (r *GormVoteRepository) CountByWork(workID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Vote{}).
		Where("work_id = ?", workID).
		Count(&count).Error
	return count, err
}

// ReconcileVoteCounts rewrites every work's vote_count from the vote rows.
// The counter is a best-effort cache; this is the operator repair path for
// drift after a failed increment.
func (r *GormVoteRepository) ReconcileVoteCounts() error {
	return r.db.Exec(
		"UPDATE works SET vote_count = (SELECT COUNT(*) FROM votes WHERE votes.work_id = works.id)",
	).Error
}
