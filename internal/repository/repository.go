package repository

import (
	"github.com/mizuhara/showcase-api/internal/models"
)

// ProfileRepository defines the interface for profile data access
type ProfileRepository interface {
	// Create creates a new profile
	Create(profile *models.Profile) error

	// FindByID finds a profile by ID
	FindByID(id string) (*models.Profile, error)

	// FindByEmail finds a profile by email
	FindByEmail(email string) (*models.Profile, error)

	// UpdateAvatar updates only the avatar URL of a profile
	UpdateAvatar(id, avatarURL string) error
}

// WorkFilter holds data-layer filtering options for listing works. Free-text
// search and vote ranking happen in the gallery layer, not here.
type WorkFilter struct {
	AuthorID *string
	Page     int
	PageSize int
}

// WorkRepository defines the interface for work data access
type WorkRepository interface {
	// Create creates a new work
	Create(work *models.Work) error

	// FindByID finds a work by ID with optional preloading
	FindByID(id string, preload ...string) (*models.Work, error)

	// List retrieves works newest-first with their authors preloaded
	List(filter WorkFilter) ([]models.Work, int64, error)

	// Update updates a work
	Update(work *models.Work) error

	// DeleteCascade removes a work together with its votes and comments in
	// one transaction so no orphan rows survive
	DeleteCascade(id string) error
}

// VoteRepository defines the interface for the vote ledger
type VoteRepository interface {
	// Insert records a vote with insert-or-ignore semantics against the
	// unique (user_id, work_id) index. Returns false when the pair already
	// existed and nothing was written.
	Insert(vote *models.Vote) (bool, error)

	// IncrementVoteCount adds one to the denormalized counter on a work
	IncrementVoteCount(workID string) error

	// ListWorkIDsByUser returns the ids of all works a user voted for
	ListWorkIDsByUser(userID string) ([]string, error)

	// CountByWork returns the true number of vote rows for a work
	CountByWork(workID string) (int64, error)

	// ReconcileVoteCounts recomputes every work's vote_count from the vote
	// rows, repairing any counter drift
	ReconcileVoteCounts() error
}

// CommentRepository defines the interface for the comment log
type CommentRepository interface {
	// Create appends a comment
	Create(comment *models.Comment) error

	// ListByWork returns a work's comments newest-first
	ListByWork(workID string) ([]models.Comment, error)
}
