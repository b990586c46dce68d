package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/mizuhara/showcase-api/internal/models"
	"github.com/mizuhara/showcase-api/internal/repository"
	"gorm.io/gorm"
)

// VoteService enforces the one-vote-per-user-per-work rule and maintains the
// denormalized vote_count on works.
type VoteService struct {
	voteRepo repository.VoteRepository
	workRepo repository.WorkRepository
}

// NewVoteService creates a new VoteService
func NewVoteService(voteRepo repository.VoteRepository, workRepo repository.WorkRepository) *VoteService {
	return &VoteService{
		voteRepo: voteRepo,
		workRepo: workRepo,
	}
}

// VoteResult reports the outcome of a cast attempt.
type VoteResult struct {
	Voted        bool  `json:"voted"`
	AlreadyVoted bool  `json:"already_voted"`
	VoteCount    int64 `json:"vote_count"`
}

// CastVote records a vote for a work. A repeated vote by the same user is a
// no-op: the unique index absorbs it and the counter stays untouched. On a
// new vote the counter goes up by exactly one; if that increment fails the
// vote still stands and the counter catches up at the next reconcile.
func (s *VoteService) CastVote(userID, workID string) (*VoteResult, error) {
	work, err := s.workRepo.FindByID(workID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkNotFound
		}
		return nil, fmt.Errorf("failed to find work: %w", err)
	}

	inserted, err := s.voteRepo.Insert(&models.Vote{
		ID:     uuid.NewString(),
		UserID: userID,
		WorkID: workID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record vote: %w", err)
	}

	if !inserted {
		return &VoteResult{AlreadyVoted: true, VoteCount: work.VoteCount}, nil
	}

	count := work.VoteCount + 1
	if err := s.voteRepo.IncrementVoteCount(workID); err != nil {
		// The vote row is committed; the counter lags until reconciled. Report
		// the true row count so the caller still sees their vote.
		log.Printf("vote recorded but counter increment failed for work %s: %v", workID, err)
		count = work.VoteCount
		if rows, countErr := s.voteRepo.CountByWork(workID); countErr == nil {
			count = rows
		}
	}

	return &VoteResult{Voted: true, VoteCount: count}, nil
}

// ListUserVotes returns the ids of all works the user has voted for.
func (s *VoteService) ListUserVotes(userID string) ([]string, error) {
	workIDs, err := s.voteRepo.ListWorkIDsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}
	return workIDs, nil
}

// ReconcileVoteCounts recomputes every work's counter from the vote rows.
func (s *VoteService) ReconcileVoteCounts() error {
	if err := s.voteRepo.ReconcileVoteCounts(); err != nil {
		return fmt.Errorf("failed to reconcile vote counts: %w", err)
	}
	return nil
}
