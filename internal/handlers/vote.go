package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/mizuhara/showcase-api/internal/errors"
	"github.com/mizuhara/showcase-api/internal/middleware"
	"github.com/mizuhara/showcase-api/internal/services"
)

// VoteHandler exposes the vote ledger.
type VoteHandler struct {
	voteService *services.VoteService
}

// NewVoteHandler creates a new VoteHandler.
func NewVoteHandler(voteService *services.VoteService) *VoteHandler {
	return &VoteHandler{
		voteService: voteService,
	}
}

// CastVote records the session user's vote for a work. Voting again for the
// same work is not an error: the response carries already_voted and the
// counter is unchanged.
func (h *VoteHandler) CastVote(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	result, err := h.voteService.CastVote(userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrWorkNotFound) {
			apierrors.NotFound(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to record vote")
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListMyVotes returns the ids of all works the session user voted for.
func (h *VoteHandler) ListMyVotes(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	workIDs, err := h.voteService.ListUserVotes(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch votes")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"work_ids": workIDs,
	})
}
