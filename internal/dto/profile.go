package dto

import (
	"time"

	"github.com/mizuhara/showcase-api/internal/models"
)

// ProfileDTO represents the session user's own profile in API responses
type ProfileDTO struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthorDTO is the public slice of a profile joined onto works
type AuthorDTO struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// ToProfileDTO converts a Profile model to ProfileDTO
func ToProfileDTO(profile models.Profile) ProfileDTO {
	return ProfileDTO{
		ID:        profile.ID,
		Username:  profile.Username,
		Email:     profile.Email,
		AvatarURL: profile.AvatarURL,
		CreatedAt: profile.CreatedAt,
	}
}

// ToAuthorDTO converts a Profile model to its public AuthorDTO
func ToAuthorDTO(profile models.Profile) AuthorDTO {
	return AuthorDTO{
		ID:        profile.ID,
		Username:  profile.Username,
		AvatarURL: profile.AvatarURL,
	}
}
