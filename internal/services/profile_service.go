package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mizuhara/showcase-api/internal/models"
	"github.com/mizuhara/showcase-api/internal/repository"
	"github.com/mizuhara/showcase-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrEmailRequired         = errors.New("email is required")
	ErrProfileNotFound       = errors.New("profile not found")
	ErrFailedToCreateProfile = errors.New("failed to create profile")
)

// ProfileService resolves identities. "Login" is a lookup-or-create keyed by
// email: the first login for an email registers it, every later one returns
// the same profile.
type ProfileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService creates a new ProfileService.
func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
	}
}

// ResolveInput holds the identity resolution parameters.
type ResolveInput struct {
	Email    string
	Username string
}

// GetOrCreate returns the profile for an email, creating one on first login.
// When no username is given it falls back to the email local-part. New
// profiles get a deterministic placeholder avatar derived from the username.
func (s *ProfileService) GetOrCreate(input ResolveInput) (*models.Profile, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return nil, ErrEmailRequired
	}

	existing, err := s.profileRepo.FindByEmail(email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up profile: %w", err)
	}

	username := strings.TrimSpace(input.Username)
	if username == "" {
		username = email
		if at := strings.Index(email, "@"); at > 0 {
			username = email[:at]
		}
	}

	profile := &models.Profile{
		ID:        uuid.NewString(),
		Username:  username,
		Email:     email,
		AvatarURL: utils.PlaceholderAvatarURL(username),
	}

	if err := s.profileRepo.Create(profile); err != nil {
		return nil, ErrFailedToCreateProfile
	}

	return profile, nil
}

// GetProfile retrieves a profile by ID.
func (s *ProfileService) GetProfile(id string) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}

	return profile, nil
}

// UpdateAvatar changes the avatar, the only mutable profile field.
func (s *ProfileService) UpdateAvatar(id, avatarURL string) (*models.Profile, error) {
	if _, err := s.GetProfile(id); err != nil {
		return nil, err
	}

	if err := s.profileRepo.UpdateAvatar(id, avatarURL); err != nil {
		return nil, fmt.Errorf("failed to update avatar: %w", err)
	}

	return s.GetProfile(id)
}
