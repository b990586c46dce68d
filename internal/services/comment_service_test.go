package services

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mizuhara/showcase-api/internal/constants"
	"github.com/mizuhara/showcase-api/internal/models"
	"github.com/mizuhara/showcase-api/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type commentTestEnv struct {
	db      *gorm.DB
	service *CommentService
}

func setupCommentTestEnv(t *testing.T) commentTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.Profile{}, &models.Work{}, &models.Comment{})
	require.NoError(t, err)

	service := NewCommentService(
		repository.NewCommentRepository(db),
		repository.NewWorkRepository(db),
		repository.NewProfileRepository(db),
	)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return commentTestEnv{db: db, service: service}
}

func seedWorkWithAuthor(t *testing.T, db *gorm.DB) (*models.Profile, *models.Work) {
	t.Helper()

	profile := &models.Profile{
		ID:        uuid.NewString(),
		Username:  "alice",
		Email:     "alice@example.com",
		AvatarURL: "https://avatars.example.com/alice.svg",
	}
	require.NoError(t, db.Create(profile).Error)

	work := &models.Work{
		ID:          uuid.NewString(),
		Title:       "Neon Dreams",
		Description: "A generative cityscape",
		AuthorID:    profile.ID,
		Category:    models.CategoryAIArt,
		FileURL:     "/files/uploads/neon.png",
		FileType:    models.FileTypeImage,
	}
	require.NoError(t, db.Create(work).Error)

	return profile, work
}

func TestCommentService_AddCommentSnapshotsAuthor(t *testing.T) {
	env := setupCommentTestEnv(t)
	profile, work := seedWorkWithAuthor(t, env.db)

	comment, err := env.service.AddComment(work.ID, profile.ID, "  great work!  ")
	require.NoError(t, err)
	require.Equal(t, "great work!", comment.Content)
	require.Equal(t, "alice", comment.Author)
	require.Equal(t, profile.AvatarURL, comment.Avatar)

	// A later rename must not rewrite history.
	require.NoError(t, env.db.Model(&models.Profile{}).
		Where("id = ?", profile.ID).
		Update("username", "alice-renamed").Error)

	comments, err := env.service.ListComments(work.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	require.Equal(t, "alice", comments[0].Author)
}

func TestCommentService_RejectsWhitespaceOnly(t *testing.T) {
	env := setupCommentTestEnv(t)
	profile, work := seedWorkWithAuthor(t, env.db)

	_, err := env.service.AddComment(work.ID, profile.ID, "   \n\t  ")
	require.ErrorIs(t, err, ErrEmptyComment)

	// Nothing may be written on rejection.
	var count int64
	env.db.Model(&models.Comment{}).Count(&count)
	require.EqualValues(t, 0, count)
}

func TestCommentService_RejectsOverlongComment(t *testing.T) {
	env := setupCommentTestEnv(t)
	profile, work := seedWorkWithAuthor(t, env.db)

	_, err := env.service.AddComment(work.ID, profile.ID, strings.Repeat("a", constants.MaxCommentLength+1))
	require.ErrorIs(t, err, ErrCommentTooLong)

	// The boundary itself is allowed.
	_, err = env.service.AddComment(work.ID, profile.ID, strings.Repeat("a", constants.MaxCommentLength))
	require.NoError(t, err)
}

func TestCommentService_MissingWorkOrProfile(t *testing.T) {
	env := setupCommentTestEnv(t)
	profile, work := seedWorkWithAuthor(t, env.db)

	_, err := env.service.AddComment(uuid.NewString(), profile.ID, "hello")
	require.ErrorIs(t, err, ErrWorkNotFound)

	_, err = env.service.AddComment(work.ID, uuid.NewString(), "hello")
	require.ErrorIs(t, err, ErrProfileNotFound)

	_, err = env.service.ListComments(uuid.NewString())
	require.ErrorIs(t, err, ErrWorkNotFound)
}

func TestCommentService_ListNewestFirst(t *testing.T) {
	env := setupCommentTestEnv(t)
	profile, work := seedWorkWithAuthor(t, env.db)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, content := range []string{"first", "second", "third"} {
		comment := &models.Comment{
			ID:        uuid.NewString(),
			WorkID:    work.ID,
			UserID:    profile.ID,
			Content:   content,
			Author:    profile.Username,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, env.db.Create(comment).Error)
	}

	comments, err := env.service.ListComments(work.ID)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	require.Equal(t, "third", comments[0].Content)
	require.Equal(t, "first", comments[2].Content)
}
