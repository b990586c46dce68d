package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mizuhara/showcase-api/internal/constants"
	"github.com/mizuhara/showcase-api/internal/database"
	"github.com/mizuhara/showcase-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB opens an in-memory database with the full schema and registers
// it as the process-wide instance.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Profile{},
		&models.Work{},
		&models.Vote{},
		&models.Comment{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func createTestProfile(t *testing.T, db *gorm.DB, username, email string) *models.Profile {
	t.Helper()

	profile := &models.Profile{
		ID:       uuid.NewString(),
		Username: username,
		Email:    email,
	}
	require.NoError(t, db.Create(profile).Error)
	return profile
}

func createTestWork(t *testing.T, db *gorm.DB, title, authorID string, votes int64, createdAt time.Time) *models.Work {
	t.Helper()

	work := &models.Work{
		ID:          uuid.NewString(),
		Title:       title,
		Description: "Test Description",
		AuthorID:    authorID,
		Category:    models.CategoryAIArt,
		FileURL:     "/files/uploads/test.png",
		FileType:    models.FileTypeImage,
		VoteCount:   votes,
		CreatedAt:   createdAt,
	}
	require.NoError(t, db.Create(work).Error)
	return work
}

// createAuthContext builds a request context carrying a session identity.
func createAuthContext(method, url string, body []byte, userID string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	if userID != "" {
		c.Set(constants.ContextKeyUserID, userID)
	}

	return c, w
}
