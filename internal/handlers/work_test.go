package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mizuhara/showcase-api/internal/dto"
	"github.com/mizuhara/showcase-api/internal/models"
	"github.com/mizuhara/showcase-api/internal/repository"
	"github.com/mizuhara/showcase-api/internal/services"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// WorkHandlerTestSuite defines the test suite for WorkHandler
type WorkHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *WorkHandler
}

// SetupTest runs before each test
func (suite *WorkHandlerTestSuite) SetupTest() {
	suite.db = openTestDB(suite.T())

	workRepo := repository.NewWorkRepository(suite.db)
	workService := services.NewWorkService(workRepo, nil)
	suite.handler = NewWorkHandler(workService)
}

func (suite *WorkHandlerTestSuite) TestCreateWork() {
	author := createTestProfile(suite.T(), suite.db, "alice", "alice@example.com")

	payload := map[string]interface{}{
		"title":       "Neon Dreams",
		"description": "A generative cityscape",
		"category":    "ai-art",
		"file_url":    "/files/uploads/neon.png",
		"file_type":   "image",
	}
	body, _ := json.Marshal(payload)

	c, w := createAuthContext(http.MethodPost, "/api/works", body, author.ID)
	suite.handler.CreateWork(c)

	suite.Equal(http.StatusCreated, w.Code)

	var response dto.WorkDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal("Neon Dreams", response.Title)
	suite.Equal(author.ID, response.AuthorID)
	suite.EqualValues(0, response.VoteCount)
	suite.Require().NotNil(response.Author)
	suite.Equal("alice", response.Author.Username)
}

func (suite *WorkHandlerTestSuite) TestCreateWorkRejectsUnknownCategory() {
	author := createTestProfile(suite.T(), suite.db, "alice", "alice@example.com")

	payload := map[string]interface{}{
		"title":       "Mystery",
		"description": "Uncategorizable",
		"category":    "cooking",
		"file_url":    "/files/uploads/m.png",
		"file_type":   "image",
	}
	body, _ := json.Marshal(payload)

	c, w := createAuthContext(http.MethodPost, "/api/works", body, author.ID)
	suite.handler.CreateWork(c)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *WorkHandlerTestSuite) TestCreateWebWorkRequiresURL() {
	author := createTestProfile(suite.T(), suite.db, "alice", "alice@example.com")

	payload := map[string]interface{}{
		"title":       "My Site",
		"description": "An interactive demo",
		"category":    "other",
		"file_url":    "   ",
		"file_type":   "web",
	}
	body, _ := json.Marshal(payload)

	c, w := createAuthContext(http.MethodPost, "/api/works", body, author.ID)
	suite.handler.CreateWork(c)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *WorkHandlerTestSuite) TestUpdateWorkByAuthor() {
	author := createTestProfile(suite.T(), suite.db, "alice", "alice@example.com")
	work := createTestWork(suite.T(), suite.db, "Original", author.ID, 0, time.Now())

	payload := map[string]interface{}{"title": "Renamed"}
	body, _ := json.Marshal(payload)

	c, w := createAuthContext(http.MethodPatch, "/api/works/"+work.ID, body, author.ID)
	c.Params = gin.Params{{Key: "id", Value: work.ID}}
	suite.handler.UpdateWork(c)

	suite.Equal(http.StatusOK, w.Code)

	var updated models.Work
	suite.db.First(&updated, "id = ?", work.ID)
	suite.Equal("Renamed", updated.Title)
}

func (suite *WorkHandlerTestSuite) TestUpdateWorkToWebRequiresNewURL() {
	author := createTestProfile(suite.T(), suite.db, "alice", "alice@example.com")
	work := createTestWork(suite.T(), suite.db, "Stored File", author.ID, 0, time.Now())

	// Changing the type to web without a replacement URL would leave the old
	// stored-file path masquerading as a web link.
	payload := map[string]interface{}{"file_type": "web"}
	body, _ := json.Marshal(payload)

	c, w := createAuthContext(http.MethodPatch, "/api/works/"+work.ID, body, author.ID)
	c.Params = gin.Params{{Key: "id", Value: work.ID}}
	suite.handler.UpdateWork(c)

	suite.Equal(http.StatusBadRequest, w.Code)

	var unchanged models.Work
	suite.db.First(&unchanged, "id = ?", work.ID)
	suite.Equal(models.FileTypeImage, unchanged.FileType)
}

func (suite *WorkHandlerTestSuite) TestUpdateWorkToWebWithURL() {
	author := createTestProfile(suite.T(), suite.db, "alice", "alice@example.com")
	work := createTestWork(suite.T(), suite.db, "Stored File", author.ID, 0, time.Now())

	payload := map[string]interface{}{
		"file_type": "web",
		"file_url":  "https://demo.example.com",
	}
	body, _ := json.Marshal(payload)

	c, w := createAuthContext(http.MethodPatch, "/api/works/"+work.ID, body, author.ID)
	c.Params = gin.Params{{Key: "id", Value: work.ID}}
	suite.handler.UpdateWork(c)

	suite.Equal(http.StatusOK, w.Code)

	var updated models.Work
	suite.db.First(&updated, "id = ?", work.ID)
	suite.Equal(models.FileTypeWeb, updated.FileType)
	suite.Equal("https://demo.example.com", updated.FileURL)
}

func (suite *WorkHandlerTestSuite) TestUpdateWorkRejectsEmptyFileURL() {
	author := createTestProfile(suite.T(), suite.db, "alice", "alice@example.com")
	work := createTestWork(suite.T(), suite.db, "Stored File", author.ID, 0, time.Now())

	payload := map[string]interface{}{"file_url": "   "}
	body, _ := json.Marshal(payload)

	c, w := createAuthContext(http.MethodPatch, "/api/works/"+work.ID, body, author.ID)
	c.Params = gin.Params{{Key: "id", Value: work.ID}}
	suite.handler.UpdateWork(c)

	suite.Equal(http.StatusBadRequest, w.Code)

	var unchanged models.Work
	suite.db.First(&unchanged, "id = ?", work.ID)
	suite.Equal(work.FileURL, unchanged.FileURL)
}

func (suite *WorkHandlerTestSuite) TestUpdateWorkByNonAuthorForbidden() {
	author := createTestProfile(suite.T(), suite.db, "alice", "alice@example.com")
	intruder := createTestProfile(suite.T(), suite.db, "bob", "bob@example.com")
	work := createTestWork(suite.T(), suite.db, "Original", author.ID, 0, time.Now())

	payload := map[string]interface{}{"title": "Hijacked"}
	body, _ := json.Marshal(payload)

	c, w := createAuthContext(http.MethodPatch, "/api/works/"+work.ID, body, intruder.ID)
	c.Params = gin.Params{{Key: "id", Value: work.ID}}
	suite.handler.UpdateWork(c)

	suite.Equal(http.StatusForbidden, w.Code)

	// The work must be unchanged.
	var unchanged models.Work
	suite.db.First(&unchanged, "id = ?", work.ID)
	suite.Equal("Original", unchanged.Title)
}

func (suite *WorkHandlerTestSuite) TestDeleteWorkCascades() {
	author := createTestProfile(suite.T(), suite.db, "alice", "alice@example.com")
	voter := createTestProfile(suite.T(), suite.db, "bob", "bob@example.com")
	work := createTestWork(suite.T(), suite.db, "Doomed", author.ID, 1, time.Now())

	suite.db.Create(&models.Vote{ID: uuid.NewString(), UserID: voter.ID, WorkID: work.ID})
	suite.db.Create(&models.Comment{ID: uuid.NewString(), WorkID: work.ID, UserID: voter.ID, Content: "nice", Author: "bob"})

	c, w := createAuthContext(http.MethodDelete, "/api/works/"+work.ID, nil, author.ID)
	c.Params = gin.Params{{Key: "id", Value: work.ID}}
	suite.handler.DeleteWork(c)

	suite.Equal(http.StatusOK, w.Code)

	var workCount, voteCount, commentCount int64
	suite.db.Model(&models.Work{}).Where("id = ?", work.ID).Count(&workCount)
	suite.db.Model(&models.Vote{}).Where("work_id = ?", work.ID).Count(&voteCount)
	suite.db.Model(&models.Comment{}).Where("work_id = ?", work.ID).Count(&commentCount)
	suite.EqualValues(0, workCount)
	suite.EqualValues(0, voteCount)
	suite.EqualValues(0, commentCount)
}

func (suite *WorkHandlerTestSuite) TestDeleteWorkByNonAuthorForbidden() {
	author := createTestProfile(suite.T(), suite.db, "alice", "alice@example.com")
	intruder := createTestProfile(suite.T(), suite.db, "bob", "bob@example.com")
	work := createTestWork(suite.T(), suite.db, "Safe", author.ID, 0, time.Now())

	c, w := createAuthContext(http.MethodDelete, "/api/works/"+work.ID, nil, intruder.ID)
	c.Params = gin.Params{{Key: "id", Value: work.ID}}
	suite.handler.DeleteWork(c)

	suite.Equal(http.StatusForbidden, w.Code)

	var count int64
	suite.db.Model(&models.Work{}).Where("id = ?", work.ID).Count(&count)
	suite.EqualValues(1, count)
}

func (suite *WorkHandlerTestSuite) TestListWorksEmptyGallery() {
	c, w := createAuthContext(http.MethodGet, "/api/works", nil, "")
	suite.handler.ListWorks(c)

	suite.Equal(http.StatusOK, w.Code)

	var response dto.WorkListResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Empty(response.Works)
	suite.Equal(0, response.Total)
}

func (suite *WorkHandlerTestSuite) TestListWorksFiltersAndRanks() {
	alice := createTestProfile(suite.T(), suite.db, "alice", "alice@example.com")
	bob := createTestProfile(suite.T(), suite.db, "bob", "bob@example.com")

	base := time.Now().Add(-3 * time.Hour)
	low := createTestWork(suite.T(), suite.db, "Older Tie", alice.ID, 5, base)
	high := createTestWork(suite.T(), suite.db, "Newer Tie", bob.ID, 5, base.Add(time.Hour))
	createTestWork(suite.T(), suite.db, "Few Votes", alice.ID, 1, base.Add(2*time.Hour))

	c, w := createAuthContext(http.MethodGet, "/api/works?category=ai-art", nil, "")
	suite.handler.ListWorks(c)

	suite.Equal(http.StatusOK, w.Code)

	var response dto.WorkListResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().Len(response.Works, 3)

	// Ties at 5 votes resolve newest-first.
	suite.Equal(high.ID, response.Works[0].ID)
	suite.Equal(low.ID, response.Works[1].ID)
}

func (suite *WorkHandlerTestSuite) TestListWorksTextSearch() {
	alice := createTestProfile(suite.T(), suite.db, "alice", "alice@example.com")
	createTestWork(suite.T(), suite.db, "Neon Dreams", alice.ID, 0, time.Now())
	createTestWork(suite.T(), suite.db, "Quiet Garden", alice.ID, 0, time.Now())

	c, w := createAuthContext(http.MethodGet, "/api/works?search=neon", nil, "")
	suite.handler.ListWorks(c)

	suite.Equal(http.StatusOK, w.Code)

	var response dto.WorkListResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().Len(response.Works, 1)
	suite.Equal("Neon Dreams", response.Works[0].Title)
}

func TestWorkHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(WorkHandlerTestSuite))
}
