package repository

import (
	"github.com/mizuhara/showcase-api/internal/database"
	"github.com/mizuhara/showcase-api/internal/models"
	"github.com/mizuhara/showcase-api/internal/utils"
	"gorm.io/gorm"
)

// GormWorkRepository is a GORM implementation of WorkRepository
type GormWorkRepository struct {
	db *gorm.DB
}

// NewWorkRepository creates a new WorkRepository
func NewWorkRepository(db *gorm.DB) WorkRepository {
	return &GormWorkRepository{db: db}
}

// Create creates a new work
func (r *GormWorkRepository) Create(work *models.Work) error {
	return r.db.Create(work).Error
}

// FindByID finds a work by ID with optional preloading
func (r *GormWorkRepository) FindByID(id string, preload ...string) (*models.Work, error) {
	var work models.Work
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.Where("id = ?", id).First(&work).Error; err != nil {
		return nil, err
	}

	return &work, nil
}

// List retrieves works newest-first with their authors preloaded
func (r *GormWorkRepository) List(filter WorkFilter) ([]models.Work, int64, error) {
	var works []models.Work

	query := r.db.Model(&models.Work{})
	if filter.AuthorID != nil {
		query = query.Where("works.author_id = ?", *filter.AuthorID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("works.created_at DESC")
	if filter.Page > 0 && filter.PageSize > 0 {
		listQuery = listQuery.Scopes(database.Paginate(utils.PaginationParams{
			Page:   filter.Page,
			Limit:  filter.PageSize,
			Offset: (filter.Page - 1) * filter.PageSize,
		}))
	}

	if err := listQuery.Preload("Author").Find(&works).Error; err != nil {
		return nil, 0, err
	}

	return works, total, nil
}

// Update updates a work
func (r *GormWorkRepository) Update(work *models.Work) error {
	return r.db.Save(work).Error
}

// DeleteCascade removes a work with its votes and comments in one
// transaction. Either everything goes or nothing does, so a successful
// delete can never leave an orphan vote or comment behind.
func (r *GormWorkRepository) DeleteCascade(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("work_id = ?", id).Delete(&models.Vote{}).Error; err != nil {
			return err
		}

		if err := tx.Where("work_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", id).Delete(&models.Work{}).Error
	})
}
