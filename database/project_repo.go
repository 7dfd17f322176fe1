package database

import (
	"context"
	"errors"

	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
)

// ProjectFilter holds the predicates of a project query. Zero values mean
// "no restriction"; Limit is nil when the result set is not truncated.
type ProjectFilter struct {
	Category models.Category
	Status   models.Status
	Limit    *int
}

func (f ProjectFilter) scope(db *gorm.DB) *gorm.DB {
	if f.Category != "" {
		db = db.Where("category = ?", string(f.Category))
	}
	if f.Status != "" {
		db = db.Where("status = ?", string(f.Status))
	}
	return db
}

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// Filter returns the projects matching f, newest first.
func (r *ProjectRepo) Filter(ctx context.Context, f ProjectFilter) ([]*models.Project, error) {
	projects := []*models.Project{}
	if f.Limit != nil && *f.Limit == 0 {
		return projects, nil
	}

	query := r.db.WithContext(ctx).
		Model(&models.Project{}).
		Scopes(f.scope).
		Order("created_at DESC").
		Order("id DESC")
	if f.Limit != nil {
		query = query.Limit(*f.Limit)
	}

	err := query.Find(&projects).Error
	return projects, err
}

// Count returns the number of projects matching f. Limit is ignored.
func (r *ProjectRepo) Count(ctx context.Context, f ProjectFilter) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Project{}).
		Scopes(f.scope).
		Count(&total).Error
	return total, err
}

// FindByID returns a project by its ID, or nil when it does not exist.
func (r *ProjectRepo) FindByID(ctx context.Context, id int64) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project; ID and timestamps are filled in on success.
func (r *ProjectRepo) Add(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// Update assigns the given columns on one project and returns the stored
// result. A nil project means no row had that ID.
func (r *ProjectRepo) Update(ctx context.Context, id int64, changes map[string]any) (*models.Project, error) {
	var updated *models.Project
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(changes) == 0 {
			changes = map[string]any{"updated_at": tx.NowFunc()}
		}
		res := tx.Model(&models.Project{ID: id}).Updates(changes)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}

		var project models.Project
		if err := tx.First(&project, id).Error; err != nil {
			return err
		}
		updated = &project
		return nil
	})
	return updated, err
}

// Delete removes a project from the database by id and reports whether a row was removed.
func (r *ProjectRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Project{}, id)
	return res.RowsAffected > 0, res.Error
}
