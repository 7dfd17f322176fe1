package database

import (
	"context"
	"testing"

	"github.com/rpupo63/portfolio-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func intPtr(n int) *int {
	return &n
}

func TestProjectRepo_AddAndFind(t *testing.T) {
	d, _ := setupTestDB(t)
	repo := d.ProjectRepo()
	ctx := context.Background()

	t.Run("assigns id and timestamps", func(t *testing.T) {
		p := newTestProject("alpha", models.CategoryDesign, models.StatusCompleted)
		p.Client = strPtr("ACME")
		p.Images = datatypes.JSONSlice[string]{"a.jpg", "b.jpg"}
		require.NoError(t, repo.Add(ctx, p))

		assert.Positive(t, p.ID)
		assert.False(t, p.CreatedAt.IsZero())
		assert.False(t, p.UpdatedAt.IsZero())

		found, err := repo.FindByID(ctx, p.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "alpha", found.Title)
		assert.Equal(t, models.CategoryDesign, found.Category)
		require.NotNil(t, found.Client)
		assert.Equal(t, "ACME", *found.Client)
		assert.Nil(t, found.Role)
		assert.Equal(t, []string{"a.jpg", "b.jpg"}, []string(found.Images))
	})

	t.Run("ids are unique", func(t *testing.T) {
		a := newTestProject("beta", models.CategoryOther, models.StatusCompleted)
		b := newTestProject("gamma", models.CategoryOther, models.StatusCompleted)
		require.NoError(t, repo.Add(ctx, a))
		require.NoError(t, repo.Add(ctx, b))
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("missing id returns nil", func(t *testing.T) {
		found, err := repo.FindByID(ctx, 99999)
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestProjectRepo_FilterAndCount(t *testing.T) {
	d, _ := setupTestDB(t)
	repo := d.ProjectRepo()
	ctx := context.Background()

	seed := []*models.Project{
		newTestProject("d1", models.CategoryDesign, models.StatusCompleted),
		newTestProject("d2", models.CategoryDesign, models.StatusInProgress),
		newTestProject("dev1", models.CategoryDevelopment, models.StatusCompleted),
		newTestProject("s1", models.CategoryStartups, models.StatusInProgress),
		newTestProject("o1", models.CategoryOther, models.StatusCompleted),
	}
	for _, p := range seed {
		require.NoError(t, repo.Add(ctx, p))
	}

	t.Run("no filter returns everything newest first", func(t *testing.T) {
		projects, err := repo.Filter(ctx, ProjectFilter{})
		require.NoError(t, err)
		require.Len(t, projects, 5)
		assert.Equal(t, "o1", projects[0].Title)
		assert.Equal(t, "d1", projects[4].Title)
	})

	t.Run("category filter", func(t *testing.T) {
		projects, err := repo.Filter(ctx, ProjectFilter{Category: models.CategoryDesign})
		require.NoError(t, err)
		require.Len(t, projects, 2)
		for _, p := range projects {
			assert.Equal(t, models.CategoryDesign, p.Category)
		}

		n, err := repo.Count(ctx, ProjectFilter{Category: models.CategoryDesign})
		require.NoError(t, err)
		assert.EqualValues(t, 2, n)
	})

	t.Run("category and status filter", func(t *testing.T) {
		f := ProjectFilter{Category: models.CategoryDesign, Status: models.StatusInProgress}
		projects, err := repo.Filter(ctx, f)
		require.NoError(t, err)
		require.Len(t, projects, 1)
		assert.Equal(t, "d2", projects[0].Title)
	})

	t.Run("unknown category matches nothing", func(t *testing.T) {
		projects, err := repo.Filter(ctx, ProjectFilter{Category: "Music"})
		require.NoError(t, err)
		assert.NotNil(t, projects)
		assert.Empty(t, projects)
	})

	t.Run("limit truncates the list but not the count", func(t *testing.T) {
		f := ProjectFilter{Limit: intPtr(2)}
		projects, err := repo.Filter(ctx, f)
		require.NoError(t, err)
		assert.Len(t, projects, 2)

		n, err := repo.Count(ctx, f)
		require.NoError(t, err)
		assert.EqualValues(t, 5, n)
	})

	t.Run("zero limit returns no items", func(t *testing.T) {
		projects, err := repo.Filter(ctx, ProjectFilter{Limit: intPtr(0)})
		require.NoError(t, err)
		assert.NotNil(t, projects)
		assert.Empty(t, projects)
	})
}

func TestProjectRepo_Update(t *testing.T) {
	d, _ := setupTestDB(t)
	repo := d.ProjectRepo()
	ctx := context.Background()

	p := newTestProject("original", models.CategoryDesign, models.StatusInProgress)
	p.Client = strPtr("ACME")
	p.TitleEn = strPtr("Original")
	require.NoError(t, repo.Add(ctx, p))

	t.Run("writes only the given columns", func(t *testing.T) {
		updated, err := repo.Update(ctx, p.ID, map[string]any{"status": string(models.StatusCompleted)})
		require.NoError(t, err)
		require.NotNil(t, updated)

		assert.Equal(t, models.StatusCompleted, updated.Status)
		assert.Equal(t, "original", updated.Title)
		assert.Equal(t, models.CategoryDesign, updated.Category)
		require.NotNil(t, updated.Client)
		assert.Equal(t, "ACME", *updated.Client)
		assert.True(t, updated.CreatedAt.Equal(p.CreatedAt))
		assert.True(t, updated.UpdatedAt.After(p.UpdatedAt))
	})

	t.Run("nil clears a nullable column", func(t *testing.T) {
		updated, err := repo.Update(ctx, p.ID, map[string]any{"client": nil})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Nil(t, updated.Client)
		require.NotNil(t, updated.TitleEn)
	})

	t.Run("empty changes still bump updated_at", func(t *testing.T) {
		before, err := repo.FindByID(ctx, p.ID)
		require.NoError(t, err)

		updated, err := repo.Update(ctx, p.ID, map[string]any{})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.True(t, updated.UpdatedAt.After(before.UpdatedAt))
		assert.Equal(t, before.Title, updated.Title)
	})

	t.Run("missing id", func(t *testing.T) {
		updated, err := repo.Update(ctx, 99999, map[string]any{"title": "ghost"})
		require.NoError(t, err)
		assert.Nil(t, updated)

		n, err := repo.Count(ctx, ProjectFilter{})
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)
	})
}

func TestProjectRepo_Delete(t *testing.T) {
	d, _ := setupTestDB(t)
	repo := d.ProjectRepo()
	ctx := context.Background()

	p := newTestProject("doomed", models.CategoryOther, models.StatusCompleted)
	require.NoError(t, repo.Add(ctx, p))

	deleted, err := repo.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	found, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	deleted, err = repo.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
