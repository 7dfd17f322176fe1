package database

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testClock advances one second on every reading so timestamps are strictly ordered.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

func setupTestDB(t *testing.T) (Database, *gorm.DB) {
	t.Helper()

	clock := &testClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "portfolio.db")), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: clock.Now,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	d := New(db)
	require.NoError(t, d.Migrate(context.Background()))
	t.Cleanup(func() { _ = d.Close() })

	return d, db
}

func newTestProject(title string, category models.Category, status models.Status) *models.Project {
	return &models.Project{
		Title:       title,
		Category:    category,
		Status:      status,
		Year:        "2024",
		Image:       "https://example.com/" + title + ".jpg",
		Description: "Описание " + title,
		Images:      datatypes.JSONSlice[string]{},
	}
}
