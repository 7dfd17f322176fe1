package database

import (
	"testing"

	"github.com/rpupo63/portfolio-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateColumnMismatchReport(t *testing.T) {
	_, db := setupTestDB(t)

	t.Run("clean after migration", func(t *testing.T) {
		reports, err := models.GenerateColumnMismatchReport(db)
		require.NoError(t, err)
		require.Len(t, reports, 1)

		assert.Equal(t, "projects", reports[0].Table)
		assert.True(t, reports[0].Clean(), reports[0].String())
		assert.Contains(t, reports[0].String(), "all columns are accounted for")
	})

	t.Run("reports a column the model does not map", func(t *testing.T) {
		require.NoError(t, db.Exec("ALTER TABLE projects ADD COLUMN legacy_slug text").Error)

		reports, err := models.GenerateColumnMismatchReport(db)
		require.NoError(t, err)
		require.Len(t, reports, 1)

		assert.False(t, reports[0].Clean())
		assert.Equal(t, []string{"legacy_slug"}, reports[0].UnmappedColumns)
		assert.Empty(t, reports[0].MissingColumns)
	})

	t.Run("missing table", func(t *testing.T) {
		require.NoError(t, db.Migrator().DropTable(&models.Project{}))

		reports, err := models.GenerateColumnMismatchReport(db)
		require.NoError(t, err)
		require.Len(t, reports, 1)
		assert.False(t, reports[0].Exists)
		assert.Contains(t, reports[0].String(), "does not exist")
	})
}
