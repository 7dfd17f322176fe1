package models

import (
	"encoding/json"
	"testing"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func validProject() Project {
	return Project{
		Title:       "Brand Refresh",
		Category:    CategoryDesign,
		Status:      StatusInProgress,
		Year:        "2024",
		Image:       "https://example.com/cover.jpg",
		Description: "Новый фирменный стиль",
	}
}

func TestProject_Normalize(t *testing.T) {
	t.Run("maps english labels to canonical values", func(t *testing.T) {
		p := validProject()
		p.Category = "Startups"
		p.Status = "In Progress"
		p.Normalize()

		assert.Equal(t, CategoryStartups, p.Category)
		assert.Equal(t, StatusInProgress, p.Status)
	})

	t.Run("defaults status and images", func(t *testing.T) {
		p := validProject()
		p.Status = ""
		p.Images = nil
		p.Normalize()

		assert.Equal(t, StatusCompleted, p.Status)
		require.NotNil(t, p.Images)
		assert.Empty(t, p.Images)
	})

	t.Run("keeps canonical values", func(t *testing.T) {
		p := validProject()
		p.Normalize()
		assert.Equal(t, CategoryDesign, p.Category)
		assert.Equal(t, StatusInProgress, p.Status)
	})
}

func TestProject_Validate(t *testing.T) {
	t.Run("accepts a complete project", func(t *testing.T) {
		p := validProject()
		assert.NoError(t, p.Validate())
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		for _, field := range []string{"title", "year", "image", "description"} {
			p := validProject()
			switch field {
			case "title":
				p.Title = "  "
			case "year":
				p.Year = ""
			case "image":
				p.Image = ""
			case "description":
				p.Description = ""
			}

			err := p.Validate()
			require.Error(t, err, field)
			assert.True(t, errs.IsMissingRequiredFieldError(err), field)

			var apiErr *errs.ApiErr
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, 400, apiErr.StatusCode)
			assert.Equal(t, field, apiErr.Field)
		}
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		p := validProject()
		p.Category = "Music"

		err := p.Validate()
		require.Error(t, err)
		assert.True(t, errs.IsValidationError(err))

		var apiErr *errs.ApiErr
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "category", apiErr.Field)
		assert.Contains(t, apiErr.Details, "Дизайн")
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		p := validProject()
		p.Status = "Paused"

		err := p.Validate()
		require.Error(t, err)

		var apiErr *errs.ApiErr
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "status", apiErr.Field)
	})
}

func TestProjectPatch_UnmarshalJSON(t *testing.T) {
	t.Run("distinguishes absent, null and set members", func(t *testing.T) {
		var patch ProjectPatch
		err := json.Unmarshal([]byte(`{"title":"New","client":null,"images":["a.jpg"]}`), &patch)
		require.NoError(t, err)

		assert.True(t, patch.Title.Set)
		assert.False(t, patch.Title.Null)
		assert.Equal(t, "New", patch.Title.Value)

		assert.True(t, patch.Client.Set)
		assert.True(t, patch.Client.Null)

		assert.False(t, patch.Role.Set)
		assert.False(t, patch.Description.Set)

		assert.True(t, patch.Images.Set)
		assert.Equal(t, []string{"a.jpg"}, patch.Images.Value)
		assert.False(t, patch.Empty())
	})

	t.Run("empty object", func(t *testing.T) {
		var patch ProjectPatch
		require.NoError(t, json.Unmarshal([]byte(`{}`), &patch))
		assert.True(t, patch.Empty())
		assert.Empty(t, patch.Changes())
	})

	t.Run("type mismatch fails", func(t *testing.T) {
		var patch ProjectPatch
		err := json.Unmarshal([]byte(`{"year":2024}`), &patch)
		assert.Error(t, err)
	})
}

func TestProjectPatch_Validate(t *testing.T) {
	t.Run("null on a required field", func(t *testing.T) {
		patch := ProjectPatch{Title: Optional[string]{Set: true, Null: true}}
		err := patch.Validate()
		require.Error(t, err)
		assert.True(t, errs.IsInvalidFieldError(err))
	})

	t.Run("blank required field", func(t *testing.T) {
		patch := ProjectPatch{Year: Some(" ")}
		err := patch.Validate()
		require.Error(t, err)
		assert.True(t, errs.IsMissingRequiredFieldError(err))
	})

	t.Run("english category is accepted after normalize", func(t *testing.T) {
		patch := ProjectPatch{Category: Some("Design"), Status: Some("Completed")}
		patch.Normalize()
		require.NoError(t, patch.Validate())
		assert.Equal(t, string(CategoryDesign), patch.Category.Value)
		assert.Equal(t, string(StatusCompleted), patch.Status.Value)
	})

	t.Run("unknown category", func(t *testing.T) {
		patch := ProjectPatch{Category: Some("Music")}
		patch.Normalize()
		assert.True(t, errs.IsValidationError(patch.Validate()))
	})

	t.Run("null optional fields are fine", func(t *testing.T) {
		patch := ProjectPatch{
			Client:  Optional[string]{Set: true, Null: true},
			TitleEn: Optional[string]{Set: true, Null: true},
		}
		assert.NoError(t, patch.Validate())
	})
}

func TestProjectPatch_Changes(t *testing.T) {
	var patch ProjectPatch
	require.NoError(t, json.Unmarshal([]byte(`{
		"title": "Renamed",
		"client": null,
		"role": "Lead",
		"images": null,
		"description_en": "English text"
	}`), &patch))

	changes := patch.Changes()
	assert.Len(t, changes, 5)
	assert.Equal(t, "Renamed", changes["title"])

	client, ok := changes["client"]
	assert.True(t, ok)
	assert.Nil(t, client)

	role, ok := changes["role"].(*string)
	require.True(t, ok)
	assert.Equal(t, "Lead", *role)

	images, ok := changes["images"].(datatypes.JSONSlice[string])
	require.True(t, ok)
	assert.NotNil(t, images)
	assert.Empty(t, images)

	descEn, ok := changes["description_en"].(*string)
	require.True(t, ok)
	assert.Equal(t, "English text", *descEn)

	_, present := changes["category"]
	assert.False(t, present)
}
