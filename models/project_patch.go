package models

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/rpupo63/portfolio-backend/errs"
	"gorm.io/datatypes"
)

// Optional carries a JSON member that may be absent, explicitly null, or set.
// The zero value means "not present in the payload".
type Optional[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// Some returns a present, non-null Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		o.Value = zero
		o.Null = true
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

// ProjectPatch is the body of an update request. Only members present in the
// JSON document are applied; a member sent as null clears nullable columns.
type ProjectPatch struct {
	Title         Optional[string]   `json:"title"`
	Category      Optional[string]   `json:"category"`
	Status        Optional[string]   `json:"status"`
	Year          Optional[string]   `json:"year"`
	Image         Optional[string]   `json:"image"`
	Description   Optional[string]   `json:"description"`
	Client        Optional[string]   `json:"client"`
	Role          Optional[string]   `json:"role"`
	Images        Optional[[]string] `json:"images"`
	TitleEn       Optional[string]   `json:"title_en"`
	DescriptionEn Optional[string]   `json:"description_en"`
}

// Empty reports whether the patch carries no members at all.
func (p ProjectPatch) Empty() bool {
	return !(p.Title.Set || p.Category.Set || p.Status.Set || p.Year.Set || p.Image.Set ||
		p.Description.Set || p.Client.Set || p.Role.Set || p.Images.Set ||
		p.TitleEn.Set || p.DescriptionEn.Set)
}

// Normalize converts English category/status labels to canonical values.
func (p *ProjectPatch) Normalize() {
	if p.Category.Set && !p.Category.Null {
		p.Category.Value = string(ReverseCategory(strings.TrimSpace(p.Category.Value)))
	}
	if p.Status.Set && !p.Status.Null {
		p.Status.Value = string(ReverseStatus(strings.TrimSpace(p.Status.Value)))
	}
}

// Validate rejects nulls or blanks on required columns and unknown enum values.
// Members that are not present are not checked.
func (p ProjectPatch) Validate() error {
	required := []struct {
		name string
		opt  Optional[string]
	}{
		{"title", p.Title},
		{"category", p.Category},
		{"status", p.Status},
		{"year", p.Year},
		{"image", p.Image},
		{"description", p.Description},
	}
	for _, f := range required {
		if !f.opt.Set {
			continue
		}
		if f.opt.Null {
			return errs.NewInvalidFieldError(f.name, "must not be null")
		}
		if strings.TrimSpace(f.opt.Value) == "" {
			return errs.NewMissingRequiredFieldError(f.name)
		}
	}
	if p.Category.Set {
		if err := validateCategory(Category(p.Category.Value)); err != nil {
			return err
		}
	}
	if p.Status.Set {
		if err := validateStatus(Status(p.Status.Value)); err != nil {
			return err
		}
	}
	return nil
}

// Changes returns the column assignments for every present member.
func (p ProjectPatch) Changes() map[string]any {
	changes := make(map[string]any)
	setString := func(column string, o Optional[string]) {
		if o.Set {
			changes[column] = o.Value
		}
	}
	setNullable := func(column string, o Optional[string]) {
		if !o.Set {
			return
		}
		if o.Null {
			changes[column] = nil
			return
		}
		v := o.Value
		changes[column] = &v
	}

	setString("title", p.Title)
	setString("category", p.Category)
	setString("status", p.Status)
	setString("year", p.Year)
	setString("image", p.Image)
	setString("description", p.Description)
	setNullable("client", p.Client)
	setNullable("role", p.Role)
	setNullable("title_en", p.TitleEn)
	setNullable("description_en", p.DescriptionEn)

	if p.Images.Set {
		images := datatypes.JSONSlice[string]{}
		if !p.Images.Null {
			images = append(images, p.Images.Value...)
		}
		changes["images"] = images
	}
	return changes
}
