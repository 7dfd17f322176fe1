package models

import (
	"strings"
	"time"

	"github.com/rpupo63/portfolio-backend/errs"
	"gorm.io/datatypes"
)

// Category is a portfolio section. Values are stored as their Russian labels.
type Category string

const (
	CategoryDesign      Category = "Дизайн"
	CategoryDevelopment Category = "Разработка"
	CategoryStartups    Category = "Стартапы"
	CategoryOther       Category = "Другое"
)

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{CategoryDesign, CategoryDevelopment, CategoryStartups, CategoryOther}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryDesign, CategoryDevelopment, CategoryStartups, CategoryOther:
		return true
	}
	return false
}

// Status is the lifecycle state of a project, stored as its Russian label.
type Status string

const (
	StatusInProgress Status = "В работе"
	StatusCompleted  Status = "Завершен"
)

// DefaultStatus is applied when a new project does not specify one.
const DefaultStatus = StatusCompleted

func Statuses() []Status {
	return []Status{StatusInProgress, StatusCompleted}
}

func (s Status) Valid() bool {
	return s == StatusInProgress || s == StatusCompleted
}

// Project represents a portfolio entry
type Project struct {
	ID            int64                       `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Title         string                      `json:"title" db:"title" gorm:"type:varchar(255);not null"`
	Category      Category                    `json:"category" db:"category" gorm:"type:varchar(32);not null;index:idx_projects_category"`
	Status        Status                      `json:"status" db:"status" gorm:"type:varchar(32);not null;index:idx_projects_status"`
	Year          string                      `json:"year" db:"year" gorm:"type:varchar(10);not null"`
	Image         string                      `json:"image" db:"image" gorm:"type:text;not null"`
	Description   string                      `json:"description" db:"description" gorm:"type:text;not null"`
	Client        *string                     `json:"client" db:"client" gorm:"type:varchar(255)"`
	Role          *string                     `json:"role" db:"role" gorm:"type:varchar(255)"`
	Images        datatypes.JSONSlice[string] `json:"images" db:"images" gorm:"not null"`
	TitleEn       *string                     `json:"title_en" db:"title_en" gorm:"type:varchar(255)"`
	DescriptionEn *string                     `json:"description_en" db:"description_en" gorm:"type:text"`
	CreatedAt     time.Time                   `json:"created_at" db:"created_at" gorm:"autoCreateTime;not null"`
	UpdatedAt     time.Time                   `json:"updated_at" db:"updated_at" gorm:"autoUpdateTime;not null"`
}

// Normalize maps English category/status labels to canonical values and
// fills in defaults for a project about to be created.
func (p *Project) Normalize() {
	p.Category = ReverseCategory(strings.TrimSpace(string(p.Category)))
	p.Status = ReverseStatus(strings.TrimSpace(string(p.Status)))
	if p.Status == "" {
		p.Status = DefaultStatus
	}
	if p.Images == nil {
		p.Images = datatypes.JSONSlice[string]{}
	}
}

// Validate checks required fields and enumeration membership.
func (p *Project) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"title", p.Title},
		{"category", string(p.Category)},
		{"status", string(p.Status)},
		{"year", p.Year},
		{"image", p.Image},
		{"description", p.Description},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return errs.NewMissingRequiredFieldError(f.name)
		}
	}
	if err := validateCategory(p.Category); err != nil {
		return err
	}
	return validateStatus(p.Status)
}

func validateCategory(c Category) error {
	if c.Valid() {
		return nil
	}
	allowed := make([]string, 0, len(Categories()))
	for _, v := range Categories() {
		allowed = append(allowed, string(v))
	}
	return errs.NewValidationError("category", string(c), allowed)
}

func validateStatus(s Status) error {
	if s.Valid() {
		return nil
	}
	allowed := make([]string, 0, len(Statuses()))
	for _, v := range Statuses() {
		allowed = append(allowed, string(v))
	}
	return errs.NewValidationError("status", string(s), allowed)
}
