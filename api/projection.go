package api

import (
	"time"

	"github.com/rpupo63/portfolio-backend/models"
)

// bilingualValue is a field exposed in the storage locale and in English.
type bilingualValue struct {
	ru string
	en *string
}

// storedPair builds a bilingual value from a column and its stored English
// counterpart, which may be absent.
func storedPair(ru string, en *string) bilingualValue {
	return bilingualValue{ru: ru, en: cloneString(en)}
}

// lookedUpPair builds a bilingual value by translating a closed-set label.
func lookedUpPair(ru string, translate func(string) string) bilingualValue {
	en := translate(ru)
	return bilingualValue{ru: ru, en: &en}
}

func (b bilingualValue) secondary() string {
	if b.en == nil {
		return ""
	}
	return *b.en
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// ProjectResponse is a project as returned by the API, with English values
// next to every translatable field.
type ProjectResponse struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	TitleEn       *string   `json:"title_en"`
	Category      string    `json:"category"`
	CategoryEn    string    `json:"category_en"`
	Status        string    `json:"status"`
	StatusEn      string    `json:"status_en"`
	Year          string    `json:"year"`
	Image         string    `json:"image"`
	Description   string    `json:"description"`
	DescriptionEn *string   `json:"description_en"`
	Client        *string   `json:"client"`
	Role          *string   `json:"role"`
	Images        []string  `json:"images"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ProjectListResponse is the body of a project listing. Total counts the
// whole filtered set, regardless of limit.
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Total    int64             `json:"total"`
}

// newProjectResponse projects a stored project. p is not modified.
func newProjectResponse(p *models.Project) ProjectResponse {
	title := storedPair(p.Title, p.TitleEn)
	description := storedPair(p.Description, p.DescriptionEn)
	category := lookedUpPair(string(p.Category), func(s string) string {
		return models.TranslateCategory(models.Category(s))
	})
	status := lookedUpPair(string(p.Status), func(s string) string {
		return models.TranslateStatus(models.Status(s))
	})

	images := make([]string, 0, len(p.Images))
	images = append(images, p.Images...)

	return ProjectResponse{
		ID:            p.ID,
		Title:         title.ru,
		TitleEn:       title.en,
		Category:      category.ru,
		CategoryEn:    category.secondary(),
		Status:        status.ru,
		StatusEn:      status.secondary(),
		Year:          p.Year,
		Image:         p.Image,
		Description:   description.ru,
		DescriptionEn: description.en,
		Client:        cloneString(p.Client),
		Role:          cloneString(p.Role),
		Images:        images,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func newProjectListResponse(projects []*models.Project, total int64) ProjectListResponse {
	items := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		items = append(items, newProjectResponse(p))
	}
	return ProjectListResponse{Projects: items, Total: total}
}

// CategoryCount is one entry of the category filter bar.
type CategoryCount struct {
	Name   string `json:"name"`
	NameEn string `json:"name_en"`
	NameRu string `json:"name_ru"`
	Count  int64  `json:"count"`
}

type CategoryListResponse struct {
	Categories []CategoryCount `json:"categories"`
}

// newCategoryCounts lists the "all" entry followed by every category in
// declaration order. Name is given in the display locale.
func newCategoryCounts(loc Locale, total int64, counts map[models.Category]int64) []CategoryCount {
	display := func(ru, en string) string {
		if loc == LocaleEN {
			return en
		}
		return ru
	}

	out := make([]CategoryCount, 0, len(models.Categories())+1)
	out = append(out, CategoryCount{
		Name:   display(LocaleRU.AllLabel(), LocaleEN.AllLabel()),
		NameEn: LocaleEN.AllLabel(),
		NameRu: LocaleRU.AllLabel(),
		Count:  total,
	})
	for _, c := range models.Categories() {
		en := models.TranslateCategory(c)
		out = append(out, CategoryCount{
			Name:   display(string(c), en),
			NameEn: en,
			NameRu: string(c),
			Count:  counts[c],
		})
	}
	return out
}
