package api

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

// isAllCategory reports whether value is an "all categories" sentinel. The
// sentinel of the request locale always matches; the other locale's sentinel
// is accepted too so a client switching languages keeps an unfiltered view.
func isAllCategory(value string, loc Locale) bool {
	if value == loc.AllLabel() {
		return true
	}
	return value == LocaleRU.AllLabel() || strings.EqualFold(value, LocaleEN.AllLabel())
}

// resolveCategory turns a category filter value in either locale into a
// canonical category. An empty result means "no category predicate".
func resolveCategory(value string, loc Locale) models.Category {
	value = strings.TrimSpace(value)
	if value == "" || isAllCategory(value, loc) {
		return ""
	}
	if canonical, ok := models.LookupCategory(value); ok {
		return canonical
	}
	return models.Category(value)
}

// resolveStatus applies the same cross-locale lookup to a status filter value.
func resolveStatus(value string) models.Status {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if canonical, ok := models.LookupStatus(value); ok {
		return canonical
	}
	return models.Status(value)
}

// parseLimit reads the optional result-count ceiling. Absent means no limit.
func parseLimit(raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errs.NewInvalidQueryParamError("limit", raw, "must be an integer")
	}
	if limit < 0 {
		return nil, errs.NewInvalidQueryParamError("limit", raw, "must not be negative")
	}
	return &limit, nil
}

// resolveProjectFilter builds the repository filter for a project listing.
func resolveProjectFilter(query url.Values, loc Locale) (database.ProjectFilter, error) {
	limit, err := parseLimit(query.Get("limit"))
	if err != nil {
		return database.ProjectFilter{}, err
	}
	return database.ProjectFilter{
		Category: resolveCategory(query.Get("category"), loc),
		Status:   resolveStatus(query.Get("status")),
		Limit:    limit,
	}, nil
}
