package api

import (
	"context"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/models"
)

// projectStore is the persistence the handlers need. *database.ProjectRepo implements it.
type projectStore interface {
	Add(ctx context.Context, project *models.Project) error
	FindByID(ctx context.Context, id int64) (*models.Project, error)
	Filter(ctx context.Context, f database.ProjectFilter) ([]*models.Project, error)
	Count(ctx context.Context, f database.ProjectFilter) (int64, error)
	Update(ctx context.Context, id int64, changes map[string]any) (*models.Project, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler  projectHandler
	categoryHandler categoryHandler
	healthHandler   healthHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid field"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"category"`
	Details string `json:"details,omitempty" example:"category \"Music\" is not one of [Дизайн, Разработка, Стартапы, Другое]"`
}

// MessageResponse is a plain confirmation body
type MessageResponse struct {
	Message string `json:"message"`
}
