package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo projectStore
}

func newProjectHandler(projectRepo projectStore, notifyURL string) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger).WithNotifyURL(notifyURL),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

// getAllProjects lists projects with optional filters
// @Summary List projects
// @Description Filters by category and status (either locale); limit truncates the list but not total
// @Tags Projects
// @Produce json
// @Param category query string false "Category label, or Все/All"
// @Param status query string false "Status label"
// @Param limit query int false "Maximum number of projects returned"
// @Param lang query string false "Display locale (ru, en)"
// @Success 200 {object} ProjectListResponse
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid limit"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching projects"
// @Router /api/projects [get]
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		filter, err := resolveProjectFilter(r.URL.Query(), ctxGetLocale(ctx))
		if err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		total, err := h.projectRepo.Count(ctx, filter)
		if err != nil {
			h.responder.WriteError(w, r, wrapDatabaseError("count", "projects", err))
			return
		}

		projects, err := h.projectRepo.Filter(ctx, filter)
		if err != nil {
			h.responder.WriteError(w, r, wrapDatabaseError("find", "projects", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, newProjectListResponse(projects, total))
	}
}

// getProject retrieves a specific project by ID
// @Summary Get project
// @Tags Projects
// @Produce json
// @Param projectID path int true "Project ID"
// @Success 200 {object} ProjectResponse
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid projectID"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching project"
// @Router /api/projects/{projectID} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := projectIDParam(r)
		if err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		project, err := h.projectRepo.FindByID(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, r, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, r, errs.NewNotFoundWithID("project", projectID))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, newProjectResponse(project))
	}
}

// createProject creates a new project
// @Summary Create project
// @Description Category and status may be given in either locale; they are stored canonically
// @Tags Projects
// @Accept json
// @Produce json
// @Param project body models.Project true "Project data"
// @Success 201 {object} ProjectResponse
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid project data"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error creating project"
// @Router /api/projects [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var project models.Project
		if err := decodeJSON(w, r, "project", &project); err != nil {
			h.logger.Warn().Err(err).Str("requestId", ctxGetRequestID(r.Context())).Msg("Failed to decode project request body")
			h.responder.WriteError(w, r, err)
			return
		}

		// storage assigns these
		project.ID = 0
		project.CreatedAt = time.Time{}
		project.UpdatedAt = time.Time{}
		project.Normalize()
		if err := project.Validate(); err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		if err := h.projectRepo.Add(r.Context(), &project); err != nil {
			h.responder.WriteError(w, r, wrapDatabaseError("create", "project", err))
			return
		}

		h.logger.Info().Int64("projectId", project.ID).Msg("project created")
		h.responder.WriteJSON(w, http.StatusCreated, newProjectResponse(&project))
	}
}

// updateProject merges the supplied fields into an existing project
// @Summary Update project
// @Description Serves both PUT and PATCH. Only members present in the body are written; null clears optional fields
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectID path int true "Project ID"
// @Param project body models.ProjectPatch true "Fields to update"
// @Success 200 {object} ProjectResponse
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid project data"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error updating project"
// @Router /api/projects/{projectID} [put]
// @Router /api/projects/{projectID} [patch]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		projectID, err := projectIDParam(r)
		if err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		var patch models.ProjectPatch
		if err := decodeJSON(w, r, "project", &patch); err != nil {
			h.logger.Warn().Err(err).Int64("projectId", projectID).Msg("Failed to decode project update body")
			h.responder.WriteError(w, r, err)
			return
		}
		patch.Normalize()
		if err := patch.Validate(); err != nil {
			h.responder.WriteError(w, r, err)
			return
		}
		if patch.Empty() {
			h.logger.Debug().Int64("projectId", projectID).Msg("empty update, only updated_at changes")
		}

		// Verify project exists
		existing, err := h.projectRepo.FindByID(ctx, projectID)
		if err != nil {
			h.responder.WriteError(w, r, wrapDatabaseError("find", "project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, r, errs.NewNotFoundWithID("project", projectID))
			return
		}

		updated, err := h.projectRepo.Update(ctx, projectID, patch.Changes())
		if err != nil {
			h.responder.WriteError(w, r, wrapDatabaseError("update", "project", err))
			return
		}
		// deleted between the existence check and the write
		if updated == nil {
			h.responder.WriteError(w, r, errs.NewNotFoundWithID("project", projectID))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, newProjectResponse(updated))
	}
}

// deleteProject deletes a project by ID
// @Summary Delete project
// @Tags Projects
// @Produce json
// @Param projectID path int true "Project ID"
// @Success 200 {object} MessageResponse "Success message"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid projectID"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error deleting project"
// @Router /api/projects/{projectID} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		projectID, err := projectIDParam(r)
		if err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		// Verify project exists
		existing, err := h.projectRepo.FindByID(ctx, projectID)
		if err != nil {
			h.responder.WriteError(w, r, wrapDatabaseError("find", "project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, r, errs.NewNotFoundWithID("project", projectID))
			return
		}

		deleted, err := h.projectRepo.Delete(ctx, projectID)
		if err != nil {
			h.responder.WriteError(w, r, wrapDatabaseError("delete", "project", err))
			return
		}
		if !deleted {
			h.responder.WriteError(w, r, errs.NewNotFoundWithID("project", projectID))
			return
		}

		h.logger.Info().Int64("projectId", projectID).Msg("project deleted")
		h.responder.WriteJSON(w, http.StatusOK, MessageResponse{
			Message: fmt.Sprintf("Project %d deleted successfully", projectID),
		})
	}
}
