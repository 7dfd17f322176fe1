package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// setupRoutes mounts the public API. There is no authentication.
func setupRoutes(r chi.Router, handlers *routeHandlers, requestTimeout time.Duration) {
	guard := func(h http.HandlerFunc) http.HandlerFunc {
		return handlers.projectHandler.responder.WithTimeoutCheck(requestTimeout, h)
	}

	r.Group(func(r chi.Router) {
		r.Use(RequestLoggingMiddleware(log.With().Str("component", "http").Logger()))

		r.Get("/", handlers.healthHandler.root())

		r.Route("/api", func(r chi.Router) {
			r.Get("/health", handlers.healthHandler.health())

			// Project Handler endpoints
			r.Get("/projects", guard(handlers.projectHandler.getAllProjects()))
			r.Post("/projects", guard(handlers.projectHandler.createProject()))
			r.Get("/projects/{projectID}", guard(handlers.projectHandler.getProject()))
			r.Put("/projects/{projectID}", guard(handlers.projectHandler.updateProject()))
			r.Patch("/projects/{projectID}", guard(handlers.projectHandler.updateProject()))
			r.Delete("/projects/{projectID}", guard(handlers.projectHandler.deleteProject()))

			// Category Handler endpoints
			r.Get("/categories", guard(handlers.categoryHandler.getCategories()))
		})
	})
}
