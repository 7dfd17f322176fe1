package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rpupo63/portfolio-backend/config"
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rs/zerolog/log"
)

var defaultAllowedOrigins = []string{"http://localhost:5173", "http://localhost:3000"}

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(database database.Database, c map[string]string) (Server, error) {
	host := config.GetString(c, "HOST", "0.0.0.0")
	port := config.GetInt(c, "PORT", 8000)
	if port <= 0 || port > 65535 {
		return Server{}, fmt.Errorf("invalid PORT %d", port)
	}
	address := fmt.Sprintf("%s:%d", host, port)

	// Capture startup time
	startupTime := time.Now()

	router := newRouter(database.ProjectRepo(), withConfig(c))

	// Get timeout values from config with sensible defaults
	readTimeout := time.Duration(config.GetInt(c, "READ_TIMEOUT_SECONDS", 30)) * time.Second
	writeTimeout := time.Duration(config.GetInt(c, "WRITE_TIMEOUT_SECONDS", 30)) * time.Second
	idleTimeout := time.Duration(config.GetInt(c, "IDLE_TIMEOUT_SECONDS", 120)) * time.Second

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  readTimeout,  // Timeout for reading the entire request
		WriteTimeout: writeTimeout, // Timeout for writing the response
		IdleTimeout:  idleTimeout,  // Timeout for idle connections
	}

	return Server{server, startupTime}, nil
}

type router struct {
	config map[string]string
}

func withConfig(c map[string]string) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func newRouter(store projectStore, opts ...func(*router)) *chi.Mux {
	var router router
	for _, opt := range opts {
		opt(&router)
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(RequestIDMiddleware)
	chiRouter.Use(LogInternalServerErrors)
	chiRouter.Use(middleware.RealIP)
	chiRouter.Use(middleware.CleanPath)

	// Apply CORS middleware
	allowedOrigins := config.GetStringSlice(router.config, "ALLOWED_ORIGINS", defaultAllowedOrigins)
	chiRouter.Use(CORSCheckMiddleware(allowedOrigins))
	chiRouter.Use(corsMiddleware(allowedOrigins))

	requestTimeout := time.Duration(config.GetInt(router.config, "REQUEST_TIMEOUT_SECONDS", 15)) * time.Second
	if requestTimeout > 0 {
		chiRouter.Use(middleware.Timeout(requestTimeout))
	}
	chiRouter.Use(LocaleMiddleware)

	// Initialize all handlers
	handlers := initializeHandlers(store, config.GetString(router.config, "ERROR_NOTIFY_URL", ""))

	setupRoutes(chiRouter, handlers, requestTimeout)

	return chiRouter
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Dur("uptime", time.Since(s.startupTime)).Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
