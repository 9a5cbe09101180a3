// Package api exposes the dedication ledger over HTTP.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/itsutakahope/churching-sub001/internal/api/handlers"
	"github.com/itsutakahope/churching-sub001/internal/api/middleware"
	"github.com/itsutakahope/churching-sub001/internal/application/service"
	"github.com/itsutakahope/churching-sub001/internal/infrastructure/storage"
)

// Config holds API server configuration.
type Config struct {
	Port           int
	AllowedOrigins []string

	// Period is the default summary period for summary and report
	// endpoints when the request does not name one.
	Period string
}

// DefaultConfig returns sensible defaults for the API server.
func DefaultConfig() Config {
	return Config{
		Port:           8080,
		AllowedOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
		Period:         "current",
	}
}

// Server is the HTTP API server.
type Server struct {
	config     Config
	router     chi.Router
	httpServer *http.Server
	logger     *slog.Logger
	repo       storage.Repository
	summary    *service.SummaryService
}

// NewServer creates a new API server.
func NewServer(cfg Config, repo storage.Repository, summary *service.SummaryService, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		config:  cfg,
		router:  chi.NewRouter(),
		logger:  logger,
		repo:    repo,
		summary: summary,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// setupMiddleware configures global middleware.
func (s *Server) setupMiddleware() {
	// CORS
	corsConfig := middleware.CORSConfig{
		AllowedOrigins: s.config.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}
	s.router.Use(middleware.CORS(corsConfig))

	// Request logging
	s.router.Use(middleware.Logging(s.logger))
}

// setupRoutes configures all API routes.
func (s *Server) setupRoutes() {
	// Health check (no /api prefix - for load balancers)
	healthHandler := handlers.NewHealthHandler()
	s.router.Get("/health", healthHandler.ServeHTTP)

	// API routes
	s.router.Route("/api", func(r chi.Router) {
		// Dedications
		dedicationsHandler := handlers.NewDedicationsHandler(s.repo, s.logger)
		r.Get("/dedications", dedicationsHandler.List)
		r.Post("/dedications", dedicationsHandler.Create)
		r.Get("/dedications/{id}", dedicationsHandler.Get)

		// Live summary + authoritative total
		summaryHandler := handlers.NewSummaryHandler(s.repo, s.summary, s.config.Period)
		r.Get("/summary", summaryHandler.Get)
		r.Get("/summary/total", summaryHandler.GetTotal)
		r.Put("/summary/total", summaryHandler.SetTotal)

		// Persisted breakdown reports
		reportsHandler := handlers.NewReportsHandler(s.repo, s.summary, s.config.Period)
		r.Get("/reports", reportsHandler.List)
		r.Post("/reports", reportsHandler.Create)
		r.Get("/reports/{id}", reportsHandler.Get)
	})
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("starting API server", "addr", addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down API server")

	if s.httpServer == nil {
		return nil
	}

	return s.httpServer.Shutdown(ctx)
}

// Router returns the chi router for testing.
func (s *Server) Router() chi.Router {
	return s.router
}
