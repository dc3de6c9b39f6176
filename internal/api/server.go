// Package api exposes the layout engine over HTTP: compute layouts,
// validate placements, inspect zone definitions, and manage stored plans.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/framefit/pkg/pipeline"
	"github.com/matzehuels/framefit/pkg/store"
)

// Config configures the API server. Zero-valued fields take defaults:
// an in-process runner with a null cache and an in-memory plan store.
type Config struct {
	Addr   string
	Runner *pipeline.Runner
	Store  store.Store
	Logger *log.Logger
}

// Server serves the layout API.
type Server struct {
	runner     *pipeline.Runner
	store      store.Store
	logger     *log.Logger
	router     *chi.Mux
	httpServer *http.Server
}

// NewServer builds a server with its middleware stack and routes registered.
func NewServer(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.Runner == nil {
		cfg.Runner = pipeline.NewRunner(nil, nil, cfg.Logger)
	}
	if cfg.Store == nil {
		cfg.Store = store.NewMemoryStore()
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}

	r := chi.NewRouter()
	s := &Server{
		runner: cfg.Runner,
		store:  cfg.Store,
		logger: cfg.Logger,
		router: r,
	}

	r.Use(chiMiddleware.RealIP)
	r.Use(requestID)
	r.Use(s.requestLogger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(30 * time.Second))

	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start serves requests until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("starting API server", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and closes the plan store.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down API server")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return s.store.Close(ctx)
}

// Router returns the chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}
