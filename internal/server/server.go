// Package server provides the HTTP API for zaiko.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/hyperjump/zaiko/internal/config"
	"github.com/hyperjump/zaiko/internal/importer"
	"github.com/hyperjump/zaiko/internal/search"
	"github.com/hyperjump/zaiko/internal/storage"
)

// Server is the HTTP server for the zaiko API.
type Server struct {
	engine   *search.Engine
	importer *importer.Importer
	store    storage.Store
	config   *config.Config
	logger   *zap.Logger
	server   *http.Server
}

// NewServer creates a server with the given dependencies.
func NewServer(
	engine *search.Engine,
	imp *importer.Importer,
	store storage.Store,
	cfg *config.Config,
	logger *zap.Logger,
) *Server {
	return &Server{
		engine:   engine,
		importer: imp,
		store:    store,
		config:   cfg,
		logger:   logger,
	}
}

// Router builds the chi router with all routes and middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	r.Post("/api/v1/search", s.handleSearch)
	r.Get("/api/v1/components", s.handleListComponents)
	r.Post("/api/v1/components", s.handleCreateComponent)
	r.Get("/api/v1/components/{id}", s.handleGetComponent)
	r.Put("/api/v1/components/{id}", s.handleUpdateComponent)
	r.Delete("/api/v1/components/{id}", s.handleDeleteComponent)
	r.Post("/api/v1/components/import", s.handleImport)
	r.Get("/api/v1/categories", s.handleCategories)
	r.Get("/api/v1/locations", s.handleLocations)
	r.Get("/api/v1/status", s.handleStatus)
	r.Get("/health", s.handleHealth)

	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}
	s.logger.Info("Starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
