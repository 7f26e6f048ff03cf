// Package server exposes diagram generation over HTTP.
//
// Routes:
//
//	GET /healthz           liveness probe, answers "ok"
//	GET /v1/diagram        rendered diagram (format from ?format=, default from config)
//	GET /v1/diagram.json   JSON export of diagram, mapping and layout
//
// Query parameters: lines, min, max (required), format, strategy, margin,
// seed, page. Each request generates and renders one diagram; nothing is
// stored.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/amidakuji/pkg/config"
	"github.com/matzehuels/amidakuji/pkg/pipeline"
)

const shutdownTimeout = 10 * time.Second

// Server serves diagrams over HTTP.
type Server struct {
	cfg    *config.Config
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// New creates a server. A nil cfg uses config.Default().
func New(cfg *config.Config, logger *log.Logger) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		cfg:    cfg,
		runner: pipeline.NewRunner(logger),
		logger: logger,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.Recoverer)
	r.Use(instrument)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/diagram", s.handleDiagram)
		r.Get("/diagram.json", s.handleDiagramJSON)
	})
	return r
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return ctx.Err()
}
