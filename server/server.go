package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/poiesic/capdex/catalog"
	"github.com/poiesic/capdex/core"
	"github.com/poiesic/capdex/search"
	"github.com/poiesic/capdex/stats"
)

// Service is what the server needs from a database.
// *capdex.Database implements Service.
type Service interface {
	Search(query string, key search.SortKey) ([]core.CatalogEntry, error)
	Get(id string) (core.CatalogEntry, error)
	Create(ctx context.Context, draft core.Draft) (core.CatalogEntry, error)
	Update(ctx context.Context, id string, a core.Annotation) (core.CatalogEntry, error)
	DeleteEntry(ctx context.Context, id string) error
	Thumbnail(ctx context.Context, id string) (*core.Thumbnail, error)
	Stats() (stats.Stats, error)
	Refresh(ctx context.Context) ([]core.CatalogEntry, error)
	State() catalog.State
	LoadError() error
}

// Server serves a capdex database over HTTP.
type Server struct {
	Router *chi.Mux

	svc            Service
	allowedOrigins []string
	logger         *slog.Logger
}

// Option configures a Server.
type Option func(*Server) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithCORS allows cross-origin requests from origins.
func WithCORS(origins ...string) Option {
	return func(s *Server) error {
		s.allowedOrigins = origins
		return nil
	}
}

// New creates a server with all routes mounted.
func New(svc Service, opts ...Option) (*Server, error) {
	if svc == nil {
		return nil, errors.New("service required")
	}

	s := &Server{
		Router: chi.NewRouter(),
		svc:    svc,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	s.logger = s.logger.With("component", "server")

	s.mountHandlers()
	return s, nil
}

func (s *Server) mountHandlers() {
	s.Router.Use(s.requestLogger)
	s.Router.Use(s.panicHandler)
	if len(s.allowedOrigins) > 0 {
		s.Router.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.allowedOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding"},
			ExposedHeaders: []string{RequestIDHeader},
			MaxAge:         300,
		}))
	}

	s.Router.Get("/healthz", s.health)
	s.Router.Post("/refresh", s.refresh)

	s.Router.Route("/entries", func(r chi.Router) {
		r.Get("/", s.listEntries)
		r.Post("/", s.createEntry)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.getEntry)
			r.Put("/", s.updateEntry)
			r.Delete("/", s.deleteEntry)
			r.Get("/thumbnail", s.getThumbnail)
		})
	})

	s.Router.Route("/stats", func(r chi.Router) {
		r.Get("/", s.getStats)
		r.Get("/markers", s.getMarkers)
	})
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
