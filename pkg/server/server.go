// Package server exposes the render pipeline over HTTP.
//
// # Endpoints
//
//	GET  /healthz       liveness and build version
//	GET  /v1/geometry   grid geometry for ?count=N&address=A without drawing
//	POST /v1/render     render the request body as a PNG
//
// POST /v1/render takes the raw bytes as the body, or a JSON document
// {"address": A, "data": [...]} when Content-Type is application/json. Render
// options are query parameters named like the JSON fields of
// [pipeline.Options] (columns, group_size, fade_in, color, ...).
//
// Errors are returned as {"error": {"code": ..., "message": ...}} with a
// status derived from the error code.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jebreimo/HexPic/pkg/pipeline"
)

// DefaultMaxBody limits request bodies to 16 MiB.
const DefaultMaxBody = 16 << 20

// Server serves renders from a shared pipeline.Runner.
type Server struct {
	runner   *pipeline.Runner
	logger   *log.Logger
	defaults pipeline.Options
	maxBody  int64
	timeout  time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithDefaults sets the options requests start from before query overrides.
func WithDefaults(opts pipeline.Options) Option {
	return func(s *Server) { s.defaults = opts }
}

// WithMaxBody sets the request body limit in bytes.
func WithMaxBody(n int64) Option {
	return func(s *Server) { s.maxBody = n }
}

// WithTimeout bounds the time spent on one request.
func WithTimeout(d time.Duration) Option {
	return func(s *Server) { s.timeout = d }
}

// New creates a Server.
func New(runner *pipeline.Runner, logger *log.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner:   runner,
		logger:   logger,
		defaults: pipeline.DefaultOptions(),
		maxBody:  DefaultMaxBody,
		timeout:  30 * time.Second,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Handler returns the HTTP handler with all routes and middleware.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.timeout))

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/geometry", s.handleGeometry)
		r.Post("/render", s.handleRender)
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
