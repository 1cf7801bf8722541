// Package server exposes justification over a small JSON HTTP API.
//
// # Endpoints
//
//	POST /v1/justify   {"text": "...", "width": 12, "whitespace": "strict", "normalize": false}
//	GET  /healthz      {"status": "ok"}
//	GET  /version      {"version": "...", "commit": "...", "date": "..."}
//
// A successful justify response carries the request ID, the width used, the
// lines, the newline-joined text and whether the result came from the cache.
// Failures are reported as {"error": {"code": "...", "message": "..."}} where
// code is one of the pkg/errors codes.
//
// Every request runs through [pipeline.Runner.Execute], so the API shares
// defaults, validation and caching with the CLI.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	errs "github.com/matzehuels/justify/pkg/errors"
	"github.com/matzehuels/justify/pkg/pipeline"
)

const (
	// DefaultAddr is the listen address used when Server.Addr is empty.
	DefaultAddr = ":8080"

	// DefaultMaxBodyBytes limits request bodies when Server.MaxBodyBytes is 0.
	DefaultMaxBodyBytes = 1 << 20

	// DefaultReadTimeout bounds reading a request when Server.ReadTimeout is 0.
	DefaultReadTimeout = 10 * time.Second

	shutdownTimeout = 10 * time.Second
)

// Server serves the justify API.
type Server struct {
	Addr         string
	Runner       *pipeline.Runner
	Logger       *log.Logger
	MaxBodyBytes int64
	ReadTimeout  time.Duration
}

// New creates a server with default limits.
func New(addr string, runner *pipeline.Runner, logger *log.Logger) *Server {
	return &Server{Addr: addr, Runner: runner, Logger: logger}
}

// Handler builds the chi router with all middleware and routes mounted.
func (s *Server) Handler() http.Handler {
	s.setDefaults()

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.Recoverer)
	r.Use(s.accessLog)

	r.Get("/healthz", handleHealth)
	r.Get("/version", handleVersion)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/justify", s.handleJustify)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, errs.ErrCodeNotFound, "no route for "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, errs.ErrCodeUnsupported, r.Method+" not allowed on "+r.URL.Path)
	})
	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.setDefaults()
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadTimeout:       s.ReadTimeout,
		ReadHeaderTimeout: s.ReadTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	s.Logger.Info("listening", "addr", ln.Addr().String())

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) setDefaults() {
	if s.Addr == "" {
		s.Addr = DefaultAddr
	}
	if s.MaxBodyBytes <= 0 {
		s.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if s.ReadTimeout <= 0 {
		s.ReadTimeout = DefaultReadTimeout
	}
	if s.Logger == nil {
		s.Logger = log.Default()
	}
	if s.Runner == nil {
		s.Runner = pipeline.NewRunner(nil, nil, s.Logger)
	}
}
