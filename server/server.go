// Package server exposes the search engine over HTTP: a JSON endpoint
// returning the outcome with its full event list, and a websocket endpoint
// streaming events as they are produced.
//
// Every request runs on its own grid, so concurrent requests never share
// search state.
package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/matryer/way"
	"github.com/sirupsen/logrus"
)

// Routes.
const (
	URIHealth = "/healthz"
	URISearch = "/api/search"
	URIStream = "/ws/search"
)

// DefaultMaxSize bounds the grid side length accepted from clients.
const DefaultMaxSize = 256

// Server routes search requests to the engine.
type Server struct {
	router   *way.Router
	upgrader websocket.Upgrader
	log      logrus.FieldLogger
	delay    time.Duration
	maxSize  int
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithDelay paces websocket events by d.
func WithDelay(d time.Duration) Option {
	return func(s *Server) {
		if d >= 0 {
			s.delay = d
		}
	}
}

// WithMaxSize bounds the accepted grid size.
func WithMaxSize(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxSize = n
		}
	}
}

// New builds a Server with its routes registered.
func New(opts ...Option) *Server {
	l := logrus.New()
	l.SetOutput(io.Discard)
	s := &Server{log: l, maxSize: DefaultMaxSize}
	for _, opt := range opts {
		opt(s)
	}
	s.routes()

	return s
}

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("GET", URIHealth, s.handleHealth)
	s.router.HandleFunc("POST", URISearch, s.handleSearch)
	s.router.HandleFunc("GET", URIStream, s.handleStream)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is done, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	hs := &http.Server{Addr: addr, Handler: s, ReadHeaderTimeout: 10 * time.Second}
	errc := make(chan error, 1)
	go func() { errc <- hs.ListenAndServe() }()
	s.log.WithField("addr", addr).Info("listening")

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := hs.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
