// Package api exposes the report conversion over HTTP.
package api

import (
	"net/http"
	"time"

	"github.com/Nomadcxx/slotsheet/internal/availability"
	"github.com/Nomadcxx/slotsheet/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const component = "api"

// Server implements the API
type Server struct {
	converter    *availability.Converter
	log          *logging.Logger
	maxBodyBytes int64
}

type Option func(*Server)

// WithMaxBodyBytes caps the size of conversion requests.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBodyBytes = n
		}
	}
}

func WithLogger(l *logging.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// NewServer creates a new API server
func NewServer(converter *availability.Converter, opts ...Option) *Server {
	s := &Server{
		converter:    converter,
		log:          logging.Nop(),
		maxBodyBytes: 1024 * 1024,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the HTTP handler with the API mounted at /api/v1.
func (s *Server) Handler() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Mount("/api/v1", s.apiRouter())

	return r
}

func (s *Server) apiRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Get("/health", s.HandleHealth)
	r.Post("/convert", s.HandleConvert)

	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.log.Info(component, "request",
			logging.F("method", r.Method),
			logging.F("path", r.URL.Path),
			logging.F("status", ww.Status()),
			logging.F("bytes", ww.BytesWritten()),
			logging.F("duration", time.Since(start)),
			logging.F("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
