// Package server is the thin HTTP front end: it accepts a document
// upload, runs quiz generation, and returns the quiz as JSON. All quiz
// logic lives in internal/quiz; nothing here outlives a request.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/abhisek/quizforge/internal/quiz"
)

// Config holds HTTP server settings.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// AllowedOrigins configures CORS.
	AllowedOrigins []string

	// MaxUploadBytes caps document upload size. Default: 10 MiB.
	MaxUploadBytes int64

	// DefaultQuestions and DefaultOptions apply when the request does
	// not specify counts.
	DefaultQuestions int
	DefaultOptions   int
}

// DefaultConfig returns a Config with development-friendly defaults.
func DefaultConfig() Config {
	return Config{
		Addr:             ":8080",
		AllowedOrigins:   []string{"http://localhost:5173"},
		MaxUploadBytes:   10 << 20,
		DefaultQuestions: 5,
		DefaultOptions:   4,
	}
}

// Server serves the quiz-generation HTTP API.
type Server struct {
	cfg    Config
	svc    *quiz.Service
	logger *slog.Logger
}

// New creates a Server around the quiz service.
func New(cfg Config, svc *quiz.Service, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{cfg: cfg, svc: svc, logger: logger}
}

// Router builds the chi router with CORS, security headers and the
// API routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
			next.ServeHTTP(w, req)
		})
	})

	r.Get("/healthz", s.handleHealth)
	r.Post("/api/quiz", s.handleGenerate)
	r.Post("/api/score", s.handleScore)

	return r
}

// ListenAndServe runs the HTTP server until it fails.
func (s *Server) ListenAndServe() error {
	s.logger.Info("http server listening", "addr", s.cfg.Addr)
	return http.ListenAndServe(s.cfg.Addr, s.Router())
}
