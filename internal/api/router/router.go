package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nurtura-health/triage-engine/internal/screening"
	"github.com/nurtura-health/triage-engine/internal/triage"
	"github.com/nurtura-health/triage-engine/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger           *logging.Logger
	ChatHandler      *triage.Handler
	ScreeningHandler *screening.Handler
	MetricsHandler   http.Handler
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.ChatHandler != nil {
			r.Post("/chat", cfg.ChatHandler.Chat)
		}
		if cfg.ScreeningHandler != nil {
			r.Post("/screenings", cfg.ScreeningHandler.Submit)
		}
	})

	return r
}
