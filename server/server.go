// Package server exposes the HTTP surface: the mood submission endpoint,
// the configuration status endpoint, and the health check.
package server

import (
	"net/http"

	"moodtunes/discovery"
	"moodtunes/shared/config"
	"moodtunes/shared/monitoring"

	"github.com/go-chi/chi/v5"
)

type Server struct {
	orchestrator *discovery.Orchestrator
	monitor      *monitoring.Monitor
	cfg          *config.Config
}

func New(cfg *config.Config, orchestrator *discovery.Orchestrator, monitor *monitoring.Monitor) *Server {
	return &Server{
		orchestrator: orchestrator,
		monitor:      monitor,
		cfg:          cfg,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(accessLog)

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/status", s.handleStatus)
		r.Route("/discover", func(r chi.Router) {
			// The submission endpoint answers disallowed methods with a
			// validation error naming the method, not a bare 405.
			r.MethodNotAllowed(s.handleMethodNotAllowed)
			r.Post("/", s.handleDiscover)
		})
	})

	return r
}
