package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"moodtunes/internal/models"
	"moodtunes/shared/apperrors"
)

type discoverRequest struct {
	Mood     string `json:"mood"`
	Language string `json:"language,omitempty"`
}

func (s *Server) handleDiscover(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req discoverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		s.writeError(w, apperrors.Validation("Request body must be valid JSON with a mood field."))
		return
	}

	// Boundary default; the orchestrator applies its own when callers hand
	// it an empty language directly.
	language := req.Language
	if language == "" {
		language = s.cfg.Discovery.DefaultLanguage
	}

	start := time.Now()
	response, err := s.orchestrator.Discover(ctx, req.Mood, language)
	if err != nil {
		ae := apperrors.Classify(err)
		s.monitor.RecordFailure(ae.Kind, time.Since(start))
		slog.WarnContext(ctx, "discovery failed",
			"kind", string(ae.Kind),
			"status", ae.StatusCode,
			"error", err)
		s.writeError(w, ae)
		return
	}

	s.monitor.RecordSuccess(time.Since(start))
	s.writeJSON(w, http.StatusOK, response)
}

func (s *Server) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, apperrors.Validation(fmt.Sprintf("Method %s is not allowed here. Use POST.", r.Method)))
}

type statusResponse struct {
	Service    string `json:"service"`
	Configured bool   `json:"configured"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, statusResponse{
		Service:    "moodtunes",
		Configured: s.cfg.YouTube.APIKey != "",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.monitor.IsHealthy() {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK - %s", s.monitor.GetStatusSummary())
		return
	}
	w.WriteHeader(http.StatusServiceUnavailable)
	fmt.Fprintf(w, "Service unhealthy - %s", s.monitor.GetStatusSummary())
}

// writeError renders a classified failure. The underlying cause is exposed
// only in development; callers otherwise see the kind's message alone.
func (s *Server) writeError(w http.ResponseWriter, ae *apperrors.Error) {
	message := ae.Message
	if s.cfg.IsDevelopment() && ae.Cause != nil {
		message = fmt.Sprintf("%s (%v)", ae.Message, ae.Cause)
	}
	s.writeJSON(w, ae.StatusCode, models.DiscoveryResponse{
		Success: false,
		Error:   message,
		Code:    string(ae.Kind),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
