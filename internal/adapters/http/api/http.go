// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/boardroom-ai/boardroom/internal/domain/phase"
	"github.com/boardroom-ai/boardroom/pkg/metrics"
)

// Dependencies required by the HTTP handlers. An interface bundle keeps the
// handler layer loosely coupled to the app service.
type Dependencies interface {
	Phase1(ctx context.Context, challenge string) (phase.ClarityResult, error)
	Phase2(ctx context.Context, challenge, challengeType string) (phase.TeamResult, error)
	Phase3(ctx context.Context, challenge string, team []phase.TeamMember) (phase.QuestionResult, error)
}

// Server wires HTTP routes for the phase API.
type Server struct {
	healthHandler *HealthHandler
	phase1Handler *Phase1Handler
	phase2Handler *Phase2Handler
	phase3Handler *Phase3Handler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		healthHandler: NewHealthHandler(),
		phase1Handler: NewPhase1Handler(deps),
		phase2Handler: NewPhase2Handler(deps),
		phase3Handler: NewPhase3Handler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/health", RequestMiddleware(s.healthHandler.HandleHealth, "health"))
	mux.HandleFunc("/metrics", s.healthHandler.HandleMetrics)
	mux.HandleFunc("/api/phase1", RequestMiddleware(s.phase1Handler.HandlePhase1, "phase1"))
	mux.HandleFunc("/api/phase2", RequestMiddleware(s.phase2Handler.HandlePhase2, "phase2"))
	mux.HandleFunc("/api/phase3", RequestMiddleware(s.phase3Handler.HandlePhase3, "phase3"))
}

// errorResponse is the only failure shape exposed to clients: a single
// human-readable message, no structured codes.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	if msg == "" {
		msg = http.StatusText(status)
	}
	writeJSON(w, status, errorResponse{Error: msg})
}

// writePhaseFailure maps downstream failures to a 500 with a stable
// message: parse failures and gateway failures are distinguished for
// metrics but neither leaks provider detail to the client.
func writePhaseFailure(w http.ResponseWriter, phaseName string, err error) {
	if errors.Is(err, phase.ErrResponseParse) || errors.Is(err, phase.ErrEmptyResponse) {
		metrics.RecordPhaseRequest(phaseName, "parse_error")
		writeError(w, http.StatusInternalServerError, "Failed to parse model response")
		return
	}
	metrics.RecordPhaseRequest(phaseName, "model_error")
	writeError(w, http.StatusInternalServerError, "Model call failed")
}
