// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/boardroom-ai/boardroom/internal/domain/phase"
	"github.com/boardroom-ai/boardroom/pkg/logger"
	"github.com/boardroom-ai/boardroom/pkg/metrics"
)

// Phase1Handler handles clarity-capture requests.
type Phase1Handler struct {
	deps Dependencies
}

// NewPhase1Handler creates a new phase-one handler.
func NewPhase1Handler(deps Dependencies) *Phase1Handler {
	return &Phase1Handler{deps: deps}
}

type phase1Request struct {
	Challenge string `json:"challenge"`
}

type phase1Response struct {
	Phase int `json:"phase"`
	phase.ClarityResult
}

// HandlePhase1 handles POST /api/phase1 requests. Validation happens before
// any gateway call: an absent or blank challenge never reaches the model.
func (h *Phase1Handler) HandlePhase1(w http.ResponseWriter, r *http.Request) {
	const op = "api.phase1"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req phase1Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.RecordPhaseRequest("phase1", "bad_request")
		logger.Get().Named("api").Debug(r.Context(), "rejecting request", logger.Error(WrapKind(op, ErrBadRequest, err)))
		writeError(w, http.StatusBadRequest, "Challenge required")
		return
	}
	if strings.TrimSpace(req.Challenge) == "" {
		metrics.RecordPhaseRequest("phase1", "bad_request")
		logger.Get().Named("api").Debug(r.Context(), "rejecting request", logger.Error(NewKind(op, ErrMissingField)))
		writeError(w, http.StatusBadRequest, "Challenge required")
		return
	}

	result, err := h.deps.Phase1(r.Context(), req.Challenge)
	if err != nil {
		writePhaseFailure(w, "phase1", err)
		return
	}

	metrics.RecordPhaseRequest("phase1", "ok")
	writeJSON(w, http.StatusOK, phase1Response{Phase: 1, ClarityResult: result})
}
