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

// Phase2Handler handles team-construction requests.
type Phase2Handler struct {
	deps Dependencies
}

// NewPhase2Handler creates a new phase-two handler.
func NewPhase2Handler(deps Dependencies) *Phase2Handler {
	return &Phase2Handler{deps: deps}
}

type phase2Request struct {
	Challenge     string `json:"challenge"`
	ChallengeType string `json:"challengeType"`
}

type phase2Response struct {
	Phase int `json:"phase"`
	phase.TeamResult
	SwapAvailable bool `json:"swapAvailable"`
	SwapLimit     int  `json:"swapLimit"`
}

// HandlePhase2 handles POST /api/phase2 requests. Both fields are required
// before the roster is consulted; the swap policy fields are static and
// never derived from the pool or the model output.
func (h *Phase2Handler) HandlePhase2(w http.ResponseWriter, r *http.Request) {
	const op = "api.phase2"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req phase2Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.RecordPhaseRequest("phase2", "bad_request")
		logger.Get().Named("api").Debug(r.Context(), "rejecting request", logger.Error(WrapKind(op, ErrBadRequest, err)))
		writeError(w, http.StatusBadRequest, "Challenge and challengeType required")
		return
	}
	if strings.TrimSpace(req.Challenge) == "" || strings.TrimSpace(req.ChallengeType) == "" {
		metrics.RecordPhaseRequest("phase2", "bad_request")
		logger.Get().Named("api").Debug(r.Context(), "rejecting request", logger.Error(NewKind(op, ErrMissingField)))
		writeError(w, http.StatusBadRequest, "Challenge and challengeType required")
		return
	}

	result, err := h.deps.Phase2(r.Context(), req.Challenge, req.ChallengeType)
	if err != nil {
		writePhaseFailure(w, "phase2", err)
		return
	}

	metrics.RecordPhaseRequest("phase2", "ok")
	writeJSON(w, http.StatusOK, phase2Response{
		Phase:         2,
		TeamResult:    result,
		SwapAvailable: true,
		SwapLimit:     phase.SwapLimit,
	})
}
