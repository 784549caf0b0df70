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

// Phase3Handler handles interrogation requests.
type Phase3Handler struct {
	deps Dependencies
}

// NewPhase3Handler creates a new phase-three handler.
func NewPhase3Handler(deps Dependencies) *Phase3Handler {
	return &Phase3Handler{deps: deps}
}

type phase3Request struct {
	Challenge string             `json:"challenge"`
	Team      []phase.TeamMember `json:"team"`
}

type phase3Response struct {
	Phase int `json:"phase"`
	phase.QuestionResult
	TotalQuestions int `json:"totalQuestions"`
}

// HandlePhase3 handles POST /api/phase3 requests. The caller resupplies the
// team on every call and tracks question progression itself; the response
// carries the static round count.
func (h *Phase3Handler) HandlePhase3(w http.ResponseWriter, r *http.Request) {
	const op = "api.phase3"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req phase3Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.RecordPhaseRequest("phase3", "bad_request")
		logger.Get().Named("api").Debug(r.Context(), "rejecting request", logger.Error(WrapKind(op, ErrBadRequest, err)))
		writeError(w, http.StatusBadRequest, "Challenge and team required")
		return
	}
	if strings.TrimSpace(req.Challenge) == "" || len(req.Team) == 0 {
		metrics.RecordPhaseRequest("phase3", "bad_request")
		logger.Get().Named("api").Debug(r.Context(), "rejecting request", logger.Error(NewKind(op, ErrMissingField)))
		writeError(w, http.StatusBadRequest, "Challenge and team required")
		return
	}

	result, err := h.deps.Phase3(r.Context(), req.Challenge, req.Team)
	if err != nil {
		writePhaseFailure(w, "phase3", err)
		return
	}

	metrics.RecordPhaseRequest("phase3", "ok")
	writeJSON(w, http.StatusOK, phase3Response{
		Phase:          3,
		QuestionResult: result,
		TotalQuestions: phase.TotalQuestions,
	})
}
