package screening

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nurtura-health/triage-engine/internal/observability/metrics"
	"github.com/nurtura-health/triage-engine/pkg/logging"
)

// Request is the body for POST /api/v1/screenings.
type Request struct {
	SessionID string            `json:"session_id"`
	Answers   []int             `json:"answers"`
	Context   map[string]string `json:"context,omitempty"`
}

// Handler wires HTTP screening submissions to the scorer.
type Handler struct {
	archive *Archive
	metrics *metrics.TriageMetrics
	logger  *logging.Logger
}

// NewHandler creates a screening handler. The archive may be nil.
func NewHandler(archive *Archive, m *metrics.TriageMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{archive: archive, metrics: m, logger: logger}
}

// Submit handles POST /api/v1/screenings.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode screening request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := Run(req.Answers, req.Context)
	if err != nil {
		if errors.Is(err, ErrAnswerCount) || errors.Is(err, ErrAnswerRange) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error("failed to run screening", "error", err)
		http.Error(w, "Failed to run screening", http.StatusInternalServerError)
		return
	}

	h.metrics.ObserveScreening(string(result.Risk))

	// Archiving is best-effort and never blocks the reply.
	if err := h.archive.Save(r.Context(), req.SessionID, req.Answers, result); err != nil {
		h.logger.Error("failed to archive screening", "session_id", req.SessionID, "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.logger.Error("failed to write screening response", "error", err)
	}
}
