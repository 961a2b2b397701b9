package triage

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/nurtura-health/triage-engine/pkg/logging"
)

// ChatRequest is the body for POST /api/v1/chat.
type ChatRequest struct {
	SessionID     string `json:"session_id"`
	Message       string `json:"message"`
	ResponseStyle string `json:"response_style,omitempty"`
}

// ChatResponse wraps the engine response with the session identifier so
// clients can thread it through subsequent turns.
type ChatResponse struct {
	SessionID string `json:"session_id"`
	Response
}

// Handler wires HTTP chat requests to the triage engine. It owns the
// caller-side responsibilities the engine deliberately leaves out: session
// identifiers, context round-tripping, per-session serialization, and the
// optional decoration of the canned message.
type Handler struct {
	engine    *Engine
	store     *ContextStore
	decorator *Decorator
	locks     *sessionLocks
	logger    *logging.Logger
}

// NewHandler creates a chat handler. The decorator may be nil.
func NewHandler(engine *Engine, store *ContextStore, decorator *Decorator, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		engine:    engine,
		store:     store,
		decorator: decorator,
		locks:     newSessionLocks(),
		logger:    logger,
	}
}

// Chat handles POST /api/v1/chat.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode chat request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}

	// At most one in-flight call per session.
	lock := h.locks.lock(req.SessionID)
	defer lock.Unlock()

	conv, err := h.store.Load(r.Context(), req.SessionID)
	if err != nil {
		h.logger.Error("failed to load context", "session_id", req.SessionID, "error", err)
		http.Error(w, "Failed to load conversation", http.StatusInternalServerError)
		return
	}

	if style := ResponseStyle(req.ResponseStyle); validStyle(style) {
		conv.ResponseStyle = style
	}

	resp, err := h.engine.GenerateResponse(r.Context(), req.Message, conv)
	if err != nil {
		if errors.Is(err, ErrEmptyMessage) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error("failed to generate response", "session_id", req.SessionID, "error", err)
		http.Error(w, "Failed to generate response", http.StatusInternalServerError)
		return
	}

	if err := h.store.Save(r.Context(), conv); err != nil {
		h.logger.Error("failed to save context", "session_id", req.SessionID, "error", err)
		http.Error(w, "Failed to save conversation", http.StatusInternalServerError)
		return
	}

	resp = h.decorator.Decorate(r.Context(), resp)

	h.writeJSON(w, http.StatusOK, ChatResponse{SessionID: req.SessionID, Response: resp})
}

func validStyle(style ResponseStyle) bool {
	switch style {
	case StyleWarm, StyleDirect, StyleSpiritual, StylePractical:
		return true
	default:
		return false
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", "error", err)
	}
}
