package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/focusquest/focusquest/internal/engine"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}

// respondEngineError maps the engine's error taxonomy to HTTP statuses.
// Everything in the taxonomy is a recoverable condition; only unexpected
// errors are logged as server faults.
func respondEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, engine.ErrQuestNotFound):
		respondError(w, http.StatusNotFound, "quest not found")
	case errors.Is(err, engine.ErrAlreadyLoggedToday):
		respondError(w, http.StatusConflict, "already logged today")
	case errors.Is(err, engine.ErrInvalidState):
		respondError(w, http.StatusConflict, "quest is no longer active")
	case errors.Is(err, engine.ErrInsufficientFunds):
		respondError(w, http.StatusPaymentRequired, "not enough xp")
	case errors.Is(err, engine.ErrUnknownItem):
		respondError(w, http.StatusNotFound, "unknown store item")
	case errors.Is(err, engine.ErrStorageUnavailable):
		slog.Error("storage unavailable", "error", err)
		respondError(w, http.StatusServiceUnavailable, "storage unavailable, nothing was changed")
	default:
		slog.Error("engine operation failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
