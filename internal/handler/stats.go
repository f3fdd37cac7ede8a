package handler

import (
	"log/slog"
	"net/http"

	"github.com/focusquest/focusquest/internal/ctxkeys"
	"github.com/focusquest/focusquest/internal/engine"
	"github.com/focusquest/focusquest/internal/model"
)

type StatsHandler struct {
	engine *engine.Engine
}

func NewStatsHandler(eng *engine.Engine) *StatsHandler {
	return &StatsHandler{
		engine: eng,
	}
}

type statsResponse struct {
	Stats     model.UserStats `json:"stats"`
	XPCeiling int             `json:"xpCeiling"`
}

func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	snap, err := h.engine.Snapshot(r.Context(), user.ID)
	if err != nil {
		respondEngineError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, statsResponse{
		Stats:     snap.Stats,
		XPCeiling: engine.XPCeiling(snap.Stats.Level),
	})
}

type focusRequest struct {
	Minutes int `json:"minutes"`
}

func (h *StatsHandler) AddFocusTime(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req focusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Minutes <= 0 || req.Minutes > 24*60 {
		respondError(w, http.StatusBadRequest, "minutes must be between 1 and 1440")
		return
	}

	stats, err := h.engine.AddFocusTime(r.Context(), user.ID, req.Minutes)
	if err != nil {
		respondEngineError(w, err)
		return
	}

	slog.Debug("focus time recorded", "user_id", user.ID, "minutes", req.Minutes)
	respondJSON(w, http.StatusOK, stats)
}
