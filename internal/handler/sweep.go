package handler

import (
	"log/slog"
	"net/http"

	"github.com/focusquest/focusquest/internal/ctxkeys"
	"github.com/focusquest/focusquest/internal/engine"
	"github.com/focusquest/focusquest/internal/service"
)

type SweepHandler struct {
	engine *engine.Engine
	notify *service.NotifyService
}

func NewSweepHandler(eng *engine.Engine, notify *service.NotifyService) *SweepHandler {
	return &SweepHandler{
		engine: eng,
		notify: notify,
	}
}

// Run is the resume hook: clients call it when the app comes back to the
// foreground. Safe to call repeatedly.
func (h *SweepHandler) Run(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	result, err := h.engine.RunSweep(r.Context(), user.ID)
	if err != nil {
		respondEngineError(w, err)
		return
	}

	if result.Report != nil {
		notifyErr := h.notify.SendDamageReport(user.Email, result.Report)
		if notifyErr != nil {
			slog.Error("failed to send damage report email", "error", notifyErr, "user_id", user.ID)
		}
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *SweepHandler) DamageReport(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	report := h.engine.DamageReport(user.ID)
	if report == nil {
		respondError(w, http.StatusNotFound, "no pending damage report")
		return
	}

	respondJSON(w, http.StatusOK, report)
}

func (h *SweepHandler) AcknowledgeDamageReport(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	h.engine.AcknowledgeDamageReport(user.ID)
	w.WriteHeader(http.StatusNoContent)
}

type panicResponse struct {
	Armed bool `json:"armed"`
}

func (h *SweepHandler) TogglePanic(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	armed := h.engine.TogglePanicMode(user.ID)
	respondJSON(w, http.StatusOK, panicResponse{Armed: armed})
}
