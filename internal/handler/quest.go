package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/focusquest/focusquest/internal/ctxkeys"
	"github.com/focusquest/focusquest/internal/engine"
	"github.com/focusquest/focusquest/internal/model"
	"github.com/focusquest/focusquest/internal/service"
	"github.com/focusquest/focusquest/internal/validation"
)

type QuestHandler struct {
	engine *engine.Engine
	notify *service.NotifyService
}

func NewQuestHandler(eng *engine.Engine, notify *service.NotifyService) *QuestHandler {
	return &QuestHandler{
		engine: eng,
		notify: notify,
	}
}

// questView decorates a quest with the derived display state the clients
// would otherwise recompute.
type questView struct {
	model.Quest
	TimeStatus  engine.TimeStatus `json:"timeStatus"`
	LoggedToday bool              `json:"loggedToday"`
}

func viewOf(q model.Quest, now time.Time) questView {
	return questView{
		Quest:       q,
		TimeStatus:  engine.QuestTimeStatus(q, now),
		LoggedToday: engine.LoggedToday(q, now),
	}
}

func (h *QuestHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	snap, err := h.engine.Snapshot(r.Context(), user.ID)
	if err != nil {
		respondEngineError(w, err)
		return
	}

	now := time.Now()
	views := make([]questView, 0, len(snap.Quests))
	for _, q := range snap.Quests {
		views = append(views, viewOf(q, now))
	}

	respondJSON(w, http.StatusOK, views)
}

type createQuestRequest struct {
	Title    string    `json:"title"`
	Type     string    `json:"type"`
	Category string    `json:"category"`
	Deadline time.Time `json:"deadline"`
}

func (h *QuestHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req createQuestRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := validation.ValidateTitle(req.Title); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !model.ValidQuestType(req.Type) {
		respondError(w, http.StatusBadRequest, "type must be daily, weekly or monthly")
		return
	}
	if !model.ValidQuestCategory(req.Category) {
		respondError(w, http.StatusBadRequest, "invalid category")
		return
	}
	if !req.Deadline.After(time.Now()) {
		respondError(w, http.StatusBadRequest, "deadline must be in the future")
		return
	}

	quest, err := h.engine.CreateQuest(r.Context(), user.ID, req.Title, req.Type, req.Category, req.Deadline)
	if err != nil {
		respondEngineError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, viewOf(quest, time.Now()))
}

type editQuestRequest struct {
	Title string `json:"title"`
}

func (h *QuestHandler) Edit(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	questID := r.PathValue("id")

	var req editQuestRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validation.ValidateTitle(req.Title); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	err := h.engine.EditTitle(r.Context(), user.ID, questID, req.Title)
	if err != nil {
		respondEngineError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *QuestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	questID := r.PathValue("id")

	err := h.engine.DeleteQuest(r.Context(), user.ID, questID)
	if err != nil {
		respondEngineError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type journalRequest struct {
	Text string `json:"text"`
	Mood string `json:"mood"`
}

func (h *QuestHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	questID := r.PathValue("id")

	var req journalRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validation.ValidateJournalEntry(req.Text, req.Mood); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.engine.CheckIn(r.Context(), user.ID, questID, req.Text, req.Mood)
	if err != nil {
		respondEngineError(w, err)
		return
	}

	if result.LeveledUp {
		notifyErr := h.notify.SendLevelUp(user.Email, result.Stats.Level)
		if notifyErr != nil {
			slog.Error("failed to send level-up email", "error", notifyErr, "user_id", user.ID)
		}
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *QuestHandler) Fail(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	questID := r.PathValue("id")

	var req journalRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validation.ValidateJournalEntry(req.Text, req.Mood); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.engine.Fail(r.Context(), user.ID, questID, req.Text, req.Mood)
	if err != nil {
		respondEngineError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
