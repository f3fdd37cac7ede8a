package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/focusquest/focusquest/internal/ctxkeys"
	"github.com/focusquest/focusquest/internal/engine"
	"github.com/focusquest/focusquest/internal/model"
	"github.com/focusquest/focusquest/internal/service"
)

// memStore is an in-memory engine.Store for exercising handlers without a
// database.
type memStore struct {
	mu        sync.Mutex
	quests    map[string][]model.Quest
	stats     map[string]model.UserStats
	inventory map[string][]string
}

func newMemStore() *memStore {
	return &memStore{
		quests:    make(map[string][]model.Quest),
		stats:     make(map[string]model.UserStats),
		inventory: make(map[string][]string),
	}
}

func (m *memStore) LoadQuests(ctx context.Context, userID string) ([]model.Quest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.Quest(nil), m.quests[userID]...), nil
}

func (m *memStore) LoadStats(ctx context.Context, userID string) (model.UserStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stats, ok := m.stats[userID]
	if !ok {
		return model.InitialStats(userID), nil
	}
	return stats, nil
}

func (m *memStore) LoadInventory(ctx context.Context, userID string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.inventory[userID]...), nil
}

func (m *memStore) SaveSnapshot(ctx context.Context, userID string, snap engine.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.quests[userID] = snap.Quests
	m.stats[userID] = snap.Stats
	m.inventory[userID] = snap.Inventory
	return nil
}

var testUser = &model.User{ID: "user-1", Email: "test@example.com", Name: "Test"}

func authedRequest(method, target, body string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	return r.WithContext(ctxkeys.WithUser(r.Context(), testUser))
}

func newTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	return engine.New(newMemStore(), nil)
}

// devNotify logs instead of sending email.
func devNotify() *service.NotifyService {
	return service.NewNotifyService("", "noreply@example.com", "FocusQuest", true)
}

func TestQuestCreateAndList(t *testing.T) {
	eng := newTestEngine(t)
	h := NewQuestHandler(eng, devNotify())

	deadline := time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339)
	body := `{"title":"Morning run","type":"daily","category":"health","deadline":"` + deadline + `"}`

	w := httptest.NewRecorder()
	h.Create(w, authedRequest(http.MethodPost, "/api/quests", body))

	if w.Code != http.StatusCreated {
		t.Fatalf("Create status = %d, want %d: %s", w.Code, http.StatusCreated, w.Body.String())
	}

	var created questView
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.Title != "Morning run" {
		t.Errorf("created title = %q, want %q", created.Title, "Morning run")
	}
	if created.LoggedToday {
		t.Error("new quest reported as logged today")
	}

	w = httptest.NewRecorder()
	h.List(w, authedRequest(http.MethodGet, "/api/quests", ""))

	if w.Code != http.StatusOK {
		t.Fatalf("List status = %d, want %d", w.Code, http.StatusOK)
	}
	var listed []questView
	if err := json.NewDecoder(w.Body).Decode(&listed); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != created.ID {
		t.Errorf("listed %d quests, want the one just created", len(listed))
	}
}

func TestQuestCreateValidation(t *testing.T) {
	eng := newTestEngine(t)
	h := NewQuestHandler(eng, devNotify())

	deadline := time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339)
	tests := []struct {
		name string
		body string
	}{
		{"empty title", `{"title":"  ","type":"daily","category":"health","deadline":"` + deadline + `"}`},
		{"bad type", `{"title":"Run","type":"hourly","category":"health","deadline":"` + deadline + `"}`},
		{"bad category", `{"title":"Run","type":"daily","category":"sports","deadline":"` + deadline + `"}`},
		{"past deadline", `{"title":"Run","type":"daily","category":"health","deadline":"2020-01-01T00:00:00Z"}`},
		{"malformed json", `{"title":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.Create(w, authedRequest(http.MethodPost, "/api/quests", tt.body))
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestCheckInTwiceSameDayConflicts(t *testing.T) {
	eng := newTestEngine(t)
	h := NewQuestHandler(eng, devNotify())

	quest, err := eng.CreateQuest(context.Background(), testUser.ID, "Read", "weekly", "learning", time.Now().Add(7*24*time.Hour))
	if err != nil {
		t.Fatalf("CreateQuest: %v", err)
	}

	checkIn := func() *httptest.ResponseRecorder {
		r := authedRequest(http.MethodPost, "/api/quests/"+quest.ID+"/check-in", `{"text":"done","mood":"happy"}`)
		r.SetPathValue("id", quest.ID)
		w := httptest.NewRecorder()
		h.CheckIn(w, r)
		return w
	}

	if w := checkIn(); w.Code != http.StatusOK {
		t.Fatalf("first check-in status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
	}
	if w := checkIn(); w.Code != http.StatusConflict {
		t.Errorf("second check-in status = %d, want %d", w.Code, http.StatusConflict)
	}
}

func TestCheckInUnknownQuest(t *testing.T) {
	eng := newTestEngine(t)
	h := NewQuestHandler(eng, devNotify())

	r := authedRequest(http.MethodPost, "/api/quests/nope/check-in", `{"text":"","mood":"neutral"}`)
	r.SetPathValue("id", "nope")
	w := httptest.NewRecorder()
	h.CheckIn(w, r)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestPurchaseWithoutFunds(t *testing.T) {
	eng := newTestEngine(t)
	h := NewStoreHandler(eng)

	w := httptest.NewRecorder()
	h.Purchase(w, authedRequest(http.MethodPost, "/api/store/purchase", `{"itemId":"shield"}`))

	if w.Code != http.StatusPaymentRequired {
		t.Errorf("status = %d, want %d", w.Code, http.StatusPaymentRequired)
	}
}

func TestDamageReportLifecycle(t *testing.T) {
	eng := newTestEngine(t)
	h := NewSweepHandler(eng, devNotify())

	w := httptest.NewRecorder()
	h.DamageReport(w, authedRequest(http.MethodGet, "/api/damage-report", ""))
	if w.Code != http.StatusNotFound {
		t.Fatalf("empty report status = %d, want %d", w.Code, http.StatusNotFound)
	}

	w = httptest.NewRecorder()
	h.AcknowledgeDamageReport(w, authedRequest(http.MethodDelete, "/api/damage-report", ""))
	if w.Code != http.StatusNoContent {
		t.Errorf("acknowledge status = %d, want %d", w.Code, http.StatusNoContent)
	}
}

func TestTogglePanic(t *testing.T) {
	eng := newTestEngine(t)
	h := NewSweepHandler(eng, devNotify())

	toggle := func() panicResponse {
		w := httptest.NewRecorder()
		h.TogglePanic(w, authedRequest(http.MethodPost, "/api/panic", ""))
		if w.Code != http.StatusOK {
			t.Fatalf("toggle status = %d, want %d", w.Code, http.StatusOK)
		}
		var resp panicResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("decode toggle response: %v", err)
		}
		return resp
	}

	if resp := toggle(); !resp.Armed {
		t.Error("first toggle should arm panic mode")
	}
	if resp := toggle(); resp.Armed {
		t.Error("second toggle should disarm panic mode")
	}
}

func TestAddFocusTimeValidation(t *testing.T) {
	eng := newTestEngine(t)
	h := NewStatsHandler(eng)

	for _, body := range []string{`{"minutes":0}`, `{"minutes":-5}`, `{"minutes":2000}`} {
		w := httptest.NewRecorder()
		h.AddFocusTime(w, authedRequest(http.MethodPost, "/api/focus", body))
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want %d", body, w.Code, http.StatusBadRequest)
		}
	}

	w := httptest.NewRecorder()
	h.AddFocusTime(w, authedRequest(http.MethodPost, "/api/focus", `{"minutes":25}`))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	var stats model.UserStats
	if err := json.NewDecoder(w.Body).Decode(&stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.TotalFocusTime != 25 {
		t.Errorf("TotalFocusTime = %d, want 25", stats.TotalFocusTime)
	}
}
