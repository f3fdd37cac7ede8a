// Package engine implements the quest and gamification rules: the goal
// lifecycle state machine, the XP economy, consumable items and the
// punishment sweep that resolves missed deadlines.
//
// The engine owns no timer. Deadline expiry is detected lazily by RunSweep;
// the caller (login flow, resume hook, periodic poll) is responsible for
// triggering it. Every mutating operation is serialized per user around one
// load-transform-save cycle, so a check-in racing a sweep always observes
// the other's result, never its intermediate state.
package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/focusquest/focusquest/internal/model"
)

type Engine struct {
	store Store
	now   func() time.Time

	mu      sync.Mutex
	locks   map[string]*sync.Mutex
	reports map[string]*model.DamageReport
	panic   map[string]bool
}

// New creates an engine over the given store. A nil now defaults to
// time.Now; tests pass a fixed clock.
func New(store Store, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{
		store:   store,
		now:     now,
		locks:   make(map[string]*sync.Mutex),
		reports: make(map[string]*model.DamageReport),
		panic:   make(map[string]bool),
	}
}

// userLock returns the mutex serializing all mutating operations for one
// user. Operations for different users never contend.
func (e *Engine) userLock(userID string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()

	lock, ok := e.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		e.locks[userID] = lock
	}
	return lock
}

// load assembles the user's snapshot from the store.
func (e *Engine) load(ctx context.Context, userID string) (Snapshot, error) {
	quests, err := e.store.LoadQuests(ctx, userID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load quests: %w", err)
	}
	stats, err := e.store.LoadStats(ctx, userID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load stats: %w", err)
	}
	inventory, err := e.store.LoadInventory(ctx, userID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load inventory: %w", err)
	}
	return Snapshot{Quests: quests, Stats: stats, Inventory: inventory}, nil
}

// save hands the new snapshot to the store. On failure nothing was applied:
// the transformed snapshot is discarded and the durable state still holds
// the one we loaded.
func (e *Engine) save(ctx context.Context, userID string, snap Snapshot) error {
	if err := e.store.SaveSnapshot(ctx, userID, snap); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Snapshot returns the user's current persisted state. Read-only; takes no
// user lock.
func (e *Engine) Snapshot(ctx context.Context, userID string) (Snapshot, error) {
	return e.load(ctx, userID)
}

// CreateQuest adds a new Active quest with a fixed deadline.
func (e *Engine) CreateQuest(ctx context.Context, userID, title, questType, category string, deadline time.Time) (model.Quest, error) {
	lock := e.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	snap, err := e.load(ctx, userID)
	if err != nil {
		return model.Quest{}, err
	}

	snap = snap.clone()
	quest := newQuest(userID, title, questType, category, deadline, e.now())
	snap.Quests = append(snap.Quests, quest)

	if err := e.save(ctx, userID, snap); err != nil {
		return model.Quest{}, err
	}
	return quest, nil
}

// CheckIn records one unit of progress plus a journal entry. An armed panic
// mode is disarmed and converted into bonus XP by this call.
func (e *Engine) CheckIn(ctx context.Context, userID, questID, text, mood string) (CheckInResult, error) {
	lock := e.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	snap, err := e.load(ctx, userID)
	if err != nil {
		return CheckInResult{}, err
	}

	panicArmed := e.panicArmed(userID)
	entry := model.JournalEntry{Text: text, Mood: mood}
	next, result, err := checkIn(snap.clone(), questID, entry, e.now(), panicArmed)
	if err != nil {
		return CheckInResult{}, err
	}

	if err := e.save(ctx, userID, next); err != nil {
		return CheckInResult{}, err
	}
	if panicArmed {
		e.setPanic(userID, false)
	}
	return result, nil
}

// Fail records a missed day plus a journal entry.
func (e *Engine) Fail(ctx context.Context, userID, questID, text, mood string) (FailResult, error) {
	lock := e.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	snap, err := e.load(ctx, userID)
	if err != nil {
		return FailResult{}, err
	}

	entry := model.JournalEntry{Text: text, Mood: mood}
	next, result, err := fail(snap.clone(), questID, entry, e.now())
	if err != nil {
		return FailResult{}, err
	}

	if err := e.save(ctx, userID, next); err != nil {
		return FailResult{}, err
	}
	return result, nil
}

// EditTitle renames a quest in any state.
func (e *Engine) EditTitle(ctx context.Context, userID, questID, title string) error {
	lock := e.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	snap, err := e.load(ctx, userID)
	if err != nil {
		return err
	}

	next, err := editTitle(snap.clone(), questID, title)
	if err != nil {
		return err
	}
	return e.save(ctx, userID, next)
}

// DeleteQuest removes a quest permanently.
func (e *Engine) DeleteQuest(ctx context.Context, userID, questID string) error {
	lock := e.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	snap, err := e.load(ctx, userID)
	if err != nil {
		return err
	}

	next, err := deleteQuest(snap.clone(), questID)
	if err != nil {
		return err
	}
	return e.save(ctx, userID, next)
}

// PurchaseItem buys one catalog item with XP and adds it to the inventory.
func (e *Engine) PurchaseItem(ctx context.Context, userID, itemID string) (Snapshot, error) {
	item, ok := model.CatalogItem(itemID)
	if !ok {
		return Snapshot{}, ErrUnknownItem
	}

	lock := e.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	snap, err := e.load(ctx, userID)
	if err != nil {
		return Snapshot{}, err
	}

	next, err := purchase(snap.clone(), item)
	if err != nil {
		return Snapshot{}, err
	}

	if err := e.save(ctx, userID, next); err != nil {
		return Snapshot{}, err
	}
	return next, nil
}

// RunSweep resolves all quests whose deadline passed without completion.
// Safe to call any number of times; penalized quests are excluded from
// later sweeps. A produced damage report is retained until acknowledged,
// replacing any unacknowledged predecessor.
func (e *Engine) RunSweep(ctx context.Context, userID string) (SweepResult, error) {
	lock := e.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	snap, err := e.load(ctx, userID)
	if err != nil {
		return SweepResult{}, err
	}

	next, result := sweep(snap.clone(), e.now())
	if !result.Shielded && result.Report == nil {
		return result, nil
	}

	if err := e.save(ctx, userID, next); err != nil {
		return SweepResult{}, err
	}

	if result.Report != nil {
		e.mu.Lock()
		e.reports[userID] = result.Report
		e.mu.Unlock()
	}
	return result, nil
}

// AddFocusTime accumulates focus minutes on the user stats.
func (e *Engine) AddFocusTime(ctx context.Context, userID string, minutes int) (model.UserStats, error) {
	lock := e.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	snap, err := e.load(ctx, userID)
	if err != nil {
		return model.UserStats{}, err
	}

	next := snap.clone()
	next.Stats.TotalFocusTime += minutes

	if err := e.save(ctx, userID, next); err != nil {
		return model.UserStats{}, err
	}
	return next.Stats, nil
}

// DamageReport returns the unacknowledged report from the last damaging
// sweep, or nil.
func (e *Engine) DamageReport(userID string) *model.DamageReport {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.reports[userID]
}

// AcknowledgeDamageReport clears the pending report.
func (e *Engine) AcknowledgeDamageReport(userID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.reports, userID)
}

// TogglePanicMode flips the user's rescue mode and returns the new state.
// While armed, the next successful check-in earns a bonus and disarms it.
// The flag is session state, not persisted.
func (e *Engine) TogglePanicMode(userID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.panic[userID] = !e.panic[userID]
	return e.panic[userID]
}

func (e *Engine) panicArmed(userID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.panic[userID]
}

func (e *Engine) setPanic(userID string, armed bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.panic[userID] = armed
}
