package engine

import (
	"context"

	"github.com/focusquest/focusquest/internal/model"
)

// Snapshot is one user's complete engine state. Every engine operation is a
// pure transformation from a loaded snapshot plus one event to a new
// snapshot; nothing is mutated in place across calls.
type Snapshot struct {
	Quests    []model.Quest   `json:"quests"`
	Stats     model.UserStats `json:"stats"`
	Inventory []string        `json:"inventory"`
}

// Store is the persistence collaborator. Implementations must make
// SaveSnapshot all-or-nothing across quests, stats and inventory; a partial
// write is never acceptable. Any underlying failure is reported wrapped in
// ErrStorageUnavailable.
type Store interface {
	LoadQuests(ctx context.Context, userID string) ([]model.Quest, error)
	LoadStats(ctx context.Context, userID string) (model.UserStats, error)
	LoadInventory(ctx context.Context, userID string) ([]string, error)
	SaveSnapshot(ctx context.Context, userID string, snap Snapshot) error
}

// clone deep-copies the snapshot so a transformation can never alias the
// slices of the snapshot it started from.
func (s Snapshot) clone() Snapshot {
	out := Snapshot{
		Stats:     s.Stats,
		Quests:    make([]model.Quest, len(s.Quests)),
		Inventory: append([]string(nil), s.Inventory...),
	}
	for i, q := range s.Quests {
		q.Journal = append([]model.JournalEntry(nil), q.Journal...)
		out.Quests[i] = q
	}
	return out
}

// questIndex returns the position of a quest by id, or -1.
func (s Snapshot) questIndex(questID string) int {
	for i := range s.Quests {
		if s.Quests[i].ID == questID {
			return i
		}
	}
	return -1
}
