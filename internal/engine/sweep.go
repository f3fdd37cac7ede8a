package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/focusquest/focusquest/internal/model"
)

// SweepResult reports what a punishment sweep did. Report is nil when
// nothing was penalized, including the shielded case.
type SweepResult struct {
	Shielded bool                `json:"shielded"`
	Report   *model.DamageReport `json:"report,omitempty"`
}

// sweep resolves every quest whose deadline has passed without completion
// or a prior penalty. One shield, if present, mitigates the entire batch.
// Without a shield each missed quest costs a fixed penalty, debited as one
// sum. Already-penalized quests are excluded, which makes repeated sweeps
// over the same data no-ops.
func sweep(snap Snapshot, now time.Time) (Snapshot, SweepResult) {
	var missed []int
	for i := range snap.Quests {
		q := snap.Quests[i]
		if q.Active() && q.Deadline.Before(now) {
			missed = append(missed, i)
		}
	}
	if len(missed) == 0 {
		return snap, SweepResult{}
	}

	inventory, shielded := tryConsumeShield(snap.Inventory)
	snap.Inventory = inventory

	if shielded {
		for _, i := range missed {
			snap.Quests[i].PenaltyApplied = true
			snap.Quests[i].Journal = append(snap.Quests[i].Journal, model.JournalEntry{
				ID:      uuid.New().String(),
				QuestID: snap.Quests[i].ID,
				Date:    now,
				Text:    "Saved by shield",
				Mood:    model.MoodNeutral,
			})
		}
		return snap, SweepResult{Shielded: true}
	}

	report := &model.DamageReport{}
	for _, i := range missed {
		snap.Quests[i].PenaltyApplied = true
		report.XPLost += xpMissedPenalty
		report.Titles = append(report.Titles, snap.Quests[i].Title)
	}
	snap.Stats = Debit(snap.Stats, report.XPLost)

	return snap, SweepResult{Report: report}
}
