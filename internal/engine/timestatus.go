package engine

import (
	"time"

	"github.com/focusquest/focusquest/internal/model"
)

// TimeStatus is the urgency bucket for a quest's remaining time. It is a
// pure derivation for display; reading it never touches persisted state.
type TimeStatus string

const (
	TimeStatusBlue    TimeStatus = "blue"
	TimeStatusGreen   TimeStatus = "green"
	TimeStatusYellow  TimeStatus = "yellow"
	TimeStatusRed     TimeStatus = "red"
	TimeStatusExpired TimeStatus = "expired"
)

// QuestTimeStatus buckets the fraction of the quest window still remaining.
// Completed quests are always blue.
func QuestTimeStatus(q model.Quest, now time.Time) TimeStatus {
	if q.IsCompleted {
		return TimeStatusBlue
	}
	if now.After(q.Deadline) {
		return TimeStatusExpired
	}

	total := q.Deadline.Sub(q.CreatedAt)
	if total <= 0 {
		return TimeStatusRed
	}
	left := float64(q.Deadline.Sub(now)) / float64(total)

	switch {
	case left > 0.75:
		return TimeStatusBlue
	case left > 0.50:
		return TimeStatusGreen
	case left > 0.15:
		return TimeStatusYellow
	default:
		return TimeStatusRed
	}
}
