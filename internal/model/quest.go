package model

import (
	"time"
)

const (
	QuestTypeDaily   = "daily"
	QuestTypeWeekly  = "weekly"
	QuestTypeMonthly = "monthly"
)

const (
	QuestCategoryHealth   = "health"
	QuestCategoryWork     = "work"
	QuestCategoryLearning = "learning"
	QuestCategoryMindset  = "mindset"
)

// Quest is a trackable commitment with a deadline and a check-in target.
// A quest is Active until it either reaches its target (isCompleted) or a
// missed deadline is recorded against it (penaltyApplied). Both flags are
// terminal and mutually exclusive.
type Quest struct {
	ID              string     `db:"id" json:"id"`
	UserID          string     `db:"user_id" json:"-"`
	Title           string     `db:"title" json:"title"`
	Type            string     `db:"type" json:"type"`
	Category        string     `db:"category" json:"category"`
	TargetCheckIns  int        `db:"target_check_ins" json:"targetCheckIns"`
	CurrentCheckIns int        `db:"current_check_ins" json:"currentCheckIns"`
	IsCompleted     bool       `db:"is_completed" json:"isCompleted"`
	PenaltyApplied  bool       `db:"penalty_applied" json:"penaltyApplied"`
	CreatedAt       time.Time  `db:"created_at" json:"createdAt"`
	Deadline        time.Time  `db:"deadline" json:"deadline"`
	LastCheckInDate *time.Time `db:"last_check_in_date" json:"lastCheckInDate,omitempty"`
	CompletedAt     *time.Time `db:"completed_at" json:"completedAt,omitempty"`

	// Journal is the append-only activity log, oldest first. Loaded from
	// its own table, not a column.
	Journal []JournalEntry `db:"-" json:"journal"`
}

// TargetCheckInsFor returns the number of check-ins a quest type requires.
func TargetCheckInsFor(questType string) int {
	switch questType {
	case QuestTypeWeekly:
		return 7
	case QuestTypeMonthly:
		return 30
	default:
		return 1
	}
}

// ValidQuestType reports whether questType is one of the supported types.
func ValidQuestType(questType string) bool {
	switch questType {
	case QuestTypeDaily, QuestTypeWeekly, QuestTypeMonthly:
		return true
	}
	return false
}

// ValidQuestCategory reports whether category is one of the supported categories.
func ValidQuestCategory(category string) bool {
	switch category {
	case QuestCategoryHealth, QuestCategoryWork, QuestCategoryLearning, QuestCategoryMindset:
		return true
	}
	return false
}

// Active reports whether the quest can still accept check-ins and fails.
func (q *Quest) Active() bool {
	return !q.IsCompleted && !q.PenaltyApplied
}
