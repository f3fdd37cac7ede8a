package model

import (
	"time"
)

// UserStats is the per-user economy aggregate. It is owned by the engine's
// ledger: XP and level change only through credit/debit, never directly.
type UserStats struct {
	UserID                string     `db:"user_id" json:"-"`
	Level                 int        `db:"level" json:"level"`
	XP                    int        `db:"xp" json:"xp"`
	TotalFocusTime        int        `db:"total_focus_time" json:"totalFocusTime"`
	CurrentStreak         int        `db:"current_streak" json:"currentStreak"`
	LongestStreak         int        `db:"longest_streak" json:"longestStreak"`
	LastActiveDate        *time.Time `db:"last_active_date" json:"lastActiveDate,omitempty"`
	DailyQuestsCompleted  int        `db:"daily_completed" json:"dailyQuestsCompleted"`
	WeeklyQuestsCompleted int        `db:"weekly_completed" json:"weeklyQuestsCompleted"`
	MonthlyQuestsComplete int        `db:"monthly_completed" json:"monthlyQuestsCompleted"`
}

// InitialStats returns the stats a fresh account starts with.
func InitialStats(userID string) UserStats {
	return UserStats{
		UserID: userID,
		Level:  1,
		XP:     0,
	}
}
