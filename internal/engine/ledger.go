package engine

import (
	"time"

	"github.com/focusquest/focusquest/internal/model"
)

// Credit awards XP and resolves level-ups. Returns a new UserStats value.
func Credit(stats model.UserStats, xp int) model.UserStats {
	return ApplyXP(stats, xp)
}

// Debit removes XP, clamped at zero. Level is never decremented, even when
// the clamp fires.
func Debit(stats model.UserStats, xp int) model.UserStats {
	out := ApplyXP(stats, -xp)
	if out.XP < 0 {
		out.XP = 0
	}
	return out
}

// touchActivity records user-level activity for streak tracking. The first
// activity of a calendar day extends the streak if yesterday was active,
// otherwise restarts it at 1.
func touchActivity(stats model.UserStats, now time.Time) model.UserStats {
	if stats.LastActiveDate != nil && sameDay(*stats.LastActiveDate, now) {
		return stats
	}

	if stats.LastActiveDate != nil && sameDay(stats.LastActiveDate.AddDate(0, 0, 1), now) {
		stats.CurrentStreak++
	} else {
		stats.CurrentStreak = 1
	}

	if stats.CurrentStreak > stats.LongestStreak {
		stats.LongestStreak = stats.CurrentStreak
	}

	active := now
	stats.LastActiveDate = &active
	return stats
}

// sameDay reports whether two instants fall on the same calendar day.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
