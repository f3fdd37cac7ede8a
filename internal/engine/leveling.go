package engine

import (
	"math"

	"github.com/focusquest/focusquest/internal/model"
)

const (
	levelBase       = 450
	levelMultiplier = 1.2

	xpCheckIn         = 15
	xpDailyComplete   = 50
	xpWeeklyComplete  = 150
	xpMonthlyComplete = 500

	xpFailPenalty   = 20
	xpMissedPenalty = 50
	xpPanicBonus    = 50

	// maxLevelUps bounds the level-up loop so corrupted stats can never
	// spin it forever. Hitting the cap stops leveling silently.
	maxLevelUps = 50
)

// XPCeiling returns the total cumulative XP required to complete the given
// level: sum of floor(450 * 1.2^(i-1)) for i in 1..level. The curve is
// strictly increasing and is always derived, never persisted.
func XPCeiling(level int) int {
	total := 0
	for i := 1; i <= level; i++ {
		total += int(math.Floor(levelBase * math.Pow(levelMultiplier, float64(i-1))))
	}
	return total
}

// ApplyXP adds delta to the stats XP and resolves any level-ups against the
// curve. It returns a new UserStats value; the caller's copy is untouched.
func ApplyXP(stats model.UserStats, delta int) model.UserStats {
	stats.XP += delta
	for i := 0; i < maxLevelUps && stats.XP >= XPCeiling(stats.Level); i++ {
		stats.Level++
	}
	return stats
}

// RewardFor returns the completion XP for a quest type.
func RewardFor(questType string) int {
	switch questType {
	case model.QuestTypeWeekly:
		return xpWeeklyComplete
	case model.QuestTypeMonthly:
		return xpMonthlyComplete
	default:
		return xpDailyComplete
	}
}
