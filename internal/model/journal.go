package model

import (
	"time"
)

const (
	MoodFire     = "fire"
	MoodHappy    = "happy"
	MoodNeutral  = "neutral"
	MoodTired    = "tired"
	MoodStressed = "stressed"
)

// JournalEntry is one recorded note against a quest. At most one entry may
// exist per quest per calendar day; check-in and fail both append one.
type JournalEntry struct {
	ID      string    `db:"id" json:"-"`
	QuestID string    `db:"quest_id" json:"-"`
	Date    time.Time `db:"entry_date" json:"date"`
	Text    string    `db:"text" json:"text"`
	Mood    string    `db:"mood" json:"mood"`
}

// ValidMood reports whether mood is one of the supported moods.
func ValidMood(mood string) bool {
	switch mood {
	case MoodFire, MoodHappy, MoodNeutral, MoodTired, MoodStressed:
		return true
	}
	return false
}
