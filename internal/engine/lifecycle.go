package engine

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/focusquest/focusquest/internal/model"
)

// Celebration is the intensity hint the engine emits on a successful
// check-in. Phrase and sound selection belong to the presentation layer;
// the engine stays deterministic.
type Celebration string

const (
	CelebrationNone   Celebration = "none"
	CelebrationSmall  Celebration = "small"
	CelebrationMedium Celebration = "medium"
	CelebrationEpic   Celebration = "epic"
)

// CheckInResult reports what one check-in changed.
type CheckInResult struct {
	Quest       model.Quest     `json:"quest"`
	Stats       model.UserStats `json:"stats"`
	Completed   bool            `json:"completed"`
	XPGained    int             `json:"xpGained"`
	PotionUsed  bool            `json:"potionUsed"`
	PanicBonus  bool            `json:"panicBonus"`
	LeveledUp   bool            `json:"leveledUp"`
	Celebration Celebration     `json:"celebration"`
}

// FailResult reports what one recorded failure changed.
type FailResult struct {
	Quest     model.Quest     `json:"quest"`
	Stats     model.UserStats `json:"stats"`
	Penalized bool            `json:"penalized"`
	XPLost    int             `json:"xpLost"`
}

// LoggedToday reports whether the quest already has a journal entry for
// the calendar day of now. Pure read accessor for display.
func LoggedToday(q model.Quest, now time.Time) bool {
	return hasActivityToday(q, now)
}

// hasActivityToday reports whether the quest already has a journal entry
// for the calendar day of now. Entries are append-only, so the last one is
// the newest.
func hasActivityToday(q model.Quest, now time.Time) bool {
	if len(q.Journal) == 0 {
		return false
	}
	return sameDay(q.Journal[len(q.Journal)-1].Date, now)
}

// newQuest builds an Active quest with a fresh id and the check-in target
// implied by its type. The deadline is fixed here and never auto-extended.
func newQuest(userID, title, questType, category string, deadline, now time.Time) model.Quest {
	return model.Quest{
		ID:             uuid.New().String(),
		UserID:         userID,
		Title:          strings.TrimSpace(title),
		Type:           questType,
		Category:       category,
		TargetCheckIns: model.TargetCheckInsFor(questType),
		CreatedAt:      now,
		Deadline:       deadline,
		Journal:        []model.JournalEntry{},
	}
}

// checkIn records one unit of progress. Reaching the target completes the
// quest and awards the full type reward; otherwise the smaller per-check-in
// amount applies. A panic bonus is added before a potion doubles the total.
func checkIn(snap Snapshot, questID string, entry model.JournalEntry, now time.Time, panicArmed bool) (Snapshot, CheckInResult, error) {
	i := snap.questIndex(questID)
	if i == -1 {
		return snap, CheckInResult{}, ErrQuestNotFound
	}

	quest := snap.Quests[i]
	if !quest.Active() {
		return snap, CheckInResult{}, ErrInvalidState
	}
	if hasActivityToday(quest, now) {
		return snap, CheckInResult{}, ErrAlreadyLoggedToday
	}

	quest.CurrentCheckIns++
	completed := quest.CurrentCheckIns >= quest.TargetCheckIns

	xp := xpCheckIn
	if completed {
		xp = RewardFor(quest.Type)
	}
	if panicArmed {
		xp += xpPanicBonus
	}

	inventory, potionUsed := tryConsumePotion(snap.Inventory)
	if potionUsed {
		xp *= 2
	}

	checkedIn := now
	quest.LastCheckInDate = &checkedIn
	if completed {
		quest.IsCompleted = true
		completedAt := now
		quest.CompletedAt = &completedAt
	}

	entry.ID = uuid.New().String()
	entry.QuestID = quest.ID
	entry.Date = now
	quest.Journal = append(quest.Journal, entry)

	stats := touchActivity(snap.Stats, now)
	levelBefore := stats.Level
	stats = Credit(stats, xp)
	if completed {
		switch quest.Type {
		case model.QuestTypeWeekly:
			stats.WeeklyQuestsCompleted++
		case model.QuestTypeMonthly:
			stats.MonthlyQuestsComplete++
		default:
			stats.DailyQuestsCompleted++
		}
	}

	snap.Quests[i] = quest
	snap.Stats = stats
	snap.Inventory = inventory

	result := CheckInResult{
		Quest:       quest,
		Stats:       stats,
		Completed:   completed,
		XPGained:    xp,
		PotionUsed:  potionUsed,
		PanicBonus:  panicArmed,
		LeveledUp:   stats.Level > levelBefore,
		Celebration: celebrationFor(quest.Type, completed),
	}
	return snap, result, nil
}

// fail records a missed day. A daily quest is penalized terminally on the
// spot; weekly and monthly quests stay active but cost a fixed XP penalty
// per failed day.
func fail(snap Snapshot, questID string, entry model.JournalEntry, now time.Time) (Snapshot, FailResult, error) {
	i := snap.questIndex(questID)
	if i == -1 {
		return snap, FailResult{}, ErrQuestNotFound
	}

	quest := snap.Quests[i]
	if !quest.Active() {
		return snap, FailResult{}, ErrInvalidState
	}
	if hasActivityToday(quest, now) {
		return snap, FailResult{}, ErrAlreadyLoggedToday
	}

	result := FailResult{}
	stats := snap.Stats
	if quest.Type == model.QuestTypeDaily {
		quest.PenaltyApplied = true
		result.Penalized = true
	} else {
		stats = Debit(stats, xpFailPenalty)
		result.XPLost = xpFailPenalty
	}

	entry.ID = uuid.New().String()
	entry.QuestID = quest.ID
	entry.Date = now
	quest.Journal = append(quest.Journal, entry)

	snap.Quests[i] = quest
	snap.Stats = stats
	result.Quest = quest
	result.Stats = stats
	return snap, result, nil
}

// editTitle renames a quest. Allowed in any state; nothing else changes.
func editTitle(snap Snapshot, questID, title string) (Snapshot, error) {
	i := snap.questIndex(questID)
	if i == -1 {
		return snap, ErrQuestNotFound
	}
	snap.Quests[i].Title = strings.TrimSpace(title)
	return snap, nil
}

// deleteQuest removes a quest permanently, journal included. No soft delete.
func deleteQuest(snap Snapshot, questID string) (Snapshot, error) {
	i := snap.questIndex(questID)
	if i == -1 {
		return snap, ErrQuestNotFound
	}
	snap.Quests = append(snap.Quests[:i], snap.Quests[i+1:]...)
	return snap, nil
}

func celebrationFor(questType string, completed bool) Celebration {
	if !completed {
		return CelebrationSmall
	}
	if questType == model.QuestTypeDaily {
		return CelebrationMedium
	}
	return CelebrationEpic
}
