// Package storage persists engine snapshots. It is the engine's
// persistence collaborator: reads are per-aggregate, writes replace the
// user's quests, stats and inventory in one transaction so a failed write
// can never leave a partial snapshot behind.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/focusquest/focusquest/internal/engine"
	"github.com/focusquest/focusquest/internal/model"
)

type Store struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// unavailable wraps a driver error so callers can match
// engine.ErrStorageUnavailable with errors.Is.
func unavailable(err error) error {
	return fmt.Errorf("%w: %v", engine.ErrStorageUnavailable, err)
}

func (s *Store) LoadQuests(ctx context.Context, userID string) ([]model.Quest, error) {
	var quests []model.Quest
	query := `SELECT id, user_id, title, type, category, target_check_ins, current_check_ins,
	                 is_completed, penalty_applied, created_at, deadline, last_check_in_date, completed_at
	          FROM quests WHERE user_id = $1 ORDER BY created_at`

	err := s.db.SelectContext(ctx, &quests, query, userID)
	if err != nil {
		return nil, unavailable(err)
	}

	var entries []model.JournalEntry
	journalQuery := `SELECT j.id, j.quest_id, j.entry_date, j.text, j.mood
	                 FROM journal_entries j
	                 JOIN quests q ON q.id = j.quest_id
	                 WHERE q.user_id = $1
	                 ORDER BY j.quest_id, j.position`

	err = s.db.SelectContext(ctx, &entries, journalQuery, userID)
	if err != nil {
		return nil, unavailable(err)
	}

	byQuest := make(map[string][]model.JournalEntry, len(quests))
	for _, entry := range entries {
		byQuest[entry.QuestID] = append(byQuest[entry.QuestID], entry)
	}
	for i := range quests {
		quests[i].Journal = byQuest[quests[i].ID]
	}

	return quests, nil
}

func (s *Store) LoadStats(ctx context.Context, userID string) (model.UserStats, error) {
	var stats model.UserStats
	query := `SELECT user_id, level, xp, total_focus_time, current_streak, longest_streak,
	                 last_active_date, daily_completed, weekly_completed, monthly_completed
	          FROM user_stats WHERE user_id = $1`

	err := s.db.GetContext(ctx, &stats, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.InitialStats(userID), nil
	}
	if err != nil {
		return model.UserStats{}, unavailable(err)
	}

	return stats, nil
}

func (s *Store) LoadInventory(ctx context.Context, userID string) ([]string, error) {
	var items []string
	query := `SELECT item_id FROM inventory_items WHERE user_id = $1 ORDER BY position`

	err := s.db.SelectContext(ctx, &items, query, userID)
	if err != nil {
		return nil, unavailable(err)
	}

	return items, nil
}

// SaveSnapshot replaces the user's quests, journal, stats and inventory in
// one transaction. Either everything lands or nothing does.
func (s *Store) SaveSnapshot(ctx context.Context, userID string, snap engine.Snapshot) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return unavailable(err)
	}
	defer tx.Rollback()

	err = saveQuests(ctx, tx, userID, snap.Quests)
	if err != nil {
		return unavailable(err)
	}
	err = saveStats(ctx, tx, userID, snap.Stats)
	if err != nil {
		return unavailable(err)
	}
	err = saveInventory(ctx, tx, userID, snap.Inventory)
	if err != nil {
		return unavailable(err)
	}

	err = tx.Commit()
	if err != nil {
		return unavailable(err)
	}
	return nil
}

func saveQuests(ctx context.Context, tx *sqlx.Tx, userID string, quests []model.Quest) error {
	_, err := tx.ExecContext(ctx,
		`DELETE FROM journal_entries WHERE quest_id IN (SELECT id FROM quests WHERE user_id = $1)`, userID)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `DELETE FROM quests WHERE user_id = $1`, userID)
	if err != nil {
		return err
	}

	questInsert := `INSERT INTO quests (id, user_id, title, type, category, target_check_ins, current_check_ins,
	                                    is_completed, penalty_applied, created_at, deadline, last_check_in_date, completed_at)
	                VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	entryInsert := `INSERT INTO journal_entries (id, quest_id, position, entry_date, text, mood)
	                VALUES ($1, $2, $3, $4, $5, $6)`

	for _, q := range quests {
		_, err = tx.ExecContext(ctx, questInsert,
			q.ID, q.UserID, q.Title, q.Type, q.Category, q.TargetCheckIns, q.CurrentCheckIns,
			q.IsCompleted, q.PenaltyApplied, q.CreatedAt, q.Deadline, q.LastCheckInDate, q.CompletedAt)
		if err != nil {
			return err
		}
		for pos, entry := range q.Journal {
			_, err = tx.ExecContext(ctx, entryInsert,
				entry.ID, q.ID, pos, entry.Date, entry.Text, entry.Mood)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func saveStats(ctx context.Context, tx *sqlx.Tx, userID string, stats model.UserStats) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM user_stats WHERE user_id = $1`, userID)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO user_stats (user_id, level, xp, total_focus_time, current_streak, longest_streak,
		                         last_active_date, daily_completed, weekly_completed, monthly_completed)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		userID, stats.Level, stats.XP, stats.TotalFocusTime, stats.CurrentStreak, stats.LongestStreak,
		stats.LastActiveDate, stats.DailyQuestsCompleted, stats.WeeklyQuestsCompleted, stats.MonthlyQuestsComplete)
	return err
}

func saveInventory(ctx context.Context, tx *sqlx.Tx, userID string, inventory []string) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM inventory_items WHERE user_id = $1`, userID)
	if err != nil {
		return err
	}

	insert := `INSERT INTO inventory_items (user_id, position, item_id) VALUES ($1, $2, $3)`
	for pos, itemID := range inventory {
		_, err = tx.ExecContext(ctx, insert, userID, pos, itemID)
		if err != nil {
			return err
		}
	}
	return nil
}
