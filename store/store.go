// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/habitday/models"
)

// Store reads and writes habits, days and completions.
// It is safe for concurrent use; coordination is left to the database.
type Store struct {
	db *sqlx.DB
}

// New wraps an open connection. driverName selects the placeholder style
// ("postgres" for $1, "sqlite" for ?).
func New(conn *sql.DB, driverName string) *Store {
	return &Store{db: sqlx.NewDb(conn, driverName)}
}

// CreateHabit inserts a habit and one recurrence entry per weekday, in order.
func (s *Store) CreateHabit(ctx context.Context, title string, createdAt models.Date, weekDays []int) (models.Habit, error) {
	habit := models.Habit{
		ID:        uuid.NewString(),
		Title:     title,
		CreatedAt: createdAt,
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, tx.Rebind(`
		INSERT INTO habits (id, title, created_at)
		VALUES (?, ?, ?)
	`), habit.ID, habit.Title, habit.CreatedAt)
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to insert habit: %w", err)
	}

	insertWeekDay := tx.Rebind(`
		INSERT INTO habits_week_days (id, habit_id, week_day)
		VALUES (?, ?, ?)
	`)
	for _, wd := range weekDays {
		entry := models.HabitWeekDay{ID: uuid.NewString(), HabitID: habit.ID, WeekDay: wd}
		if _, err := tx.ExecContext(ctx, insertWeekDay, entry.ID, entry.HabitID, entry.WeekDay); err != nil {
			return models.Habit{}, fmt.Errorf("failed to insert week day %d: %w", wd, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Habit{}, fmt.Errorf("failed to commit habit: %w", err)
	}

	return habit, nil
}

// HabitExists reports whether a habit with the given id exists.
func (s *Store) HabitExists(ctx context.Context, id string) (bool, error) {
	var one int
	err := s.db.GetContext(ctx, &one, s.db.Rebind(`SELECT 1 FROM habits WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up habit: %w", err)
	}
	return true, nil
}

// PossibleHabits returns the habits created on or before date that recur on
// date's weekday, oldest first.
func (s *Store) PossibleHabits(ctx context.Context, date models.Date) ([]models.Habit, error) {
	habits := []models.Habit{}
	err := s.db.SelectContext(ctx, &habits, s.db.Rebind(`
		SELECT h.id, h.title, h.created_at
		FROM habits h
		WHERE h.created_at <= ?
		  AND EXISTS (
		      SELECT 1 FROM habits_week_days w
		      WHERE w.habit_id = h.id AND w.week_day = ?
		  )
		ORDER BY h.created_at, h.title, h.id
	`), date, date.Weekday())
	if err != nil {
		return nil, fmt.Errorf("failed to query possible habits: %w", err)
	}
	return habits, nil
}

// CompletedHabitIDs returns the ids of habits completed on date.
// A date without a Day row yields an empty list.
func (s *Store) CompletedHabitIDs(ctx context.Context, date models.Date) ([]string, error) {
	ids := []string{}
	err := s.db.SelectContext(ctx, &ids, s.db.Rebind(`
		SELECT dh.habit_id
		FROM day_habits dh
		JOIN days d ON d.id = dh.day_id
		WHERE d.date = ?
		ORDER BY dh.habit_id
	`), date)
	if err != nil {
		return nil, fmt.Errorf("failed to query completed habits: %w", err)
	}
	return ids, nil
}

// ToggleCompletion flips the completion of habitID on date and reports
// whether the habit is now completed. The Day row is created on demand.
func (s *Store) ToggleCompletion(ctx context.Context, date models.Date, habitID string) (bool, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	dayID, err := getOrCreateDay(ctx, tx, date)
	if err != nil {
		return false, err
	}

	res, err := tx.ExecContext(ctx, tx.Rebind(`
		DELETE FROM day_habits WHERE day_id = ? AND habit_id = ?
	`), dayID, habitID)
	if err != nil {
		return false, fmt.Errorf("failed to delete completion: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read deleted rows: %w", err)
	}

	completed := deleted == 0
	if completed {
		completion := models.DayHabit{ID: uuid.NewString(), DayID: dayID, HabitID: habitID}
		_, err = tx.ExecContext(ctx, tx.Rebind(`
			INSERT INTO day_habits (id, day_id, habit_id)
			VALUES (?, ?, ?)
			ON CONFLICT (day_id, habit_id) DO NOTHING
		`), completion.ID, completion.DayID, completion.HabitID)
		if err != nil {
			return false, fmt.Errorf("failed to insert completion: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit toggle: %w", err)
	}

	return completed, nil
}

// getOrCreateDay upserts the Day row for date so concurrent first toggles
// of a day never trip the date uniqueness constraint.
func getOrCreateDay(ctx context.Context, tx *sqlx.Tx, date models.Date) (string, error) {
	_, err := tx.ExecContext(ctx, tx.Rebind(`
		INSERT INTO days (id, date)
		VALUES (?, ?)
		ON CONFLICT (date) DO NOTHING
	`), uuid.NewString(), date)
	if err != nil {
		return "", fmt.Errorf("failed to create day: %w", err)
	}

	var dayID string
	err = tx.GetContext(ctx, &dayID, tx.Rebind(`SELECT id FROM days WHERE date = ?`), date)
	if err != nil {
		return "", fmt.Errorf("failed to load day %s: %w", date, err)
	}
	return dayID, nil
}

type recurrence struct {
	WeekDay   int         `db:"week_day"`
	CreatedAt models.Date `db:"created_at"`
}

type completionCount struct {
	DayID string `db:"day_id"`
	Count int    `db:"completed"`
}

// Summary returns, for every Day ordered by date, the number of completions
// and the number of recurrence entries due that day.
func (s *Store) Summary(ctx context.Context) ([]models.SummaryDay, error) {
	days := []models.Day{}
	if err := s.db.SelectContext(ctx, &days, `SELECT id, date FROM days ORDER BY date`); err != nil {
		return nil, fmt.Errorf("failed to query days: %w", err)
	}

	entries := []recurrence{}
	err := s.db.SelectContext(ctx, &entries, `
		SELECT w.week_day, h.created_at
		FROM habits_week_days w
		JOIN habits h ON h.id = w.habit_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query recurrence entries: %w", err)
	}

	counts := []completionCount{}
	err = s.db.SelectContext(ctx, &counts, `
		SELECT day_id, COUNT(*) AS completed
		FROM day_habits
		GROUP BY day_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to count completions: %w", err)
	}

	return aggregateSummary(days, entries, counts), nil
}

func aggregateSummary(days []models.Day, entries []recurrence, counts []completionCount) []models.SummaryDay {
	completedByDay := make(map[string]int, len(counts))
	for _, c := range counts {
		completedByDay[c.DayID] = c.Count
	}

	// Creation dates per weekday, sorted, so each day is a binary search.
	var byWeekDay [7][]models.Date
	for _, e := range entries {
		if e.WeekDay < 0 || e.WeekDay > 6 {
			continue
		}
		byWeekDay[e.WeekDay] = append(byWeekDay[e.WeekDay], e.CreatedAt)
	}
	for wd := range byWeekDay {
		created := byWeekDay[wd]
		sort.Slice(created, func(i, j int) bool { return created[i].Before(created[j]) })
	}

	summary := make([]models.SummaryDay, 0, len(days))
	for _, d := range days {
		created := byWeekDay[d.Date.Weekday()]
		amount := sort.Search(len(created), func(i int) bool { return d.Date.Before(created[i]) })

		summary = append(summary, models.SummaryDay{
			ID:        d.ID,
			Date:      d.Date,
			Completed: float64(completedByDay[d.ID]),
			Amount:    float64(amount),
		})
	}
	return summary
}

// Health pings the database and reports connection pool statistics.
func (s *Store) Health(ctx context.Context) map[string]string {
	ctx, cancel := context.WithTimeout(ctx, 1*time.Second)
	defer cancel()

	stats := make(map[string]string)

	if err := s.db.PingContext(ctx); err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		return stats
	}

	stats["status"] = "up"
	stats["message"] = "It's healthy"

	dbStats := s.db.Stats()
	stats["open_connections"] = strconv.Itoa(dbStats.OpenConnections)
	stats["in_use"] = strconv.Itoa(dbStats.InUse)
	stats["idle"] = strconv.Itoa(dbStats.Idle)
	stats["wait_count"] = strconv.FormatInt(dbStats.WaitCount, 10)
	stats["wait_duration"] = dbStats.WaitDuration.String()

	if dbStats.WaitCount > 1000 {
		stats["message"] = "The database has a high number of wait events, indicating potential bottlenecks."
	}

	return stats
}
