// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/habitday/db"
	"github.com/danielhkuo/habitday/models"
)

func newSQLiteStore(t *testing.T) *Store {
	t.Helper()

	conn, err := db.Open(context.Background(), "sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return New(conn, "sqlite")
}

// 2024-01-01 is a Monday.
var (
	monday    = models.MustParseDate("2024-01-01")
	wednesday = models.MustParseDate("2024-01-03")
)

func TestCreateHabitStoresWeekDaysInOrder(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()

	habit, err := s.CreateHabit(ctx, "Run", monday, []int{5, 1, 3, 1})
	require.NoError(t, err)
	assert.NotEmpty(t, habit.ID)
	assert.Equal(t, "Run", habit.Title)
	assert.True(t, habit.CreatedAt.Equal(monday))

	var weekDays []int
	err = s.db.Select(&weekDays, `SELECT week_day FROM habits_week_days WHERE habit_id = ? ORDER BY rowid`, habit.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 1, 3, 1}, weekDays)
}

func TestPossibleHabits(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()

	run, err := s.CreateHabit(ctx, "Run", monday, []int{1, 3, 5})
	require.NoError(t, err)
	read, err := s.CreateHabit(ctx, "Read", wednesday, []int{3})
	require.NoError(t, err)
	_, err = s.CreateHabit(ctx, "Rest", monday, []int{0})
	require.NoError(t, err)

	t.Run("matches weekday and creation date", func(t *testing.T) {
		habits, err := s.PossibleHabits(ctx, wednesday)
		require.NoError(t, err)
		require.Len(t, habits, 2)
		assert.Equal(t, run.ID, habits[0].ID)
		assert.Equal(t, read.ID, habits[1].ID)
		assert.True(t, habits[1].CreatedAt.Equal(wednesday))
	})

	t.Run("excludes habits created later", func(t *testing.T) {
		habits, err := s.PossibleHabits(ctx, models.MustParseDate("2023-12-27")) // a Wednesday before everything
		require.NoError(t, err)
		assert.Empty(t, habits)
	})

	t.Run("duplicate weekdays do not duplicate habits", func(t *testing.T) {
		dup, err := s.CreateHabit(ctx, "Stretch", monday, []int{2, 2})
		require.NoError(t, err)

		habits, err := s.PossibleHabits(ctx, models.MustParseDate("2024-01-02"))
		require.NoError(t, err)
		require.Len(t, habits, 1)
		assert.Equal(t, dup.ID, habits[0].ID)
	})
}

func TestToggleCompletionIsXOR(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()

	habit, err := s.CreateHabit(ctx, "Run", monday, []int{1})
	require.NoError(t, err)

	ids, err := s.CompletedHabitIDs(ctx, monday)
	require.NoError(t, err)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)

	completed, err := s.ToggleCompletion(ctx, monday, habit.ID)
	require.NoError(t, err)
	assert.True(t, completed)

	ids, err = s.CompletedHabitIDs(ctx, monday)
	require.NoError(t, err)
	assert.Equal(t, []string{habit.ID}, ids)

	completed, err = s.ToggleCompletion(ctx, monday, habit.ID)
	require.NoError(t, err)
	assert.False(t, completed)

	ids, err = s.CompletedHabitIDs(ctx, monday)
	require.NoError(t, err)
	assert.Empty(t, ids)

	// The Day row outlives its last completion.
	var days int
	require.NoError(t, s.db.Get(&days, `SELECT COUNT(*) FROM days`))
	assert.Equal(t, 1, days)
}

func TestToggleCompletionConcurrentFirstToggles(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()

	const n = 8
	habitIDs := make([]string, n)
	for i := range habitIDs {
		h, err := s.CreateHabit(ctx, "Habit", monday, []int{1})
		require.NoError(t, err)
		habitIDs[i] = h.ID
	}

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for _, id := range habitIDs {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if _, err := s.ToggleCompletion(ctx, monday, id); err != nil {
				errs <- err
			}
		}(id)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("toggle failed: %v", err)
	}

	var days int
	require.NoError(t, s.db.Get(&days, `SELECT COUNT(*) FROM days`))
	assert.Equal(t, 1, days)

	ids, err := s.CompletedHabitIDs(ctx, monday)
	require.NoError(t, err)
	assert.Len(t, ids, n)
}

func TestHabitExists(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()

	habit, err := s.CreateHabit(ctx, "Run", monday, []int{1})
	require.NoError(t, err)

	ok, err := s.HabitExists(ctx, habit.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.HabitExists(ctx, "0f8fad5b-d9cb-469f-a165-70867728950e")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSummary(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()

	run, err := s.CreateHabit(ctx, "Run", monday, []int{1, 3})
	require.NoError(t, err)
	read, err := s.CreateHabit(ctx, "Read", monday, []int{1})
	require.NoError(t, err)
	_, err = s.CreateHabit(ctx, "Late", wednesday, []int{1})
	require.NoError(t, err)

	nextMonday := models.MustParseDate("2024-01-08")

	// Toggle out of date order; summary must still be sorted.
	_, err = s.ToggleCompletion(ctx, nextMonday, read.ID)
	require.NoError(t, err)
	_, err = s.ToggleCompletion(ctx, wednesday, run.ID)
	require.NoError(t, err)
	_, err = s.ToggleCompletion(ctx, monday, run.ID)
	require.NoError(t, err)
	_, err = s.ToggleCompletion(ctx, monday, read.ID)
	require.NoError(t, err)

	summary, err := s.Summary(ctx)
	require.NoError(t, err)
	require.Len(t, summary, 3)

	assert.Equal(t, monday.String(), summary[0].Date.String())
	assert.Equal(t, 2.0, summary[0].Completed)
	assert.Equal(t, 2.0, summary[0].Amount) // Late did not exist yet

	assert.Equal(t, wednesday.String(), summary[1].Date.String())
	assert.Equal(t, 1.0, summary[1].Completed)
	assert.Equal(t, 1.0, summary[1].Amount)

	assert.Equal(t, nextMonday.String(), summary[2].Date.String())
	assert.Equal(t, 1.0, summary[2].Completed)
	assert.Equal(t, 3.0, summary[2].Amount)
}

func TestSummaryEmpty(t *testing.T) {
	s := newSQLiteStore(t)

	summary, err := s.Summary(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, summary)
	assert.Empty(t, summary)
}

func TestAggregateSummaryCountsDanglingCompletions(t *testing.T) {
	days := []models.Day{{ID: "d1", Date: monday}}
	counts := []completionCount{{DayID: "d1", Count: 2}}

	summary := aggregateSummary(days, nil, counts)
	require.Len(t, summary, 1)
	assert.Equal(t, 2.0, summary[0].Completed)
	assert.Equal(t, 0.0, summary[0].Amount)
}

func TestToggleCompletionSQLSequence(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	s := New(conn, "sqlmock")
	habitID := "0f8fad5b-d9cb-469f-a165-70867728950e"

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO days (id, date)")).
		WithArgs(sqlmock.AnyArg(), "2024-01-01").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM days WHERE date = ?")).
		WithArgs("2024-01-01").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("day-1"))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM day_habits WHERE day_id = ? AND habit_id = ?")).
		WithArgs("day-1", habitID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	completed, err := s.ToggleCompletion(context.Background(), monday, habitID)
	require.NoError(t, err)
	assert.False(t, completed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleCompletionRollsBackOnError(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	s := New(conn, "sqlmock")
	boom := errors.New("connection reset")

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO days (id, date)")).WillReturnError(boom)
	mock.ExpectRollback()

	_, err = s.ToggleCompletion(context.Background(), monday, "0f8fad5b-d9cb-469f-a165-70867728950e")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHealth(t *testing.T) {
	s := newSQLiteStore(t)

	stats := s.Health(context.Background())
	assert.Equal(t, "up", stats["status"])
	assert.Contains(t, stats, "open_connections")
}
