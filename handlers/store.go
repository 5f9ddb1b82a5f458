// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"time"

	"github.com/danielhkuo/habitday/cliparse"
	"github.com/danielhkuo/habitday/models"
	"github.com/danielhkuo/habitday/store"
)

// HabitStore is the persistence the handlers need.
type HabitStore interface {
	CreateHabit(ctx context.Context, title string, createdAt models.Date, weekDays []int) (models.Habit, error)
	HabitExists(ctx context.Context, id string) (bool, error)
	PossibleHabits(ctx context.Context, date models.Date) ([]models.Habit, error)
	CompletedHabitIDs(ctx context.Context, date models.Date) ([]string, error)
	ToggleCompletion(ctx context.Context, date models.Date, habitID string) (bool, error)
	Summary(ctx context.Context) ([]models.SummaryDay, error)
}

var _ HabitStore = (*store.Store)(nil)

// clock returns the current time; tests replace it.
type clock func() time.Time

func location(cfg cliparse.Config) *time.Location {
	if cfg.Location != nil {
		return cfg.Location
	}
	return time.Local
}
