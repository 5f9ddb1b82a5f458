// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Request types

type CreateHabitRequest struct {
	Title    string `json:"title" validate:"required"`
	WeekDays []int  `json:"weekDays" validate:"required,dive,min=0,max=6"`
}

type GetDayRequest struct {
	Date string `json:"date" validate:"required"`
}

type ToggleCompletionRequest struct {
	ID string `json:"id" validate:"required,uuid"`
}

// Response types

type DayResponse struct {
	PossibleHabits  []Habit  `json:"possibleHabits"`
	CompletedHabits []string `json:"completedHabits"`
}

// Domain types

type Habit struct {
	ID        string `json:"id" db:"id"`
	Title     string `json:"title" db:"title"`
	CreatedAt Date   `json:"created_at" db:"created_at"`
}

// HabitWeekDay is one recurrence entry of a habit.
type HabitWeekDay struct {
	ID      string `json:"id" db:"id"`
	HabitID string `json:"habit_id" db:"habit_id"`
	WeekDay int    `json:"week_day" db:"week_day"`
}

type Day struct {
	ID   string `json:"id" db:"id"`
	Date Date   `json:"date" db:"date"`
}

type DayHabit struct {
	ID      string `json:"id" db:"id"`
	DayID   string `json:"day_id" db:"day_id"`
	HabitID string `json:"habit_id" db:"habit_id"`
}

// SummaryDay is one row of GET /summary.
// Counts are floats so clients can divide without integer truncation.
type SummaryDay struct {
	ID        string  `json:"id"`
	Date      Date    `json:"date"`
	Completed float64 `json:"completed"`
	Amount    float64 `json:"amount"`
}

// Error response

type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string       `json:"error"`
	Message string       `json:"message,omitempty"`
	Details []FieldError `json:"details,omitempty"`
}
