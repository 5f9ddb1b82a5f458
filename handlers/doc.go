// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the habitday API.

# Handler Types

Each handler is a struct with store and config dependencies:

  - HabitHandler: Habit creation
  - DayHandler: Day view and completion toggling
  - SummaryHandler: Per-day completion summary

Handlers are created via constructor functions that accept a HabitStore
and Config:

	habitHandler := handlers.NewHabitHandler(st, cfg)

# Days

"Today" and the start of a day are computed in the configured timezone
(cfg.Location). A habit created at any moment of a day is stored with
that day as its creation date, so it is due on the same day.

	POST  /habits                → CreateHabit
	GET   /get_day?date=...      → GetDay
	PATCH /completed/{id}/toggle → ToggleCompletion

GET /get_day accepts a bare date (2024-01-01) or an RFC 3339 timestamp.
A day with no recorded completions yields an empty completedHabits list.

# Errors

Malformed input gets a 400 with one detail per rejected field:

	{"error": "Bad Request", "message": "Validation failed",
	 "details": [{"field": "weekDays[1]", "rule": "max", "message": "..."}]}

Toggling an unknown habit gets a 404. Store failures are logged and
answered with a 500.
*/
package handlers
