// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing and validating incoming requests:

  - CreateHabitRequest: title, weekDays (body of POST /habits)
  - GetDayRequest: date (query of GET /get_day)
  - ToggleCompletionRequest: id (path of PATCH /completed/{id}/toggle)

Validation rules live in `validate` struct tags and are checked by the
validation package.

# Domain Types

Core entities stored in the database:

  - Habit: a recurring task with title and creation date
  - HabitWeekDay: one weekday (0=Sunday..6=Saturday) a habit recurs on
  - Day: a calendar date with at least one completion activity
  - DayHabit: a habit completed on a day

# Dates

Date is a calendar date with no time of day. It serializes as
"YYYY-MM-DD" in JSON and in the database, and scans from both
PostgreSQL DATE columns and SQLite text columns.

# Response Types

  - DayResponse: possibleHabits and completedHabits for one date
  - SummaryDay: completed and amount per Day, as floats
  - ErrorResponse: error, message and optional field details
*/
package models
