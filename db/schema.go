// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dbType string) error {
	schema, err := schemaFor(dbType)
	if err != nil {
		return err
	}

	_, err = db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func schemaFor(dbType string) (string, error) {
	switch dbType {
	case "postgres":
		return postgresSchema, nil
	case "sqlite":
		return sqliteSchema, nil
	default:
		return "", fmt.Errorf("no schema for database type %q", dbType)
	}
}

const postgresSchema = `
-- Habits
CREATE TABLE IF NOT EXISTS habits (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    created_at DATE NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_habits_created_at ON habits(created_at);

-- Recurrence entries
CREATE TABLE IF NOT EXISTS habits_week_days (
    id TEXT PRIMARY KEY,
    habit_id TEXT NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
    week_day INTEGER NOT NULL CHECK (week_day >= 0 AND week_day <= 6)
);

CREATE INDEX IF NOT EXISTS idx_habits_week_days_habit_id ON habits_week_days(habit_id);
CREATE INDEX IF NOT EXISTS idx_habits_week_days_week_day ON habits_week_days(week_day);

-- Days
CREATE TABLE IF NOT EXISTS days (
    id TEXT PRIMARY KEY,
    date DATE NOT NULL UNIQUE
);

-- Completions
CREATE TABLE IF NOT EXISTS day_habits (
    id TEXT PRIMARY KEY,
    day_id TEXT NOT NULL REFERENCES days(id) ON DELETE CASCADE,
    habit_id TEXT NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
    UNIQUE (day_id, habit_id)
);

CREATE INDEX IF NOT EXISTS idx_day_habits_habit_id ON day_habits(habit_id);
`

// SQLite keeps dates as YYYY-MM-DD text, which orders like the dates themselves.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS habits (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_habits_created_at ON habits(created_at);

CREATE TABLE IF NOT EXISTS habits_week_days (
    id TEXT PRIMARY KEY,
    habit_id TEXT NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
    week_day INTEGER NOT NULL CHECK (week_day >= 0 AND week_day <= 6)
);

CREATE INDEX IF NOT EXISTS idx_habits_week_days_habit_id ON habits_week_days(habit_id);
CREATE INDEX IF NOT EXISTS idx_habits_week_days_week_day ON habits_week_days(week_day);

CREATE TABLE IF NOT EXISTS days (
    id TEXT PRIMARY KEY,
    date TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS day_habits (
    id TEXT PRIMARY KEY,
    day_id TEXT NOT NULL REFERENCES days(id) ON DELETE CASCADE,
    habit_id TEXT NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
    UNIQUE (day_id, habit_id)
);

CREATE INDEX IF NOT EXISTS idx_day_habits_habit_id ON day_habits(habit_id);
`
