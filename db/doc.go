// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Opening a Database

Open picks the driver for the configured type, pings the server and
creates the schema:

	conn, err := db.Open(ctx, "sqlite", "habitday.db")
	conn, err := db.Open(ctx, "postgres", "postgres://...")

SQLite uses the pure Go modernc.org/sqlite driver and is limited to a
single open connection. PostgreSQL uses lib/pq.

# Schema Creation

CreateSchema initializes all required tables for one dialect:

	if err := db.CreateSchema(conn, "postgres"); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - habits: id, title, created_at (date)
  - habits_week_days: one row per weekday (0-6) a habit recurs on
  - days: one row per date with completion activity (date unique)
  - day_habits: completion records, unique per (day_id, habit_id)

# Relationships

	habits 1──* habits_week_days
	habits 1──* day_habits
	days   1──* day_habits

All foreign keys use ON DELETE CASCADE.

# Dates

PostgreSQL stores dates as DATE. SQLite stores them as YYYY-MM-DD text.
Both compare correctly with <= and order by date.
*/
package db
