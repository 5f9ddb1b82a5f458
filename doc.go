// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the habitday API server.

habitday tracks recurring daily habits: each habit recurs on a set of
weekdays starting from the day it was created, and can be marked
completed (or un-marked) for the current day.

# Starting the Server

With no configuration the server uses a local SQLite file:

	go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." -tz Europe/Berlin

A .env file in the working directory is loaded before flags are parsed.

# Configuration

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Connection string or SQLite path (required for postgres)
  - TIMEZONE (-tz): IANA zone for day boundaries (default: Local)
  - LOG_LEVEL (-log-level): debug, info, warn, error (default: info)
  - LOG_FORMAT (-log-format): text, json, logfmt (default: text)
  - LOG_FILE (-log-file): Also write logs to a rotating file

# Architecture

  - handlers: HTTP request handlers (habits, days, summary)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, metrics, JSON helpers
  - store: Persistence on sqlx
  - models: Request/response and row types, the civil Date
  - dates: Day boundaries and date parsing
  - validation: Request validation
  - logging: slog over charmbracelet/log with file rotation
  - db: Connection setup and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
