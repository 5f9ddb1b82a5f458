// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite (default) or postgres
  - DatabaseURL: connection string (default for sqlite: habitday.db)
  - Timezone / Location: where "today" and start-of-day are computed (default: Local)
  - LogLevel, LogFormat, LogFile: logging setup

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-tz           Timezone
	-log-level    debug, info, warn, error
	-log-format   text, json, logfmt
	-log-file     Rotating log file path

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	TIMEZONE      → -tz
	LOG_LEVEL     → -log-level
	LOG_FORMAT    → -log-format
	LOG_FILE      → -log-file

CLI flags take precedence over environment variables. main loads a .env
file into the environment before parsing.

# Validation

ParseFlags returns an error for unusable values: a non-numeric or
out-of-range port, an unknown database type, postgres without a URL,
an unknown timezone, or an unknown log level or format.
*/
package cliparse
