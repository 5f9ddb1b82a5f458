// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/habitday/cliparse"
	"github.com/danielhkuo/habitday/db"
	"github.com/danielhkuo/habitday/models"
	"github.com/danielhkuo/habitday/store"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(context.Background(), cliparse.DatabaseSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

// SetupTestStore returns a store over a fresh test database
func SetupTestStore(t *testing.T) (*store.Store, *sql.DB) {
	t.Helper()

	conn := SetupTestDB(t)
	return store.New(conn, cliparse.DatabaseSQLite), conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseType: cliparse.DatabaseSQLite,
		DatabaseURL:  ":memory:",
		Timezone:     "UTC",
		Location:     time.UTC,
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

// CreateTestHabit inserts a habit created on createdAt and returns its ID
func CreateTestHabit(t *testing.T, conn *sql.DB, title string, createdAt models.Date, weekDays ...int) string {
	t.Helper()

	habitID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO habits (id, title, created_at)
		VALUES (?, ?, ?)
	`, habitID, title, createdAt)
	if err != nil {
		t.Fatalf("Failed to create test habit: %v", err)
	}

	for _, wd := range weekDays {
		_, err := conn.Exec(`
			INSERT INTO habits_week_days (id, habit_id, week_day)
			VALUES (?, ?, ?)
		`, uuid.NewString(), habitID, wd)
		if err != nil {
			t.Fatalf("Failed to create test week day: %v", err)
		}
	}

	return habitID
}

// CompleteTestHabit records a completion of habitID on date, creating the day if needed
func CompleteTestHabit(t *testing.T, conn *sql.DB, habitID string, date models.Date) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO days (id, date) VALUES (?, ?)
		ON CONFLICT (date) DO NOTHING
	`, uuid.NewString(), date)
	if err != nil {
		t.Fatalf("Failed to create test day: %v", err)
	}

	_, err = conn.Exec(`
		INSERT INTO day_habits (id, day_id, habit_id)
		SELECT ?, id, ? FROM days WHERE date = ?
	`, uuid.NewString(), habitID, date)
	if err != nil {
		t.Fatalf("Failed to create test completion: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
