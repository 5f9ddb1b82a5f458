// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewDateKeepsLocalCalendarDay(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	ts := time.Date(2024, 3, 4, 23, 30, 0, 0, loc)

	d := NewDate(ts)
	if d.String() != "2024-03-04" {
		t.Errorf("Expected 2024-03-04, got %s", d.String())
	}
	if d.Weekday() != 1 {
		t.Errorf("Expected Monday (1), got %d", d.Weekday())
	}
}

func TestDateScan(t *testing.T) {
	testCases := []struct {
		name     string
		src      any
		expected string
		wantErr  bool
	}{
		{"time value", time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC), "2024-01-07", false},
		{"text", "2024-01-07", "2024-01-07", false},
		{"bytes", []byte("2024-01-07"), "2024-01-07", false},
		{"timestamp text", "2024-01-07T00:00:00Z", "2024-01-07", false},
		{"sqlite datetime text", "2024-01-07 00:00:00", "2024-01-07", false},
		{"garbage", "yesterday", "", true},
		{"unsupported type", 42, "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var d Date
			err := d.Scan(tc.src)
			if tc.wantErr {
				if err == nil {
					t.Errorf("Expected error scanning %v", tc.src)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if d.String() != tc.expected {
				t.Errorf("Expected %s, got %s", tc.expected, d.String())
			}
		})
	}
}

func TestDateValue(t *testing.T) {
	v, err := MustParseDate("2024-12-31").Value()
	if err != nil {
		t.Fatal(err)
	}
	if v != "2024-12-31" {
		t.Errorf("Expected driver value 2024-12-31, got %v", v)
	}
}

func TestDateJSON(t *testing.T) {
	habit := Habit{ID: "h1", Title: "Run", CreatedAt: MustParseDate("2024-05-06")}

	b, err := json.Marshal(habit)
	if err != nil {
		t.Fatal(err)
	}
	expected := `{"id":"h1","title":"Run","created_at":"2024-05-06"}`
	if string(b) != expected {
		t.Errorf("Expected %s, got %s", expected, string(b))
	}

	var back Habit
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if !back.CreatedAt.Equal(habit.CreatedAt) {
		t.Errorf("Expected %s after decode, got %s", habit.CreatedAt, back.CreatedAt)
	}
}

func TestDateOrdering(t *testing.T) {
	d := MustParseDate("2024-02-28")
	next := MustParseDate("2024-02-29")

	if next.String() != "2024-02-29" {
		t.Errorf("Expected leap day to parse, got %s", next)
	}
	if !d.Before(next) || next.Before(d) {
		t.Error("Expected 2024-02-28 to be before 2024-02-29")
	}
}
