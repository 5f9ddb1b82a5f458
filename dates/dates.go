// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dates

import (
	"errors"
	"strings"
	"time"

	"github.com/danielhkuo/habitday/models"
)

var ErrInvalidDate = errors.New("value cannot be coerced to a date")

// Layouts accepted with an explicit offset, tried in order.
var zonedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
}

// Layouts without offset are read in the configured location.
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// StartOfDay truncates t to midnight of its calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// DateOf returns the calendar date of t in loc.
func DateOf(t time.Time, loc *time.Location) models.Date {
	return models.NewDate(StartOfDay(t, loc))
}

// Parse coerces s into a calendar date.
// A bare YYYY-MM-DD names that date directly; timestamps with an offset are
// converted into loc first; timestamps without one are read in loc.
func Parse(s string, loc *time.Location) (models.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return models.Date{}, ErrInvalidDate
	}

	if d, err := models.ParseDate(s); err == nil {
		return d, nil
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t, loc), nil
		}
	}

	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return models.NewDate(t), nil
		}
	}

	return models.Date{}, ErrInvalidDate
}
