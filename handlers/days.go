// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/habitday/cliparse"
	"github.com/danielhkuo/habitday/dates"
	"github.com/danielhkuo/habitday/middleware"
	"github.com/danielhkuo/habitday/models"
	"github.com/danielhkuo/habitday/validation"
)

type DayHandler struct {
	store HabitStore
	cfg   cliparse.Config
	now   clock
}

func NewDayHandler(store HabitStore, cfg cliparse.Config) *DayHandler {
	return &DayHandler{store: store, cfg: cfg, now: time.Now}
}

// GetDay handles GET /get_day?date=
// Returns the habits due on the date and the ids of those completed
func (h *DayHandler) GetDay(w http.ResponseWriter, r *http.Request) {
	req := models.GetDayRequest{Date: r.URL.Query().Get("date")}
	if !writeValidationError(w, validation.Struct(req)) {
		return
	}

	date, err := dates.Parse(req.Date, location(h.cfg))
	if err != nil {
		writeValidationError(w, validation.NewError("date", "date", "must be a date (YYYY-MM-DD or RFC 3339)"))
		return
	}

	possible, err := h.store.PossibleHabits(r.Context(), date)
	if err != nil {
		slog.Error("failed to query possible habits", "date", date.String(), "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	completed, err := h.store.CompletedHabitIDs(r.Context(), date)
	if err != nil {
		slog.Error("failed to query completed habits", "date", date.String(), "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.DayResponse{
		PossibleHabits:  nonNil(possible),
		CompletedHabits: nonNil(completed),
	})
}

// ToggleCompletion handles PATCH /completed/{id}/toggle
// Flips whether the habit is completed today
func (h *DayHandler) ToggleCompletion(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if parsed, err := uuid.Parse(id); err == nil {
		// Stored ids are canonical lowercase
		id = parsed.String()
	}

	req := models.ToggleCompletionRequest{ID: id}
	if !writeValidationError(w, validation.Struct(req)) {
		return
	}

	exists, err := h.store.HabitExists(r.Context(), req.ID)
	if err != nil {
		slog.Error("failed to look up habit", "habit_id", req.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !exists {
		middleware.ErrorResponse(w, http.StatusNotFound, "Habit not found")
		return
	}

	today := dates.DateOf(h.now(), location(h.cfg))

	completed, err := h.store.ToggleCompletion(r.Context(), today, req.ID)
	if err != nil {
		slog.Error("failed to toggle completion", "habit_id", req.ID, "date", today.String(), "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to toggle completion")
		return
	}

	slog.Info("completion toggled", "habit_id", req.ID, "date", today.String(), "completed", completed)

	middleware.EmptyResponse(w, http.StatusOK)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
