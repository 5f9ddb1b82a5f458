// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/habitday/cliparse"
	"github.com/danielhkuo/habitday/dates"
	"github.com/danielhkuo/habitday/middleware"
	"github.com/danielhkuo/habitday/models"
	"github.com/danielhkuo/habitday/validation"
)

type HabitHandler struct {
	store HabitStore
	cfg   cliparse.Config
	now   clock
}

func NewHabitHandler(store HabitStore, cfg cliparse.Config) *HabitHandler {
	return &HabitHandler{store: store, cfg: cfg, now: time.Now}
}

// CreateHabit handles POST /habits
func (h *HabitHandler) CreateHabit(w http.ResponseWriter, r *http.Request) {
	var req models.CreateHabitRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			writeValidationError(w, validation.NewError(typeErr.Field, "type", "must be "+typeErr.Type.String()))
			return
		}
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if !writeValidationError(w, validation.Struct(req)) {
		return
	}

	today := dates.DateOf(h.now(), location(h.cfg))

	habit, err := h.store.CreateHabit(r.Context(), req.Title, today, req.WeekDays)
	if err != nil {
		slog.Error("failed to create habit", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create habit")
		return
	}

	slog.Info("habit created", "habit_id", habit.ID, "week_days", req.WeekDays, "created_at", habit.CreatedAt.String())

	middleware.EmptyResponse(w, http.StatusOK)
}

// writeValidationError answers a failed validation and reports whether the
// request may proceed.
func writeValidationError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return true
	}

	var verr *validation.Error
	if errors.As(err, &verr) {
		middleware.ValidationErrorResponse(w, verr.Fields)
		return false
	}

	slog.Error("validator failed", "error", err)
	middleware.ErrorResponse(w, http.StatusInternalServerError, "Validation error")
	return false
}
