// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/habitday/middleware"
)

type SummaryHandler struct {
	store HabitStore
}

func NewSummaryHandler(store HabitStore) *SummaryHandler {
	return &SummaryHandler{store: store}
}

// GetSummary handles GET /summary
// One row per recorded day, oldest first
func (h *SummaryHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.store.Summary(r.Context())
	if err != nil {
		slog.Error("failed to compute summary", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, nonNil(summary))
}
