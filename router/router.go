// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/habitday/cliparse"
	"github.com/danielhkuo/habitday/handlers"
	"github.com/danielhkuo/habitday/middleware"
	"github.com/danielhkuo/habitday/store"
)

func NewRouter(st *store.Store, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(reg)

	// route registers pattern with logging and metrics labelled by the pattern
	route := func(pattern string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, middleware.WithLogging(metrics.WithMetrics(pattern, h)))
	}

	// Initialize handlers
	habitHandler := handlers.NewHabitHandler(st, cfg)
	dayHandler := handlers.NewDayHandler(st, cfg)
	summaryHandler := handlers.NewSummaryHandler(st)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		stats := st.Health(r.Context())
		status := http.StatusOK
		if stats["status"] != "up" {
			status = http.StatusServiceUnavailable
		}
		middleware.JSONResponse(w, status, stats)
	})

	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	// Habits
	route("POST /habits", habitHandler.CreateHabit)

	// Days and completions
	route("GET /get_day", dayHandler.GetDay)
	route("PATCH /completed/{id}/toggle", dayHandler.ToggleCompletion)

	// Summary
	route("GET /summary", summaryHandler.GetSummary)

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("habitday API v1"))
	})

	return middleware.CORS(mux)
}
