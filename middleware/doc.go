// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /summary", middleware.WithLogging(handler))

Logs request start at debug level (method, path, remote) and completion
(status, duration_ms) at info level.

# Metrics

Record request counts, latency and in-flight requests per route pattern:

	m := middleware.NewMetrics(registry)
	mux.HandleFunc(pattern, m.WithMetrics(pattern, handler))

# CORS Middleware

Cross-origin requests are allowed from any origin:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, PATCH, OPTIONS with header Content-Type.
Preflight requests are answered with 204 without reaching the mux.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusNotFound, "Habit not found")
	middleware.ValidationErrorResponse(w, fields)

Parse JSON request bodies (limited to 1 MiB, trailing data rejected):

	var req models.CreateHabitRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used in request logs.
*/
package middleware
