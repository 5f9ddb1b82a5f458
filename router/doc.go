// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the habitday API.

# Route Registration

NewRouter returns the mux wrapped in CORS handling:

	h := router.NewRouter(st, cfg)

# Endpoints

Operational:

	GET /        - Banner
	GET /health  - Database ping and pool statistics (503 when down)
	GET /metrics - Prometheus metrics

Habits:

	POST  /habits                 - Create a habit and its weekdays
	GET   /get_day?date=          - Habits due on a date and those completed
	PATCH /completed/{id}/toggle  - Flip today's completion of a habit
	GET   /summary                - Completed and due counts per recorded day

API routes are wrapped with request logging and Prometheus metrics
labelled by route pattern. Each router owns its own registry, so
several routers can live in one process (as tests do).
*/
package router
