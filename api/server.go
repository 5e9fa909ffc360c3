/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the chi router, middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Open to any origin on /api, matching the frontend's
                 expectations

ROUTE GROUPS:
  /api/goals/*          Fitness goals
  /api/workouts/*       Workout entries
  /api/meals/*          Meals and daily totals
  /api/calorie-goals/*  Per-date calorie targets
  /api/stats            Lifetime aggregates
  /*                    Static files (frontend)

STATIC FILE SERVING:
  Serves the built frontend from web/dist when present, falling back
  to index.html for client-side routing.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)

		r.Route("/goals", func(r chi.Router) {
			r.Get("/", h.ListGoals)
			r.Post("/", h.CreateGoal)
			r.Delete("/{id}", h.DeleteGoal)
		})

		r.Route("/workouts", func(r chi.Router) {
			r.Get("/", h.ListWorkouts)
			r.Post("/", h.CreateWorkout)
			r.Delete("/{id}", h.DeleteWorkout)
		})

		r.Route("/meals", func(r chi.Router) {
			r.Get("/daily/{date}", h.DailyMeals)
			r.Post("/", h.CreateMeal)
			r.Delete("/{id}", h.DeleteMeal)
		})

		r.Route("/calorie-goals", func(r chi.Router) {
			r.Get("/{date}", h.GetCalorieGoal)
			r.Post("/", h.SetCalorieGoal)
		})

		r.Get("/stats", h.GetStats)
	})

	// Serve static files (frontend build)
	staticDir := "./web/dist"
	if _, err := os.Stat(staticDir); os.IsNotExist(err) {
		exe, _ := os.Executable()
		staticDir = filepath.Join(filepath.Dir(exe), "web", "dist")
	}

	if _, err := os.Stat(staticDir); err == nil {
		fileServer := http.FileServer(http.Dir(staticDir))
		r.Get("/*", func(w http.ResponseWriter, req *http.Request) {
			fullPath := filepath.Join(staticDir, req.URL.Path)
			if _, err := os.Stat(fullPath); os.IsNotExist(err) {
				// SPA routing: serve index.html
				http.ServeFile(w, req, filepath.Join(staticDir, "index.html"))
				return
			}
			fileServer.ServeHTTP(w, req)
		})
	} else {
		r.Get("/*", func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Fitness Tracker</title></head>
<body style="font-family: system-ui; max-width: 800px; margin: 50px auto; padding: 20px;">
<h1>Fitness Tracker API</h1>
<p>The frontend is not built. The API is available under <code>/api</code>.</p>
<h2>API Endpoints</h2>
<ul>
<li><a href="/api/goals">/api/goals</a> - Fitness goals</li>
<li><a href="/api/workouts">/api/workouts</a> - Workouts</li>
<li><a href="/api/stats">/api/stats</a> - Lifetime stats</li>
</ul>
</body>
</html>`))
		})
	}

	return r
}
