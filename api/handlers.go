/*
handlers.go - HTTP API handlers for the fitness tracker

PURPOSE:
  Exposes the tracker core via REST API. Handles HTTP request and
  response, JSON serialization, and delegates everything else to the
  store.

ENDPOINTS:
  Goals:
    GET    /api/goals                  List goals, newest first
    POST   /api/goals                  Create goal
    DELETE /api/goals/{id}             Delete goal (idempotent)

  Workouts:
    GET    /api/workouts               List workouts, newest first
    POST   /api/workouts               Create workout
    DELETE /api/workouts/{id}          Delete workout (idempotent)

  Meals:
    GET    /api/meals/daily/{date}     Meals for a date plus totals
    POST   /api/meals                  Create meal
    DELETE /api/meals/{id}             Delete meal (idempotent)

  Calorie goals:
    GET    /api/calorie-goals/{date}   Target for a date, or null
    POST   /api/calorie-goals          Upsert target for a date

  Stats:
    GET    /api/stats                  Lifetime aggregates

ERROR HANDLING:
  - 400: missing required field (detected before any statement)
  - 500: persistence failure; the body carries a generic message and
    the underlying error is logged server-side, never sent to clients
  - DELETE never reports not-found; removal of an absent id is success

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
  - tracker/store.go: Storage contract
*/
package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fittrack/fitness-track/tracker"
)

// Handler holds the dependencies for all HTTP handlers.
type Handler struct {
	Store tracker.Store
}

// NewHandler creates a handler backed by the given store.
func NewHandler(store tracker.Store) *Handler {
	return &Handler{Store: store}
}

// =============================================================================
// GOAL HANDLERS
// =============================================================================

// ListGoals returns all goals, newest first.
// GET /api/goals
func (h *Handler) ListGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := h.Store.ListGoals(r.Context())
	if err != nil {
		writeStoreError(w, "Failed to load goals", err)
		return
	}

	dtos := make([]GoalDTO, len(goals))
	for i, g := range goals {
		dtos[i] = toGoalDTO(g)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateGoal creates a new goal.
// POST /api/goals
func (h *Handler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	var req CreateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.Store.AddGoal(r.Context(), tracker.NewGoal{
		GoalType:    req.GoalType,
		TargetValue: req.TargetValue,
		Unit:        req.Unit,
		Deadline:    req.Deadline,
		Status:      req.Status,
	})
	if err != nil {
		if tracker.IsClientError(err) {
			writeError(w, http.StatusBadRequest, "Invalid or missing data in request")
			return
		}
		writeStoreError(w, "Database error", err)
		return
	}

	writeJSON(w, http.StatusCreated, CreatedResponse{ID: id, Message: "Goal added successfully"})
}

// DeleteGoal removes a goal by id. Succeeds even if the id is absent.
// DELETE /api/goals/{id}
func (h *Handler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.Store.DeleteGoal(r.Context(), id); err != nil {
		writeStoreError(w, "Failed to delete goal", err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Goal deleted successfully"})
}

// =============================================================================
// WORKOUT HANDLERS
// =============================================================================

// ListWorkouts returns all workouts, newest first.
// GET /api/workouts
func (h *Handler) ListWorkouts(w http.ResponseWriter, r *http.Request) {
	workouts, err := h.Store.ListWorkouts(r.Context())
	if err != nil {
		writeStoreError(w, "Failed to load workouts", err)
		return
	}

	dtos := make([]WorkoutDTO, len(workouts))
	for i, wo := range workouts {
		dtos[i] = toWorkoutDTO(wo)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateWorkout creates a new workout entry.
// POST /api/workouts
func (h *Handler) CreateWorkout(w http.ResponseWriter, r *http.Request) {
	var req CreateWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.Store.AddWorkout(r.Context(), tracker.NewWorkout{
		Date:      req.Date,
		Type:      req.Type,
		Duration:  req.Duration,
		Calories:  req.Calories,
		Intensity: req.Intensity,
		Distance:  req.Distance,
		Notes:     req.Notes,
	})
	if err != nil {
		if tracker.IsClientError(err) {
			writeError(w, http.StatusBadRequest, "Missing required fields")
			return
		}
		writeStoreError(w, "Database error", err)
		return
	}

	writeJSON(w, http.StatusCreated, CreatedResponse{ID: id, Message: "Workout added successfully"})
}

// DeleteWorkout removes a workout by id. Idempotent.
// DELETE /api/workouts/{id}
func (h *Handler) DeleteWorkout(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.Store.DeleteWorkout(r.Context(), id); err != nil {
		writeStoreError(w, "Failed to delete workout", err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Workout deleted successfully"})
}

// =============================================================================
// MEAL HANDLERS
// =============================================================================

// DailyMeals returns the meals for one calendar date together with
// their nutrition totals. The totals are summed over the exact slice
// returned by the read, so list and totals describe one snapshot.
// GET /api/meals/daily/{date}
func (h *Handler) DailyMeals(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	meals, err := h.Store.MealsForDate(r.Context(), date)
	if err != nil {
		writeStoreError(w, "Failed to load meals", err)
		return
	}

	totals := tracker.SumMeals(meals)
	dtos := make([]MealDTO, len(meals))
	for i, m := range meals {
		dtos[i] = toMealDTO(m)
	}

	writeJSON(w, http.StatusOK, DailyMealsResponse{
		Meals: dtos,
		Totals: TotalsDTO{
			Calories: totals.Calories,
			Protein:  totals.Protein,
			Carbs:    totals.Carbs,
			Fats:     totals.Fats,
		},
	})
}

// CreateMeal creates a new meal entry.
// POST /api/meals
func (h *Handler) CreateMeal(w http.ResponseWriter, r *http.Request) {
	var req CreateMealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.Store.AddMeal(r.Context(), tracker.NewMeal{
		Date:        req.Date,
		MealType:    req.MealType,
		FoodName:    req.FoodName,
		Calories:    req.Calories,
		Protein:     req.Protein,
		Carbs:       req.Carbs,
		Fats:        req.Fats,
		PortionSize: req.PortionSize,
		Notes:       req.Notes,
	})
	if err != nil {
		if tracker.IsClientError(err) {
			writeError(w, http.StatusBadRequest, "Invalid or missing data in request")
			return
		}
		writeStoreError(w, "Database error", err)
		return
	}

	writeJSON(w, http.StatusCreated, CreatedResponse{ID: id, Message: "Meal added successfully"})
}

// DeleteMeal removes a meal by id. Idempotent.
// DELETE /api/meals/{id}
func (h *Handler) DeleteMeal(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.Store.DeleteMeal(r.Context(), id); err != nil {
		writeStoreError(w, "Failed to delete meal", err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Meal deleted successfully"})
}

// =============================================================================
// CALORIE GOAL HANDLERS
// =============================================================================

// GetCalorieGoal returns the calorie target for a date, or JSON null
// when that date was never set.
// GET /api/calorie-goals/{date}
func (h *Handler) GetCalorieGoal(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	cg, err := h.Store.CalorieGoal(r.Context(), date)
	if err != nil {
		writeStoreError(w, "Failed to load calorie goal", err)
		return
	}
	if cg == nil {
		writeJSON(w, http.StatusOK, nil)
		return
	}

	writeJSON(w, http.StatusOK, CalorieGoalDTO{
		Date:      cg.Date,
		DailyGoal: cg.DailyGoal,
		Achieved:  cg.Achieved,
	})
}

// SetCalorieGoal inserts or overwrites the target for a date.
// POST /api/calorie-goals
func (h *Handler) SetCalorieGoal(w http.ResponseWriter, r *http.Request) {
	var req SetCalorieGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.Store.SetCalorieGoal(r.Context(), tracker.NewCalorieGoal{
		Date:      req.Date,
		DailyGoal: req.DailyGoal,
		Achieved:  req.Achieved,
	})
	if err != nil {
		if tracker.IsClientError(err) {
			writeError(w, http.StatusBadRequest, "Invalid or missing data in request")
			return
		}
		writeStoreError(w, "Database error", err)
		return
	}

	writeJSON(w, http.StatusCreated, MessageResponse{Message: "Calorie goal set successfully"})
}

// =============================================================================
// STATS HANDLER
// =============================================================================

// GetStats returns lifetime aggregates. Partial stats are never
// returned: any underlying failure yields a 500.
// GET /api/stats
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	st, err := h.Store.Stats(r.Context())
	if err != nil {
		writeStoreError(w, "Failed to load stats", err)
		return
	}

	writeJSON(w, http.StatusOK, StatsDTO{
		TotalWorkouts:         st.TotalWorkouts,
		TotalCaloriesBurned:   st.CaloriesBurned,
		TotalDuration:         st.TotalDuration,
		TotalCaloriesConsumed: st.CaloriesConsumed,
		NetCalories:           st.NetCalories,
	})
}

// Health is a liveness probe.
// GET /api/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// HELPERS
// =============================================================================

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeStoreError logs the underlying failure for operators and sends
// the client a generic message. Driver detail never goes on the wire.
func writeStoreError(w http.ResponseWriter, message string, err error) {
	log.Printf("store error: %v", err)
	writeError(w, http.StatusInternalServerError, message)
}
