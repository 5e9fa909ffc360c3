/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types
  decouple the internal records from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - Create*, Set*: Request body types from clients

PRESENCE:
  Required numeric request fields are pointers: a missing field and an
  explicit 0 must stay distinguishable, because 0 is valid input and
  absence is a validation error. Optional fields are pointers for the
  same reason and serialize as null when unset.

SEE ALSO:
  - handlers.go: Uses these types
  - tracker/types.go: The records these map from
*/
package api

import (
	"time"

	"github.com/fittrack/fitness-track/tracker"
)

// =============================================================================
// GOALS
// =============================================================================

// GoalDTO represents a fitness goal in API responses.
type GoalDTO struct {
	ID          int64   `json:"id"`
	GoalType    string  `json:"goal_type"`
	TargetValue float64 `json:"target_value"`
	Unit        *string `json:"unit"`
	Deadline    *string `json:"deadline"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
}

// CreateGoalRequest is the request to create a goal.
type CreateGoalRequest struct {
	GoalType    string   `json:"goal_type"`
	TargetValue *float64 `json:"target_value"`
	Unit        *string  `json:"unit"`
	Deadline    *string  `json:"deadline"`
	Status      string   `json:"status"`
}

func toGoalDTO(g tracker.Goal) GoalDTO {
	return GoalDTO{
		ID:          g.ID,
		GoalType:    g.GoalType,
		TargetValue: g.TargetValue,
		Unit:        g.Unit,
		Deadline:    g.Deadline,
		Status:      g.Status,
		CreatedAt:   g.CreatedAt.Format(time.RFC3339),
	}
}

// =============================================================================
// WORKOUTS
// =============================================================================

// WorkoutDTO represents a workout entry in API responses.
type WorkoutDTO struct {
	ID        int64    `json:"id"`
	Date      string   `json:"date"`
	Type      string   `json:"type"`
	Duration  float64  `json:"duration"`
	Calories  float64  `json:"calories"`
	Intensity *string  `json:"intensity"`
	Distance  *float64 `json:"distance"`
	Notes     *string  `json:"notes"`
	CreatedAt string   `json:"created_at"`
}

// CreateWorkoutRequest is the request to create a workout.
type CreateWorkoutRequest struct {
	Date      string   `json:"date"`
	Type      string   `json:"type"`
	Duration  *float64 `json:"duration"`
	Calories  *float64 `json:"calories"`
	Intensity *string  `json:"intensity"`
	Distance  *float64 `json:"distance"`
	Notes     *string  `json:"notes"`
}

func toWorkoutDTO(w tracker.Workout) WorkoutDTO {
	return WorkoutDTO{
		ID:        w.ID,
		Date:      w.Date,
		Type:      w.Type,
		Duration:  w.Duration,
		Calories:  w.Calories,
		Intensity: w.Intensity,
		Distance:  w.Distance,
		Notes:     w.Notes,
		CreatedAt: w.CreatedAt.Format(time.RFC3339),
	}
}

// =============================================================================
// MEALS
// =============================================================================

// MealDTO represents a meal entry in API responses.
type MealDTO struct {
	ID          int64   `json:"id"`
	Date        string  `json:"date"`
	MealType    string  `json:"meal_type"`
	FoodName    string  `json:"food_name"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fats        float64 `json:"fats"`
	PortionSize *string `json:"portion_size"`
	Notes       *string `json:"notes"`
	CreatedAt   string  `json:"created_at"`
}

// CreateMealRequest is the request to create a meal.
type CreateMealRequest struct {
	Date        string   `json:"date"`
	MealType    string   `json:"meal_type"`
	FoodName    string   `json:"food_name"`
	Calories    *float64 `json:"calories"`
	Protein     *float64 `json:"protein"`
	Carbs       *float64 `json:"carbs"`
	Fats        *float64 `json:"fats"`
	PortionSize *string  `json:"portion_size"`
	Notes       *string  `json:"notes"`
}

func toMealDTO(m tracker.Meal) MealDTO {
	return MealDTO{
		ID:          m.ID,
		Date:        m.Date,
		MealType:    m.MealType,
		FoodName:    m.FoodName,
		Calories:    m.Calories,
		Protein:     m.Protein,
		Carbs:       m.Carbs,
		Fats:        m.Fats,
		PortionSize: m.PortionSize,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt.Format(time.RFC3339),
	}
}

// TotalsDTO is the nutrition sum for one date. Fields are 0, never
// null, when no meals contribute.
type TotalsDTO struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// DailyMealsResponse pairs a day's meals with their totals. Both come
// from the same read, so they always agree.
type DailyMealsResponse struct {
	Meals  []MealDTO `json:"meals"`
	Totals TotalsDTO `json:"totals"`
}

// =============================================================================
// CALORIE GOALS
// =============================================================================

// CalorieGoalDTO represents a per-date calorie target.
type CalorieGoalDTO struct {
	Date      string  `json:"date"`
	DailyGoal float64 `json:"daily_goal"`
	Achieved  int64   `json:"achieved"`
}

// SetCalorieGoalRequest is the upsert request for a date's target.
type SetCalorieGoalRequest struct {
	Date      string   `json:"date"`
	DailyGoal *float64 `json:"daily_goal"`
	Achieved  *int64   `json:"achieved"`
}

// =============================================================================
// STATS
// =============================================================================

// StatsDTO is the lifetime summary across workouts and meals.
type StatsDTO struct {
	TotalWorkouts         int64   `json:"total_workouts"`
	TotalCaloriesBurned   float64 `json:"total_calories_burned"`
	TotalDuration         float64 `json:"total_duration"`
	TotalCaloriesConsumed float64 `json:"total_calories_consumed"`
	NetCalories           float64 `json:"net_calories"`
}

// =============================================================================
// GENERIC RESPONSES
// =============================================================================

// CreatedResponse is returned on successful creation.
type CreatedResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// MessageResponse carries a confirmation message only.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the error body for 4xx/5xx responses.
type ErrorResponse struct {
	Error string `json:"error"`
}
