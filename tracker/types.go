/*
types.go - Core entity records and input types

PURPOSE:
  Defines the persisted entities (Goal, Workout, Meal, CalorieGoal) and
  the input types used to create them. Inputs carry their own Validate
  method so every store implementation enforces the same presence rules
  before touching the database.

CONVENTIONS:
  - Calendar dates travel as "YYYY-MM-DD" strings, matching the wire
    format and the TEXT columns they are stored in.
  - Optional fields are pointers so absent and zero stay distinct in
    JSON round-trips.
  - Required numeric inputs are pointers too: presence is part of the
    contract, and 0 is a legal value.

SEE ALSO:
  - errors.go: ValidationError returned by Validate
  - store.go: Store interface consuming these types
*/
package tracker

import "time"

// Goal is a stored fitness goal.
type Goal struct {
	ID          int64
	GoalType    string
	TargetValue float64
	Unit        *string
	Deadline    *string
	Status      string
	CreatedAt   time.Time
}

// NewGoal is the input for creating a goal.
type NewGoal struct {
	GoalType    string
	TargetValue *float64
	Unit        *string
	Deadline    *string
	Status      string
}

// Validate checks required fields. Values are not range-checked:
// any string goal type and any target number are accepted.
func (g NewGoal) Validate() error {
	if g.GoalType == "" {
		return &ValidationError{Field: "goal_type"}
	}
	if g.TargetValue == nil {
		return &ValidationError{Field: "target_value"}
	}
	return nil
}

// Workout is a stored workout entry.
type Workout struct {
	ID        int64
	Date      string
	Type      string
	Duration  float64
	Calories  float64
	Intensity *string
	Distance  *float64
	Notes     *string
	CreatedAt time.Time
}

// NewWorkout is the input for creating a workout.
type NewWorkout struct {
	Date      string
	Type      string
	Duration  *float64
	Calories  *float64
	Intensity *string
	Distance  *float64
	Notes     *string
}

// Validate checks that date, type, duration and calories are present.
// Negative durations or calories pass: the store records what the
// client sends.
func (w NewWorkout) Validate() error {
	if w.Date == "" {
		return &ValidationError{Field: "date"}
	}
	if w.Type == "" {
		return &ValidationError{Field: "type"}
	}
	if w.Duration == nil {
		return &ValidationError{Field: "duration"}
	}
	if w.Calories == nil {
		return &ValidationError{Field: "calories"}
	}
	return nil
}

// Meal is a stored meal entry.
type Meal struct {
	ID          int64
	Date        string
	MealType    string
	FoodName    string
	Calories    float64
	Protein     float64
	Carbs       float64
	Fats        float64
	PortionSize *string
	Notes       *string
	CreatedAt   time.Time
}

// NewMeal is the input for creating a meal. Macro fields left nil
// default to 0.
type NewMeal struct {
	Date        string
	MealType    string
	FoodName    string
	Calories    *float64
	Protein     *float64
	Carbs       *float64
	Fats        *float64
	PortionSize *string
	Notes       *string
}

// Validate checks that date, meal_type, food_name and calories are present.
func (m NewMeal) Validate() error {
	if m.Date == "" {
		return &ValidationError{Field: "date"}
	}
	if m.MealType == "" {
		return &ValidationError{Field: "meal_type"}
	}
	if m.FoodName == "" {
		return &ValidationError{Field: "food_name"}
	}
	if m.Calories == nil {
		return &ValidationError{Field: "calories"}
	}
	return nil
}

// CalorieGoal is the per-date calorie target. Date is the unique key;
// setting the same date twice overwrites in place.
type CalorieGoal struct {
	Date      string
	DailyGoal float64
	Achieved  int64
}

// NewCalorieGoal is the input for the upsert. Achieved left nil
// defaults to 0.
type NewCalorieGoal struct {
	Date      string
	DailyGoal *float64
	Achieved  *int64
}

// Validate checks that date and daily_goal are present.
func (c NewCalorieGoal) Validate() error {
	if c.Date == "" {
		return &ValidationError{Field: "date"}
	}
	if c.DailyGoal == nil {
		return &ValidationError{Field: "daily_goal"}
	}
	return nil
}
