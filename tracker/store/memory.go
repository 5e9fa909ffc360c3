// Package store provides tracker.Store implementations.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/fittrack/fitness-track/tracker"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

// Memory implements tracker.Store with in-process slices. It honors
// the same contract as the SQLite store: validated inputs, ordered
// listings, idempotent deletes, date-keyed upsert, all-or-nothing
// stats.
type Memory struct {
	mu           sync.RWMutex
	nextID       int64
	goals        []tracker.Goal
	workouts     []tracker.Workout
	meals        []tracker.Meal
	calorieGoals map[string]tracker.CalorieGoal
}

func NewMemory() *Memory {
	return &Memory{
		nextID:       1,
		calorieGoals: make(map[string]tracker.CalorieGoal),
	}
}

func (m *Memory) allocID() int64 {
	id := m.nextID
	m.nextID++
	return id
}

// ListGoals returns goals newest first.
func (m *Memory) ListGoals(_ context.Context) ([]tracker.Goal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]tracker.Goal, 0, len(m.goals))
	for i := len(m.goals) - 1; i >= 0; i-- {
		out = append(out, m.goals[i])
	}
	return out, nil
}

func (m *Memory) AddGoal(_ context.Context, g tracker.NewGoal) (int64, error) {
	if err := g.Validate(); err != nil {
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	status := g.Status
	if status == "" {
		status = "Pending"
	}
	goal := tracker.Goal{
		ID:          m.allocID(),
		GoalType:    g.GoalType,
		TargetValue: *g.TargetValue,
		Unit:        g.Unit,
		Deadline:    g.Deadline,
		Status:      status,
		CreatedAt:   time.Now().UTC(),
	}
	m.goals = append(m.goals, goal)
	return goal.ID, nil
}

func (m *Memory) DeleteGoal(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, g := range m.goals {
		if g.ID == id {
			m.goals = append(m.goals[:i], m.goals[i+1:]...)
			break
		}
	}
	return nil
}

// ListWorkouts returns workouts newest first.
func (m *Memory) ListWorkouts(_ context.Context) ([]tracker.Workout, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]tracker.Workout, 0, len(m.workouts))
	for i := len(m.workouts) - 1; i >= 0; i-- {
		out = append(out, m.workouts[i])
	}
	return out, nil
}

func (m *Memory) AddWorkout(_ context.Context, w tracker.NewWorkout) (int64, error) {
	if err := w.Validate(); err != nil {
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	workout := tracker.Workout{
		ID:        m.allocID(),
		Date:      w.Date,
		Type:      w.Type,
		Duration:  *w.Duration,
		Calories:  *w.Calories,
		Intensity: w.Intensity,
		Distance:  w.Distance,
		Notes:     w.Notes,
		CreatedAt: time.Now().UTC(),
	}
	m.workouts = append(m.workouts, workout)
	return workout.ID, nil
}

func (m *Memory) DeleteWorkout(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, w := range m.workouts {
		if w.ID == id {
			m.workouts = append(m.workouts[:i], m.workouts[i+1:]...)
			break
		}
	}
	return nil
}

// MealsForDate returns the date's meals in creation order.
func (m *Memory) MealsForDate(_ context.Context, date string) ([]tracker.Meal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []tracker.Meal{}
	for _, meal := range m.meals {
		if meal.Date == date {
			out = append(out, meal)
		}
	}
	return out, nil
}

func (m *Memory) AddMeal(_ context.Context, in tracker.NewMeal) (int64, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	meal := tracker.Meal{
		ID:          m.allocID(),
		Date:        in.Date,
		MealType:    in.MealType,
		FoodName:    in.FoodName,
		Calories:    *in.Calories,
		Protein:     deref(in.Protein),
		Carbs:       deref(in.Carbs),
		Fats:        deref(in.Fats),
		PortionSize: in.PortionSize,
		Notes:       in.Notes,
		CreatedAt:   time.Now().UTC(),
	}
	m.meals = append(m.meals, meal)
	return meal.ID, nil
}

func (m *Memory) DeleteMeal(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, meal := range m.meals {
		if meal.ID == id {
			m.meals = append(m.meals[:i], m.meals[i+1:]...)
			break
		}
	}
	return nil
}

// CalorieGoal returns nil when the date was never set.
func (m *Memory) CalorieGoal(_ context.Context, date string) (*tracker.CalorieGoal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cg, ok := m.calorieGoals[date]
	if !ok {
		return nil, nil
	}
	return &cg, nil
}

// SetCalorieGoal overwrites in place; the map key is the date.
func (m *Memory) SetCalorieGoal(_ context.Context, c tracker.NewCalorieGoal) error {
	if err := c.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var achieved int64
	if c.Achieved != nil {
		achieved = *c.Achieved
	}
	m.calorieGoals[c.Date] = tracker.CalorieGoal{
		Date:      c.Date,
		DailyGoal: *c.DailyGoal,
		Achieved:  achieved,
	}
	return nil
}

// Stats sums under one read lock, so the aggregates describe a single
// snapshot.
func (m *Memory) Stats(_ context.Context) (tracker.Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var burned, duration, consumed float64
	for _, w := range m.workouts {
		burned += w.Calories
		duration += w.Duration
	}
	for _, meal := range m.meals {
		consumed += meal.Calories
	}
	return tracker.Stats{
		TotalWorkouts:    int64(len(m.workouts)),
		CaloriesBurned:   burned,
		TotalDuration:    duration,
		CaloriesConsumed: consumed,
		NetCalories:      tracker.NetCalories(consumed, burned),
	}, nil
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
