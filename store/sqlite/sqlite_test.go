package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fittrack/fitness-track/store/sqlite"
	"github.com/fittrack/fitness-track/tracker"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestStore(t *testing.T) *sqlite.Store {
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func f64(v float64) *float64 { return &v }

func str(s string) *string { return &s }

func addWorkout(t *testing.T, s *sqlite.Store, date string, duration, calories float64) int64 {
	t.Helper()
	id, err := s.AddWorkout(context.Background(), tracker.NewWorkout{
		Date:     date,
		Type:     "run",
		Duration: f64(duration),
		Calories: f64(calories),
	})
	require.NoError(t, err)
	return id
}

func addMeal(t *testing.T, s *sqlite.Store, date, food string, calories float64) int64 {
	t.Helper()
	id, err := s.AddMeal(context.Background(), tracker.NewMeal{
		Date:     date,
		MealType: "Lunch",
		FoodName: food,
		Calories: f64(calories),
	})
	require.NoError(t, err)
	return id
}

// =============================================================================
// GOALS
// =============================================================================

func TestGoals_AddThenList_NewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	before := time.Now().UTC().Truncate(time.Second)

	for _, gt := range []string{"weight", "distance", "strength"} {
		id, err := store.AddGoal(ctx, tracker.NewGoal{GoalType: gt, TargetValue: f64(10)})
		require.NoError(t, err)
		assert.Greater(t, id, int64(0))
	}

	goals, err := store.ListGoals(ctx)
	require.NoError(t, err)
	require.Len(t, goals, 3)

	// Newest first
	assert.Equal(t, "strength", goals[0].GoalType)
	assert.Equal(t, "distance", goals[1].GoalType)
	assert.Equal(t, "weight", goals[2].GoalType)

	for _, g := range goals {
		assert.False(t, g.CreatedAt.Before(before), "created_at before request time")
		assert.Equal(t, "Pending", g.Status)
		assert.Nil(t, g.Unit)
		assert.Nil(t, g.Deadline)
	}
}

func TestAddGoal_OptionalFieldsRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.AddGoal(ctx, tracker.NewGoal{
		GoalType:    "weight",
		TargetValue: f64(72.5),
		Unit:        str("kg"),
		Deadline:    str("2026-12-31"),
		Status:      "Active",
	})
	require.NoError(t, err)

	goals, err := store.ListGoals(ctx)
	require.NoError(t, err)
	require.Len(t, goals, 1)

	g := goals[0]
	assert.Equal(t, 72.5, g.TargetValue)
	require.NotNil(t, g.Unit)
	assert.Equal(t, "kg", *g.Unit)
	require.NotNil(t, g.Deadline)
	assert.Equal(t, "2026-12-31", *g.Deadline)
	assert.Equal(t, "Active", g.Status)
}

func TestAddGoal_MissingFields(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.AddGoal(ctx, tracker.NewGoal{TargetValue: f64(10)})
	require.Error(t, err)
	assert.True(t, tracker.IsClientError(err))

	_, err = store.AddGoal(ctx, tracker.NewGoal{GoalType: "weight"})
	require.Error(t, err)
	assert.True(t, tracker.IsClientError(err))

	// Nothing was written
	goals, err := store.ListGoals(ctx)
	require.NoError(t, err)
	assert.Empty(t, goals)
}

func TestDeleteGoal_AbsentID_Succeeds(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.DeleteGoal(context.Background(), 9999))
}

// =============================================================================
// WORKOUTS
// =============================================================================

func TestWorkouts_AddThenList_NewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := addWorkout(t, store, "2024-01-01", 30, 300)
	second := addWorkout(t, store, "2024-01-02", 45, 450)

	workouts, err := store.ListWorkouts(ctx)
	require.NoError(t, err)
	require.Len(t, workouts, 2)

	assert.Equal(t, second, workouts[0].ID)
	assert.Equal(t, first, workouts[1].ID)
	assert.Equal(t, 45.0, workouts[0].Duration)
	assert.Nil(t, workouts[0].Intensity)
	assert.Nil(t, workouts[0].Distance)
	assert.Nil(t, workouts[0].Notes)
}

func TestAddWorkout_MissingFields(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	cases := []tracker.NewWorkout{
		{Type: "run", Duration: f64(30), Calories: f64(300)},
		{Date: "2024-01-01", Duration: f64(30), Calories: f64(300)},
		{Date: "2024-01-01", Type: "run", Calories: f64(300)},
		{Date: "2024-01-01", Type: "run", Duration: f64(30)},
	}
	for _, in := range cases {
		_, err := store.AddWorkout(ctx, in)
		require.Error(t, err)
		assert.True(t, tracker.IsClientError(err))
	}
}

func TestAddWorkout_NegativeValuesAccepted(t *testing.T) {
	// Presence is the only validation; values are not range-checked.
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.AddWorkout(ctx, tracker.NewWorkout{
		Date:     "2024-01-01",
		Type:     "run",
		Duration: f64(-30),
		Calories: f64(-300),
	})
	require.NoError(t, err)

	workouts, err := store.ListWorkouts(ctx)
	require.NoError(t, err)
	require.Len(t, workouts, 1)
	assert.Equal(t, -30.0, workouts[0].Duration)
	assert.Equal(t, -300.0, workouts[0].Calories)
}

func TestDeleteWorkout_Idempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id := addWorkout(t, store, "2024-01-01", 30, 300)
	require.NoError(t, store.DeleteWorkout(ctx, id))
	// Second delete of the same id is still success
	require.NoError(t, store.DeleteWorkout(ctx, id))

	workouts, err := store.ListWorkouts(ctx)
	require.NoError(t, err)
	assert.Empty(t, workouts)
}

// =============================================================================
// MEALS
// =============================================================================

func TestMealsForDate_FiltersAndOrdersAscending(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	addMeal(t, store, "2024-01-02", "oatmeal", 200)
	addMeal(t, store, "2024-01-03", "salad", 120)
	addMeal(t, store, "2024-01-02", "chicken", 150)

	meals, err := store.MealsForDate(ctx, "2024-01-02")
	require.NoError(t, err)
	require.Len(t, meals, 2)

	// Creation order, oldest first
	assert.Equal(t, "oatmeal", meals[0].FoodName)
	assert.Equal(t, "chicken", meals[1].FoodName)
}

func TestMealsForDate_EmptyDay(t *testing.T) {
	store := newTestStore(t)

	meals, err := store.MealsForDate(context.Background(), "2024-06-01")
	require.NoError(t, err)
	assert.Empty(t, meals)
	assert.Equal(t, tracker.DailyTotals{}, tracker.SumMeals(meals))
}

func TestAddMeal_MacroDefaultsToZero(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.AddMeal(ctx, tracker.NewMeal{
		Date:     "2024-01-02",
		MealType: "Breakfast",
		FoodName: "toast",
		Calories: f64(180),
		Protein:  f64(6),
	})
	require.NoError(t, err)

	meals, err := store.MealsForDate(ctx, "2024-01-02")
	require.NoError(t, err)
	require.Len(t, meals, 1)

	m := meals[0]
	assert.Equal(t, 6.0, m.Protein)
	assert.Equal(t, 0.0, m.Carbs)
	assert.Equal(t, 0.0, m.Fats)
}

func TestAddMeal_MissingFields(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.AddMeal(ctx, tracker.NewMeal{MealType: "Lunch", FoodName: "salad", Calories: f64(100)})
	assert.True(t, tracker.IsClientError(err))

	_, err = store.AddMeal(ctx, tracker.NewMeal{Date: "2024-01-02", MealType: "Lunch", FoodName: "salad"})
	assert.True(t, tracker.IsClientError(err))
}

func TestDeleteMeal_AbsentID_Succeeds(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.DeleteMeal(context.Background(), 123))
}

// =============================================================================
// CALORIE GOALS
// =============================================================================

func TestCalorieGoal_NeverSet_ReturnsNil(t *testing.T) {
	store := newTestStore(t)

	cg, err := store.CalorieGoal(context.Background(), "2024-01-01")
	require.NoError(t, err)
	assert.Nil(t, cg)
}

func TestSetCalorieGoal_UpsertOverwrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetCalorieGoal(ctx, tracker.NewCalorieGoal{
		Date:      "2024-01-01",
		DailyGoal: f64(2000),
	}))

	achieved := int64(1)
	require.NoError(t, store.SetCalorieGoal(ctx, tracker.NewCalorieGoal{
		Date:      "2024-01-01",
		DailyGoal: f64(1800),
		Achieved:  &achieved,
	}))

	cg, err := store.CalorieGoal(ctx, "2024-01-01")
	require.NoError(t, err)
	require.NotNil(t, cg)

	// Second call's values, not a duplicate row
	assert.Equal(t, 1800.0, cg.DailyGoal)
	assert.Equal(t, int64(1), cg.Achieved)
}

func TestSetCalorieGoal_AchievedDefaultsToZero(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetCalorieGoal(ctx, tracker.NewCalorieGoal{
		Date:      "2024-02-01",
		DailyGoal: f64(2200),
	}))

	cg, err := store.CalorieGoal(ctx, "2024-02-01")
	require.NoError(t, err)
	require.NotNil(t, cg)
	assert.Equal(t, int64(0), cg.Achieved)
}

func TestSetCalorieGoal_MissingFields(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.SetCalorieGoal(ctx, tracker.NewCalorieGoal{DailyGoal: f64(2000)})
	assert.True(t, tracker.IsClientError(err))

	err = store.SetCalorieGoal(ctx, tracker.NewCalorieGoal{Date: "2024-01-01"})
	assert.True(t, tracker.IsClientError(err))
}

// =============================================================================
// STATS
// =============================================================================

func TestStats_EmptyDatabase_AllZero(t *testing.T) {
	store := newTestStore(t)

	st, err := store.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, tracker.Stats{}, st)
}

func TestStats_SingleWorkout(t *testing.T) {
	store := newTestStore(t)

	addWorkout(t, store, "2024-01-01", 30, 300)

	st, err := store.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), st.TotalWorkouts)
	assert.Equal(t, 300.0, st.CaloriesBurned)
	assert.Equal(t, 30.0, st.TotalDuration)
	assert.Equal(t, 0.0, st.CaloriesConsumed)
	assert.Equal(t, -300.0, st.NetCalories)
}

func TestStats_NetCalories(t *testing.T) {
	store := newTestStore(t)

	addWorkout(t, store, "2024-01-01", 30, 300)
	addMeal(t, store, "2024-01-02", "oatmeal", 200)
	addMeal(t, store, "2024-01-02", "chicken", 150)

	st, err := store.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 350.0, st.CaloriesConsumed)
	assert.Equal(t, 50.0, st.NetCalories)
}
