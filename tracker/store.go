/*
store.go - Storage interface for the tracker core

PURPOSE:
  Defines the persistence contract every backend must satisfy. The
  HTTP layer depends only on this interface; implementations live in
  store/sqlite (production) and tracker/store (in-memory, for tests).

CONTRACT:
  - Add* validates its input before issuing any statement and returns
    the generated id on success.
  - List reads are ordered: goals and workouts newest first, meals for
    a day in creation order.
  - Delete* is idempotent: deleting an absent id is not an error.
  - CalorieGoal returns nil (not a zero record) when the date was
    never set; SetCalorieGoal is a single atomic insert-or-update.
  - Stats fails as a unit: callers never see partial aggregates.
  - Failures unwrap to ErrValidation, ErrConnection or ErrQuery.
*/
package tracker

import "context"

// Store is the persistence gateway for all tracker entities.
type Store interface {
	ListGoals(ctx context.Context) ([]Goal, error)
	AddGoal(ctx context.Context, g NewGoal) (int64, error)
	DeleteGoal(ctx context.Context, id int64) error

	ListWorkouts(ctx context.Context) ([]Workout, error)
	AddWorkout(ctx context.Context, w NewWorkout) (int64, error)
	DeleteWorkout(ctx context.Context, id int64) error

	MealsForDate(ctx context.Context, date string) ([]Meal, error)
	AddMeal(ctx context.Context, m NewMeal) (int64, error)
	DeleteMeal(ctx context.Context, id int64) error

	CalorieGoal(ctx context.Context, date string) (*CalorieGoal, error)
	SetCalorieGoal(ctx context.Context, c NewCalorieGoal) error

	Stats(ctx context.Context) (Stats, error)
}
