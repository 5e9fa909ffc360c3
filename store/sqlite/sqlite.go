/*
Package sqlite provides the SQLite-backed implementation of tracker.Store.

PURPOSE:
  Implements the persistence gateway using database/sql with the
  mattn/go-sqlite3 driver. In production, the same patterns apply to
  PostgreSQL or MySQL - only minor SQL dialect differences.

KEY TABLES:
  goals:         fitness goals, newest-first listing
  workouts:      workout entries, newest-first listing
  meals:         meal entries, listed per date in creation order
  calorie_goals: one row per date, upserted in place

STATEMENT DISCIPLINE:
  - Every value is bound, never interpolated.
  - Every write is a single statement and therefore atomic on its own;
    no multi-statement transactions are exposed.
  - Rows are closed on every exit path.
  - Driver failures are wrapped as tracker.ErrConnection or
    tracker.ErrQuery; raw driver text stays in the wrapped message for
    operator logs only.

UPSERT:
  calorie_goals keys on date. SetCalorieGoal uses
  INSERT ... ON CONFLICT(date) DO UPDATE, so two concurrent sets for
  the same date are serialized by the database, not by application
  logic.

CONCURRENCY:
  Uses sync.RWMutex around the handle, which keeps the single-writer
  discipline explicit under SQLite. WAL mode lets readers proceed
  alongside the writer.

USAGE:
  store, err := sqlite.New("./data/fitness.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  Use ":memory:" for tests.

SEE ALSO:
  - tracker/store.go: Interface definition and contract
  - tracker/store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/fittrack/fitness-track/tracker"
)

// Store implements tracker.Store using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New opens (or creates) the database at dbPath and migrates the schema.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=10000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w: %v", tracker.ErrConnection, err)
	}

	// Every pooled connection to ":memory:" would get its own empty
	// database; pin the pool to one connection in that case.
	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w: %v", tracker.ErrConnection, err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS goals (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		goal_type TEXT NOT NULL,
		target_value REAL NOT NULL,
		unit TEXT,
		deadline TEXT,
		status TEXT NOT NULL DEFAULT 'Pending',
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS workouts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		date TEXT NOT NULL,
		type TEXT NOT NULL,
		duration REAL NOT NULL,
		calories REAL NOT NULL,
		intensity TEXT,
		distance REAL,
		notes TEXT,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS meals (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		date TEXT NOT NULL,
		meal_type TEXT NOT NULL,
		food_name TEXT NOT NULL,
		calories REAL NOT NULL,
		protein REAL NOT NULL DEFAULT 0,
		carbs REAL NOT NULL DEFAULT 0,
		fats REAL NOT NULL DEFAULT 0,
		portion_size TEXT,
		notes TEXT,
		created_at TEXT NOT NULL
	);

	-- Daily meal listing is the hot read path
	CREATE INDEX IF NOT EXISTS idx_meals_date ON meals(date, created_at);

	-- One row per date; the upsert target
	CREATE TABLE IF NOT EXISTS calorie_goals (
		date TEXT PRIMARY KEY,
		daily_goal REAL NOT NULL,
		achieved INTEGER NOT NULL DEFAULT 0
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// GOALS
// =============================================================================

// ListGoals returns all goals, newest first.
func (s *Store) ListGoals(ctx context.Context) ([]tracker.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT id, goal_type, target_value, unit, deadline, status, created_at
		FROM goals
		ORDER BY created_at DESC, id DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, wrap("list goals", err)
	}
	defer rows.Close()

	goals := []tracker.Goal{}
	for rows.Next() {
		var (
			g              tracker.Goal
			unit, deadline sql.NullString
			createdAt      string
		)
		if err := rows.Scan(&g.ID, &g.GoalType, &g.TargetValue, &unit, &deadline, &g.Status, &createdAt); err != nil {
			return nil, wrap("scan goal", err)
		}
		g.Unit = strPtr(unit)
		g.Deadline = strPtr(deadline)
		g.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("list goals", err)
	}
	return goals, nil
}

// AddGoal validates and inserts a goal, returning the generated id.
func (s *Store) AddGoal(ctx context.Context, g tracker.NewGoal) (int64, error) {
	if err := g.Validate(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	status := g.Status
	if status == "" {
		status = "Pending"
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO goals (goal_type, target_value, unit, deadline, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		g.GoalType, *g.TargetValue, g.Unit, g.Deadline, status, now(),
	)
	if err != nil {
		return 0, wrap("add goal", err)
	}
	return lastID(res)
}

// DeleteGoal removes a goal. Deleting an absent id is not an error.
func (s *Store) DeleteGoal(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM goals WHERE id = ?", id)
	if err != nil {
		return wrap("delete goal", err)
	}
	return nil
}

// =============================================================================
// WORKOUTS
// =============================================================================

// ListWorkouts returns all workouts, newest first.
func (s *Store) ListWorkouts(ctx context.Context) ([]tracker.Workout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT id, date, type, duration, calories, intensity, distance, notes, created_at
		FROM workouts
		ORDER BY created_at DESC, id DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, wrap("list workouts", err)
	}
	defer rows.Close()

	workouts := []tracker.Workout{}
	for rows.Next() {
		var (
			w                tracker.Workout
			intensity, notes sql.NullString
			distance         sql.NullFloat64
			createdAt        string
		)
		if err := rows.Scan(&w.ID, &w.Date, &w.Type, &w.Duration, &w.Calories,
			&intensity, &distance, &notes, &createdAt); err != nil {
			return nil, wrap("scan workout", err)
		}
		w.Intensity = strPtr(intensity)
		w.Notes = strPtr(notes)
		if distance.Valid {
			d := distance.Float64
			w.Distance = &d
		}
		w.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("list workouts", err)
	}
	return workouts, nil
}

// AddWorkout validates and inserts a workout, returning the generated id.
func (s *Store) AddWorkout(ctx context.Context, w tracker.NewWorkout) (int64, error) {
	if err := w.Validate(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO workouts (date, type, duration, calories, intensity, distance, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		w.Date, w.Type, *w.Duration, *w.Calories, w.Intensity, w.Distance, w.Notes, now(),
	)
	if err != nil {
		return 0, wrap("add workout", err)
	}
	return lastID(res)
}

// DeleteWorkout removes a workout. Idempotent.
func (s *Store) DeleteWorkout(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM workouts WHERE id = ?", id)
	if err != nil {
		return wrap("delete workout", err)
	}
	return nil
}

// =============================================================================
// MEALS
// =============================================================================

// MealsForDate returns the meals logged for an exact calendar date,
// in creation order. Daily totals are computed over this same slice
// by tracker.SumMeals, so list and totals always agree.
func (s *Store) MealsForDate(ctx context.Context, date string) ([]tracker.Meal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT id, date, meal_type, food_name, calories, protein, carbs, fats,
		       portion_size, notes, created_at
		FROM meals
		WHERE date = ?
		ORDER BY created_at ASC, id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, wrap("list meals", err)
	}
	defer rows.Close()

	meals := []tracker.Meal{}
	for rows.Next() {
		var (
			m                  tracker.Meal
			portionSize, notes sql.NullString
			createdAt          string
		)
		if err := rows.Scan(&m.ID, &m.Date, &m.MealType, &m.FoodName, &m.Calories,
			&m.Protein, &m.Carbs, &m.Fats, &portionSize, &notes, &createdAt); err != nil {
			return nil, wrap("scan meal", err)
		}
		m.PortionSize = strPtr(portionSize)
		m.Notes = strPtr(notes)
		m.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		meals = append(meals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("list meals", err)
	}
	return meals, nil
}

// AddMeal validates and inserts a meal, returning the generated id.
// Absent macro fields default to 0.
func (s *Store) AddMeal(ctx context.Context, m tracker.NewMeal) (int64, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO meals (date, meal_type, food_name, calories, protein, carbs, fats, portion_size, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.Date, m.MealType, m.FoodName, *m.Calories,
		orZero(m.Protein), orZero(m.Carbs), orZero(m.Fats),
		m.PortionSize, m.Notes, now(),
	)
	if err != nil {
		return 0, wrap("add meal", err)
	}
	return lastID(res)
}

// DeleteMeal removes a meal. Idempotent.
func (s *Store) DeleteMeal(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM meals WHERE id = ?", id)
	if err != nil {
		return wrap("delete meal", err)
	}
	return nil
}

// =============================================================================
// CALORIE GOALS
// =============================================================================

// CalorieGoal returns the target for a date, or nil if that date was
// never set. nil is an explicit absence, distinct from a zero record.
func (s *Store) CalorieGoal(ctx context.Context, date string) (*tracker.CalorieGoal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var cg tracker.CalorieGoal
	err := s.db.QueryRowContext(ctx,
		"SELECT date, daily_goal, achieved FROM calorie_goals WHERE date = ?",
		date,
	).Scan(&cg.Date, &cg.DailyGoal, &cg.Achieved)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap("get calorie goal", err)
	}
	return &cg, nil
}

// SetCalorieGoal inserts or overwrites the target for a date in a
// single statement. Concurrent sets for the same date serialize in
// the database; the second writer wins.
func (s *Store) SetCalorieGoal(ctx context.Context, c tracker.NewCalorieGoal) error {
	if err := c.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var achieved int64
	if c.Achieved != nil {
		achieved = *c.Achieved
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO calorie_goals (date, daily_goal, achieved)
		VALUES (?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			daily_goal = excluded.daily_goal,
			achieved = excluded.achieved`,
		c.Date, *c.DailyGoal, achieved,
	)
	if err != nil {
		return wrap("set calorie goal", err)
	}
	return nil
}

// =============================================================================
// STATS
// =============================================================================

// Stats computes the lifetime summary in one statement, so it either
// returns all aggregates or none.
func (s *Store) Stats(ctx context.Context) (tracker.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT
			(SELECT COUNT(*) FROM workouts),
			(SELECT COALESCE(SUM(calories), 0) FROM workouts),
			(SELECT COALESCE(SUM(duration), 0) FROM workouts),
			(SELECT COALESCE(SUM(calories), 0) FROM meals)
	`

	var st tracker.Stats
	err := s.db.QueryRowContext(ctx, query).Scan(
		&st.TotalWorkouts, &st.CaloriesBurned, &st.TotalDuration, &st.CaloriesConsumed,
	)
	if err != nil {
		return tracker.Stats{}, wrap("stats", err)
	}
	st.NetCalories = tracker.NetCalories(st.CaloriesConsumed, st.CaloriesBurned)
	return st, nil
}

// =============================================================================
// HELPERS
// =============================================================================

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func lastID(res sql.Result) (int64, error) {
	id, err := res.LastInsertId()
	if err != nil {
		return 0, wrap("generated id", err)
	}
	return id, nil
}

func strPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func orZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

// wrap classifies a driver error into the tracker taxonomy while
// keeping the original text for operator logs.
func wrap(op string, err error) error {
	if isConnectionError(err) {
		return fmt.Errorf("%s: %w: %v", op, tracker.ErrConnection, err)
	}
	return fmt.Errorf("%s: %w: %v", op, tracker.ErrQuery, err)
}

func isConnectionError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "unable to open database") ||
		strings.Contains(msg, "database is closed")
}
