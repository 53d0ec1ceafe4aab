package database

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nfrund/sculpt/internal/domain"
)

// workoutSchema creates the workout_data table used by PostgresWorkoutStore.
const workoutSchema = `
CREATE TABLE IF NOT EXISTS workout_data (
	id            BIGSERIAL PRIMARY KEY,
	exercise_name TEXT        NOT NULL,
	sets          INTEGER     NOT NULL CHECK (sets > 0),
	reps          INTEGER     NOT NULL CHECK (reps > 0),
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS workout_data_exercise_name_idx ON workout_data (exercise_name);
`

var _ domain.WorkoutRepository = (*PostgresWorkoutStore)(nil)

// PgxDB is the subset of *pgxpool.Pool the store needs.
type PgxDB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresWorkoutStore implements domain.WorkoutRepository on PostgreSQL.
type PostgresWorkoutStore struct {
	db PgxDB
}

func NewPostgresWorkoutStore(db PgxDB) *PostgresWorkoutStore {
	return &PostgresWorkoutStore{db: db}
}

// EnsureSchema creates the workout table if it does not exist.
func (r *PostgresWorkoutStore) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, workoutSchema); err != nil {
		return fmt.Errorf("ensure workout schema: %w", err)
	}
	return nil
}

func (r *PostgresWorkoutStore) Create(ctx context.Context, w *domain.Workout) (*domain.Workout, error) {
	if w == nil {
		return nil, errors.New("workout to create cannot be nil")
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}

	var (
		id        int64
		createdAt time.Time
	)
	err := r.db.QueryRow(
		ctx,
		`INSERT INTO workout_data (exercise_name, sets, reps, created_at)
			VALUES ($1, $2, $3, $4)
		RETURNING id, created_at;`,
		w.ExerciseName, w.Sets, w.Reps, time.Now().UTC(),
	).Scan(&id, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("insert workout: %w", err)
	}

	return &domain.Workout{
		ID:           strconv.FormatInt(id, 10),
		ExerciseName: w.ExerciseName,
		Sets:         w.Sets,
		Reps:         w.Reps,
		CreatedAt:    createdAt,
	}, nil
}

func (r *PostgresWorkoutStore) List(ctx context.Context) ([]*domain.Workout, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, exercise_name, sets, reps, created_at
			FROM workout_data
		ORDER BY created_at ASC, id ASC;`,
	)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	return scanWorkouts(rows)
}

func (r *PostgresWorkoutStore) ListByExercise(ctx context.Context, exerciseName string) ([]*domain.Workout, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, exercise_name, sets, reps, created_at
			FROM workout_data
			WHERE exercise_name = $1
		ORDER BY created_at ASC, id ASC;`,
		exerciseName,
	)
	if err != nil {
		return nil, fmt.Errorf("list workouts for %q: %w", exerciseName, err)
	}
	return scanWorkouts(rows)
}

func (r *PostgresWorkoutStore) DeleteByExercise(ctx context.Context, exerciseName string) (int, error) {
	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workout_data WHERE exercise_name = $1`,
		exerciseName,
	)
	if err != nil {
		return 0, fmt.Errorf("delete workouts for %q: %w", exerciseName, err)
	}
	return int(tag.RowsAffected()), nil
}

func scanWorkouts(rows pgx.Rows) ([]*domain.Workout, error) {
	defer rows.Close()

	var workouts []*domain.Workout
	for rows.Next() {
		var (
			id int64
			w  domain.Workout
		)
		if err := rows.Scan(&id, &w.ExerciseName, &w.Sets, &w.Reps, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		w.ID = strconv.FormatInt(id, 10)
		workouts = append(workouts, &w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	if workouts == nil {
		workouts = []*domain.Workout{}
	}
	return workouts, nil
}
