package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nfrund/sculpt/internal/domain"
	"github.com/surrealdb/surrealdb.go"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

const workoutTable = "workout_data"

var _ domain.WorkoutRepository = (*SurrealWorkoutStore)(nil)

// surrealWorkout is the record shape stored in the workout_data table.
type surrealWorkout struct {
	ID           *surrealmodels.RecordID       `json:"id,omitempty" surrealdb:"id,omitempty"`
	ExerciseName string                        `json:"exercise_name" surrealdb:"exercise_name"`
	Sets         int                           `json:"sets" surrealdb:"sets"`
	Reps         int                           `json:"reps" surrealdb:"reps"`
	CreatedAt    *surrealmodels.CustomDateTime `json:"created_at,omitempty" surrealdb:"created_at,omitempty"`
}

func (r *surrealWorkout) toDomain() *domain.Workout {
	w := &domain.Workout{
		ExerciseName: r.ExerciseName,
		Sets:         r.Sets,
		Reps:         r.Reps,
	}
	if r.ID != nil {
		w.ID = fmt.Sprint(r.ID.ID)
	}
	if r.CreatedAt != nil {
		w.CreatedAt = r.CreatedAt.Time
	}
	return w
}

// SurrealWorkoutStore implements domain.WorkoutRepository on SurrealDB.
type SurrealWorkoutStore struct {
	db *surrealdb.DB
}

func NewSurrealWorkoutStore(db *surrealdb.DB) *SurrealWorkoutStore {
	return &SurrealWorkoutStore{db: db}
}

func (s *SurrealWorkoutStore) Create(ctx context.Context, w *domain.Workout) (*domain.Workout, error) {
	if w == nil {
		return nil, errors.New("workout to create cannot be nil")
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}

	data := map[string]any{
		"exercise_name": w.ExerciseName,
		"sets":          w.Sets,
		"reps":          w.Reps,
		"created_at":    &surrealmodels.CustomDateTime{Time: time.Now().UTC()},
	}
	created, err := QueryOne[surrealWorkout](ctx, s.db,
		"CREATE type::table($table) CONTENT $data",
		map[string]any{"table": workoutTable, "data": data},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create workout: %w", err)
	}
	if created == nil {
		return nil, errors.New("failed to create workout: no record returned")
	}
	return created.toDomain(), nil
}

func (s *SurrealWorkoutStore) List(ctx context.Context) ([]*domain.Workout, error) {
	rows, err := Query[surrealWorkout](ctx, s.db,
		"SELECT * FROM type::table($table) ORDER BY created_at ASC",
		map[string]any{"table": workoutTable},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	return toDomainWorkouts(rows), nil
}

func (s *SurrealWorkoutStore) ListByExercise(ctx context.Context, exerciseName string) ([]*domain.Workout, error) {
	rows, err := Query[surrealWorkout](ctx, s.db,
		"SELECT * FROM type::table($table) WHERE exercise_name = $name ORDER BY created_at ASC",
		map[string]any{"table": workoutTable, "name": exerciseName},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts for %q: %w", exerciseName, err)
	}
	return toDomainWorkouts(rows), nil
}

func (s *SurrealWorkoutStore) DeleteByExercise(ctx context.Context, exerciseName string) (int, error) {
	rows, err := Query[surrealWorkout](ctx, s.db,
		"DELETE FROM type::table($table) WHERE exercise_name = $name RETURN BEFORE",
		map[string]any{"table": workoutTable, "name": exerciseName},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete workouts for %q: %w", exerciseName, err)
	}
	return len(rows), nil
}

func toDomainWorkouts(rows []surrealWorkout) []*domain.Workout {
	out := make([]*domain.Workout, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toDomain())
	}
	return out
}
