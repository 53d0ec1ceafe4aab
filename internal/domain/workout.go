package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrNotFound is returned when an exercise has no stored entries.
	ErrNotFound = errors.New("requested resource not found")
	// ErrInvalidWorkout wraps every Validate failure.
	ErrInvalidWorkout = errors.New("invalid workout data")
)

// validatorInstance caches struct information across calls.
var validatorInstance = validator.New()

// Workout is one logged exercise: a named movement with sets and reps.
type Workout struct {
	ID           string    `json:"id,omitempty"`
	ExerciseName string    `json:"exercise_name" validate:"required,max=200"`
	Sets         int       `json:"sets" validate:"gt=0"`
	Reps         int       `json:"reps" validate:"gt=0"`
	CreatedAt    time.Time `json:"created_at"`
}

// Validate runs the struct tag rules. Failures wrap ErrInvalidWorkout.
func (w *Workout) Validate() error {
	if err := validatorInstance.Struct(w); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidWorkout, err)
	}
	return nil
}

// Volume is sets times reps.
func (w *Workout) Volume() int {
	return w.Sets * w.Reps
}

// ExerciseTotal aggregates all logged workouts for one exercise name.
type ExerciseTotal struct {
	ExerciseName string `json:"exercise_name"`
	Entries      int    `json:"entries"`
	Sets         int    `json:"sets"`
	Reps         int    `json:"reps"`
	Volume       int    `json:"volume"`
}

// WorkoutRepository defines the contract for workout storage.
// It lives in the domain because it's a requirement OF the domain, not
// of the database implementation.
type WorkoutRepository interface {
	// Create stores a new workout and returns it with ID and CreatedAt set.
	Create(ctx context.Context, w *Workout) (*Workout, error)

	// List returns every stored workout, oldest first.
	List(ctx context.Context) ([]*Workout, error)

	// ListByExercise returns the workouts for an exact exercise name, oldest first.
	ListByExercise(ctx context.Context, exerciseName string) ([]*Workout, error)

	// DeleteByExercise removes every workout with the given name and reports how many went.
	DeleteByExercise(ctx context.Context, exerciseName string) (int, error)
}
