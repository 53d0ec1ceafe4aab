// Package workout holds the workout wire format and the HTTP client that
// submits workouts to the workout data service.
package workout

import (
	"fmt"

	"github.com/nfrund/sculpt/internal/domain"
	"github.com/nfrund/sculpt/internal/validation"
)

// Entry is the JSON body exchanged with the workout data service.
type Entry struct {
	ExerciseName string `json:"exercise_name"`
	Sets         int    `json:"sets"`
	Reps         int    `json:"reps"`
}

// EntryFromValues coerces validated form values into an Entry. Only sets and
// reps are converted; the exercise name is sent as typed.
func EntryFromValues(values map[string]string) (Entry, error) {
	sets, err := validation.LeadingInt(values[validation.FieldSets])
	if err != nil {
		return Entry{}, fmt.Errorf("parse sets: %w", err)
	}
	reps, err := validation.LeadingInt(values[validation.FieldReps])
	if err != nil {
		return Entry{}, fmt.Errorf("parse reps: %w", err)
	}
	return Entry{
		ExerciseName: values[validation.FieldExerciseName],
		Sets:         sets,
		Reps:         reps,
	}, nil
}

// FromDomain converts a stored workout to its wire form.
func FromDomain(w *domain.Workout) Entry {
	return Entry{ExerciseName: w.ExerciseName, Sets: w.Sets, Reps: w.Reps}
}

// ToDomain converts the wire form to a new, unsaved workout.
func (e Entry) ToDomain() *domain.Workout {
	return &domain.Workout{ExerciseName: e.ExerciseName, Sets: e.Sets, Reps: e.Reps}
}
