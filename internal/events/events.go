// Package events declares the workout events carried on the bus.
package events

import (
	"time"

	"github.com/nfrund/sculpt/internal/pubsub"
)

// WorkoutRecorded is published after a workout has been stored.
type WorkoutRecorded struct {
	ID           string    `json:"id"`
	ExerciseName string    `json:"exercise_name"`
	Sets         int       `json:"sets"`
	Reps         int       `json:"reps"`
	RecordedAt   time.Time `json:"recorded_at"`
}

// WorkoutsDeleted is published after every entry for an exercise was removed.
type WorkoutsDeleted struct {
	ExerciseName string `json:"exercise_name"`
	Count        int    `json:"count"`
}

var (
	Recorded = pubsub.NewEvent[WorkoutRecorded]("workout.recorded", "A workout entry was stored")
	Deleted  = pubsub.NewEvent[WorkoutsDeleted]("workout.deleted", "All entries for an exercise were deleted")
)
