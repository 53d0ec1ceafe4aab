// Package workoutapi is the workout data service: a JSON API over a
// domain.WorkoutRepository that publishes workout events.
package workoutapi

import (
	"context"
	"errors"
	"log/slog"

	"github.com/nfrund/sculpt/internal/domain"
	"github.com/nfrund/sculpt/internal/events"
	"github.com/nfrund/sculpt/internal/metrics"
	"github.com/nfrund/sculpt/internal/progress"
	"github.com/nfrund/sculpt/internal/pubsub"
	"github.com/nfrund/sculpt/internal/workout"
)

// EventSource is the publisher name carried on bus messages.
const EventSource = "workout-api"

// Service holds the workout data use cases.
type Service struct {
	repo    domain.WorkoutRepository
	pub     pubsub.Publisher
	tracker *progress.Tracker
	metrics *metrics.Manager
}

func NewService(repo domain.WorkoutRepository, pub pubsub.Publisher, tracker *progress.Tracker, m *metrics.Manager) *Service {
	return &Service{repo: repo, pub: pub, tracker: tracker, metrics: m}
}

// Record stores one entry and announces it on the bus.
func (s *Service) Record(ctx context.Context, e workout.Entry) (*domain.Workout, error) {
	w := e.ToDomain()
	if err := w.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, w)
	if err != nil {
		return nil, err
	}
	s.metrics.CounterWorkoutsRecorded.Inc()

	if err := pubsub.Publish(ctx, s.pub, events.Recorded, EventSource, events.WorkoutRecorded{
		ID:           created.ID,
		ExerciseName: created.ExerciseName,
		Sets:         created.Sets,
		Reps:         created.Reps,
		RecordedAt:   created.CreatedAt,
	}); err != nil {
		slog.ErrorContext(ctx, "Failed to publish workout event", "topic", events.Recorded.Name(), "error", err)
	}
	return created, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Workout, error) {
	workouts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return workouts, nil
}

// ListByExercise returns ErrNotFound when the exercise has no entries.
func (s *Service) ListByExercise(ctx context.Context, exerciseName string) ([]*domain.Workout, error) {
	workouts, err := s.repo.ListByExercise(ctx, exerciseName)
	if err != nil {
		return nil, err
	}
	if len(workouts) == 0 {
		return nil, notFound(exerciseName)
	}
	return workouts, nil
}

// Delete removes every entry for the exercise and returns how many went.
func (s *Service) Delete(ctx context.Context, exerciseName string) (int, error) {
	count, err := s.repo.DeleteByExercise(ctx, exerciseName)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, notFound(exerciseName)
	}
	s.metrics.CounterWorkoutsDeleted.Add(float64(count))

	if err := pubsub.Publish(ctx, s.pub, events.Deleted, EventSource, events.WorkoutsDeleted{
		ExerciseName: exerciseName,
		Count:        count,
	}); err != nil {
		slog.ErrorContext(ctx, "Failed to publish workout event", "topic", events.Deleted.Name(), "error", err)
	}
	return count, nil
}

// Summary returns the per-exercise totals kept by the progress tracker.
func (s *Service) Summary() []domain.ExerciseTotal {
	return s.tracker.Snapshot()
}

// NotFoundError names the exercise that has no entries. It matches domain.ErrNotFound.
type NotFoundError struct {
	ExerciseName string
}

func (e *NotFoundError) Error() string {
	return "No workout data found for exercise: " + e.ExerciseName
}

func (e *NotFoundError) Is(target error) bool {
	return target == domain.ErrNotFound
}

func notFound(exerciseName string) error {
	return &NotFoundError{ExerciseName: exerciseName}
}

// IsNotFound reports whether err is a missing-exercise error.
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
