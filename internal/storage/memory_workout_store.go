package storage

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nfrund/sculpt/internal/domain"
)

var _ domain.WorkoutRepository = (*MemoryWorkoutStore)(nil)

// MemoryWorkoutStore keeps workouts in process memory. Contents are lost on restart.
type MemoryWorkoutStore struct {
	mu       sync.RWMutex
	workouts []*domain.Workout
	now      func() time.Time
}

func NewMemoryWorkoutStore() *MemoryWorkoutStore {
	return &MemoryWorkoutStore{now: time.Now}
}

func (s *MemoryWorkoutStore) Create(ctx context.Context, w *domain.Workout) (*domain.Workout, error) {
	if w == nil {
		return nil, errors.New("workout to create cannot be nil")
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}

	stored := *w
	stored.ID = uuid.NewString()
	stored.CreatedAt = s.now().UTC()

	s.mu.Lock()
	s.workouts = append(s.workouts, &stored)
	s.mu.Unlock()

	out := stored
	return &out, nil
}

func (s *MemoryWorkoutStore) List(ctx context.Context) ([]*domain.Workout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyWorkouts(s.workouts, nil), nil
}

func (s *MemoryWorkoutStore) ListByExercise(ctx context.Context, exerciseName string) ([]*domain.Workout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyWorkouts(s.workouts, func(w *domain.Workout) bool {
		return w.ExerciseName == exerciseName
	}), nil
}

func (s *MemoryWorkoutStore) DeleteByExercise(ctx context.Context, exerciseName string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.workouts[:0]
	deleted := 0
	for _, w := range s.workouts {
		if w.ExerciseName == exerciseName {
			deleted++
			continue
		}
		kept = append(kept, w)
	}
	for i := len(kept); i < len(s.workouts); i++ {
		s.workouts[i] = nil
	}
	s.workouts = kept
	return deleted, nil
}

func copyWorkouts(in []*domain.Workout, keep func(*domain.Workout) bool) []*domain.Workout {
	out := make([]*domain.Workout, 0, len(in))
	for _, w := range in {
		if keep != nil && !keep(w) {
			continue
		}
		c := *w
		out = append(out, &c)
	}
	return out
}
