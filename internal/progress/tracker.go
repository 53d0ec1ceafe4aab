// Package progress keeps running per-exercise totals fed by workout events.
package progress

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/nfrund/sculpt/internal/domain"
	"github.com/nfrund/sculpt/internal/events"
	"github.com/nfrund/sculpt/internal/pubsub"
)

type Tracker struct {
	mu     sync.RWMutex
	totals map[string]*domain.ExerciseTotal
}

func NewTracker() *Tracker {
	return &Tracker{totals: make(map[string]*domain.ExerciseTotal)}
}

// Seed replaces the totals with ones computed from every stored workout.
func (t *Tracker) Seed(ctx context.Context, repo domain.WorkoutRepository) error {
	workouts, err := repo.List(ctx)
	if err != nil {
		return fmt.Errorf("seed progress: %w", err)
	}

	totals := make(map[string]*domain.ExerciseTotal)
	for _, w := range workouts {
		add(totals, w.ExerciseName, w.Sets, w.Reps)
	}

	t.mu.Lock()
	t.totals = totals
	t.mu.Unlock()
	return nil
}

// Subscribe keeps the tracker current from the bus until ctx is done.
func (t *Tracker) Subscribe(ctx context.Context, sub pubsub.Subscriber) error {
	if err := pubsub.Subscribe(ctx, sub, events.Recorded, func(ctx context.Context, e events.WorkoutRecorded) error {
		t.Record(e)
		return nil
	}); err != nil {
		return fmt.Errorf("subscribe %s: %w", events.Recorded.Name(), err)
	}
	if err := pubsub.Subscribe(ctx, sub, events.Deleted, func(ctx context.Context, e events.WorkoutsDeleted) error {
		t.Forget(e.ExerciseName)
		slog.DebugContext(ctx, "Progress cleared", "exercise", e.ExerciseName, "count", e.Count)
		return nil
	}); err != nil {
		return fmt.Errorf("subscribe %s: %w", events.Deleted.Name(), err)
	}
	return nil
}

func (t *Tracker) Record(e events.WorkoutRecorded) {
	t.mu.Lock()
	defer t.mu.Unlock()
	add(t.totals, e.ExerciseName, e.Sets, e.Reps)
}

func (t *Tracker) Forget(exerciseName string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.totals, exerciseName)
}

// Snapshot returns a copy of the totals ordered by exercise name.
func (t *Tracker) Snapshot() []domain.ExerciseTotal {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]domain.ExerciseTotal, 0, len(t.totals))
	for _, total := range t.totals {
		out = append(out, *total)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ExerciseName < out[j].ExerciseName
	})
	return out
}

func add(totals map[string]*domain.ExerciseTotal, name string, sets, reps int) {
	total, ok := totals[name]
	if !ok {
		total = &domain.ExerciseTotal{ExerciseName: name}
		totals[name] = total
	}
	total.Entries++
	total.Sets += sets
	total.Reps += reps
	total.Volume += sets * reps
}
