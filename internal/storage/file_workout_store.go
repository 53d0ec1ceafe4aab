package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nfrund/sculpt/internal/domain"
	"github.com/spf13/afero"
)

// WorkoutsFile is the name of the JSON document holding every workout.
const WorkoutsFile = "workouts.json"

var _ domain.WorkoutRepository = (*FileWorkoutStore)(nil)

// FileWorkoutStore persists workouts as a single JSON array on an afero
// filesystem. Writes go to a temp file that is renamed over the original.
type FileWorkoutStore struct {
	mu   sync.Mutex
	fs   afero.Fs
	path string
	now  func() time.Time
}

// NewFileWorkoutStore creates a store rooted at dir on fs.
func NewFileWorkoutStore(fs afero.Fs, dir string) (*FileWorkoutStore, error) {
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileWorkoutStore{
		fs:   fs,
		path: filepath.Join(dir, WorkoutsFile),
		now:  time.Now,
	}, nil
}

// NewOsFileWorkoutStore creates a store on the real filesystem.
func NewOsFileWorkoutStore(dir string) (*FileWorkoutStore, error) {
	return NewFileWorkoutStore(afero.NewOsFs(), dir)
}

func (s *FileWorkoutStore) Create(ctx context.Context, w *domain.Workout) (*domain.Workout, error) {
	if w == nil {
		return nil, errors.New("workout to create cannot be nil")
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	workouts, err := s.load()
	if err != nil {
		return nil, err
	}

	stored := *w
	stored.ID = uuid.NewString()
	stored.CreatedAt = s.now().UTC()
	workouts = append(workouts, &stored)

	if err := s.save(workouts); err != nil {
		return nil, err
	}
	out := stored
	return &out, nil
}

func (s *FileWorkoutStore) List(ctx context.Context) ([]*domain.Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *FileWorkoutStore) ListByExercise(ctx context.Context, exerciseName string) ([]*domain.Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	workouts, err := s.load()
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Workout, 0, len(workouts))
	for _, w := range workouts {
		if w.ExerciseName == exerciseName {
			out = append(out, w)
		}
	}
	return out, nil
}

func (s *FileWorkoutStore) DeleteByExercise(ctx context.Context, exerciseName string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	workouts, err := s.load()
	if err != nil {
		return 0, err
	}
	kept := make([]*domain.Workout, 0, len(workouts))
	for _, w := range workouts {
		if w.ExerciseName != exerciseName {
			kept = append(kept, w)
		}
	}
	deleted := len(workouts) - len(kept)
	if deleted == 0 {
		return 0, nil
	}
	if err := s.save(kept); err != nil {
		return 0, err
	}
	return deleted, nil
}

// load reads the document; a missing file is an empty store.
func (s *FileWorkoutStore) load() ([]*domain.Workout, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []*domain.Workout{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	if len(data) == 0 {
		return []*domain.Workout{}, nil
	}

	var workouts []*domain.Workout
	if err := json.Unmarshal(data, &workouts); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return workouts, nil
}

func (s *FileWorkoutStore) save(workouts []*domain.Workout) error {
	data, err := json.MarshalIndent(workouts, "", "  ")
	if err != nil {
		return fmt.Errorf("encode workouts: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}
