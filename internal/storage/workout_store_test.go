package storage

import (
	"context"
	"testing"

	"github.com/nfrund/sculpt/internal/domain"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseRepository runs the shared repository contract against any store.
func exerciseRepository(t *testing.T, repo domain.WorkoutRepository) {
	ctx := context.Background()

	t.Run("Create assigns id and timestamp", func(t *testing.T) {
		created, err := repo.Create(ctx, &domain.Workout{ExerciseName: "Squat", Sets: 3, Reps: 10})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.False(t, created.CreatedAt.IsZero())
		assert.Equal(t, 30, created.Volume())
	})

	t.Run("Create rejects invalid workouts", func(t *testing.T) {
		_, err := repo.Create(ctx, &domain.Workout{ExerciseName: "Squat", Sets: 0, Reps: 10})
		assert.ErrorIs(t, err, domain.ErrInvalidWorkout)

		_, err = repo.Create(ctx, nil)
		assert.Error(t, err)
	})

	t.Run("List keeps insertion order", func(t *testing.T) {
		_, err := repo.Create(ctx, &domain.Workout{ExerciseName: "Bench", Sets: 5, Reps: 5})
		require.NoError(t, err)
		_, err = repo.Create(ctx, &domain.Workout{ExerciseName: "Squat", Sets: 2, Reps: 8})
		require.NoError(t, err)

		all, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, []string{"Squat", "Bench", "Squat"}, names(all))
	})

	t.Run("ListByExercise filters by exact name", func(t *testing.T) {
		squats, err := repo.ListByExercise(ctx, "Squat")
		require.NoError(t, err)
		assert.Len(t, squats, 2)

		none, err := repo.ListByExercise(ctx, "squat")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("DeleteByExercise reports the count", func(t *testing.T) {
		n, err := repo.DeleteByExercise(ctx, "Squat")
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		n, err = repo.DeleteByExercise(ctx, "Squat")
		require.NoError(t, err)
		assert.Equal(t, 0, n)

		all, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Bench"}, names(all))
	})
}

func names(workouts []*domain.Workout) []string {
	out := make([]string, 0, len(workouts))
	for _, w := range workouts {
		out = append(out, w.ExerciseName)
	}
	return out
}

func TestMemoryWorkoutStore(t *testing.T) {
	exerciseRepository(t, NewMemoryWorkoutStore())
}

func TestMemoryWorkoutStoreReturnsCopies(t *testing.T) {
	store := NewMemoryWorkoutStore()
	ctx := context.Background()
	_, err := store.Create(ctx, &domain.Workout{ExerciseName: "Row", Sets: 4, Reps: 12})
	require.NoError(t, err)

	all, err := store.List(ctx)
	require.NoError(t, err)
	all[0].Sets = 99

	again, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, again[0].Sets)
}

func TestFileWorkoutStore(t *testing.T) {
	// No disk I/O: the store runs on afero's in-memory filesystem.
	memFs := afero.NewMemMapFs()
	store, err := NewFileWorkoutStore(memFs, "data")
	require.NoError(t, err)

	exerciseRepository(t, store)

	exists, err := afero.Exists(memFs, "data/"+WorkoutsFile)
	require.NoError(t, err)
	assert.True(t, exists)

	t.Run("reopened store sees persisted data", func(t *testing.T) {
		reopened, err := NewFileWorkoutStore(memFs, "data")
		require.NoError(t, err)

		all, err := reopened.List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"Bench"}, names(all))
	})
}

func TestFileWorkoutStoreEmptyAndCorrupt(t *testing.T) {
	memFs := afero.NewMemMapFs()
	store, err := NewFileWorkoutStore(memFs, "data")
	require.NoError(t, err)

	all, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)

	require.NoError(t, afero.WriteFile(memFs, "data/"+WorkoutsFile, []byte("{not json"), 0644))
	_, err = store.List(context.Background())
	assert.Error(t, err)
}
