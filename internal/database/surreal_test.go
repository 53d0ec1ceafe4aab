package database

import (
	"context"
	"os"
	"testing"

	"github.com/nfrund/sculpt/internal/config"
	"github.com/nfrund/sculpt/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedactDBURL(t *testing.T) {
	assert.Equal(t, "ws://***@localhost:8000/rpc", redactDBURL("ws://root:secret@localhost:8000/rpc"))
	assert.Equal(t, "ws://localhost:8000/rpc", redactDBURL("ws://localhost:8000/rpc"))
}

func TestSurrealWorkoutToDomain(t *testing.T) {
	rec := surrealWorkout{ExerciseName: "Squat", Sets: 3, Reps: 10}

	w := rec.toDomain()

	assert.Equal(t, "Squat", w.ExerciseName)
	assert.Equal(t, 30, w.Volume())
	assert.Empty(t, w.ID)
	assert.True(t, w.CreatedAt.IsZero())
}

// TestSurrealWorkoutStore runs against a real server when SURREAL_URL is set.
// It uses the sculpt_test database so real data is untouched.
func TestSurrealWorkoutStore(t *testing.T) {
	url := os.Getenv("SURREAL_URL")
	if url == "" {
		t.Skip("SURREAL_URL not set")
	}

	ctx := context.Background()
	db, err := NewSurrealDB(ctx, &config.Config{
		DBUrl:  url,
		DBUser: os.Getenv("SURREAL_USER"),
		DBPass: os.Getenv("SURREAL_PASS"),
		DBNs:   "sculpt_test",
		DBDb:   "sculpt_test",
	})
	require.NoError(t, err)
	defer db.Close(ctx)

	store := NewSurrealWorkoutStore(db)
	for _, name := range []string{"Squat", "Bench"} {
		_, err := store.DeleteByExercise(ctx, name)
		require.NoError(t, err)
	}

	created, err := store.Create(ctx, &domain.Workout{ExerciseName: "Squat", Sets: 3, Reps: 10})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	_, err = store.Create(ctx, &domain.Workout{ExerciseName: "Bench", Sets: 5, Reps: 5})
	require.NoError(t, err)

	squats, err := store.ListByExercise(ctx, "Squat")
	require.NoError(t, err)
	require.Len(t, squats, 1)
	assert.Equal(t, 3, squats[0].Sets)

	n, err := store.DeleteByExercise(ctx, "Squat")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = store.Create(ctx, nil)
	assert.Error(t, err)
}
