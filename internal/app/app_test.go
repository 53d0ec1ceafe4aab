package app

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/sculpt/internal/config"
	"github.com/nfrund/sculpt/internal/progress"
	"github.com/nfrund/sculpt/internal/server"
	"github.com/nfrund/sculpt/internal/workoutapi"
	"github.com/nfrund/sculpt/internal/workspace"
)

func postWorkout(t *testing.T, srv *workoutapi.Server, body string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/workout_data", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.E.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestWorkoutAPIMemoryStore(t *testing.T) {
	a := NewWorkoutAPI(&config.Config{WorkoutStore: config.StoreMemory, AppBaseURL: "http://localhost:8080"})
	defer a.Close()

	srv, err := Invoke[*workoutapi.Server](a)
	require.NoError(t, err)
	again, err := Invoke[*workoutapi.Server](a)
	require.NoError(t, err)
	assert.Same(t, srv, again, "services are singletons")

	postWorkout(t, srv, `{"exercise_name":"Squat","sets":3,"reps":10}`)

	tracker, err := Invoke[*progress.Tracker](a)
	require.NoError(t, err)
	assert.Eventually(t, func() bool { return len(tracker.Snapshot()) == 1 }, time.Second, 10*time.Millisecond)

	rec := httptest.NewRecorder()
	srv.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "sculpt_workout_api_workouts_recorded")
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestWorkoutAPIFileStoreSeedsTracker(t *testing.T) {
	cfg := &config.Config{WorkoutStore: config.StoreFile, WorkoutDataDir: t.TempDir()}

	first := NewWorkoutAPI(cfg)
	srv, err := Invoke[*workoutapi.Server](first)
	require.NoError(t, err)
	postWorkout(t, srv, `{"exercise_name":"Bench","sets":2,"reps":5}`)
	first.Close()

	second := NewWorkoutAPI(cfg)
	defer second.Close()
	tracker, err := Invoke[*progress.Tracker](second)
	require.NoError(t, err)

	totals := tracker.Snapshot()
	require.Len(t, totals, 1)
	assert.Equal(t, "Bench", totals[0].ExerciseName)
	assert.Equal(t, 10, totals[0].Volume)
}

func TestWorkoutAPIUnknownStore(t *testing.T) {
	a := NewWorkoutAPI(&config.Config{WorkoutStore: "cassandra"})
	defer a.Close()

	_, err := Invoke[*workoutapi.Server](a)
	assert.ErrorContains(t, err, `unknown workout store "cassandra"`)
}

func TestWebApp(t *testing.T) {
	a := NewWeb(&config.Config{
		SessionSecret:        "a-very-secret-key-for-testing-!",
		SessionIdleTTL:       time.Minute,
		WorkoutAPIURL:        "http://127.0.0.1:1",
		NotificationDuration: time.Second,
	})

	srv, err := Invoke[*server.Server](a)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	reg, err := Invoke[*workspace.Registry](a)
	require.NoError(t, err)
	reg.Get("session")
	assert.Equal(t, 1, reg.Len())

	a.Close()
	assert.Equal(t, 0, reg.Len(), "closing the app stops the sweeper and drops workspaces")
}
