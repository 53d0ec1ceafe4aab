package workout

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/nfrund/sculpt/internal/form"
	"github.com/nfrund/sculpt/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitPostsExactBody(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, Path, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, `{"exercise_name":"Squat","sets":3,"reps":10}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())
	created, err := c.Submit(context.Background(), Entry{ExerciseName: "Squat", Sets: 3, Reps: 10})

	require.NoError(t, err)
	assert.Equal(t, &Entry{ExerciseName: "Squat", Sets: 3, Reps: 10}, created)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestNon2xxReturnsStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"Error inserting data: boom"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())
	_, err := c.Submit(context.Background(), Entry{ExerciseName: "Squat", Sets: 3, Reps: 10})

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Equal(t, `HTTP error! status 500: {"detail":"Error inserting data: boom"}`, err.Error())
}

func TestStatusErrorWithoutBody(t *testing.T) {
	err := &StatusError{StatusCode: 502}
	assert.Equal(t, "HTTP error! status 502", err.Error())
}

func TestNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, nil).List(context.Background())
	assert.Error(t, err)
}

func TestNewClientDefaults(t *testing.T) {
	assert.Equal(t, DefaultBaseURL+Path, NewClient("", nil).Endpoint())
	assert.Equal(t, "http://api.test"+Path, NewClient("http://api.test/", nil).Endpoint())
}

func TestEntryFromValues(t *testing.T) {
	e, err := EntryFromValues(map[string]string{
		validation.FieldExerciseName: "  Deadlift ",
		validation.FieldSets:         " 5",
		validation.FieldReps:         "3 ",
	})
	require.NoError(t, err)
	assert.Equal(t, Entry{ExerciseName: "  Deadlift ", Sets: 5, Reps: 3}, e)

	e, err = EntryFromValues(map[string]string{
		validation.FieldExerciseName: "Squat",
		validation.FieldSets:         "3.5",
		validation.FieldReps:         "12 reps",
	})
	require.NoError(t, err)
	assert.Equal(t, Entry{ExerciseName: "Squat", Sets: 3, Reps: 12}, e)

	_, err = EntryFromValues(map[string]string{validation.FieldSets: "x", validation.FieldReps: "3"})
	assert.Error(t, err)
}

func TestWorkoutFormAgainstService(t *testing.T) {
	var calls int32
	fail := atomic.Bool{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		if fail.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		body, _ := io.ReadAll(r.Body)
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	f := NewForm(SubmitEffect(NewClient(srv.URL, srv.Client())))

	t.Run("empty name makes no request", func(t *testing.T) {
		require.NoError(t, f.Load(map[string]string{
			validation.FieldExerciseName: "",
			validation.FieldSets:         "3",
			validation.FieldReps:         "10",
		}))
		assert.ErrorIs(t, f.Submit(context.Background()), form.ErrInvalid)
		assert.True(t, f.Errors().Has(validation.FieldExerciseName))
		assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
	})

	t.Run("failure keeps values", func(t *testing.T) {
		fail.Store(true)
		require.NoError(t, f.Change(validation.FieldExerciseName, "Squat"))
		err := f.Submit(context.Background())

		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, "Squat", f.Value(validation.FieldExerciseName))
		assert.False(t, f.Busy())
	})

	t.Run("success clears values", func(t *testing.T) {
		fail.Store(false)
		require.NoError(t, f.Submit(context.Background()))
		assert.Equal(t, "", f.Value(validation.FieldExerciseName))
		assert.Equal(t, "", f.Value(validation.FieldSets))
		assert.Equal(t, "", f.Value(validation.FieldReps))
	})
}
