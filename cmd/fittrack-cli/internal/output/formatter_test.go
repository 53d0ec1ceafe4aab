package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/nfrund/sculpt/internal/domain"
	"github.com/nfrund/sculpt/internal/workout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckFormat(t *testing.T) {
	assert.NoError(t, CheckFormat(FormatTable))
	assert.NoError(t, CheckFormat(FormatJSON))
	assert.EqualError(t, CheckFormat("yaml"), "unsupported output format 'yaml'. Use 'table' or 'json'")
}

func TestWorkoutsTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WorkoutsTable(&buf, []workout.Entry{
		{ExerciseName: "Squat", Sets: 5, Reps: 5},
		{ExerciseName: "Bench Press", Sets: 3, Reps: 10},
	}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"EXERCISE", "SETS", "REPS"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"Squat", "5", "5"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"Bench", "Press", "3", "10"}, strings.Fields(lines[3]))
}

func TestWorkoutsTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WorkoutsTable(&buf, nil))
	assert.Contains(t, buf.String(), "No workouts found")
}

func TestWorkoutsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WorkoutsJSON(&buf, nil))

	var got struct {
		Workouts []workout.Entry `json:"workouts"`
		Count    int             `json:"count"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.NotNil(t, got.Workouts)
	assert.Zero(t, got.Count)
	assert.Contains(t, buf.String(), `"workouts": []`)
}

func TestTotalsTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, TotalsTable(&buf, []domain.ExerciseTotal{
		{ExerciseName: "Squat", Entries: 2, Sets: 8, Reps: 40, Volume: 200},
	}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"Squat", "2", "8", "40", "200"}, strings.Fields(lines[2]))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", truncateString("short", 10))
	assert.Equal(t, "abcdefg...", truncateString("abcdefghijklmnop", 10))
	assert.Equal(t, "...", truncateString("abcdef", 3))
}
