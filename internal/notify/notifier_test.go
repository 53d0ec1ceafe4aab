package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNewDefaultsDuration(t *testing.T) {
	assert.Equal(t, DefaultDuration, New(0).Duration())
	assert.Equal(t, 2000*time.Millisecond, New(-1).Duration())
	assert.Equal(t, time.Second, New(time.Second).Duration())
}

func TestSignalShowsThenHides(t *testing.T) {
	n := New(50 * time.Millisecond)
	defer n.Stop()
	assert.False(t, n.Visible())

	n.Signal("Workout submitted successfully!")

	assert.True(t, n.Visible())
	assert.Equal(t, "Workout submitted successfully!", n.Message())
	assert.Eventually(t, func() bool { return !n.Visible() }, time.Second, 5*time.Millisecond)
	assert.Equal(t, "", n.Message())
}

func TestResignalExtendsWindow(t *testing.T) {
	n := New(150 * time.Millisecond)
	defer n.Stop()

	n.Signal("first")
	time.Sleep(100 * time.Millisecond)
	n.Signal("second")
	time.Sleep(80 * time.Millisecond)

	// 180ms after the first signal, but only 80ms after the second.
	assert.True(t, n.Visible())
	assert.Equal(t, "second", n.Message())
	assert.Eventually(t, func() bool { return !n.Visible() }, time.Second, 5*time.Millisecond)
}

func TestStopHidesImmediately(t *testing.T) {
	n := New(time.Hour)
	n.Signal("saved")

	n.Stop()

	assert.False(t, n.Visible())
}
