package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{
		"APP_ADDR", "APP_BASE_URL", "SESSION_IDLE_TTL", "WORKOUT_API_URL", "WORKOUT_API_ADDR",
		"WORKOUT_STORE", "WORKOUT_DATA_DIR", "NOTIFICATION_DURATION", "LOGIN_CHECK_EMAIL_FORMAT", "UI_DARK_MODE",
	} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()

	assert.Equal(t, ":8080", cfg.GetAppAddr())
	assert.Equal(t, "http://localhost:8000", cfg.GetWorkoutAPIURL())
	assert.Equal(t, ":8000", cfg.GetWorkoutAPIAddr())
	assert.Equal(t, StoreMemory, cfg.GetWorkoutStore())
	assert.Equal(t, "data", cfg.GetWorkoutDataDir())
	assert.Equal(t, 30*time.Minute, cfg.GetSessionIdleTTL())
	assert.Equal(t, 2000*time.Millisecond, cfg.GetNotificationDuration())
	assert.False(t, cfg.GetLoginCheckEmailFormat())
	assert.False(t, cfg.GetDarkMode())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("APP_ADDR", ":9090")
	t.Setenv("WORKOUT_STORE", StoreFile)
	t.Setenv("WORKOUT_DATA_DIR", "/var/lib/sculpt")
	t.Setenv("NOTIFICATION_DURATION", "500ms")
	t.Setenv("LOGIN_CHECK_EMAIL_FORMAT", "true")
	t.Setenv("UI_DARK_MODE", "1")

	cfg := FromEnv()

	assert.Equal(t, ":9090", cfg.GetAppAddr())
	assert.Equal(t, StoreFile, cfg.GetWorkoutStore())
	assert.Equal(t, "/var/lib/sculpt", cfg.GetWorkoutDataDir())
	assert.Equal(t, 500*time.Millisecond, cfg.GetNotificationDuration())
	assert.True(t, cfg.GetLoginCheckEmailFormat())
	assert.True(t, cfg.GetDarkMode())
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("WORKOUT_STORE", "")
	t.Setenv("NOTIFICATION_DURATION", "soon")
	t.Setenv("UI_DARK_MODE", "maybe")

	cfg := FromEnv()

	assert.Equal(t, 2000*time.Millisecond, cfg.GetNotificationDuration())
	assert.False(t, cfg.GetDarkMode())
}

func TestTracingSettings(t *testing.T) {
	t.Setenv("PUBSUB_TRACING_ENABLED", "")
	t.Setenv("PUBSUB_TRACING_SERVICE_NAME", "")
	t.Setenv("PUBSUB_TRACING_SAMPLE_RATIO", "")

	cfg := FromEnv()
	assert.False(t, cfg.GetTracingEnabled())
	assert.Equal(t, "sculpt", cfg.GetTracingServiceName())
	assert.Equal(t, 1.0, cfg.GetTracingSampleRatio())

	t.Setenv("PUBSUB_TRACING_ENABLED", "true")
	t.Setenv("PUBSUB_TRACING_SERVICE_NAME", "sculpt-api")
	t.Setenv("PUBSUB_TRACING_SAMPLE_RATIO", "0.25")

	cfg = FromEnv()
	assert.True(t, cfg.GetTracingEnabled())
	assert.Equal(t, "sculpt-api", cfg.GetTracingServiceName())
	assert.Equal(t, 0.25, cfg.GetTracingSampleRatio())

	t.Setenv("PUBSUB_TRACING_SAMPLE_RATIO", "half")
	assert.Equal(t, 1.0, FromEnv().GetTracingSampleRatio())
}
