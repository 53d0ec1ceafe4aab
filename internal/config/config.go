package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Storage backends for the workout data service.
const (
	StoreMemory   = "memory"
	StoreFile     = "file"
	StoreSurreal  = "surreal"
	StorePostgres = "postgres"
)

// Provider exposes configuration through getters so consumers can be handed
// a narrow mock in tests.
type Provider interface {
	GetAppAddr() string
	GetAppBaseURL() string
	GetSessionSecret() string
	GetSessionIdleTTL() time.Duration
	GetWorkoutAPIURL() string
	GetWorkoutAPIAddr() string
	GetWorkoutStore() string
	GetWorkoutDataDir() string
	GetDatabaseURL() string
	GetDBURL() string
	GetDBNs() string
	GetDBDb() string
	GetDBUser() string
	GetDBPass() string
	GetNotificationDuration() time.Duration
	GetLoginCheckEmailFormat() bool
	GetDarkMode() bool
	GetTracingEnabled() bool
	GetTracingServiceName() string
	GetTracingZipkinURL() string
	GetTracingSampleRatio() float64
}

// Config holds all configuration for the application.
type Config struct {
	AppAddr               string
	AppBaseURL            string
	SessionSecret         string
	SessionIdleTTL        time.Duration
	WorkoutAPIURL         string
	WorkoutAPIAddr        string
	WorkoutStore          string
	WorkoutDataDir        string
	DatabaseURL           string
	DBUrl                 string
	DBNs                  string
	DBDb                  string
	DBUser                string
	DBPass                string
	NotificationDuration  time.Duration
	LoginCheckEmailFormat bool
	DarkMode              bool
	TracingEnabled        bool
	TracingServiceName    string
	TracingZipkinURL      string
	TracingSampleRatio    float64
}

var _ Provider = (*Config)(nil)

// New loads configuration from a .env file, if present, and the environment.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv reads configuration from the environment only, applying defaults.
func FromEnv() *Config {
	cfg := &Config{
		AppAddr:               envOr("APP_ADDR", ":8080"),
		AppBaseURL:            envOr("APP_BASE_URL", "http://localhost:8080"),
		SessionSecret:         envOr("SESSION_SECRET", "dev-session-secret-change-me"),
		SessionIdleTTL:        durationOr("SESSION_IDLE_TTL", 30*time.Minute),
		WorkoutAPIURL:         envOr("WORKOUT_API_URL", "http://localhost:8000"),
		WorkoutAPIAddr:        envOr("WORKOUT_API_ADDR", ":8000"),
		WorkoutStore:          envOr("WORKOUT_STORE", StoreMemory),
		WorkoutDataDir:        envOr("WORKOUT_DATA_DIR", "data"),
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		DBUrl:                 os.Getenv("SURREAL_URL"),
		DBUser:                os.Getenv("SURREAL_USER"),
		DBPass:                os.Getenv("SURREAL_PASS"),
		DBNs:                  os.Getenv("SURREAL_NS"),
		DBDb:                  os.Getenv("SURREAL_DB"),
		NotificationDuration:  durationOr("NOTIFICATION_DURATION", 2000*time.Millisecond),
		LoginCheckEmailFormat: boolOr("LOGIN_CHECK_EMAIL_FORMAT", false),
		DarkMode:              boolOr("UI_DARK_MODE", false),
		TracingEnabled:        boolOr("PUBSUB_TRACING_ENABLED", false),
		TracingServiceName:    envOr("PUBSUB_TRACING_SERVICE_NAME", "sculpt"),
		TracingZipkinURL:      envOr("PUBSUB_TRACING_ZIPKIN_URL", "http://localhost:9411/api/v2/spans"),
		TracingSampleRatio:    floatOr("PUBSUB_TRACING_SAMPLE_RATIO", 1),
	}

	switch cfg.WorkoutStore {
	case StoreSurreal:
		if cfg.DBUrl == "" || cfg.DBNs == "" || cfg.DBDb == "" {
			log.Fatal("WORKOUT_STORE=surreal requires SURREAL_URL, SURREAL_NS and SURREAL_DB.")
		}
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			log.Fatal("WORKOUT_STORE=postgres requires DATABASE_URL.")
		}
	}

	return cfg
}

func (c *Config) GetAppAddr() string                     { return c.AppAddr }
func (c *Config) GetAppBaseURL() string                  { return c.AppBaseURL }
func (c *Config) GetSessionSecret() string               { return c.SessionSecret }
func (c *Config) GetSessionIdleTTL() time.Duration       { return c.SessionIdleTTL }
func (c *Config) GetWorkoutAPIURL() string               { return c.WorkoutAPIURL }
func (c *Config) GetWorkoutAPIAddr() string              { return c.WorkoutAPIAddr }
func (c *Config) GetWorkoutStore() string                { return c.WorkoutStore }
func (c *Config) GetWorkoutDataDir() string              { return c.WorkoutDataDir }
func (c *Config) GetDatabaseURL() string                 { return c.DatabaseURL }
func (c *Config) GetDBURL() string                       { return c.DBUrl }
func (c *Config) GetDBNs() string                        { return c.DBNs }
func (c *Config) GetDBDb() string                        { return c.DBDb }
func (c *Config) GetDBUser() string                      { return c.DBUser }
func (c *Config) GetDBPass() string                      { return c.DBPass }
func (c *Config) GetNotificationDuration() time.Duration { return c.NotificationDuration }
func (c *Config) GetLoginCheckEmailFormat() bool         { return c.LoginCheckEmailFormat }
func (c *Config) GetDarkMode() bool                      { return c.DarkMode }
func (c *Config) GetTracingEnabled() bool                { return c.TracingEnabled }
func (c *Config) GetTracingServiceName() string          { return c.TracingServiceName }
func (c *Config) GetTracingZipkinURL() string            { return c.TracingZipkinURL }
func (c *Config) GetTracingSampleRatio() float64         { return c.TracingSampleRatio }

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Invalid duration for %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}

func boolOr(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("Invalid boolean for %s=%q, using %t", key, v, fallback)
		return fallback
	}
	return b
}

func floatOr(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("Invalid number for %s=%q, using %g", key, v, fallback)
		return fallback
	}
	return f
}
