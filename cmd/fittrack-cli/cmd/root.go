package cmd

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/nfrund/sculpt/internal/workout"
	"github.com/spf13/cobra"
)

var (
	apiURL         string
	requestTimeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "fittrack-cli",
	Short: "Sculpt workout CLI",
	Long: `fittrack-cli logs and inspects workouts on the Sculpt workout data service.

Available commands:
  workout add       Validate and record a workout
  workout list      List recorded workouts
  workout delete    Delete every workout for an exercise
  workout summary   Show per-exercise totals
  version           Print the CLI version

The service URL comes from --api-url, then WORKOUT_API_URL (a .env file is read
if present), then http://localhost:8000.

Use "fittrack-cli [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newClient() *workout.Client {
	return workout.NewClient(resolveAPIURL(), nil)
}

func resolveAPIURL() string {
	if apiURL != "" {
		return apiURL
	}
	_ = godotenv.Load()
	if v := os.Getenv("WORKOUT_API_URL"); v != "" {
		return v
	}
	return workout.DefaultBaseURL
}

// commandContext bounds a single service call.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if requestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, requestTimeout)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Workout data service base URL")
	rootCmd.PersistentFlags().DurationVar(&requestTimeout, "timeout", 10*time.Second, "Timeout for each service call (0 disables it)")
}
