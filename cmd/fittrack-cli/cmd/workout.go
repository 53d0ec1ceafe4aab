package cmd

import (
	"github.com/spf13/cobra"
)

// workoutCmd represents the workout command
var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Record and inspect workouts",
	Long: `The workout command talks to the workout data service.

Available subcommands:
  add       Validate and record a workout
  list      List recorded workouts, optionally for one exercise
  delete    Delete every workout for an exercise
  summary   Show per-exercise totals

Examples:
  # Record three sets of ten bench presses
  fittrack-cli workout add --exercise "Bench Press" --sets 3 --reps 10

  # List everything as JSON
  fittrack-cli workout list --format json

  # Remove an exercise
  fittrack-cli workout delete "Bench Press"

Use "fittrack-cli workout [command] --help" for more information about a specific command.`,
}

func init() {
	rootCmd.AddCommand(workoutCmd)
}
