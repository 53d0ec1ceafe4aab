package cmd

import (
	"fmt"

	"github.com/nfrund/sculpt/cmd/fittrack-cli/internal/output"
	"github.com/nfrund/sculpt/internal/workout"
	"github.com/spf13/cobra"
)

var (
	listOutputFormat   string
	listExerciseFilter string
)

// workoutListCmd represents the workout list command
var workoutListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded workouts",
	Long: `List the workouts stored by the workout data service.

Examples:
  fittrack-cli workout list                       # every workout as a table
  fittrack-cli workout list --exercise Squat      # only one exercise
  fittrack-cli workout list --format json         # machine-readable output

Output formats:
  table - Human-readable table format (default)
  json  - JSON object with the workouts and their count`,
	RunE: workoutListHandler,
}

func workoutListHandler(cmd *cobra.Command, args []string) error {
	if err := output.CheckFormat(listOutputFormat); err != nil {
		return err
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	client := newClient()
	var (
		entries []workout.Entry
		err     error
	)
	if listExerciseFilter != "" {
		entries, err = client.ListByExercise(ctx, listExerciseFilter)
	} else {
		entries, err = client.List(ctx)
	}
	if err != nil {
		return fmt.Errorf("list workouts: %w", err)
	}

	if listOutputFormat == output.FormatJSON {
		return output.WorkoutsJSON(cmd.OutOrStdout(), entries)
	}
	if listExerciseFilter != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Workouts for exercise '%s':\n\n", listExerciseFilter)
	}
	return output.WorkoutsTable(cmd.OutOrStdout(), entries)
}

func init() {
	workoutCmd.AddCommand(workoutListCmd)

	workoutListCmd.Flags().StringVarP(&listOutputFormat, "format", "f", output.FormatTable, "Output format (table, json)")
	workoutListCmd.Flags().StringVarP(&listExerciseFilter, "exercise", "e", "", "Only list workouts for this exercise")
}
