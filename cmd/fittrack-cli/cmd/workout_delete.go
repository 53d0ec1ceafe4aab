package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// workoutDeleteCmd represents the workout delete command
var workoutDeleteCmd = &cobra.Command{
	Use:   "delete EXERCISE",
	Short: "Delete every workout for an exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		msg, err := newClient().Delete(ctx, args[0])
		if err != nil {
			return fmt.Errorf("delete workouts: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	},
}

func init() {
	workoutCmd.AddCommand(workoutDeleteCmd)
}
