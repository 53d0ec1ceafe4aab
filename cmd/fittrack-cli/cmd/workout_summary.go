package cmd

import (
	"fmt"

	"github.com/nfrund/sculpt/cmd/fittrack-cli/internal/output"
	"github.com/spf13/cobra"
)

var summaryOutputFormat string

// workoutSummaryCmd represents the workout summary command
var workoutSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show per-exercise totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := output.CheckFormat(summaryOutputFormat); err != nil {
			return err
		}

		ctx, cancel := commandContext(cmd)
		defer cancel()

		totals, err := newClient().Summary(ctx)
		if err != nil {
			return fmt.Errorf("workout summary: %w", err)
		}
		if summaryOutputFormat == output.FormatJSON {
			return output.TotalsJSON(cmd.OutOrStdout(), totals)
		}
		return output.TotalsTable(cmd.OutOrStdout(), totals)
	},
}

func init() {
	workoutCmd.AddCommand(workoutSummaryCmd)

	workoutSummaryCmd.Flags().StringVarP(&summaryOutputFormat, "format", "f", output.FormatTable, "Output format (table, json)")
}
