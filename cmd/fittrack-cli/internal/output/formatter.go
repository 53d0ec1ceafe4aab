// Package output formats workout data for the terminal.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/nfrund/sculpt/internal/domain"
	"github.com/nfrund/sculpt/internal/workout"
)

// Supported output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// CheckFormat rejects formats other than table and json.
func CheckFormat(format string) error {
	switch format {
	case FormatTable, FormatJSON:
		return nil
	default:
		return fmt.Errorf("unsupported output format '%s'. Use 'table' or 'json'", format)
	}
}

// WorkoutsTable writes workouts as an aligned table.
func WorkoutsTable(out io.Writer, entries []workout.Entry) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "EXERCISE\tSETS\tREPS")
	fmt.Fprintln(w, "--------\t----\t----")

	if len(entries) == 0 {
		fmt.Fprintln(w, "No workouts found")
	} else {
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%d\t%d\n", truncateString(e.ExerciseName, 40), e.Sets, e.Reps)
		}
	}
	return w.Flush()
}

// WorkoutsJSON writes workouts with their count.
func WorkoutsJSON(out io.Writer, entries []workout.Entry) error {
	if entries == nil {
		entries = []workout.Entry{}
	}
	return encode(out, struct {
		Workouts []workout.Entry `json:"workouts"`
		Count    int             `json:"count"`
	}{
		Workouts: entries,
		Count:    len(entries),
	})
}

// TotalsTable writes per-exercise totals as an aligned table.
func TotalsTable(out io.Writer, totals []domain.ExerciseTotal) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "EXERCISE\tENTRIES\tSETS\tREPS\tVOLUME")
	fmt.Fprintln(w, "--------\t-------\t----\t----\t------")

	if len(totals) == 0 {
		fmt.Fprintln(w, "No workouts found")
	} else {
		for _, t := range totals {
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n",
				truncateString(t.ExerciseName, 40),
				t.Entries,
				t.Sets,
				t.Reps,
				t.Volume)
		}
	}
	return w.Flush()
}

// TotalsJSON writes per-exercise totals as a JSON array.
func TotalsJSON(out io.Writer, totals []domain.ExerciseTotal) error {
	if totals == nil {
		totals = []domain.ExerciseTotal{}
	}
	return encode(out, totals)
}

func encode(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// truncateString truncates a string to maxLen characters, adding "..." if truncated
func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return "..."
	}
	return string(r[:maxLen-3]) + "..."
}
