package cmd

import (
	"errors"
	"fmt"

	"github.com/nfrund/sculpt/internal/form"
	"github.com/nfrund/sculpt/internal/validation"
	"github.com/nfrund/sculpt/internal/workout"
	"github.com/spf13/cobra"
)

const (
	addSuccessMessage = "Workout Successful!"
	addErrorPrefix    = "Error submitting workout: "
)

var errWorkoutInvalid = errors.New("workout has validation errors")

var (
	addExercise string
	addSets     string
	addReps     string
)

// workoutAddCmd represents the workout add command
var workoutAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Validate and record a workout",
	Long: `Validate a workout with the same rules as the web form and post it to the
workout data service. Sets and reps are taken as text so that the validation
messages match the web form exactly.

Examples:
  fittrack-cli workout add --exercise "Squat" --sets 5 --reps 5`,
	RunE: workoutAddHandler,
}

func workoutAddHandler(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	ctrl := workout.NewForm(workout.SubmitEffect(newClient()))
	if err := ctrl.Load(map[string]string{
		validation.FieldExerciseName: addExercise,
		validation.FieldSets:         addSets,
		validation.FieldReps:         addReps,
	}); err != nil {
		return err
	}

	err := ctrl.Submit(ctx)
	switch {
	case errors.Is(err, form.ErrInvalid):
		errs := ctrl.Errors()
		for _, field := range workout.Fields {
			if msg, ok := errs[field]; ok {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", field, msg)
			}
		}
		return errWorkoutInvalid
	case err != nil:
		fmt.Fprintf(cmd.ErrOrStderr(), "%s%v\n", addErrorPrefix, err)
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), addSuccessMessage)
	return nil
}

func init() {
	workoutCmd.AddCommand(workoutAddCmd)

	workoutAddCmd.Flags().StringVarP(&addExercise, "exercise", "e", "", "Exercise name")
	workoutAddCmd.Flags().StringVarP(&addSets, "sets", "s", "", "Number of sets")
	workoutAddCmd.Flags().StringVarP(&addReps, "reps", "r", "", "Number of reps per set")
}
