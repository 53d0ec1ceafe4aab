package workout

import (
	"github.com/nfrund/sculpt/internal/form"
	"github.com/nfrund/sculpt/internal/validation"
)

// Fields lists the workout form fields in display order.
var Fields = []string{validation.FieldExerciseName, validation.FieldSets, validation.FieldReps}

// NewForm builds the workout form controller. Edited fields drop their error
// right away and a successful submission empties the form.
func NewForm(effect form.Effect) *form.Controller {
	return form.New(Fields, validation.ValidateWorkout, effect, form.Options{
		ClearOnChange:  true,
		ResetOnSuccess: true,
	})
}
