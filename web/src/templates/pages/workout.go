package pages

import (
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"

	"github.com/nfrund/sculpt/internal/validation"
	"github.com/nfrund/sculpt/internal/view/dto/workout"
	"github.com/nfrund/sculpt/web/src/templates/components"
)

const (
	// WorkoutFormID is the element swapped by htmx after a submission.
	WorkoutFormID = "workout-form"
	// WorkoutFormPath is where the form posts.
	WorkoutFormPath = "/workout_form"
	// WorkoutFieldPath receives per-field change events.
	WorkoutFieldPath = "/workout_form/field"
)

// WorkoutPage is the full workout entry page.
func WorkoutPage(form workout.FormData, toast workout.ToastData) cmp.Node {
	return g.Div(
		g.Class("container mx-auto px-6 py-12"),
		components.Toast(toast, false),
		WorkoutForm(form),
	)
}

// WorkoutForm is the swappable form fragment.
func WorkoutForm(d workout.FormData) cmp.Node {
	field := func(name, placeholder, typ string) cmp.Node {
		return components.Input(components.InputProps{
			Name:        name,
			Type:        typ,
			Placeholder: placeholder,
			Value:       d.Values[name],
			Error:       d.Errors[name],
			Disabled:    d.Busy,
			Attrs:       components.ChangeTrigger(WorkoutFieldPath, name),
		})
	}

	label := "Submit Workout"
	if d.Busy {
		label = "Saving..."
	}

	// A busy form cannot be submitted; it polls until the save settles.
	var swap cmp.Node = hx.Post(WorkoutFormPath)
	if d.Busy {
		swap = cmp.Group{hx.Get(WorkoutFormPath), hx.Trigger("every 1s")}
	}

	return g.Form(
		g.ID(WorkoutFormID),
		g.Method("post"),
		g.Action(WorkoutFormPath),
		swap,
		hx.Target("this"),
		hx.Swap("outerHTML"),
		g.Class("max-w-lg mx-auto bg-white shadow-lg rounded-xl p-8"),
		g.Aria("label", "Workout form"),
		g.H2(g.Class("text-2xl font-bold text-gray-900 mb-6"), cmp.Text("Input a new workout!")),
		components.Alert(d.Alert),
		field(validation.FieldExerciseName, "Exercise Name", "text"),
		field(validation.FieldSets, "Sets", "number"),
		field(validation.FieldReps, "Reps", "number"),
		g.Button(
			g.Type("button"),
			g.Class("mb-6 text-sm text-[#4C8DAE] hover:underline"),
			cmp.Text("+ Add Exercise"),
		),
		g.Div(
			g.Class("flex items-center justify-between"),
			g.A(g.Href("/Dashboard/MainDashboard"), g.Class("text-[#4C8DAE] hover:underline"), cmp.Text("Return Home")),
			components.PrimaryButton(label, d.Busy),
		),
	)
}
