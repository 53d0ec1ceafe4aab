package components

import (
	"fmt"

	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"

	"github.com/nfrund/sculpt/internal/view/dto/workout"
)

// ToastID is the element id of the notification container.
const ToastID = "toast"

// ToastPath is polled by a visible toast until it hides itself.
const ToastPath = "/workout_form/toast"

// Toast renders the success notification. A visible toast polls ToastPath
// and replaces itself; a hidden one is an empty placeholder.
func Toast(d workout.ToastData, oob bool) cmp.Node {
	if !d.Visible {
		return g.Div(g.ID(ToastID), cmp.If(oob, hx.SwapOOB("true")))
	}
	poll := d.PollMillis
	if poll <= 0 {
		poll = 500
	}
	return g.Div(
		g.ID(ToastID),
		cmp.If(oob, hx.SwapOOB("true")),
		hx.Get(ToastPath),
		hx.Trigger(fmt.Sprintf("every %dms", poll)),
		hx.Swap("outerHTML"),
		g.Class("fixed top-4 right-4 z-50"),
		g.Div(
			g.Class("flex items-center rounded-lg bg-white px-4 py-3 shadow-lg text-green-700 border border-green-200"),
			g.Role("alert"),
			g.Span(g.Class("font-medium"), cmp.Text(d.Message)),
		),
	)
}
