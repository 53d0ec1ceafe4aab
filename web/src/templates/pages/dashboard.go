package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/nfrund/sculpt/internal/view/dto/workout"
	"github.com/nfrund/sculpt/web/src/templates/components"
)

// Dashboard shows the progress charts and the entry points to the forms.
// names are the display names matching data.Totals.
func Dashboard(data workout.DashboardData, names []string) cmp.Node {
	theme := components.ChartTheme{Dark: data.Dark}

	card := func(title, subtitle string, body cmp.Node) cmp.Node {
		return g.Div(
			g.Class("bg-white rounded-xl shadow p-6"),
			g.H3(g.Class("text-lg font-semibold text-gray-900"), cmp.Text(title)),
			g.P(g.Class("text-sm text-gray-500 mb-4"), cmp.Text(subtitle)),
			body,
		)
	}
	linkCard := func(label string) cmp.Node {
		return g.A(
			g.Href(WorkoutFormPath),
			g.Class("block bg-white rounded-xl shadow p-6 text-[#4C8DAE] font-medium hover:bg-[#E9E4D4] transition-colors"),
			cmp.Text(label),
		)
	}

	var totalsNode cmp.Node
	if len(data.Totals) == 0 {
		totalsNode = g.P(g.Class("text-gray-500"), cmp.Text("No workouts logged yet."))
	} else {
		totalsNode = cmp.Group{
			components.VolumeChart(theme, data.Totals, names),
			g.Ul(
				g.Class("mt-4 divide-y text-sm"),
				cmp.Map(indexes(len(data.Totals)), func(i int) cmp.Node {
					t := data.Totals[i]
					return g.Li(
						g.Class("flex justify-between py-2"),
						g.Span(cmp.Text(names[i])),
						g.Span(cmp.Textf("%d sets · %d reps · %d entries", t.Sets, t.Reps, t.Entries)),
					)
				}),
			),
		}
	}

	return g.Div(
		g.Class("container mx-auto px-6 py-10 space-y-8"),
		g.Div(
			g.H1(g.Class("text-3xl font-bold text-gray-900"), cmp.Text("Dashboard")),
			g.P(g.Class("text-gray-600"), cmp.Text("Welcome back! Here's what's happening.")),
		),
		cmp.If(data.Sample, g.P(
			g.Class("text-sm text-amber-700"),
			g.Role("status"),
			cmp.Text("Workout data is unavailable right now. Showing sample data."),
		)),
		g.Div(
			g.Class("grid gap-6 md:grid-cols-2"),
			card("Performance Metrics", "Track your progress over time", totalsNode),
			card("Analytics Overview", "Key insights and trends", components.MacroChart(theme)),
		),
		card("Progress", "Sample activity over the day", components.ProgressChart(theme)),
		g.Div(
			g.Class("grid gap-6 md:grid-cols-2"),
			linkCard("Input a new workout here!"),
			linkCard("Input new macro chart here!"),
		),
		components.LinkButton("/", "Return To Home"),
	)
}

func indexes(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
