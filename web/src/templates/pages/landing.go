package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/nfrund/sculpt/web/src/templates/components"
)

// Landing is the marketing hero section.
func Landing() cmp.Node {
	return g.Section(
		g.Class("container mx-auto px-6 py-24 text-center"),
		g.H1(
			g.Class("text-5xl font-extrabold text-gray-900 mb-6"),
			cmp.Text("Start your journey with "),
			g.Span(g.Class("text-[#4C8DAE]"), cmp.Text("Sculpt.ai")),
		),
		g.P(g.Class("text-xl text-gray-600 mb-10"), cmp.Text("The premiere fitness dashboard and coaching app.")),
		g.Div(
			g.Class("flex justify-center gap-4"),
			g.A(
				g.Href("/register"),
				g.Class("bg-[#4C8DAE] text-white px-6 py-3 rounded-md hover:bg-[#3A6B8E] transition-colors"),
				cmp.Text("Get started"),
			),
			components.LinkButton("/notfoundpage", "Contact sales team"),
		),
	)
}

// NotFound is shown for every unmatched route.
func NotFound() cmp.Node {
	return g.Section(
		g.Class("container mx-auto px-6 py-24 text-center"),
		g.H1(g.Class("text-4xl font-bold text-gray-900 mb-8"), cmp.Text("404: Page not Found!")),
		components.LinkButton("/", "Return to Home"),
	)
}
