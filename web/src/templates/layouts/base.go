package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/nfrund/sculpt/internal/view"
)

const (
	htmxSrc = "https://unpkg.com/htmx.org@2.0.4"
	apexSrc = "https://cdn.jsdelivr.net/npm/apexcharts"
)

// Options tweak the shell around a page.
type Options struct {
	Dark bool
}

// BaseWithOptions wraps page content in the document shell, header and
// flash messages.
func BaseWithOptions(title string, flashes view.FlashData, content templ.Component, opts Options) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		body := view.AdaptTemplToGomponent(ctx, content)
		return document(title, flashes, body, opts).Render(w)
	})
}

func document(title string, flashes view.FlashData, body cmp.Node, opts Options) cmp.Node {
	return g.Doctype(
		g.HTML(
			g.Lang("en"),
			g.Head(
				g.Meta(g.Charset("utf-8")),
				g.Meta(g.Name("viewport"), g.Content("width=device-width, initial-scale=1")),
				g.TitleEl(cmp.Text(CalculateTitle(title))),
				g.Script(g.Src("https://cdn.tailwindcss.com")),
				g.Link(g.Rel("stylesheet"), g.Href("/static/css/app.css")),
				g.Script(g.Src(htmxSrc), g.Defer()),
				g.Script(g.Src(apexSrc), g.Defer()),
				g.Script(g.Src("/static/js/charts.js"), g.Defer()),
			),
			g.Body(
				cmp.If(opts.Dark, g.Class("dark")),
				Header(),
				Flashes(flashes),
				g.Main(g.Class("min-h-screen"), body),
			),
		),
	)
}

// Header is the top navigation bar.
func Header() cmp.Node {
	navLink := func(label string) cmp.Node {
		return g.A(
			g.Href("/notfoundpage"),
			g.Class("text-[#4C8DAE] hover:text-[#3A6B8E] font-medium transition-colors"),
			cmp.Text(label),
		)
	}
	return g.Header(
		g.Class("bg-white shadow-sm"),
		g.Nav(
			g.Class("container mx-auto flex items-center justify-between px-6 py-4"),
			g.A(g.Href("/"), g.Class("text-2xl font-bold text-[#4C8DAE]"), cmp.Text(Brand)),
			g.Div(
				g.Class("hidden md:flex space-x-8"),
				navLink("About"),
				navLink("Team"),
				navLink("Services"),
				navLink("Blog"),
			),
			g.Div(
				g.Class("flex space-x-4"),
				g.A(g.Href("/login"), g.Class("bg-[#F8F9FA] text-[#4C8DAE] border border-[#4C8DAE] px-6 py-2 rounded-md hover:bg-[#DDE2E6] transition-colors"), cmp.Text("Login")),
				g.A(g.Href("/register"), g.Class("text-[#4C8DAE] border border-[#4C8DAE] px-6 py-2 rounded-md hover:bg-[#E9E4D4] transition-colors"), cmp.Text("Register")),
			),
		),
	)
}

// Flashes renders pending success and error messages.
func Flashes(f view.FlashData) cmp.Node {
	if f.Empty() {
		return nil
	}
	return g.Div(
		g.ID("flashes"),
		g.Class("container mx-auto px-6 pt-4 space-y-2"),
		cmp.Map(f.Success, func(msg string) cmp.Node {
			return g.Div(g.Class("rounded-md bg-green-50 px-4 py-3 text-green-800"), g.Role("status"), cmp.Text(msg))
		}),
		cmp.Map(f.Error, func(msg string) cmp.Node {
			return g.Div(g.Class("rounded-md bg-red-50 px-4 py-3 text-red-800"), g.Role("alert"), cmp.Text(msg))
		}),
	)
}
