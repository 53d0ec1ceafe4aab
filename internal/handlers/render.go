package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	cmp "maragu.dev/gomponents"

	"github.com/nfrund/sculpt/internal/metrics"
	"github.com/nfrund/sculpt/internal/view"
	"github.com/nfrund/sculpt/web/src/templates/layouts"
)

// renderPage wraps content in the base layout with the pending flashes and
// renders it through the echo renderer.
func renderPage(c echo.Context, status int, title string, content cmp.Node, dark bool) error {
	flashes := view.GetFlashData(c)
	page := layouts.BaseWithOptions(title, flashes, view.AdaptGomponentToTempl(content), layouts.Options{Dark: dark})
	return c.Render(status, "", page)
}

// renderFragment renders nodes without the layout, for htmx swaps.
func renderFragment(c echo.Context, nodes ...cmp.Node) error {
	return c.Render(http.StatusOK, "", cmp.Group(nodes))
}

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

func countSubmission(m *metrics.Manager, form, outcome string) {
	if m != nil {
		m.CounterFormSubmissions.WithLabelValues(form, outcome).Inc()
	}
}
