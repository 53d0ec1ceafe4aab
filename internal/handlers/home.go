package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/sculpt/web/src/templates/pages"
)

// HomeHandler serves the landing and not-found pages.
type HomeHandler struct {
	dark bool
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(dark bool) *HomeHandler {
	return &HomeHandler{dark: dark}
}

// HomeGet renders the landing page.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	return renderPage(c, http.StatusOK, "Home", pages.Landing(), h.dark)
}

// NotFound renders the not-found page with a 404 status.
func (h *HomeHandler) NotFound(c echo.Context) error {
	return renderPage(c, http.StatusNotFound, "Page not Found", pages.NotFound(), h.dark)
}

// RedirectTo returns a handler issuing a permanent redirect to target,
// keeping the query string.
func RedirectTo(target string) echo.HandlerFunc {
	return func(c echo.Context) error {
		if q := c.QueryString(); q != "" {
			return c.Redirect(http.StatusMovedPermanently, target+"?"+q)
		}
		return c.Redirect(http.StatusMovedPermanently, target)
	}
}
