package server

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/sculpt/internal/handlers"
	"github.com/nfrund/sculpt/internal/middleware"
)

// setupErrorHandling renders 404s as the not-found page and logs unhandled
// errors with a stack trace before falling back to echo's default response.
func setupErrorHandling(e *echo.Echo, home *handlers.HomeHandler) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			if he.Code == http.StatusNotFound && home != nil {
				rerr := home.NotFound(c)
				if rerr == nil {
					return
				}
				slog.Error("Failed to render not-found page", "error", rerr)
			}
			if he.Internal != nil {
				middleware.FromContext(c.Request().Context()).Error("Request failed", "status", he.Code, "error", he.Internal)
			}
		} else {
			middleware.FromContext(c.Request().Context()).Error("Internal Server Error (Unhandled)",
				"error", err.Error(),
				"stack_trace", string(debug.Stack()),
			)
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}
