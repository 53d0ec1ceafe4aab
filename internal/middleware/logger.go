package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
)

type contextKey string

const loggerKey = contextKey("logger")

// Logger injects a request-scoped logger carrying the request id, method and
// path, then logs one line per request once the handler returns. It must run
// after echo's RequestID middleware.
func Logger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		logger := slog.Default().With(
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			"method", req.Method,
			"path", req.URL.Path,
		)
		c.SetRequest(req.WithContext(WithLogger(req.Context(), logger)))

		start := time.Now()
		err := next(c)

		level := slog.LevelDebug
		if err != nil {
			level = slog.LevelWarn
		}
		logger.Log(req.Context(), level, "Request handled",
			"status", responseStatus(c, err),
			"latency", time.Since(start),
			"htmx", req.Header.Get("HX-Request") == "true",
			"error", err,
		)
		return err
	}
}

// WithLogger stores logger on ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the request logger, or the default logger outside a request.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
