package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/nfrund/sculpt/internal/metrics"
)

// DefaultFormRate bounds form POSTs per client IP.
const DefaultFormRate = 10

// RateLimitedMessage is the body of a rejected request.
const RateLimitedMessage = "Too many requests. Please try again later."

// RateLimiter limits requests per client IP to perSecond with a burst of the
// same size. Non-positive values use DefaultFormRate. Rejections carry a
// Retry-After header and are counted on m when it is not nil.
func RateLimiter(perSecond int, m *metrics.Manager) echo.MiddlewareFunc {
	if perSecond <= 0 {
		perSecond = DefaultFormRate
	}
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(perSecond),
		Burst:     perSecond,
		ExpiresIn: 3 * time.Minute,
	})

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			if m != nil {
				m.CounterRateLimited.WithLabelValues(c.Path()).Inc()
			}
			FromContext(c.Request().Context()).Warn("Rate limit exceeded", "client", identifier)
			// One second refills at least one token.
			c.Response().Header().Set("Retry-After", "1")
			return c.String(http.StatusTooManyRequests, RateLimitedMessage)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusForbidden, "client address unavailable").SetInternal(err)
		},
	})
}
