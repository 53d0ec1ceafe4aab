package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/sculpt/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// RequestMetrics records duration, in-flight count and status of every request.
func RequestMetrics(m *metrics.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			m.GaugeRequests.Inc()
			defer m.GaugeRequests.Dec()
			defer func(begin time.Time) {
				m.HistRequestDuration.Observe(time.Since(begin).Seconds())
			}(time.Now())

			err := next(c)

			m.CounterRequests.With(prometheus.Labels{
				"method": c.Request().Method,
				"status": strconv.Itoa(responseStatus(c, err)),
			}).Inc()

			return err
		}
	}
}

// RecoverMetrics counts panics before re-raising them to echo's Recover.
func RecoverMetrics(m *metrics.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					m.CounterHandleRequestPanic.Inc()
					panic(r)
				}
			}()
			return next(c)
		}
	}
}

// responseStatus is the status the client will see once echo's error handler
// has dealt with err.
func responseStatus(c echo.Context, err error) int {
	if err == nil || c.Response().Committed {
		return c.Response().Status
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}
