package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/sculpt/internal/logging"
	"github.com/nfrund/sculpt/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRequestMetrics(t *testing.T) {
	m := metrics.NewTestManager()
	e := echo.New()
	e.Use(RequestMetrics(m))
	e.GET("/ok", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/missing", func(c echo.Context) error { return echo.ErrNotFound })

	for _, path := range []string{"/ok", "/ok", "/missing"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(m.CounterRequests.WithLabelValues("GET", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CounterRequests.WithLabelValues("GET", "404")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.GaugeRequests))
}

func TestLoggerInjectsRequestLogger(t *testing.T) {
	e := echo.New()
	e.Use(Logger)
	var injected bool
	e.GET("/", func(c echo.Context) error {
		injected = FromContext(c.Request().Context()) != nil
		return c.NoContent(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, injected)
}

func TestLoggerLogsOutcome(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(logging.NewLogger(&buf, "json", "debug"))
	t.Cleanup(func() { slog.SetDefault(prev) })

	e := echo.New()
	e.Use(echomw.RequestID())
	e.Use(Logger)
	e.GET("/missing", func(c echo.Context) error { return echo.ErrNotFound })

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	req.Header.Set("HX-Request", "true")
	e.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, `"msg":"Request handled"`)
	assert.Contains(t, out, `"level":"WARN"`)
	assert.Contains(t, out, `"status":404`)
	assert.Contains(t, out, `"htmx":true`)
	assert.Contains(t, out, `"path":"/missing"`)
}
