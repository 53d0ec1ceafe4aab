package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/sculpt/internal/metrics"
)

func TestRateLimiter(t *testing.T) {
	m := metrics.NewTestManager()
	e := echo.New()
	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	}
	e.POST("/workout_form", handler, RateLimiter(2, m))

	post := func(remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/workout_form", nil)
		req.RemoteAddr = remoteAddr
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	t.Run("allows a burst per client", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			require.Equal(t, http.StatusOK, post("192.0.2.1:1234").Code, "request %d should be allowed", i+1)
		}
	})

	t.Run("rejects past the burst and counts it", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			require.Equal(t, http.StatusOK, post("192.0.2.2:1234").Code)
		}

		rec := post("192.0.2.2:1234")
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, RateLimitedMessage, rec.Body.String())
		assert.Equal(t, "1", rec.Header().Get("Retry-After"))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterRateLimited.WithLabelValues("/workout_form")))
	})

	t.Run("other clients keep their own budget", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, post("192.0.2.3:1234").Code)
	})
}

func TestRateLimiterDefaultsWithoutMetrics(t *testing.T) {
	e := echo.New()
	e.POST("/login", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, RateLimiter(0, nil))

	var last int
	for i := 0; i <= DefaultFormRate; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "198.51.100.7:4000"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		last = rec.Code
	}
	assert.Equal(t, http.StatusTooManyRequests, last)
}
