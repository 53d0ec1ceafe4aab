package server

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/sculpt/internal/handlers"
)

func TestHTTPErrorHandler_WithStackTrace(t *testing.T) {
	e := echo.New()

	var logBuffer bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuffer, &slog.HandlerOptions{AddSource: true}))
	originalLogger := slog.Default()
	slog.SetDefault(logger)
	defer slog.SetDefault(originalLogger)

	setupErrorHandling(e, nil)

	e.GET("/test-unhandled-error", func(c echo.Context) error {
		return errors.New("a deliberate unhandled error occurred")
	})

	req := httptest.NewRequest(http.MethodGet, "/test-unhandled-error", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	logOutput := logBuffer.String()
	assert.Contains(t, logOutput, "Internal Server Error (Unhandled)")
	assert.Contains(t, logOutput, "error=\"a deliberate unhandled error occurred\"")
	assert.Contains(t, logOutput, "stack_trace=")
	assert.Contains(t, logOutput, "runtime/debug/stack.go")
	assert.Contains(t, logOutput, "internal/server/server_test.go")
}

func TestHTTPErrorHandler_NotFoundPage(t *testing.T) {
	e := echo.New()
	e.Renderer = nil
	setupErrorHandling(e, handlers.NewHomeHandler(false))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	// Without a renderer the page cannot be drawn; the status must still be 404.
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
