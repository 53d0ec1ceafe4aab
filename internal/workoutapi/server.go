package workoutapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/sculpt/internal/metrics"
	"github.com/nfrund/sculpt/internal/middleware"
	"github.com/nfrund/sculpt/internal/workout"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 10 * time.Second

// DefaultOrigins are the browser dev servers allowed to call the API.
var DefaultOrigins = []string{
	"http://localhost:5173",
	"http://127.0.0.1:5173",
	"http://localhost:3000",
	"http://127.0.0.1:3000",
}

// Options configure the workout data service.
type Options struct {
	// ExtraOrigins are appended to DefaultOrigins, typically the web app's base URL.
	ExtraOrigins []string
	Metrics      *metrics.Manager
	// Gatherer serves /metrics when set.
	Gatherer prometheus.Gatherer
}

// Server wraps the echo instance of the workout data service.
type Server struct {
	E *echo.Echo
}

// NewServer builds the echo instance with middleware and routes.
func NewServer(svc *Service, opts Options) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = ErrorHandler

	e.Use(echomw.RequestID())
	e.Use(middleware.Logger)
	e.Use(echomw.Recover())
	if opts.Metrics != nil {
		e.Use(middleware.RecoverMetrics(opts.Metrics))
		e.Use(middleware.RequestMetrics(opts.Metrics))
	}
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     append(append([]string{}, DefaultOrigins...), opts.ExtraOrigins...),
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
	}))

	h := NewHandler(svc)
	RegisterRoutes(e, h)
	if opts.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	return &Server{E: e}
}

// RegisterRoutes mounts the workout data endpoints on e.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/health", h.HealthGet)

	g := e.Group(workout.Path)
	g.POST("", h.CreatePost)
	g.GET("", h.ListGet)
	g.GET("/summary", h.SummaryGet)
	g.GET("/:exercise_name", h.ByExerciseGet)
	g.DELETE("/:exercise_name", h.ByExerciseDelete)
}

// Start serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("Workout data service listening", "addr", addr)
		if err := s.E.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.E.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// ErrorHandler renders every error as {"detail": "..."}.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	detail := http.StatusText(code)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		detail = fmt.Sprint(he.Message)
	} else {
		middleware.FromContext(c.Request().Context()).Error("Unhandled error", "error", err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, map[string]string{"detail": detail})
	}
	if err != nil {
		slog.Error("Failed to write error response", "error", err)
	}
}
