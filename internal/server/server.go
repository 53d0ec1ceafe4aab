package server

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/nfrund/sculpt/internal/config"
	"github.com/nfrund/sculpt/internal/handlers"
	"github.com/nfrund/sculpt/internal/metrics"
	"github.com/nfrund/sculpt/internal/middleware"
	"github.com/nfrund/sculpt/internal/rendering"
	"github.com/nfrund/sculpt/internal/workspace"
)

const sessionMaxAge = 86400 * 7

// Dependencies are the collaborators the web server is built from.
type Dependencies struct {
	Cfg config.Provider
	// Summary feeds the dashboard; nil shows sample data.
	Summary    handlers.Summarizer
	Workspaces *workspace.Registry
	Metrics    *metrics.Manager
	// Gatherer serves /metrics when set.
	Gatherer prometheus.Gatherer
	// FormRate bounds form POSTs per second per client; zero uses the default.
	FormRate int
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	E                *echo.Echo
	Cfg              config.Provider
	homeHandler      *handlers.HomeHandler
	authHandler      *handlers.AuthHandler
	dashboardHandler *handlers.DashboardHandler
	workoutHandler   *handlers.WorkoutHandler
	metrics          *metrics.Manager
	gatherer         prometheus.Gatherer
	formRate         int
}

// New creates the web server with its middleware stack. Routes are added by
// RegisterRoutes.
func New(deps Dependencies) *Server {
	cfg := deps.Cfg
	dark := cfg.GetDarkMode()

	e := echo.New()
	e.HideBanner = true
	e.Renderer = rendering.NewUniversalRenderer()

	homeHandler := handlers.NewHomeHandler(dark)
	setupErrorHandling(e, homeHandler)

	e.Use(echomw.RequestID())
	e.Use(middleware.Logger)
	e.Use(echomw.Recover())
	if deps.Metrics != nil {
		e.Use(middleware.RecoverMetrics(deps.Metrics))
		e.Use(middleware.RequestMetrics(deps.Metrics))
	}

	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	authHandler := handlers.NewAuthHandler(handlers.AuthOptions{
		CheckEmailShape: cfg.GetLoginCheckEmailFormat(),
		Dark:            dark,
		Metrics:         deps.Metrics,
	})

	return &Server{
		E:                e,
		Cfg:              cfg,
		homeHandler:      homeHandler,
		authHandler:      authHandler,
		dashboardHandler: handlers.NewDashboardHandler(deps.Summary, dark),
		workoutHandler:   handlers.NewWorkoutHandler(deps.Workspaces, deps.Metrics, dark),
		metrics:          deps.Metrics,
		gatherer:         deps.Gatherer,
		formRate:         deps.FormRate,
	}
}
