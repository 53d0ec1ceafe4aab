package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nfrund/sculpt/internal/handlers"
	"github.com/nfrund/sculpt/internal/middleware"
	"github.com/nfrund/sculpt/web"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	rateLimiter := middleware.RateLimiter(s.formRate, s.metrics)

	s.E.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	s.E.GET("/", s.homeHandler.HomeGet)
	s.E.GET("/notfoundpage", s.homeHandler.NotFound)

	s.E.GET("/register", s.authHandler.RegisterGet)
	s.E.POST("/register", s.authHandler.RegisterPost, rateLimiter)

	s.E.GET("/login", s.authHandler.LoginGet)
	s.E.POST("/login", s.authHandler.LoginPost, rateLimiter)
	s.E.GET("/Login", handlers.RedirectTo("/login"))

	s.E.GET("/Dashboard/MainDashboard", s.dashboardHandler.DashboardGet)

	s.E.GET("/workout_form", s.workoutHandler.FormGet)
	s.E.POST("/workout_form", s.workoutHandler.SubmitPost, rateLimiter)
	s.E.POST("/workout_form/field", s.workoutHandler.FieldPost)
	s.E.GET("/workout_form/toast", s.workoutHandler.ToastGet)
	s.E.GET("/Workout_Form", handlers.RedirectTo("/workout_form"))

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	if s.gatherer != nil {
		s.E.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	}
}
