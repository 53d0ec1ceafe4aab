package workoutapi

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/sculpt/internal/domain"
	"github.com/nfrund/sculpt/internal/middleware"
	"github.com/nfrund/sculpt/internal/workout"
)

// Handler serves the /workout_data endpoints.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// createRequest uses pointers so a missing field is distinguishable from zero.
type createRequest struct {
	ExerciseName *string `json:"exercise_name"`
	Sets         *int    `json:"sets"`
	Reps         *int    `json:"reps"`
}

func (r createRequest) missing() []string {
	var fields []string
	if r.ExerciseName == nil {
		fields = append(fields, "exercise_name")
	}
	if r.Sets == nil {
		fields = append(fields, "sets")
	}
	if r.Reps == nil {
		fields = append(fields, "reps")
	}
	return fields
}

// CreatePost handles POST /workout_data.
func (h *Handler) CreatePost(c echo.Context) error {
	var req createRequest
	if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "Invalid workout body")
	}
	if missing := req.missing(); len(missing) > 0 {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "Missing field(s): "+strings.Join(missing, ", "))
	}

	created, err := h.svc.Record(c.Request().Context(), workout.Entry{
		ExerciseName: *req.ExerciseName,
		Sets:         *req.Sets,
		Reps:         *req.Reps,
	})
	if errors.Is(err, domain.ErrInvalidWorkout) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	if err != nil {
		middleware.FromContext(c.Request().Context()).Error("Failed to store workout", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("Error inserting data: %v", err))
	}

	return c.JSON(http.StatusOK, workout.FromDomain(created))
}

// ListGet handles GET /workout_data.
func (h *Handler) ListGet(c echo.Context) error {
	workouts, err := h.svc.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("Error fetching data: %v", err))
	}
	return c.JSON(http.StatusOK, toEntries(workouts))
}

// ByExerciseGet handles GET /workout_data/:exercise_name.
func (h *Handler) ByExerciseGet(c echo.Context) error {
	name := exerciseParam(c)
	workouts, err := h.svc.ListByExercise(c.Request().Context(), name)
	if IsNotFound(err) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("Error fetching data: %v", err))
	}
	return c.JSON(http.StatusOK, toEntries(workouts))
}

// ByExerciseDelete handles DELETE /workout_data/:exercise_name.
func (h *Handler) ByExerciseDelete(c echo.Context) error {
	name := exerciseParam(c)
	count, err := h.svc.Delete(c.Request().Context(), name)
	if IsNotFound(err) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("Error deleting data: %v", err))
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Successfully deleted %d workout entries for exercise: %s", count, name),
	})
}

// SummaryGet handles GET /workout_data/summary.
func (h *Handler) SummaryGet(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Summary())
}

// HealthGet handles GET /health.
func (h *Handler) HealthGet(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

func exerciseParam(c echo.Context) string {
	raw := c.Param("exercise_name")
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}

func toEntries(workouts []*domain.Workout) []workout.Entry {
	entries := make([]workout.Entry, 0, len(workouts))
	for _, w := range workouts {
		entries = append(entries, workout.FromDomain(w))
	}
	return entries
}
