package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nfrund/sculpt/internal/domain"
	"github.com/nfrund/sculpt/internal/middleware"
	"github.com/nfrund/sculpt/internal/view/dto/workout"
	"github.com/nfrund/sculpt/web/src/templates/pages"
)

const summaryTimeout = 3 * time.Second

var errNoSummary = errors.New("no workout summary source configured")

// SampleTotals stand in for real totals when the workout service is unreachable.
var SampleTotals = []domain.ExerciseTotal{
	{ExerciseName: "bench press", Entries: 3, Sets: 9, Reps: 72, Volume: 216},
	{ExerciseName: "squat", Entries: 2, Sets: 8, Reps: 40, Volume: 160},
	{ExerciseName: "deadlift", Entries: 1, Sets: 3, Reps: 15, Volume: 45},
}

// Summarizer returns per-exercise totals.
type Summarizer interface {
	Summary(ctx context.Context) ([]domain.ExerciseTotal, error)
}

// DashboardHandler renders the dashboard.
type DashboardHandler struct {
	summary Summarizer
	dark    bool
}

// NewDashboardHandler creates a new DashboardHandler. summary may be nil, in
// which case sample data is always shown.
func NewDashboardHandler(summary Summarizer, dark bool) *DashboardHandler {
	return &DashboardHandler{summary: summary, dark: dark}
}

// DashboardGet shows the charts, using live totals when they can be fetched.
func (h *DashboardHandler) DashboardGet(c echo.Context) error {
	data := workout.DashboardData{Dark: h.dark}

	totals, err := h.totals(c.Request().Context())
	if err != nil {
		middleware.FromContext(c.Request().Context()).Warn("Workout summary unavailable, using sample data", "error", err)
		data.Sample = true
		totals = SampleTotals
	}
	data.Totals = totals

	return renderPage(c, http.StatusOK, "Dashboard", pages.Dashboard(data, displayNames(totals)), h.dark)
}

func (h *DashboardHandler) totals(ctx context.Context) ([]domain.ExerciseTotal, error) {
	if h.summary == nil {
		return nil, errNoSummary
	}
	ctx, cancel := context.WithTimeout(ctx, summaryTimeout)
	defer cancel()
	return h.summary.Summary(ctx)
}

// displayNames title-cases exercise names. A Caser holds state, so one is
// made per call.
func displayNames(totals []domain.ExerciseTotal) []string {
	caser := cases.Title(language.English)
	names := make([]string, len(totals))
	for i, t := range totals {
		names[i] = caser.String(t.ExerciseName)
	}
	return names
}
