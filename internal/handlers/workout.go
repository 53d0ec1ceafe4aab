package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/sculpt/internal/form"
	"github.com/nfrund/sculpt/internal/metrics"
	"github.com/nfrund/sculpt/internal/middleware"
	"github.com/nfrund/sculpt/internal/view"
	"github.com/nfrund/sculpt/internal/view/dto/workout"
	"github.com/nfrund/sculpt/internal/workspace"
	"github.com/nfrund/sculpt/web/src/templates/components"
	"github.com/nfrund/sculpt/web/src/templates/pages"
)

const (
	formWorkout = "workout"

	// SuccessMessage is shown in the toast after a stored workout.
	SuccessMessage = "Workout Successful!"
	// SubmitErrorPrefix starts the alert shown when the workout POST fails.
	SubmitErrorPrefix = "Error submitting workout: "

	toastPollMillis = 250
)

// WorkoutHandler serves the workout entry form. Form state lives in the
// session's workspace, so it survives between requests.
type WorkoutHandler struct {
	workspaces *workspace.Registry
	metrics    *metrics.Manager
	dark       bool
}

// NewWorkoutHandler creates a new WorkoutHandler. m may be nil.
func NewWorkoutHandler(workspaces *workspace.Registry, m *metrics.Manager, dark bool) *WorkoutHandler {
	return &WorkoutHandler{workspaces: workspaces, metrics: m, dark: dark}
}

func (h *WorkoutHandler) workspace(c echo.Context) (*workspace.Workspace, error) {
	id, err := view.WorkspaceID(c)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "session unavailable").SetInternal(err)
	}
	return h.workspaces.Get(id), nil
}

// FormGet renders the form with the session's current state. htmx requests
// get the form fragment only.
func (h *WorkoutHandler) FormGet(c echo.Context) error {
	ws, err := h.workspace(c)
	if err != nil {
		return err
	}
	return h.respond(c, ws, "")
}

// FieldPost handles a change event for one field. The field name comes from
// the HX-Trigger-Name header and the response is that field's error slot.
func (h *WorkoutHandler) FieldPost(c echo.Context) error {
	ws, err := h.workspace(c)
	if err != nil {
		return err
	}

	field := c.Request().Header.Get("HX-Trigger-Name")
	if field == "" {
		field = c.QueryParam("field")
	}
	err = ws.Form.Change(field, c.FormValue(field))
	switch {
	case errors.Is(err, form.ErrUnknownField):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, form.ErrBusy):
		// Inputs are disabled while saving; keep whatever is shown.
	case err != nil:
		return err
	}
	return renderFragment(c, components.FieldError(field, ws.Form.Errors()[field]))
}

// SubmitPost validates and submits the workout. The POST to the workout
// service runs detached from the request, so a browser that leaves does not
// cancel it.
func (h *WorkoutHandler) SubmitPost(c echo.Context) error {
	ws, err := h.workspace(c)
	if err != nil {
		return err
	}
	logger := middleware.FromContext(c.Request().Context())

	if err := ws.Form.Load(formValues(c, ws.Form.Fields())); errors.Is(err, form.ErrBusy) {
		countSubmission(h.metrics, formWorkout, metrics.OutcomeBusy)
		return h.respond(c, ws, "")
	}

	start := time.Now()
	err = ws.Form.Submit(context.WithoutCancel(c.Request().Context()))

	alert := ""
	switch {
	case err == nil:
		h.observe(start)
		countSubmission(h.metrics, formWorkout, metrics.OutcomeSuccess)
		ws.Notifier.Signal(SuccessMessage)
		logger.Info("Workout submitted")
	case errors.Is(err, form.ErrInvalid):
		countSubmission(h.metrics, formWorkout, metrics.OutcomeInvalid)
	case errors.Is(err, form.ErrBusy):
		countSubmission(h.metrics, formWorkout, metrics.OutcomeBusy)
	default:
		h.observe(start)
		countSubmission(h.metrics, formWorkout, metrics.OutcomeFailed)
		logger.Warn("Workout submission failed", "error", err)
		alert = SubmitErrorPrefix + err.Error()
	}

	return h.respond(c, ws, alert)
}

// ToastGet reports the notification state; a visible toast polls this.
func (h *WorkoutHandler) ToastGet(c echo.Context) error {
	ws, err := h.workspace(c)
	if err != nil {
		return err
	}
	return renderFragment(c, components.Toast(toastData(ws), false))
}

func (h *WorkoutHandler) respond(c echo.Context, ws *workspace.Workspace, alert string) error {
	data := workout.FormData{
		Values: ws.Form.Values(),
		Errors: ws.Form.Errors(),
		Busy:   ws.Form.Busy(),
		Alert:  alert,
	}
	toast := toastData(ws)

	if isHTMX(c) {
		return renderFragment(c, pages.WorkoutForm(data), components.Toast(toast, true))
	}
	return renderPage(c, http.StatusOK, "Workout", pages.WorkoutPage(data, toast), h.dark)
}

func (h *WorkoutHandler) observe(start time.Time) {
	if h.metrics != nil {
		h.metrics.HistSubmissionDuration.Observe(time.Since(start).Seconds())
	}
}

func toastData(ws *workspace.Workspace) workout.ToastData {
	return workout.ToastData{
		Visible:    ws.Notifier.Visible(),
		Message:    ws.Notifier.Message(),
		PollMillis: toastPollMillis,
	}
}
