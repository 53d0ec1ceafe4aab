package workout

import (
	"github.com/nfrund/sculpt/internal/domain"
	"github.com/nfrund/sculpt/internal/validation"
)

// FormData is the view model for the workout entry form.
type FormData struct {
	Values map[string]string
	Errors validation.FieldErrors
	Busy   bool
	// Alert is the blocking error shown after a failed submission.
	Alert string
}

// ToastData is the state of the success notification.
type ToastData struct {
	Visible bool
	Message string
	// PollMillis is how often a visible toast asks whether it is still shown.
	PollMillis int
}

// DashboardData is the view model for the dashboard.
type DashboardData struct {
	Totals []domain.ExerciseTotal
	// Sample is true when Totals could not be loaded and placeholder data is shown.
	Sample bool
	Dark   bool
}
