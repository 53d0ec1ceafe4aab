package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/sculpt/internal/domain"
	"github.com/nfrund/sculpt/internal/form"
	"github.com/nfrund/sculpt/internal/metrics"
	"github.com/nfrund/sculpt/internal/middleware"
	"github.com/nfrund/sculpt/internal/validation"
	"github.com/nfrund/sculpt/internal/view"
	"github.com/nfrund/sculpt/internal/view/dto/auth"
	"github.com/nfrund/sculpt/web/src/templates/pages"
)

// DashboardPath is where a successful login lands.
const DashboardPath = "/Dashboard/MainDashboard"

// LoginSuccessMessage is flashed on the page a login redirects to.
const LoginSuccessMessage = "Logged in successfully!"

const (
	formLogin    = "login"
	formRegister = "register"
)

var loginFields = []string{validation.FieldEmail, validation.FieldPassword}

var registerFields = []string{
	validation.FieldLastName, validation.FieldFirstName, validation.FieldAge,
	validation.FieldEmail, validation.FieldPassword, validation.FieldTerms,
}

// AuthHandler serves the login and registration forms. Neither talks to a
// backend: login redirects and registration only echoes the record back.
type AuthHandler struct {
	checkEmailShape bool
	dark            bool
	metrics         *metrics.Manager
	now             func() time.Time
}

// AuthOptions configure an AuthHandler.
type AuthOptions struct {
	// CheckEmailShape adds the local@domain.tld check to login.
	CheckEmailShape bool
	Dark            bool
	Metrics         *metrics.Manager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(opts AuthOptions) *AuthHandler {
	return &AuthHandler{
		checkEmailShape: opts.CheckEmailShape,
		dark:            opts.Dark,
		metrics:         opts.Metrics,
		now:             time.Now,
	}
}

// LoginGet renders an empty login form.
func (h *AuthHandler) LoginGet(c echo.Context) error {
	return renderPage(c, http.StatusOK, "Login", pages.Login(auth.LoginData{}), h.dark)
}

// LoginPost validates the credentials and sends the browser to the dashboard.
func (h *AuthHandler) LoginPost(c echo.Context) error {
	validate := validation.ValidateLogin
	if h.checkEmailShape {
		validate = validation.ValidateLoginWithEmailShape
	}

	ctrl := form.New(loginFields, validate, nil, form.Options{})
	_ = ctrl.Load(formValues(c, loginFields))

	if err := ctrl.Submit(c.Request().Context()); err != nil {
		countSubmission(h.metrics, formLogin, metrics.OutcomeInvalid)
		data := auth.LoginData{Email: ctrl.Value(validation.FieldEmail), Errors: ctrl.Errors()}
		return renderPage(c, http.StatusUnprocessableEntity, "Login", pages.Login(data), h.dark)
	}

	countSubmission(h.metrics, formLogin, metrics.OutcomeSuccess)
	middleware.FromContext(c.Request().Context()).Info("Login accepted")
	view.SetFlashSuccess(c, LoginSuccessMessage)
	return c.Redirect(http.StatusSeeOther, DashboardPath)
}

// RegisterGet renders an empty registration form.
func (h *AuthHandler) RegisterGet(c echo.Context) error {
	return renderPage(c, http.StatusOK, "Register", pages.Register(auth.RegisterData{}), h.dark)
}

// RegisterPost applies the all-or-nothing guard and, when it passes, renders
// the confirmation. The record is not stored anywhere.
func (h *AuthHandler) RegisterPost(c echo.Context) error {
	var record *domain.RegistrationRecord
	effect := func(_ context.Context, values map[string]string) error {
		in := validation.RegistrationFromValues(values)
		record = &domain.RegistrationRecord{
			LastName:       in.LastName,
			FirstName:      in.FirstName,
			Age:            in.Age,
			Email:          in.Email,
			Password:       in.Password,
			TermsAccepted:  in.TermsAccepted,
			SubmissionTime: h.now(),
		}
		return nil
	}

	ctrl := form.New(registerFields, validation.GuardRegistration, effect, form.Options{ResetOnSuccess: true})
	_ = ctrl.Load(formValues(c, registerFields))

	err := ctrl.Submit(c.Request().Context())
	if errors.Is(err, form.ErrInvalid) {
		countSubmission(h.metrics, formRegister, metrics.OutcomeInvalid)
		data := auth.RegisterData{Values: ctrl.Values(), Alert: ctrl.Errors()[validation.FormKey]}
		return renderPage(c, http.StatusUnprocessableEntity, "Register", pages.Register(data), h.dark)
	}
	if err != nil {
		countSubmission(h.metrics, formRegister, metrics.OutcomeFailed)
		return err
	}

	countSubmission(h.metrics, formRegister, metrics.OutcomeSuccess)
	return renderPage(c, http.StatusOK, "Register", pages.Register(auth.RegisterData{Record: record}), h.dark)
}

func formValues(c echo.Context, fields []string) map[string]string {
	values := make(map[string]string, len(fields))
	for _, f := range fields {
		values[f] = c.FormValue(f)
	}
	return values
}
