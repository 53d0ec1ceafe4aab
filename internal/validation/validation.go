// Package validation holds the field validators for the application's forms.
// Every validator maps raw field values to a FieldErrors map and never fails:
// a field is valid when its name is absent from the map.
package validation

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormKey is the FieldErrors key used for form-level (not field-level) errors.
const FormKey = "_form"

// Field names shared by the forms and their templates.
const (
	FieldExerciseName = "exercise_name"
	FieldSets         = "sets"
	FieldReps         = "reps"

	FieldEmail    = "email"
	FieldPassword = "password"

	FieldLastName  = "lastName"
	FieldFirstName = "firstName"
	FieldAge       = "age"
	FieldTerms     = "terms"
)

// RegistrationIncompleteMessage is the single alert shown when the registration guard fails.
const RegistrationIncompleteMessage = "Please fill in all fields and accept the terms"

// FieldErrors maps a field name to a human-readable message.
type FieldErrors map[string]string

// Valid reports whether no field failed.
func (fe FieldErrors) Valid() bool {
	return len(fe) == 0
}

// Has reports whether the given field has an error.
func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

// Clone returns a copy that can be handed out without sharing the map.
func (fe FieldErrors) Clone() FieldErrors {
	out := make(FieldErrors, len(fe))
	for k, v := range fe {
		out[k] = v
	}
	return out
}

// validate is shared by all validators; it caches struct metadata.
var validate = newValidator()

var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their form name instead of the Go field name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("posint", func(fl validator.FieldLevel) bool {
		n, err := LeadingInt(fl.Field().String())
		return err == nil && n > 0
	})
	_ = v.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
		return IsEmailShape(fl.Field().String())
	})
	return v
}

// messages holds the message for each (field, failed tag) pair.
var messages = map[string]map[string]string{
	FieldExerciseName: {"notblank": "Exercise name is required!"},
	FieldSets: {
		"required": "please input how many sets you did!",
		"posint":   "sets must be a whole number greater than 0",
	},
	FieldReps: {
		"required": "please input how many reps you did!",
		"posint":   "reps must be a whole number greater than 0",
	},
	FieldEmail: {
		"required":   "email is required!",
		"emailshape": "please enter a valid email address!",
	},
	FieldPassword: {"required": "password is required!"},
}

// collect runs the validator on s and converts the failures to FieldErrors.
// Only the first failing rule per field is reported.
func collect(s any) FieldErrors {
	errs := FieldErrors{}
	err := validate.Struct(s)
	if err == nil {
		return errs
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// InvalidValidationError only happens on programmer error (non-struct input).
		errs[FormKey] = err.Error()
		return errs
	}
	for _, fe := range verrs {
		field := fe.Field()
		if errs.Has(field) {
			continue
		}
		msg, ok := messages[field][fe.Tag()]
		if !ok {
			msg = field + " is invalid"
		}
		errs[field] = msg
	}
	return errs
}

// WorkoutInput is the raw text state of the workout form.
type WorkoutInput struct {
	ExerciseName string `form:"exercise_name" validate:"notblank"`
	Sets         string `form:"sets" validate:"required,posint"`
	Reps         string `form:"reps" validate:"required,posint"`
}

// ValidateWorkout checks the workout form: a trimmed exercise name, and sets
// and reps that parse as integers greater than zero.
func ValidateWorkout(values map[string]string) FieldErrors {
	return collect(WorkoutInput{
		ExerciseName: values[FieldExerciseName],
		Sets:         values[FieldSets],
		Reps:         values[FieldReps],
	})
}

// LoginInput is the raw text state of the login form.
type LoginInput struct {
	Email    string `form:"email" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type loginInputWithShape struct {
	Email    string `form:"email" validate:"required,emailshape"`
	Password string `form:"password" validate:"required"`
}

// ValidateLogin checks that email and password are present. No format or
// strength rules apply.
func ValidateLogin(values map[string]string) FieldErrors {
	return collect(LoginInput{
		Email:    values[FieldEmail],
		Password: values[FieldPassword],
	})
}

// ValidateLoginWithEmailShape is ValidateLogin plus the email shape check.
func ValidateLoginWithEmailShape(values map[string]string) FieldErrors {
	return collect(loginInputWithShape{
		Email:    values[FieldEmail],
		Password: values[FieldPassword],
	})
}

// IsEmailShape reports whether s looks like local@domain.tld.
func IsEmailShape(s string) bool {
	return emailShape.MatchString(s)
}

// LeadingInt reads the integer at the start of s after leading whitespace,
// ignoring whatever follows it, so "3.5" gives 3 and "12 reps" gives 12.
func LeadingInt(s string) (int, error) {
	t := strings.TrimLeft(s, " \t\n\r\f\v")
	end := 0
	if end < len(t) && (t[end] == '+' || t[end] == '-') {
		end++
	}
	digits := end
	for end < len(t) && t[end] >= '0' && t[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, &strconv.NumError{Func: "LeadingInt", Num: s, Err: strconv.ErrSyntax}
	}
	return strconv.Atoi(t[:end])
}

// RegistrationInput is the raw state of the registration form.
type RegistrationInput struct {
	LastName      string `form:"lastName" validate:"required"`
	FirstName     string `form:"firstName" validate:"required"`
	Age           string `form:"age" validate:"required"`
	Email         string `form:"email" validate:"required"`
	Password      string `form:"password" validate:"required"`
	TermsAccepted bool   `form:"terms" validate:"required"`
}

// Complete reports whether every field is filled in and the terms are accepted.
func (in RegistrationInput) Complete() bool {
	return validate.Struct(in) == nil
}

// RegistrationFromValues builds the registration input from form values.
// The terms checkbox counts as accepted for "on", "true", "yes" or "1".
func RegistrationFromValues(values map[string]string) RegistrationInput {
	return RegistrationInput{
		LastName:      values[FieldLastName],
		FirstName:     values[FieldFirstName],
		Age:           values[FieldAge],
		Email:         values[FieldEmail],
		Password:      values[FieldPassword],
		TermsAccepted: Checked(values[FieldTerms]),
	}
}

// Checked interprets a checkbox value.
func Checked(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "true", "yes", "1":
		return true
	}
	return false
}

// GuardRegistration is the all-or-nothing registration check. It never
// reports individual fields; a failure is a single form-level entry.
func GuardRegistration(values map[string]string) FieldErrors {
	if RegistrationFromValues(values).Complete() {
		return FieldErrors{}
	}
	return FieldErrors{FormKey: RegistrationIncompleteMessage}
}
