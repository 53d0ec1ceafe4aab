package auth

import (
	"github.com/nfrund/sculpt/internal/domain"
	"github.com/nfrund/sculpt/internal/validation"
)

// LoginData is the view model for the login page.
type LoginData struct {
	Email  string
	Errors validation.FieldErrors
}

// RegisterData is the view model for the registration page. Record is set
// only on the response that confirms a registration.
type RegisterData struct {
	Values map[string]string
	Alert  string
	Record *domain.RegistrationRecord
}

// Value returns a field value, or "" when the page is fresh.
func (d RegisterData) Value(field string) string {
	return d.Values[field]
}
