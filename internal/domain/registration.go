package domain

import "time"

// SubmissionTimeLayout formats RegistrationRecord.SubmissionTime for display.
const SubmissionTimeLayout = "1/2/2006, 3:04:05 PM"

// Credentials are what the login form collects. They are never verified or stored.
type Credentials struct {
	Email    string
	Password string
}

// RegistrationRecord is the confirmation of a completed registration form.
// It only lives for the response that renders it.
type RegistrationRecord struct {
	LastName       string
	FirstName      string
	Age            string
	Email          string
	Password       string
	TermsAccepted  bool
	SubmissionTime time.Time
}

// TermsLabel renders TermsAccepted as "Yes" or "No".
func (r RegistrationRecord) TermsLabel() string {
	if r.TermsAccepted {
		return "Yes"
	}
	return "No"
}

// SubmittedAt formats the submission time in the server's local zone.
func (r RegistrationRecord) SubmittedAt() string {
	return r.SubmissionTime.Local().Format(SubmissionTimeLayout)
}
