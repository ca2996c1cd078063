// Package registration coordinates a registration attempt: it builds the
// request from the form, calls the registration service, and turns the
// response into either navigation or an error message for the dialog.
package registration

import (
	"fmt"

	"github.com/zjrosen/signup/internal/form"
	"github.com/zjrosen/signup/internal/validate"
)

// Payload is the request body sent to the registration service.
type Payload struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Password string `json:"password"`
}

// NewPayload builds the request from the current form values. The full name
// is first and last name joined by exactly one space, whitespace untouched.
func NewPayload(s form.State) Payload {
	return Payload{
		Email:    validate.SanitizeEmail(s.Email.Value),
		FullName: s.FirstName.Value + " " + s.LastName.Value,
		Password: s.Password.Value,
	}
}

// String redacts the password so payloads are safe to print.
func (p Payload) String() string {
	return fmt.Sprintf("{email:%s fullName:%s password:<redacted>}", p.Email, p.FullName)
}
