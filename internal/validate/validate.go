// Package validate implements the per-field validation rules of the
// registration form. Rules are pure; calling Validate never changes state.
package validate

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/zjrosen/signup/internal/password"
)

// Kind identifies one of the four registration fields.
type Kind int

const (
	FirstName Kind = iota
	LastName
	Email
	Password
)

// Kinds lists every field in display order.
var Kinds = []Kind{FirstName, LastName, Email, Password}

func (k Kind) String() string {
	switch k {
	case FirstName:
		return "first_name"
	case LastName:
		return "last_name"
	case Email:
		return "email"
	case Password:
		return "password"
	default:
		return "unknown"
	}
}

// Label returns the human readable field label.
func (k Kind) Label() string {
	switch k {
	case FirstName:
		return "First Name"
	case LastName:
		return "Last Name"
	case Email:
		return "Email"
	case Password:
		return "Password"
	default:
		return ""
	}
}

var (
	namePattern = regexp.MustCompile(`^[A-Za-z]+$`)

	// emailPattern is the WHATWG "valid e-mail address" production, the rule
	// browsers apply to <input type=email>.
	emailPattern = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")
)

// Validate reports whether raw is an acceptable value for the field kind.
// The empty string is invalid for every kind.
func Validate(kind Kind, raw string) bool {
	if raw == "" {
		return false
	}

	switch kind {
	case FirstName, LastName:
		return namePattern.MatchString(raw)
	case Email:
		v := SanitizeEmail(raw)
		return v != "" && emailPattern.MatchString(v)
	case Password:
		return password.Strong(raw)
	default:
		return false
	}
}

// SanitizeEmail strips newlines and surrounding ASCII whitespace, matching the
// value sanitization of an email input.
func SanitizeEmail(raw string) string {
	v := strings.NewReplacer("\r", "", "\n", "").Replace(raw)
	return strings.Trim(v, " \t\f")
}

// HelperText returns the inline message shown under an invalid field.
func HelperText(kind Kind) string {
	switch kind {
	case FirstName, LastName:
		return "Letters Only"
	case Email:
		return "Please enter a valid email"
	case Password:
		return "Password must have one uppercase letter, one special character and minimum length of " + strconv.Itoa(password.MinimumLength)
	default:
		return ""
	}
}
