// Package form holds the registration form's field state and the policy that
// decides when the form may be submitted.
//
// State is a value type. Edits are applied with State.Apply, which returns a
// new State; nothing else writes to a State.
package form

import (
	"fmt"

	"github.com/zjrosen/signup/internal/password"
	"github.com/zjrosen/signup/internal/validate"
)

// PasswordCheck selects which password value the validity flag is computed from.
type PasswordCheck int

const (
	// CheckCurrent validates the value being committed.
	CheckCurrent PasswordCheck = iota
	// CheckPrevious validates the value that was in the field before the
	// edit, reproducing a one-keystroke lag in the displayed error.
	CheckPrevious
)

// ParsePasswordCheck maps a config string to a PasswordCheck.
func ParsePasswordCheck(s string) (PasswordCheck, error) {
	switch s {
	case "", "current":
		return CheckCurrent, nil
	case "previous":
		return CheckPrevious, nil
	default:
		return CheckCurrent, fmt.Errorf("unknown password check %q (want current or previous)", s)
	}
}

// Field is the value and validity of a single input.
type Field struct {
	Value string
	Valid bool
	// Touched is set by the first edit; helper text stays hidden until then.
	Touched bool
}

// Edit is a change event for one field.
type Edit struct {
	Field validate.Kind
	Value string
}

// State is the aggregate of the four registration fields.
type State struct {
	FirstName Field
	LastName  Field
	Email     Field
	Password  Field

	passwordCheck PasswordCheck
}

// New returns an empty, untouched form.
func New(check PasswordCheck) State {
	return State{passwordCheck: check}
}

// Field returns the field for kind.
func (s State) Field(kind validate.Kind) Field {
	switch kind {
	case validate.FirstName:
		return s.FirstName
	case validate.LastName:
		return s.LastName
	case validate.Email:
		return s.Email
	case validate.Password:
		return s.Password
	default:
		return Field{}
	}
}

// Apply returns the state after e. Value and validity change together.
func (s State) Apply(e Edit) State {
	valid := validate.Validate(e.Field, e.Value)
	if e.Field == validate.Password && s.passwordCheck == CheckPrevious {
		prev := s.Password.Value
		valid = prev != "" && password.Strong(prev)
	}

	f := Field{Value: e.Value, Valid: valid, Touched: true}
	switch e.Field {
	case validate.FirstName:
		s.FirstName = f
	case validate.LastName:
		s.LastName = f
	case validate.Email:
		s.Email = f
	case validate.Password:
		s.Password = f
	}
	return s
}

// ShowError reports whether the inline helper text for kind should be shown.
func (s State) ShowError(kind validate.Kind) bool {
	f := s.Field(kind)
	return f.Touched && !f.Valid
}

// AllFilled reports whether every field has a non-empty value. The email
// counts as what would be submitted, so whitespace alone is empty.
func (s State) AllFilled() bool {
	for _, k := range validate.Kinds {
		v := s.Field(k).Value
		if k == validate.Email {
			v = validate.SanitizeEmail(v)
		}
		if v == "" {
			return false
		}
	}
	return true
}

// AllValid reports whether every field is valid.
func (s State) AllValid() bool {
	for _, k := range validate.Kinds {
		if !s.Field(k).Valid {
			return false
		}
	}
	return true
}
