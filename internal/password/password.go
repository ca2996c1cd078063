// Package password holds the password strength predicates used by the
// registration form. Each predicate inspects the raw password string.
package password

import "unicode"

// MinimumLength is the shortest accepted password, counted in runes.
const MinimumLength = 8

// AtLeastMinimumLength reports whether s has at least MinimumLength runes.
func AtLeastMinimumLength(s string) bool {
	n := 0
	for range s {
		n++
		if n >= MinimumLength {
			return true
		}
	}
	return false
}

// AtLeastOneUppercaseLetter reports whether s contains an upper-case letter.
func AtLeastOneUppercaseLetter(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

// AtLeastOneSpecialChar reports whether s contains a rune that is neither a
// letter nor a digit. Whitespace counts as special.
func AtLeastOneSpecialChar(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// Strong reports whether s passes all three predicates.
func Strong(s string) bool {
	return AtLeastMinimumLength(s) && AtLeastOneUppercaseLetter(s) && AtLeastOneSpecialChar(s)
}
