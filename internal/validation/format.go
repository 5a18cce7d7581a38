package validation

import (
	"regexp"
	"strings"
	"time"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9\s\-()]{10,}$`)
	dateRegex  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// DateLayout is the only accepted date format on input.
const DateLayout = "2006-01-02"

// IsEmail reports whether s has the local@domain.tld shape.
func IsEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// IsPhone accepts digits, spaces, hyphens and parentheses with an optional
// leading "+", at least ten characters long.
func IsPhone(s string) bool {
	return phoneRegex.MatchString(s)
}

// ParseDate parses a strict YYYY-MM-DD date into UTC midnight.
func ParseDate(field, s string) (time.Time, error) {
	if !dateRegex.MatchString(s) {
		return time.Time{}, NewError(field, "Invalid date format. Use YYYY-MM-DD")
	}
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, NewError(field, "Invalid date format. Use YYYY-MM-DD")
	}
	return t, nil
}

// SanitizeString trims leading and trailing whitespace.
func SanitizeString(s string) string {
	return strings.TrimSpace(s)
}

// Sanitize trims strings and returns every other type unchanged.
func Sanitize[T any](v T) T {
	if s, ok := any(v).(string); ok {
		return any(strings.TrimSpace(s)).(T)
	}
	return v
}
