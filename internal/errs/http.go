package errs

import "strings"

// FieldError represents a field-level validation error.
// Field errors are logged, the client only sees the joined message.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError is the main custom error type for API responses.
//
// It implements the `error` interface via Error() and serializes
// to the public envelope:
//
//	{"error": "Missing required fields: title, content"}
//
// Fields:
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST"), logs only.
//   - Message: human-friendly message, the only field sent to clients.
//   - Status: HTTP status code.
//   - Errors: list of per-field errors (validation), logs only.
type HTTPError struct {
	Code    string       `json:"-"`
	Message string       `json:"error"`
	Status  int          `json:"-"`
	Errors  []FieldError `json:"-"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError.
// It does not compare Code/Status.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:    e.Code,
		Message: message,
		Status:  e.Status,
		Errors:  e.Errors,
	}
}

// Envelope is the body written for an error response.
func Envelope(message string) map[string]string {
	return map[string]string{"error": message}
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
