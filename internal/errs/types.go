package errs

import (
	"net/http"
)

func newHTTPError(status int, message string, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(status))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  status,
	}
}

// NewUnauthorizedError creates a 401 Unauthorized HTTPError.
// Used when the bearer credential is missing, malformed or expired.
func NewUnauthorizedError(message string) *HTTPError {
	return newHTTPError(http.StatusUnauthorized, message, nil)
}

// NewForbiddenError creates a 403 Forbidden HTTPError.
// Used when the credential is valid but the administrator is missing or inactive.
func NewForbiddenError(message string) *HTTPError {
	return newHTTPError(http.StatusForbidden, message, nil)
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// code is optional (defaults to "BAD_REQUEST"); errors carries field level
// detail for the logs.
func NewBadRequestError(message string, code *string, errors []FieldError) *HTTPError {
	err := newHTTPError(http.StatusBadRequest, message, code)
	err.Errors = errors
	return err
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string, code *string) *HTTPError {
	return newHTTPError(http.StatusNotFound, message, code)
}

// NewConflictError creates a 409 Conflict HTTPError.
func NewConflictError(message string, code *string) *HTTPError {
	return newHTTPError(http.StatusConflict, message, code)
}

// NewRequestTooLargeError creates a 413 HTTPError for bodies over the configured limit.
func NewRequestTooLargeError() *HTTPError {
	return newHTTPError(http.StatusRequestEntityTooLarge, "File too large. Maximum size is 16MB", nil)
}

// NewTooManyRequestsError creates a 429 HTTPError.
func NewTooManyRequestsError() *HTTPError {
	return newHTTPError(http.StatusTooManyRequests, "Too many requests. Please try again later", nil)
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// The message is the generic status text, never the internal error.
func NewInternalServerError() *HTTPError {
	return newHTTPError(http.StatusInternalServerError, "Internal server error", nil)
}

// ValidationError converts a validation failure into a 400 Bad Request HTTPError,
// keeping the failure's message as is.
func ValidationError(err error) *HTTPError {
	return NewBadRequestError(err.Error(), nil, nil)
}
