package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/deppfellow/schoolsite/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Validatable is implemented by request payload types that know how to validate themselves.
//
// Typical pattern:
//   - Define a request struct with validator tags (`validate:"omitempty,oneof=a b"`)
//   - Implement Validate() error: Required(...) first, then formats, then Struct(req)
type Validatable interface {
	Validate() error
}

// Error is a single validation failure whose Message is shown to the client verbatim.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewError builds an *Error for a field.
func NewError(field, message string) *Error {
	return &Error{Field: field, Message: message}
}

var validate = newValidator()

// newValidator reports fields by their json (or query/form) names so messages
// use the names the client sent.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
	return v
}

// Struct runs the struct-tag rules of v.
func Struct(v any) error {
	return validate.Struct(v)
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. c.Bind(payload) populates the struct from path params, query (GET) and body.
//  2. payload.Validate() applies validation rules. An *errs.HTTPError it
//     returns is passed through unchanged.
//  3. Returns *errs.HTTPError (400) carrying the first failure's message.
//
// NOTE: c.Bind expects a pointer to a struct.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) && echoErr.Code != 400 {
			return err
		}
		return errs.NewBadRequestError("Invalid request data", nil, []errs.FieldError{{Field: "body", Error: err.Error()}})
	}

	if err := payload.Validate(); err != nil {
		var httpErr *errs.HTTPError
		if errors.As(err, &httpErr) {
			return httpErr
		}
		msg, fieldErrors := extractValidationError(err)
		return errs.NewBadRequestError(msg, nil, fieldErrors)
	}

	return nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var requiredErr *RequiredFieldsError
	if errors.As(err, &requiredErr) {
		fieldErrors := make([]errs.FieldError, 0, len(requiredErr.Fields))
		for _, f := range requiredErr.Fields {
			fieldErrors = append(fieldErrors, errs.FieldError{Field: f, Error: "is required"})
		}
		return requiredErr.Error(), fieldErrors
	}

	var fieldErr *Error
	if errors.As(err, &fieldErr) {
		return fieldErr.Message, []errs.FieldError{{Field: fieldErr.Field, Error: fieldErr.Message}}
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err.Error(), nil
	}

	var fieldErrors []errs.FieldError
	for _, err := range validationErrors {
		var msg string

		switch err.Tag() {
		case "required":
			msg = "is required"

		case "min":
			// min tag means:
			// - for strings: minimum length
			// - for numbers: minimum value
			if err.Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", err.Param())
			}

		case "max":
			if err.Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", err.Param())
			}

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", err.Param())

		case "email":
			msg = "must be a valid email address"

		case "uuid":
			msg = "must be a valid UUID"

		default:
			if err.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", err.Field(), err.Tag(), err.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", err.Field(), err.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: err.Field(),
			Error: msg,
		})
	}

	// The client sees one line naming the first offending field.
	return "Invalid " + fieldErrors[0].Field, fieldErrors
}

// uuidRegex matches standard UUID format: xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
var uuidRegex = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// IsValidUUID checks whether a string matches UUID format.
//
// Note: This validates format only. It does not validate UUID version/variant semantics.
func IsValidUUID(uuid string) bool {
	return uuidRegex.MatchString(uuid)
}
