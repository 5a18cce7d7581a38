package validation

import (
	"reflect"
	"strings"
)

// Field pairs a request field name, as the client spelled it, with its bound value.
type Field struct {
	Name  string
	Value any
}

// F is shorthand for building a Field.
func F(name string, value any) Field {
	return Field{Name: name, Value: value}
}

// RequiredFieldsError lists every missing field in the order it was checked.
type RequiredFieldsError struct {
	Fields []string
}

func (e *RequiredFieldsError) Error() string {
	return "Missing required fields: " + strings.Join(e.Fields, ", ")
}

// Required fails when any field is absent or empty. Empty means the zero
// value for its type, so "", 0, false and nil all count as missing; a
// string of only whitespace is missing as well.
func Required(fields ...Field) error {
	var missing []string
	for _, f := range fields {
		if isBlank(f.Value) {
			missing = append(missing, f.Name)
		}
	}
	if len(missing) > 0 {
		return &RequiredFieldsError{Fields: missing}
	}
	return nil
}

func isBlank(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return true
		}
		return isBlank(rv.Elem().Interface())
	}
	return rv.IsZero()
}
