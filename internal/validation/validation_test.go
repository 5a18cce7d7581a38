package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/deppfellow/schoolsite/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequired_ListsEveryMissingFieldInOrder(t *testing.T) {
	var pct *float64
	err := Required(
		F("studentName", ""),
		F("classApplying", "5"),
		F("dateOfBirth", "   "),
		F("year", 0),
		F("previousPercentage", pct),
		F("address", "12 Road"),
	)
	require.Error(t, err)
	assert.Equal(t, "Missing required fields: studentName, dateOfBirth, year, previousPercentage", err.Error())

	var reqErr *RequiredFieldsError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, []string{"studentName", "dateOfBirth", "year", "previousPercentage"}, reqErr.Fields)
}

func TestRequired_AllPresent(t *testing.T) {
	v := 88.5
	assert.NoError(t, Required(F("name", "a"), F("year", 2024), F("pct", &v), F("flag", true)))
}

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("a@b.co"))
	assert.True(t, IsEmail("parent.name+school@mail.example.in"))
	assert.False(t, IsEmail("a@b"))
	assert.False(t, IsEmail("a.com"))
	assert.False(t, IsEmail(""))
	assert.False(t, IsEmail("a@b.c"))
}

func TestIsPhone(t *testing.T) {
	assert.True(t, IsPhone("+1 (555) 123-4567"))
	assert.True(t, IsPhone("9876543210"))
	assert.False(t, IsPhone("12345"))
	assert.False(t, IsPhone("98765abc43210"))
	assert.False(t, IsPhone(""))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("dateOfBirth", "2015-03-09")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2015, 3, 9, 0, 0, 0, 0, time.UTC), d)

	for _, bad := range []string{"09-03-2015", "2015-3-9", "2015-02-30", "2015-03-09T00:00:00Z", ""} {
		_, err := ParseDate("dateOfBirth", bad)
		require.Error(t, err, bad)
		assert.Equal(t, "Invalid date format. Use YYYY-MM-DD", err.Error())
	}
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "Annual Day", Sanitize("  Annual Day \n"))
	assert.Equal(t, 42, Sanitize(42))
	assert.Equal(t, 9.5, Sanitize(9.5))
	assert.Equal(t, "x", SanitizeString(" x "))
}

type bindRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Priority string `json:"priority" validate:"omitempty,oneof=normal high urgent"`
}

func (r *bindRequest) Validate() error {
	if err := Required(F("name", r.Name), F("email", r.Email)); err != nil {
		return err
	}
	if !IsEmail(r.Email) {
		return NewError("email", "Invalid email format")
	}
	return Struct(r)
}

func bind(t *testing.T, body string) error {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())
	return BindAndValidate(c, &bindRequest{})
}

func TestBindAndValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{name: "missing fields", body: `{}`, message: "Missing required fields: name, email"},
		{name: "bad email", body: `{"name":"A","email":"nope"}`, message: "Invalid email format"},
		{name: "bad enum", body: `{"name":"A","email":"a@b.co","priority":"meh"}`, message: "Invalid priority"},
		{name: "malformed json", body: `{"name":`, message: "Invalid request data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := bind(t, tt.body)
			require.Error(t, err)

			var httpErr *errs.HTTPError
			require.True(t, errors.As(err, &httpErr))
			assert.Equal(t, http.StatusBadRequest, httpErr.Status)
			assert.Equal(t, tt.message, httpErr.Message)
		})
	}

	assert.NoError(t, bind(t, `{"name":"A","email":"a@b.co","priority":"high"}`))
}

type lookupRequest struct {
	ID string `json:"id"`
}

func (r *lookupRequest) Validate() error {
	if !IsValidUUID(r.ID) {
		return errs.NewNotFoundError("Record not found", nil)
	}
	return nil
}

func TestBindAndValidate_KeepsHTTPError(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"id":"nope"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	err := BindAndValidate(c, &lookupRequest{})
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Record not found", httpErr.Message)
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("0b6c0b8e-3c5e-4a37-9d36-2b7a7c7f7a10"))
	assert.False(t, IsValidUUID("not-a-uuid"))
}
