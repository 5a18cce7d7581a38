package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/schoolsite/internal/config"
	"github.com/deppfellow/schoolsite/internal/errs"
	"github.com/deppfellow/schoolsite/internal/model"
	"github.com/deppfellow/schoolsite/internal/server"
	"github.com/deppfellow/schoolsite/internal/store"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthorizer struct {
	admin *model.Admin
	err   error
}

func (s stubAuthorizer) Authorize(context.Context, string) (*model.Admin, error) {
	return s.admin, s.err
}

func newTestServer() *server.Server {
	logger := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{
			Server: config.ServerConfig{
				CORSAllowedOrigins: "http://localhost:3000",
				BodyLimit:          "1K",
				RateLimit:          1,
			},
			Observability: config.DefaultObservabilityConfig(),
		},
		Logger:  &logger,
		Metrics: server.NewRegistry(),
	}
}

func newEcho(s *server.Server, authorizer Authorizer) (*echo.Echo, *Middlewares) {
	e := echo.New()
	m := NewMiddlewares(s, authorizer)
	e.HTTPErrorHandler = m.Global.GlobalErrorHandler
	e.Use(RequestID(), m.ContextEnhancer.EnhanceContext(), m.Metrics.Collect())
	return e, m
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

func TestRequireAdmin(t *testing.T) {
	admin := &model.Admin{ID: "admin-1", Username: "admin", IsActive: true}

	t.Run("passes the admin to the handler", func(t *testing.T) {
		e, m := newEcho(newTestServer(), stubAuthorizer{admin: admin})
		e.GET("/secret", func(c echo.Context) error {
			assert.Equal(t, "admin-1", GetUserID(c))
			assert.Same(t, admin, GetAdmin(c))
			return c.NoContent(http.StatusNoContent)
		}, m.Auth.RequireAdmin)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/secret", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("forbidden stops the chain", func(t *testing.T) {
		e, m := newEcho(newTestServer(), stubAuthorizer{err: errs.NewForbiddenError("Admin access required")})
		e.GET("/secret", func(c echo.Context) error {
			t.Fatal("handler must not run")
			return nil
		}, m.Auth.RequireAdmin)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/secret", nil))
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "Admin access required", decodeError(t, rec))
	})
}

func TestGlobalErrorHandler(t *testing.T) {
	s := newTestServer()
	e, m := newEcho(s, stubAuthorizer{})
	e.Use(m.Global.BodyLimit())

	e.GET("/missing", func(c echo.Context) error {
		return errors.Wrap(store.ErrNotFound, "table:admissions:abc")
	})
	e.GET("/boom", func(c echo.Context) error {
		return errors.New("connection reset by peer")
	})
	e.POST("/upload", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	cases := []struct {
		name    string
		req     *http.Request
		status  int
		message string
	}{
		{"unknown route", httptest.NewRequest(http.MethodGet, "/nope", nil), http.StatusNotFound, "Route not found"},
		{"store not found", httptest.NewRequest(http.MethodGet, "/missing", nil), http.StatusNotFound, "Admission not found"},
		{"unknown error hides details", httptest.NewRequest(http.MethodGet, "/boom", nil), http.StatusInternalServerError, "Internal server error"},
		{"body over limit", httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(strings.Repeat("x", 2048))), http.StatusRequestEntityTooLarge, "File too large. Maximum size is 16MB"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, tc.req)
			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, tc.message, decodeError(t, rec))
			assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
		})
	}
}

func TestRateLimit(t *testing.T) {
	s := newTestServer()
	e, m := newEcho(s, stubAuthorizer{})
	e.POST("/api/contact", func(c echo.Context) error {
		return c.NoContent(http.StatusCreated)
	}, m.RateLimit.Limit())

	first := httptest.NewRecorder()
	e.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/api/contact", nil))
	assert.Equal(t, http.StatusCreated, first.Code)

	second := httptest.NewRecorder()
	e.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/api/contact", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "Too many requests. Please try again later", decodeError(t, second))
}

func TestRequestID_ReusesIncomingHeader(t *testing.T) {
	e, _ := newEcho(newTestServer(), stubAuthorizer{})
	e.GET("/", func(c echo.Context) error {
		assert.Equal(t, "abc-123", GetRequestID(c))
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestValidRequestID(t *testing.T) {
	assert.True(t, validRequestID("abc-123"))
	assert.True(t, validRequestID(strings.Repeat("a", 128)))
	assert.False(t, validRequestID(""))
	assert.False(t, validRequestID(strings.Repeat("a", 129)))
	assert.False(t, validRequestID("abc 123"))
	assert.False(t, validRequestID("abc\n123"))
}
