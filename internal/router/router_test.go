package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/deppfellow/schoolsite/internal/config"
	"github.com/deppfellow/schoolsite/internal/handler"
	"github.com/deppfellow/schoolsite/internal/model"
	"github.com/deppfellow/schoolsite/internal/repository"
	"github.com/deppfellow/schoolsite/internal/server"
	"github.com/deppfellow/schoolsite/internal/service"
	"github.com/deppfellow/schoolsite/internal/storage"
	"github.com/deppfellow/schoolsite/internal/store"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const adminPassword = "correct horse battery"

type testApp struct {
	t        *testing.T
	server   *server.Server
	services *service.Services
	repos    *repository.Repositories
	echo     *echo.Echo
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	objects, err := storage.NewLocal(t.TempDir(), "")
	require.NoError(t, err)

	logger := zerolog.Nop()
	cfg := &config.Config{
		Primary: config.Primary{Env: "test"},
		Server: config.ServerConfig{
			CORSAllowedOrigins: "http://localhost:3000",
			BodyLimit:          "16M",
			RateLimit:          1000,
		},
		Auth: config.AuthConfig{
			SecretKey:     "test-secret-key-0123456789",
			TokenTTL:      time.Hour,
			AdminUsername: "admin",
			AdminEmail:    "admin@example.com",
			AdminPassword: adminPassword,
			AdminFullName: "System Administrator",
		},
		Observability: config.DefaultObservabilityConfig(),
	}
	cfg.Observability.Environment = "test"

	s := &server.Server{
		Config:  cfg,
		Logger:  &logger,
		Store:   store.NewMemory(model.UniqueColumns()),
		Objects: objects,
		Metrics: server.NewRegistry(),
	}

	repos := repository.NewRepositories(s)
	services, err := service.NewService(s, repos)
	require.NoError(t, err)

	_, err = services.Seed.SeedAdmin(context.Background())
	require.NoError(t, err)

	return &testApp{
		t:        t,
		server:   s,
		services: services,
		repos:    repos,
		echo:     NewRouter(s, handler.NewHandlers(s, services), services),
	}
}

func (a *testApp) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	a.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) login() string {
	a.t.Helper()
	rec := a.do(http.MethodPost, "/api/auth/login", map[string]string{
		"username": "admin",
		"password": adminPassword,
	}, "")
	require.Equal(a.t, http.StatusOK, rec.Code, rec.Body.String())

	var res struct {
		AccessToken string `json:"access_token"`
	}
	decode(a.t, rec, &res)
	require.NotEmpty(a.t, res.AccessToken)
	return res.AccessToken
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func errorOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	decode(t, rec, &body)
	msg, _ := body["error"].(string)
	return msg
}

func validAdmission() map[string]any {
	return map[string]any{
		"studentName":   "Aarav Sharma",
		"classApplying": "5",
		"dateOfBirth":   "2015-04-12",
		"gender":        "male",
		"fatherName":    "Rakesh Sharma",
		"motherName":    "Sunita Sharma",
		"phone":         "+91 98765 43210",
		"email":         "rakesh@example.com",
		"address":       "12 Station Road, Jaipur",
	}
}

func TestAuthFlow(t *testing.T) {
	app := newTestApp(t)

	t.Run("login and me", func(t *testing.T) {
		token := app.login()

		rec := app.do(http.MethodGet, "/api/auth/me", nil, token)
		require.Equal(t, http.StatusOK, rec.Code)

		var me handler.MeResponse
		decode(t, rec, &me)
		assert.Equal(t, "admin", me.Username)
		assert.Equal(t, "admin@example.com", me.Email)
	})

	t.Run("missing credentials", func(t *testing.T) {
		rec := app.do(http.MethodPost, "/api/auth/login", map[string]string{"username": "admin"}, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Username and password required", errorOf(t, rec))
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := app.do(http.MethodPost, "/api/auth/login", map[string]string{"username": "admin", "password": "x"}, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid credentials", errorOf(t, rec))
	})

	t.Run("admin route without token", func(t *testing.T) {
		rec := app.do(http.MethodGet, "/api/dashboard/stats", nil, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Missing authorization header", errorOf(t, rec))
	})

	t.Run("deactivated admin is forbidden", func(t *testing.T) {
		token := app.login()
		admin, err := app.repos.Admins.GetByUsername(context.Background(), "admin")
		require.NoError(t, err)
		require.NoError(t, app.repos.Admins.SetActive(context.Background(), admin.ID, false))
		defer func() {
			require.NoError(t, app.repos.Admins.SetActive(context.Background(), admin.ID, true))
		}()

		rec := app.do(http.MethodGet, "/api/auth/me", nil, token)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "Admin access required", errorOf(t, rec))
	})
}

func TestAdmissions(t *testing.T) {
	app := newTestApp(t)
	token := app.login()

	rec := app.do(http.MethodPost, "/api/admissions", validAdmission(), "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var submitted handler.SubmitAdmissionResponse
	decode(t, rec, &submitted)
	require.NotEmpty(t, submitted.ApplicationID)

	rec = app.do(http.MethodGet, "/api/admissions?status=pending", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var list service.AdmissionList
	decode(t, rec, &list)
	require.Len(t, list.Admissions, 1)
	assert.Equal(t, 1, list.Total)
	assert.Equal(t, 1, list.TotalPages)
	assert.Equal(t, model.AdmissionPending, list.Admissions[0].Status)

	statusPath := fmt.Sprintf("/api/admissions/%s/status", submitted.ApplicationID)

	rec = app.do(http.MethodPut, statusPath, map[string]string{"status": "approved", "notes": "Interview done"}, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = app.do(http.MethodPut, statusPath, map[string]string{"status": "xyz"}, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.do(http.MethodGet, "/api/admissions?status=approved", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &list)
	require.Len(t, list.Admissions, 1)
	assert.Equal(t, model.AdmissionApproved, list.Admissions[0].Status)
	require.NotNil(t, list.Admissions[0].AdminNotes)
	assert.Equal(t, "Interview done", *list.Admissions[0].AdminNotes)

	t.Run("unknown id", func(t *testing.T) {
		rec := app.do(http.MethodPut, "/api/admissions/does-not-exist/status", map[string]string{"status": "approved"}, token)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Admission not found", errorOf(t, rec))

		rec = app.do(http.MethodPut, "/api/admissions/"+model.NewID()+"/status", map[string]string{"status": "approved"}, token)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Admission not found", errorOf(t, rec))
	})

	t.Run("missing fields are named in order", func(t *testing.T) {
		body := validAdmission()
		delete(body, "gender")
		delete(body, "studentName")
		body["address"] = "   "

		rec := app.do(http.MethodPost, "/api/admissions", body, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Missing required fields: studentName, gender, address", errorOf(t, rec))
	})

	t.Run("bad formats", func(t *testing.T) {
		body := validAdmission()
		body["email"] = "not-an-email"
		rec := app.do(http.MethodPost, "/api/admissions", body, "")
		assert.Equal(t, "Invalid email format", errorOf(t, rec))

		body = validAdmission()
		body["dateOfBirth"] = "12/04/2015"
		rec = app.do(http.MethodPost, "/api/admissions", body, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad page", func(t *testing.T) {
		rec := app.do(http.MethodGet, "/api/admissions?page=0", nil, token)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = app.do(http.MethodGet, "/api/admissions?page=9223372036854775807", nil, token)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid page", errorOf(t, rec))
	})

	t.Run("limit is capped", func(t *testing.T) {
		rec := app.do(http.MethodGet, fmt.Sprintf("/api/contact?limit=%d", handler.MaxPageLimit+1), nil, token)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid limit", errorOf(t, rec))

		rec = app.do(http.MethodGet, fmt.Sprintf("/api/contact?limit=%d", handler.MaxPageLimit), nil, token)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestContactPagination(t *testing.T) {
	app := newTestApp(t)
	token := app.login()

	for i := 0; i < 45; i++ {
		rec := app.do(http.MethodPost, "/api/contact", map[string]string{
			"name":    fmt.Sprintf("Parent %d", i),
			"email":   "parent@example.com",
			"subject": "Fees",
			"message": "When is the fee due?",
		}, "")
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := app.do(http.MethodGet, "/api/contact?page=3&limit=20", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var list service.MessageList
	decode(t, rec, &list)
	assert.Len(t, list.Messages, 5)
	assert.Equal(t, 45, list.Total)
	assert.Equal(t, 3, list.Page)
	assert.Equal(t, 3, list.TotalPages)

	id := list.Messages[0].ID
	rec = app.do(http.MethodPut, "/api/contact/"+id+"/status", map[string]string{"status": "replied", "reply": "By the 10th."}, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = app.do(http.MethodGet, "/api/contact?status=replied", nil, token)
	decode(t, rec, &list)
	require.Len(t, list.Messages, 1)
	assert.NotNil(t, list.Messages[0].RepliedAt)

	t.Run("malformed id", func(t *testing.T) {
		rec := app.do(http.MethodPut, "/api/contact/not-a-uuid/status", map[string]string{"status": "read"}, token)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Contact Message not found", errorOf(t, rec))

		rec = app.do(http.MethodPut, "/api/contact/"+model.NewID()+"/status", map[string]string{"status": "read"}, token)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Contact Message not found", errorOf(t, rec))
	})
}

func TestPublicContent(t *testing.T) {
	app := newTestApp(t)
	token := app.login()

	t.Run("news is capped at ten", func(t *testing.T) {
		for i := 0; i < 11; i++ {
			rec := app.do(http.MethodPost, "/api/news", map[string]string{
				"title":   fmt.Sprintf("Notice %d", i),
				"content": "School closed",
			}, token)
			require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		}

		rec := app.do(http.MethodGet, "/api/news", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var news []model.News
		decode(t, rec, &news)
		assert.Len(t, news, 10)
	})

	t.Run("events come back soonest first", func(t *testing.T) {
		for _, date := range []string{"2099-03-01", "2099-01-15", "2099-02-10"} {
			rec := app.do(http.MethodPost, "/api/events", map[string]any{
				"title":       "Event " + date,
				"description": "Details",
				"event_date":  date,
				"location":    "Main hall",
			}, token)
			require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		}

		rec := app.do(http.MethodGet, "/api/events", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var events []model.Event
		decode(t, rec, &events)
		require.Len(t, events, 3)
		assert.Equal(t, "Event 2099-01-15", events[0].Title)
		assert.Equal(t, "Event 2099-03-01", events[2].Title)
	})

	t.Run("event with a bad category", func(t *testing.T) {
		rec := app.do(http.MethodPost, "/api/events", map[string]any{
			"title":       "Picnic",
			"description": "Details",
			"event_date":  "2099-05-01",
			"location":    "Park",
			"category":    "party",
		}, token)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("public reads are repeatable", func(t *testing.T) {
		for _, path := range []string{"/api/news", "/api/events", "/api/results", "/api/gallery", "/api/faculty"} {
			first := app.do(http.MethodGet, path, nil, "")
			second := app.do(http.MethodGet, path, nil, "")
			require.Equal(t, http.StatusOK, first.Code, path)
			assert.JSONEq(t, first.Body.String(), second.Body.String(), path)
		}
	})

	t.Run("results accept numeric pass rate", func(t *testing.T) {
		rec := app.do(http.MethodPost, "/api/results", map[string]any{
			"class_level": "10",
			"year":        2024,
			"pass_rate":   98.5,
			"above_90":    12,
		}, token)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		rec = app.do(http.MethodGet, "/api/results", nil, "")
		var overview service.ResultsOverview
		decode(t, rec, &overview)
		require.Len(t, overview.Class10, 1)
		assert.Equal(t, "98.5", overview.Class10[0].PassRate)

		rec = app.do(http.MethodPost, "/api/results/toppers", map[string]any{
			"name":        "Priya Gupta",
			"class_level": "12",
			"year":        2024,
			"percentage":  97.4,
			"stream":      "Science",
		}, token)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		rec = app.do(http.MethodGet, "/api/results", nil, "")
		decode(t, rec, &overview)
		require.Len(t, overview.Toppers, 1)
		assert.Equal(t, "Priya Gupta", overview.Toppers[0].Name)
	})

	t.Run("dashboard counts", func(t *testing.T) {
		rec := app.do(http.MethodGet, "/api/dashboard/stats", nil, token)
		require.Equal(t, http.StatusOK, rec.Code)

		var stats service.DashboardStats
		decode(t, rec, &stats)
		assert.Equal(t, 3, stats.Events.Upcoming)
	})
}

func TestGalleryUpload(t *testing.T) {
	app := newTestApp(t)
	token := app.login()

	upload := func(filename string, content []byte, category string) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		require.NoError(t, w.WriteField("title", "Sports day"))
		if category != "" {
			require.NoError(t, w.WriteField("category", category))
		}
		part, err := w.CreateFormFile("image", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
		require.NoError(t, w.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/gallery", &buf)
		req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()
		app.echo.ServeHTTP(rec, req)
		return rec
	}

	t.Run("rejects executables", func(t *testing.T) {
		rec := upload("photo.exe", []byte("MZ"), "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid file type", errorOf(t, rec))

		list := app.do(http.MethodGet, "/api/gallery", nil, "")
		assert.JSONEq(t, "[]", list.Body.String())
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		rec := upload("photo.png", []byte("png"), "parties")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("stores and serves an image", func(t *testing.T) {
		content := []byte("\x89PNG fake image")
		rec := upload("photo.png", content, "sports")
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var image model.GalleryImage
		decode(t, rec, &image)
		assert.Equal(t, model.GalleryCategory("sports"), image.Category)
		require.True(t, strings.HasPrefix(image.ImageURL, storage.UploadsPath), image.ImageURL)

		served := app.do(http.MethodGet, image.ImageURL, nil, "")
		require.Equal(t, http.StatusOK, served.Code)
		assert.Equal(t, content, served.Body.Bytes())
		assert.Equal(t, "image/png", served.Header().Get(echo.HeaderContentType))
	})

	t.Run("unknown upload", func(t *testing.T) {
		rec := app.do(http.MethodGet, "/api/uploads/missing.png", nil, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "File not found", errorOf(t, rec))
	})

	t.Run("missing file part", func(t *testing.T) {
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		require.NoError(t, w.WriteField("title", "Nothing"))
		require.NoError(t, w.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/gallery", &buf)
		req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()
		app.echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "No image file provided", errorOf(t, rec))
	})
}

func TestSystemRoutes(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodGet, "/api/health", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var health handler.HealthResponse
	decode(t, rec, &health)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, handler.ServiceDisplayName, health.Service)
	assert.Equal(t, store.DriverMemory, health.Database)
	assert.Equal(t, "healthy", health.Checks["database"].Status)

	rec = app.do(http.MethodGet, "/docs", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/static/openapi.json")

	rec = app.do(http.MethodGet, "/static/openapi.json", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"/api/admissions"`)

	rec = app.do(http.MethodGet, "/metrics", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "schoolsite_http_requests_total")

	rec = app.do(http.MethodGet, "/api/nowhere", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", errorOf(t, rec))
}
