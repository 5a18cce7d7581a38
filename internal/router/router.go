// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"net/http"

	"github.com/deppfellow/schoolsite/internal/handler"
	"github.com/deppfellow/schoolsite/internal/middleware"
	"github.com/deppfellow/schoolsite/internal/server"
	"github.com/deppfellow/schoolsite/internal/service"
	"github.com/labstack/echo/v4"
)

func NewRouter(s *server.Server, h *handler.Handlers, services *service.Services) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s, services.Auth)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middleware.RequestID(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Metrics.Collect(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.Secure(),
		middlewares.Global.CORS(),
		middlewares.Global.BodyLimit(),
	)

	registerSystemRoutes(router, s, h)

	api := router.Group("/api")
	registerAPIRoutes(api, h, middlewares)

	return router
}

func registerAPIRoutes(api *echo.Group, h *handler.Handlers, m *middleware.Middlewares) {
	admin := m.Auth.RequireAdmin
	limit := m.RateLimit.Limit()

	api.GET("/health", h.Health.CheckHealth)
	api.GET("/uploads/:filename", h.Gallery.ServeUpload)

	auth := api.Group("/auth")
	auth.POST("/login", handler.Handle(h.Auth.Handler, h.Auth.Login, http.StatusOK, &handler.LoginRequest{}), limit)
	auth.GET("/me", handler.Handle(h.Auth.Handler, h.Auth.Me, http.StatusOK, &handler.EmptyRequest{}), admin)

	api.GET("/news", handler.Handle(h.News.Handler, h.News.List, http.StatusOK, &handler.EmptyRequest{}))
	api.POST("/news", handler.Handle(h.News.Handler, h.News.Create, http.StatusCreated, &handler.CreateNewsRequest{}), admin)

	api.POST("/admissions", handler.Handle(h.Admissions.Handler, h.Admissions.Submit, http.StatusCreated, &handler.SubmitAdmissionRequest{}), limit)
	api.GET("/admissions", handler.Handle(h.Admissions.Handler, h.Admissions.List, http.StatusOK, &handler.ListAdmissionsRequest{}), admin)
	api.PUT("/admissions/:id/status", handler.Handle(h.Admissions.Handler, h.Admissions.UpdateStatus, http.StatusOK, &handler.UpdateAdmissionStatusRequest{}), admin)

	api.POST("/contact", handler.Handle(h.Contact.Handler, h.Contact.Submit, http.StatusCreated, &handler.SubmitContactRequest{}), limit)
	api.GET("/contact", handler.Handle(h.Contact.Handler, h.Contact.List, http.StatusOK, &handler.ListMessagesRequest{}), admin)
	api.PUT("/contact/:id/status", handler.Handle(h.Contact.Handler, h.Contact.UpdateStatus, http.StatusOK, &handler.UpdateMessageStatusRequest{}), admin)

	api.GET("/events", handler.Handle(h.Events.Handler, h.Events.List, http.StatusOK, &handler.EmptyRequest{}))
	api.POST("/events", handler.Handle(h.Events.Handler, h.Events.Create, http.StatusCreated, &handler.CreateEventRequest{}), admin)

	api.GET("/results", handler.Handle(h.Results.Handler, h.Results.Overview, http.StatusOK, &handler.EmptyRequest{}))
	api.POST("/results", handler.Handle(h.Results.Handler, h.Results.Create, http.StatusCreated, &handler.CreateResultRequest{}), admin)
	api.POST("/results/toppers", handler.Handle(h.Results.Handler, h.Results.CreateTopper, http.StatusCreated, &handler.CreateTopperRequest{}), admin)

	api.GET("/gallery", handler.Handle(h.Gallery.Handler, h.Gallery.List, http.StatusOK, &handler.EmptyRequest{}))
	api.POST("/gallery", handler.Handle(h.Gallery.Handler, h.Gallery.Upload, http.StatusCreated, &handler.UploadGalleryRequest{}), admin)

	api.GET("/faculty", handler.Handle(h.Faculty.Handler, h.Faculty.List, http.StatusOK, &handler.EmptyRequest{}))
	api.POST("/faculty", handler.Handle(h.Faculty.Handler, h.Faculty.Create, http.StatusCreated, &handler.CreateFacultyRequest{}), admin)

	api.GET("/dashboard/stats", handler.Handle(h.Dashboard.Handler, h.Dashboard.Stats, http.StatusOK, &handler.EmptyRequest{}), admin)
}
