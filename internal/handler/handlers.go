// Package handler is the first layer. The first entry point
// for business logic after the router.
//
// It parses requests, handles input validation using the
// validation package, and calls the appropriate service layer.
package handler

import (
	"github.com/deppfellow/schoolsite/internal/server"
	"github.com/deppfellow/schoolsite/internal/service"
)

// Handlers groups every HTTP handler so the router receives one value.
type Handlers struct {
	Health     *HealthHandler
	OpenAPI    *OpenAPIHandler
	Auth       *AuthHandler
	News       *NewsHandler
	Admissions *AdmissionHandler
	Contact    *ContactHandler
	Events     *EventHandler
	Results    *ResultHandler
	Gallery    *GalleryHandler
	Faculty    *FacultyHandler
	Dashboard  *DashboardHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	h := NewHandler(s, services)
	return &Handlers{
		Health:     &HealthHandler{Handler: h},
		OpenAPI:    &OpenAPIHandler{Handler: h},
		Auth:       &AuthHandler{Handler: h},
		News:       &NewsHandler{Handler: h},
		Admissions: &AdmissionHandler{Handler: h},
		Contact:    &ContactHandler{Handler: h},
		Events:     &EventHandler{Handler: h},
		Results:    &ResultHandler{Handler: h},
		Gallery:    &GalleryHandler{Handler: h},
		Faculty:    &FacultyHandler{Handler: h},
		Dashboard:  &DashboardHandler{Handler: h},
	}
}
