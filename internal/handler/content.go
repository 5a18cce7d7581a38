package handler

import (
	"github.com/deppfellow/schoolsite/internal/model"
	"github.com/deppfellow/schoolsite/internal/service"
	"github.com/deppfellow/schoolsite/internal/validation"
	"github.com/labstack/echo/v4"
)

type NewsHandler struct {
	Handler
}

type CreateNewsRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Emoji    string `json:"emoji"`
	Priority string `json:"priority" validate:"omitempty,oneof=normal high urgent"`
}

func (r *CreateNewsRequest) Validate() error {
	if err := validation.Required(
		validation.F("title", r.Title),
		validation.F("content", r.Content),
	); err != nil {
		return err
	}
	r.Priority = validation.SanitizeString(r.Priority)
	return validation.Struct(r)
}

func (h *NewsHandler) List(c echo.Context, _ *EmptyRequest) ([]*model.News, error) {
	return h.services.News.List(c.Request().Context())
}

func (h *NewsHandler) Create(c echo.Context, req *CreateNewsRequest) (*model.News, error) {
	return h.services.News.Create(c.Request().Context(), &model.News{
		Title:    validation.SanitizeString(req.Title),
		Content:  validation.SanitizeString(req.Content),
		Emoji:    validation.SanitizeString(req.Emoji),
		Priority: model.Priority(req.Priority),
	})
}

type EventHandler struct {
	Handler
}

type CreateEventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	EventDate   string `json:"event_date"`
	EventTime   string `json:"event_time"`
	Location    string `json:"location"`
	Category    string `json:"category" validate:"omitempty,oneof=academic sports cultural general"`
	IsFeatured  bool   `json:"is_featured"`
	ImageURL    string `json:"image_url"`

	date model.Date
}

func (r *CreateEventRequest) Validate() error {
	if err := validation.Required(
		validation.F("title", r.Title),
		validation.F("description", r.Description),
		validation.F("event_date", r.EventDate),
		validation.F("location", r.Location),
	); err != nil {
		return err
	}

	day, err := validation.ParseDate("event_date", r.EventDate)
	if err != nil {
		return err
	}
	r.date = model.NewDate(day)

	r.Category = validation.SanitizeString(r.Category)
	return validation.Struct(r)
}

func (h *EventHandler) List(c echo.Context, _ *EmptyRequest) ([]*model.Event, error) {
	return h.services.Events.List(c.Request().Context())
}

func (h *EventHandler) Create(c echo.Context, req *CreateEventRequest) (*model.Event, error) {
	return h.services.Events.Create(c.Request().Context(), &model.Event{
		Title:       validation.SanitizeString(req.Title),
		Description: validation.SanitizeString(req.Description),
		Date:        req.date,
		Time:        validation.SanitizeString(req.EventTime),
		Location:    validation.SanitizeString(req.Location),
		Category:    model.EventCategory(req.Category),
		IsFeatured:  req.IsFeatured,
		ImageURL:    validation.SanitizeString(req.ImageURL),
	})
}

type FacultyHandler struct {
	Handler
}

type CreateFacultyRequest struct {
	Name           string `json:"name"`
	Position       string `json:"position"`
	Qualifications string `json:"qualifications"`
	Experience     string `json:"experience"`
	Subjects       string `json:"subjects"`
	Description    string `json:"description"`
	PhotoURL       string `json:"photo_url"`
	PositionOrder  int    `json:"position_order" validate:"min=0"`
}

func (r *CreateFacultyRequest) Validate() error {
	if err := validation.Required(
		validation.F("name", r.Name),
		validation.F("position", r.Position),
		validation.F("qualifications", r.Qualifications),
	); err != nil {
		return err
	}
	return validation.Struct(r)
}

func (h *FacultyHandler) List(c echo.Context, _ *EmptyRequest) ([]*model.Faculty, error) {
	return h.services.Faculty.List(c.Request().Context())
}

func (h *FacultyHandler) Create(c echo.Context, req *CreateFacultyRequest) (*model.Faculty, error) {
	return h.services.Faculty.Create(c.Request().Context(), &model.Faculty{
		Name:           validation.SanitizeString(req.Name),
		Position:       validation.SanitizeString(req.Position),
		Qualifications: validation.SanitizeString(req.Qualifications),
		Experience:     validation.SanitizeString(req.Experience),
		Subjects:       validation.SanitizeString(req.Subjects),
		Description:    validation.SanitizeString(req.Description),
		PhotoURL:       validation.SanitizeString(req.PhotoURL),
		PositionOrder:  req.PositionOrder,
	})
}

type DashboardHandler struct {
	Handler
}

func (h *DashboardHandler) Stats(c echo.Context, _ *EmptyRequest) (*service.DashboardStats, error) {
	return h.services.Dashboard.Stats(c.Request().Context())
}
