package handler

import (
	"github.com/deppfellow/schoolsite/internal/errs"
	"github.com/deppfellow/schoolsite/internal/model"
	"github.com/deppfellow/schoolsite/internal/service"
	"github.com/deppfellow/schoolsite/internal/validation"
	"github.com/labstack/echo/v4"
)

type ContactHandler struct {
	Handler
}

type SubmitContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (r *SubmitContactRequest) Validate() error {
	if err := validation.Required(
		validation.F("name", r.Name),
		validation.F("email", r.Email),
		validation.F("subject", r.Subject),
		validation.F("message", r.Message),
	); err != nil {
		return err
	}
	if !validation.IsEmail(r.Email) {
		return validation.NewError("email", "Invalid email format")
	}
	return nil
}

func (r *SubmitContactRequest) toModel() *model.ContactMessage {
	m := &model.ContactMessage{
		Name:    validation.SanitizeString(r.Name),
		Email:   validation.SanitizeString(r.Email),
		Subject: validation.SanitizeString(r.Subject),
		Message: validation.SanitizeString(r.Message),
	}
	if phone := validation.SanitizeString(r.Phone); phone != "" {
		m.Phone = &phone
	}
	return m
}

type SubmitContactResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

func (h *ContactHandler) Submit(c echo.Context, req *SubmitContactRequest) (*SubmitContactResponse, error) {
	m, err := h.services.Contact.Submit(c.Request().Context(), req.toModel())
	if err != nil {
		return nil, err
	}
	return &SubmitContactResponse{Message: "Message sent successfully", ID: m.ID}, nil
}

type ListMessagesRequest struct {
	PageQuery
}

func (r *ListMessagesRequest) Validate() error {
	if err := r.validatePage(); err != nil {
		return err
	}
	if r.Status != "" && !model.ContactStatus(r.Status).Valid() {
		return invalidStatus()
	}
	return nil
}

func (h *ContactHandler) List(c echo.Context, req *ListMessagesRequest) (*service.MessageList, error) {
	return h.services.Contact.List(c.Request().Context(), model.ContactStatus(req.Status), req.page)
}

type UpdateMessageStatusRequest struct {
	ID     string  `param:"id" json:"-"`
	Status string  `json:"status"`
	Reply  *string `json:"reply"`
}

func (r *UpdateMessageStatusRequest) Validate() error {
	if !validation.IsValidUUID(r.ID) {
		return errs.NewNotFoundError("Contact Message not found", nil)
	}
	if !model.ContactStatus(r.Status).Valid() {
		return invalidStatus()
	}
	if r.Reply != nil {
		reply := validation.SanitizeString(*r.Reply)
		r.Reply = &reply
	}
	return nil
}

func (h *ContactHandler) UpdateStatus(c echo.Context, req *UpdateMessageStatusRequest) (*MessageResponse, error) {
	err := h.services.Contact.UpdateStatus(c.Request().Context(), req.ID, model.ContactStatus(req.Status), req.Reply)
	if err != nil {
		return nil, err
	}
	return &MessageResponse{Message: "Status updated successfully"}, nil
}
