package handler

import (
	"github.com/deppfellow/schoolsite/internal/errs"
	"github.com/deppfellow/schoolsite/internal/lib/utils"
	"github.com/deppfellow/schoolsite/internal/model"
	"github.com/deppfellow/schoolsite/internal/service"
	"github.com/deppfellow/schoolsite/internal/validation"
	"github.com/labstack/echo/v4"
)

type AdmissionHandler struct {
	Handler
}

// SubmitAdmissionRequest is the public application form. Field names follow
// the frontend's camelCase.
type SubmitAdmissionRequest struct {
	StudentName        string `json:"studentName"`
	ClassApplying      string `json:"classApplying"`
	DateOfBirth        string `json:"dateOfBirth"`
	Gender             string `json:"gender"`
	FatherName         string `json:"fatherName"`
	MotherName         string `json:"motherName"`
	Phone              string `json:"phone"`
	Email              string `json:"email"`
	Address            string `json:"address"`
	PreviousSchool     string `json:"previousSchool"`
	PreviousPercentage any    `json:"previousPercentage"`

	admission *model.Admission
}

func (r *SubmitAdmissionRequest) Validate() error {
	if err := validation.Required(
		validation.F("studentName", r.StudentName),
		validation.F("classApplying", r.ClassApplying),
		validation.F("dateOfBirth", r.DateOfBirth),
		validation.F("gender", r.Gender),
		validation.F("fatherName", r.FatherName),
		validation.F("motherName", r.MotherName),
		validation.F("phone", r.Phone),
		validation.F("email", r.Email),
		validation.F("address", r.Address),
	); err != nil {
		return err
	}

	if !validation.IsEmail(r.Email) {
		return validation.NewError("email", "Invalid email format")
	}
	if !validation.IsPhone(r.Phone) {
		return validation.NewError("phone", "Invalid phone number format")
	}

	dob, err := validation.ParseDate("dateOfBirth", r.DateOfBirth)
	if err != nil {
		return err
	}

	percentage, ok := utils.OptionalFloat(r.PreviousPercentage)
	if !ok {
		return validation.NewError("previousPercentage", "Invalid previousPercentage")
	}

	r.admission = &model.Admission{
		StudentName:        validation.SanitizeString(r.StudentName),
		ClassApplying:      validation.SanitizeString(r.ClassApplying),
		DateOfBirth:        model.NewDate(dob),
		Gender:             validation.SanitizeString(r.Gender),
		FatherName:         validation.SanitizeString(r.FatherName),
		MotherName:         validation.SanitizeString(r.MotherName),
		Phone:              validation.SanitizeString(r.Phone),
		Email:              validation.SanitizeString(r.Email),
		Address:            validation.SanitizeString(r.Address),
		PreviousSchool:     validation.SanitizeString(r.PreviousSchool),
		PreviousPercentage: percentage,
	}
	return nil
}

type SubmitAdmissionResponse struct {
	Message       string `json:"message"`
	ApplicationID string `json:"application_id"`
}

func (h *AdmissionHandler) Submit(c echo.Context, req *SubmitAdmissionRequest) (*SubmitAdmissionResponse, error) {
	a, err := h.services.Admissions.Submit(c.Request().Context(), req.admission)
	if err != nil {
		return nil, err
	}
	return &SubmitAdmissionResponse{
		Message:       "Application submitted successfully",
		ApplicationID: a.ID,
	}, nil
}

type ListAdmissionsRequest struct {
	PageQuery
}

func (r *ListAdmissionsRequest) Validate() error {
	if err := r.validatePage(); err != nil {
		return err
	}
	if r.Status != "" && !model.AdmissionStatus(r.Status).Valid() {
		return invalidStatus()
	}
	return nil
}

func (h *AdmissionHandler) List(c echo.Context, req *ListAdmissionsRequest) (*service.AdmissionList, error) {
	return h.services.Admissions.List(c.Request().Context(), model.AdmissionStatus(req.Status), req.page)
}

type UpdateAdmissionStatusRequest struct {
	ID     string  `param:"id" json:"-"`
	Status string  `json:"status"`
	Notes  *string `json:"notes"`
}

func (r *UpdateAdmissionStatusRequest) Validate() error {
	if !validation.IsValidUUID(r.ID) {
		return errs.NewNotFoundError("Admission not found", nil)
	}
	if !model.AdmissionStatus(r.Status).Valid() {
		return invalidStatus()
	}
	return nil
}

// MessageResponse is the {"message": ...} acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

func (h *AdmissionHandler) UpdateStatus(c echo.Context, req *UpdateAdmissionStatusRequest) (*MessageResponse, error) {
	err := h.services.Admissions.UpdateStatus(c.Request().Context(), req.ID, model.AdmissionStatus(req.Status), req.Notes)
	if err != nil {
		return nil, err
	}
	return &MessageResponse{Message: "Status updated successfully"}, nil
}
