package handler

import (
	"github.com/deppfellow/schoolsite/internal/model"
	"github.com/deppfellow/schoolsite/internal/service"
	"github.com/deppfellow/schoolsite/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"
)

type ResultHandler struct {
	Handler
}

// CreateResultRequest accepts pass_rate as a string ("98%") or a number.
type CreateResultRequest struct {
	ClassLevel   model.ClassLevel `json:"class_level" validate:"omitempty,oneof=10 12"`
	Year         int              `json:"year" validate:"omitempty,min=1900,max=2100"`
	PassRate     any              `json:"pass_rate"`
	Above90      int              `json:"above_90" validate:"min=0"`
	Above95      int              `json:"above_95" validate:"min=0"`
	DistrictRank string           `json:"district_rank"`
	StateRank    string           `json:"state_rank"`

	passRate string
}

func (r *CreateResultRequest) Validate() error {
	if err := validation.Required(
		validation.F("class_level", r.ClassLevel),
		validation.F("year", r.Year),
		validation.F("pass_rate", r.PassRate),
	); err != nil {
		return err
	}

	passRate, err := cast.ToStringE(r.PassRate)
	if err != nil {
		return validation.NewError("pass_rate", "Invalid pass_rate")
	}
	r.passRate = validation.SanitizeString(passRate)

	return validation.Struct(r)
}

func (h *ResultHandler) Overview(c echo.Context, _ *EmptyRequest) (*service.ResultsOverview, error) {
	return h.services.Results.Overview(c.Request().Context())
}

func (h *ResultHandler) Create(c echo.Context, req *CreateResultRequest) (*model.Result, error) {
	return h.services.Results.Create(c.Request().Context(), &model.Result{
		ClassLevel:   req.ClassLevel,
		Year:         req.Year,
		PassRate:     req.passRate,
		Above90:      req.Above90,
		Above95:      req.Above95,
		DistrictRank: validation.SanitizeString(req.DistrictRank),
		StateRank:    validation.SanitizeString(req.StateRank),
	})
}

type CreateTopperRequest struct {
	Name        string           `json:"name"`
	ClassLevel  model.ClassLevel `json:"class_level" validate:"omitempty,oneof=10 12"`
	Year        int              `json:"year" validate:"omitempty,min=1900,max=2100"`
	Percentage  float64          `json:"percentage" validate:"min=0,max=100"`
	Stream      string           `json:"stream"`
	Achievement string           `json:"achievement"`
	PhotoURL    string           `json:"photo_url"`
}

func (r *CreateTopperRequest) Validate() error {
	if err := validation.Required(
		validation.F("name", r.Name),
		validation.F("class_level", r.ClassLevel),
		validation.F("year", r.Year),
		validation.F("percentage", r.Percentage),
		validation.F("stream", r.Stream),
	); err != nil {
		return err
	}
	return validation.Struct(r)
}

func (h *ResultHandler) CreateTopper(c echo.Context, req *CreateTopperRequest) (*model.Topper, error) {
	return h.services.Results.CreateTopper(c.Request().Context(), &model.Topper{
		Name:        validation.SanitizeString(req.Name),
		ClassLevel:  req.ClassLevel,
		Year:        req.Year,
		Percentage:  req.Percentage,
		Stream:      validation.SanitizeString(req.Stream),
		Achievement: validation.SanitizeString(req.Achievement),
		PhotoURL:    validation.SanitizeString(req.PhotoURL),
	})
}
