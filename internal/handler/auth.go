package handler

import (
	"time"

	"github.com/deppfellow/schoolsite/internal/errs"
	"github.com/deppfellow/schoolsite/internal/middleware"
	"github.com/deppfellow/schoolsite/internal/service"
	"github.com/deppfellow/schoolsite/internal/validation"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	Handler
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	if validation.Required(validation.F("username", r.Username), validation.F("password", r.Password)) != nil {
		return validation.NewError("credentials", "Username and password required")
	}
	r.Username = validation.SanitizeString(r.Username)
	return nil
}

func (h *AuthHandler) Login(c echo.Context, req *LoginRequest) (*service.LoginResult, error) {
	return h.services.Auth.Login(c.Request().Context(), req.Username, req.Password)
}

type MeResponse struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	FullName  string     `json:"full_name"`
	Email     string     `json:"email"`
	LastLogin *time.Time `json:"last_login"`
}

// Me returns the administrator behind the bearer token.
func (h *AuthHandler) Me(c echo.Context, _ *EmptyRequest) (*MeResponse, error) {
	admin := middleware.GetAdmin(c)
	if admin == nil {
		return nil, errs.NewUnauthorizedError("Missing authorization header")
	}
	return &MeResponse{
		ID:        admin.ID,
		Username:  admin.Username,
		FullName:  admin.FullName,
		Email:     admin.Email,
		LastLogin: admin.LastLogin,
	}, nil
}
