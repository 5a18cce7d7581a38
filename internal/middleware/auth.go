package middleware

import (
	"context"
	"time"

	"github.com/deppfellow/schoolsite/internal/model"
	"github.com/deppfellow/schoolsite/internal/server"
	"github.com/labstack/echo/v4"
)

// Authorizer resolves an Authorization header to an active administrator.
type Authorizer interface {
	Authorize(ctx context.Context, header string) (*model.Admin, error)
}

// AuthMiddleware guards admin routes.
type AuthMiddleware struct {
	server     *server.Server
	authorizer Authorizer
}

func NewAuthMiddleware(s *server.Server, authorizer Authorizer) *AuthMiddleware {
	return &AuthMiddleware{
		server:     s,
		authorizer: authorizer,
	}
}

// RequireAdmin rejects the request unless it carries a valid bearer token
// of an active administrator. On success the admin and its id are stored
// in the Echo context and the request logger gains a user_id field.
func (auth *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		admin, err := auth.authorizer.Authorize(
			c.Request().Context(),
			c.Request().Header.Get(echo.HeaderAuthorization),
		)
		if err != nil {
			GetLogger(c).Warn().
				Err(err).
				Str("function", "RequireAdmin").
				Dur("duration", time.Since(start)).
				Msg("admin authorization failed")
			return err
		}

		c.Set(UserIDKey, admin.ID)
		c.Set(AdminKey, admin)

		logger := GetLogger(c).With().Str("user_id", admin.ID).Logger()
		c.Set(LoggerKey, &logger)
		c.SetRequest(c.Request().WithContext(logger.WithContext(c.Request().Context())))

		logger.Debug().
			Str("function", "RequireAdmin").
			Dur("duration", time.Since(start)).
			Msg("admin authenticated")

		return next(c)
	}
}
