package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/deppfellow/schoolsite/internal/config"
	"github.com/deppfellow/schoolsite/internal/errs"
	"github.com/deppfellow/schoolsite/internal/model"
	"github.com/deppfellow/schoolsite/internal/repository"
	"github.com/deppfellow/schoolsite/internal/server"
	"github.com/deppfellow/schoolsite/internal/store"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

const bearerPrefix = "bearer "

// AuthService logs administrators in and checks their bearer tokens.
type AuthService struct {
	base
	secret []byte
	ttl    time.Duration
}

func NewAuthService(s *server.Server, repos *repository.Repositories) *AuthService {
	return &AuthService{
		base:   newBase(s, repos),
		secret: []byte(s.Config.Auth.SecretKey),
		ttl:    s.Config.Auth.TokenTTL,
	}
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	AccessToken string             `json:"access_token"`
	Admin       model.AdminProfile `json:"admin"`
}

func errInvalidCredentials() error {
	return errs.NewUnauthorizedError("Invalid credentials")
}

func errAdminRequired() error {
	return errs.NewForbiddenError("Admin access required")
}

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// burnCompare spends the same bcrypt time as a real check so unknown
// usernames are not distinguishable by latency.
func burnCompare(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}

// Login verifies username and password and issues a bearer token. Unknown
// users, wrong passwords and inactive accounts all fail the same way.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	admin, err := s.repos.Admins.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			burnCompare(password)
			return nil, errInvalidCredentials()
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil || !admin.IsActive {
		return nil, errInvalidCredentials()
	}

	now := s.now()
	if err := s.inTx(ctx, func(r *repository.Repositories) error {
		return r.Admins.TouchLastLogin(ctx, admin.ID, now)
	}); err != nil {
		return nil, err
	}

	token, err := s.IssueToken(admin.ID)
	if err != nil {
		return nil, err
	}

	s.logger(ctx).Info().Str("user_id", admin.ID).Msg("admin logged in")

	return &LoginResult{AccessToken: token, Admin: admin.Profile()}, nil
}

// IssueToken signs an HS256 token whose subject is the admin id.
func (s *AuthService) IssueToken(adminID string) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   adminID,
		Issuer:    config.ServiceName,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}
	return token, nil
}

// Authorize resolves an Authorization header to an active administrator.
//
// A missing, malformed, forged or expired token is Unauthorized (401); a
// valid token whose admin no longer exists or is inactive is Forbidden (403).
func (s *AuthService) Authorize(ctx context.Context, header string) (*model.Admin, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return nil, errs.NewUnauthorizedError("Missing authorization header")
	}
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return nil, errs.NewUnauthorizedError("Invalid authorization header")
	}
	raw := strings.TrimSpace(header[len(bearerPrefix):])

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errs.NewUnauthorizedError("Token has expired")
		}
		return nil, errs.NewUnauthorizedError("Invalid token")
	}
	if claims.Subject == "" {
		return nil, errs.NewUnauthorizedError("Invalid token")
	}

	admin, err := s.repos.Admins.GetByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, errAdminRequired()
		}
		return nil, err
	}
	if !admin.IsActive {
		return nil, errAdminRequired()
	}

	return admin, nil
}

// HashPassword returns the bcrypt hash stored for an administrator.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}
	return string(hash), nil
}
