package service

import (
	"context"

	"github.com/deppfellow/schoolsite/internal/model"
	"github.com/deppfellow/schoolsite/internal/repository"
	"github.com/deppfellow/schoolsite/internal/server"
	"github.com/deppfellow/schoolsite/internal/store"
	"github.com/pkg/errors"
)

// developmentAdminPassword is only used outside production when no password
// is configured.
const developmentAdminPassword = "admin123"

// SeedService creates the default administrator and, on request, the
// sample content shown on a fresh site.
type SeedService struct {
	base
}

func NewSeedService(s *server.Server, repos *repository.Repositories) *SeedService {
	return &SeedService{base: newBase(s, repos)}
}

// SeedReport counts the rows inserted by SeedSamples.
type SeedReport struct {
	News    int
	Events  int
	Results int
	Toppers int
	Faculty int
}

// SeedAdmin inserts the configured administrator. The username's unique
// constraint makes this idempotent: a conflict means it already exists and
// reports false.
func (s *SeedService) SeedAdmin(ctx context.Context) (bool, error) {
	cfg := s.server.Config.Auth
	password := cfg.AdminPassword
	if password == "" {
		if s.server.Config.Observability.IsProduction() {
			s.logger(ctx).Warn().Msg("no admin password configured, skipping admin seed")
			return false, nil
		}
		s.logger(ctx).Warn().
			Str("username", cfg.AdminUsername).
			Msg("no admin password configured, using the development default")
		password = developmentAdminPassword
	}

	hash, err := HashPassword(password)
	if err != nil {
		return false, err
	}

	admin := &model.Admin{
		ID:           model.NewID(),
		Username:     cfg.AdminUsername,
		Email:        cfg.AdminEmail,
		PasswordHash: hash,
		FullName:     cfg.AdminFullName,
		IsActive:     true,
		CreatedAt:    s.now(),
	}

	err = s.inTx(ctx, func(r *repository.Repositories) error {
		return r.Admins.Create(ctx, admin)
	})
	if errors.Is(err, store.ErrConflict) {
		s.logger(ctx).Debug().Str("username", admin.Username).Msg("admin already seeded")
		return false, nil
	}
	if err != nil {
		return false, err
	}

	s.logger(ctx).Info().Str("username", admin.Username).Msg("admin seeded")
	return true, nil
}

// SeedSamples inserts the sample news, events, results, toppers and faculty
// that are not present yet. Running it twice inserts nothing the second time.
func (s *SeedService) SeedSamples(ctx context.Context) (*SeedReport, error) {
	report := &SeedReport{}
	now := s.now()

	err := s.inTx(ctx, func(r *repository.Repositories) error {
		for _, n := range sampleNews() {
			exists, err := r.News.ExistsByTitle(ctx, n.Title)
			if err != nil {
				return err
			}
			if exists {
				continue
			}
			n.ID, n.IsActive, n.CreatedAt, n.UpdatedAt = model.NewID(), true, now, now
			if err := r.News.Create(ctx, n); err != nil {
				return err
			}
			report.News++
		}

		for _, e := range sampleEvents() {
			exists, err := r.Events.ExistsByTitle(ctx, e.Title)
			if err != nil {
				return err
			}
			if exists {
				continue
			}
			e.ID, e.CreatedAt, e.UpdatedAt = model.NewID(), now, now
			if err := r.Events.Create(ctx, e); err != nil {
				return err
			}
			report.Events++
		}

		for _, res := range sampleResults() {
			exists, err := r.Results.Exists(ctx, res.ClassLevel, res.Year)
			if err != nil {
				return err
			}
			if exists {
				continue
			}
			res.ID, res.CreatedAt = model.NewID(), now
			if err := r.Results.Create(ctx, res); err != nil {
				return err
			}
			report.Results++
		}

		for _, t := range sampleToppers() {
			exists, err := r.Results.TopperExists(ctx, t.Name, t.Year)
			if err != nil {
				return err
			}
			if exists {
				continue
			}
			t.ID, t.CreatedAt = model.NewID(), now
			if err := r.Results.CreateTopper(ctx, t); err != nil {
				return err
			}
			report.Toppers++
		}

		for _, f := range sampleFaculty() {
			exists, err := r.Faculty.ExistsByName(ctx, f.Name)
			if err != nil {
				return err
			}
			if exists {
				continue
			}
			f.ID, f.IsActive, f.CreatedAt = model.NewID(), true, now
			if err := r.Faculty.Create(ctx, f); err != nil {
				return err
			}
			report.Faculty++
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger(ctx).Info().
		Int("news", report.News).
		Int("events", report.Events).
		Int("results", report.Results).
		Int("toppers", report.Toppers).
		Int("faculty", report.Faculty).
		Msg("sample data seeded")

	return report, nil
}
