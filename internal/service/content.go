package service

import (
	"context"

	"github.com/deppfellow/schoolsite/internal/model"
	"github.com/deppfellow/schoolsite/internal/repository"
	"github.com/deppfellow/schoolsite/internal/server"
)

type NewsService struct {
	base
}

func NewNewsService(s *server.Server, repos *repository.Repositories) *NewsService {
	return &NewsService{base: newBase(s, repos)}
}

// Create publishes a news item. Empty emoji and priority get their defaults.
func (s *NewsService) Create(ctx context.Context, n *model.News) (*model.News, error) {
	now := s.now()
	n.ID = model.NewID()
	n.IsActive = true
	n.CreatedAt = now
	n.UpdatedAt = now
	if n.Emoji == "" {
		n.Emoji = model.DefaultNewsEmoji
	}
	if n.Priority == "" {
		n.Priority = model.PriorityNormal
	}

	if err := s.inTx(ctx, func(r *repository.Repositories) error {
		return r.News.Create(ctx, n)
	}); err != nil {
		return nil, err
	}

	s.logger(ctx).Info().Str("news_id", n.ID).Msg("news created")
	return n, nil
}

// List returns the newest active items, at most repository.PublicNewsLimit.
func (s *NewsService) List(ctx context.Context) ([]*model.News, error) {
	items, err := s.repos.News.ListActive(ctx, repository.PublicNewsLimit)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*model.News{}
	}
	return items, nil
}

type EventService struct {
	base
}

func NewEventService(s *server.Server, repos *repository.Repositories) *EventService {
	return &EventService{base: newBase(s, repos)}
}

func (s *EventService) Create(ctx context.Context, e *model.Event) (*model.Event, error) {
	now := s.now()
	e.ID = model.NewID()
	e.CreatedAt = now
	e.UpdatedAt = now
	if e.Category == "" {
		e.Category = model.EventGeneral
	}

	if err := s.inTx(ctx, func(r *repository.Repositories) error {
		return r.Events.Create(ctx, e)
	}); err != nil {
		return nil, err
	}

	s.logger(ctx).Info().Str("event_id", e.ID).Str("date", e.Date.String()).Msg("event created")
	return e, nil
}

// List returns every event, earliest date first.
func (s *EventService) List(ctx context.Context) ([]*model.Event, error) {
	items, err := s.repos.Events.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*model.Event{}
	}
	return items, nil
}

type FacultyService struct {
	base
}

func NewFacultyService(s *server.Server, repos *repository.Repositories) *FacultyService {
	return &FacultyService{base: newBase(s, repos)}
}

func (s *FacultyService) Create(ctx context.Context, f *model.Faculty) (*model.Faculty, error) {
	f.ID = model.NewID()
	f.IsActive = true
	f.CreatedAt = s.now()

	if err := s.inTx(ctx, func(r *repository.Repositories) error {
		return r.Faculty.Create(ctx, f)
	}); err != nil {
		return nil, err
	}

	s.logger(ctx).Info().Str("faculty_id", f.ID).Msg("faculty member added")
	return f, nil
}

// List returns active staff by ascending position order.
func (s *FacultyService) List(ctx context.Context) ([]*model.Faculty, error) {
	items, err := s.repos.Faculty.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*model.Faculty{}
	}
	return items, nil
}
