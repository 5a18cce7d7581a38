package service

import (
	"context"

	"github.com/deppfellow/schoolsite/internal/model"
	"github.com/deppfellow/schoolsite/internal/repository"
	"github.com/deppfellow/schoolsite/internal/server"
)

type DashboardService struct {
	base
}

func NewDashboardService(s *server.Server, repos *repository.Repositories) *DashboardService {
	return &DashboardService{base: newBase(s, repos)}
}

type DashboardStats struct {
	Admissions struct {
		Total   int `json:"total"`
		Pending int `json:"pending"`
	} `json:"admissions"`
	Messages struct {
		Unread int `json:"unread"`
	} `json:"messages"`
	Events struct {
		Upcoming int `json:"upcoming"`
	} `json:"events"`
	Faculty struct {
		Active int `json:"active"`
	} `json:"faculty"`
}

// Stats counts admissions, unread messages, events from today (UTC) onwards
// and active faculty.
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	var (
		stats DashboardStats
		err   error
	)

	if stats.Admissions.Total, err = s.repos.Admissions.Count(ctx, ""); err != nil {
		return nil, err
	}
	if stats.Admissions.Pending, err = s.repos.Admissions.Count(ctx, model.AdmissionPending); err != nil {
		return nil, err
	}
	if stats.Messages.Unread, err = s.repos.Contact.Count(ctx, model.ContactUnread); err != nil {
		return nil, err
	}
	if stats.Events.Upcoming, err = s.repos.Events.CountFrom(ctx, model.NewDate(s.now())); err != nil {
		return nil, err
	}
	if stats.Faculty.Active, err = s.repos.Faculty.CountActive(ctx); err != nil {
		return nil, err
	}

	return &stats, nil
}
