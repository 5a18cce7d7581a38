package service

import (
	"context"

	"github.com/deppfellow/schoolsite/internal/errs"
	"github.com/deppfellow/schoolsite/internal/lib/job"
	"github.com/deppfellow/schoolsite/internal/model"
	"github.com/deppfellow/schoolsite/internal/repository"
	"github.com/deppfellow/schoolsite/internal/server"
)

type ContactService struct {
	base
}

func NewContactService(s *server.Server, repos *repository.Repositories) *ContactService {
	return &ContactService{base: newBase(s, repos)}
}

// MessageList is one page of contact messages.
type MessageList struct {
	Messages   []*model.ContactMessage `json:"messages"`
	Total      int                     `json:"total"`
	Page       int                     `json:"page"`
	Limit      int                     `json:"limit"`
	TotalPages int                     `json:"total_pages"`
}

// Submit stores an unread message and forwards it to the school office.
func (s *ContactService) Submit(ctx context.Context, m *model.ContactMessage) (*model.ContactMessage, error) {
	m.ID = model.NewID()
	m.Status = model.ContactUnread
	m.SubmittedAt = s.now()
	m.RepliedAt = nil
	m.AdminReply = nil

	if err := s.inTx(ctx, func(r *repository.Repositories) error {
		return r.Contact.Create(ctx, m)
	}); err != nil {
		return nil, err
	}

	s.logger(ctx).Info().Str("message_id", m.ID).Msg("contact message received")

	if to := s.officeAddress(); to != "" {
		task, err := job.NewContactReceivedTask(job.ContactReceivedPayload{
			To:      to,
			Name:    m.Name,
			Email:   m.Email,
			Subject: m.Subject,
			Message: m.Message,
		})
		s.notify(ctx, task, err)
	}

	return m, nil
}

func (s *ContactService) officeAddress() string {
	if addr := s.server.Config.Integration.AdminEmail; addr != "" {
		return addr
	}
	return s.server.Config.Auth.AdminEmail
}

// List returns messages newest first. An empty status lists all of them.
func (s *ContactService) List(ctx context.Context, status model.ContactStatus, page repository.Page) (*MessageList, error) {
	if status != "" && !status.Valid() {
		return nil, errs.NewBadRequestError("Invalid status", nil, nil)
	}

	items, total, err := s.repos.Contact.List(ctx, status, page)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*model.ContactMessage{}
	}

	return &MessageList{
		Messages:   items,
		Total:      total,
		Page:       page.Number,
		Limit:      page.Limit,
		TotalPages: repository.TotalPages(total, page.Limit),
	}, nil
}

// UpdateStatus changes a message's triage state. A non-nil reply is stored
// with the reply time.
func (s *ContactService) UpdateStatus(ctx context.Context, id string, status model.ContactStatus, reply *string) error {
	if !status.Valid() {
		return errs.NewBadRequestError("Invalid status", nil, nil)
	}

	now := s.now()
	if err := s.inTx(ctx, func(r *repository.Repositories) error {
		return r.Contact.UpdateStatus(ctx, id, status, reply, now)
	}); err != nil {
		return err
	}

	s.logger(ctx).Info().
		Str("message_id", id).
		Str("status", string(status)).
		Msg("contact message updated")

	return nil
}
