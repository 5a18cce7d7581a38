package service

import (
	"context"

	"github.com/deppfellow/schoolsite/internal/errs"
	"github.com/deppfellow/schoolsite/internal/lib/job"
	"github.com/deppfellow/schoolsite/internal/model"
	"github.com/deppfellow/schoolsite/internal/repository"
	"github.com/deppfellow/schoolsite/internal/server"
)

type AdmissionService struct {
	base
}

func NewAdmissionService(s *server.Server, repos *repository.Repositories) *AdmissionService {
	return &AdmissionService{base: newBase(s, repos)}
}

// AdmissionList is one page of applications.
type AdmissionList struct {
	Admissions []*model.Admission `json:"admissions"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
}

// Submit stores a new application as pending and queues the applicant's
// acknowledgement email.
func (s *AdmissionService) Submit(ctx context.Context, a *model.Admission) (*model.Admission, error) {
	now := s.now()
	a.ID = model.NewID()
	a.Status = model.AdmissionPending
	a.SubmittedAt = now
	a.UpdatedAt = now
	a.AdminNotes = nil

	if err := s.inTx(ctx, func(r *repository.Repositories) error {
		return r.Admissions.Create(ctx, a)
	}); err != nil {
		return nil, err
	}

	s.logger(ctx).Info().
		Str("admission_id", a.ID).
		Str("class_applying", a.ClassApplying).
		Msg("admission submitted")

	task, err := job.NewAdmissionReceivedTask(job.AdmissionReceivedPayload{
		To:            a.Email,
		StudentName:   a.StudentName,
		ClassApplying: a.ClassApplying,
		ApplicationID: a.ID,
	})
	s.notify(ctx, task, err)

	return a, nil
}

// List returns applications newest first. An empty status lists all of them.
func (s *AdmissionService) List(ctx context.Context, status model.AdmissionStatus, page repository.Page) (*AdmissionList, error) {
	if status != "" && !status.Valid() {
		return nil, errs.NewBadRequestError("Invalid status", nil, nil)
	}

	items, total, err := s.repos.Admissions.List(ctx, status, page)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*model.Admission{}
	}

	return &AdmissionList{
		Admissions: items,
		Total:      total,
		Page:       page.Number,
		Limit:      page.Limit,
		TotalPages: repository.TotalPages(total, page.Limit),
	}, nil
}

// UpdateStatus moves an application to a new review state. A nil notes
// leaves the stored notes untouched.
func (s *AdmissionService) UpdateStatus(ctx context.Context, id string, status model.AdmissionStatus, notes *string) error {
	if !status.Valid() {
		return errs.NewBadRequestError("Invalid status", nil, nil)
	}

	now := s.now()
	if err := s.inTx(ctx, func(r *repository.Repositories) error {
		return r.Admissions.UpdateStatus(ctx, id, status, notes, now)
	}); err != nil {
		return err
	}

	s.logger(ctx).Info().
		Str("admission_id", id).
		Str("status", string(status)).
		Msg("admission status updated")

	return nil
}
