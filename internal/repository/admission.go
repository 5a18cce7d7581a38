package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/deppfellow/schoolsite/internal/model"
	"github.com/deppfellow/schoolsite/internal/store"
)

type AdmissionRepository struct {
	db store.Gateway
}

func (r *AdmissionRepository) Create(ctx context.Context, a *model.Admission) error {
	if err := r.db.Insert(ctx, model.TableAdmissions, a.Values()); err != nil {
		return fmt.Errorf("failed to create admission: %w", err)
	}
	return nil
}

func (r *AdmissionRepository) GetByID(ctx context.Context, id string) (*model.Admission, error) {
	return queryOne(ctx, r.db, model.TableAdmissions, model.AdmissionFromRow, store.Eq("id", id))
}

// List returns one page of applications, newest submission first, and the
// number of applications matching status. An empty status matches all.
func (r *AdmissionRepository) List(ctx context.Context, status model.AdmissionStatus, page Page) ([]*model.Admission, int, error) {
	filters := statusFilter("application_status", string(status))

	total, err := r.db.Count(ctx, model.TableAdmissions, filters...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count admissions: %w", err)
	}

	items, err := queryAll(ctx, r.db, model.TableAdmissions, store.Query{
		Filters: filters,
		Order:   []store.Order{store.Desc("submitted_at")},
		Limit:   page.Limit,
		Offset:  page.Offset(),
	}, model.AdmissionFromRow)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// UpdateStatus sets the review status. A nil notes keeps the stored notes.
func (r *AdmissionRepository) UpdateStatus(ctx context.Context, id string, status model.AdmissionStatus, notes *string, at time.Time) error {
	values := store.Values{
		"application_status": string(status),
		"updated_at":         at,
	}
	if notes != nil {
		values["admin_notes"] = *notes
	}

	if err := r.db.Update(ctx, model.TableAdmissions, id, values); err != nil {
		return fmt.Errorf("failed to update admission status: %w", err)
	}
	return nil
}

func (r *AdmissionRepository) Count(ctx context.Context, status model.AdmissionStatus) (int, error) {
	n, err := r.db.Count(ctx, model.TableAdmissions, statusFilter("application_status", string(status))...)
	if err != nil {
		return 0, fmt.Errorf("failed to count admissions: %w", err)
	}
	return n, nil
}
