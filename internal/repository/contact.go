package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/deppfellow/schoolsite/internal/model"
	"github.com/deppfellow/schoolsite/internal/store"
)

type ContactRepository struct {
	db store.Gateway
}

func (r *ContactRepository) Create(ctx context.Context, m *model.ContactMessage) error {
	if err := r.db.Insert(ctx, model.TableContactMessages, m.Values()); err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}

func (r *ContactRepository) GetByID(ctx context.Context, id string) (*model.ContactMessage, error) {
	return queryOne(ctx, r.db, model.TableContactMessages, model.ContactMessageFromRow, store.Eq("id", id))
}

// List mirrors AdmissionRepository.List for contact messages.
func (r *ContactRepository) List(ctx context.Context, status model.ContactStatus, page Page) ([]*model.ContactMessage, int, error) {
	filters := statusFilter("status", string(status))

	total, err := r.db.Count(ctx, model.TableContactMessages, filters...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count contact messages: %w", err)
	}

	items, err := queryAll(ctx, r.db, model.TableContactMessages, store.Query{
		Filters: filters,
		Order:   []store.Order{store.Desc("submitted_at")},
		Limit:   page.Limit,
		Offset:  page.Offset(),
	}, model.ContactMessageFromRow)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// UpdateStatus sets the triage status. A non-nil reply is stored together
// with the time it was written.
func (r *ContactRepository) UpdateStatus(ctx context.Context, id string, status model.ContactStatus, reply *string, at time.Time) error {
	values := store.Values{"status": string(status)}
	if reply != nil {
		values["admin_reply"] = *reply
		values["replied_at"] = at
	}

	if err := r.db.Update(ctx, model.TableContactMessages, id, values); err != nil {
		return fmt.Errorf("failed to update contact message status: %w", err)
	}
	return nil
}

func (r *ContactRepository) Count(ctx context.Context, status model.ContactStatus) (int, error) {
	n, err := r.db.Count(ctx, model.TableContactMessages, statusFilter("status", string(status))...)
	if err != nil {
		return 0, fmt.Errorf("failed to count contact messages: %w", err)
	}
	return n, nil
}
