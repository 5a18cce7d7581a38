package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/schoolsite/internal/model"
	"github.com/deppfellow/schoolsite/internal/store"
)

type EventRepository struct {
	db store.Gateway
}

func (r *EventRepository) Create(ctx context.Context, e *model.Event) error {
	if err := r.db.Insert(ctx, model.TableEvents, e.Values()); err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

// List returns every event, soonest first.
func (r *EventRepository) List(ctx context.Context) ([]*model.Event, error) {
	return queryAll(ctx, r.db, model.TableEvents, store.Query{
		Order: []store.Order{store.Asc("event_date")},
	}, model.EventFromRow)
}

// CountFrom counts events on or after day.
func (r *EventRepository) CountFrom(ctx context.Context, day model.Date) (int, error) {
	n, err := r.db.Count(ctx, model.TableEvents, store.Gte("event_date", day.Time))
	if err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return n, nil
}

func (r *EventRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	n, err := r.db.Count(ctx, model.TableEvents, store.Eq("title", title))
	if err != nil {
		return false, fmt.Errorf("failed to count events: %w", err)
	}
	return n > 0, nil
}

