package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/schoolsite/internal/model"
	"github.com/deppfellow/schoolsite/internal/store"
)

type FacultyRepository struct {
	db store.Gateway
}

func (r *FacultyRepository) Create(ctx context.Context, f *model.Faculty) error {
	if err := r.db.Insert(ctx, model.TableFaculty, f.Values()); err != nil {
		return fmt.Errorf("failed to create faculty member: %w", err)
	}
	return nil
}

// ListActive returns active members in their configured display order.
func (r *FacultyRepository) ListActive(ctx context.Context) ([]*model.Faculty, error) {
	return queryAll(ctx, r.db, model.TableFaculty, store.Query{
		Filters: []store.Filter{store.Eq("is_active", true)},
		Order:   []store.Order{store.Asc("position_order")},
	}, model.FacultyFromRow)
}

func (r *FacultyRepository) CountActive(ctx context.Context) (int, error) {
	n, err := r.db.Count(ctx, model.TableFaculty, store.Eq("is_active", true))
	if err != nil {
		return 0, fmt.Errorf("failed to count faculty: %w", err)
	}
	return n, nil
}

func (r *FacultyRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	n, err := r.db.Count(ctx, model.TableFaculty, store.Eq("name", name))
	if err != nil {
		return false, fmt.Errorf("failed to count faculty: %w", err)
	}
	return n > 0, nil
}
