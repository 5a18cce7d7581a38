package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/schoolsite/internal/model"
	"github.com/deppfellow/schoolsite/internal/store"
)

// PublicToppersLimit caps the toppers list on the results page.
const PublicToppersLimit = 10

type ResultRepository struct {
	db store.Gateway
}

func (r *ResultRepository) Create(ctx context.Context, res *model.Result) error {
	if err := r.db.Insert(ctx, model.TableResults, res.Values()); err != nil {
		return fmt.Errorf("failed to create result: %w", err)
	}
	return nil
}

// ListByClass returns a class's results, latest year first.
func (r *ResultRepository) ListByClass(ctx context.Context, class model.ClassLevel) ([]*model.Result, error) {
	return queryAll(ctx, r.db, model.TableResults, store.Query{
		Filters: []store.Filter{store.Eq("class_level", string(class))},
		Order:   []store.Order{store.Desc("year")},
	}, model.ResultFromRow)
}

func (r *ResultRepository) Exists(ctx context.Context, class model.ClassLevel, year int) (bool, error) {
	n, err := r.db.Count(ctx, model.TableResults, store.Eq("class_level", string(class)), store.Eq("year", year))
	if err != nil {
		return false, fmt.Errorf("failed to count results: %w", err)
	}
	return n > 0, nil
}

func (r *ResultRepository) CreateTopper(ctx context.Context, t *model.Topper) error {
	if err := r.db.Insert(ctx, model.TableToppers, t.Values()); err != nil {
		return fmt.Errorf("failed to create topper: %w", err)
	}
	return nil
}

// ListToppers returns the most recent toppers first.
func (r *ResultRepository) ListToppers(ctx context.Context, limit int) ([]*model.Topper, error) {
	return queryAll(ctx, r.db, model.TableToppers, store.Query{
		Order: []store.Order{store.Desc("year")},
		Limit: limit,
	}, model.TopperFromRow)
}

func (r *ResultRepository) TopperExists(ctx context.Context, name string, year int) (bool, error) {
	n, err := r.db.Count(ctx, model.TableToppers, store.Eq("name", name), store.Eq("year", year))
	if err != nil {
		return false, fmt.Errorf("failed to count toppers: %w", err)
	}
	return n > 0, nil
}
