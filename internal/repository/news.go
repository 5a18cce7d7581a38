package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/schoolsite/internal/model"
	"github.com/deppfellow/schoolsite/internal/store"
)

// PublicNewsLimit caps the public news feed.
const PublicNewsLimit = 10

type NewsRepository struct {
	db store.Gateway
}

func (r *NewsRepository) Create(ctx context.Context, n *model.News) error {
	if err := r.db.Insert(ctx, model.TableNews, n.Values()); err != nil {
		return fmt.Errorf("failed to create news: %w", err)
	}
	return nil
}

// ListActive returns the newest active items first.
func (r *NewsRepository) ListActive(ctx context.Context, limit int) ([]*model.News, error) {
	return queryAll(ctx, r.db, model.TableNews, store.Query{
		Filters: []store.Filter{store.Eq("is_active", true)},
		Order:   []store.Order{store.Desc("created_at")},
		Limit:   limit,
	}, model.NewsFromRow)
}

func (r *NewsRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	n, err := r.db.Count(ctx, model.TableNews, store.Eq("title", title))
	if err != nil {
		return false, fmt.Errorf("failed to count news: %w", err)
	}
	return n > 0, nil
}
