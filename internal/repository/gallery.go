package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/schoolsite/internal/model"
	"github.com/deppfellow/schoolsite/internal/store"
)

type GalleryRepository struct {
	db store.Gateway
}

func (r *GalleryRepository) Create(ctx context.Context, g *model.GalleryImage) error {
	if err := r.db.Insert(ctx, model.TableGallery, g.Values()); err != nil {
		return fmt.Errorf("failed to create gallery image: %w", err)
	}
	return nil
}

func (r *GalleryRepository) ListActive(ctx context.Context) ([]*model.GalleryImage, error) {
	return queryAll(ctx, r.db, model.TableGallery, store.Query{
		Filters: []store.Filter{store.Eq("is_active", true)},
		Order:   []store.Order{store.Desc("created_at")},
	}, model.GalleryImageFromRow)
}
