package model

import (
	"time"

	"github.com/deppfellow/schoolsite/internal/store"
)

type GalleryImage struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url"`
	Category    GalleryCategory `json:"category"`
	IsActive    bool            `json:"-"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (g *GalleryImage) Values() store.Values {
	return store.Values{
		"id":          g.ID,
		"title":       g.Title,
		"description": g.Description,
		"image_url":   g.ImageURL,
		"category":    string(g.Category),
		"is_active":   g.IsActive,
		"created_at":  g.CreatedAt,
	}
}

func GalleryImageFromRow(row store.Row) *GalleryImage {
	return &GalleryImage{
		ID:          rowString(row, "id"),
		Title:       rowString(row, "title"),
		Description: rowString(row, "description"),
		ImageURL:    rowString(row, "image_url"),
		Category:    GalleryCategory(rowString(row, "category")),
		IsActive:    rowBool(row, "is_active"),
		CreatedAt:   rowTime(row, "created_at"),
	}
}
