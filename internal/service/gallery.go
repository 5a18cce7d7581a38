package service

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/deppfellow/schoolsite/internal/errs"
	"github.com/deppfellow/schoolsite/internal/model"
	"github.com/deppfellow/schoolsite/internal/repository"
	"github.com/deppfellow/schoolsite/internal/server"
	"github.com/deppfellow/schoolsite/internal/storage"
)

// DefaultGalleryTitle names uploads sent without a title.
const DefaultGalleryTitle = "Untitled"

var allowedImageExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"webp": true,
}

// AllowedImage reports whether filename carries one of the accepted image
// extensions, case-insensitively.
func AllowedImage(filename string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	return allowedImageExtensions[ext]
}

type GalleryService struct {
	base
}

func NewGalleryService(s *server.Server, repos *repository.Repositories) *GalleryService {
	return &GalleryService{base: newBase(s, repos)}
}

// GalleryUpload is one image file plus its form fields.
type GalleryUpload struct {
	Title       string
	Description string
	Category    model.GalleryCategory
	Filename    string
	Size        int64
	Body        io.Reader
}

// Upload checks the file name, writes the bytes to object storage and then
// records the gallery image. Nothing is written when the file is rejected.
func (s *GalleryService) Upload(ctx context.Context, in GalleryUpload) (*model.GalleryImage, error) {
	if strings.TrimSpace(in.Filename) == "" {
		return nil, errs.NewBadRequestError("No file selected", nil, nil)
	}
	if !AllowedImage(in.Filename) {
		return nil, errs.NewBadRequestError("Invalid file type", nil, nil)
	}

	key := storage.NewKey(in.Filename)
	if err := s.server.Objects.Put(ctx, key, in.Body, in.Size, storage.ContentTypeFor(key)); err != nil {
		return nil, err
	}

	img := &model.GalleryImage{
		ID:          model.NewID(),
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    s.server.Objects.URL(key),
		Category:    in.Category,
		IsActive:    true,
		CreatedAt:   s.now(),
	}
	if strings.TrimSpace(img.Title) == "" {
		img.Title = DefaultGalleryTitle
	}
	if img.Category == "" {
		img.Category = model.GalleryGeneral
	}

	// TODO: delete the stored object when this insert fails.
	if err := s.inTx(ctx, func(r *repository.Repositories) error {
		return r.Gallery.Create(ctx, img)
	}); err != nil {
		return nil, err
	}

	s.logger(ctx).Info().
		Str("gallery_id", img.ID).
		Str("key", key).
		Str("storage", s.server.Objects.Driver()).
		Msg("gallery image uploaded")

	return img, nil
}

// List returns active images, newest first.
func (s *GalleryService) List(ctx context.Context) ([]*model.GalleryImage, error) {
	items, err := s.repos.Gallery.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*model.GalleryImage{}
	}
	return items, nil
}

// Open returns a stored upload by key.
func (s *GalleryService) Open(ctx context.Context, key string) (*storage.Object, error) {
	if err := storage.ValidateKey(key); err != nil {
		return nil, err
	}
	return s.server.Objects.Open(ctx, key)
}
