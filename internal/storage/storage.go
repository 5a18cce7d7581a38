// Package storage holds uploaded gallery files.
//
// An ObjectStore maps a flat key ("<uuid>_<name>.jpg") to bytes and to the
// public URL clients use to fetch them. Local disk and S3 buckets are
// supported; the rest of the application only sees the interface.
package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/deppfellow/schoolsite/internal/config"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrObjectNotFound is returned by Open for unknown keys.
var ErrObjectNotFound = errors.New("object not found")

// ErrInvalidKey is returned for keys that are empty or could escape the store.
var ErrInvalidKey = errors.New("invalid object key")

// Object is an open stored file. Callers must close Body.
type Object struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

// ObjectStore persists uploaded files.
type ObjectStore interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	Open(ctx context.Context, key string) (*Object, error)
	// URL is the public reference stored on the gallery record.
	URL(key string) string
	Driver() string
}

// New builds the ObjectStore selected by cfg.Driver.
func New(ctx context.Context, cfg *config.StorageConfig) (ObjectStore, error) {
	switch cfg.Driver {
	case config.StorageS3:
		return NewS3(ctx, cfg)
	case config.StorageLocal, "":
		return NewLocal(cfg.LocalDir, cfg.PublicBaseURL)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

var (
	unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)
	dotRuns     = regexp.MustCompile(`\.{2,}`)
)

// SanitizeFilename reduces name to a safe base name made of letters,
// digits, dots, dashes and underscores.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeChars.ReplaceAllString(name, "")
	name = dotRuns.ReplaceAllString(name, ".")
	name = strings.TrimLeft(name, "._")
	if name == "" {
		return "upload"
	}
	return name
}

// NewKey returns a collision-resistant key for an uploaded file.
func NewKey(originalName string) string {
	return uuid.NewString() + "_" + SanitizeFilename(originalName)
}

// ValidateKey rejects empty keys, "." and "..", and anything with a path
// separator. Without separators a key always names a single file.
func ValidateKey(key string) error {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return errors.Wrapf(ErrInvalidKey, "key %q", key)
	}
	return nil
}

// ContentTypeFor guesses a MIME type from the key's extension.
func ContentTypeFor(key string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(key))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
