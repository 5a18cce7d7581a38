package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/deppfellow/schoolsite/internal/config"
	"github.com/pkg/errors"
)

// UploadsPath is the route prefix that serves locally stored files.
const UploadsPath = "/api/uploads/"

// Local stores files in a directory on disk.
type Local struct {
	dir     string
	baseURL string
}

// NewLocal creates dir if needed. baseURL may be empty, giving
// site-relative URLs such as /api/uploads/<key>.
func NewLocal(dir, baseURL string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Local{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (l *Local) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}

	path := filepath.Join(l.dir, key)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", key, err)
	}

	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("failed to write %s: %w", key, err)
	}

	return f.Close()
}

func (l *Local) Open(ctx context.Context, key string) (*Object, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(l.dir, key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrObjectNotFound, "key %q", key)
		}
		return nil, fmt.Errorf("failed to open %s: %w", key, err)
	}

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		f.Close()
		return nil, errors.Wrapf(ErrObjectNotFound, "key %q", key)
	}

	return &Object{Body: f, ContentType: ContentTypeFor(key), Size: info.Size()}, nil
}

func (l *Local) URL(key string) string {
	return l.baseURL + UploadsPath + key
}

func (l *Local) Driver() string {
	return config.StorageLocal
}
