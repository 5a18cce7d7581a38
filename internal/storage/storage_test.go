package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"photo.jpg":            "photo.jpg",
		"My Holiday Pic.PNG":   "My_Holiday_Pic.PNG",
		"../../etc/passwd":     "passwd",
		`C:\Users\me\cat.gif`:  "cat.gif",
		"..hidden.webp":        "hidden.webp",
		"annual..day.png":      "annual.day.png",
		"a...b....c.gif":       "a.b.c.gif",
		"résumé (1).jpeg":      "rsum_1.jpeg",
		"":                     "upload",
		"///":                  "upload",
	}
	for in, want := range cases {
		assert.Equal(t, want, SanitizeFilename(in), in)
	}
}

func TestNewKey(t *testing.T) {
	a, b := NewKey("photo.jpg"), NewKey("photo.jpg")
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasSuffix(a, "_photo.jpg"))
	assert.NoError(t, ValidateKey(a))
}

func TestValidateKey(t *testing.T) {
	for _, key := range []string{"", ".", "..", "../x.png", "a/b.png", `a\b.png`} {
		assert.ErrorIs(t, ValidateKey(key), ErrInvalidKey, key)
	}
	for _, key := range []string{"abc_photo.png", "abc_annual..day.png", "..png"} {
		assert.NoError(t, ValidateKey(key), key)
	}
}

func TestLocal_PutOpen(t *testing.T) {
	ctx := context.Background()
	l, err := NewLocal(t.TempDir(), "http://localhost:5000/")
	require.NoError(t, err)

	require.NoError(t, l.Put(ctx, "k_photo.png", strings.NewReader("png-bytes"), 9, "image/png"))

	obj, err := l.Open(ctx, "k_photo.png")
	require.NoError(t, err)
	defer obj.Body.Close()

	data, err := io.ReadAll(obj.Body)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
	assert.Equal(t, "image/png", obj.ContentType)
	assert.EqualValues(t, 9, obj.Size)

	assert.Equal(t, "http://localhost:5000/api/uploads/k_photo.png", l.URL("k_photo.png"))

	_, err = l.Open(ctx, "missing.png")
	assert.True(t, errors.Is(err, ErrObjectNotFound))

	_, err = l.Open(ctx, "../k_photo.png")
	assert.True(t, errors.Is(err, ErrInvalidKey))
}

func TestLocal_RelativeURL(t *testing.T) {
	l, err := NewLocal(t.TempDir(), "")
	require.NoError(t, err)
	assert.Equal(t, "/api/uploads/x.jpg", l.URL("x.jpg"))
}
