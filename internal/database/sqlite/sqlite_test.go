package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/deppfellow/schoolsite/internal/store"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *Gateway {
	t.Helper()
	logger := zerolog.Nop()
	g, err := Open(filepath.Join(t.TempDir(), "school.db"), 0, &logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = g.Close() })
	return g
}

func newsValues(id, title string, created time.Time, active bool) store.Values {
	return store.Values{
		"id":         id,
		"title":      title,
		"content":    "body",
		"emoji":      "📢",
		"priority":   "normal",
		"is_active":  active,
		"created_at": created,
		"updated_at": created,
	}
}

func TestGateway_InsertQueryOrder(t *testing.T) {
	ctx := context.Background()
	g := openTestDB(t)
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, g.Insert(ctx, "news", newsValues("b", "second", base.Add(time.Hour), true)))
	require.NoError(t, g.Insert(ctx, "news", newsValues("a", "first", base, true)))
	require.NoError(t, g.Insert(ctx, "news", newsValues("c", "tie", base.Add(time.Hour), true)))
	require.NoError(t, g.Insert(ctx, "news", newsValues("d", "hidden", base.Add(2*time.Hour), false)))

	rows, err := g.Query(ctx, "news", store.Query{
		Filters: []store.Filter{store.Eq("is_active", true)},
		Order:   []store.Order{store.Desc("created_at")},
	})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "b", rows[0]["id"])
	assert.Equal(t, "c", rows[1]["id"])
	assert.Equal(t, "a", rows[2]["id"])

	n, err := g.Count(ctx, "news", store.Gte("created_at", base.Add(time.Hour)))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	page, err := g.Query(ctx, "news", store.Query{Order: []store.Order{store.Asc("id")}, Limit: 2, Offset: 3})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "d", page[0]["id"])
}

func TestGateway_UpdateAndNotFound(t *testing.T) {
	ctx := context.Background()
	g := openTestDB(t)
	now := time.Now().UTC()

	require.NoError(t, g.Insert(ctx, "news", newsValues("n1", "title", now, true)))
	require.NoError(t, g.Update(ctx, "news", "n1", store.Values{"title": "changed", "is_active": false}))

	rows, err := g.Query(ctx, "news", store.Query{Filters: []store.Filter{store.Eq("id", "n1")}})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "changed", rows[0]["title"])
	assert.False(t, cast.ToBool(rows[0]["is_active"]))

	err = g.Update(ctx, "news", "missing", store.Values{"title": "x"})
	assert.True(t, errors.Is(err, store.ErrNotFound))
}

func TestGateway_UniqueConflict(t *testing.T) {
	ctx := context.Background()
	g := openTestDB(t)
	admin := func(id, email string) store.Values {
		return store.Values{
			"id":            id,
			"username":      "admin",
			"email":         email,
			"password_hash": "hash",
			"full_name":     "Admin",
			"is_active":     true,
			"created_at":    time.Now().UTC(),
		}
	}

	require.NoError(t, g.Insert(ctx, "admins", admin("1", "a@school.edu")))
	err := g.Insert(ctx, "admins", admin("2", "b@school.edu"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrConflict))
	assert.Contains(t, err.Error(), "table:admins:username")
}

func TestGateway_InTxRollback(t *testing.T) {
	ctx := context.Background()
	g := openTestDB(t)
	boom := errors.New("boom")

	err := g.InTx(ctx, func(tx store.Gateway) error {
		if err := tx.Insert(ctx, "news", newsValues("n1", "title", time.Now().UTC(), true)); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	n, err := g.Count(ctx, "news")
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, g.InTx(ctx, func(tx store.Gateway) error {
		return tx.Insert(ctx, "news", newsValues("n2", "kept", time.Now().UTC(), true))
	}))
	n, err = g.Count(ctx, "news")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestGateway_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "school.db")
	logger := zerolog.Nop()

	g, err := Open(path, 0, &logger)
	require.NoError(t, err)
	require.NoError(t, g.Insert(ctx, "news", newsValues("n1", "title", time.Now().UTC(), true)))
	require.NoError(t, g.Close())

	g, err = Open(path, 0, &logger)
	require.NoError(t, err)
	defer g.Close()

	n, err := g.Count(ctx, "news")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "sqlite", g.Driver())
}

func TestUniqueViolation(t *testing.T) {
	column, ok := uniqueViolation("constraint failed: UNIQUE constraint failed: admins.username (2067)")
	assert.True(t, ok)
	assert.Equal(t, "username", column)

	column, ok = uniqueViolation("UNIQUE constraint failed: admins.email, admins.username")
	assert.True(t, ok)
	assert.Equal(t, "email", column)

	column, ok = uniqueViolation("UNIQUE constraint failed: admins.")
	assert.True(t, ok)
	assert.Empty(t, column)

	column, ok = uniqueViolation("UNIQUE constraint failed: ")
	assert.True(t, ok)
	assert.Empty(t, column)

	_, ok = uniqueViolation("no such table: admins")
	assert.False(t, ok)
}
