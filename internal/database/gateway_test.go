package database

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/deppfellow/schoolsite/internal/store"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestBuildInsert(t *testing.T) {
	sql, args := buildInsert("news", store.Values{"title": "Hello", "id": "n-1", "is_active": true})
	assert.Equal(t, `INSERT INTO "news" ("id", "is_active", "title") VALUES ($1, $2, $3)`, sql)
	assert.Equal(t, []any{"n-1", true, "Hello"}, args)
}

func TestBuildSelect(t *testing.T) {
	sql, args := buildSelect("admissions", store.Query{
		Filters: []store.Filter{store.Eq("application_status", "pending")},
		Order:   []store.Order{store.Desc("submitted_at")},
		Limit:   20,
		Offset:  40,
	})
	assert.Equal(t,
		`SELECT * FROM "admissions" WHERE "application_status" = $1 ORDER BY "submitted_at" DESC, "id" ASC LIMIT $2 OFFSET $3`,
		sql)
	assert.Equal(t, []any{"pending", 20, 40}, args)

	sql, args = buildSelect("events", store.Query{Order: []store.Order{store.Asc("event_date")}})
	assert.Equal(t, `SELECT * FROM "events" ORDER BY "event_date" ASC, "id" ASC`, sql)
	assert.Empty(t, args)
}

func TestBuildUpdate(t *testing.T) {
	sql, args := buildUpdate("admissions", "a-1", store.Values{"application_status": "approved", "admin_notes": nil})
	assert.Equal(t, `UPDATE "admissions" SET "admin_notes" = $1, "application_status" = $2 WHERE "id" = $3`, sql)
	assert.Equal(t, []any{nil, "approved", "a-1"}, args)
}

func TestBuildCount(t *testing.T) {
	today := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	sql, args := buildCount("events", []store.Filter{store.Gte("event_date", today)})
	assert.Equal(t, `SELECT COUNT(*) FROM "events" WHERE "event_date" >= $1`, sql)
	assert.Equal(t, []any{today}, args)
}

func TestQuote_EscapesIdentifiers(t *testing.T) {
	assert.Equal(t, `"weird""name"`, quote(`weird"name`))
}

func TestWrapError_UniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "admins_username_key"}
	err := wrapError("admins", pgErr)

	assert.True(t, errors.Is(err, store.ErrConflict))
	var got *pgconn.PgError
	assert.True(t, errors.As(err, &got))

	other := wrapError("admins", errors.New("boom"))
	assert.False(t, errors.Is(other, store.ErrConflict))
}

func TestSlowQueryTracer(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	tracer := &slowQueryTracer{threshold: 500 * time.Millisecond, log: &log}

	ctx := tracer.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT 1"})
	tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{})
	assert.Empty(t, buf.String())

	past := context.WithValue(context.Background(), queryStartKey{}, time.Now().Add(-time.Second))
	tracer.TraceQueryEnd(past, nil, pgx.TraceQueryEndData{})
	assert.Contains(t, buf.String(), "slow query")
}
