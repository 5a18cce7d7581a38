// Package repository handles all interactions with the persistence gateway.
//
// Each repository owns one table: it turns entities into column values,
// picks the filters and ordering a listing needs, and maps rows back into
// entities. SQL lives in the gateway implementations, not here.
package repository

import (
	"context"
	"fmt"
	"math"

	"github.com/deppfellow/schoolsite/internal/store"
)

// Page is a 1-based page request.
type Page struct {
	Number int
	Limit  int
}

// Offset returns the number of rows before this page. It saturates at
// math.MaxInt instead of wrapping.
func (p Page) Offset() int {
	if p.Number <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.Number-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Number - 1) * p.Limit
}

// TotalPages is ceil(total / limit).
func TotalPages(total, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	return pages
}

// queryAll runs q on table and maps every row through fromRow.
func queryAll[T any](ctx context.Context, db store.Gateway, table string, q store.Query, fromRow func(store.Row) *T) ([]*T, error) {
	rows, err := db.Query(ctx, table, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}

	items := make([]*T, 0, len(rows))
	for _, row := range rows {
		items = append(items, fromRow(row))
	}
	return items, nil
}

// queryOne returns the first row matching filters, or store.ErrNotFound.
func queryOne[T any](ctx context.Context, db store.Gateway, table string, fromRow func(store.Row) *T, filters ...store.Filter) (*T, error) {
	items, err := queryAll(ctx, db, table, store.Query{Filters: filters, Limit: 1}, fromRow)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("table:%s:%s: %w", table, describe(filters), store.ErrNotFound)
	}
	return items[0], nil
}

func describe(filters []store.Filter) string {
	if len(filters) == 0 {
		return ""
	}
	return fmt.Sprint(filters[0].Value)
}

// statusFilter returns an equality filter on column unless status is empty.
func statusFilter(column, status string) []store.Filter {
	if status == "" {
		return nil
	}
	return []store.Filter{store.Eq(column, status)}
}
