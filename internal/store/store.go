// Package store defines the persistence gateway every repository talks to.
//
// A Gateway knows four verbs (insert, query, update, count) over named
// tables plus a transaction scope. Rows travel as plain column maps so
// the same repository code runs against PostgreSQL, an SQLite file or
// the in-memory implementation in this package.
package store

import (
	"context"

	"github.com/pkg/errors"
)

var (
	// ErrNotFound is returned by Update when no row carries the given id.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a write violates a unique column.
	ErrConflict = errors.New("record already exists")
)

// Values is a set of column assignments for Insert and Update.
type Values map[string]any

// Row is a single result row keyed by column name.
type Row map[string]any

// Op is a comparison operator usable in a Filter.
type Op string

const (
	OpEq  Op = "eq"
	OpGte Op = "gte"
)

// Filter restricts a query to rows where Field Op Value holds.
type Filter struct {
	Field string
	Op    Op
	Value any
}

// Eq matches rows whose column equals v.
func Eq(field string, v any) Filter {
	return Filter{Field: field, Op: OpEq, Value: v}
}

// Gte matches rows whose column is greater than or equal to v.
func Gte(field string, v any) Filter {
	return Filter{Field: field, Op: OpGte, Value: v}
}

// Order sorts results by a single column.
type Order struct {
	Field string
	Desc  bool
}

// Asc and Desc build Order clauses.
func Asc(field string) Order  { return Order{Field: field} }
func Desc(field string) Order { return Order{Field: field, Desc: true} }

// Query describes a filtered, ordered, paginated read. Zero Limit means no limit.
type Query struct {
	Filters []Filter
	Order   []Order
	Limit   int
	Offset  int
}

// Ordering returns the query's ordering with a trailing id tie-breaker so
// rows sharing a sort key always come back in the same order.
func (q Query) Ordering() []Order {
	for _, o := range q.Order {
		if o.Field == "id" {
			return q.Order
		}
	}
	return append(append([]Order{}, q.Order...), Order{Field: "id"})
}

// Gateway is the persistence contract shared by all backends.
type Gateway interface {
	// Insert adds one row. A unique violation yields ErrConflict.
	Insert(ctx context.Context, table string, values Values) error

	// Query returns the rows matching q, in q's order.
	Query(ctx context.Context, table string, q Query) ([]Row, error)

	// Update overwrites the given columns of the row with this id.
	// A missing row yields ErrNotFound.
	Update(ctx context.Context, table, id string, values Values) error

	// Count returns how many rows match every filter.
	Count(ctx context.Context, table string, filters ...Filter) (int, error)

	// InTx runs fn against a transactional view. Returning an error
	// from fn rolls every write in it back.
	InTx(ctx context.Context, fn func(tx Gateway) error) error

	Ping(ctx context.Context) error
	Driver() string
	Close() error
}
