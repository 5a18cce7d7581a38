package database

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/deppfellow/schoolsite/internal/config"
	"github.com/deppfellow/schoolsite/internal/store"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

// dbtx is satisfied by both *pgxpool.Pool and pgx.Tx.
type dbtx interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Gateway implements store.Gateway on PostgreSQL.
type Gateway struct {
	conn dbtx
	// pool is nil inside a transaction.
	pool interface {
		Begin(ctx context.Context) (pgx.Tx, error)
		Ping(ctx context.Context) error
	}
	db *Database
}

var _ store.Gateway = (*Gateway)(nil)

func (g *Gateway) Insert(ctx context.Context, table string, values store.Values) error {
	sql, args := buildInsert(table, values)
	if _, err := g.conn.Exec(ctx, sql, args...); err != nil {
		return wrapError(table, err)
	}
	return nil
}

func (g *Gateway) Query(ctx context.Context, table string, q store.Query) ([]store.Row, error) {
	sql, args := buildSelect(table, q)
	rows, err := g.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapError(table, err)
	}

	maps, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, wrapError(table, err)
	}

	out := make([]store.Row, len(maps))
	for i, m := range maps {
		out[i] = store.Row(m)
	}
	return out, nil
}

func (g *Gateway) Update(ctx context.Context, table, id string, values store.Values) error {
	sql, args := buildUpdate(table, id, values)
	tag, err := g.conn.Exec(ctx, sql, args...)
	if err != nil {
		return wrapError(table, err)
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrapf(store.ErrNotFound, "table:%s:%s", table, id)
	}
	return nil
}

func (g *Gateway) Count(ctx context.Context, table string, filters ...store.Filter) (int, error) {
	sql, args := buildCount(table, filters)
	var n int64
	if err := g.conn.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, wrapError(table, err)
	}
	return int(n), nil
}

func (g *Gateway) InTx(ctx context.Context, fn func(tx store.Gateway) error) error {
	if g.pool == nil {
		return fn(g)
	}
	return pgx.BeginFunc(ctx, g.pool, func(tx pgx.Tx) error {
		return fn(&Gateway{conn: tx, db: g.db})
	})
}

func (g *Gateway) Ping(ctx context.Context) error {
	if g.pool == nil {
		return nil
	}
	return g.pool.Ping(ctx)
}

func (g *Gateway) Driver() string {
	return config.DriverPostgres
}

func (g *Gateway) Close() error {
	if g.pool == nil || g.db == nil {
		return nil
	}
	return g.db.Close()
}

// wrapError tags err with its table and marks unique violations as
// store.ErrConflict, keeping the *pgconn.PgError in the chain.
func wrapError(table string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("table:%s:%s: %w: %w", table, pgErr.ConstraintName, store.ErrConflict, err)
	}
	return fmt.Errorf("table:%s: %w", table, err)
}

func quote(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

func sortedColumns(values store.Values) []string {
	columns := make([]string, 0, len(values))
	for k := range values {
		columns = append(columns, k)
	}
	sort.Strings(columns)
	return columns
}

func buildInsert(table string, values store.Values) (string, []any) {
	columns := sortedColumns(values)
	quoted := make([]string, len(columns))
	placeholders := make([]string, len(columns))
	args := make([]any, len(columns))
	for i, c := range columns {
		quoted[i] = quote(c)
		placeholders[i] = "$" + strconv.Itoa(i+1)
		args[i] = values[c]
	}
	sql := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quote(table), strings.Join(quoted, ", "), strings.Join(placeholders, ", "))
	return sql, args
}

func buildWhere(filters []store.Filter, args []any) (string, []any) {
	if len(filters) == 0 {
		return "", args
	}
	clauses := make([]string, len(filters))
	for i, f := range filters {
		op := "="
		if f.Op == store.OpGte {
			op = ">="
		}
		args = append(args, f.Value)
		clauses[i] = fmt.Sprintf("%s %s $%d", quote(f.Field), op, len(args))
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func buildSelect(table string, q store.Query) (string, []any) {
	where, args := buildWhere(q.Filters, nil)

	ordering := q.Ordering()
	orderBy := make([]string, len(ordering))
	for i, o := range ordering {
		dir := "ASC"
		if o.Desc {
			dir = "DESC"
		}
		orderBy[i] = quote(o.Field) + " " + dir
	}

	var b strings.Builder
	b.WriteString("SELECT * FROM ")
	b.WriteString(quote(table))
	b.WriteString(where)
	b.WriteString(" ORDER BY ")
	b.WriteString(strings.Join(orderBy, ", "))
	if q.Limit > 0 {
		args = append(args, q.Limit)
		fmt.Fprintf(&b, " LIMIT $%d", len(args))
	}
	if q.Offset > 0 {
		args = append(args, q.Offset)
		fmt.Fprintf(&b, " OFFSET $%d", len(args))
	}
	return b.String(), args
}

func buildUpdate(table, id string, values store.Values) (string, []any) {
	columns := sortedColumns(values)
	sets := make([]string, len(columns))
	args := make([]any, 0, len(columns)+1)
	for i, c := range columns {
		args = append(args, values[c])
		sets[i] = fmt.Sprintf("%s = $%d", quote(c), len(args))
	}
	args = append(args, id)
	sql := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d",
		quote(table), strings.Join(sets, ", "), quote("id"), len(args))
	return sql, args
}

func buildCount(table string, filters []store.Filter) (string, []any) {
	where, args := buildWhere(filters, nil)
	return "SELECT COUNT(*) FROM " + quote(table) + where, args
}
