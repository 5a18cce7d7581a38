// Package sqlite implements store.Gateway on an embedded SQLite file
// through gorm, for single-node installs that run without PostgreSQL.
package sqlite

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/deppfellow/schoolsite/internal/config"
	"github.com/deppfellow/schoolsite/internal/store"
	gormsqlite "github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

//go:embed schema.sql
var schema string

// timeLayout is fixed width so text comparison orders timestamps correctly.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Gateway implements store.Gateway on SQLite.
type Gateway struct {
	db   *gorm.DB
	inTx bool
}

var _ store.Gateway = (*Gateway)(nil)

// queryLogger adapts zerolog to gorm's logger.Writer.
type queryLogger struct {
	log *zerolog.Logger
}

func (w queryLogger) Printf(format string, args ...any) {
	w.log.Warn().Str("component", "database").Msgf(format, args...)
}

// Open opens (creating if needed) the database file at path and applies the schema.
func Open(path string, slowQuery time.Duration, logger *zerolog.Logger) (*Gateway, error) {
	dsn := path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)"

	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{
		NowFunc:        func() time.Time { return time.Now().UTC() },
		Logger: gormlogger.New(queryLogger{log: logger}, gormlogger.Config{
			SlowThreshold:             slowQuery,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sqlite handle: %w", err)
	}
	// One writer at a time; SQLite would answer SQLITE_BUSY otherwise.
	sqlDB.SetMaxOpenConns(1)

	for _, stmt := range strings.Split(schema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if err := db.Exec(stmt).Error; err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("failed to apply sqlite schema: %w", err)
		}
	}

	logger.Info().Str("path", path).Msg("opened sqlite database")

	return &Gateway{db: db}, nil
}

func (g *Gateway) Insert(ctx context.Context, table string, values store.Values) error {
	err := g.db.WithContext(ctx).Table(table).Create(encodeValues(values)).Error
	return wrapError(table, err)
}

func (g *Gateway) Query(ctx context.Context, table string, q store.Query) ([]store.Row, error) {
	tx := g.filtered(ctx, table, q.Filters)
	for _, o := range q.Ordering() {
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: o.Field}, Desc: o.Desc})
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	if q.Offset > 0 {
		tx = tx.Offset(q.Offset)
	}

	var maps []map[string]any
	if err := tx.Find(&maps).Error; err != nil {
		return nil, wrapError(table, err)
	}

	rows := make([]store.Row, len(maps))
	for i, m := range maps {
		rows[i] = store.Row(m)
	}
	return rows, nil
}

func (g *Gateway) Update(ctx context.Context, table, id string, values store.Values) error {
	res := g.db.WithContext(ctx).Table(table).
		Where(clause.Eq{Column: clause.Column{Name: "id"}, Value: id}).
		Updates(encodeValues(values))
	if res.Error != nil {
		return wrapError(table, res.Error)
	}
	if res.RowsAffected == 0 {
		return errors.Wrapf(store.ErrNotFound, "table:%s:%s", table, id)
	}
	return nil
}

func (g *Gateway) Count(ctx context.Context, table string, filters ...store.Filter) (int, error) {
	var n int64
	if err := g.filtered(ctx, table, filters).Count(&n).Error; err != nil {
		return 0, wrapError(table, err)
	}
	return int(n), nil
}

func (g *Gateway) InTx(ctx context.Context, fn func(tx store.Gateway) error) error {
	if g.inTx {
		return fn(g)
	}
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Gateway{db: tx, inTx: true})
	})
}

func (g *Gateway) Ping(ctx context.Context) error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (g *Gateway) Driver() string {
	return config.DriverSQLite
}

func (g *Gateway) Close() error {
	if g.inTx {
		return nil
	}
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (g *Gateway) filtered(ctx context.Context, table string, filters []store.Filter) *gorm.DB {
	tx := g.db.WithContext(ctx).Table(table)
	for _, f := range filters {
		column := clause.Column{Name: f.Field}
		value := encodeValue(f.Value)
		switch f.Op {
		case store.OpGte:
			tx = tx.Where(clause.Gte{Column: column, Value: value})
		default:
			tx = tx.Where(clause.Eq{Column: column, Value: value})
		}
	}
	return tx
}

func encodeValue(v any) any {
	if t, ok := v.(time.Time); ok {
		return t.UTC().Format(timeLayout)
	}
	return v
}

func encodeValues(values store.Values) map[string]any {
	out := make(map[string]any, len(values))
	for k, v := range values {
		out[k] = encodeValue(v)
	}
	return out
}

// wrapError tags err with its table; unique violations become store.ErrConflict.
// The raw driver error is kept so the violated column can be named.
func wrapError(table string, err error) error {
	if err == nil {
		return nil
	}
	if column, ok := uniqueViolation(err.Error()); ok || errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("table:%s:%s: %w: %w", table, column, store.ErrConflict, err)
	}
	return fmt.Errorf("table:%s: %w", table, err)
}

// uniqueViolation reads the column out of
// "UNIQUE constraint failed: admins.username (2067)".
func uniqueViolation(msg string) (column string, ok bool) {
	const marker = "UNIQUE constraint failed: "
	idx := strings.Index(msg, marker)
	if idx < 0 {
		return "", false
	}

	ref := msg[idx+len(marker):]
	dot := strings.Index(ref, ".")
	if dot < 0 {
		return "", true
	}
	fields := strings.FieldsFunc(ref[dot+1:], func(r rune) bool {
		return r == ' ' || r == ',' || r == ')' || r == '('
	})
	if len(fields) == 0 {
		return "", true
	}
	return fields[0], true
}
