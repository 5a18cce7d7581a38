package model

import (
	"time"

	"github.com/deppfellow/schoolsite/internal/store"
	"github.com/spf13/cast"
)

// Rows come back with driver-specific types (int32 vs int64, time.Time vs
// text for SQLite); these helpers coerce them.

func rowString(row store.Row, key string) string {
	return cast.ToString(row[key])
}

func rowOptString(row store.Row, key string) *string {
	v, ok := row[key]
	if !ok || v == nil {
		return nil
	}
	s := cast.ToString(v)
	return &s
}

func rowInt(row store.Row, key string) int {
	return cast.ToInt(row[key])
}

func rowFloat(row store.Row, key string) float64 {
	return cast.ToFloat64(row[key])
}

func rowOptFloat(row store.Row, key string) *float64 {
	v, ok := row[key]
	if !ok || v == nil {
		return nil
	}
	f := cast.ToFloat64(v)
	return &f
}

func rowBool(row store.Row, key string) bool {
	return cast.ToBool(row[key])
}

// sqliteTimeLayout is how the SQLite driver writes time.Time parameters.
const sqliteTimeLayout = "2006-01-02 15:04:05.999999999-07:00"

func toTime(v any) (time.Time, error) {
	t, err := cast.ToTimeE(v)
	if err != nil {
		s, ok := v.(string)
		if !ok {
			return time.Time{}, err
		}
		if t, err = time.Parse(sqliteTimeLayout, s); err != nil {
			return time.Time{}, err
		}
	}
	return t.UTC(), nil
}

func rowTime(row store.Row, key string) time.Time {
	t, err := toTime(row[key])
	if err != nil {
		return time.Time{}
	}
	return t
}

func rowOptTime(row store.Row, key string) *time.Time {
	v, ok := row[key]
	if !ok || v == nil {
		return nil
	}
	t, err := toTime(v)
	if err != nil {
		return nil
	}
	return &t
}

// nullable turns a nil pointer into a SQL NULL.
func nullable[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
