package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

// DriverMemory names the in-memory gateway.
const DriverMemory = "memory"

type memoryState map[string][]Row

func (s memoryState) clone() memoryState {
	out := make(memoryState, len(s))
	for table, rows := range s {
		copied := make([]Row, len(rows))
		for i, row := range rows {
			copied[i] = cloneRow(row)
		}
		out[table] = copied
	}
	return out
}

func cloneRow(row Row) Row {
	out := make(Row, len(row))
	for k, v := range row {
		out[k] = v
	}
	return out
}

// Memory is a process-local Gateway used for tests and throwaway
// development runs. Transactions hold the store lock, work on a clone
// of the state and swap it in on success.
type Memory struct {
	mu      sync.Mutex
	state   memoryState
	uniques map[string][]string
}

// NewMemory creates an empty store. uniques lists, per table, the columns
// whose values must not repeat (the in-memory stand-in for UNIQUE).
func NewMemory(uniques map[string][]string) *Memory {
	return &Memory{
		state:   memoryState{},
		uniques: uniques,
	}
}

func (m *Memory) Insert(ctx context.Context, table string, values Values) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.view(m.state).Insert(ctx, table, values)
}

func (m *Memory) Query(ctx context.Context, table string, q Query) ([]Row, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.view(m.state).Query(ctx, table, q)
}

func (m *Memory) Update(ctx context.Context, table, id string, values Values) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.view(m.state).Update(ctx, table, id, values)
}

func (m *Memory) Count(ctx context.Context, table string, filters ...Filter) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.view(m.state).Count(ctx, table, filters...)
}

func (m *Memory) InTx(ctx context.Context, fn func(tx Gateway) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx := m.view(m.state.clone())
	if err := fn(tx); err != nil {
		return err
	}
	m.state = tx.state
	return nil
}

func (m *Memory) Ping(context.Context) error { return nil }
func (m *Memory) Driver() string             { return DriverMemory }
func (m *Memory) Close() error               { return nil }

func (m *Memory) view(state memoryState) *memoryView {
	return &memoryView{state: state, uniques: m.uniques}
}

// memoryView runs operations against a state without locking; the caller
// holds Memory.mu.
type memoryView struct {
	state   memoryState
	uniques map[string][]string
}

func (v *memoryView) Insert(ctx context.Context, table string, values Values) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	row := Row(values)
	if err := v.checkUnique(table, "", row); err != nil {
		return err
	}
	v.state[table] = append(v.state[table], cloneRow(row))
	return nil
}

func (v *memoryView) Query(ctx context.Context, table string, q Query) ([]Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rows []Row
	for _, row := range v.state[table] {
		if matches(row, q.Filters) {
			rows = append(rows, cloneRow(row))
		}
	}

	ordering := q.Ordering()
	sort.SliceStable(rows, func(i, j int) bool {
		for _, o := range ordering {
			c := compare(rows[i][o.Field], rows[j][o.Field])
			if c == 0 {
				continue
			}
			if o.Desc {
				return c > 0
			}
			return c < 0
		}
		return false
	})

	if q.Offset > 0 {
		if q.Offset >= len(rows) {
			return []Row{}, nil
		}
		rows = rows[q.Offset:]
	}
	if q.Limit > 0 && q.Limit < len(rows) {
		rows = rows[:q.Limit]
	}
	if rows == nil {
		rows = []Row{}
	}
	return rows, nil
}

func (v *memoryView) Update(ctx context.Context, table, id string, values Values) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for i, row := range v.state[table] {
		if cast.ToString(row["id"]) != id {
			continue
		}
		updated := cloneRow(row)
		for k, val := range values {
			updated[k] = val
		}
		if err := v.checkUnique(table, id, updated); err != nil {
			return err
		}
		v.state[table][i] = updated
		return nil
	}
	return errors.Wrapf(ErrNotFound, "table:%s:%s", table, id)
}

func (v *memoryView) Count(ctx context.Context, table string, filters ...Filter) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	n := 0
	for _, row := range v.state[table] {
		if matches(row, filters) {
			n++
		}
	}
	return n, nil
}

func (v *memoryView) InTx(_ context.Context, fn func(tx Gateway) error) error {
	return fn(v)
}

func (v *memoryView) Ping(context.Context) error { return nil }
func (v *memoryView) Driver() string             { return DriverMemory }
func (v *memoryView) Close() error               { return nil }

func (v *memoryView) checkUnique(table, selfID string, row Row) error {
	for _, column := range v.uniques[table] {
		val, ok := row[column]
		if !ok || val == nil {
			continue
		}
		for _, existing := range v.state[table] {
			if selfID != "" && cast.ToString(existing["id"]) == selfID {
				continue
			}
			if compare(existing[column], val) == 0 {
				return errors.Wrapf(ErrConflict, "table:%s:%s", table, column)
			}
		}
	}
	return nil
}

func matches(row Row, filters []Filter) bool {
	for _, f := range filters {
		c := compare(row[f.Field], f.Value)
		switch f.Op {
		case OpEq:
			if c != 0 {
				return false
			}
		case OpGte:
			if row[f.Field] == nil || c < 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// compare orders two column values. nil sorts first; mismatched types fall
// back to their string forms.
func compare(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	switch av := a.(type) {
	case time.Time:
		bv, err := cast.ToTimeE(b)
		if err != nil {
			break
		}
		return av.Compare(bv)
	case bool:
		bv, err := cast.ToBoolE(b)
		if err != nil {
			break
		}
		switch {
		case av == bv:
			return 0
		case !av:
			return -1
		default:
			return 1
		}
	case string:
		if bv, ok := b.(string); ok {
			return strings.Compare(av, bv)
		}
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		af := cast.ToFloat64(av)
		bf, err := cast.ToFloat64E(b)
		if err != nil {
			break
		}
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}

	return strings.Compare(cast.ToString(a), cast.ToString(b))
}
