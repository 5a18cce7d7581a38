// Package utils contains small helper functions used across the project.
//
// These are usually generic helpers that don't belong to a specific domain.
package utils

import (
	"strings"

	"github.com/spf13/cast"
)

// ParsePositiveInt parses a query value such as "page" or "limit".
// An empty value yields def; anything that is not an integer >= 1 reports ok=false.
func ParsePositiveInt(s string, def int) (n int, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, true
	}
	n, err := cast.ToIntE(s)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// OptionalFloat reads a loosely typed JSON number ("85.5", 85.5 or "").
// Blank input and nil yield nil.
func OptionalFloat(v any) (*float64, bool) {
	if v == nil {
		return nil, true
	}
	if s, isString := v.(string); isString && strings.TrimSpace(s) == "" {
		return nil, true
	}
	if s, isString := v.(string); isString {
		v = strings.TrimSpace(s)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return nil, false
	}
	return &f, true
}
