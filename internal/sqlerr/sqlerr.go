// Package sqlerr specifically handles database driver errors.
//
// It parses cryptic error codes from the database driver (and the
// gateway sentinels of package store) and converts them into
// user-friendly messages (e.g., converting a "unique violation"
// into a "Bad Request" error)
package sqlerr
