package database

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
)

// ErrNoRows is returned when a single-row query matches nothing.
var ErrNoRows = errors.New("no rows in result set")

// IsNoRows reports whether the error means no rows were found, covering
// both pgx.ErrNoRows and sql.ErrNoRows.
func IsNoRows(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, pgx.ErrNoRows) ||
		errors.Is(err, sql.ErrNoRows) ||
		errors.Is(err, ErrNoRows)
}
