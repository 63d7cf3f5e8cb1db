package interfaces

import (
	"context"
	"database/sql"
	"errors"
)

// ErrNotFound is returned when a repository operation targets a row
// that does not exist.
var ErrNotFound = errors.New("not found")

// DBTX is the subset of *sql.DB / *sql.Tx the repositories need, so a
// repository can run against either.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
