package postgres

import (
	"context"
	"database/sql"
)

// SQLQuerier abstracts over *sql.DB and *sql.Tx so repositories work
// both standalone and inside a unit of work transaction
type SQLQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// uniqueViolation is the postgres error code for unique constraint violations
const uniqueViolation = "23505"
