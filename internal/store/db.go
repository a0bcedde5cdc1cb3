package store

import (
	"context"
	"database/sql"
)

// DBTX abstracts the database access methods shared by *sql.DB and *sql.Tx,
// allowing store implementations to run inside or outside a transaction
// without caring which.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
