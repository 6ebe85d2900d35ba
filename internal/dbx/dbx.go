// Package dbx declares the slice of database/sql the store gateway runs on.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql used by the store gateway.
// *sql.DB, *sql.Conn and *sql.Tx all satisfy this interface, which is what
// lets the gateway operate identically over the pool and over a pinned
// connection.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
