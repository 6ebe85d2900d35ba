package store

import (
	"context"
	"database/sql"
)

// Mode selects how a Factory hands out connections.
type Mode int

const (
	// PerCall delegates to the pool: every call acquires and releases a
	// connection on its own. Gateways in this mode are safe for concurrent
	// use and Close is a no-op.
	PerCall Mode = iota

	// Pinned acquires one connection at Open and holds it until Close.
	// All calls on the gateway serialize through that connection.
	Pinned
)

// Opener yields gateways. Workflow components receive an Opener by
// constructor; there is no package-level connection state.
type Opener interface {
	Open(ctx context.Context) (Gateway, error)
}

// Factory creates gateways over one *sql.DB in the mode fixed at
// construction.
type Factory struct {
	db   *sql.DB
	mode Mode
}

func NewFactory(db *sql.DB, mode Mode) *Factory {
	return &Factory{db: db, mode: mode}
}

func (f *Factory) Open(ctx context.Context) (Gateway, error) {
	if f.mode == PerCall {
		return &gateway{db: f.db}, nil
	}

	conn, err := f.db.Conn(ctx)
	if err != nil {
		return nil, wrap("open", err)
	}
	return &gateway{db: conn, release: conn.Close}, nil
}
