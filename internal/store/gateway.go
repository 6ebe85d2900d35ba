// Package store is the gateway to the backing relational database. It
// executes named stored routines with positional parameters and maps their
// rows back to Go values; it never accepts free-form SQL from callers.
package store

import (
	"context"

	"github.com/masjidapp/backend/internal/dbx"
)

// RowScanner is the per-row scanning surface handed to row mappers.
// *sql.Rows satisfies it.
type RowScanner interface {
	Scan(dest ...any) error
}

// Gateway executes named operations against the store. A gateway obtained in
// pinned mode serializes all calls through one connection and is not safe for
// concurrent use; callers must Close it when the logical operation ends.
type Gateway interface {
	// Count runs an operation returning a single scalar count.
	Count(ctx context.Context, op Op, args ...any) (int, error)

	// Exec runs a write operation with no expected result set.
	Exec(ctx context.Context, op Op, args ...any) error

	// QueryOne runs a read expected to yield at most one row. The returned
	// bool reports whether a row was present; scan is not called otherwise.
	QueryOne(ctx context.Context, op Op, scan func(RowScanner) error, args ...any) (bool, error)

	// QueryMany runs a read and invokes scan once per row.
	QueryMany(ctx context.Context, op Op, scan func(RowScanner) error, args ...any) error

	// Close releases the underlying connection, if one is held.
	Close() error
}

type gateway struct {
	db      dbx.DBTX
	release func() error
}

func (g *gateway) Count(ctx context.Context, op Op, args ...any) (int, error) {
	text, err := invocation(op)
	if err != nil {
		return 0, err
	}
	var n int
	if err := g.db.QueryRowContext(ctx, text, args...).Scan(&n); err != nil {
		return 0, wrap(op, err)
	}
	return n, nil
}

func (g *gateway) Exec(ctx context.Context, op Op, args ...any) error {
	text, err := invocation(op)
	if err != nil {
		return err
	}
	if _, err := g.db.ExecContext(ctx, text, args...); err != nil {
		return wrap(op, err)
	}
	return nil
}

func (g *gateway) QueryOne(ctx context.Context, op Op, scan func(RowScanner) error, args ...any) (bool, error) {
	text, err := invocation(op)
	if err != nil {
		return false, err
	}
	rows, err := g.db.QueryContext(ctx, text, args...)
	if err != nil {
		return false, wrap(op, err)
	}
	defer rows.Close()

	if !rows.Next() {
		return false, wrap(op, rows.Err())
	}
	if err := scan(rows); err != nil {
		return false, wrap(op, err)
	}
	return true, wrap(op, rows.Err())
}

func (g *gateway) QueryMany(ctx context.Context, op Op, scan func(RowScanner) error, args ...any) error {
	text, err := invocation(op)
	if err != nil {
		return err
	}
	rows, err := g.db.QueryContext(ctx, text, args...)
	if err != nil {
		return wrap(op, err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return wrap(op, err)
		}
	}
	return wrap(op, rows.Err())
}

func (g *gateway) Close() error {
	if g.release == nil {
		return nil
	}
	return g.release()
}

// One runs a single-row read and maps it to T. The bool reports presence, so
// an absent row is distinguishable from a zero-valued one.
func One[T any](ctx context.Context, g Gateway, op Op, scan func(RowScanner) (T, error), args ...any) (T, bool, error) {
	var value T
	found, err := g.QueryOne(ctx, op, func(r RowScanner) error {
		v, err := scan(r)
		if err != nil {
			return err
		}
		value = v
		return nil
	}, args...)
	if err != nil || !found {
		var zero T
		return zero, false, err
	}
	return value, true, nil
}

// Many runs a multi-row read and maps every row to T. The result is empty,
// never nil, when no rows match.
func Many[T any](ctx context.Context, g Gateway, op Op, scan func(RowScanner) (T, error), args ...any) ([]T, error) {
	values := make([]T, 0)
	err := g.QueryMany(ctx, op, func(r RowScanner) error {
		v, err := scan(r)
		if err != nil {
			return err
		}
		values = append(values, v)
		return nil
	}, args...)
	if err != nil {
		return nil, err
	}
	return values, nil
}
