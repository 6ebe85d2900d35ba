package store

import (
	"errors"
	"fmt"
)

// ErrUnknownOp marks an operation name missing from the routine registry.
// It is a programming error: no SQL is executed for such operations.
var ErrUnknownOp = errors.New("unknown operation")

// Error is a transport-level store failure. It carries the operation name and
// the underlying cause, and is never converted into a business outcome.
type Error struct {
	Op  Op
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func wrap(op Op, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}
