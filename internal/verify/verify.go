// Package verify implements the write-then-confirm mutation protocol. A
// mutation is not trusted from the write call's return value alone: the
// caller supplies a follow-up read whose predicate must be observed within a
// bounded number of attempts before the mutation counts as applied.
package verify

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"
)

// ErrNotConfirmed is returned when the read-back never satisfied the
// predicate within the attempt budget. It is distinct from an outright write
// rejection: the store accepted the statement but its effect was never
// observed.
var ErrNotConfirmed = errors.New("write not confirmed")

const (
	defaultMaxAttempts = 1
	defaultRetryDelay  = 100 * time.Millisecond
)

// Spec bounds the confirmation loop. The zero value means one read attempt
// with the default delay.
type Spec struct {
	// MaxAttempts is the total number of confirmation reads issued before
	// giving up.
	MaxAttempts uint64

	// RetryDelay is the pause between consecutive confirmation reads.
	RetryDelay time.Duration
}

func (s Spec) withDefaults() Spec {
	if s.MaxAttempts == 0 {
		s.MaxAttempts = defaultMaxAttempts
	}
	if s.RetryDelay <= 0 {
		s.RetryDelay = defaultRetryDelay
	}
	return s
}

// Write invokes write once, then confirms it. The write is never re-invoked:
// only the confirmation read retries. Errors from either closure propagate
// unchanged; context cancellation stops the loop with the context's error.
func Write(ctx context.Context, spec Spec, write func(context.Context) error, confirmed func(context.Context) (bool, error)) error {
	if err := write(ctx); err != nil {
		return err
	}
	return Confirm(ctx, spec, confirmed)
}

// Confirm polls confirmed until it reports true, the attempt budget is
// exhausted (ErrNotConfirmed), the read fails, or ctx is done.
func Confirm(ctx context.Context, spec Spec, confirmed func(context.Context) (bool, error)) error {
	spec = spec.withDefaults()

	backoff := retry.WithMaxRetries(spec.MaxAttempts-1, retry.NewConstant(spec.RetryDelay))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		ok, err := confirmed(ctx)
		if err != nil {
			// read failures are transport errors, not grounds for another poll
			return err
		}
		if !ok {
			return retry.RetryableError(ErrNotConfirmed)
		}
		return nil
	})
}
