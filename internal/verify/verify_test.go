package verify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite_ConfirmedFirstAttempt(t *testing.T) {
	writes := 0
	reads := 0

	err := Write(context.Background(), Spec{},
		func(ctx context.Context) error { writes++; return nil },
		func(ctx context.Context) (bool, error) { reads++; return true, nil },
	)

	require.NoError(t, err)
	assert.Equal(t, 1, writes)
	assert.Equal(t, 1, reads)
}

func TestWrite_WriteErrorSkipsConfirmation(t *testing.T) {
	boom := errors.New("boom")
	reads := 0

	err := Write(context.Background(), Spec{},
		func(ctx context.Context) error { return boom },
		func(ctx context.Context) (bool, error) { reads++; return true, nil },
	)

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, reads)
}

func TestConfirm_SucceedsMidBudget(t *testing.T) {
	reads := 0

	err := Confirm(context.Background(), Spec{MaxAttempts: 5, RetryDelay: time.Millisecond},
		func(ctx context.Context) (bool, error) {
			reads++
			return reads == 3, nil
		},
	)

	require.NoError(t, err)
	assert.Equal(t, 3, reads)
}

func TestConfirm_ExhaustsExactlyMaxAttempts(t *testing.T) {
	reads := 0

	err := Confirm(context.Background(), Spec{MaxAttempts: 10, RetryDelay: time.Millisecond},
		func(ctx context.Context) (bool, error) { reads++; return false, nil },
	)

	assert.ErrorIs(t, err, ErrNotConfirmed)
	assert.Equal(t, 10, reads)
}

func TestConfirm_ZeroSpecMeansSingleAttempt(t *testing.T) {
	reads := 0

	err := Confirm(context.Background(), Spec{},
		func(ctx context.Context) (bool, error) { reads++; return false, nil },
	)

	assert.ErrorIs(t, err, ErrNotConfirmed)
	assert.Equal(t, 1, reads)
}

func TestConfirm_ReadErrorStopsPolling(t *testing.T) {
	boom := errors.New("connection reset")
	reads := 0

	err := Confirm(context.Background(), Spec{MaxAttempts: 10, RetryDelay: time.Millisecond},
		func(ctx context.Context) (bool, error) { reads++; return false, boom },
	)

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, reads)
}

func TestConfirm_CancellationStopsRetries(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	reads := 0

	err := Confirm(ctx, Spec{MaxAttempts: 100, RetryDelay: 10 * time.Millisecond},
		func(ctx context.Context) (bool, error) {
			reads++
			if reads == 2 {
				cancel()
			}
			return false, nil
		},
	)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, reads)
}
