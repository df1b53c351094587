package generation

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSleep collects the delays Retry asked for without waiting.
func recordingSleep(delays *[]time.Duration) SleepFunc {
	return func(ctx context.Context, d time.Duration) error {
		*delays = append(*delays, d)
		return nil
	}
}

func TestExponentialBackoffDoubles(t *testing.T) {
	t.Parallel()

	policy := ExponentialBackoff(2 * time.Second)

	expected := []time.Duration{
		2 * time.Second,
		4 * time.Second,
		8 * time.Second,
		16 * time.Second,
	}
	for retry, want := range expected {
		assert.Equal(t, want, policy(retry), "delay for retry %d", retry)
	}
}

func TestRetryTransientThenSuccess(t *testing.T) {
	t.Parallel()

	// Fails transiently 4 times, succeeds on the 5th attempt.
	calls := 0
	fn := func(ctx context.Context) error {
		calls++
		if calls < 5 {
			return fmt.Errorf("%w: connection reset", ErrTransientFailure)
		}
		return nil
	}

	var delays []time.Duration
	err := Retry(context.Background(), 5, ExponentialBackoff(2*time.Second), recordingSleep(&delays), fn)

	require.NoError(t, err)
	assert.Equal(t, 5, calls)

	// Exactly 4 backoff delays, each at least as long as the previous.
	require.Len(t, delays, 4)
	for i := 1; i < len(delays); i++ {
		assert.GreaterOrEqual(t, delays[i], delays[i-1])
	}
}

func TestRetryExhaustsAttempts(t *testing.T) {
	t.Parallel()

	calls := 0
	fn := func(ctx context.Context) error {
		calls++
		return fmt.Errorf("%w: HTTP 503", ErrTransientFailure)
	}

	var delays []time.Duration
	err := Retry(context.Background(), 5, ExponentialBackoff(time.Second), recordingSleep(&delays), fn)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransientFailure)
	assert.Equal(t, 5, calls)
	assert.Len(t, delays, 4)
}

func TestRetryNonTransientFailsImmediately(t *testing.T) {
	t.Parallel()

	calls := 0
	rejection := fmt.Errorf("%w: API key not valid", ErrRequestRejected)
	fn := func(ctx context.Context) error {
		calls++
		return rejection
	}

	var delays []time.Duration
	err := Retry(context.Background(), 5, ExponentialBackoff(time.Second), recordingSleep(&delays), fn)

	assert.ErrorIs(t, err, ErrRequestRejected)
	assert.Equal(t, 1, calls, "non-transient failure must not be retried")
	assert.Empty(t, delays, "no backoff delay may occur")
}

func TestRetryStopsWhenContextCancelledDuringBackoff(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	fn := func(ctx context.Context) error {
		calls++
		cancel() // cancel before the first backoff wait
		return fmt.Errorf("%w: timeout", ErrTransientFailure)
	}

	err := Retry(ctx, 5, ExponentialBackoff(time.Millisecond), ContextSleep, fn)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestRetryRejectsInvalidAttemptBudget(t *testing.T) {
	t.Parallel()

	err := Retry(context.Background(), 0, ExponentialBackoff(time.Second), ContextSleep, func(ctx context.Context) error {
		t.Fatal("fn must not be called")
		return nil
	})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestIsTransient(t *testing.T) {
	t.Parallel()

	assert.True(t, IsTransient(fmt.Errorf("%w: wrapped", ErrTransientFailure)))
	assert.False(t, IsTransient(ErrRequestRejected))
	assert.False(t, IsTransient(errors.New("plain error")))
	assert.False(t, IsTransient(nil))
}
