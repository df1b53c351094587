package generation

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// BackoffPolicy maps a zero-based retry number to the delay that must pass
// before that retry runs. Policies are pure functions of the retry number,
// so a retry schedule can be asserted in tests without sleeping.
type BackoffPolicy func(retry int) time.Duration

// ExponentialBackoff returns a policy whose delay doubles with each retry,
// starting from base: base, 2*base, 4*base, ...
func ExponentialBackoff(base time.Duration) BackoffPolicy {
	return func(retry int) time.Duration {
		return base << retry
	}
}

// SleepFunc blocks for the given duration or until the context is done,
// in which case it returns the context error. Injected into Retry so tests
// can record delays instead of waiting them out.
type SleepFunc func(ctx context.Context, d time.Duration) error

// ContextSleep is the production SleepFunc.
func ContextSleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Retry runs fn until it succeeds, up to maxAttempts attempts in total.
// Between attempts it waits according to the backoff policy. Only errors
// wrapping ErrTransientFailure are retried; any other error is returned
// immediately. When the attempt budget is exhausted the last transient
// error is returned, still wrapping ErrTransientFailure.
func Retry(ctx context.Context, maxAttempts int, policy BackoffPolicy, sleep SleepFunc, fn func(ctx context.Context) error) error {
	if maxAttempts < 1 {
		return fmt.Errorf("%w: max attempts must be at least 1, got %d", ErrInvalidConfig, maxAttempts)
	}

	var err error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			if sleepErr := sleep(ctx, policy(attempt-1)); sleepErr != nil {
				return fmt.Errorf("%w: cancelled during backoff: %w", ErrTransientFailure, sleepErr)
			}
		}

		err = fn(ctx)
		if err == nil {
			return nil
		}

		if !IsTransient(err) {
			return err
		}
	}

	return fmt.Errorf("exhausted %d attempts: %w", maxAttempts, err)
}

// IsTransient reports whether err should be retried.
func IsTransient(err error) bool {
	return errors.Is(err, ErrTransientFailure)
}
