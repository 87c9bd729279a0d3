package httputil

import (
	"context"
	"errors"
	"time"
)

// RetryableError wraps an error to indicate it may be retried.
// Wrap transient failures (server unreachable, 5xx responses) with this type
// so that [Retry] and [RetryConfirmed] know to attempt the operation again.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Retryable wraps err as a [RetryableError]. Retryable(nil) is nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

// IsRetryable reports whether err is wrapped with [RetryableError].
func IsRetryable(err error) bool {
	return errors.As(err, new(*RetryableError))
}

// Retry executes fn up to attempts times with exponential backoff.
// It only retries errors wrapped with [RetryableError]; other errors are
// returned immediately. The delay doubles after each failed attempt.
// Returns the last error if all attempts fail, or ctx.Err() if cancelled.
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	attempts = max(attempts, 1)
	var lastErr error

	for i := range attempts {
		if err := fn(); err == nil {
			return nil
		} else if lastErr = err; !IsRetryable(err) {
			return err
		}

		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				delay *= 2
			}
		}
	}
	return lastErr
}

// RetryWithBackoff is a convenience wrapper around [Retry] with sensible
// defaults: 3 attempts with 1 second initial delay (doubling each retry).
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	return Retry(ctx, 3, time.Second, fn)
}

// ConfirmFunc decides whether a failed call should be attempted again.
// It receives the retryable error so it can show it to the user.
type ConfirmFunc func(ctx context.Context, err error) bool

// RetryConfirmed runs fn until it succeeds, fails with an error that is not
// retryable, or confirm declines a retry. There is no attempt limit and no
// delay: the caller (usually a person answering a prompt) paces the retries.
// A nil confirm never retries.
//
// The returned error is the last error from fn, unwrapped from
// [RetryableError], or ctx.Err() when the context ends first.
func RetryConfirmed(ctx context.Context, confirm ConfirmFunc, fn func() error) error {
	for {
		err := fn()
		if err == nil {
			return nil
		}
		var re *RetryableError
		if !errors.As(err, &re) {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if confirm == nil || !confirm(ctx, re.Err) {
			return re.Err
		}
	}
}
