// Package retry provides the shared rate-limit retry wrapper applied to
// every outbound provider and transport call.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
)

// RateLimitedError signals that the remote service rejected a call and
// instructed the caller to wait RetryAfter before trying again.
type RateLimitedError struct {
	RetryAfter time.Duration
	Err        error
}

func (e *RateLimitedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("rate limited, retry after %s: %v", e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("rate limited, retry after %s", e.RetryAfter)
}

func (e *RateLimitedError) Unwrap() error { return e.Err }

// Policy configures the wrapper. The zero value retries rate limits
// forever, waiting exactly the server-instructed delay each time.
type Policy struct {
	// MaxAttempts caps the number of attempts. 0 means unlimited, which is
	// the production default: rate limits are externally paced and resolve
	// on their own.
	MaxAttempts int
	// OnRetry is invoked before each wait.
	OnRetry func(attempt int, err error, wait time.Duration)
}

type Operation[T any] func() (T, error)
type VoidOperation func() error

// Do runs op, suspending for the server-specified delay and retrying
// whenever op returns a RateLimitedError. Any other error is returned
// immediately. The wait honors ctx cancellation; there is no jitter and
// no cap on the delay.
func Do[T any](ctx context.Context, clock clockwork.Clock, p Policy, op Operation[T]) (T, error) {
	for attempt := 1; ; attempt++ {
		val, err := op()
		if err == nil {
			return val, nil
		}

		var rl *RateLimitedError
		if !errors.As(err, &rl) {
			var zero T
			return zero, err
		}

		if p.MaxAttempts > 0 && attempt >= p.MaxAttempts {
			var zero T
			return zero, fmt.Errorf("still rate limited after %d attempts: %w", attempt, err)
		}

		if p.OnRetry != nil {
			p.OnRetry(attempt, err, rl.RetryAfter)
		}

		select {
		case <-clock.After(rl.RetryAfter):
		case <-ctx.Done():
			var zero T
			return zero, fmt.Errorf("context cancelled during rate-limit wait: %w", ctx.Err())
		}
	}
}

// DoVoid is Do for operations without a result.
func DoVoid(ctx context.Context, clock clockwork.Clock, p Policy, op VoidOperation) error {
	_, err := Do(ctx, clock, p, func() (struct{}, error) { return struct{}{}, op() })
	return err
}
