package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/moodguard/moodguard/internal/platform/retry"
)

func rateLimited(d time.Duration) error {
	return &retry.RateLimitedError{RetryAfter: d}
}

func TestDo_SuccessFirstAttempt(t *testing.T) {
	clock := clockwork.NewFakeClock()
	val, err := retry.Do(context.Background(), clock, retry.Policy{}, func() (int, error) {
		return 42, nil
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if val != 42 {
		t.Fatalf("expected 42, got %d", val)
	}
}

func TestDo_NonRateLimitErrorReturnsImmediately(t *testing.T) {
	clock := clockwork.NewFakeClock()
	underlying := errors.New("hard failure")
	calls := 0
	_, err := retry.Do(context.Background(), clock, retry.Policy{}, func() (struct{}, error) {
		calls++
		return struct{}{}, underlying
	})
	if !errors.Is(err, underlying) {
		t.Fatalf("expected underlying error, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}

func TestDo_WaitsServerDelayThenSucceeds(t *testing.T) {
	clock := clockwork.NewFakeClock()
	delay := 7 * time.Second
	calls := 0

	type result struct {
		val int
		err error
	}
	done := make(chan result, 1)
	go func() {
		val, err := retry.Do(context.Background(), clock, retry.Policy{}, func() (int, error) {
			calls++
			if calls == 1 {
				return 0, rateLimited(delay)
			}
			return 99, nil
		})
		done <- result{val, err}
	}()

	// The wrapper must be suspended on the clock before the second attempt.
	clock.BlockUntil(1)
	if calls != 1 {
		t.Fatalf("expected 1 call before delay elapsed, got %d", calls)
	}

	clock.Advance(delay)
	res := <-done
	if res.err != nil {
		t.Fatalf("expected nil error, got %v", res.err)
	}
	if res.val != 99 {
		t.Fatalf("expected 99, got %d", res.val)
	}
	if calls != 2 {
		t.Fatalf("expected 2 calls, got %d", calls)
	}
}

func TestDo_RetriesIndefinitelyByDefault(t *testing.T) {
	clock := clockwork.NewFakeClock()
	const limitedCalls = 25
	calls := 0

	done := make(chan error, 1)
	go func() {
		_, err := retry.Do(context.Background(), clock, retry.Policy{}, func() (struct{}, error) {
			calls++
			if calls <= limitedCalls {
				return struct{}{}, rateLimited(time.Second)
			}
			return struct{}{}, nil
		})
		done <- err
	}()

	for range limitedCalls {
		clock.BlockUntil(1)
		clock.Advance(time.Second)
	}

	if err := <-done; err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if calls != limitedCalls+1 {
		t.Fatalf("expected %d calls, got %d", limitedCalls+1, calls)
	}
}

func TestDo_MaxAttemptsCap(t *testing.T) {
	clock := clockwork.NewFakeClock()
	calls := 0
	_, err := retry.Do(context.Background(), clock, retry.Policy{MaxAttempts: 1}, func() (struct{}, error) {
		calls++
		return struct{}{}, rateLimited(time.Minute)
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var rl *retry.RateLimitedError
	if !errors.As(err, &rl) {
		t.Fatalf("expected wrapped RateLimitedError, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}

func TestDo_ContextCancelledDuringWait(t *testing.T) {
	clock := clockwork.NewFakeClock()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := retry.Do(ctx, clock, retry.Policy{}, func() (struct{}, error) {
			return struct{}{}, rateLimited(time.Hour)
		})
		done <- err
	}()

	clock.BlockUntil(1)
	cancel()

	err := <-done
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestDo_OnRetryObservesWait(t *testing.T) {
	clock := clockwork.NewFakeClock()
	var observed time.Duration
	p := retry.Policy{
		OnRetry: func(_ int, _ error, wait time.Duration) { observed = wait },
	}

	done := make(chan struct{})
	calls := 0
	go func() {
		_, _ = retry.Do(context.Background(), clock, p, func() (struct{}, error) {
			calls++
			if calls == 1 {
				return struct{}{}, rateLimited(3 * time.Second)
			}
			return struct{}{}, nil
		})
		close(done)
	}()

	clock.BlockUntil(1)
	clock.Advance(3 * time.Second)
	<-done

	if observed != 3*time.Second {
		t.Fatalf("expected observed wait of 3s, got %s", observed)
	}
}

func TestDoVoid_PropagatesError(t *testing.T) {
	clock := clockwork.NewFakeClock()
	underlying := errors.New("boom")
	err := retry.DoVoid(context.Background(), clock, retry.Policy{}, func() error {
		return underlying
	})
	if !errors.Is(err, underlying) {
		t.Fatalf("expected underlying error, got %v", err)
	}
}
