package resilience

import (
	"context"
	"time"
)

// RetryPolicy retries an operation a bounded number of times with a fixed
// delay between attempts. Every error is treated as retryable; callers that
// need to stop early should observe the context.
type RetryPolicy struct {
	MaxRetries int
	Backoff    time.Duration

	// Sleep overrides the delay between attempts. Left nil, the policy
	// waits on a timer and aborts when the context is done.
	Sleep func(time.Duration)

	// OnAttempt, when set, is invoked after every failed attempt with the
	// 1-based attempt number.
	OnAttempt func(attempt int, err error)
}

func NewRetryPolicy(maxRetries int, backoff time.Duration) RetryPolicy {
	if maxRetries < 0 {
		maxRetries = 0
	}
	if backoff <= 0 {
		backoff = time.Second
	}
	return RetryPolicy{MaxRetries: maxRetries, Backoff: backoff}
}

// Do runs fn up to MaxRetries+1 times. It returns nil on the first success,
// the context error if the context is cancelled between attempts, or the
// error of the final attempt.
func (r RetryPolicy) Do(ctx context.Context, fn func(context.Context) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	attempts := r.MaxRetries + 1
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		err = fn(ctx)
		if err == nil {
			return nil
		}
		if r.OnAttempt != nil {
			r.OnAttempt(attempt, err)
		}
		if attempt == attempts {
			break
		}
		if r.Sleep != nil {
			r.Sleep(r.Backoff)
			continue
		}
		timer := time.NewTimer(r.Backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return err
}
