package retry

import (
	"context"
	"time"
)

const (
	defaultMaxAttempts = 3
	defaultBackoffStep = 3 * time.Second
)

// Policy is a bounded retry schedule with linear backoff: after the n-th
// failed attempt it sleeps BackoffStep*n before trying again.
type Policy struct {
	MaxAttempts int
	BackoffStep time.Duration
	Sleep       func(time.Duration) // swap in for tests
}

// Default returns the standard policy used for outbound calls: 3 attempts
// with a 3s backoff step.
func Default() Policy {
	return Policy{MaxAttempts: defaultMaxAttempts, BackoffStep: defaultBackoffStep}
}

// Do invokes fn until it succeeds, the attempt budget runs out, or the
// context is cancelled. retryable decides whether a given error is worth
// another attempt; a non-retryable error is returned immediately.
func (p Policy) Do(ctx context.Context, fn func() error, retryable func(error) bool) error {
	attempts := p.MaxAttempts
	if attempts <= 0 {
		attempts = defaultMaxAttempts
	}
	sleep := p.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if retryable != nil && !retryable(err) {
			return err
		}
		if attempt == attempts {
			break
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		sleep(p.BackoffStep * time.Duration(attempt))
	}
	return err
}
