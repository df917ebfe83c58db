package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDoSucceedsAfterRetries(t *testing.T) {
	var slept []time.Duration
	p := Policy{MaxAttempts: 3, BackoffStep: 3 * time.Second, Sleep: func(d time.Duration) { slept = append(slept, d) }}

	calls := 0
	err := p.Do(context.Background(), func() error {
		calls++
		if calls < 3 {
			return errors.New("rate limited")
		}
		return nil
	}, func(error) bool { return true })

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
	// Linear backoff: 3s after attempt 1, 6s after attempt 2.
	if len(slept) != 2 || slept[0] != 3*time.Second || slept[1] != 6*time.Second {
		t.Fatalf("unexpected backoff schedule: %v", slept)
	}
}

func TestDoExhaustsBudget(t *testing.T) {
	p := Policy{MaxAttempts: 3, BackoffStep: time.Second, Sleep: func(time.Duration) {}}

	sentinel := errors.New("still failing")
	calls := 0
	err := p.Do(context.Background(), func() error {
		calls++
		return sentinel
	}, func(error) bool { return true })

	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
}

func TestDoStopsOnNonRetryable(t *testing.T) {
	p := Policy{MaxAttempts: 3, BackoffStep: time.Second, Sleep: func(time.Duration) {}}

	fatal := errors.New("bad request")
	calls := 0
	err := p.Do(context.Background(), func() error {
		calls++
		return fatal
	}, func(error) bool { return false })

	if !errors.Is(err, fatal) {
		t.Fatalf("expected fatal error, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected a single call, got %d", calls)
	}
}
