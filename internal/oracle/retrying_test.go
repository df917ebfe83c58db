package oracle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bk-assist/bk_assist/internal/retry"
)

func testPolicy() retry.Policy {
	return retry.Policy{MaxAttempts: 3, BackoffStep: time.Second, Sleep: func(time.Duration) {}}
}

func TestWithRetryRecoversFromRateLimit(t *testing.T) {
	calls := 0
	client := WithRetry(ClientFunc(func(context.Context, string) (string, error) {
		calls++
		if calls < 2 {
			return "", ErrRateLimited
		}
		return "answer", nil
	}), testPolicy())

	got, err := client.Answer(context.Background(), "q")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "answer" || calls != 2 {
		t.Fatalf("got %q after %d calls", got, calls)
	}
}

func TestWithRetryPassesThroughOtherErrors(t *testing.T) {
	fatal := errors.New("invalid key")
	calls := 0
	client := WithRetry(ClientFunc(func(context.Context, string) (string, error) {
		calls++
		return "", fatal
	}), testPolicy())

	if _, err := client.Answer(context.Background(), "q"); !errors.Is(err, fatal) {
		t.Fatalf("expected passthrough error, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected single call, got %d", calls)
	}
}

func TestWithRetryExhaustsBudget(t *testing.T) {
	calls := 0
	client := WithRetry(ClientFunc(func(context.Context, string) (string, error) {
		calls++
		return "", ErrRateLimited
	}), testPolicy())

	if _, err := client.Answer(context.Background(), "q"); !errors.Is(err, ErrRateLimited) {
		t.Fatalf("expected rate limit error, got %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
}
