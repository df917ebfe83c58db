package oracle

import (
	"context"
	"errors"

	"github.com/bk-assist/bk_assist/internal/retry"
)

type retryingClient struct {
	inner  Client
	policy retry.Policy
}

// WithRetry wraps a client so that rate-limited calls are retried under
// the given policy. Other errors pass through immediately.
func WithRetry(inner Client, policy retry.Policy) Client {
	return &retryingClient{inner: inner, policy: policy}
}

func (c *retryingClient) Answer(ctx context.Context, prompt string) (string, error) {
	var answer string
	err := c.policy.Do(ctx, func() error {
		var callErr error
		answer, callErr = c.inner.Answer(ctx, prompt)
		return callErr
	}, func(err error) bool {
		return errors.Is(err, ErrRateLimited)
	})
	return answer, err
}
