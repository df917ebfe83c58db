package oracle

import (
	"context"
	"errors"
)

// ErrRateLimited signals the upstream model rejected the call for quota
// reasons; these calls are worth retrying with backoff.
var ErrRateLimited = errors.New("oracle rate limited")

// Client answers free-text prompts. The model behind it is opaque to the
// conversation flow: it is used both for general banking questions and for
// FAQ disambiguation.
type Client interface {
	Answer(ctx context.Context, prompt string) (string, error)
}

// ClientFunc adapts a function to the Client interface.
type ClientFunc func(ctx context.Context, prompt string) (string, error)

// Answer invokes the wrapped function.
func (f ClientFunc) Answer(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
