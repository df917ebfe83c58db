package otp

import (
	"context"
	"log/slog"
)

// Sender delivers a one-time passcode to a destination over one channel.
type Sender interface {
	Send(ctx context.Context, destination, code string) error
}

// SMSSender is a simulated SMS channel: no gateway is wired, so delivery
// is logged and reported as successful.
type SMSSender struct {
	logger *slog.Logger
}

// NewSMSSender constructs the simulated SMS channel.
func NewSMSSender(logger *slog.Logger) *SMSSender {
	return &SMSSender{logger: logger}
}

// Send logs the dispatch and succeeds immediately.
func (s *SMSSender) Send(_ context.Context, destination, code string) error {
	if s == nil || s.logger == nil {
		return nil
	}
	s.logger.Info("otp sms dispatched", "destination", destination, "code", code)
	return nil
}
