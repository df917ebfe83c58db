package otp

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/bk-assist/bk_assist/internal/retry"
)

// EmailSender delivers OTP codes over SMTP.
type EmailSender struct {
	dialer *gomail.Dialer
	from   string
	policy retry.Policy
}

// NewEmailSender configures the SMTP channel. Transient dial failures are
// retried under the provided policy.
func NewEmailSender(host string, port int, user, password, from string, policy retry.Policy) *EmailSender {
	return &EmailSender{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   from,
		policy: policy,
	}
}

// Send emails the code to the verified address.
func (s *EmailSender) Send(ctx context.Context, destination, code string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", destination)
	m.SetHeader("Subject", "Your OTP Code - BK Chatbot")
	m.SetBody("text/plain", fmt.Sprintf("Your Bank of Kigali OTP code is: %s", code))

	err := s.policy.Do(ctx, func() error {
		return s.dialer.DialAndSend(m)
	}, func(error) bool { return true })
	if err != nil {
		return fmt.Errorf("send otp email: %w", err)
	}
	return nil
}
