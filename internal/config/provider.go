package config

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/approvalmail/pkg/mailer"
	"github.com/dmitrymomot/approvalmail/pkg/mailer/emailjs"
	"github.com/dmitrymomot/approvalmail/pkg/mailer/resend"
)

// NewSender returns the configured provider behind a mailer.LazySender.
// The provider client is built on the first send. An unknown provider name
// does not fail here: the first send reports mailer.ErrProviderUnavailable.
func (c *Config) NewSender() *mailer.LazySender {
	provider := strings.ToLower(strings.TrimSpace(c.Provider))

	switch provider {
	case ProviderEmailJS, "":
		cfg := c.EmailJS
		return mailer.NewLazySender(func() (mailer.Sender, error) {
			return emailjs.New(cfg), nil
		}, cfg.MissingConfig()...)
	case ProviderResend:
		cfg := c.Resend
		return mailer.NewLazySender(func() (mailer.Sender, error) {
			return resend.New(cfg), nil
		}, cfg.MissingConfig()...)
	default:
		return mailer.NewLazySender(func() (mailer.Sender, error) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, c.Provider)
		})
	}
}
