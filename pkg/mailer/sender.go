package mailer

import (
	"context"
	"errors"
	"sync"
)

// Sender defines the minimal interface that email providers must implement.
// It accepts a fully-prepared Email and handles the actual delivery.
type Sender interface {
	// Send delivers an email message.
	// Provider rejections are reported as *ValidationError, everything else
	// as *TransportError or ErrProviderUnavailable.
	Send(ctx context.Context, email *Email) error
}

// Configurable is implemented by senders whose credentials may be absent.
// MissingConfig returns the names of the settings that are not set.
type Configurable interface {
	MissingConfig() []string
}

// SenderFactory builds a provider client on demand.
type SenderFactory func() (Sender, error)

// LazySender defers provider construction until the first Send.
// The factory runs at most once; its failure is remembered.
type LazySender struct {
	factory SenderFactory
	sender  Sender
	err     error
	missing []string
	once    sync.Once
}

// NewLazySender wraps factory. Missing configuration is reported up front
// so callers can skip delivery without ever touching the provider.
func NewLazySender(factory SenderFactory, missing ...string) *LazySender {
	return &LazySender{factory: factory, missing: missing}
}

// MissingConfig implements Configurable.
func (l *LazySender) MissingConfig() []string {
	if l == nil {
		return []string{"sender"}
	}
	return l.missing
}

// Send implements Sender.
func (l *LazySender) Send(ctx context.Context, email *Email) error {
	l.once.Do(func() {
		if l.factory == nil {
			l.err = ErrProviderUnavailable
			return
		}
		s, err := l.factory()
		switch {
		case err != nil:
			l.err = errors.Join(ErrProviderUnavailable, err)
		case s == nil:
			l.err = ErrProviderUnavailable
		default:
			l.sender = s
		}
	})
	if l.err != nil {
		return l.err
	}
	return l.sender.Send(ctx, email)
}
