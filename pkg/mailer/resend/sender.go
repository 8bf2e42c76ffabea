package resend

import (
	"context"
	"fmt"
	"strconv"

	"github.com/resend/resend-go/v3"

	"github.com/dmitrymomot/approvalmail/pkg/mailer"
)

// Sender implements mailer.Sender using the Resend API.
// Unlike hosted-template providers it sends the locally rendered
// subject, HTML and plain-text bodies.
type Sender struct {
	client *resend.Client
	config Config
}

// New creates a new Resend sender.
func New(cfg Config) *Sender {
	return &Sender{
		client: resend.NewClient(cfg.APIKey),
		config: cfg,
	}
}

// MissingConfig implements mailer.Configurable.
// A nil Sender reports every mandatory setting as missing.
func (s *Sender) MissingConfig() []string {
	if s == nil {
		return Config{}.MissingConfig()
	}
	return s.config.MissingConfig()
}

// Send implements mailer.Sender. Every failure is a *mailer.TransportError.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	req := s.buildRequest(email)
	if _, err := s.client.Emails.SendWithContext(ctx, req); err != nil {
		return &mailer.TransportError{Err: fmt.Errorf("resend: %w", err)}
	}
	return nil
}

func (s *Sender) buildRequest(email *mailer.Email) *resend.SendEmailRequest {
	req := &resend.SendEmailRequest{
		From:    mailer.Recipient(s.config.SenderName, s.config.SenderEmail),
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		ReplyTo: email.ReplyTo,
		Headers: email.Headers,
	}
	if len(email.Tags) > 0 {
		req.Tags = convertTags(email.Tags)
	}
	return req
}

func convertTags(tags mailer.Tags) []resend.Tag {
	result := make([]resend.Tag, 0, len(tags))
	for name, value := range tags {
		result = append(result, resend.Tag{
			Name:  name,
			Value: tagValue(value),
		})
	}
	return result
}

// tagValue converts any value to a string for Resend's tag API.
// Presence-only tags (struct{}{}) become "true".
func tagValue(v any) string {
	switch val := v.(type) {
	case nil, struct{}:
		return "true"
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
