package mailer

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/approvalmail/pkg/logger"
)

// Notifier sends account-approval notifications through a Sender.
// It is immutable after construction and safe for concurrent use.
type Notifier struct {
	sender  Sender
	logger  *slog.Logger
	metrics *Metrics
	config  Config
	missing []string
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithLogger sets the logger outcomes are written to.
func WithLogger(l *slog.Logger) Option {
	return func(n *Notifier) {
		if l != nil {
			n.logger = l
		}
	}
}

// WithMetrics enables per-outcome dispatch counting.
func WithMetrics(m *Metrics) Option {
	return func(n *Notifier) {
		n.metrics = m
	}
}

// NewNotifier creates a Notifier. Provider configuration is checked once here:
// a nil sender, or one reporting missing settings through Configurable,
// puts the Notifier in log-only mode and the sender is never called.
func NewNotifier(sender Sender, cfg Config, opts ...Option) *Notifier {
	n := &Notifier{
		sender: sender,
		config: cfg.withDefaults(),
		logger: logger.NewNope(),
	}
	for _, opt := range opts {
		opt(n)
	}

	switch s := sender.(type) {
	case nil:
		n.missing = []string{"sender"}
	case Configurable:
		n.missing = slices.Clone(s.MissingConfig())
	}
	return n
}

// Configured reports whether emails are actually delivered.
func (n *Notifier) Configured() bool {
	return len(n.missing) == 0
}

// LoginURL is the link the approval email points to.
func (n *Notifier) LoginURL() string {
	return n.config.LoginURL()
}

// SendApprovalEmail notifies recipientEmail that their account was approved.
// It never fails loudly: every failure is logged and reported as false.
func (n *Notifier) SendApprovalEmail(ctx context.Context, recipientEmail, recipientName string) bool {
	if _, ok := DispatchID(ctx); !ok {
		ctx = WithDispatchID(ctx, uuid.NewString())
	}

	req := ApprovalRequest{
		Email:    recipientEmail,
		Name:     recipientName,
		LoginURL: n.config.LoginURL(),
	}

	msg, err := RenderApproval(req.Name, req.LoginURL)
	if err != nil {
		n.logger.ErrorContext(ctx, "failed to render approval email",
			slog.String("to", req.Email),
			slog.String("error", err.Error()),
		)
		n.metrics.observe(OutcomeRenderFailed)
		return false
	}

	if !n.Configured() {
		n.logger.WarnContext(ctx, "email delivery is not configured, approval email not sent",
			slog.Group("email",
				slog.String("to", req.Email),
				slog.String("name", req.Name),
				slog.String("subject", msg.Subject),
				slog.String("login_url", req.LoginURL),
			),
			slog.String("missing", strings.Join(n.missing, ",")),
		)
		n.metrics.observe(OutcomeUnconfigured)
		return false
	}

	email := &Email{
		To:             []string{req.Email},
		Subject:        msg.Subject,
		HTML:           msg.HTML,
		Text:           msg.Text,
		ReplyTo:        n.config.ReplyTo,
		Tags:           SimpleTags("approval"),
		TemplateParams: req.Params(strings.TrimRight(n.config.AppURL, "/")),
	}

	err = n.sender.Send(ctx, email)
	outcome := Classify(err)
	n.metrics.observe(outcome)

	if outcome == OutcomeSent {
		n.logger.InfoContext(ctx, "approval email sent", slog.String("to", req.Email))
		return true
	}
	n.logFailure(ctx, outcome, req, err)
	return false
}

// LogEmailDetails writes an email to the log instead of sending it.
// Useful as a manual fallback when delivery is unavailable.
func (n *Notifier) LogEmailDetails(ctx context.Context, to, subject, body string) {
	n.logger.InfoContext(ctx, "email details",
		slog.Group("email",
			slog.String("to", to),
			slog.String("subject", subject),
			slog.String("body", body),
		),
	)
}

func (n *Notifier) logFailure(ctx context.Context, outcome Outcome, req ApprovalRequest, err error) {
	switch outcome {
	case OutcomeProviderUnavailable:
		n.logger.ErrorContext(ctx, "email provider unavailable, check MAILER_PROVIDER and the provider settings",
			slog.String("to", req.Email),
			slog.String("error", err.Error()),
		)
	case OutcomeValidation:
		var validationErr *ValidationError
		errors.As(err, &validationErr)
		n.logger.ErrorContext(ctx, "email provider rejected the approval email",
			slog.String("to", req.Email),
			slog.Int("status", validationErr.Status),
			slog.String("message", validationErr.Message),
			slog.Any("checklist", validationChecklist),
		)
	default:
		attrs := []any{
			slog.String("to", req.Email),
			slog.String("error", err.Error()),
		}
		var transportErr *TransportError
		if errors.As(err, &transportErr) {
			attrs = append(attrs,
				slog.Int("status", transportErr.Status),
				slog.String("body", transportErr.Body),
			)
		}
		n.logger.ErrorContext(ctx, "failed to send approval email", attrs...)
	}
}

var validationChecklist = []string{
	"service id exists and is active in the provider dashboard",
	"template id belongs to that service",
	"public key matches the provider account",
	"template uses the to_email, to_name, user_name, login_url and app_url parameters",
	"the recipient address field of the template is mapped to to_email",
}
