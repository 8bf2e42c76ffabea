// Package server exposes the approval notifier over HTTP.
package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/approvalmail/pkg/health"
	"github.com/dmitrymomot/approvalmail/pkg/mailer"
)

// Notifier is the part of mailer.Notifier the HTTP layer needs.
type Notifier interface {
	SendApprovalEmail(ctx context.Context, recipientEmail, recipientName string) bool
	LoginURL() string
}

type config struct {
	logger   *slog.Logger
	gatherer prometheus.Gatherer
}

// Option configures the router.
type Option func(*config)

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithGatherer sets the registry served on /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(c *config) {
		if g != nil {
			c.gatherer = g
		}
	}
}

// NewRouter builds the HTTP handler:
//
//	POST /v1/notifications/approval
//	GET  /health/live
//	GET  /health/ready
//	GET  /metrics
func NewRouter(n Notifier, opts ...Option) http.Handler {
	cfg := &config{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		gatherer: prometheus.DefaultGatherer,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(RequestID(), Recover(cfg.logger))

	r.Get("/health/live", health.LivenessHandler())
	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
		"approval_template": func(context.Context) error {
			_, err := mailer.RenderApproval("readiness", n.LoginURL())
			return err
		},
	}, health.WithLogger(cfg.logger)))
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(cfg.gatherer, promhttp.HandlerOpts{}))

	r.Route("/v1/notifications", func(r chi.Router) {
		r.Post("/approval", approvalHandler(n))
	})

	return r
}
