package mailer

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome is the diagnostic bucket of one approval email dispatch.
type Outcome string

const (
	OutcomeSent                Outcome = "sent"
	OutcomeUnconfigured        Outcome = "unconfigured"
	OutcomeRenderFailed        Outcome = "render_failed"
	OutcomeProviderUnavailable Outcome = "provider_unavailable"
	OutcomeValidation          Outcome = "validation"
	OutcomeTransport           Outcome = "transport"
)

// Classify maps a Sender result to its outcome bucket.
func Classify(err error) Outcome {
	var validationErr *ValidationError
	switch {
	case err == nil:
		return OutcomeSent
	case errors.Is(err, ErrProviderUnavailable):
		return OutcomeProviderUnavailable
	case errors.As(err, &validationErr):
		return OutcomeValidation
	default:
		return OutcomeTransport
	}
}

// Metrics counts dispatches per outcome.
type Metrics struct {
	dispatches *prometheus.CounterVec
}

// NewMetrics creates the dispatch counter and registers it with reg.
// A nil reg leaves the counter unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		dispatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "approvalmail",
			Name:      "dispatch_total",
			Help:      "Approval email dispatch attempts by outcome.",
		}, []string{"outcome"}),
	}
	if reg == nil {
		return m, nil
	}
	if err := reg.Register(m.dispatches); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}
		m.dispatches = are.ExistingCollector.(*prometheus.CounterVec)
	}
	return m, nil
}

// Collector exposes the underlying counter, mainly for tests.
func (m *Metrics) Collector() *prometheus.CounterVec {
	return m.dispatches
}

func (m *Metrics) observe(o Outcome) {
	if m == nil {
		return
	}
	m.dispatches.WithLabelValues(string(o)).Inc()
}
