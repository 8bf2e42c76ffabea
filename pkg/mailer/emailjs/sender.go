package emailjs

import (
	"context"
	"maps"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/dmitrymomot/approvalmail/pkg/mailer"
)

const (
	defaultEndpoint = "https://api.emailjs.com"
	sendPath        = "/api/v1.0/email/send"
)

// Sender implements mailer.Sender using the EmailJS REST API.
// Delivery is driven by a template hosted at EmailJS, so only
// Email.TemplateParams (and the first recipient) are transmitted.
type Sender struct {
	client *resty.Client
	config Config
}

// New creates a new EmailJS sender.
func New(cfg Config) *Sender {
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.Endpoint, "/")).
		SetHeader("Content-Type", "application/json")
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}

	return &Sender{client: client, config: cfg}
}

// MissingConfig implements mailer.Configurable.
// A nil Sender reports every mandatory setting as missing.
func (s *Sender) MissingConfig() []string {
	if s == nil {
		return Config{}.MissingConfig()
	}
	return s.config.MissingConfig()
}

type sendRequest struct {
	TemplateParams map[string]string `json:"template_params"`
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
}

// Send implements mailer.Sender.
// 400 and 422 responses are provider rejections (*mailer.ValidationError),
// any other failure is a *mailer.TransportError.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	params := make(map[string]string, len(email.TemplateParams)+1)
	maps.Copy(params, email.TemplateParams)
	if params[mailer.ParamToEmail] == "" && len(email.To) > 0 {
		params[mailer.ParamToEmail] = email.To[0]
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(sendRequest{
			ServiceID:      s.config.ServiceID,
			TemplateID:     s.config.TemplateID,
			UserID:         s.config.PublicKey,
			AccessToken:    s.config.PrivateKey,
			TemplateParams: params,
		}).
		Post(sendPath)
	if err != nil {
		return &mailer.TransportError{Err: err}
	}

	body := strings.TrimSpace(resp.String())
	switch status := resp.StatusCode(); {
	case resp.IsSuccess():
		return nil
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		return &mailer.ValidationError{Status: status, Message: body}
	default:
		return &mailer.TransportError{Status: status, Body: body}
	}
}
