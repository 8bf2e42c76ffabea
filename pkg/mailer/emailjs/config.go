package emailjs

import "time"

// Config holds EmailJS provider configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	ServiceID  string        `env:"EMAILJS_SERVICE_ID"`
	TemplateID string        `env:"EMAILJS_TEMPLATE_ID"`
	PublicKey  string        `env:"EMAILJS_PUBLIC_KEY"`
	PrivateKey string        `env:"EMAILJS_PRIVATE_KEY"` // optional access token
	Endpoint   string        `env:"EMAILJS_ENDPOINT" envDefault:"https://api.emailjs.com"`
	Timeout    time.Duration `env:"EMAILJS_TIMEOUT" envDefault:"30s"`
}

// MissingConfig lists the env keys of unset mandatory settings.
func (c Config) MissingConfig() []string {
	var missing []string
	if c.ServiceID == "" {
		missing = append(missing, "EMAILJS_SERVICE_ID")
	}
	if c.TemplateID == "" {
		missing = append(missing, "EMAILJS_TEMPLATE_ID")
	}
	if c.PublicKey == "" {
		missing = append(missing, "EMAILJS_PUBLIC_KEY")
	}
	return missing
}
