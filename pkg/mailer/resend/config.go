package resend

// Config holds Resend email provider configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	APIKey      string `env:"RESEND_API_KEY"`
	SenderEmail string `env:"RESEND_FROM_EMAIL"`
	SenderName  string `env:"RESEND_FROM_NAME"`
}

// MissingConfig lists the env keys of unset mandatory settings.
func (c Config) MissingConfig() []string {
	var missing []string
	if c.APIKey == "" {
		missing = append(missing, "RESEND_API_KEY")
	}
	if c.SenderEmail == "" {
		missing = append(missing, "RESEND_FROM_EMAIL")
	}
	return missing
}
