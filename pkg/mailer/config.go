package mailer

import "strings"

const (
	defaultAppURL    = "http://localhost:5173"
	defaultLoginPath = "/login"
)

// Config holds mailer configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	AppURL    string `env:"APP_URL" envDefault:"http://localhost:5173"`
	LoginPath string `env:"MAILER_LOGIN_PATH" envDefault:"/login"`
	ReplyTo   string `env:"MAILER_REPLY_TO"`
}

func (c Config) withDefaults() Config {
	if c.AppURL == "" {
		c.AppURL = defaultAppURL
	}
	if c.LoginPath == "" {
		c.LoginPath = defaultLoginPath
	}
	return c
}

// LoginURL joins the application URL and the login path.
func (c Config) LoginURL() string {
	c = c.withDefaults()
	return strings.TrimRight(c.AppURL, "/") + c.LoginPath
}
