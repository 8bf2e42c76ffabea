// Package config loads the application configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/approvalmail/pkg/logger"
	"github.com/dmitrymomot/approvalmail/pkg/mailer"
	"github.com/dmitrymomot/approvalmail/pkg/mailer/emailjs"
	"github.com/dmitrymomot/approvalmail/pkg/mailer/resend"
)

// Supported MAILER_PROVIDER values.
const (
	ProviderEmailJS = "emailjs"
	ProviderResend  = "resend"
)

// Config is the full application configuration, read once at startup.
type Config struct {
	Provider string `env:"MAILER_PROVIDER" envDefault:"emailjs"`
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	Mailer  mailer.Config
	EmailJS emailjs.Config
	Resend  resend.Config
	Logger  logger.Config
}

// LoadEnv loads the given dotenv files into the process environment.
// Variables already set are not overridden. Without paths, ".env" is loaded
// if it exists.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return errors.Join(ErrLoadingEnvFile, err)
		}
		return nil
	}
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, errors.Join(ErrParsingConfig, err)
	}
	return &cfg, nil
}

// MustLoad works like Load but panics if parsing fails.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}
	return cfg
}
