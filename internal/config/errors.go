package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into Config.
	ErrParsingConfig = errors.New("config: failed to parse environment variables")

	// ErrLoadingEnvFile is returned when a dotenv file cannot be read.
	ErrLoadingEnvFile = errors.New("config: failed to load env file")

	// ErrUnknownProvider is returned when MAILER_PROVIDER names no known provider.
	ErrUnknownProvider = errors.New("config: unknown email provider")
)
