// Package logger builds structured slog loggers with context extraction and
// optional Sentry reporting.
//
// A ContextExtractor pulls a per-call value out of the context (for example a
// dispatch id) and the LogHandlerDecorator adds it to every record:
//
//	log := logger.New(logger.Config{Level: slog.LevelInfo}, mailer.LogDispatchID)
//	log.InfoContext(ctx, "approval email sent", slog.String("to", to))
//	// {"level":"INFO","msg":"approval email sent","to":"...","dispatch_id":"..."}
//
// When Config.Sentry.DSN is set, records are also sent to Sentry: errors create
// issues, warnings and errors are kept as logs. An empty DSN or a failed SDK
// init falls back to stdout only, so the same setup works in development.
//
// NewNope returns a logger that discards everything; packages use it as the
// default when no logger is supplied.
package logger
