// Package logger builds the application's slog loggers: JSON to stdout,
// request-scoped attributes injected from context, and an optional Sentry
// mirror for warnings and errors.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// ContextExtractor extracts a slog attribute from context.
// Used to add request-scoped values (request ID, session token) to logs.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// Config holds logging configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	SentryDSN         string `env:"SENTRY_DSN"`
	SentryEnvironment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
}

// New creates a JSON-formatted logger with optional context extractors.
func New(extractors ...ContextExtractor) *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(newContextHandler(h, extractors...))
}

// NewWithSentry creates a logger that writes to stdout and mirrors warnings
// and errors to Sentry. An empty DSN (or a failed Sentry init) degrades to
// stdout-only logging.
func NewWithSentry(cfg Config, extractors ...ContextExtractor) *slog.Logger {
	stdout := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})

	if cfg.SentryDSN == "" {
		return slog.New(newContextHandler(stdout, extractors...))
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Environment: cfg.SentryEnvironment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(stdout).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return slog.New(newContextHandler(stdout, extractors...))
	}

	sentryHandler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   []slog.Level{slog.LevelWarn, slog.LevelError},
	}.NewSentryHandler(context.Background())

	return slog.New(newContextHandler(newMultiHandler(stdout, sentryHandler), extractors...))
}

// NewNope creates a no-op logger that discards all output.
// Use as a default when logging is not configured.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
