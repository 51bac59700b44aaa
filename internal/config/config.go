// Package config aggregates the per-package env configurations into one
// application config, loaded once at startup.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/ka-reem/mail-agent/pkg/agentmail"
	"github.com/ka-reem/mail-agent/pkg/llm"
	"github.com/ka-reem/mail-agent/pkg/logger"
	"github.com/ka-reem/mail-agent/pkg/mailer/resend"
	"github.com/ka-reem/mail-agent/pkg/session"
)

// Mail provider names accepted in MAIL_PROVIDER.
const (
	ProviderAgentMail = "agentmail"
	ProviderResend    = "resend"
)

// ErrUnknownProvider indicates a MAIL_PROVIDER value outside the supported set.
var ErrUnknownProvider = errors.New("config: unknown mail provider")

// Config is the full application configuration. Each embedded struct owns
// its env namespace; the flat fields below cover the app itself.
type Config struct {
	AgentMail agentmail.Config
	LLM       llm.Config
	Logger    logger.Config
	Resend    resend.Config
	Session   session.Config

	// Addr is the HTTP listen address.
	Addr string `env:"ADDR" envDefault:":8080"`

	// Environment tags logs and Sentry events (development, staging, production).
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	// MailProvider selects the delivery transport.
	MailProvider string `env:"MAIL_PROVIDER" envDefault:"agentmail"`

	// DisableInboxCreate turns off create-per-send; deliveries then require
	// a selected inbox.
	DisableInboxCreate bool `env:"DISABLE_INBOX_CREATE" envDefault:"false"`

	// SelectedInbox is the inbox used when create-per-send is disabled or
	// provisioning fails.
	SelectedInbox string `env:"SELECTED_INBOX_ID"`

	// InboxSettleDelay is how long a freshly provisioned inbox is given to
	// become usable before its first send.
	InboxSettleDelay time.Duration `env:"INBOX_SETTLE_DELAY" envDefault:"1s"`

	// ShutdownTimeout bounds graceful HTTP server shutdown.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// Load reads .env if present, then parses the environment. It fails on
// malformed values or an unsupported provider, not on missing credentials;
// features without credentials degrade at wiring time instead.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config: parsing environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.MailProvider {
	case ProviderAgentMail, ProviderResend:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProvider, c.MailProvider)
	}
	if c.InboxSettleDelay < 0 {
		return errors.New("config: inbox settle delay must not be negative")
	}
	return nil
}
