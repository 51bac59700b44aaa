package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ka-reem/mail-agent/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, config.ProviderAgentMail, cfg.MailProvider)
	require.False(t, cfg.DisableInboxCreate)
	require.Equal(t, "1s", cfg.InboxSettleDelay.String())
	require.Equal(t, "https://api.agentmail.to/v0", cfg.AgentMail.BaseURL)
	require.Equal(t, "Llama-3.3-70B-Instruct", cfg.LLM.Model)
	require.Equal(t, 1000, cfg.LLM.MaxTokens)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ADDR", ":9999")
	t.Setenv("MAIL_PROVIDER", "resend")
	t.Setenv("DISABLE_INBOX_CREATE", "true")
	t.Setenv("INBOX_SETTLE_DELAY", "250ms")
	t.Setenv("SESSION_TTL", "30m")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, ":9999", cfg.Addr)
	require.Equal(t, config.ProviderResend, cfg.MailProvider)
	require.True(t, cfg.DisableInboxCreate)
	require.Equal(t, "250ms", cfg.InboxSettleDelay.String())
	require.Equal(t, "30m0s", cfg.Session.TTL.String())
}

func TestLoad_RejectsUnknownProvider(t *testing.T) {
	t.Setenv("MAIL_PROVIDER", "carrier-pigeon")

	_, err := config.Load()
	require.ErrorIs(t, err, config.ErrUnknownProvider)
}
