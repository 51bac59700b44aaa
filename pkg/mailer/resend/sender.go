// Package resend adapts the Resend API to the mailer.Sender interface.
// It is the delivery backend for deployments that send from one fixed,
// verified address instead of provisioned mailboxes.
package resend

import (
	"context"
	"errors"
	"fmt"

	"github.com/resend/resend-go/v3"

	"github.com/ka-reem/mail-agent/pkg/mailer"
)

// Config holds Resend provider configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	APIKey      string `env:"RESEND_API_KEY"`
	SenderEmail string `env:"RESEND_FROM_EMAIL"`
	SenderName  string `env:"RESEND_FROM_NAME"`
}

// Sender implements mailer.Sender using the Resend API.
type Sender struct {
	client *resend.Client
	config Config
}

// New creates a new Resend sender.
func New(cfg Config) *Sender {
	return &Sender{
		client: resend.NewClient(cfg.APIKey),
		config: cfg,
	}
}

// Send implements mailer.Sender. Email.From is ignored when a configured
// sender address exists; Resend requires a verified from address.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	if email.To == "" {
		return mailer.ErrNoRecipient
	}

	from := s.config.SenderEmail
	if from == "" {
		from = email.From
	}
	if s.config.SenderName != "" {
		from = fmt.Sprintf("%s <%s>", s.config.SenderName, from)
	}

	req := &resend.SendEmailRequest{
		From:    from,
		To:      []string{email.To},
		Subject: email.Subject,
		Text:    email.Text,
		Html:    email.HTML,
	}

	if _, err := s.client.Emails.SendWithContext(ctx, req); err != nil {
		return errors.Join(mailer.ErrSendFailed, err)
	}
	return nil
}
