// Package agentmail adapts the AgentMail API client to the mailer.Sender
// interface. The Email.From field carries the sending inbox ID.
package agentmail

import (
	"context"
	"errors"

	"github.com/ka-reem/mail-agent/pkg/agentmail"
	"github.com/ka-reem/mail-agent/pkg/mailer"
)

// Sender implements mailer.Sender on top of an AgentMail inbox.
type Sender struct {
	client *agentmail.Client
}

// New creates an AgentMail-backed sender.
func New(client *agentmail.Client) *Sender {
	return &Sender{client: client}
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	if email.To == "" {
		return mailer.ErrNoRecipient
	}
	if email.From == "" {
		return errors.New("agentmail sender: email.From must carry the inbox id")
	}

	_, err := s.client.SendMessage(ctx, email.From, agentmail.SendMessageParams{
		To:      email.To,
		Subject: email.Subject,
		Text:    email.Text,
		HTML:    email.HTML,
	})
	if err != nil {
		return errors.Join(mailer.ErrSendFailed, err)
	}
	return nil
}
