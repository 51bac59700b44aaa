package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ka-reem/mail-agent/internal/compose"
	"github.com/ka-reem/mail-agent/internal/contacts"
	"github.com/ka-reem/mail-agent/pkg/agentmail"
	"github.com/ka-reem/mail-agent/pkg/mailer"
	"github.com/ka-reem/mail-agent/pkg/sanitizer"
)

// ContentGenerator produces a draft for one recipient. *compose.Generator
// satisfies it.
type ContentGenerator interface {
	Generate(ctx context.Context, recipientEmail string, cfg compose.Config, contact *contacts.Contact, senderInfo string) compose.Draft
}

// InboxProvisioner creates a fresh sending inbox. *agentmail.Client
// satisfies it.
type InboxProvisioner interface {
	CreateInbox(ctx context.Context) (*agentmail.Inbox, error)
}

// ProgressFunc is invoked after each record of a bulk send with the number
// of records processed so far and the batch total.
type ProgressFunc func(done, total int)

// Engine drives generation and delivery. It is stateless between calls;
// all per-session data lives in State.
type Engine struct {
	generator ContentGenerator
	sender    mailer.Sender
	inboxes   InboxProvisioner

	createPerSend bool
	selectedInbox string
	settleDelay   time.Duration
	log           *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithInboxProvisioner enables create-per-send: every delivery first
// provisions a fresh inbox and waits settle for it to become usable.
func WithInboxProvisioner(p InboxProvisioner, settle time.Duration) Option {
	return func(e *Engine) {
		e.inboxes = p
		e.createPerSend = p != nil
		e.settleDelay = settle
	}
}

// WithSelectedInbox sets the inbox used when create-per-send is disabled.
func WithSelectedInbox(id string) Option {
	return func(e *Engine) { e.selectedInbox = id }
}

// WithLogger sets the engine logger.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// NewEngine returns an engine delivering through sender. generator may be
// nil when only manual composition is used.
func NewEngine(generator ContentGenerator, sender mailer.Sender, opts ...Option) *Engine {
	e := &Engine{
		generator: generator,
		sender:    sender,
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Generate builds one record per recipient and stores them on state,
// replacing any previous pass. Manual mode copies the configured subject and
// body verbatim into every record. AI mode drafts per recipient, then appends
// the session signature to the drafted body. A recipient that cannot be
// processed is logged and omitted rather than failing the pass.
func (e *Engine) Generate(ctx context.Context, state *State, recipients []string, cfg compose.Config, index map[string]contacts.Contact) error {
	if len(recipients) == 0 {
		return ErrNoRecipients
	}
	if cfg.Type == compose.TypeRegular && (strings.TrimSpace(cfg.Subject) == "" || strings.TrimSpace(cfg.Body) == "") {
		return ErrEmptyContent
	}
	if cfg.Type == compose.TypeAI && e.generator == nil {
		return errors.New("workflow: engine has no content generator")
	}

	records := make([]Record, 0, len(recipients))
	for _, recipient := range recipients {
		recipient = strings.TrimSpace(recipient)
		if recipient == "" {
			e.log.WarnContext(ctx, "skipping empty recipient")
			continue
		}

		rec := Record{Recipient: recipient}
		switch cfg.Type {
		case compose.TypeAI:
			var contact *contacts.Contact
			if c, ok := index[recipient]; ok {
				contact = &c
			}
			draft := e.generator.Generate(ctx, recipient, cfg, contact, state.SenderInfo)
			rec.Subject = draft.Subject
			rec.Body = withSignature(draft.Body, state.Signature)
		default:
			rec.Subject = cfg.Subject
			rec.Body = cfg.Body
		}
		records = append(records, rec)
	}

	state.Records = records
	state.Generated = true
	state.EmailType = cfg.Type
	return nil
}

// SendOne delivers a single record. A record already marked sent is a no-op
// so that retrying a batch never double-delivers. The record is marked sent
// only after the transport reports success.
func (e *Engine) SendOne(ctx context.Context, rec *Record) error {
	if rec.Sent {
		return nil
	}

	from, err := e.resolveInbox(ctx)
	if err != nil {
		return err
	}

	email := &mailer.Email{
		From:    from,
		To:      rec.Recipient,
		Subject: rec.Subject,
		Text:    rec.Body,
	}
	if html, err := mailer.RenderHTML(rec.Body); err != nil {
		e.log.WarnContext(ctx, "rendering email body failed, sending text only",
			slog.String("recipient", rec.Recipient), slog.Any("error", err))
	} else {
		email.HTML = sanitizer.SanitizeEmailHTML(html)
	}

	if err := e.sender.Send(ctx, email); err != nil {
		return fmt.Errorf("sending to %s: %w", rec.Recipient, err)
	}
	rec.Sent = true
	return nil
}

// Result summarizes a bulk send.
type Result struct {
	Success int      `json:"success"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors,omitempty"`
}

// SendMany delivers records sequentially, reporting progress after each one.
// A failed record is counted and logged; the batch always runs to completion.
func (e *Engine) SendMany(ctx context.Context, records []*Record, progress ProgressFunc) Result {
	var res Result
	total := len(records)
	for i, rec := range records {
		if err := e.SendOne(ctx, rec); err != nil {
			res.Failed++
			res.Errors = append(res.Errors, err.Error())
			e.log.ErrorContext(ctx, "email delivery failed",
				slog.String("recipient", rec.Recipient), slog.Any("error", err))
		} else {
			res.Success++
		}
		if progress != nil {
			progress(i+1, total)
		}
	}
	return res
}

// resolveInbox picks the sending mailbox for one delivery. With
// create-per-send enabled a fresh inbox is provisioned and given settle time
// before first use; otherwise the pre-selected inbox is used.
func (e *Engine) resolveInbox(ctx context.Context) (string, error) {
	if e.createPerSend {
		inbox, err := e.inboxes.CreateInbox(ctx)
		if err != nil {
			if e.selectedInbox != "" {
				e.log.WarnContext(ctx, "inbox provisioning failed, using selected inbox", slog.Any("error", err))
				return e.selectedInbox, nil
			}
			return "", fmt.Errorf("provisioning inbox: %w", err)
		}
		if e.settleDelay > 0 {
			select {
			case <-time.After(e.settleDelay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
		return inbox.InboxID, nil
	}
	if e.selectedInbox != "" {
		return e.selectedInbox, nil
	}
	return "", ErrNoInbox
}

// withSignature appends the session signature to an AI draft body.
func withSignature(body, signature string) string {
	signature = strings.TrimSpace(signature)
	if signature == "" {
		return body
	}
	return strings.TrimRight(body, "\n") + "\n\n" + signature
}

// IsInputError reports whether err stems from invalid caller input rather
// than a downstream failure.
func IsInputError(err error) bool {
	return errors.Is(err, ErrNoRecipients) ||
		errors.Is(err, ErrEmptyContent) ||
		errors.Is(err, ErrNoInbox) ||
		errors.Is(err, ErrIndexOutOfRange)
}
