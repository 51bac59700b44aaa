package compose

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"strings"
	texttemplate "text/template"

	"github.com/ka-reem/mail-agent/internal/contacts"
	"github.com/ka-reem/mail-agent/pkg/llm"
	"github.com/ka-reem/mail-agent/pkg/mailer"
)

//go:embed fallback.md
var fallbackTemplate []byte

// Generator produces one draft per recipient. A nil completion client means
// no backend is configured; every AI request then degrades to the fixed
// fallback template instead of failing.
type Generator struct {
	client          llm.CompletionClient
	log             *slog.Logger
	fallbackSubject *texttemplate.Template
	fallbackBody    *texttemplate.Template
}

// New creates a Generator. client may be nil.
func New(client llm.CompletionClient, log *slog.Logger) *Generator {
	if log == nil {
		log = slog.Default()
	}

	tmpl, err := mailer.ParseTemplate(fallbackTemplate)
	if err != nil {
		// The template is embedded and covered by tests; a parse failure
		// here is a build defect.
		panic(fmt.Sprintf("compose: invalid embedded fallback template: %v", err))
	}

	return &Generator{
		client:          client,
		log:             log,
		fallbackSubject: texttemplate.Must(texttemplate.New("subject").Parse(tmpl.Subject(""))),
		fallbackBody:    texttemplate.Must(texttemplate.New("body").Parse(tmpl.Body)),
	}
}

// Generate builds the draft for one recipient. It never returns an error:
// backend absence and backend failure both produce the fixed fallback
// content, so callers always receive a non-empty subject and body.
func (g *Generator) Generate(ctx context.Context, recipientEmail string, cfg Config, contact *contacts.Contact, senderInfo string) Draft {
	id := resolveIdentity(recipientEmail, contact)

	if g.client == nil {
		return g.fallback(id, cfg)
	}

	prompt := buildPrompt(id, cfg, contact, senderInfo)

	raw, err := g.client.Complete(ctx, systemPrompt, prompt)
	if err != nil {
		g.log.Warn("completion backend failed, using fallback content",
			slog.String("recipient", recipientEmail),
			slog.String("error", err.Error()),
		)
		return g.fallback(id, cfg)
	}

	return parseDraft(cleanPlaceholders(raw), cfg, id)
}

// parseDraft recovers subject and body from the model response using the
// SUBJECT:/BODY: markers. Responses without markers become the body
// wholesale, with a derived subject.
func parseDraft(content string, cfg Config, id identity) Draft {
	const (
		subjectMarker = "SUBJECT:"
		bodyMarker    = "BODY:"
	)

	if si := strings.Index(content, subjectMarker); si >= 0 {
		if bi := strings.Index(content[si:], bodyMarker); bi >= 0 {
			bi += si
			subject := strings.TrimSpace(content[si+len(subjectMarker) : bi])
			body := strings.TrimSpace(content[bi+len(bodyMarker):])
			if subject != "" && body != "" {
				return Draft{Subject: subject, Body: body}
			}
		}
	}

	subject := cfg.Subject
	if subject == "" {
		subject = fmt.Sprintf("Personalized message for %s", id.Name)
	}
	return Draft{Subject: subject, Body: strings.TrimSpace(content)}
}

// fallback renders the fixed template used when no backend is configured or
// the backend call failed.
func (g *Generator) fallback(id identity, cfg Config) Draft {
	subject := cfg.Subject
	if subject == "" {
		var buf bytes.Buffer
		if err := g.fallbackSubject.Execute(&buf, id); err == nil {
			subject = buf.String()
		} else {
			subject = "Exciting Opportunity at " + id.Company
		}
	}

	var body bytes.Buffer
	if err := g.fallbackBody.Execute(&body, id); err != nil {
		return Draft{Subject: subject, Body: "Hi " + id.Name + ",\n\nI hope this email finds you well."}
	}
	return Draft{Subject: subject, Body: strings.TrimSpace(body.String())}
}
