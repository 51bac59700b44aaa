// Package handler is the HTTP boundary: chi routes that translate JSON
// requests into workflow engine calls and session state mutations. It owns
// no business logic.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ka-reem/mail-agent/internal/workflow"
	"github.com/ka-reem/mail-agent/pkg/agentmail"
	"github.com/ka-reem/mail-agent/pkg/session"
)

// InboxAPI is the inbox management surface exposed over HTTP.
// *agentmail.Client satisfies it.
type InboxAPI interface {
	CreateInbox(ctx context.Context) (*agentmail.Inbox, error)
	ListInboxes(ctx context.Context) ([]agentmail.Inbox, error)
	ListMessages(ctx context.Context, inboxID string) ([]agentmail.Message, error)
	GetMessage(ctx context.Context, inboxID, messageID string) (*agentmail.Message, error)
}

// Handler serves the application routes.
type Handler struct {
	engine  *workflow.Engine
	states  session.Store[*workflow.State]
	inboxes InboxAPI // nil when the mail provider does no inbox management
	log     *slog.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithInboxAPI enables the inbox management routes.
func WithInboxAPI(api InboxAPI) Option {
	return func(h *Handler) { h.inboxes = api }
}

// WithLogger sets the handler logger.
func WithLogger(log *slog.Logger) Option {
	return func(h *Handler) { h.log = log }
}

// New creates a Handler backed by the given engine and session store.
func New(engine *workflow.Engine, states session.Store[*workflow.State], opts ...Option) *Handler {
	h := &Handler{
		engine: engine,
		states: states,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register mounts the application routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Post("/recipients/parse", h.parseRecipients)
	r.Post("/contacts/import", h.importContacts)

	r.Route("/emails", func(r chi.Router) {
		r.Post("/generate", h.generateEmails)
		r.Get("/", h.listEmails)
		r.Patch("/{index}", h.updateEmail)
		r.Post("/subject", h.setSubjectAll)
		r.Post("/approve", h.setApprovalAll)
		r.Post("/{index}/send", h.sendEmail)
		r.Post("/send", h.sendEmails)
		r.Post("/reset", h.resetEmails)
	})

	r.Route("/inboxes", func(r chi.Router) {
		r.Post("/", h.createInbox)
		r.Get("/", h.listInboxes)
		r.Get("/{id}/messages", h.listMessages)
		r.Get("/{id}/messages/{mid}", h.getMessage)
	})
}

// Routes returns a standalone router with the application routes mounted,
// used by tests and by main when no extra middleware is needed.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	h.Register(r)
	return r
}
