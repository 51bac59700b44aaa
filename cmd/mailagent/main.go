// Command mailagent serves the bulk personalized email API: recipient
// parsing, contact import, optional AI drafting, approval tracking, and
// delivery through AgentMail or Resend.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ka-reem/mail-agent/internal/compose"
	"github.com/ka-reem/mail-agent/internal/config"
	"github.com/ka-reem/mail-agent/internal/handler"
	"github.com/ka-reem/mail-agent/internal/server"
	"github.com/ka-reem/mail-agent/internal/workflow"
	"github.com/ka-reem/mail-agent/pkg/agentmail"
	"github.com/ka-reem/mail-agent/pkg/health"
	"github.com/ka-reem/mail-agent/pkg/llm"
	"github.com/ka-reem/mail-agent/pkg/logger"
	"github.com/ka-reem/mail-agent/pkg/mailer"
	agentmailsender "github.com/ka-reem/mail-agent/pkg/mailer/agentmail"
	resendsender "github.com/ka-reem/mail-agent/pkg/mailer/resend"
	"github.com/ka-reem/mail-agent/pkg/session"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	log := logger.NewWithSentry(cfg.Logger, requestIDExtractor)

	if err := run(ctx, cfg, log); err != nil {
		log.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	checks := health.Checks{}
	var shutdownHooks []func(context.Context) error

	// Drafting backend. Without a credential the generator falls back to
	// fixed templates; the app keeps working.
	var completions llm.CompletionClient
	if cfg.LLM.APIKey != "" {
		client, err := llm.NewLlamaClient(cfg.LLM)
		if err != nil {
			return err
		}
		completions = client
		checks["llm"] = client.Health
	} else {
		log.Warn("no LLM credential configured, AI drafts use fallback templates")
	}
	generator := compose.New(completions, log)

	// Delivery transport.
	var (
		sender      mailer.Sender
		inboxAPI    handler.InboxAPI
		engineOpts  []workflow.Option
		provisioner workflow.InboxProvisioner
	)
	switch cfg.MailProvider {
	case config.ProviderResend:
		sender = resendsender.New(cfg.Resend)
		// Resend sends from one verified address, so every record resolves
		// to it and no inbox provisioning happens.
		engineOpts = append(engineOpts, workflow.WithSelectedInbox(cfg.Resend.SenderEmail))
	default:
		client, err := agentmail.New(cfg.AgentMail)
		if err != nil {
			return err
		}
		sender = agentmailsender.New(client)
		inboxAPI = client
		checks["agentmail"] = client.Health
		if !cfg.DisableInboxCreate {
			provisioner = client
		}
	}
	if provisioner != nil {
		engineOpts = append(engineOpts, workflow.WithInboxProvisioner(provisioner, cfg.InboxSettleDelay))
	}
	if cfg.SelectedInbox != "" {
		engineOpts = append(engineOpts, workflow.WithSelectedInbox(cfg.SelectedInbox))
	}
	engineOpts = append(engineOpts, workflow.WithLogger(log))
	engine := workflow.NewEngine(generator, sender, engineOpts...)

	// Session store: Redis when configured, in-memory otherwise.
	var states session.Store[*workflow.State]
	if cfg.Session.RedisURL != "" {
		store, err := session.NewRedis[*workflow.State](ctx, cfg.Session.RedisURL, cfg.Session.TTL)
		if err != nil {
			return err
		}
		states = store
		checks["redis"] = store.Health
	} else {
		states = session.NewMemory[*workflow.State](cfg.Session.TTL)
	}
	shutdownHooks = append(shutdownHooks, func(context.Context) error { return states.Close() })

	handlerOpts := []handler.Option{handler.WithLogger(log)}
	if inboxAPI != nil {
		handlerOpts = append(handlerOpts, handler.WithInboxAPI(inboxAPI))
	}
	h := handler.New(engine, states, handlerOpts...)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(5 * time.Minute)) // bulk sends are slow by design
	r.Get("/health", health.Handler(checks, log))
	h.Register(r)

	return server.Run(ctx, server.Config{
		Handler:         r,
		Addr:            cfg.Addr,
		Logger:          log,
		ShutdownTimeout: cfg.ShutdownTimeout,
		ShutdownHooks:   shutdownHooks,
	})
}

// requestIDExtractor surfaces the chi request ID in every log line.
func requestIDExtractor(ctx context.Context) (slog.Attr, bool) {
	if id := middleware.GetReqID(ctx); id != "" {
		return slog.String("request_id", id), true
	}
	return slog.Attr{}, false
}
