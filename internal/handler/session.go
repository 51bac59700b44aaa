package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/ka-reem/mail-agent/internal/workflow"
	"github.com/ka-reem/mail-agent/pkg/session"
)

// sessionCookie carries the opaque session token.
const sessionCookie = "mail_agent_session"

// sessionState resolves the request's session token and loads its workflow
// state, minting a token and empty state for first-time visitors. The cookie
// is (re)issued on every call so its lifetime tracks the store TTL.
func (h *Handler) sessionState(w http.ResponseWriter, r *http.Request) (string, *workflow.State, error) {
	token := ""
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		token = c.Value
	}
	if token == "" {
		token = uuid.NewString()
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	state, err := h.states.Get(r.Context(), token)
	if errors.Is(err, session.ErrNotFound) {
		return token, workflow.NewState(), nil
	}
	if err != nil {
		return "", nil, err
	}
	return token, state, nil
}

// saveState persists the session state under its token.
func (h *Handler) saveState(r *http.Request, token string, state *workflow.State) error {
	return h.states.Put(r.Context(), token, state)
}
