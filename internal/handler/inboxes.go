package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ka-reem/mail-agent/pkg/agentmail"
)

// inboxesEnabled guards the inbox routes: they exist only when the provider
// does inbox management.
func (h *Handler) inboxesEnabled(w http.ResponseWriter) bool {
	if h.inboxes == nil {
		h.respond(w, http.StatusNotImplemented, errorResponse{Error: "inbox management is not available with this mail provider"})
		return false
	}
	return true
}

func (h *Handler) createInbox(w http.ResponseWriter, r *http.Request) {
	if !h.inboxesEnabled(w) {
		return
	}
	inbox, err := h.inboxes.CreateInbox(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusCreated, inbox)
}

func (h *Handler) listInboxes(w http.ResponseWriter, r *http.Request) {
	if !h.inboxesEnabled(w) {
		return
	}
	inboxes, err := h.inboxes.ListInboxes(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if inboxes == nil {
		inboxes = []agentmail.Inbox{}
	}
	h.respond(w, http.StatusOK, map[string]any{"inboxes": inboxes, "count": len(inboxes)})
}

func (h *Handler) listMessages(w http.ResponseWriter, r *http.Request) {
	if !h.inboxesEnabled(w) {
		return
	}
	messages, err := h.inboxes.ListMessages(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if messages == nil {
		messages = []agentmail.Message{}
	}
	h.respond(w, http.StatusOK, map[string]any{"messages": messages, "count": len(messages)})
}

func (h *Handler) getMessage(w http.ResponseWriter, r *http.Request) {
	if !h.inboxesEnabled(w) {
		return
	}
	msg, err := h.inboxes.GetMessage(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "mid"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, msg)
}
