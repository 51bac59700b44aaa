package handler

import (
	"net/http"

	"github.com/ka-reem/mail-agent/internal/contacts"
	"github.com/ka-reem/mail-agent/pkg/validator"
)

type parseRecipientsRequest struct {
	Text string `json:"text"`
}

type parseRecipientsResponse struct {
	Emails []string `json:"emails"`
	Count  int      `json:"count"`
}

// parseRecipients extracts email addresses from free text, preserving input
// order and any duplicates.
func (h *Handler) parseRecipients(w http.ResponseWriter, r *http.Request) {
	var req parseRecipientsRequest
	if !h.decode(w, r, &req) {
		return
	}

	emails := validator.ExtractEmails(req.Text)
	h.respond(w, http.StatusOK, parseRecipientsResponse{Emails: emails, Count: len(emails)})
}

// Merge modes for importContacts.
const (
	mergeStructuredOnly = "structured_only"
	mergeUnion          = "union"
)

type importContactsRequest struct {
	Records []any `json:"records"`

	// ManualRecipients are addresses entered by hand, merged with the
	// imported ones according to Merge.
	ManualRecipients []string `json:"manual_recipients,omitempty"`

	// Merge is "structured_only" (default) or "union".
	Merge string `json:"merge,omitempty"`
}

type importContactsResponse struct {
	Contacts   []contacts.Contact `json:"contacts"`
	Recipients []string           `json:"recipients"`
	Skipped    int                `json:"skipped"`
}

// importContacts turns a structured record array into contacts and a merged
// recipient list. Records without a valid email are dropped and counted.
func (h *Handler) importContacts(w http.ResponseWriter, r *http.Request) {
	var req importContactsRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Merge == "" {
		req.Merge = mergeStructuredOnly
	}
	if req.Merge != mergeStructuredOnly && req.Merge != mergeUnion {
		h.respond(w, http.StatusBadRequest, errorResponse{Error: "merge must be structured_only or union"})
		return
	}

	extracted := contacts.Extract(req.Records, h.log)
	structured := contacts.Emails(extracted)

	recipients := structured
	if req.Merge == mergeUnion {
		recipients = contacts.MergeRecipients(req.ManualRecipients, structured)
	}

	h.respond(w, http.StatusOK, importContactsResponse{
		Contacts:   extracted,
		Recipients: recipients,
		Skipped:    len(req.Records) - len(extracted),
	})
}
