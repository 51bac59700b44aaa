package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ka-reem/mail-agent/internal/compose"
	"github.com/ka-reem/mail-agent/internal/contacts"
	"github.com/ka-reem/mail-agent/internal/workflow"
)

type generateRequest struct {
	Recipients []string           `json:"recipients"`
	Config     compose.Config     `json:"config"`
	Contacts   []contacts.Contact `json:"contacts,omitempty"`
	Signature  string             `json:"signature,omitempty"`
	SenderInfo string             `json:"sender_info,omitempty"`
}

type stateResponse struct {
	Records   []workflow.Record `json:"records"`
	Generated bool              `json:"generated"`
	EmailType string            `json:"email_type"`
	AllSent   bool              `json:"all_sent"`
}

func newStateResponse(state *workflow.State) stateResponse {
	records := state.Records
	if records == nil {
		records = []workflow.Record{}
	}
	return stateResponse{
		Records:   records,
		Generated: state.Generated,
		EmailType: state.EmailType,
		AllSent:   state.AllSent(),
	}
}

// generateEmails runs a generation pass and stores the resulting records in
// the session. A failed pass leaves the previous state untouched.
func (h *Handler) generateEmails(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if !h.decode(w, r, &req) {
		return
	}

	token, state, err := h.sessionState(w, r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if req.Signature != "" {
		state.Signature = req.Signature
	}
	if req.SenderInfo != "" {
		state.SenderInfo = req.SenderInfo
	}

	if err := h.engine.Generate(r.Context(), state, req.Recipients, req.Config, contacts.ByEmail(req.Contacts)); err != nil {
		h.respondError(w, r, err)
		return
	}
	if err := h.saveState(r, token, state); err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, newStateResponse(state))
}

// listEmails returns the session's current records.
func (h *Handler) listEmails(w http.ResponseWriter, r *http.Request) {
	_, state, err := h.sessionState(w, r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, newStateResponse(state))
}

// updateEmail applies a partial edit to one record.
func (h *Handler) updateEmail(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		h.respond(w, http.StatusBadRequest, errorResponse{Error: "index must be an integer"})
		return
	}

	var upd workflow.RecordUpdate
	if !h.decode(w, r, &upd) {
		return
	}

	token, state, err := h.sessionState(w, r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if err := state.UpdateRecord(index, upd); err != nil {
		h.respondError(w, r, err)
		return
	}
	if err := h.saveState(r, token, state); err != nil {
		h.respondError(w, r, err)
		return
	}

	rec, _ := state.Record(index)
	h.respond(w, http.StatusOK, rec)
}

type setSubjectRequest struct {
	Subject string `json:"subject"`
}

// setSubjectAll overrides the subject of every non-sent record.
func (h *Handler) setSubjectAll(w http.ResponseWriter, r *http.Request) {
	var req setSubjectRequest
	if !h.decode(w, r, &req) {
		return
	}

	token, state, err := h.sessionState(w, r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	state.SetSubjectAll(req.Subject)
	if err := h.saveState(r, token, state); err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, newStateResponse(state))
}

type setApprovalRequest struct {
	Approved bool `json:"approved"`
}

// setApprovalAll approves or unapproves every non-sent record at once.
func (h *Handler) setApprovalAll(w http.ResponseWriter, r *http.Request) {
	var req setApprovalRequest
	if !h.decode(w, r, &req) {
		return
	}

	token, state, err := h.sessionState(w, r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	state.SetApprovalAll(req.Approved)
	if err := h.saveState(r, token, state); err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, newStateResponse(state))
}

// sendEmail delivers a single record. Re-sending a sent record succeeds
// without a second delivery.
func (h *Handler) sendEmail(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		h.respond(w, http.StatusBadRequest, errorResponse{Error: "index must be an integer"})
		return
	}

	token, state, err := h.sessionState(w, r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	rec, err := state.Record(index)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if err := h.engine.SendOne(r.Context(), rec); err != nil {
		h.respondError(w, r, err)
		return
	}
	if err := h.saveState(r, token, state); err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, rec)
}

type sendEmailsRequest struct {
	// Mode is "approved" (default) for the manual-approval batch or "all"
	// for an auto-send pass over every unsent record.
	Mode string `json:"mode,omitempty"`
}

type sendEmailsResponse struct {
	workflow.Result
	Total int `json:"total"`
}

// sendEmails delivers a batch sequentially and reports the mixed outcome.
// An auto-send pass that delivers everything clears the workflow state.
func (h *Handler) sendEmails(w http.ResponseWriter, r *http.Request) {
	var req sendEmailsRequest
	if !h.decode(w, r, &req) {
		return
	}

	token, state, err := h.sessionState(w, r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	var batch []*workflow.Record
	switch req.Mode {
	case "", "approved":
		batch = state.Approved()
	case "all":
		batch = state.Unsent()
	default:
		h.respond(w, http.StatusBadRequest, errorResponse{Error: "mode must be approved or all"})
		return
	}

	res := h.engine.SendMany(r.Context(), batch, nil)

	if req.Mode == "all" && res.Failed == 0 && state.AllSent() {
		state.Reset()
	}
	if err := h.saveState(r, token, state); err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, sendEmailsResponse{Result: res, Total: len(batch)})
}

// resetEmails discards the generated records, keeping the session profile.
func (h *Handler) resetEmails(w http.ResponseWriter, r *http.Request) {
	token, state, err := h.sessionState(w, r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	state.Reset()
	if err := h.saveState(r, token, state); err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, http.StatusOK, newStateResponse(state))
}
