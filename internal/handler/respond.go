package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ka-reem/mail-agent/internal/workflow"
	"github.com/ka-reem/mail-agent/pkg/session"
)

type errorResponse struct {
	Error string `json:"error"`
}

// respond writes v as a JSON response.
func (h *Handler) respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error("encoding response", slog.Any("error", err))
	}
}

// respondError maps domain errors to HTTP statuses. Invalid caller input is
// 422, an out-of-range record index 404, everything else a logged 500 with a
// generic message so internals never leak.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, workflow.ErrIndexOutOfRange):
		h.respond(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case workflow.IsInputError(err):
		h.respond(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	case errors.Is(err, session.ErrNotFound):
		h.respond(w, http.StatusNotFound, errorResponse{Error: "no active session"})
	default:
		h.log.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path), slog.Any("error", err))
		h.respond(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

// decode parses the request body into v, rejecting unknown fields.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		h.respond(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return false
	}
	return true
}
