// Package workflow is the bulk email engine: it turns a recipient list and
// a content configuration into per-recipient email records, tracks their
// approval/edit/sent state across interaction steps, and drives single and
// bulk sends with progress and result accounting.
package workflow

import "errors"

// Sentinel errors surfaced to the presentation layer as input errors.
var (
	// ErrNoRecipients indicates a generation pass with an empty recipient list.
	ErrNoRecipients = errors.New("workflow: at least one recipient is required")

	// ErrEmptyContent indicates manual mode without a subject or body.
	ErrEmptyContent = errors.New("workflow: subject and body are required for regular emails")

	// ErrNoInbox indicates a send with neither create-per-send nor a selected inbox.
	ErrNoInbox = errors.New("workflow: no inbox selected")

	// ErrIndexOutOfRange indicates a record edit with an invalid index.
	ErrIndexOutOfRange = errors.New("workflow: record index out of range")
)

// Record is the per-recipient unit of work tracked through generation,
// approval, and send. Sent transitions false to true exactly once, on
// successful delivery, and is never reset.
type Record struct {
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	Approved  bool   `json:"approved"`
	Sent      bool   `json:"sent"`
}

// State is the session-scoped workflow state persisted across interaction
// steps. It is owned by a single interactive session; the active request is
// the only writer.
type State struct {
	Records    []Record `json:"records"`
	Generated  bool     `json:"generated"`
	EmailType  string   `json:"email_type"`
	Signature  string   `json:"signature,omitempty"`
	SenderInfo string   `json:"sender_info,omitempty"`
}

// NewState returns an empty workflow state.
func NewState() *State {
	return &State{EmailType: "ai"}
}

// Reset clears the generated records, returning the session to the
// not-yet-generated step. Signature and sender info survive a reset; they
// belong to the user, not the pass.
func (s *State) Reset() {
	s.Records = nil
	s.Generated = false
}

// Approved returns pointers to records that are approved and not yet sent,
// the batch for a manual-approval bulk send.
func (s *State) Approved() []*Record {
	out := make([]*Record, 0, len(s.Records))
	for i := range s.Records {
		if s.Records[i].Approved && !s.Records[i].Sent {
			out = append(out, &s.Records[i])
		}
	}
	return out
}

// Unsent returns pointers to all records not yet sent, the batch for an
// auto-send pass.
func (s *State) Unsent() []*Record {
	out := make([]*Record, 0, len(s.Records))
	for i := range s.Records {
		if !s.Records[i].Sent {
			out = append(out, &s.Records[i])
		}
	}
	return out
}

// SetSubjectAll applies a subject to every non-sent record. Sent records
// keep the subject they were delivered with.
func (s *State) SetSubjectAll(subject string) {
	for i := range s.Records {
		if !s.Records[i].Sent {
			s.Records[i].Subject = subject
		}
	}
}

// SetApprovalAll sets the approval flag on every non-sent record
// (select-all / clear-all).
func (s *State) SetApprovalAll(approved bool) {
	for i := range s.Records {
		if !s.Records[i].Sent {
			s.Records[i].Approved = approved
		}
	}
}

// RecordUpdate carries a partial edit of one record; nil fields are left
// unchanged.
type RecordUpdate struct {
	Subject  *string `json:"subject,omitempty"`
	Body     *string `json:"body,omitempty"`
	Approved *bool   `json:"approved,omitempty"`
}

// UpdateRecord applies a user edit to the record at index i.
func (s *State) UpdateRecord(i int, upd RecordUpdate) error {
	if i < 0 || i >= len(s.Records) {
		return ErrIndexOutOfRange
	}
	rec := &s.Records[i]
	if upd.Subject != nil {
		rec.Subject = *upd.Subject
	}
	if upd.Body != nil {
		rec.Body = *upd.Body
	}
	if upd.Approved != nil {
		rec.Approved = *upd.Approved
	}
	return nil
}

// Record returns a pointer to the record at index i.
func (s *State) Record(i int) (*Record, error) {
	if i < 0 || i >= len(s.Records) {
		return nil, ErrIndexOutOfRange
	}
	return &s.Records[i], nil
}

// AllSent reports whether every record has been delivered.
func (s *State) AllSent() bool {
	for i := range s.Records {
		if !s.Records[i].Sent {
			return false
		}
	}
	return len(s.Records) > 0
}
