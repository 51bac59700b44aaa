package agentmail

import "time"

// Inbox is an externally-provisioned mailbox. The ID is address-like
// (e.g. "quiet-meadow@agentmail.to") and doubles as the from endpoint for
// outgoing messages.
type Inbox struct {
	InboxID     string    `json:"inbox_id"`
	DisplayName string    `json:"display_name,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

// ListInboxesResponse wraps the inbox collection endpoint payload.
type ListInboxesResponse struct {
	Inboxes []Inbox `json:"inboxes"`
	Count   int     `json:"count,omitempty"`
}

// SendMessageParams describes one outgoing message.
type SendMessageParams struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
	HTML    string `json:"html,omitempty"`
}

// SendMessageResponse is returned after a successful send.
type SendMessageResponse struct {
	MessageID string `json:"message_id"`
	ThreadID  string `json:"thread_id,omitempty"`
}

// Message is a message stored in an inbox.
type Message struct {
	MessageID string    `json:"message_id"`
	InboxID   string    `json:"inbox_id,omitempty"`
	From      string    `json:"from,omitempty"`
	To        []string  `json:"to,omitempty"`
	Subject   string    `json:"subject"`
	Text      string    `json:"text,omitempty"`
	HTML      string    `json:"html,omitempty"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// ListMessagesResponse wraps the message collection endpoint payload.
type ListMessagesResponse struct {
	Messages []Message `json:"messages"`
	Count    int       `json:"count,omitempty"`
}
