// Package compose builds the subject/body pair for each outgoing email.
// In manual mode content is used verbatim by the workflow engine; in AI mode
// this package constructs a prompt for the completion provider, parses the
// response, and guarantees a usable draft even when the backend is missing
// or failing.
package compose

// Config is the immutable content configuration for one generation pass.
type Config struct {
	Type                  string `json:"email_type"` // TypeRegular or TypeAI
	Subject               string `json:"subject,omitempty"`
	Body                  string `json:"body,omitempty"`
	Template              string `json:"template,omitempty"`
	Prompt                string `json:"prompt,omitempty"`
	CustomizePerRecipient bool   `json:"customize_per_recipient,omitempty"`
}

// Email content modes.
const (
	TypeRegular = "regular"
	TypeAI      = "ai"
)

// Draft is a ready-to-send subject/body pair. Both fields are always
// non-empty when produced by Generator.Generate.
type Draft struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
