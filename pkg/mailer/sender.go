package mailer

import "context"

// Sender defines the minimal interface delivery backends must implement.
// It accepts a fully-prepared Email and handles the actual delivery.
type Sender interface {
	// Send delivers one email message. From carries the sending mailbox
	// identity; backends that work with a fixed sender may ignore it.
	// Returns an error if delivery fails.
	Send(ctx context.Context, email *Email) error
}
