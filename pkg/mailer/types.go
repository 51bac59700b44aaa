package mailer

import "fmt"

// Email represents a fully-prepared message ready for sending.
type Email struct {
	From    string // Sending mailbox: an inbox ID or a fixed from address
	To      string // Single recipient
	Subject string
	Text    string // Plain text body
	HTML    string // Optional HTML alternative
}

// Recipient formats a name and email into RFC 5322 address format.
// Returns "Name <email>" if name is provided, otherwise just email.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}
