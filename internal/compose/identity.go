package compose

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ka-reem/mail-agent/internal/contacts"
)

var titleCaser = cases.Title(language.English)

// identity is the recipient's resolved display profile used in prompts and
// fallback content.
type identity struct {
	Name    string
	Company string
	Title   string
	Email   string
}

// resolveIdentity prefers contact fields and falls back to deriving name and
// company from the address itself: local part tokens become the name, the
// first domain label becomes the company.
func resolveIdentity(email string, contact *contacts.Contact) identity {
	id := identity{
		Name:    contacts.DefaultName,
		Company: contacts.DefaultCompany,
		Title:   contacts.DefaultTitle,
		Email:   email,
	}

	if name, company, ok := splitAddress(email); ok {
		id.Name = name
		id.Company = company
	}

	if contact != nil {
		if contact.Name != "" {
			id.Name = contact.Name
		}
		if contact.Company != "" {
			id.Company = contact.Company
		}
		if contact.Title != "" {
			id.Title = contact.Title
		}
	}
	return id
}

// splitAddress derives ("John Doe", "Techcorp") from "john.doe@techcorp.com".
func splitAddress(email string) (name, company string, ok bool) {
	local, domain, found := strings.Cut(email, "@")
	if !found || local == "" || domain == "" {
		return "", "", false
	}

	tokens := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_'
	})
	if len(tokens) == 0 {
		return "", "", false
	}
	for i, tok := range tokens {
		tokens[i] = titleCaser.String(tok)
	}

	label, _, _ := strings.Cut(domain, ".")
	if label == "" {
		return "", "", false
	}

	return strings.Join(tokens, " "), titleCaser.String(label), true
}
