// Package contacts maps loosely-structured recipient records onto a
// canonical contact shape. Input typically comes from a pasted JSON array
// where field names vary wildly between exports ("email" vs "e_mail" vs
// "contact_email"), so resolution is alias-driven and best-effort.
package contacts

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ka-reem/mail-agent/pkg/validator"
)

// Contact is a normalized recipient profile. Original holds the full source
// record so downstream prompt construction can use fields the canonical
// shape does not cover (linkedin, location, skills, ...).
type Contact struct {
	Name     string         `json:"name"`
	Email    string         `json:"email"`
	Company  string         `json:"company"`
	Title    string         `json:"title"`
	Original map[string]any `json:"original_data,omitempty"`
}

// Attribute defaults applied when no alias matches.
const (
	DefaultName    = "there"
	DefaultCompany = "your company"
	DefaultTitle   = "Professional"
)

// Alias lists are priority-ordered: the first alias with a present,
// non-empty value wins.
var (
	nameAliases    = []string{"name", "full_name", "fullname", "person_name", "first_name", "fname", "contact_name"}
	emailAliases   = []string{"email", "email_address", "contact_email", "mail", "e_mail"}
	companyAliases = []string{"company", "organization", "employer", "corp", "business", "firm"}
	titleAliases   = []string{"title", "position", "job_title", "role", "designation", "job_position"}
)

// Extract resolves each record into a Contact. Records without a valid email
// are discarded with a warning; nothing here is fatal. Output preserves
// input order.
func Extract(records []any, log *slog.Logger) []Contact {
	if log == nil {
		log = slog.Default()
	}

	out := make([]Contact, 0, len(records))
	for _, rec := range records {
		entry, ok := rec.(map[string]any)
		if !ok {
			log.Warn("skipping non-object contact entry", slog.String("entry", fmt.Sprintf("%v", rec)))
			continue
		}

		c := Contact{
			Name:     fieldValue(entry, nameAliases, DefaultName),
			Email:    fieldValue(entry, emailAliases, ""),
			Company:  fieldValue(entry, companyAliases, DefaultCompany),
			Title:    fieldValue(entry, titleAliases, DefaultTitle),
			Original: entry,
		}

		if c.Email == "" || !validator.ValidateEmail(c.Email) {
			log.Warn("skipping contact without valid email", slog.String("email", c.Email))
			continue
		}
		out = append(out, c)
	}
	return out
}

// Emails returns just the addresses, preserving order.
func Emails(list []Contact) []string {
	emails := make([]string, 0, len(list))
	for _, c := range list {
		emails = append(emails, c.Email)
	}
	return emails
}

// ByEmail indexes contacts by address for per-recipient lookup during
// generation. Last write wins on duplicate addresses.
func ByEmail(list []Contact) map[string]Contact {
	m := make(map[string]Contact, len(list))
	for _, c := range list {
		m[c.Email] = c
	}
	return m
}

// MergeRecipients unions manual and structured recipient lists, removing
// duplicates by exact string equality. Order: manual first, then structured
// addresses not already present.
func MergeRecipients(manual, structured []string) []string {
	seen := make(map[string]struct{}, len(manual)+len(structured))
	merged := make([]string, 0, len(manual)+len(structured))
	for _, lists := range [][]string{manual, structured} {
		for _, e := range lists {
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			merged = append(merged, e)
		}
	}
	return merged
}

// fieldValue searches the record for the first alias with a non-empty value.
// Direct key hits win before a case-insensitive scan, so exact field names
// take priority over loosely-cased variants.
func fieldValue(entry map[string]any, aliases []string, def string) string {
	for _, alias := range aliases {
		if v, ok := entry[alias]; ok {
			if s := coerce(v); s != "" {
				return s
			}
		}
		for key, v := range entry {
			if strings.EqualFold(key, alias) {
				if s := coerce(v); s != "" {
					return s
				}
			}
		}
	}
	return def
}

func coerce(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if !val {
			return ""
		}
		return "true"
	case float64:
		if val == 0 {
			return ""
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}
