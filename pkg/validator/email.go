package validator

import "regexp"

// emailPattern matches RFC-light addresses: local part, @, domain labels,
// and a TLD of at least two letters. It is intentionally permissive about
// the local part; strict RFC 5322 parsing rejects addresses that real
// providers accept.
const emailPattern = `[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`

var (
	extractRe = regexp.MustCompile(`\b` + emailPattern + `\b`)
	exactRe   = regexp.MustCompile(`^` + emailPattern + `$`)
)

// ExtractEmails returns every email address found in free-form text, in
// order of appearance. Duplicates are preserved; callers dedup when merging
// recipient sources. Empty input yields an empty slice, never an error.
func ExtractEmails(text string) []string {
	if text == "" {
		return []string{}
	}
	found := extractRe.FindAllString(text, -1)
	if found == nil {
		return []string{}
	}
	return found
}

// ValidateEmail reports whether s is a single well-formed email address.
// The whole string must match; no trimming or case normalization is applied.
func ValidateEmail(s string) bool {
	return exactRe.MatchString(s)
}
