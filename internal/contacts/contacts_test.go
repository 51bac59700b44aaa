package contacts_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ka-reem/mail-agent/internal/contacts"
	"github.com/ka-reem/mail-agent/pkg/logger"
)

func parseRecords(t *testing.T, raw string) []any {
	t.Helper()
	var records []any
	require.NoError(t, json.Unmarshal([]byte(raw), &records))
	return records
}

func TestExtract_CanonicalFields(t *testing.T) {
	t.Parallel()

	records := parseRecords(t, `[
		{"name": "John Doe", "company": "TechCorp", "title": "Senior Engineer", "email": "john@techcorp.com"}
	]`)

	got := contacts.Extract(records, logger.NewNope())
	require.Len(t, got, 1)
	require.Equal(t, "John Doe", got[0].Name)
	require.Equal(t, "john@techcorp.com", got[0].Email)
	require.Equal(t, "TechCorp", got[0].Company)
	require.Equal(t, "Senior Engineer", got[0].Title)
	require.NotNil(t, got[0].Original)
}

func TestExtract_AliasAndCaseInsensitiveKeys(t *testing.T) {
	t.Parallel()

	records := parseRecords(t, `[
		{"Full_Name": "Sarah Johnson", "E_MAIL": "sarah@startupxyz.io", "Employer": "StartupXYZ", "job_position": "Product Manager"}
	]`)

	got := contacts.Extract(records, logger.NewNope())
	require.Len(t, got, 1)
	require.Equal(t, "Sarah Johnson", got[0].Name)
	require.Equal(t, "sarah@startupxyz.io", got[0].Email)
	require.Equal(t, "StartupXYZ", got[0].Company)
	require.Equal(t, "Product Manager", got[0].Title)
}

func TestExtract_DefaultsWhenAliasesMissing(t *testing.T) {
	t.Parallel()

	records := parseRecords(t, `[{"email": "x@y.co"}]`)

	got := contacts.Extract(records, logger.NewNope())
	require.Len(t, got, 1)
	require.Equal(t, contacts.DefaultName, got[0].Name)
	require.Equal(t, contacts.DefaultCompany, got[0].Company)
	require.Equal(t, contacts.DefaultTitle, got[0].Title)
}

func TestExtract_DiscardsInvalidOrMissingEmail(t *testing.T) {
	t.Parallel()

	records := parseRecords(t, `[
		{"name": "No Email"},
		{"name": "Bad Email", "email": "not-an-address"},
		{"name": "Kept", "email": "kept@example.com"},
		"not an object",
		42
	]`)

	got := contacts.Extract(records, logger.NewNope())
	require.Len(t, got, 1)
	require.Equal(t, "kept@example.com", got[0].Email)
}

func TestExtract_PreservesInputOrder(t *testing.T) {
	t.Parallel()

	records := parseRecords(t, `[
		{"email": "b@b.com"},
		{"email": "a@a.com"},
		{"email": "c@c.com"}
	]`)

	got := contacts.Extract(records, logger.NewNope())
	require.Equal(t, []string{"b@b.com", "a@a.com", "c@c.com"}, contacts.Emails(got))
}

func TestExtract_EmailKeptVerbatim(t *testing.T) {
	t.Parallel()

	records := parseRecords(t, `[{"EMAIL": "Carol.Smith@Zeta.IO"}]`)

	got := contacts.Extract(records, logger.NewNope())
	require.Len(t, got, 1)
	require.Equal(t, "Carol.Smith@Zeta.IO", got[0].Email)
}

func TestMergeRecipients_ExactMatchDedup(t *testing.T) {
	t.Parallel()

	manual := []string{"a@x.com", "b@y.com"}
	structured := []string{"b@y.com", "B@Y.com", "c@z.com"}

	got := contacts.MergeRecipients(manual, structured)
	// Dedup is by exact string equality: differently-cased addresses stay.
	require.Equal(t, []string{"a@x.com", "b@y.com", "B@Y.com", "c@z.com"}, got)
}

func TestByEmail(t *testing.T) {
	t.Parallel()

	records := parseRecords(t, `[
		{"email": "a@x.com", "name": "A"},
		{"email": "b@y.com", "name": "B"}
	]`)

	m := contacts.ByEmail(contacts.Extract(records, logger.NewNope()))
	require.Len(t, m, 2)
	require.Equal(t, "B", m["b@y.com"].Name)
}
