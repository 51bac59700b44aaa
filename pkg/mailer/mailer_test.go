package mailer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ka-reem/mail-agent/pkg/mailer"
)

func TestRecipient(t *testing.T) {
	t.Parallel()

	require.Equal(t, "a@x.com", mailer.Recipient("", "a@x.com"))
	require.Equal(t, "Ann Lee <a@x.com>", mailer.Recipient("Ann Lee", "a@x.com"))
}

func TestRenderHTML(t *testing.T) {
	t.Parallel()

	html, err := mailer.RenderHTML("Hi John,\n\nI noticed your work at **TechCorp**.")
	require.NoError(t, err)
	require.Contains(t, html, "<strong>TechCorp</strong>")
	require.Contains(t, html, "<p>Hi John,</p>")
}

func TestParseTemplate_Frontmatter(t *testing.T) {
	t.Parallel()

	tmpl, err := mailer.ParseTemplate([]byte("---\nSubject: Exciting Opportunity at {{.Company}}\n---\nHi {{.Name}},\n"))
	require.NoError(t, err)
	require.Equal(t, "Exciting Opportunity at {{.Company}}", tmpl.Subject("fallback"))
	require.Equal(t, "Hi {{.Name}},\n", tmpl.Body)
}

func TestParseTemplate_NoFrontmatter(t *testing.T) {
	t.Parallel()

	tmpl, err := mailer.ParseTemplate([]byte("just a body"))
	require.NoError(t, err)
	require.Empty(t, tmpl.Metadata)
	require.Equal(t, "just a body", tmpl.Body)
	require.Equal(t, "fallback", tmpl.Subject("fallback"))
}

func TestParseTemplate_UnclosedFrontmatter(t *testing.T) {
	t.Parallel()

	_, err := mailer.ParseTemplate([]byte("---\nSubject: broken\n"))
	require.ErrorIs(t, err, mailer.ErrInvalidFrontmatter)
}
