package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ka-reem/mail-agent/pkg/validator"
)

func TestExtractEmails_NewlineAndCommaSeparated(t *testing.T) {
	t.Parallel()

	text := "john@company1.com\nmary@company2.com, bob@startup.io"
	got := validator.ExtractEmails(text)
	require.Equal(t, []string{"john@company1.com", "mary@company2.com", "bob@startup.io"}, got)
}

func TestExtractEmails_IgnoresSurroundingProse(t *testing.T) {
	t.Parallel()

	text := "Please reach alice.smith@example.co (and CC bob_j@corp.io) by Friday."
	got := validator.ExtractEmails(text)
	require.Equal(t, []string{"alice.smith@example.co", "bob_j@corp.io"}, got)
}

func TestExtractEmails_EmptyInput(t *testing.T) {
	t.Parallel()

	require.Empty(t, validator.ExtractEmails(""))
	require.Empty(t, validator.ExtractEmails("no addresses here"))
}

func TestExtractEmails_KeepsDuplicates(t *testing.T) {
	t.Parallel()

	got := validator.ExtractEmails("a@x.com a@x.com")
	require.Equal(t, []string{"a@x.com", "a@x.com"}, got)
}

func TestExtractEmails_EveryMatchValidates(t *testing.T) {
	t.Parallel()

	text := "mix of junk @@nope, real@site.org, trailing.dot@bad., short@x.io"
	for _, e := range validator.ExtractEmails(text) {
		require.True(t, validator.ValidateEmail(e), "extracted %q must validate", e)
	}
}

func TestExtractEmails_Idempotent(t *testing.T) {
	t.Parallel()

	text := "carol@zeta.io, dan@omega.dev\nnoise carol@zeta.io"
	first := validator.ExtractEmails(text)
	second := validator.ExtractEmails(strings.Join(first, "\n"))

	asSet := func(in []string) map[string]struct{} {
		s := make(map[string]struct{}, len(in))
		for _, e := range in {
			s[e] = struct{}{}
		}
		return s
	}
	require.Equal(t, asSet(first), asSet(second))
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	valid := []string{
		"a@x.com",
		"first.last@sub.domain.org",
		"user+tag@example.io",
		"UPPER@CASE.COM",
	}
	for _, e := range valid {
		require.True(t, validator.ValidateEmail(e), "expected %q to be valid", e)
	}

	invalid := []string{
		"",
		"plainstring",
		"@missing-local.com",
		"missing-at.example.com",
		"tld-too-short@site.c",
		"spaces in@local.com",
		"wrapped a@x.com here",
	}
	for _, e := range invalid {
		require.False(t, validator.ValidateEmail(e), "expected %q to be invalid", e)
	}
}
