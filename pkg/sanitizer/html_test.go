package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ka-reem/mail-agent/pkg/sanitizer"
)

func TestSanitizeEmailHTML_StripsScripts(t *testing.T) {
	t.Parallel()

	got := sanitizer.SanitizeEmailHTML(`<p>Hi</p><script>alert("x")</script>`)
	require.Equal(t, "<p>Hi</p>", got)
}

func TestSanitizeEmailHTML_KeepsFormatting(t *testing.T) {
	t.Parallel()

	got := sanitizer.SanitizeEmailHTML(`<p>Hi <strong>John</strong>,</p><ul><li>one</li></ul>`)
	require.Equal(t, `<p>Hi <strong>John</strong>,</p><ul><li>one</li></ul>`, got)
}

func TestSanitizeEmailHTML_StripsEventHandlers(t *testing.T) {
	t.Parallel()

	got := sanitizer.SanitizeEmailHTML(`<p onclick="steal()">Hi</p><a href="javascript:bad()">x</a>`)
	require.NotContains(t, got, "onclick")
	require.NotContains(t, got, "javascript:")
}
