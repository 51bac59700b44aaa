package compose

import (
	"regexp"
	"strings"
)

// replacement is one fixed find-and-replace rule applied to model output.
type replacement struct {
	re   *regexp.Regexp
	with string
}

// Models occasionally emit placeholder tokens and filler phrases despite
// explicit instructions not to. These rules rewrite the known offenders into
// neutral professional phrasing; anything still bracketed afterwards is
// dropped wholesale.
var replacements = []replacement{
	{regexp.MustCompile(`(?i)\[Your [^\]]+\]`), ""},
	{regexp.MustCompile(`(?i)your major here`), "Computer Science"},
	{regexp.MustCompile(`(?i)put information about yourself here`), "I am a motivated professional with relevant experience"},
	{regexp.MustCompile(`(?i)insert details here`), "relevant details"},
	{regexp.MustCompile(`(?i)mention your experience`), "my experience"},
	{regexp.MustCompile(`(?i)add your qualifications`), "my qualifications"},
	{regexp.MustCompile(`(?i)insert your background`), "my background"},
	{regexp.MustCompile(`(?i)describe your skills`), "my skills"},
	{regexp.MustCompile(`(?i)your experience here`), "relevant professional experience"},
	{regexp.MustCompile(`(?i)your background here`), "a strong background in technology"},
	{regexp.MustCompile(`(?i)your qualifications here`), "relevant qualifications"},
	{regexp.MustCompile(`(?i)your skills here`), "strong technical skills"},
}

var (
	bracketedRe  = regexp.MustCompile(`\[[^\]]*\]`)
	bracedRe     = regexp.MustCompile(`\{[^}]*\}`)
	spaceRunRe   = regexp.MustCompile(`[ \t]+`)
	blankRunRe   = regexp.MustCompile(`\n[ \t]*(\n[ \t]*)+`)
	trailingWSRe = regexp.MustCompile(`[ \t]+\n`)
)

// cleanPlaceholders rewrites known filler phrases, strips leftover
// bracket/brace placeholder tokens, and collapses space and blank-line runs.
func cleanPlaceholders(content string) string {
	for _, r := range replacements {
		content = r.re.ReplaceAllString(content, r.with)
	}

	content = bracketedRe.ReplaceAllString(content, "")
	content = bracedRe.ReplaceAllString(content, "")

	content = spaceRunRe.ReplaceAllString(content, " ")
	content = trailingWSRe.ReplaceAllString(content, "\n")
	content = blankRunRe.ReplaceAllString(content, "\n\n")

	return strings.TrimSpace(content)
}
