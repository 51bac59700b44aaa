package mailer

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// md is the shared markdown processor. Goldmark converters are safe for
// concurrent use.
var md = goldmark.New(
	goldmark.WithExtensions(extension.Linkify),
)

// RenderHTML converts a plain-text/markdown email body into the HTML
// alternative attached alongside the text part. Plain prose passes through
// as paragraphs; bare URLs become links.
func RenderHTML(body string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(body), &buf); err != nil {
		return "", fmt.Errorf("mailer: failed to render html body: %w", err)
	}
	return buf.String(), nil
}
