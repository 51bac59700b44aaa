package mailer

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Template is an email template: YAML frontmatter metadata (Subject and
// friends) plus a text/template body.
type Template struct {
	Metadata map[string]any
	Body     string
}

var frontmatterDelimiter = []byte("---")

// ParseTemplate splits template content into frontmatter metadata and body.
// Content without a leading "---" is treated as a bare body.
func ParseTemplate(content []byte) (*Template, error) {
	if !bytes.HasPrefix(content, frontmatterDelimiter) {
		return &Template{Metadata: make(map[string]any), Body: string(content)}, nil
	}

	rest := content[len(frontmatterDelimiter):]
	end := bytes.Index(rest, frontmatterDelimiter)
	if end < 0 {
		return nil, fmt.Errorf("%w: missing closing delimiter", ErrInvalidFrontmatter)
	}

	metadata := make(map[string]any)
	if err := yaml.Unmarshal(rest[:end], &metadata); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
	}

	body := bytes.TrimLeft(rest[end+len(frontmatterDelimiter):], "\r\n")
	return &Template{Metadata: metadata, Body: string(body)}, nil
}

// Subject returns the Subject metadata field, or the fallback when absent.
func (t *Template) Subject(fallback string) string {
	if s, ok := t.Metadata["Subject"].(string); ok && s != "" {
		return s
	}
	return fallback
}
