// Package sanitizer strips dangerous markup from HTML before it is shown
// as an email preview or attached as the HTML part of an outgoing message.
package sanitizer

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	emailPolicy *bluemonday.Policy
	initOnce    sync.Once
)

func initPolicy() {
	initOnce.Do(func() {
		// Formatting that survives the trip through email clients. Scripts,
		// event handlers, and javascript: URLs are always stripped.
		emailPolicy = bluemonday.NewPolicy()
		emailPolicy.AllowStandardURLs()
		emailPolicy.AllowElements(
			"p", "br", "h1", "h2", "h3",
			"strong", "b", "em", "i",
			"ul", "ol", "li",
			"blockquote", "code", "pre",
		)
		emailPolicy.AllowAttrs("href").OnElements("a")
		emailPolicy.RequireNoFollowOnLinks(true)
	})
}

// SanitizeEmailHTML removes everything but basic formatting tags from an
// email body's HTML rendering.
func SanitizeEmailHTML(s string) string {
	initPolicy()
	return emailPolicy.Sanitize(s)
}
