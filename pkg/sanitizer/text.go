package sanitizer

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	strictOnce   sync.Once
)

func strict() *bluemonday.Policy {
	strictOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy
}

// StripHTML removes every tag from s. Script and style contents are dropped.
// The result is entity-escaped and safe to embed in HTML or markdown.
func StripHTML(s string) string {
	return strings.TrimSpace(strict().Sanitize(s))
}

// PlainText strips tags like StripHTML and decodes entities back to text.
// Use it for plain-text email bodies and logs, never for HTML output.
func PlainText(s string) string {
	return html.UnescapeString(StripHTML(s))
}
