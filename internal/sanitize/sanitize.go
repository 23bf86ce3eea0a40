// Package sanitize strips markup from user-supplied text before it is
// validated and stored.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict removes every tag and attribute, leaving plain text only.
var strict = bluemonday.StrictPolicy()

// Plain strips all HTML from s, decodes entities the policy escaped, and
// trims surrounding whitespace. The result is what gets persisted for post
// titles and bodies.
func Plain(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}
