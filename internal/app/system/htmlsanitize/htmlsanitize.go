// internal/app/system/htmlsanitize/htmlsanitize.go
package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Bio sanitization keeps a small formatting vocabulary so mentor bios
// can carry emphasis and lists without opening an XSS surface. Plain
// fields (names, headlines, company) get everything stripped.

var (
	richPolicy  = buildRichPolicy()
	plainPolicy = bluemonday.StrictPolicy()
)

func buildRichPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("p", "br", "strong", "em", "u", "s", "blockquote")
	p.AllowElements("ul", "ol", "li")
	p.AllowElements("h2", "h3")
	p.AllowElements("pre", "code")
	p.AllowAttrs("href").OnElements("a")
	p.AllowURLSchemes("https")
	p.RequireNoFollowOnLinks(true)
	return p
}

// Rich sanitizes user-supplied HTML, keeping the formatting subset
// allowed in long-form fields such as the mentor bio.
func Rich(s string) string {
	return strings.TrimSpace(richPolicy.Sanitize(s))
}

// Plain strips all markup. Use for single-line fields.
func Plain(s string) string {
	return strings.TrimSpace(plainPolicy.Sanitize(s))
}

// PlainAll applies Plain to every element of a slice in place and
// drops entries that become empty.
func PlainAll(ss []string) []string {
	out := ss[:0]
	for _, s := range ss {
		if v := Plain(s); v != "" {
			out = append(out, v)
		}
	}
	return out
}
