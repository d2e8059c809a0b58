// Package sanitize strips unsafe HTML before it reaches a display surface.
// Every preview-mode conversion result goes through a Sanitizer on its way
// to a reader; the edit-mode HTML never leaves the engine unsanitized
// either, since exports share the same path.
package sanitize

import "github.com/microcosm-cc/bluemonday"

// Sanitizer takes raw HTML and returns HTML that is safe to inject for
// display.
type Sanitizer interface {
	Sanitize(html string) string
}

// Policy is the default Sanitizer, backed by a bluemonday policy tuned to
// the exact tags and classes the markup renderers emit.
type Policy struct {
	policy *bluemonday.Policy
}

// NewPolicy builds the default policy.
func NewPolicy() *Policy {
	p := bluemonday.NewPolicy()

	p.AllowElements(
		"p", "br", "strong", "em", "code",
		"h1", "h2", "h3",
		"ul", "ol", "li",
		"div", "span", "a",
	)
	p.AllowAttrs("class").OnElements(
		"p", "strong", "em", "code",
		"h1", "h2", "h3",
		"ul", "ol", "li",
		"div", "span", "a",
	)
	p.AllowAttrs("href", "target", "rel").OnElements("a")
	p.AllowURLSchemes("http", "https", "mailto")
	p.RequireParseableURLs(true)

	return &Policy{policy: p}
}

// Sanitize implements Sanitizer.
func (s *Policy) Sanitize(html string) string {
	return s.policy.Sanitize(html)
}
