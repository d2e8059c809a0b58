package markup

import (
	"fmt"
	"html"
	"strings"
)

// linkIndicator is appended to preview-mode links as a visual cue that the
// target opens in a new context.
const linkIndicator = "↗"

// denyFlags restricts which span kinds may open while parsing nested
// content. A marker kind never nests inside itself; unmatched markers
// degrade to literal text.
type denyFlags uint8

const (
	denyBold denyFlags = 1 << iota
	denyItalic
	denyLink
)

// ParseSpans splits a single line into classified inline spans. It scans
// left to right, first match wins: inline code, then bold, then italic,
// then links. Bold is tried before italic so that "**" is never consumed
// as an italic delimiter. The parser never fails; anything that does not
// form a complete span stays literal text.
func ParseSpans(line string) []Span {
	return parseSpans([]rune(line), 0)
}

func parseSpans(r []rune, deny denyFlags) []Span {
	var spans []Span
	var literal []rune

	flush := func() {
		if len(literal) > 0 {
			spans = append(spans, Span{Kind: SpanPlain, Text: string(literal)})
			literal = nil
		}
	}

	i := 0
	for i < len(r) {
		c := r[i]

		// Inline code: content is taken verbatim, no nested spans.
		if c == '`' {
			if end := nextRune(r, i+1, '`'); end > i+1 {
				flush()
				spans = append(spans, Span{Kind: SpanCode, Text: string(r[i+1 : end])})
				i = end + 1
				continue
			}
		}

		// Bold: **X** or __X__, shortest closing pair.
		if deny&denyBold == 0 && isDoubleMarker(r, i) {
			if end := findBoldClose(r, i+2, c); end >= 0 {
				flush()
				spans = append(spans, Span{
					Kind:     SpanBold,
					Children: parseSpans(r[i+2:end], deny|denyBold),
				})
				i = end + 2
				continue
			}
		}

		// Italic: *X* or _X_. A marker adjacent to another marker of the
		// same character is not an italic delimiter, so leftovers from an
		// unmatched bold pair stay literal.
		if deny&denyItalic == 0 && isSingleMarker(r, i) {
			if end := findItalicClose(r, i+1, c); end >= 0 {
				flush()
				spans = append(spans, Span{
					Kind:     SpanItalic,
					Children: parseSpans(r[i+1:end], deny|denyItalic),
				})
				i = end + 1
				continue
			}
		}

		// Link: [text](url). The label keeps its inline formatting; the
		// url is taken verbatim.
		if c == '[' && deny&denyLink == 0 {
			if label, href, next, ok := matchLink(r, i); ok {
				flush()
				spans = append(spans, Span{
					Kind:     SpanLink,
					Href:     href,
					Children: parseSpans(label, deny|denyLink),
				})
				i = next
				continue
			}
		}

		literal = append(literal, c)
		i++
	}

	flush()
	return spans
}

func isMarkerRune(c rune) bool {
	return c == '*' || c == '_'
}

// isDoubleMarker reports whether a bold delimiter starts at i.
func isDoubleMarker(r []rune, i int) bool {
	return isMarkerRune(r[i]) && i+1 < len(r) && r[i+1] == r[i]
}

// isSingleMarker reports whether a lone italic delimiter starts at i,
// i.e. one not touching another marker of the same character.
func isSingleMarker(r []rune, i int) bool {
	if !isMarkerRune(r[i]) {
		return false
	}
	if i > 0 && r[i-1] == r[i] {
		return false
	}
	return i+1 < len(r) && r[i+1] != r[i]
}

// nextRune returns the index of the first occurrence of c at or after
// start, or -1.
func nextRune(r []rune, start int, c rune) int {
	for j := start; j < len(r); j++ {
		if r[j] == c {
			return j
		}
	}
	return -1
}

// findBoldClose locates the first closing double marker leaving at least
// one rune of content.
func findBoldClose(r []rune, start int, d rune) int {
	for j := start + 1; j+1 < len(r); j++ {
		if r[j] == d && r[j+1] == d {
			return j
		}
	}
	return -1
}

// findItalicClose locates the closing single marker: the first lone
// occurrence of the marker character. A pair of markers belongs to a bold
// span nested in the content, so the scan steps past it; the recursive
// child parse consumes the pair. With no lone closer the span fails and
// the opener stays literal.
func findItalicClose(r []rune, start int, d rune) int {
	for j := start; j < len(r); j++ {
		if r[j] != d {
			continue
		}
		if j+1 < len(r) && r[j+1] == d {
			j++
			continue
		}
		if j == start {
			return -1
		}
		return j
	}
	return -1
}

// matchLink matches [text](url) at position i, returning the label runes,
// the href and the index just past the closing parenthesis.
func matchLink(r []rune, i int) (label []rune, href string, next int, ok bool) {
	close1 := nextRune(r, i+1, ']')
	if close1 <= i+1 {
		return nil, "", 0, false
	}
	if close1+1 >= len(r) || r[close1+1] != '(' {
		return nil, "", 0, false
	}
	close2 := nextRune(r, close1+2, ')')
	if close2 <= close1+2 {
		return nil, "", 0, false
	}
	return r[i+1 : close1], string(r[close1+2 : close2]), close2 + 1, true
}

// FormatInline renders one line's inline spans as HTML in the given mode.
func FormatInline(line string, mode Mode) string {
	var b strings.Builder
	renderSpans(&b, ParseSpans(line), mode)
	return b.String()
}

func renderSpans(b *strings.Builder, spans []Span, mode Mode) {
	for _, s := range spans {
		renderSpan(b, s, mode)
	}
}

func renderSpan(b *strings.Builder, s Span, mode Mode) {
	switch s.Kind {
	case SpanPlain:
		b.WriteString(html.EscapeString(s.Text))
	case SpanBold:
		if mode == ModePreview {
			b.WriteString(`<strong class="md-strong">`)
		} else {
			b.WriteString("<strong>")
		}
		renderSpans(b, s.Children, mode)
		b.WriteString("</strong>")
	case SpanItalic:
		if mode == ModePreview {
			b.WriteString(`<em class="md-em">`)
		} else {
			b.WriteString("<em>")
		}
		renderSpans(b, s.Children, mode)
		b.WriteString("</em>")
	case SpanCode:
		if mode == ModePreview {
			b.WriteString(`<code class="md-code">`)
		} else {
			b.WriteString("<code>")
		}
		b.WriteString(html.EscapeString(s.Text))
		b.WriteString("</code>")
	case SpanLink:
		if mode == ModePreview {
			fmt.Fprintf(b, `<a class="md-link" href="%s" target="_blank" rel="noopener noreferrer">`, html.EscapeString(s.Href))
		} else {
			fmt.Fprintf(b, `<a href="%s" target="_blank" rel="noopener noreferrer">`, html.EscapeString(s.Href))
		}
		renderSpans(b, s.Children, mode)
		if mode == ModePreview {
			b.WriteString(`<span class="md-link-icon">` + linkIndicator + `</span>`)
		}
		b.WriteString("</a>")
	}
}
