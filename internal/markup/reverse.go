package markup

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// listState tracks one open list container while reverse-converting; count
// is -1 for bulleted lists and the running ordinal for numbered ones.
type listState struct {
	count int
}

// HTMLToMarkup maps the HTML subset produced by the edit-mode renderer back
// to markup syntax. It is lossy and best-effort: tags outside the subset
// are dropped, their text content passes through, and the function never
// fails. It is not a parser for arbitrary HTML.
func HTMLToMarkup(src string) string {
	z := html.NewTokenizer(strings.NewReader(src))
	var b strings.Builder
	var hrefs []string
	var lists []listState

	for {
		switch z.Next() {
		case html.ErrorToken:
			// Tokenizer reports io.EOF here; any other error still yields
			// whatever was converted so far.
			return strings.TrimRight(b.String(), "\n")

		case html.TextToken:
			b.WriteString(string(z.Text()))

		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			switch string(name) {
			case "strong", "b":
				b.WriteString("**")
			case "em", "i":
				b.WriteString("*")
			case "code":
				b.WriteString("`")
			case "a":
				href := ""
				for hasAttr {
					var k, v []byte
					k, v, hasAttr = z.TagAttr()
					if string(k) == "href" {
						href = string(v)
					}
				}
				hrefs = append(hrefs, href)
				b.WriteString("[")
			case "h1":
				startLine(&b)
				b.WriteString("# ")
			case "h2":
				startLine(&b)
				b.WriteString("## ")
			case "h3":
				startLine(&b)
				b.WriteString("### ")
			case "ul":
				startLine(&b)
				lists = append(lists, listState{count: -1})
			case "ol":
				startLine(&b)
				lists = append(lists, listState{count: 0})
			case "li":
				startLine(&b)
				if n := len(lists); n > 0 && lists[n-1].count >= 0 {
					lists[n-1].count++
					fmt.Fprintf(&b, "%d. ", lists[n-1].count)
				} else {
					b.WriteString("- ")
				}
			case "br":
				b.WriteString("\n")
			case "p":
				if b.Len() > 0 {
					startParagraph(&b)
				}
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "strong", "b":
				b.WriteString("**")
			case "em", "i":
				b.WriteString("*")
			case "code":
				b.WriteString("`")
			case "a":
				href := ""
				if n := len(hrefs); n > 0 {
					href = hrefs[n-1]
					hrefs = hrefs[:n-1]
				}
				b.WriteString("](" + href + ")")
			case "h1", "h2", "h3", "li":
				b.WriteString("\n")
			case "ul", "ol":
				if n := len(lists); n > 0 {
					lists = lists[:n-1]
				}
			}
		}
	}
}

// startLine makes sure the next write begins on a fresh line.
func startLine(b *strings.Builder) {
	s := b.String()
	if s != "" && !strings.HasSuffix(s, "\n") {
		b.WriteString("\n")
	}
}

// startParagraph makes sure the next write is separated by a blank line.
func startParagraph(b *strings.Builder) {
	s := b.String()
	switch {
	case strings.HasSuffix(s, "\n\n"):
	case strings.HasSuffix(s, "\n"):
		b.WriteString("\n")
	default:
		b.WriteString("\n\n")
	}
}
