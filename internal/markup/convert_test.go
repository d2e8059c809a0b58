package markup

import (
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// parseFragment parses rendered HTML for structural assertions.
func parseFragment(t *testing.T, src string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Failed to parse rendered HTML %q: %v", src, err)
	}
	return doc
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func TestEndToEndEditScenario(t *testing.T) {
	input := "# Title\n\nSome **bold** and *italic* text with a [link](http://x)."
	result := EditHTML(input)

	doc := parseFragment(t, result)

	h1s := cascadia.MustCompile("h1").MatchAll(doc)
	if len(h1s) != 1 {
		t.Fatalf("Expected exactly one h1, got %d in %q", len(h1s), result)
	}
	if got := textContent(h1s[0]); got != "Title" {
		t.Errorf("Expected h1 text %q, got %q", "Title", got)
	}

	ps := cascadia.MustCompile("p").MatchAll(doc)
	if len(ps) != 1 {
		t.Fatalf("Expected exactly one paragraph, got %d in %q", len(ps), result)
	}

	if n := cascadia.MustCompile("p > strong").MatchFirst(doc); n == nil {
		t.Errorf("Expected a strong span inside the paragraph in %q", result)
	}
	if n := cascadia.MustCompile("p > em").MatchFirst(doc); n == nil {
		t.Errorf("Expected an em span inside the paragraph in %q", result)
	}

	a := cascadia.MustCompile("p > a").MatchFirst(doc)
	if a == nil {
		t.Fatalf("Expected an anchor inside the paragraph in %q", result)
	}
	if href := attrValue(a, "href"); href != "http://x" {
		t.Errorf("Expected href %q, got %q", "http://x", href)
	}
	if got := textContent(a); got != "link" {
		t.Errorf("Expected link text %q, got %q", "link", got)
	}
}

func TestListGroupingIsAdjacencyPure(t *testing.T) {
	doc := parseFragment(t, EditHTML("- a\n- b\n\nc"))

	lists := cascadia.MustCompile("ul").MatchAll(doc)
	if len(lists) != 1 {
		t.Fatalf("Expected exactly one list container, got %d", len(lists))
	}
	items := cascadia.MustCompile("ul > li").MatchAll(doc)
	if len(items) != 2 {
		t.Fatalf("Expected two list items, got %d", len(items))
	}
	ps := cascadia.MustCompile("p").MatchAll(doc)
	if len(ps) != 1 || textContent(ps[0]) != "c" {
		t.Errorf("Expected a separate paragraph holding %q", "c")
	}
}

// Documents produced purely through toolbar commands survive one reverse
// conversion: re-formatting the recovered markup yields byte-identical HTML.
func TestRoundTripConvergence(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "Wrapped bold",
			input: "**hello**",
		},
		{
			name:  "Header and paragraph",
			input: "# Title\n\nbody text",
		},
		{
			name:  "Bullet list",
			input: "- one\n- two",
		},
		{
			name:  "Numbered list",
			input: "1. one\n2. two",
		},
		{
			name:  "Everything at once",
			input: "## H\n\n**b** *i* `c` [t](http://x)\n\n- item",
		},
		{
			name:  "Line break inside paragraph",
			input: "first\nsecond",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := EditHTML(tt.input)
			recovered := HTMLToMarkup(first)
			second := EditHTML(recovered)
			if first != second {
				t.Errorf("Round trip diverged:\n first:  %q\n markup: %q\n second: %q", first, recovered, second)
			}
		})
	}
}
