package markup

import (
	"fmt"
	"regexp"
	"strings"
)

// Line classification patterns, checked in priority order. A line's leading
// syntax alone decides its kind.
var (
	headerPattern   = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	bulletPattern   = regexp.MustCompile(`^[-*]\s+(.+)$`)
	numberedPattern = regexp.MustCompile(`^\d+\.\s+(.+)$`)
)

// maxHeaderLevel caps recognized heading depth. Deeper headings are still
// headings, clamped to this level.
const maxHeaderLevel = 3

// ClassifyLine classifies a single source line and parses its inline
// content. First match wins: header, list item, blank, paragraph.
func ClassifyLine(line string) Line {
	if m := headerPattern.FindStringSubmatch(line); m != nil {
		level := len(m[1])
		if level > maxHeaderLevel {
			level = maxHeaderLevel
		}
		return Line{Kind: LineHeader, Level: level, Spans: ParseSpans(m[2])}
	}
	if m := bulletPattern.FindStringSubmatch(line); m != nil {
		return Line{Kind: LineListItem, List: ListBullet, Spans: ParseSpans(m[1])}
	}
	if m := numberedPattern.FindStringSubmatch(line); m != nil {
		return Line{Kind: LineListItem, List: ListNumbered, Spans: ParseSpans(m[1])}
	}
	if strings.TrimSpace(line) == "" {
		return Line{Kind: LineBlank}
	}
	return Line{Kind: LineParagraph, Spans: ParseSpans(line)}
}

// ParseDocument classifies every line of a document.
func ParseDocument(text string) []Line {
	raw := strings.Split(text, "\n")
	lines := make([]Line, len(raw))
	for i, l := range raw {
		lines[i] = ClassifyLine(l)
	}
	return lines
}

// listTag returns the container element for a run of list items.
func listTag(kind ListKind) string {
	if kind == ListNumbered {
		return "ol"
	}
	return "ul"
}

// renderEdit emits plain semantic HTML: headers, list containers wrapping
// maximal runs of same-kind items, and paragraphs in which a blank line is
// a boundary and a single newline a <br>.
func renderEdit(lines []Line) string {
	var b strings.Builder
	var para []string

	flushPara := func() {
		if len(para) > 0 {
			b.WriteString("<p>" + strings.Join(para, "<br>") + "</p>")
			para = nil
		}
	}

	i := 0
	for i < len(lines) {
		ln := lines[i]
		switch ln.Kind {
		case LineHeader:
			flushPara()
			var inner strings.Builder
			renderSpans(&inner, ln.Spans, ModeEdit)
			fmt.Fprintf(&b, "<h%d>%s</h%d>", ln.Level, inner.String(), ln.Level)
			i++
		case LineListItem:
			flushPara()
			kind := ln.List
			tag := listTag(kind)
			b.WriteString("<" + tag + ">")
			for i < len(lines) && lines[i].Kind == LineListItem && lines[i].List == kind {
				var inner strings.Builder
				renderSpans(&inner, lines[i].Spans, ModeEdit)
				b.WriteString("<li>" + inner.String() + "</li>")
				i++
			}
			b.WriteString("</" + tag + ">")
		case LineBlank:
			flushPara()
			i++
		default:
			var inner strings.Builder
			renderSpans(&inner, ln.Spans, ModeEdit)
			para = append(para, inner.String())
			i++
		}
	}
	flushPara()

	return b.String()
}

// renderPreview emits display HTML: styled headers and list items without a
// paragraph wrapper, a fixed-height spacer for every blank line, and each
// remaining line as its own styled paragraph.
func renderPreview(lines []Line) string {
	var b strings.Builder

	i := 0
	for i < len(lines) {
		ln := lines[i]
		switch ln.Kind {
		case LineHeader:
			var inner strings.Builder
			renderSpans(&inner, ln.Spans, ModePreview)
			fmt.Fprintf(&b, `<h%d class="md-h%d">%s</h%d>`, ln.Level, ln.Level, inner.String(), ln.Level)
			i++
		case LineListItem:
			kind := ln.List
			tag := listTag(kind)
			fmt.Fprintf(&b, `<%s class="md-list">`, tag)
			for i < len(lines) && lines[i].Kind == LineListItem && lines[i].List == kind {
				var inner strings.Builder
				renderSpans(&inner, lines[i].Spans, ModePreview)
				b.WriteString(`<li class="md-li">` + inner.String() + "</li>")
				i++
			}
			b.WriteString("</" + tag + ">")
		case LineBlank:
			b.WriteString(`<div class="md-spacer"></div>`)
			i++
		default:
			var inner strings.Builder
			renderSpans(&inner, ln.Spans, ModePreview)
			b.WriteString(`<p class="md-p">` + inner.String() + "</p>")
			i++
		}
	}

	return b.String()
}
