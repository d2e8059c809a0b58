package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/kdalton/mdnote-tui/internal/markup"
)

// PreviewView renders the document the way a reader would see it: the
// markup AST is drawn with terminal styles that mirror the styled preview
// HTML. The pane is read-only; it never touches the document.
type PreviewView struct {
	text     string
	scroll   int
	settings *Settings

	lastRows int // total wrapped rows from the previous draw
	lastH    int
}

// NewPreviewView creates an empty preview pane.
func NewPreviewView(settings *Settings) *PreviewView {
	return &PreviewView{settings: settings}
}

// SetText updates the markup source shown by the pane.
func (p *PreviewView) SetText(text string) {
	p.text = text
	p.scroll = 0
}

// styledCell is one terminal cell of rendered preview output.
type styledCell struct {
	r     rune
	style tcell.Style
}

// segment is a styled run produced from the markup AST.
type segment struct {
	text  string
	style tcell.Style
}

// flattenSpans converts an inline span tree to styled segments, combining
// styles along the nesting path.
func flattenSpans(spans []markup.Span, base tcell.Style, out []segment) []segment {
	for _, s := range spans {
		style := spanStyle(s.Kind, base)
		switch s.Kind {
		case markup.SpanPlain, markup.SpanCode:
			out = append(out, segment{text: s.Text, style: style})
		case markup.SpanLink:
			out = flattenSpans(s.Children, style, out)
			// Show the target next to the label, the terminal cannot
			// open it
			out = append(out, segment{text: " (" + s.Href + ")", style: base.Foreground(ColorDimmed)})
		default:
			out = flattenSpans(s.Children, style, out)
		}
	}
	return out
}

// lineSegments renders one classified line to styled segments.
func lineSegments(ln markup.Line, ordinal int) []segment {
	base := tcell.StyleDefault.Background(ColorBg).Foreground(ColorFg)

	switch ln.Kind {
	case markup.LineHeader:
		return flattenSpans(ln.Spans, headingStyle(ln.Level), nil)
	case markup.LineListItem:
		marker := "• "
		if ln.List == markup.ListNumbered {
			marker = fmt.Sprintf("%d. ", ordinal)
		}
		out := []segment{{text: marker, style: base.Foreground(ColorBullet)}}
		return flattenSpans(ln.Spans, base, out)
	case markup.LineBlank:
		return nil
	default:
		return flattenSpans(ln.Spans, base, nil)
	}
}

// wrapSegments lays styled segments out into rows of at most width cells.
func wrapSegments(segs []segment, width int) [][]styledCell {
	if width <= 0 {
		return nil
	}
	rows := [][]styledCell{}
	row := []styledCell{}
	used := 0

	for _, seg := range segs {
		for _, r := range seg.text {
			cw := runewidth.RuneWidth(r)
			if used+cw > width {
				rows = append(rows, row)
				row = []styledCell{}
				used = 0
			}
			row = append(row, styledCell{r: r, style: seg.style})
			used += cw
		}
	}
	rows = append(rows, row)
	return rows
}

// render produces every wrapped row for the current document.
func (p *PreviewView) render(width int) [][]styledCell {
	if p.settings != nil && p.settings.WrapWidth > 0 && p.settings.WrapWidth < width {
		width = p.settings.WrapWidth
	}

	var rows [][]styledCell
	ordinal := 0
	for _, ln := range markup.ParseDocument(p.text) {
		if ln.Kind == markup.LineListItem && ln.List == markup.ListNumbered {
			ordinal++
		} else {
			ordinal = 0
		}
		if ln.Kind == markup.LineBlank {
			rows = append(rows, nil)
			continue
		}
		rows = append(rows, wrapSegments(lineSegments(ln, ordinal), width)...)
	}
	return rows
}

// HandleKey scrolls the preview.
func (p *PreviewView) HandleKey(ev *tcell.EventKey) bool {
	page := p.lastH
	if page < 1 {
		page = 10
	}

	switch ev.Key() {
	case tcell.KeyUp:
		p.scroll--
	case tcell.KeyDown:
		p.scroll++
	case tcell.KeyPgUp:
		p.scroll -= page
	case tcell.KeyPgDn:
		p.scroll += page
	case tcell.KeyHome:
		p.scroll = 0
	case tcell.KeyEnd:
		p.scroll = p.lastRows - page
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'j':
			p.scroll++
		case 'k':
			p.scroll--
		case 'g':
			p.scroll = 0
		case 'G':
			p.scroll = p.lastRows - page
		default:
			return false
		}
	default:
		return false
	}

	maxScroll := p.lastRows - page
	if maxScroll < 0 {
		maxScroll = 0
	}
	p.scroll = clamp(p.scroll, 0, maxScroll)
	return true
}

// Draw renders the preview into the given region.
func (p *PreviewView) Draw(s tcell.Screen, x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}

	rows := p.render(w)
	p.lastRows = len(rows)
	p.lastH = h
	p.scroll = clamp(p.scroll, 0, maxInt(0, len(rows)-h))

	for screenRow := 0; screenRow < h; screenRow++ {
		idx := p.scroll + screenRow
		if idx >= len(rows) {
			break
		}
		col := 0
		for _, cell := range rows[idx] {
			s.SetContent(x+col, y+screenRow, cell.r, nil, cell.style)
			col += runewidth.RuneWidth(cell.r)
		}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
