package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/kdalton/mdnote-tui/internal/markup"
)

// spanStyle converts a markup span kind to a tcell style for the preview
// pane. The terminal preview mirrors what the styled PreviewHTML would
// show in a browser.
func spanStyle(kind markup.SpanKind, base tcell.Style) tcell.Style {
	switch kind {
	case markup.SpanBold:
		return base.Bold(true)
	case markup.SpanItalic:
		return base.Italic(true)
	case markup.SpanCode:
		return base.Foreground(ColorCode)
	case markup.SpanLink:
		return base.Foreground(ColorLink).Underline(true)
	default:
		return base
	}
}

// headingStyle returns the style for a preview heading of the given level.
func headingStyle(level int) tcell.Style {
	style := tcell.StyleDefault.Background(ColorBg).Foreground(ColorHeading).Bold(true)
	if level > 1 {
		style = style.Foreground(ColorCyan)
	}
	if level > 2 {
		style = style.Foreground(ColorTeal)
	}
	return style
}
