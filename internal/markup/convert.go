// Package markup converts a constrained, line-oriented markup dialect
// (bold, italic, code, links, headers, lists, paragraphs) to HTML and a
// recognized HTML subset back to markup. The document text is the single
// source of truth; every conversion is a pure function over it and degrades
// to literal text instead of failing on malformed input.
package markup

// Convert renders markup text as HTML in the given mode. Both modes share
// the same classification; the mode is a rendering-time choice.
func Convert(text string, mode Mode) string {
	if text == "" {
		return ""
	}
	lines := ParseDocument(text)
	if mode == ModePreview {
		return renderPreview(lines)
	}
	return renderEdit(lines)
}

// EditHTML renders the plain semantic HTML used to materialize the stored
// value for editing.
func EditHTML(text string) string {
	return Convert(text, ModeEdit)
}

// PreviewHTML renders the styled, display-oriented HTML. The result must be
// sanitized before it is handed to a display surface.
func PreviewHTML(text string) string {
	return Convert(text, ModePreview)
}
