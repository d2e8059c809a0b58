// Package editor holds the canonical markup document and the selection-aware
// insertion commands the toolbar keys are built on. The document text is the
// single source of truth; HTML is always derived from it, never the other
// way around. Every operation returns new values for the caller to adopt.
package editor

// Document is the raw markup text as a sequence of Unicode code points. The
// zero value is an empty document.
type Document struct {
	text []rune
}

// NewDocument creates a document from raw markup text.
func NewDocument(text string) Document {
	return Document{text: []rune(text)}
}

// String returns the document's markup text.
func (d Document) String() string {
	return string(d.text)
}

// Len returns the document length in code points.
func (d Document) Len() int {
	return len(d.text)
}

// Slice returns the text inside the half-open range [start, end), clamped
// to the document bounds.
func (d Document) Slice(start, end int) string {
	sel := Selection{Start: start, End: end}.Clamp(len(d.text))
	return string(d.text[sel.Start:sel.End])
}

// Selection is a half-open [Start, End) code-point range into a document.
// An empty selection is a caret.
type Selection struct {
	Start int
	End   int
}

// Caret returns a collapsed selection at pos.
func Caret(pos int) Selection {
	return Selection{Start: pos, End: pos}
}

// Empty reports whether the selection is a bare caret.
func (s Selection) Empty() bool {
	return s.Start == s.End
}

// Clamp normalizes the selection so that 0 <= Start <= End <= docLen.
func (s Selection) Clamp(docLen int) Selection {
	if s.Start < 0 {
		s.Start = 0
	}
	if s.End < 0 {
		s.End = 0
	}
	if s.Start > docLen {
		s.Start = docLen
	}
	if s.End > docLen {
		s.End = docLen
	}
	if s.Start > s.End {
		s.Start, s.End = s.End, s.Start
	}
	return s
}
