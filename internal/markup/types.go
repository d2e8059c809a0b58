package markup

// SpanKind classifies an inline run within a single line
type SpanKind int

const (
	SpanPlain SpanKind = iota
	SpanBold
	SpanItalic
	SpanCode
	SpanLink
)

// Span represents one classified inline run. Bold, italic and link spans
// carry child spans (a link label keeps its formatting); code and plain
// spans carry literal text.
type Span struct {
	Kind     SpanKind
	Text     string // literal content for SpanPlain and SpanCode
	Href     string // link target for SpanLink
	Children []Span // nested spans for SpanBold, SpanItalic and SpanLink
}

// LineKind classifies a whole line by its leading syntax
type LineKind int

const (
	LineParagraph LineKind = iota
	LineHeader
	LineListItem
	LineBlank
)

// ListKind distinguishes bulleted from numbered list items
type ListKind int

const (
	ListBullet ListKind = iota
	ListNumbered
)

// Line is a single classified source line with its parsed inline content
type Line struct {
	Kind  LineKind
	Level int      // header level 1-3, clamped
	List  ListKind // set when Kind is LineListItem
	Spans []Span   // inline content; empty for blank lines
}

// Mode selects which HTML the renderers emit for the same document:
// plain semantic tags for editing, or styled tags for preview display
type Mode int

const (
	ModeEdit Mode = iota
	ModePreview
)
