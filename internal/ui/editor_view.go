package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/kdalton/mdnote-tui/internal/editor"
)

// EditorView is the editing widget: it owns the markup document, the caret
// and the mark-based selection. Toolbar commands go through the two-phase
// editor.Edit protocol: the document mutation is adopted immediately, the
// selection restore runs only after the next draw has committed the new
// text to the screen.
type EditorView struct {
	doc    editor.Document
	cursor int // caret position in code points
	anchor int // selection anchor, -1 when no mark is set

	scrollRow int // first visible document line
	scrollCol int // first visible column

	path  string
	dirty bool

	settings *Settings

	// pending is the deferred phase of the last toolbar command. It is
	// applied by ApplyPendingSelection after a draw, and dropped silently
	// if the view has been unmounted in between.
	pending *editor.Selection
	mounted bool

	// highlight marks search match positions, keyed by document line,
	// valid while search mode is active
	highlight map[int][]int

	lastWidth  int
	lastHeight int
}

// NewEditorView creates an empty editor widget.
func NewEditorView(settings *Settings) *EditorView {
	return &EditorView{
		anchor:   -1,
		settings: settings,
		mounted:  true,
	}
}

// Mount marks the underlying input control as present.
func (v *EditorView) Mount() {
	v.mounted = true
}

// Unmount marks the input control as gone; a pending selection restore
// becomes a no-op.
func (v *EditorView) Unmount() {
	v.mounted = false
}

// Text returns the raw markup document.
func (v *EditorView) Text() string {
	return v.doc.String()
}

// SetText replaces the document wholesale, as file import does, and resets
// the caret.
func (v *EditorView) SetText(text string) {
	v.doc = editor.NewDocument(text)
	v.cursor = 0
	v.anchor = -1
	v.scrollRow = 0
	v.scrollCol = 0
	v.pending = nil
	v.dirty = false
}

// Path returns the backing file path, empty for a scratch document.
func (v *EditorView) Path() string {
	return v.path
}

// SetPath records the backing file path.
func (v *EditorView) SetPath(path string) {
	v.path = path
}

// Dirty reports unsaved changes.
func (v *EditorView) Dirty() bool {
	return v.dirty
}

// MarkSaved clears the dirty flag after a successful write.
func (v *EditorView) MarkSaved() {
	v.dirty = false
}

// Document returns the current document value.
func (v *EditorView) Document() editor.Document {
	return v.doc
}

// Selection returns the current selection; a bare caret when no mark is
// set.
func (v *EditorView) Selection() editor.Selection {
	if v.anchor < 0 {
		return editor.Caret(v.cursor)
	}
	return editor.Selection{Start: v.anchor, End: v.cursor}.Clamp(v.doc.Len())
}

// SetHighlight installs search match positions per document line.
func (v *EditorView) SetHighlight(h map[int][]int) {
	v.highlight = h
}

// JumpTo moves the caret to a document offset and drops the mark.
func (v *EditorView) JumpTo(pos int) {
	v.cursor = clamp(pos, 0, v.doc.Len())
	v.anchor = -1
}

// Apply adopts an edit and places the caret immediately. Used for typing
// and deletion, where the caret must track the keystroke. Returns false
// when the edit would exceed the configured maximum length.
func (v *EditorView) Apply(e editor.Edit) bool {
	if !v.accept(e) {
		return false
	}
	v.adopt(e)
	v.restore(e.Restore)
	return true
}

// ApplyDeferred adopts an edit now but defers the selection restore until
// after the next draw, per the toolbar command protocol.
func (v *EditorView) ApplyDeferred(e editor.Edit) bool {
	if !v.accept(e) {
		return false
	}
	v.adopt(e)
	sel := e.Restore
	v.pending = &sel
	return true
}

// ApplyPendingSelection is phase two of a toolbar command. It must be
// called after the screen has shown the mutated document. If the view was
// unmounted or nothing is pending, it is a no-op. Reports whether a
// selection was restored so the caller can repaint.
func (v *EditorView) ApplyPendingSelection() bool {
	if v.pending == nil {
		return false
	}
	sel := *v.pending
	v.pending = nil
	if !v.mounted {
		return false
	}
	v.restore(sel)
	return true
}

func (v *EditorView) accept(e editor.Edit) bool {
	max := 0
	if v.settings != nil {
		max = v.settings.MaxLength
	}
	return max <= 0 || e.Doc.Len() <= max
}

func (v *EditorView) adopt(e editor.Edit) {
	v.doc = e.Doc
	v.dirty = true
}

func (v *EditorView) restore(sel editor.Selection) {
	sel = sel.Clamp(v.doc.Len())
	if sel.Empty() {
		v.anchor = -1
		v.cursor = sel.Start
	} else {
		v.anchor = sel.Start
		v.cursor = sel.End
	}
}

// HandleKey processes editing keys. Toolbar and application chords are
// handled by the App before the event reaches the widget.
func (v *EditorView) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModAlt != 0 {
			return false
		}
		return v.typeText(string(ev.Rune()))
	case tcell.KeyEnter:
		return v.typeText("\n")
	case tcell.KeyTab:
		return v.typeText("  ")
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		v.deleteBackward()
		return true
	case tcell.KeyDelete:
		v.deleteForward()
		return true
	case tcell.KeyLeft:
		v.moveCursor(v.cursor - 1)
		return true
	case tcell.KeyRight:
		v.moveCursor(v.cursor + 1)
		return true
	case tcell.KeyUp:
		v.moveVertical(-1)
		return true
	case tcell.KeyDown:
		v.moveVertical(1)
		return true
	case tcell.KeyPgUp:
		v.moveVertical(-v.pageSize())
		return true
	case tcell.KeyPgDn:
		v.moveVertical(v.pageSize())
		return true
	case tcell.KeyHome:
		row, _ := v.cursorRowCol()
		v.moveCursor(v.lineStart(row))
		return true
	case tcell.KeyEnd:
		row, _ := v.cursorRowCol()
		v.moveCursor(v.lineEnd(row))
		return true
	case tcell.KeyCtrlSpace:
		// Set the mark; movement now extends the selection
		v.anchor = v.cursor
		return true
	case tcell.KeyCtrlA:
		v.anchor = 0
		v.cursor = v.doc.Len()
		return true
	case tcell.KeyEscape:
		if v.anchor >= 0 {
			v.anchor = -1
			return true
		}
		return false
	}
	return false
}

func (v *EditorView) typeText(text string) bool {
	return v.Apply(editor.Replace(v.doc, v.Selection(), text))
}

func (v *EditorView) deleteBackward() {
	sel := v.Selection()
	if sel.Empty() {
		if v.cursor == 0 {
			return
		}
		sel = editor.Selection{Start: v.cursor - 1, End: v.cursor}
	}
	v.Apply(editor.Replace(v.doc, sel, ""))
}

func (v *EditorView) deleteForward() {
	sel := v.Selection()
	if sel.Empty() {
		if v.cursor >= v.doc.Len() {
			return
		}
		sel = editor.Selection{Start: v.cursor, End: v.cursor + 1}
	}
	v.Apply(editor.Replace(v.doc, sel, ""))
}

// moveCursor places the caret, keeping the selection when a mark is set.
func (v *EditorView) moveCursor(pos int) {
	v.cursor = clamp(pos, 0, v.doc.Len())
}

func (v *EditorView) moveVertical(delta int) {
	row, col := v.cursorRowCol()
	row = clamp(row+delta, 0, v.lineCount()-1)
	start, end := v.lineStart(row), v.lineEnd(row)
	v.cursor = start + min(col, end-start)
}

func (v *EditorView) pageSize() int {
	if v.lastHeight > 1 {
		return v.lastHeight - 1
	}
	return 10
}

// Line geometry over the document text.

func (v *EditorView) lines() []string {
	return strings.Split(v.doc.String(), "\n")
}

func (v *EditorView) lineCount() int {
	return len(v.lines())
}

// lineStart returns the document offset of the first rune of a line.
func (v *EditorView) lineStart(row int) int {
	offset := 0
	for i, line := range v.lines() {
		if i == row {
			return offset
		}
		offset += len([]rune(line)) + 1
	}
	return v.doc.Len()
}

func (v *EditorView) lineEnd(row int) int {
	lines := v.lines()
	if row >= len(lines) {
		return v.doc.Len()
	}
	return v.lineStart(row) + len([]rune(lines[row]))
}

// cursorRowCol converts the caret offset to line/column coordinates.
func (v *EditorView) cursorRowCol() (int, int) {
	offset := 0
	for i, line := range v.lines() {
		n := len([]rune(line))
		if v.cursor <= offset+n {
			return i, v.cursor - offset
		}
		offset += n + 1
	}
	return v.lineCount() - 1, 0
}

// Draw renders the edit pane into the given region and shows the hardware
// cursor at the caret.
func (v *EditorView) Draw(s tcell.Screen, x, y, w, h int) {
	if v.settings != nil && v.settings.Rows > 0 && v.settings.Rows < h {
		h = v.settings.Rows
	}
	v.lastWidth, v.lastHeight = w, h
	if w <= 0 || h <= 0 {
		return
	}

	baseStyle := tcell.StyleDefault.Background(ColorBg).Foreground(ColorFg)
	selStyle := baseStyle.Background(ColorSelection)
	hlStyle := baseStyle.Foreground(ColorHighlight).Bold(true)

	lines := v.lines()
	row, col := v.cursorRowCol()
	v.scrollToCursor(row, col, w, h)

	sel := v.Selection()

	lineOffset := v.lineStart(v.scrollRow)
	for screenRow := 0; screenRow < h; screenRow++ {
		docRow := v.scrollRow + screenRow
		if docRow >= len(lines) {
			break
		}
		runes := []rune(lines[docRow])
		hl := v.highlight[docRow]

		for screenCol := 0; screenCol < w; screenCol++ {
			docCol := v.scrollCol + screenCol
			if docCol >= len(runes) {
				break
			}
			style := baseStyle
			pos := lineOffset + docCol
			if !sel.Empty() && pos >= sel.Start && pos < sel.End {
				style = selStyle
			}
			if containsInt(hl, docCol) {
				style = hlStyle
			}
			s.SetContent(x+screenCol, y+screenRow, runes[docCol], nil, style)
		}
		lineOffset += len(runes) + 1
	}

	if v.doc.Len() == 0 && v.settings != nil && v.settings.Placeholder != "" {
		drawText(s, x, y, baseStyle.Foreground(ColorDimmed).Italic(true), v.settings.Placeholder)
	}

	s.ShowCursor(x+col-v.scrollCol, y+row-v.scrollRow)
}

// scrollToCursor keeps the caret inside the visible region.
func (v *EditorView) scrollToCursor(row, col, w, h int) {
	if row < v.scrollRow {
		v.scrollRow = row
	}
	if row >= v.scrollRow+h {
		v.scrollRow = row - h + 1
	}
	if col < v.scrollCol {
		v.scrollCol = col
	}
	if col >= v.scrollCol+w {
		v.scrollCol = col - w + 1
	}
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func containsInt(xs []int, n int) bool {
	for _, x := range xs {
		if x == n {
			return true
		}
	}
	return false
}
