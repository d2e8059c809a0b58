package editor

import "strings"

// Edit is the two-phase result of an insertion command. Phase one: the host
// adopts Doc as the new document and re-renders. Phase two, strictly after
// the re-render has committed: the host restores Restore as the selection.
// If the input control is gone by then, restoring is a no-op for the host.
type Edit struct {
	Doc     Document
	Restore Selection
}

// Insert splices before + selected text + after into the document at the
// selection bounds. The selected text is preserved between the wrappers,
// and the restored selection is the original one shifted by len(before),
// so a wrapping command keeps the user's selection on the same text. With
// a bare caret both wrappers are inserted adjacent to it and the caret
// lands between them. Out-of-range selections are clamped.
func Insert(doc Document, sel Selection, before, after string) Edit {
	sel = sel.Clamp(doc.Len())
	b := []rune(before)
	a := []rune(after)

	text := make([]rune, 0, doc.Len()+len(b)+len(a))
	text = append(text, doc.text[:sel.Start]...)
	text = append(text, b...)
	text = append(text, doc.text[sel.Start:sel.End]...)
	text = append(text, a...)
	text = append(text, doc.text[sel.End:]...)

	return Edit{
		Doc:     Document{text: text},
		Restore: Selection{Start: sel.Start + len(b), End: sel.End + len(b)},
	}
}

// Replace substitutes the selected text with the given text, leaving the
// caret after it. This is the primitive behind typing and deletion.
func Replace(doc Document, sel Selection, text string) Edit {
	sel = sel.Clamp(doc.Len())
	r := []rune(text)

	out := make([]rune, 0, doc.Len()-(sel.End-sel.Start)+len(r))
	out = append(out, doc.text[:sel.Start]...)
	out = append(out, r...)
	out = append(out, doc.text[sel.End:]...)

	return Edit{
		Doc:     Document{text: out},
		Restore: Caret(sel.Start + len(r)),
	}
}

// Toolbar wrappers. Each one is a pure function from the current document
// and selection to an Edit the host applies in two phases.

// Bold wraps the selection in a bold marker pair.
func Bold(doc Document, sel Selection) Edit {
	return Insert(doc, sel, "**", "**")
}

// Italic wraps the selection in an italic marker pair.
func Italic(doc Document, sel Selection) Edit {
	return Insert(doc, sel, "*", "*")
}

// Code wraps the selection in inline-code backticks.
func Code(doc Document, sel Selection) Edit {
	return Insert(doc, sel, "`", "`")
}

// Header prefixes the selection with a heading marker of the given level,
// clamped to 1 through 3.
func Header(doc Document, sel Selection, level int) Edit {
	if level < 1 {
		level = 1
	}
	if level > 3 {
		level = 3
	}
	return Insert(doc, sel, strings.Repeat("#", level)+" ", "")
}

// List prefixes the selection with a bullet list marker.
func List(doc Document, sel Selection) Edit {
	return Insert(doc, sel, "- ", "")
}

// Link wraps the selection as a markup link to url. The url is collected
// out-of-band; an empty url means the command is abandoned and no mutation
// happens, which the second return value reports.
func Link(doc Document, sel Selection, url string) (Edit, bool) {
	if url == "" {
		return Edit{Doc: doc, Restore: sel.Clamp(doc.Len())}, false
	}
	return Insert(doc, sel, "[", "]("+url+")"), true
}
