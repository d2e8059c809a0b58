package ui

import (
	"github.com/gdamore/tcell/v2"
)

type HelpDialog struct {
	visible      bool
	scrollOffset int
}

func NewHelpDialog() *HelpDialog {
	return &HelpDialog{}
}

func (h *HelpDialog) Show() {
	h.visible = true
	h.scrollOffset = 0
}

func (h *HelpDialog) Hide() {
	h.visible = false
}

func (h *HelpDialog) IsVisible() bool {
	return h.visible
}

func (h *HelpDialog) getHelpContent() []string {
	return []string{
		"Formatting",
		"  Alt+B        Bold selection",
		"  Alt+I        Italic selection",
		"  Alt+C        Inline code",
		"  Alt+K        Link (prompts for URL)",
		"  Alt+L        Bullet list line",
		"  Alt+1..3     Heading level 1-3",
		"",
		"Editing",
		"  Ctrl+Space   Set mark (start selection)",
		"  Ctrl+A       Select all",
		"  Esc          Drop selection",
		"  Arrows/Home/End/PgUp/PgDn   Move",
		"",
		"Application",
		"  Ctrl+P       Toggle preview",
		"  Ctrl+F       Find in document",
		"  Ctrl+O       Command line",
		"  Ctrl+S       Save",
		"  Ctrl+Q       Quit",
		"  F1           This help",
		"",
		"Commands (Ctrl+O)",
		"  w [path]        Save, optionally to a new path",
		"  open <path>     Import a markdown or text file",
		"  export <path>   Write sanitized preview HTML",
		"  set maxlength N Cap document length",
		"  q               Quit",
	}
}

func (h *HelpDialog) Draw(s tcell.Screen) {
	if !h.visible {
		return
	}

	w, screenHeight := s.Size()

	helpLines := h.getHelpContent()

	// Calculate required width based on content
	maxLineWidth := 0
	for _, line := range helpLines {
		if len(line) > maxLineWidth {
			maxLineWidth = len(line)
		}
	}

	dialogWidth := maxLineWidth + 4 // 2 for borders, 2 for margins
	if dialogWidth > w-4 {
		dialogWidth = w - 4
	}
	if dialogWidth < 40 {
		dialogWidth = 40
	}

	dialogHeight := len(helpLines) + 4
	if dialogHeight > screenHeight-4 {
		dialogHeight = screenHeight - 4
	}
	if dialogHeight < 10 {
		dialogHeight = 10
	}

	startX := (w - dialogWidth) / 2
	startY := (screenHeight - dialogHeight) / 2
	if startX < 1 {
		startX = 1
	}
	if startY < 1 {
		startY = 1
	}

	bgStyle := tcell.StyleDefault.Background(ColorBgDark).Foreground(ColorFg)
	borderStyle := tcell.StyleDefault.Background(ColorBgDark).Foreground(ColorFgGutter)
	titleStyle := tcell.StyleDefault.Background(ColorBgDark).Foreground(ColorBlue).Bold(true)

	// Clear the dialog area
	for y := startY; y < startY+dialogHeight; y++ {
		for x := startX; x < startX+dialogWidth; x++ {
			s.SetContent(x, y, ' ', nil, bgStyle)
		}
	}

	// Border
	for x := startX; x < startX+dialogWidth; x++ {
		switch x {
		case startX:
			s.SetContent(x, startY, '┌', nil, borderStyle)
			s.SetContent(x, startY+dialogHeight-1, '└', nil, borderStyle)
		case startX + dialogWidth - 1:
			s.SetContent(x, startY, '┐', nil, borderStyle)
			s.SetContent(x, startY+dialogHeight-1, '┘', nil, borderStyle)
		default:
			s.SetContent(x, startY, '─', nil, borderStyle)
			s.SetContent(x, startY+dialogHeight-1, '─', nil, borderStyle)
		}
	}
	for y := startY + 1; y < startY+dialogHeight-1; y++ {
		s.SetContent(startX, y, '│', nil, borderStyle)
		s.SetContent(startX+dialogWidth-1, y, '│', nil, borderStyle)
	}

	title := " Help "
	drawText(s, startX+(dialogWidth-len(title))/2, startY, titleStyle, title)

	// Scrollable content
	contentHeight := dialogHeight - 2
	maxScroll := len(helpLines) - contentHeight
	if maxScroll < 0 {
		maxScroll = 0
	}
	if h.scrollOffset > maxScroll {
		h.scrollOffset = maxScroll
	}

	for i := 0; i < contentHeight; i++ {
		idx := h.scrollOffset + i
		if idx >= len(helpLines) {
			break
		}
		line := helpLines[idx]
		if len(line) > dialogWidth-4 {
			line = line[:dialogWidth-4]
		}
		drawText(s, startX+2, startY+1+i, bgStyle, line)
	}
}

func (h *HelpDialog) HandleKey(ev *tcell.EventKey) bool {
	if !h.visible {
		return false
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyF1:
		h.Hide()
		return true
	case tcell.KeyUp:
		if h.scrollOffset > 0 {
			h.scrollOffset--
		}
		return true
	case tcell.KeyDown:
		h.scrollOffset++
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			h.Hide()
		case 'j':
			h.scrollOffset++
		case 'k':
			if h.scrollOffset > 0 {
				h.scrollOffset--
			}
		}
		return true
	}

	return true // Consume all other keys when visible
}
