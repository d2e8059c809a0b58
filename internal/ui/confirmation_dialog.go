package ui

import (
	"github.com/gdamore/tcell/v2"
)

// ConfirmationDialog asks a yes/no question, used before discarding
// unsaved changes.
type ConfirmationDialog struct {
	visible bool
	title   string
	message string
	onYes   func()
	onNo    func()
}

func NewConfirmationDialog() *ConfirmationDialog {
	return &ConfirmationDialog{}
}

// Show displays the dialog with the given prompt and callbacks.
func (c *ConfirmationDialog) Show(title, message string, onYes, onNo func()) {
	c.visible = true
	c.title = title
	c.message = message
	c.onYes = onYes
	c.onNo = onNo
}

func (c *ConfirmationDialog) Hide() {
	c.visible = false
}

func (c *ConfirmationDialog) IsVisible() bool {
	return c.visible
}

func (c *ConfirmationDialog) Draw(s tcell.Screen) {
	if !c.visible {
		return
	}

	w, h := s.Size()

	dialogWidth := len(c.message) + 6
	if dialogWidth < 30 {
		dialogWidth = 30
	}
	if dialogWidth > w-4 {
		dialogWidth = w - 4
	}
	dialogHeight := 7

	startX := (w - dialogWidth) / 2
	startY := (h - dialogHeight) / 2
	if startX < 1 {
		startX = 1
	}
	if startY < 1 {
		startY = 1
	}

	bgStyle := tcell.StyleDefault.Background(ColorBgDark).Foreground(ColorFg)
	borderStyle := tcell.StyleDefault.Background(ColorBgDark).Foreground(ColorRed)
	titleStyle := tcell.StyleDefault.Background(ColorBgDark).Foreground(ColorRed).Bold(true)
	buttonStyle := tcell.StyleDefault.Background(ColorBgDark).Foreground(ColorFg).Bold(true)

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

	titleX := startX + (dialogWidth-len(c.title))/2
	if titleX < startX+2 {
		titleX = startX + 2
	}
	drawText(s, titleX, startY+1, titleStyle, c.title)

	messageLines := wrapText(c.message, dialogWidth-4)
	for i, line := range messageLines {
		if i+3 >= dialogHeight-2 {
			break
		}
		drawText(s, startX+2, startY+3+i, bgStyle, line)
	}

	buttonsY := startY + dialogHeight - 2
	drawText(s, startX+dialogWidth/2-6, buttonsY, buttonStyle, "[Y]es")
	drawText(s, startX+dialogWidth/2+2, buttonsY, buttonStyle, "[N]o")
}

func (c *ConfirmationDialog) HandleKey(ev *tcell.EventKey) bool {
	if !c.visible {
		return false
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		if c.onNo != nil {
			c.onNo()
		}
		c.Hide()
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'y', 'Y':
			if c.onYes != nil {
				c.onYes()
			}
			c.Hide()
			return true
		case 'n', 'N':
			if c.onNo != nil {
				c.onNo()
			}
			c.Hide()
			return true
		}
	}

	return true // Consume all other keys when visible
}

// wrapText wraps text to fit within the specified width
func wrapText(text string, width int) []string {
	if len(text) <= width {
		return []string{text}
	}

	var lines []string
	for len(text) > width {
		breakPoint := width
		for i := width - 1; i >= 0; i-- {
			if text[i] == ' ' {
				breakPoint = i
				break
			}
		}

		lines = append(lines, text[:breakPoint])
		text = text[breakPoint:]
		if len(text) > 0 && text[0] == ' ' {
			text = text[1:]
		}
	}

	if len(text) > 0 {
		lines = append(lines, text)
	}

	return lines
}
