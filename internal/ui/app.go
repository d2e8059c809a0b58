package ui

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/kdalton/mdnote-tui/internal/editor"
	"github.com/kdalton/mdnote-tui/internal/importer"
	"github.com/kdalton/mdnote-tui/internal/markup"
	"github.com/kdalton/mdnote-tui/internal/sanitize"
)

type Mode int

const (
	ModeNormal Mode = iota
	ModeCommand
	ModeSearch
)

// App is the terminal host around the editing widget: it routes keys,
// owns the preview toggle, the command line and the search prompt, and
// applies the deferred half of toolbar commands after each paint.
type App struct {
	screen tcell.Screen
	quit   chan struct{}
	mode   Mode

	editor      *EditorView
	preview     *PreviewView
	previewOpen bool

	search   *SearchState
	matches  []LineMatch
	matchIdx int

	helpDialog    *HelpDialog
	confirmDialog *ConfirmationDialog

	settings  *Settings
	configDir string
	sanitizer sanitize.Sanitizer

	commandLine   string
	commandPrompt string
	// pendingLink holds the selection captured when the link-url prompt
	// opened; the wrap is applied against it once the url arrives
	pendingLink *editor.Selection

	statusMessage string
	statusIsError bool

	shutdownOnce sync.Once
}

func NewApp() *App {
	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Printf("Failed to get config directory: %v", err)
		configDir = "."
	}
	configDir = filepath.Join(configDir, "mdnote")

	settings, err := LoadSettings(configDir)
	if err != nil {
		log.Printf("Failed to load settings, using defaults: %v", err)
		settings = DefaultSettings()
	}

	app := &App{
		quit:          make(chan struct{}),
		mode:          ModeNormal,
		settings:      settings,
		configDir:     configDir,
		sanitizer:     sanitize.NewPolicy(),
		helpDialog:    NewHelpDialog(),
		confirmDialog: NewConfirmationDialog(),
		search:        NewSearchState(),
	}
	app.editor = NewEditorView(settings)
	app.preview = NewPreviewView(settings)

	return app
}

// OpenFile imports a file into the editor, replacing the document
// wholesale. On any failure the current document is left untouched.
func (a *App) OpenFile(path string) error {
	text, err := importer.ReadFile(path)
	if err != nil {
		return err
	}

	if a.settings.MaxLength > 0 && len([]rune(text)) > a.settings.MaxLength {
		return fmt.Errorf("file exceeds maximum length of %d characters", a.settings.MaxLength)
	}

	a.editor.SetText(text)
	a.editor.SetPath(path)
	return nil
}

func (a *App) Run() error {
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	a.screen = s

	if err := s.Init(); err != nil {
		return err
	}

	defer func() {
		a.requestQuit()
		s.Fini()
		if r := recover(); r != nil {
			log.Printf("Panic during shutdown: %v", r)
		}
	}()

	s.SetStyle(tcell.StyleDefault.Background(ColorBg).Foreground(ColorFg))
	s.Clear()

	// Graceful shutdown on interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		if a.screen != nil {
			a.screen.PostEvent(tcell.NewEventInterrupt(nil))
		}
		a.requestQuit()
	}()

	a.draw()

	for {
		select {
		case <-a.quit:
			return nil
		default:
		}

		ev := s.PollEvent()
		if ev == nil {
			return nil
		}

		switch ev := ev.(type) {
		case *tcell.EventResize:
			s.Sync()
		case *tcell.EventInterrupt:
			return nil
		case *tcell.EventKey:
			a.handleKey(ev)
		}

		select {
		case <-a.quit:
			return nil
		default:
			a.draw()
		}
	}
}

func (a *App) requestQuit() {
	a.shutdownOnce.Do(func() {
		close(a.quit)
	})
}

func (a *App) handleKey(ev *tcell.EventKey) {
	// Modal dialogs swallow everything while visible
	if a.confirmDialog.HandleKey(ev) {
		return
	}
	if a.helpDialog.HandleKey(ev) {
		return
	}

	switch a.mode {
	case ModeCommand:
		a.handleCommandKey(ev)
	case ModeSearch:
		a.handleSearchKey(ev)
	default:
		a.handleNormalKey(ev)
	}
}

func (a *App) handleNormalKey(ev *tcell.EventKey) {
	// Application chords first
	switch ev.Key() {
	case tcell.KeyF1:
		a.helpDialog.Show()
		return
	case tcell.KeyCtrlQ:
		a.confirmQuit()
		return
	case tcell.KeyCtrlS:
		a.saveDocument("")
		return
	case tcell.KeyCtrlP:
		a.togglePreview()
		return
	case tcell.KeyCtrlF:
		a.enterSearchMode()
		return
	case tcell.KeyCtrlO:
		a.enterCommandMode(":")
		return
	}

	if a.previewOpen {
		a.preview.HandleKey(ev)
		return
	}

	// Toolbar chords mutate through the two-phase edit protocol
	if ev.Key() == tcell.KeyRune && ev.Modifiers()&tcell.ModAlt != 0 {
		if a.handleToolbarKey(ev.Rune()) {
			return
		}
	}

	a.editor.HandleKey(ev)
}

// handleToolbarKey dispatches the formatting commands. Each one computes
// an Edit from the current document and selection, adopts the text now
// and leaves the selection restore for after the next paint.
func (a *App) handleToolbarKey(r rune) bool {
	doc := a.editor.Document()
	sel := a.editor.Selection()

	var edit editor.Edit
	switch r {
	case 'b':
		edit = editor.Bold(doc, sel)
	case 'i':
		edit = editor.Italic(doc, sel)
	case 'c':
		edit = editor.Code(doc, sel)
	case 'l':
		edit = editor.List(doc, sel)
	case '1', '2', '3':
		edit = editor.Header(doc, sel, int(r-'0'))
	case 'k':
		// The url is collected out-of-band via the command line; the
		// selection is captured now so the prompt cannot lose it
		captured := sel
		a.pendingLink = &captured
		a.enterCommandMode("link url: ")
		return true
	default:
		return false
	}

	if !a.editor.ApplyDeferred(edit) {
		a.setStatus(fmt.Sprintf("Document limited to %d characters", a.settings.MaxLength), true)
	}
	return true
}

func (a *App) togglePreview() {
	a.previewOpen = !a.previewOpen
	if a.previewOpen {
		// The input control is gone while the preview is shown; any
		// deferred selection restore must become a no-op
		a.editor.Unmount()
		a.preview.SetText(a.editor.Text())
		a.setStatus("Preview (Ctrl+P to edit)", false)
	} else {
		a.editor.Mount()
		a.setStatus("", false)
	}
}

func (a *App) enterCommandMode(prompt string) {
	a.mode = ModeCommand
	a.commandPrompt = prompt
	a.commandLine = ""
}

func (a *App) handleCommandKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		a.mode = ModeNormal
		a.commandLine = ""
		if a.pendingLink != nil {
			a.pendingLink = nil
			a.setStatus("Link cancelled", false)
		}
	case tcell.KeyEnter:
		line := a.commandLine
		a.mode = ModeNormal
		a.commandLine = ""
		if a.pendingLink != nil {
			a.finishLink(line)
			return
		}
		a.executeCommand(line)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if a.commandLine != "" {
			_, size := utf8.DecodeLastRuneInString(a.commandLine)
			a.commandLine = a.commandLine[:len(a.commandLine)-size]
		}
	case tcell.KeyRune:
		a.commandLine += string(ev.Rune())
	}
}

// finishLink is the second half of the link toolbar command, once the url
// prompt has been answered. An empty url abandons the command with no
// mutation.
func (a *App) finishLink(url string) {
	sel := *a.pendingLink
	a.pendingLink = nil

	edit, ok := editor.Link(a.editor.Document(), sel, strings.TrimSpace(url))
	if !ok {
		a.setStatus("Link cancelled", false)
		return
	}
	if !a.editor.ApplyDeferred(edit) {
		a.setStatus(fmt.Sprintf("Document limited to %d characters", a.settings.MaxLength), true)
	}
}

func (a *App) enterSearchMode() {
	a.mode = ModeSearch
	a.search.Clear()
	a.matches = nil
	a.matchIdx = 0
}

func (a *App) leaveSearchMode() {
	a.mode = ModeNormal
	a.search.Clear()
	a.matches = nil
	a.editor.SetHighlight(nil)
}

func (a *App) handleSearchKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		a.leaveSearchMode()
		return
	case tcell.KeyEnter:
		a.jumpToMatch()
		a.mode = ModeNormal
		return
	case tcell.KeyTab, tcell.KeyDown:
		if len(a.matches) > 0 {
			a.matchIdx = (a.matchIdx + 1) % len(a.matches)
			a.jumpToMatch()
		}
		return
	case tcell.KeyUp:
		if len(a.matches) > 0 {
			a.matchIdx = (a.matchIdx - 1 + len(a.matches)) % len(a.matches)
			a.jumpToMatch()
		}
		return
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		a.search.DeleteChar()
	case tcell.KeyLeft:
		a.search.MoveCursorLeft()
		return
	case tcell.KeyRight:
		a.search.MoveCursorRight()
		return
	case tcell.KeyRune:
		a.search.InsertChar(ev.Rune())
	default:
		return
	}

	matches, highlight := a.search.MatchDocument(a.editor.Text())
	a.matches = matches
	a.editor.SetHighlight(highlight)
	a.matchIdx = 0
}

func (a *App) jumpToMatch() {
	if len(a.matches) == 0 {
		a.setStatus("No matches", false)
		return
	}
	m := a.matches[a.matchIdx]
	a.editor.JumpTo(a.editor.lineStart(m.Line))
	a.setStatus(fmt.Sprintf("Match %d/%d", a.matchIdx+1, len(a.matches)), false)
}

func (a *App) confirmQuit() {
	if !a.editor.Dirty() {
		a.requestQuit()
		return
	}
	a.confirmDialog.Show("Unsaved changes", "Quit without saving?",
		func() { a.requestQuit() },
		nil)
}

func (a *App) executeCommand(line string) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return
	}

	switch parts[0] {
	case "q", "quit":
		a.confirmQuit()
	case "w", "write":
		path := ""
		if len(parts) > 1 {
			path = parts[1]
		}
		a.saveDocument(path)
	case "open":
		if len(parts) < 2 {
			a.setStatus("Usage: open <path>", true)
			return
		}
		a.openDocument(parts[1])
	case "export":
		if len(parts) < 2 {
			a.setStatus("Usage: export <path>", true)
			return
		}
		a.exportHTML(parts[1])
	case "set":
		a.applySetting(parts[1:])
	default:
		a.setStatus(fmt.Sprintf("Unknown command: %s", parts[0]), true)
	}
}

func (a *App) saveDocument(path string) {
	if path == "" {
		path = a.editor.Path()
	}
	if path == "" {
		a.setStatus("No file name (use :w <path>)", true)
		return
	}

	if err := os.WriteFile(path, []byte(a.editor.Text()), 0644); err != nil {
		log.Printf("Failed to save %s: %v", path, err)
		a.setStatus(fmt.Sprintf("Failed to save: %v", err), true)
		return
	}
	a.editor.SetPath(path)
	a.editor.MarkSaved()
	a.setStatus(fmt.Sprintf("Saved %s", path), false)
}

func (a *App) openDocument(path string) {
	if err := a.OpenFile(path); err != nil {
		a.setStatus(err.Error(), true)
		return
	}
	a.setStatus(fmt.Sprintf("Opened %s", path), false)
}

// exportHTML writes the sanitized preview rendering of the document.
func (a *App) exportHTML(path string) {
	html := a.sanitizer.Sanitize(markup.PreviewHTML(a.editor.Text()))
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		log.Printf("Failed to export %s: %v", path, err)
		a.setStatus(fmt.Sprintf("Failed to export: %v", err), true)
		return
	}
	a.setStatus(fmt.Sprintf("Exported %s", path), false)
}

func (a *App) applySetting(args []string) {
	if len(args) < 2 {
		a.setStatus("Usage: set maxlength <n>", true)
		return
	}

	switch args[0] {
	case "maxlength":
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 0 {
			a.setStatus("maxlength must be a non-negative number", true)
			return
		}
		a.settings.MaxLength = n
		if err := SaveSettings(a.configDir, a.settings); err != nil {
			log.Printf("Failed to save settings: %v", err)
		}
		a.setStatus(fmt.Sprintf("maxlength = %d", n), false)
	default:
		a.setStatus(fmt.Sprintf("Unknown setting: %s", args[0]), true)
	}
}

func (a *App) setStatus(msg string, isError bool) {
	a.statusMessage = msg
	a.statusIsError = isError
}

func (a *App) draw() {
	s := a.screen
	s.Clear()
	s.HideCursor()

	w, h := s.Size()
	if h < 2 {
		s.Show()
		return
	}
	contentHeight := h - 1

	if a.previewOpen {
		a.preview.Draw(s, 0, 0, w, contentHeight)
	} else {
		a.editor.Draw(s, 0, 0, w, contentHeight)
	}

	a.drawStatusBar(w, h)
	a.helpDialog.Draw(s)
	a.confirmDialog.Draw(s)

	s.Show()

	// The paint above committed the mutated document; now the deferred
	// selection restore may run. One more paint makes it visible.
	if a.editor.ApplyPendingSelection() {
		a.drawOnce()
	}
}

// drawOnce repaints without re-running the deferred-selection phase.
func (a *App) drawOnce() {
	s := a.screen
	s.Clear()
	s.HideCursor()

	w, h := s.Size()
	if h < 2 {
		s.Show()
		return
	}
	contentHeight := h - 1

	if a.previewOpen {
		a.preview.Draw(s, 0, 0, w, contentHeight)
	} else {
		a.editor.Draw(s, 0, 0, w, contentHeight)
	}
	a.drawStatusBar(w, h)
	a.helpDialog.Draw(s)
	a.confirmDialog.Draw(s)

	s.Show()
}

func (a *App) drawStatusBar(w, h int) {
	s := a.screen
	barStyle := tcell.StyleDefault.Background(ColorBgDark).Foreground(ColorFg)
	y := h - 1

	for x := 0; x < w; x++ {
		s.SetContent(x, y, ' ', nil, barStyle)
	}

	switch a.mode {
	case ModeCommand:
		prompt := a.commandPrompt + a.commandLine
		drawText(s, 0, y, barStyle.Foreground(ColorYellow), prompt)
		s.ShowCursor(len(prompt), y)
		return
	case ModeSearch:
		prompt := "/" + a.search.Query()
		drawText(s, 0, y, barStyle.Foreground(ColorYellow), prompt)
		drawText(s, len(prompt)+2, y, barStyle.Foreground(ColorDimmed),
			fmt.Sprintf("(%d matches, Enter jumps, Esc cancels)", len(a.matches)))
		s.ShowCursor(1+a.search.CursorPos(), y)
		return
	}

	// Left: mode and file
	name := a.editor.Path()
	if name == "" {
		name = "[scratch]"
	}
	if a.editor.Dirty() {
		name += " [+]"
	}
	modeStr := "EDIT"
	if a.previewOpen {
		modeStr = "PREVIEW"
	}
	left := fmt.Sprintf(" %s  %s", modeStr, name)
	drawText(s, 0, y, barStyle.Foreground(ColorBlue).Bold(true), left)

	// Middle: status message
	if a.statusMessage != "" {
		msgStyle := barStyle.Foreground(ColorInfo)
		if a.statusIsError {
			msgStyle = barStyle.Foreground(ColorError)
		}
		drawText(s, len(left)+2, y, msgStyle, a.statusMessage)
	}

	// Right: document length
	length := fmt.Sprintf("%d chars ", a.editor.Document().Len())
	if a.settings.MaxLength > 0 {
		length = fmt.Sprintf("%d/%d chars ", a.editor.Document().Len(), a.settings.MaxLength)
	}
	drawText(s, w-len(length), y, barStyle.Foreground(ColorDimmed), length)
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	pos := 0
	for _, r := range text {
		s.SetContent(x+pos, y, r, nil, style)
		pos++
	}
}
