// Package tui draws the grid editor in a terminal.
package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"

	"gridpath/pkg/engine/input"
	"gridpath/pkg/engine/terminal"
	"gridpath/pkg/engine/world"
	"gridpath/pkg/game/i18n"
	"gridpath/pkg/game/renderer"
	"gridpath/pkg/game/state"
)

// ErrNoTerminal is returned by Init when stdin or stdout is not a terminal
var ErrNoTerminal = errors.New("tui: not running in a terminal")

// clearScreen moves the cursor home and clears the screen
const clearScreen = "\033[H\033[2J"

// keyReader is the subset of input.KeyReader the renderer needs
type keyReader interface {
	ReadIntent() (input.Intent, error)
}

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out  io.Writer
	keys keyReader

	colorTitle   color.Style
	colorKey     color.Style
	colorSubtle  color.Style
	colorSuccess color.Style
	colorDenied  color.Style
	colorCursor  color.Style

	cellStyles map[world.CellState]color.Style

	interactive bool
}

var _ renderer.Renderer = (*TUIRenderer)(nil)

// New creates a new TUI renderer writing to stdout
func New() *TUIRenderer {
	return &TUIRenderer{
		out:         os.Stdout,
		keys:        input.NewKeyReader(),
		interactive: terminal.IsInteractive(),
	}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() error {
	t.colorTitle = color.Style{color.FgMagenta, color.OpBold}
	t.colorKey = color.Style{color.FgMagenta}
	t.colorSubtle = color.Style{color.FgGray}
	t.colorSuccess = color.Style{color.FgGreen, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorCursor = color.Style{color.OpReverse}

	t.cellStyles = map[world.CellState]color.Style{
		world.Empty:   {color.FgGray},
		world.Start:   {color.FgBlue, color.OpBold},
		world.End:     {color.FgMagenta, color.OpBold},
		world.Barrier: {color.FgWhite},
		world.Open:    {color.FgGreen},
		world.Closed:  {color.FgRed},
		world.Path:    {color.FgCyan, color.OpBold},
	}

	if !t.interactive {
		return ErrNoTerminal
	}
	return nil
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	fmt.Fprint(t.out, clearScreen)
}

// GetInput blocks for one key press and returns it as an Intent.
// A closed or non-terminal stdin ends the session.
func (t *TUIRenderer) GetInput() input.Intent {
	intent, err := t.keys.ReadIntent()
	if err != nil {
		return input.Intent{Action: input.ActionQuit}
	}
	return intent
}

// PollInput never has anything pending: the terminal is not in raw mode while a
// search runs, so Ctrl-C arrives as an interrupt signal instead.
func (t *TUIRenderer) PollInput() (input.Intent, bool) {
	return input.Intent{}, false
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleTitle:
		return t.colorTitle.Sprint(text)
	case renderer.StyleKey:
		return t.colorKey.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleSuccess:
		return t.colorSuccess.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	default:
		return text
	}
}

// ShowMessage prints a message below the frame
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, msg)
}

// RenderFrame redraws the whole screen: title, grid with cursor, status and messages
func (t *TUIRenderer) RenderFrame(e *state.Editor) {
	var b strings.Builder

	b.WriteString(clearScreen)
	b.WriteString(t.StyleText(i18n.Get("WINDOW_TITLE"), renderer.StyleTitle))
	b.WriteString("\r\n\r\n")

	t.writeGrid(&b, e)

	b.WriteString("\r\n")
	b.WriteString(t.statusText(e))
	b.WriteString("\r\n")
	for _, msg := range e.Messages {
		b.WriteString(t.StyleText(msg, renderer.StyleSubtle))
		b.WriteString("\r\n")
	}
	if rows := e.Grid.Rows(); !terminal.FitsGrid(rows) {
		w, h := terminal.GetSize()
		b.WriteString(t.StyleText(i18n.Get("TERMINAL_TOO_SMALL", terminal.MaxGridRows(w, h), rows), renderer.StyleDenied))
		b.WriteString("\r\n")
	}
	b.WriteString(t.StyleText(renderer.HelpLine(), renderer.StyleKey))
	b.WriteString("\r\n")

	fmt.Fprint(t.out, b.String())
}

func (t *TUIRenderer) writeGrid(b *strings.Builder, e *state.Editor) {
	states := e.Grid.States()
	for row, line := range states {
		for col, s := range line {
			cell := t.cellStyles[s].Sprint(renderer.StateIcon(s))
			if !e.Searching() && e.Cursor == (world.Pos{Row: row, Col: col}) {
				cell = t.colorCursor.Sprint(renderer.StateIcon(s))
			}
			b.WriteString(cell)
			b.WriteByte(' ')
		}
		b.WriteString("\r\n")
	}
}

func (t *TUIRenderer) statusText(e *state.Editor) string {
	status := renderer.StatusLine(e)
	if e.Searching() || e.Last == nil {
		return status
	}
	if e.Last.Success() {
		return t.StyleText(status, renderer.StyleSuccess)
	}
	return t.StyleText(status, renderer.StyleDenied)
}
