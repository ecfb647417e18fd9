package renderer

import (
	"gridpath/pkg/engine/input"
	"gridpath/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleTitle
	StyleKey
	StyleSubtle
	StyleSuccess
	StyleDenied
)

// Renderer defines the interface for editor front-ends.
// Implementations are the terminal (tui) and the window (ebiten).
type Renderer interface {
	// Init prepares the backend (colours, window) and reports whether it can run here
	Init() error

	// Clear clears the display
	Clear()

	// RenderFrame draws the grid, the status line and the message log.
	// It is called from the driver goroutine, also while a search is running.
	RenderFrame(e *state.Editor)

	// GetInput blocks until the user does something and returns it as an Intent
	GetInput() input.Intent

	// PollInput returns a pending Intent without blocking; ok is false when
	// there is none. Used to pick up Cancel while a search runs.
	PollInput() (intent input.Intent, ok bool)

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// ShowMessage displays a message to the user
	ShowMessage(msg string)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// RenderFrame renders a complete frame with the current renderer
func RenderFrame(e *state.Editor) {
	if Current != nil {
		Current.RenderFrame(e)
	}
}

// ShowMessage shows a message with the current renderer
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}
