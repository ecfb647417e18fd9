// Package renderer defines the front-end interface and the presentation shared
// by all backends: cell colours, icons, status and help text.
package renderer

import (
	"image/color"
	"strings"

	"gridpath/pkg/engine/input"
	"gridpath/pkg/engine/search"
	"gridpath/pkg/engine/world"
	"gridpath/pkg/game/i18n"
	"gridpath/pkg/game/state"
)

// Cell colours, one per state
var (
	ColorEmpty    = color.RGBA{255, 255, 255, 255} // White
	ColorStart    = color.RGBA{0, 0, 255, 255}     // Blue
	ColorEnd      = color.RGBA{255, 0, 255, 255}   // Pink
	ColorBarrier  = color.RGBA{0, 0, 0, 255}       // Black
	ColorOpen     = color.RGBA{0, 255, 0, 255}     // Green
	ColorClosed   = color.RGBA{255, 0, 0, 255}     // Red
	ColorPath     = color.RGBA{0, 255, 255, 255}   // Cyan
	ColorGridLine = color.RGBA{104, 120, 143, 255} // Grey
)

// Icons for text front-ends
const (
	IconEmpty   = "·"
	IconStart   = "S"
	IconEnd     = "E"
	IconBarrier = "█"
	IconOpen    = "○"
	IconClosed  = "●"
	IconPath    = "◆"
)

// StateColor returns the fill colour of a cell state
func StateColor(s world.CellState) color.RGBA {
	switch s {
	case world.Start:
		return ColorStart
	case world.End:
		return ColorEnd
	case world.Barrier:
		return ColorBarrier
	case world.Open:
		return ColorOpen
	case world.Closed:
		return ColorClosed
	case world.Path:
		return ColorPath
	default:
		return ColorEmpty
	}
}

// StateIcon returns the glyph a text front-end draws for a cell state
func StateIcon(s world.CellState) string {
	switch s {
	case world.Start:
		return IconStart
	case world.End:
		return IconEnd
	case world.Barrier:
		return IconBarrier
	case world.Open:
		return IconOpen
	case world.Closed:
		return IconClosed
	case world.Path:
		return IconPath
	default:
		return IconEmpty
	}
}

// StatusLine summarises the editor: a running search, the last result, or
// what is still missing before a search can start.
func StatusLine(e *state.Editor) string {
	if e.Searching() {
		return i18n.Get("SEARCHING")
	}
	if e.Last != nil {
		return ResultText(*e.Last)
	}
	switch e.Ready() {
	case state.ErrNoStart:
		return i18n.Get("NEED_START")
	case state.ErrNoEnd:
		return i18n.Get("NEED_END")
	}
	return i18n.Get("WELCOME")
}

// ResultText describes the outcome of a search
func ResultText(res search.Result) string {
	switch res.Outcome {
	case search.Found:
		return i18n.Get("SEARCH_FOUND", res.Cost, res.Expanded)
	case search.Aborted:
		return i18n.Get("SEARCH_ABORTED")
	default:
		return i18n.Get("SEARCH_NO_PATH", res.Expanded)
	}
}

// HelpLine lists the main actions with their key bindings, e.g. "Run: r/space"
func HelpLine() string {
	byAction := input.GetBindingsByAction()
	parts := make([]string, 0, len(input.HelpActions()))
	for _, a := range input.HelpActions() {
		parts = append(parts, i18n.Get(input.ActionName(a))+": "+strings.Join(byAction[a], "/"))
	}
	return strings.Join(parts, "  ")
}
