// Package ebiten draws the grid editor in a window with Ebiten.
package ebiten

import (
	"log/slog"
	"sync"
	"sync/atomic"

	engineinput "gridpath/pkg/engine/input"
	"gridpath/pkg/engine/world"
)

// renderSnapshot holds a consistent copy of the editor for drawing.
// Draw runs on Ebiten's goroutine while searches mutate the grid on the driver's,
// so Draw only ever reads this copy.
type renderSnapshot struct {
	valid     bool
	states    [][]world.CellState
	cellSize  int
	status    string
	help      string
	messages  []string
	searching bool
	success   bool
	failed    bool
}

// pointerState tracks a held mouse button so dragging paints each cell once
type pointerState struct {
	code    string
	lastRow int
	lastCol int
}

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	// Window dimensions; the grid occupies the top gridWidth×gridWidth square
	windowWidth  int
	windowHeight int
	gridWidth    int
	rows         int

	logger *slog.Logger

	// Cached render snapshot for consistent drawing
	snapshot      renderSnapshot
	snapshotMutex sync.RWMutex

	// Input channel for communication between Ebiten and the driver loop
	inputChan chan engineinput.Intent

	pointer pointerState

	// Flag to track if we've logged window opening
	windowOpenedLogged bool

	// Set by Close; the next Update ends the Ebiten loop
	closing atomic.Bool
}
