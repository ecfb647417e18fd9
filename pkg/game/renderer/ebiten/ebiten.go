package ebiten

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	engineinput "gridpath/pkg/engine/input"
	"gridpath/pkg/engine/world"
	"gridpath/pkg/game/i18n"
	"gridpath/pkg/game/renderer"
)

// ErrInvalidLayout is returned by New when the window cannot hold the grid
var ErrInvalidLayout = errors.New("ebiten: window too small for grid")

var _ renderer.Renderer = (*EbitenRenderer)(nil)

// New creates a renderer for a rows×rows grid drawn across width pixels.
// The window is width wide and adds a status panel below the grid.
func New(width, rows int, logger *slog.Logger) (*EbitenRenderer, error) {
	if rows <= 0 || width/rows <= 0 {
		return nil, fmt.Errorf("%w: %d rows in %dpx", ErrInvalidLayout, rows, width)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &EbitenRenderer{
		windowWidth:  width,
		windowHeight: width + statusPanelHeight(),
		gridWidth:    width,
		rows:         rows,
		logger:       logger,
		inputChan:    make(chan engineinput.Intent, inputBuffer),
		pointer:      pointerState{lastRow: -1, lastCol: -1},
	}, nil
}

func statusPanelHeight() int {
	return statusLines*statusLineHeight + 2*statusMargin
}

// Init sets up the window. It must be called before Run.
func (e *EbitenRenderer) Init() error {
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(i18n.Get("WINDOW_TITLE"))
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	return nil
}

// Run starts the Ebiten game loop and blocks until the window closes.
// It must be called from the main goroutine.
func (e *EbitenRenderer) Run() error {
	err := ebiten.RunGame(e)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Close ends the game loop at the next update
func (e *EbitenRenderer) Close() {
	e.closing.Store(true)
}

// Clear drops the last snapshot so the next frame shows an empty window
func (e *EbitenRenderer) Clear() {
	e.snapshotMutex.Lock()
	e.snapshot = renderSnapshot{}
	e.snapshotMutex.Unlock()
}

// GetInput blocks until the window produces an Intent
func (e *EbitenRenderer) GetInput() engineinput.Intent {
	return <-e.inputChan
}

// PollInput returns a pending Intent without blocking
func (e *EbitenRenderer) PollInput() (engineinput.Intent, bool) {
	select {
	case intent := <-e.inputChan:
		return intent, true
	default:
		return engineinput.Intent{}, false
	}
}

// StyleText returns text unchanged; the debug font has a single colour
func (e *EbitenRenderer) StyleText(text string, _ renderer.TextStyle) string {
	return text
}

// ShowMessage logs msg; on-screen messages come from the editor's log
func (e *EbitenRenderer) ShowMessage(msg string) {
	e.logger.Info(msg)
}

// cellAt maps a window pixel to a grid cell, ok is false outside the grid
func (e *EbitenRenderer) cellAt(x, y int) (row, col int, ok bool) {
	if x < 0 || y < 0 || x >= e.gridWidth || y >= e.gridWidth {
		return -1, -1, false
	}
	row, col = world.CellAt(x, y, e.gridWidth, e.rows)
	return row, col, row >= 0 && row < e.rows && col >= 0 && col < e.rows
}
