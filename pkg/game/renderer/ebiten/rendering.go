package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"gridpath/pkg/engine/world"
	"gridpath/pkg/game/renderer"
)

// Draw renders the grid and the status panel (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(renderer.ColorEmpty)

	// Get snapshot for consistent rendering
	e.snapshotMutex.RLock()
	snap := e.snapshot
	e.snapshotMutex.RUnlock()

	if !snap.valid {
		return
	}

	e.drawCells(screen, &snap)
	e.drawGridLines(screen, &snap)
	e.drawStatusPanel(screen, &snap)
}

// drawCells fills every non-empty cell with its state colour
func (e *EbitenRenderer) drawCells(screen *ebiten.Image, snap *renderSnapshot) {
	size := float32(snap.cellSize)
	for row, line := range snap.states {
		for col, s := range line {
			if s == world.Empty {
				continue
			}
			vector.DrawFilledRect(screen, float32(col)*size, float32(row)*size, size, size,
				renderer.StateColor(s), false)
		}
	}
}

// drawGridLines draws the horizontal and vertical separators between cells
func (e *EbitenRenderer) drawGridLines(screen *ebiten.Image, snap *renderSnapshot) {
	rows := len(snap.states)
	extent := float32(rows * snap.cellSize)
	for i := 0; i <= rows; i++ {
		p := float32(i * snap.cellSize)
		vector.StrokeLine(screen, 0, p, extent, p, gridLineWidth, renderer.ColorGridLine, false)
		vector.StrokeLine(screen, p, 0, p, extent, gridLineWidth, renderer.ColorGridLine, false)
	}
}

// drawStatusPanel draws the status, recent messages and key help below the grid
func (e *EbitenRenderer) drawStatusPanel(screen *ebiten.Image, snap *renderSnapshot) {
	top := e.gridWidth
	vector.DrawFilledRect(screen, 0, float32(top), float32(e.windowWidth), float32(e.windowHeight-top),
		panelColor(snap), false)

	y := top + statusMargin
	ebitenutil.DebugPrintAt(screen, snap.status, statusMargin, y)
	for _, msg := range snap.messages {
		y += statusLineHeight
		ebitenutil.DebugPrintAt(screen, msg, statusMargin, y)
	}
	ebitenutil.DebugPrintAt(screen, snap.help, statusMargin, top+statusMargin+(statusLines-1)*statusLineHeight)
}

func panelColor(snap *renderSnapshot) color.Color {
	switch {
	case snap.searching:
		return colorPanelSearching
	case snap.success:
		return colorPanelSuccess
	case snap.failed:
		return colorPanelFailure
	default:
		return colorPanelBackground
	}
}
