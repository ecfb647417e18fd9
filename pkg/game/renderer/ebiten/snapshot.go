package ebiten

import (
	"gridpath/pkg/game/renderer"
	"gridpath/pkg/game/state"
)

// RenderFrame captures a snapshot of the editor for the next Draw call
func (e *EbitenRenderer) RenderFrame(ed *state.Editor) {
	if ed == nil || ed.Grid == nil {
		return
	}

	snap := renderSnapshot{
		valid:     true,
		states:    ed.Grid.States(),
		cellSize:  ed.Grid.CellSize(),
		status:    renderer.StatusLine(ed),
		help:      renderer.HelpLine(),
		messages:  append([]string(nil), ed.Messages...),
		searching: ed.Searching(),
	}
	if ed.Last != nil && !snap.searching {
		snap.success = ed.Last.Success()
		snap.failed = !snap.success
	}
	if len(snap.messages) > statusLines-2 {
		snap.messages = snap.messages[len(snap.messages)-(statusLines-2):]
	}

	e.snapshotMutex.Lock()
	e.snapshot = snap
	e.snapshotMutex.Unlock()
}
