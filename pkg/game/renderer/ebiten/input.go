package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "gridpath/pkg/engine/input"
)

// keyCodes maps keys to the raw codes understood by the input bindings
var keyCodes = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeySpace, "space"},
	{ebiten.KeyR, "r"},
	{ebiten.KeyEscape, "escape"},
	{ebiten.KeyC, "c"},
	{ebiten.KeyG, "g"},
	{ebiten.KeyM, "m"},
	{ebiten.KeyP, "p"},
	{ebiten.KeyQ, "q"},
	{ebiten.KeyArrowUp, "arrow_up"},
	{ebiten.KeyArrowDown, "arrow_down"},
	{ebiten.KeyArrowLeft, "arrow_left"},
	{ebiten.KeyArrowRight, "arrow_right"},
	{ebiten.KeyEnter, "enter"},
	{ebiten.KeyX, "x"},
	{ebiten.KeyDelete, "delete"},
}

// Update handles input (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		e.logger.Debug("window opened", "width", w, "height", h)
	}

	if e.closing.Load() {
		return ebiten.Termination
	}
	if ebiten.IsWindowBeingClosed() {
		e.send(engineinput.Translate(engineinput.RawInput{Device: engineinput.DeviceKeyboard, Code: "quit"}))
		return nil
	}

	if intent := e.checkPointer(); intent.Action != engineinput.ActionNone {
		e.send(intent)
	}
	for _, intent := range e.checkKeys() {
		e.send(intent)
	}
	return nil
}

// send queues an intent for the driver without blocking Ebiten's loop
func (e *EbitenRenderer) send(intent engineinput.Intent) {
	select {
	case e.inputChan <- intent:
	default:
		// Channel full, drop input
	}
}

// checkPointer turns held mouse buttons into pointer intents. A drag reports each
// cell it crosses once, so barriers can be painted by dragging.
func (e *EbitenRenderer) checkPointer() engineinput.Intent {
	var code string
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		code = "mouse_left"
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		code = "mouse_right"
	default:
		e.pointer = pointerState{lastRow: -1, lastCol: -1}
		return engineinput.Intent{Action: engineinput.ActionNone}
	}

	x, y := ebiten.CursorPosition()
	row, col, ok := e.cellAt(x, y)
	if !ok {
		return engineinput.Intent{Action: engineinput.ActionNone}
	}
	if code == e.pointer.code && row == e.pointer.lastRow && col == e.pointer.lastCol {
		return engineinput.Intent{Action: engineinput.ActionNone}
	}
	e.pointer = pointerState{code: code, lastRow: row, lastCol: col}

	return engineinput.Translate(engineinput.RawInput{
		Device: engineinput.DeviceMouse,
		Code:   code,
		X:      x,
		Y:      y,
	})
}

// checkKeys returns one intent per key pressed this tick
func (e *EbitenRenderer) checkKeys() []engineinput.Intent {
	var intents []engineinput.Intent
	for _, k := range keyCodes {
		if !inpututil.IsKeyJustPressed(k.key) {
			continue
		}
		intent := engineinput.Translate(engineinput.RawInput{
			Device: engineinput.DeviceKeyboard,
			Code:   k.code,
		})
		if intent.Action != engineinput.ActionNone {
			intents = append(intents, intent)
		}
	}
	return intents
}

// Layout returns the fixed logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(_, _ int) (int, int) {
	return e.windowWidth, e.windowHeight
}
