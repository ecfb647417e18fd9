package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceMouse
	DeviceTerminal
)

// Action represents a high‑level intent of the user editing or solving a grid.
type Action int

const (
	ActionNone Action = iota

	// Cursor (terminal front-end)
	ActionCursorUp
	ActionCursorDown
	ActionCursorLeft
	ActionCursorRight

	// Editing
	ActionPlace    // start, then end, then barriers
	ActionErase    // back to empty
	ActionClear    // fresh grid
	ActionGenerate // random layout with both endpoints

	// Search
	ActionRun
	ActionCancel

	// Meta / UI
	ActionHelp
	ActionDump   // write the grid as text (map.txt)
	ActionExport // write the grid as PNG
	ActionQuit
)

// Intent is the 4th‑layer, high‑level description of what the user wants to do.
// Pointer intents carry the pixel the pointer was on.
type Intent struct {
	Action  Action
	Pointer bool
	X, Y    int
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "arrow_up", "mouse_left", "space").
type RawInput struct {
	Device    Device
	Code      string
	X, Y      int
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Ebiten's just-pressed helpers and the terminal's one-key reads already deliver
// single events, so this layer only strips the timestamp.
type DebouncedInput struct {
	Device Device
	Code   string
	X, Y   int
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
		X:      raw.X,
		Y:      raw.Y,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Cursor (arrows, Vim)
	"arrow_up":    ActionCursorUp,
	"k":           ActionCursorUp,
	"arrow_down":  ActionCursorDown,
	"j":           ActionCursorDown,
	"arrow_left":  ActionCursorLeft,
	"h":           ActionCursorLeft,
	"arrow_right": ActionCursorRight,
	"l":           ActionCursorRight,

	// Editing
	"mouse_left":  ActionPlace,
	"enter":       ActionPlace,
	"mouse_right": ActionErase,
	"x":           ActionErase,
	"delete":      ActionErase,
	"c":           ActionClear,
	"g":           ActionGenerate,

	// Search
	"space":  ActionRun,
	"r":      ActionRun,
	"escape": ActionCancel,

	// Meta
	"?":      ActionHelp,
	"m":      ActionDump,
	"p":      ActionExport,
	"q":      ActionQuit,
	"quit":   ActionQuit,
	"ctrl_c": ActionQuit,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent. Mouse events keep their pixel.
func MapToIntent(ev DebouncedInput) Intent {
	act, ok := bindings[ev.Code]
	if !ok {
		return Intent{Action: ActionNone}
	}
	in := Intent{Action: act}
	if ev.Device == DeviceMouse {
		in.Pointer = true
		in.X, in.Y = ev.X, ev.Y
	}
	return in
}

// Translate runs a raw event through every layer
func Translate(raw RawInput) Intent {
	return MapToIntent(NewDebouncedInput(raw))
}

// ActionName returns the translation key naming an action.
func ActionName(a Action) string {
	switch a {
	case ActionCursorUp:
		return "ACTION_CURSOR_UP"
	case ActionCursorDown:
		return "ACTION_CURSOR_DOWN"
	case ActionCursorLeft:
		return "ACTION_CURSOR_LEFT"
	case ActionCursorRight:
		return "ACTION_CURSOR_RIGHT"
	case ActionPlace:
		return "ACTION_PLACE"
	case ActionErase:
		return "ACTION_ERASE"
	case ActionClear:
		return "ACTION_CLEAR"
	case ActionGenerate:
		return "ACTION_GENERATE"
	case ActionRun:
		return "ACTION_RUN"
	case ActionCancel:
		return "ACTION_CANCEL"
	case ActionHelp:
		return "ACTION_HELP"
	case ActionDump:
		return "ACTION_DUMP"
	case ActionExport:
		return "ACTION_EXPORT"
	case ActionQuit:
		return "ACTION_QUIT"
	default:
		return "ACTION_NONE"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action so the help text doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// HelpActions lists the actions shown in help text, in display order
func HelpActions() []Action {
	return []Action{
		ActionPlace, ActionErase, ActionRun, ActionCancel,
		ActionClear, ActionGenerate, ActionDump, ActionExport, ActionQuit,
	}
}
