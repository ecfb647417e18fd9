package tui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/gookit/color"

	"gridpath/pkg/engine/input"
	"gridpath/pkg/game/state"
)

type scriptedKeys struct {
	intents []input.Intent
}

func (s *scriptedKeys) ReadIntent() (input.Intent, error) {
	if len(s.intents) == 0 {
		return input.Intent{}, errors.New("eof")
	}
	next := s.intents[0]
	s.intents = s.intents[1:]
	return next, nil
}

func newTestRenderer(out *bytes.Buffer, keys ...input.Intent) *TUIRenderer {
	color.Disable()
	r := &TUIRenderer{out: out, keys: &scriptedKeys{intents: keys}, interactive: true}
	if err := r.Init(); err != nil {
		panic(err)
	}
	return r
}

func TestInit_NotInteractive(t *testing.T) {
	r := &TUIRenderer{out: &bytes.Buffer{}}
	if err := r.Init(); !errors.Is(err, ErrNoTerminal) {
		t.Errorf("Init() error = %v, want ErrNoTerminal", err)
	}
}

func TestRenderFrame_DrawsGridAndStatus(t *testing.T) {
	var out bytes.Buffer
	r := newTestRenderer(&out)
	e, err := state.NewEditor(3, 0)
	if err != nil {
		t.Fatal(err)
	}
	e.Place(0, 0)
	e.Place(2, 2)
	e.Place(1, 1)
	e.AddMessage("hello")

	r.RenderFrame(e)

	got := out.String()
	for _, want := range []string{"S · · \r\n", "· █ · \r\n", "· · E \r\n", "hello", "Run: r/space"} {
		if !strings.Contains(got, want) {
			t.Errorf("frame missing %q:\n%s", want, got)
		}
	}
}

func TestGetInput(t *testing.T) {
	var out bytes.Buffer
	r := newTestRenderer(&out, input.Intent{Action: input.ActionRun})

	if got := r.GetInput(); got.Action != input.ActionRun {
		t.Errorf("GetInput() = %v, want run", got)
	}
	// reader exhausted
	if got := r.GetInput(); got.Action != input.ActionQuit {
		t.Errorf("GetInput() = %v, want quit", got)
	}
	if _, ok := r.PollInput(); ok {
		t.Error("PollInput() ok = true, want false")
	}
}
