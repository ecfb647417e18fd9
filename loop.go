package main

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"time"

	"gridpath/pkg/engine/input"
	"gridpath/pkg/engine/world"
	"gridpath/pkg/game/config"
	"gridpath/pkg/game/devtools"
	"gridpath/pkg/game/generator"
	"gridpath/pkg/game/i18n"
	"gridpath/pkg/game/renderer"
	"gridpath/pkg/game/state"
)

// contextFunc returns the context a search runs under. Cancelling it aborts the search.
type contextFunc func() (context.Context, context.CancelFunc)

// session drives one editor through one front-end until the user quits
type session struct {
	cfg        config.Config
	editor     *state.Editor
	ui         renderer.Renderer
	logger     *slog.Logger
	searchCtx  contextFunc
	gen        generator.GridGenerator
	rng        *rand.Rand
	quitQueued bool
}

func newSession(cfg config.Config, editor *state.Editor, ui renderer.Renderer, logger *slog.Logger, searchCtx contextFunc) *session {
	if searchCtx == nil {
		searchCtx = func() (context.Context, context.CancelFunc) {
			return context.WithCancel(context.Background())
		}
	}
	gen, err := generator.ByName(cfg.Generator)
	if err != nil {
		gen = generator.DefaultGenerator
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &session{
		cfg:       cfg,
		editor:    editor,
		ui:        ui,
		logger:    logger,
		searchCtx: searchCtx,
		gen:       gen,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// run is the main loop: draw, wait for one intent, apply it
func (s *session) run() {
	s.editor.AddMessage(i18n.Get("WELCOME"))
	for {
		s.ui.RenderFrame(s.editor)
		if !s.processIntent(s.ui.GetInput()) {
			return
		}
	}
}

// processIntent applies one intent to the editor. It returns false when the
// session should end.
func (s *session) processIntent(in input.Intent) bool {
	e := s.editor

	switch in.Action {
	case input.ActionQuit:
		return false

	case input.ActionCursorUp:
		e.MoveCursor(world.North)
	case input.ActionCursorDown:
		e.MoveCursor(world.South)
	case input.ActionCursorLeft:
		e.MoveCursor(world.West)
	case input.ActionCursorRight:
		e.MoveCursor(world.East)

	case input.ActionPlace:
		var placed world.CellState
		var err error
		if in.Pointer {
			placed, err = e.PlaceAt(in.X, in.Y)
		} else {
			placed, err = e.PlaceCursor()
		}
		if err != nil {
			return true
		}
		switch placed {
		case world.Start:
			e.AddMessage(i18n.Get("PLACED_START", e.Cursor.String()))
		case world.End:
			e.AddMessage(i18n.Get("PLACED_END", e.Cursor.String()))
		}

	case input.ActionErase:
		var err error
		if in.Pointer {
			err = e.EraseAt(in.X, in.Y)
		} else {
			err = e.EraseCursor()
		}
		if err == nil && !in.Pointer {
			e.AddMessage(i18n.Get("CELL_ERASED", e.Cursor.String()))
		}

	case input.ActionClear:
		if err := e.Clear(); err == nil {
			e.AddMessage(i18n.Get("GRID_CLEARED"))
		}

	case input.ActionGenerate:
		s.generate()

	case input.ActionRun:
		s.runSearch()
		if s.quitQueued {
			return false
		}

	case input.ActionDump:
		path, err := devtools.DumpEditorToFile(e, s.cfg.DumpFile)
		s.reportWrite("MAP_DUMPED", path, s.cfg.DumpFile, err)

	case input.ActionExport:
		width := e.Grid.Width()
		if width < e.Grid.Rows() {
			width = s.cfg.DisplayWidth
		}
		path, err := devtools.ExportPNG(e.Grid, width, s.cfg.ExportPNG)
		s.reportWrite("PNG_EXPORTED", path, s.cfg.ExportPNG, err)

	case input.ActionHelp:
		e.AddMessage(renderer.HelpLine())
	}
	return true
}

// generate replaces the grid with a fresh random layout of the same size
func (s *session) generate() {
	e := s.editor
	grid, err := s.gen.Generate(e.Grid.Rows(), e.Grid.Width(), s.rng)
	if err == nil {
		err = e.Replace(grid)
	}
	if err != nil {
		s.logger.Warn("generate failed", "generator", s.gen.Name(), "err", err)
		e.AddMessage(i18n.Get("GENERATE_FAILED", err))
		return
	}
	s.logger.Debug("layout generated", "generator", s.gen.Name(), "barriers", grid.CountState(world.Barrier))
	e.AddMessage(i18n.Get("GRID_GENERATED", s.gen.Name()))
}

func (s *session) reportWrite(okKey, path, target string, err error) {
	if err != nil {
		s.logger.Error("write failed", "path", target, "err", err)
		s.editor.AddMessage(i18n.Get("WRITE_FAILED", target, err))
		return
	}
	s.logger.Info("file written", "path", path)
	s.editor.AddMessage(i18n.Get(okKey, path))
}

// runSearch runs A* on the editor, redrawing as it goes, until it finishes or
// the user cancels it
func (s *session) runSearch() {
	ctx, cancel := s.searchCtx()
	defer cancel()

	obs := &frameObserver{session: s, cancel: cancel}
	began := time.Now()
	res, err := s.editor.Search(ctx, obs)
	switch {
	case errors.Is(err, state.ErrNoStart):
		s.editor.AddMessage(i18n.Get("NEED_START"))
		return
	case errors.Is(err, state.ErrNoEnd):
		s.editor.AddMessage(i18n.Get("NEED_END"))
		return
	case errors.Is(err, state.ErrBusy):
		s.editor.AddMessage(i18n.Get("SEARCH_BUSY"))
		return
	case err != nil:
		s.logger.Error("search failed", "err", err)
		return
	}

	s.logger.Info("search finished",
		"outcome", res.Outcome,
		"cost", res.Cost,
		"expanded", res.Expanded,
		"elapsed", time.Since(began),
	)
	s.editor.AddMessage(renderer.ResultText(res))
}

// frameObserver redraws the editor every StepsPerFrame steps and watches the
// front-end for a cancel request in between
type frameObserver struct {
	session *session
	cancel  context.CancelFunc
	steps   int
}

func (o *frameObserver) Step() {
	s := o.session
	o.steps++
	if o.steps%s.cfg.StepsPerFrame != 0 {
		return
	}

	s.ui.RenderFrame(s.editor)
	if s.cfg.StepDelay > 0 {
		time.Sleep(s.cfg.StepDelay)
	}

	for {
		intent, ok := s.ui.PollInput()
		if !ok {
			return
		}
		switch intent.Action {
		case input.ActionCancel:
			o.cancel()
		case input.ActionQuit:
			s.quitQueued = true
			o.cancel()
		}
	}
}
