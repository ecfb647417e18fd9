package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"gridpath/pkg/game/config"
	"gridpath/pkg/game/devtools"
	"gridpath/pkg/game/i18n"
	"gridpath/pkg/game/logging"
	"gridpath/pkg/game/renderer"
	ebitenrenderer "gridpath/pkg/game/renderer/ebiten"
	"gridpath/pkg/game/renderer/tui"
	"gridpath/pkg/game/state"
	"gridpath/pkg/game/webapi"
)

func main() {
	envFile := flag.String("env", ".env", "optional dotenv file with GRIDPATH_* settings")
	flag.String("renderer", "", "front-end: ebiten, tui, headless or serve")
	flag.Int("rows", 0, "rows (and columns) of the grid")
	flag.Int("width", 0, "window width in pixels")
	flag.String("map", "", "text map to load at start-up (required for headless)")
	flag.String("png", "", "PNG file written by export, or after a headless solve")
	flag.String("addr", "", "listen address in serve mode")
	flag.Duration("delay", 0, "pause after every redraw while searching")
	flag.Int("steps-per-frame", 0, "search steps between redraws")
	flag.String("log-level", "", "debug, info, warn or error")
	flag.String("gen", "", "layout generator for the generate key: bsp or walker")
	flag.Int64("seed", 0, "layout generator seed, 0 for a random one")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := applyFlags(&cfg, flag.CommandLine); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := logging.Setup(cfg.LogLevel)
	if err := i18n.Init(cfg.LocaleDir, cfg.Locale); err != nil {
		logger.Warn("translations", "err", err)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("exiting", "err", err)
		os.Exit(1)
	}
}

// applyFlags copies the flags given on the command line over cfg
func applyFlags(cfg *config.Config, fs *flag.FlagSet) error {
	var err error
	fs.Visit(func(f *flag.Flag) {
		getter, ok := f.Value.(flag.Getter)
		if !ok {
			return
		}
		v := getter.Get()
		switch f.Name {
		case "renderer":
			cfg.Renderer = v.(string)
		case "rows":
			cfg.GridSize = v.(int)
		case "width":
			cfg.DisplayWidth = v.(int)
		case "map":
			cfg.MapFile = v.(string)
		case "png":
			cfg.ExportPNG = v.(string)
		case "addr":
			cfg.ListenAddr = v.(string)
		case "delay":
			cfg.StepDelay = v.(time.Duration)
		case "steps-per-frame":
			cfg.StepsPerFrame = v.(int)
		case "gen":
			cfg.Generator = v.(string)
		case "seed":
			cfg.Seed = v.(int64)
		case "log-level":
			lvl, perr := config.ParseLevel(v.(string))
			if perr != nil {
				err = perr
				return
			}
			cfg.LogLevel = lvl
		}
	})
	return err
}

func run(cfg config.Config, logger *slog.Logger) error {
	switch cfg.Renderer {
	case config.RendererHeadless:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runHeadless(ctx, cfg, logger, os.Stdout)
	case config.RendererServe:
		return runServe(cfg, logger)
	}

	editor, err := newEditor(cfg)
	if err != nil {
		return err
	}
	if cfg.Renderer == config.RendererTUI {
		return runTUI(cfg, editor, logger)
	}
	return runEbiten(cfg, editor, logger)
}

// newEditor starts from the map file when one is configured, else from an empty grid
func newEditor(cfg config.Config) (*state.Editor, error) {
	if cfg.MapFile == "" {
		return state.NewEditor(cfg.GridSize, cfg.DisplayWidth)
	}
	grid, err := devtools.LoadMapFile(cfg.MapFile, cfg.DisplayWidth)
	if err != nil {
		return nil, err
	}
	return state.NewEditorFromGrid(grid), nil
}

func runEbiten(cfg config.Config, editor *state.Editor, logger *slog.Logger) error {
	ui, err := ebitenrenderer.New(cfg.DisplayWidth, editor.Grid.Rows(), logger)
	if err != nil {
		return err
	}
	if err := ui.Init(); err != nil {
		return err
	}
	renderer.SetRenderer(ui)

	// Ebiten owns the main goroutine; the editor loop runs beside it and
	// closes the window when the user quits.
	s := newSession(cfg, editor, ui, logger, nil)
	go func() {
		s.run()
		ui.Close()
	}()
	return ui.Run()
}

func runTUI(cfg config.Config, editor *state.Editor, logger *slog.Logger) error {
	ui := tui.New()
	if err := ui.Init(); err != nil {
		return err
	}
	renderer.SetRenderer(ui)

	// Outside a key read the terminal is cooked, so Ctrl-C during a search
	// arrives as SIGINT and cancels just that search.
	s := newSession(cfg, editor, ui, logger, func() (context.Context, context.CancelFunc) {
		return signal.NotifyContext(context.Background(), os.Interrupt)
	})
	s.run()
	ui.Clear()
	return nil
}

// runHeadless solves the map file once and prints the solved map to out
func runHeadless(ctx context.Context, cfg config.Config, logger *slog.Logger, out io.Writer) error {
	grid, err := devtools.LoadMapFile(cfg.MapFile, cfg.DisplayWidth)
	if err != nil {
		return err
	}
	editor := state.NewEditorFromGrid(grid)

	if cfg.SearchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.SearchTimeout)
		defer cancel()
	}
	res, err := editor.Search(ctx, nil)
	if err != nil {
		return err
	}
	logger.Info("search finished", "outcome", res.Outcome, "cost", res.Cost, "expanded", res.Expanded)

	if err := devtools.DumpMap(out, grid); err != nil {
		return err
	}
	fmt.Fprintln(out, renderer.ResultText(res))

	if cfg.ExportPNG != "" {
		if err := devtools.SavePNG(cfg.ExportPNG, grid, cfg.DisplayWidth); err != nil {
			return err
		}
		logger.Info("file written", "path", cfg.ExportPNG)
	}
	return nil
}

func runServe(cfg config.Config, logger *slog.Logger) error {
	if cfg.LogLevel > slog.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := webapi.NewServer(webapi.Config{
		Addr:          cfg.ListenAddr,
		SearchTimeout: cfg.SearchTimeout,
		MaxGridSize:   cfg.MaxGridSize,
	}, logger)
	return server.Run(ctx)
}
