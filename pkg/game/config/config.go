// Package config holds the runtime settings of the grid editor and solver.
//
// Settings come from three layers, later ones winning: Default, an optional
// .env file plus GRIDPATH_* environment variables (Load), and command-line
// flags applied by main.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// EnvPrefix is prepended to every environment variable name read by Load.
const EnvPrefix = "GRIDPATH_"

// Renderer names accepted by Config.Renderer.
const (
	RendererTUI      = "tui"
	RendererEbiten   = "ebiten"
	RendererHeadless = "headless"
	RendererServe    = "serve"
)

// Renderers lists the valid Config.Renderer values.
var Renderers = []string{RendererEbiten, RendererTUI, RendererHeadless, RendererServe}

// Generators lists the valid Config.Generator values.
var Generators = []string{"bsp", "walker"}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds the application's configuration values.
type Config struct {
	GridSize      int           // rows (and columns) of the square grid
	DisplayWidth  int           // window side in pixels
	Renderer      string        // one of Renderers
	Locale        string        // gettext language, e.g. en_GB
	LocaleDir     string        // directory holding <locale>/default.po
	LogLevel      slog.Level    // minimum level written to stderr
	StepDelay     time.Duration // pause after every redraw while a search runs
	StepsPerFrame int           // search steps between two redraws
	ListenAddr    string        // HTTP address in serve mode
	SearchTimeout time.Duration // per-request limit in serve mode
	MaxGridSize   int           // largest grid accepted in serve mode
	MapFile       string        // ASCII map loaded at start-up
	ExportPNG     string        // PNG written after a headless solve
	DumpFile      string        // text dump written by the Dump action
	Generator     string        // layout generator used by the Generate action
	Seed          int64         // generator seed, 0 picks one from the clock
}

// Default returns the settings for an 800px window over a 50×50 grid.
func Default() Config {
	return Config{
		GridSize:      50,
		DisplayWidth:  800,
		Renderer:      RendererEbiten,
		Locale:        "en_GB",
		LocaleDir:     "locales",
		LogLevel:      slog.LevelInfo,
		StepDelay:     0,
		StepsPerFrame: 1,
		ListenAddr:    ":8080",
		SearchTimeout: 5 * time.Second,
		MaxGridSize:   1000,
		DumpFile:      "map.txt",
		Generator:     "bsp",
	}
}

// Load returns Default overlaid with values from envFile (if present) and the
// process environment. A missing envFile is not an error.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config: loading %s: %w", envFile, err)
		}
	}
	cfg := Default()
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

type lookupFunc func(key string) (string, bool)

func (c *Config) applyEnv(lookup lookupFunc) error {
	var errs []error
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}
	num := func(key string, dst *int) {
		if v, ok := lookup(EnvPrefix + key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%w: %s%s must be an integer: %w", ErrInvalid, EnvPrefix, key, err))
				return
			}
			*dst = n
		}
	}
	dur := func(key string, dst *time.Duration) {
		if v, ok := lookup(EnvPrefix + key); ok {
			d, err := time.ParseDuration(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%w: %s%s must be a duration: %w", ErrInvalid, EnvPrefix, key, err))
				return
			}
			*dst = d
		}
	}

	num("GRID_SIZE", &c.GridSize)
	num("DISPLAY_WIDTH", &c.DisplayWidth)
	str("RENDERER", &c.Renderer)
	str("LOCALE", &c.Locale)
	str("LOCALE_DIR", &c.LocaleDir)
	if v, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok {
		lvl, err := ParseLevel(v)
		if err != nil {
			errs = append(errs, err)
		} else {
			c.LogLevel = lvl
		}
	}
	dur("STEP_DELAY", &c.StepDelay)
	num("STEPS_PER_FRAME", &c.StepsPerFrame)
	str("LISTEN_ADDR", &c.ListenAddr)
	dur("SEARCH_TIMEOUT", &c.SearchTimeout)
	num("MAX_GRID_SIZE", &c.MaxGridSize)
	str("MAP_FILE", &c.MapFile)
	str("EXPORT_PNG", &c.ExportPNG)
	str("DUMP_FILE", &c.DumpFile)
	str("GENERATOR", &c.Generator)
	if v, ok := lookup(EnvPrefix + "SEED"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %sSEED must be an integer: %w", ErrInvalid, EnvPrefix, err))
		} else {
			c.Seed = n
		}
	}

	return errors.Join(errs...)
}

// ParseLevel accepts debug, info, warn or error in any case.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log level %q", ErrInvalid, s)
	}
	return lvl, nil
}

// Validate reports every setting that is out of range.
func (c Config) Validate() error {
	var errs []error
	if c.GridSize <= 0 {
		errs = append(errs, fmt.Errorf("%w: grid size %d must be positive", ErrInvalid, c.GridSize))
	}
	if c.DisplayWidth < 0 {
		errs = append(errs, fmt.Errorf("%w: display width %d is negative", ErrInvalid, c.DisplayWidth))
	}
	if c.Renderer == RendererEbiten && c.GridSize > 0 && c.DisplayWidth < c.GridSize {
		errs = append(errs, fmt.Errorf("%w: display width %d leaves no pixels for %d cells", ErrInvalid, c.DisplayWidth, c.GridSize))
	}
	if !slices.Contains(Renderers, c.Renderer) {
		errs = append(errs, fmt.Errorf("%w: renderer %q (want one of %s)", ErrInvalid, c.Renderer, strings.Join(Renderers, ", ")))
	}
	if c.StepDelay < 0 {
		errs = append(errs, fmt.Errorf("%w: step delay %s is negative", ErrInvalid, c.StepDelay))
	}
	if c.StepsPerFrame <= 0 {
		errs = append(errs, fmt.Errorf("%w: steps per frame %d must be positive", ErrInvalid, c.StepsPerFrame))
	}
	if c.Renderer == RendererServe && c.ListenAddr == "" {
		errs = append(errs, fmt.Errorf("%w: serve mode needs a listen address", ErrInvalid))
	}
	if c.Renderer == RendererServe && c.MaxGridSize <= 0 {
		errs = append(errs, fmt.Errorf("%w: max grid size %d must be positive", ErrInvalid, c.MaxGridSize))
	}
	if c.SearchTimeout < 0 {
		errs = append(errs, fmt.Errorf("%w: search timeout %s is negative", ErrInvalid, c.SearchTimeout))
	}
	if !slices.Contains(Generators, c.Generator) {
		errs = append(errs, fmt.Errorf("%w: generator %q (want one of %s)", ErrInvalid, c.Generator, strings.Join(Generators, ", ")))
	}
	if c.Renderer == RendererHeadless && c.MapFile == "" {
		errs = append(errs, fmt.Errorf("%w: headless mode needs a map file", ErrInvalid))
	}
	return errors.Join(errs...)
}
