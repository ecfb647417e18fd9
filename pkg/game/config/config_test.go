package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) lookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 50, cfg.GridSize)
	assert.Equal(t, 800, cfg.DisplayWidth)
	assert.Equal(t, RendererEbiten, cfg.Renderer)
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.applyEnv(envMap(map[string]string{
		"GRIDPATH_GRID_SIZE":      "20",
		"GRIDPATH_RENDERER":       "tui",
		"GRIDPATH_LOG_LEVEL":      "DEBUG",
		"GRIDPATH_STEP_DELAY":     "15ms",
		"GRIDPATH_SEARCH_TIMEOUT": "2s",
		"GRIDPATH_LISTEN_ADDR":    "127.0.0.1:9000",
		"GRIDPATH_GENERATOR":      "walker",
		"GRIDPATH_SEED":           "-7",
		"UNRELATED":               "x",
	}))

	require.NoError(t, err)
	assert.Equal(t, 20, cfg.GridSize)
	assert.Equal(t, RendererTUI, cfg.Renderer)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 15*time.Millisecond, cfg.StepDelay)
	assert.Equal(t, 2*time.Second, cfg.SearchTimeout)
	assert.Equal(t, "127.0.0.1:9000", cfg.ListenAddr)
	assert.Equal(t, "walker", cfg.Generator)
	assert.Equal(t, int64(-7), cfg.Seed)
	assert.Equal(t, 800, cfg.DisplayWidth, "unset keys keep defaults")
}

func TestApplyEnv_CollectsAllErrors(t *testing.T) {
	cfg := Default()
	err := cfg.applyEnv(envMap(map[string]string{
		"GRIDPATH_GRID_SIZE":  "big",
		"GRIDPATH_STEP_DELAY": "soon",
		"GRIDPATH_LOG_LEVEL":  "loud",
		"GRIDPATH_SEED":       "1.5",
	}))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "GRIDPATH_GRID_SIZE")
	assert.Contains(t, err.Error(), "GRIDPATH_STEP_DELAY")
	assert.Contains(t, err.Error(), "loud")
	assert.Contains(t, err.Error(), "GRIDPATH_SEED")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero grid", func(c *Config) { c.GridSize = 0 }},
		{"negative width", func(c *Config) { c.DisplayWidth = -1 }},
		{"window smaller than grid", func(c *Config) { c.DisplayWidth = 10 }},
		{"unknown renderer", func(c *Config) { c.Renderer = "vga" }},
		{"negative delay", func(c *Config) { c.StepDelay = -time.Second }},
		{"zero steps per frame", func(c *Config) { c.StepsPerFrame = 0 }},
		{"serve without address", func(c *Config) { c.Renderer = RendererServe; c.ListenAddr = "" }},
		{"unknown generator", func(c *Config) { c.Generator = "cave" }},
		{"headless without map", func(c *Config) { c.Renderer = RendererHeadless }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestValidate_SmallWindowAllowedOutsideEbiten(t *testing.T) {
	cfg := Default()
	cfg.Renderer = RendererTUI
	cfg.DisplayWidth = 0
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("GRIDPATH_GRID_SIZE=33\nGRIDPATH_LOCALE=de_DE\n"), 0o644))
	t.Setenv("GRIDPATH_GRID_SIZE", "")
	os.Unsetenv("GRIDPATH_GRID_SIZE")
	t.Setenv("GRIDPATH_LOCALE", "")
	os.Unsetenv("GRIDPATH_LOCALE")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 33, cfg.GridSize)
	assert.Equal(t, "de_DE", cfg.Locale)
}

func TestLoad_MissingEnvFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, Default().DisplayWidth, cfg.DisplayWidth)
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel(" warn ")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)

	_, err = ParseLevel("chatty")
	assert.ErrorIs(t, err, ErrInvalid)
}
