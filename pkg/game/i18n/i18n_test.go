package i18n

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGet_Builtin(t *testing.T) {
	if err := Init("", DefaultLang); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if got, want := Get("ACTION_RUN"), "Run"; got != want {
		t.Errorf("Get(ACTION_RUN) = %q, want %q", got, want)
	}
	if got, want := Get("SEARCH_FOUND", 7, 12), "Path found: 7 steps, 12 cells expanded."; got != want {
		t.Errorf("Get(SEARCH_FOUND) = %q, want %q", got, want)
	}
	if got, want := Get("NO_SUCH_KEY"), "NO_SUCH_KEY"; got != want {
		t.Errorf("Get(NO_SUCH_KEY) = %q, want %q", got, want)
	}
}

func TestInit_DiskCatalogue(t *testing.T) {
	dir := t.TempDir()
	langDir := filepath.Join(dir, "fr_FR")
	if err := os.MkdirAll(langDir, 0o755); err != nil {
		t.Fatal(err)
	}
	po := "msgid \"\"\nmsgstr \"\"\n\"Language: fr_FR\\n\"\n\nmsgid \"ACTION_RUN\"\nmsgstr \"Lancer\"\n"
	if err := os.WriteFile(filepath.Join(langDir, "default.po"), []byte(po), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = Init("", DefaultLang) })

	if err := Init(dir, "fr_FR"); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if got, want := Get("ACTION_RUN"), "Lancer"; got != want {
		t.Errorf("Get(ACTION_RUN) = %q, want %q", got, want)
	}
}

func TestInit_UnknownLanguageFallsBack(t *testing.T) {
	t.Cleanup(func() { _ = Init("", DefaultLang) })

	if err := Init(t.TempDir(), "xx_XX"); err == nil {
		t.Error("Init(xx_XX) error = nil, want fallback error")
	}
	if got, want := Get("ACTION_QUIT"), "Quit"; got != want {
		t.Errorf("Get(ACTION_QUIT) = %q, want %q", got, want)
	}
}
