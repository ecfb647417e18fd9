// Package i18n translates user-facing strings through gettext catalogues.
//
// The en_GB catalogue is compiled in; a default.po found under
// <dir>/<lang>/ or <dir>/<lang>/LC_MESSAGES/ replaces it.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/leonelquinteros/gotext"
)

// DefaultLang is the language of the compiled-in catalogue
const DefaultLang = "en_GB"

//go:embed locales/*/default.po
var builtin embed.FS

var (
	mu      sync.RWMutex
	current = mustBuiltin()
)

func mustBuiltin() *gotext.Po {
	po, err := parseFS(builtin, "locales/"+DefaultLang+"/default.po")
	if err != nil {
		panic(err)
	}
	return po
}

func parseFS(fsys fs.FS, name string) (*gotext.Po, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	return parse(data), nil
}

func parse(data []byte) *gotext.Po {
	po := gotext.NewPo()
	po.Parse(data)
	return po
}

// Init selects the catalogue for lang. It searches dir on disk first, then the
// compiled-in catalogues. When neither has lang, the en_GB catalogue stays active
// and the returned error says so.
func Init(dir, lang string) error {
	if dir != "" {
		for _, name := range []string{
			filepath.Join(dir, lang, "default.po"),
			filepath.Join(dir, lang, "LC_MESSAGES", "default.po"),
		} {
			data, err := os.ReadFile(name)
			if err == nil {
				set(parse(data))
				return nil
			}
			if !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("i18n: reading %s: %w", name, err)
			}
		}
	}
	po, err := parseFS(builtin, "locales/"+lang+"/default.po")
	if err != nil {
		set(mustBuiltin())
		return fmt.Errorf("i18n: no catalogue for %q, using %s", lang, DefaultLang)
	}
	set(po)
	return nil
}

func set(po *gotext.Po) {
	mu.Lock()
	current = po
	mu.Unlock()
}

// Get returns the translation of key, formatted with vars when given.
// Unknown keys are returned unchanged.
func Get(key string, vars ...any) string {
	mu.RLock()
	po := current
	mu.RUnlock()
	return po.Get(key, vars...)
}
