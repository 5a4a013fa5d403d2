package catalog

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultDeck is the embedded deck used when no path is given.
const DefaultDeck = "hero.yaml"

//go:embed *.yaml
var DecksFS embed.FS

// Load reads a deck from disk, falling back to the embedded decks.
func Load(name string) ([]byte, error) {
	if name == "" {
		name = DefaultDeck
	}
	if data, err := os.ReadFile(name); err == nil {
		return data, nil
	}
	return DecksFS.ReadFile(cleanDeckPath(name))
}

// ModTime reports the on-disk modification time of a deck, if it has one.
func ModTime(name string) (time.Time, bool) {
	info, err := os.Stat(name)
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// Dir returns the directory slide image refs in the deck resolve against.
// Embedded decks resolve against the working directory.
func Dir(name string) string {
	if name == "" {
		return "."
	}
	if _, err := os.Stat(name); err != nil {
		return "."
	}
	return filepath.Dir(name)
}

func cleanDeckPath(path string) string {
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "catalog/"); ok {
		return after
	}
	return filepath.Base(s)
}
