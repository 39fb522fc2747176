package store

import (
	"os"
	"path/filepath"
	"strings"
)

// Item is a pinned file or folder shown as a launchable tile.
type Item struct {
	Path  string  `json:"path"`
	Title *string `json:"title"`
}

// NewItem creates an item with no title override.
func NewItem(path string) Item {
	return Item{Path: path}
}

// DisplayName returns the title override when set, otherwise a name derived
// from the path: the full folder name for directories, the base name without
// extension for files.
func (it Item) DisplayName() string {
	if it.Title != nil {
		if t := strings.TrimSpace(*it.Title); t != "" {
			return *it.Title
		}
	}

	base := baseName(it.Path)
	if info, err := os.Stat(it.Path); err == nil && info.IsDir() {
		return base
	}

	if ext := filepath.Ext(base); ext != "" && ext != base {
		return strings.TrimSuffix(base, ext)
	}
	return base
}

// baseName splits on both separator styles, since pinned paths written on
// Windows must still render when the config is read elsewhere.
func baseName(path string) string {
	path = strings.TrimRight(path, `\/`)
	if i := strings.LastIndexAny(path, `\/`); i >= 0 {
		return path[i+1:]
	}
	return path
}

// SetTitle records a title override. An empty or whitespace-only title
// clears the override so DisplayName falls back to the path.
func (it *Item) SetTitle(title string) {
	title = strings.TrimSpace(title)
	if title == "" {
		it.Title = nil
		return
	}
	it.Title = &title
}
