// Package launcher holds the pinned-item grid model: ordering, renames and
// search, decoupled from the GTK widgets that display it.
package launcher

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/supercut-tools/superlauncher/internal/store"
)

// ErrAlreadyPinned is returned when a path is pinned twice.
var ErrAlreadyPinned = errors.New("item is already pinned")

// ErrNotPinned is returned when an operation targets a path that is not in
// the grid.
var ErrNotPinned = errors.New("item is not pinned")

// fuzzyMinScore drops matches whose leading-character penalties outweigh
// their bonuses.
const fuzzyMinScore = 0

// Grid is the ordered collection of pinned items. Every mutation persists
// through the backing store, so the grid survives restarts exactly as the
// user left it.
type Grid struct {
	store *store.Store
	items []store.Item
}

// NewGrid loads the pinned items from the store.
func NewGrid(st *store.Store) *Grid {
	items := st.LoadApps()
	log.Printf("[GRID] Loaded %d pinned items", len(items))
	return &Grid{store: st, items: items}
}

// Items returns the pinned items in display order. The slice is a copy.
func (g *Grid) Items() []store.Item {
	out := make([]store.Item, len(g.items))
	copy(out, g.items)
	return out
}

// Len returns the number of pinned items.
func (g *Grid) Len() int {
	return len(g.items)
}

// indexOf locates a pinned path, comparing cleaned forms.
func (g *Grid) indexOf(path string) int {
	cleaned := filepath.Clean(path)
	for i, item := range g.items {
		if filepath.Clean(item.Path) == cleaned {
			return i
		}
	}
	return -1
}

// Pin appends a new item to the end of the grid. Pinning a path that is
// already present is rejected rather than duplicated.
func (g *Grid) Pin(path string) (store.Item, error) {
	if strings.TrimSpace(path) == "" {
		return store.Item{}, fmt.Errorf("cannot pin an empty path")
	}
	if g.indexOf(path) >= 0 {
		return store.Item{}, ErrAlreadyPinned
	}

	item := store.NewItem(path)
	g.items = append(g.items, item)
	if err := g.persist(); err != nil {
		return store.Item{}, err
	}
	log.Printf("[GRID] Pinned %s (%d items)", path, len(g.items))
	return item, nil
}

// Unpin removes the item with the given path.
func (g *Grid) Unpin(path string) error {
	idx := g.indexOf(path)
	if idx < 0 {
		return ErrNotPinned
	}

	g.items = append(g.items[:idx], g.items[idx+1:]...)
	if err := g.persist(); err != nil {
		return err
	}
	log.Printf("[GRID] Unpinned %s (%d items)", path, len(g.items))
	return nil
}

// Rename sets or clears the display-name override for a pinned path. A
// blank title reverts to the name derived from the filename.
func (g *Grid) Rename(path, title string) error {
	idx := g.indexOf(path)
	if idx < 0 {
		return ErrNotPinned
	}

	g.items[idx].SetTitle(title)
	return g.persist()
}

// Move reorders the item at from to position to, shifting the items in
// between. Out-of-range positions are clamped.
func (g *Grid) Move(from, to int) error {
	if from < 0 || from >= len(g.items) {
		return fmt.Errorf("move source %d out of range", from)
	}
	if to < 0 {
		to = 0
	}
	if to >= len(g.items) {
		to = len(g.items) - 1
	}
	if from == to {
		return nil
	}

	item := g.items[from]
	rest := append(g.items[:from], g.items[from+1:]...)
	g.items = append(rest[:to], append([]store.Item{item}, rest[to:]...)...)
	return g.persist()
}

// Filter returns the items whose display name contains the query,
// case-insensitively, preserving grid order. An empty query returns
// everything.
func (g *Grid) Filter(query string) []store.Item {
	query = strings.TrimSpace(query)
	if query == "" {
		return g.Items()
	}

	lowered := strings.ToLower(query)
	matched := make([]store.Item, 0, len(g.items))
	for _, item := range g.items {
		if strings.Contains(strings.ToLower(item.DisplayName()), lowered) {
			matched = append(matched, item)
		}
	}
	return matched
}

// FuzzyFilter ranks items against the query with fuzzy matching, exact
// prefix matches first, then by score. Used when the config enables fuzzy
// search instead of plain substring filtering.
func (g *Grid) FuzzyFilter(query string) []store.Item {
	query = strings.TrimSpace(query)
	if query == "" {
		return g.Items()
	}

	names := make([]string, len(g.items))
	byName := make(map[string]store.Item, len(g.items))
	for i, item := range g.items {
		name := item.DisplayName()
		names[i] = name
		byName[name] = item
	}

	matches := fuzzy.Find(query, names)

	filtered := make([]fuzzy.Match, 0, len(matches))
	for _, m := range matches {
		if m.Score >= fuzzyMinScore {
			filtered = append(filtered, m)
		}
	}

	loweredQuery := strings.ToLower(query)
	sort.SliceStable(filtered, func(i, j int) bool {
		iPrefix := strings.HasPrefix(strings.ToLower(filtered[i].Str), loweredQuery)
		jPrefix := strings.HasPrefix(strings.ToLower(filtered[j].Str), loweredQuery)
		if iPrefix != jPrefix {
			return iPrefix
		}
		return filtered[i].Score > filtered[j].Score
	})

	items := make([]store.Item, 0, len(filtered))
	for _, m := range filtered {
		if item, ok := byName[m.Str]; ok {
			items = append(items, item)
		}
	}
	return items
}

func (g *Grid) persist() error {
	if err := g.store.SaveApps(g.items); err != nil {
		return fmt.Errorf("failed to persist grid: %w", err)
	}
	return nil
}
