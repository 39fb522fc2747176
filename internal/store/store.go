package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/supercut-tools/superlauncher/internal/icon"
)

const appName = "SuperLauncher"

// Geometry is the last known window position and size.
type Geometry struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Document is the full contents of config.json. Reads and writes always
// cover the whole document; there is no partial update.
type Document struct {
	Apps           []Item                `json:"apps"`
	IconQuality    *icon.QualitySettings `json:"icon_quality_settings,omitempty"`
	WindowPosition *Geometry             `json:"window_position,omitempty"`
}

// Store persists the pinned-item document at a fixed path.
type Store struct {
	path string
}

// New creates a store backed by the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the config.json location: a file next to the
// executable wins, otherwise the per-user config directory.
func DefaultPath() string {
	if exe, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(exe), "config.json")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	root, err := os.UserConfigDir()
	if err != nil {
		root = "."
	}
	return filepath.Join(root, appName, "config.json")
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the document. A missing or malformed file degrades to the
// empty default document; read problems are never propagated.
func (s *Store) Load() Document {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[STORE] Failed to read %s: %v", s.path, err)
		}
		return Document{Apps: []Item{}}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Printf("[STORE] Malformed config %s, using defaults: %v", s.path, err)
		return Document{Apps: []Item{}}
	}

	if doc.Apps == nil {
		doc.Apps = []Item{}
	}
	// Entries without a path are meaningless and dropped on load.
	kept := doc.Apps[:0]
	for _, it := range doc.Apps {
		if it.Path != "" {
			kept = append(kept, it)
		}
	}
	doc.Apps = kept

	return doc
}

// Save writes the whole document, creating the parent directory if needed.
func (s *Store) Save(doc Document) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	log.Printf("[STORE] Saved %d pinned items to %s", len(doc.Apps), s.path)
	return nil
}

// LoadApps returns just the pinned-item list.
func (s *Store) LoadApps() []Item {
	return s.Load().Apps
}

// SaveApps overwrites the pinned-item list, preserving the rest of the
// document.
func (s *Store) SaveApps(apps []Item) error {
	doc := s.Load()
	doc.Apps = apps
	return s.Save(doc)
}
