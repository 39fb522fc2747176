package profiles

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

const profileFileName = "profile.json"

// Geometry is the last known manager window position and size.
type Geometry struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Document is the full contents of profile.json.
type Document struct {
	Profiles       []Profile `json:"profiles"`
	WindowPosition *Geometry `json:"window_position,omitempty"`
}

// Store reads and writes the profile roster as a whole document.
type Store struct {
	path string
}

// New creates a store bound to the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

// DefaultPath prefers a profile.json next to the executable (portable
// install) and falls back to the per-user config directory.
func DefaultPath() string {
	if exe, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(exe), profileFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "SuperLauncher", profileFileName)
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// loadDocument reads the whole document. A missing or malformed file
// degrades to the empty default document.
func (s *Store) loadDocument() Document {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Document{Profiles: []Profile{}}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Printf("[PROFILE-STORE] Malformed %s, starting empty: %v", s.path, err)
		return Document{Profiles: []Profile{}}
	}
	if doc.Profiles == nil {
		doc.Profiles = []Profile{}
	}
	return doc
}

func (s *Store) write(doc Document) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create profile dir: %w", err)
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode profiles: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	return nil
}

// Load reads the roster, migrating legacy records and sorting by profile
// name. Read problems are never propagated.
func (s *Store) Load() []Profile {
	doc := s.loadDocument()
	SortByName(doc.Profiles)
	return doc.Profiles
}

// Save sorts the roster by profile name and overwrites the profile list,
// preserving the rest of the document.
func (s *Store) Save(profiles []Profile) error {
	SortByName(profiles)

	doc := s.loadDocument()
	doc.Profiles = profiles
	if err := s.write(doc); err != nil {
		return err
	}

	log.Printf("[PROFILE-STORE] Saved %d profiles", len(profiles))
	return nil
}

// Geometry returns the saved window geometry, nil when none was saved.
func (s *Store) Geometry() *Geometry {
	return s.loadDocument().WindowPosition
}

// SaveGeometry records the window geometry, preserving the roster.
func (s *Store) SaveGeometry(g Geometry) error {
	doc := s.loadDocument()
	doc.WindowPosition = &g
	return s.write(doc)
}
