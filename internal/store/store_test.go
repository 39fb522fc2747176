package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/supercut-tools/superlauncher/internal/icon"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "config.json"))
}

func strPtr(s string) *string {
	return &s
}

func TestStore_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	apps := []Item{
		{Path: `C:\Tools\notepad.exe`},
		{Path: `C:\Tools\calc.exe`, Title: strPtr("Calculator")},
		{Path: `C:\Projects`},
	}
	require.NoError(t, s.SaveApps(apps))

	loaded := s.LoadApps()
	require.Equal(t, apps, loaded)

	// Order is significant for the grid; a second save/load cycle must
	// preserve it exactly.
	apps[0], apps[2] = apps[2], apps[0]
	require.NoError(t, s.SaveApps(apps))
	require.Equal(t, apps, s.LoadApps())
}

func TestStore_MissingFileYieldsDefault(t *testing.T) {
	s := newTestStore(t)

	first := s.Load()
	second := s.Load()

	if len(first.Apps) != 0 {
		t.Errorf("Expected empty apps list, got %d items", len(first.Apps))
	}
	if first.WindowPosition != nil {
		t.Errorf("Expected nil window position, got %+v", first.WindowPosition)
	}
	if len(second.Apps) != 0 || second.WindowPosition != nil {
		t.Errorf("Second load differs from first: %+v", second)
	}
}

func TestStore_MalformedFileYieldsDefault(t *testing.T) {
	s := newTestStore(t)
	if err := os.MkdirAll(filepath.Dir(s.Path()), 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	if err := os.WriteFile(s.Path(), []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	first := s.Load()
	second := s.Load()

	if len(first.Apps) != 0 {
		t.Errorf("Expected empty default for malformed config, got %d items", len(first.Apps))
	}
	if len(second.Apps) != 0 {
		t.Errorf("Expected malformed load to be idempotent, got %d items", len(second.Apps))
	}
}

func TestStore_DropsEntriesWithoutPath(t *testing.T) {
	s := newTestStore(t)
	if err := os.MkdirAll(filepath.Dir(s.Path()), 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	raw := `{"apps": [{"path": "a.exe"}, {"title": "orphan"}, {"path": "b.exe", "title": "B"}]}`
	if err := os.WriteFile(s.Path(), []byte(raw), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	apps := s.LoadApps()
	if len(apps) != 2 {
		t.Fatalf("Expected 2 apps, got %d", len(apps))
	}
	if apps[0].Path != "a.exe" || apps[1].Path != "b.exe" {
		t.Errorf("Unexpected apps: %+v", apps)
	}
}

func TestStore_PreservesSettingsAcrossSaveApps(t *testing.T) {
	s := newTestStore(t)

	quality := icon.DefaultQualitySettings()
	doc := Document{
		Apps:           []Item{{Path: "a.exe"}},
		IconQuality:    &quality,
		WindowPosition: &Geometry{X: 10, Y: 20, Width: 800, Height: 600},
	}
	require.NoError(t, s.Save(doc))

	require.NoError(t, s.SaveApps([]Item{{Path: "b.exe"}}))

	got := s.Load()
	require.NotNil(t, got.IconQuality)
	require.Equal(t, 100, got.IconQuality.CacheSizeLimit)
	require.NotNil(t, got.WindowPosition)
	require.Equal(t, Geometry{X: 10, Y: 20, Width: 800, Height: 600}, *got.WindowPosition)
	require.Len(t, got.Apps, 1)
	require.Equal(t, "b.exe", got.Apps[0].Path)
}

func TestItem_DisplayName(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "My Tools")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	file := filepath.Join(dir, "notepad.exe")
	if err := os.WriteFile(file, []byte{}, 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	tests := []struct {
		name string
		item Item
		want string
	}{
		{"title override", Item{Path: file, Title: strPtr("Editor")}, "Editor"},
		{"blank title falls back", Item{Path: file, Title: strPtr("   ")}, "notepad"},
		{"file strips extension", Item{Path: file}, "notepad"},
		{"directory keeps full name", Item{Path: sub}, "My Tools"},
		{"missing path treated as file", Item{Path: filepath.Join(dir, "gone.exe")}, "gone"},
		{"no extension", Item{Path: filepath.Join(dir, "README")}, "README"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.DisplayName(); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestItem_SetTitle(t *testing.T) {
	it := NewItem("a.exe")

	it.SetTitle("My App")
	if it.Title == nil || *it.Title != "My App" {
		t.Errorf("Expected title override, got %v", it.Title)
	}

	it.SetTitle("  ")
	if it.Title != nil {
		t.Errorf("Expected blank title to clear override, got %q", *it.Title)
	}
}
