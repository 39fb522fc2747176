package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config failed validation: %v", err)
	}
}

func TestLoadConfig_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "settings.toml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.AppName != DefaultConfig.AppName {
		t.Errorf("expected default app name, got %q", cfg.AppName)
	}
	if cfg.Launcher.Icons.IconSize != 48 {
		t.Errorf("expected default icon size 48, got %d", cfg.Launcher.Icons.IconSize)
	}
}

func TestLoadConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")

	cfg := DefaultConfig
	cfg.Launcher.Grid.Columns = 6
	cfg.Launcher.Search.Fuzzy = true
	cfg.Profiles.ChromeUserDataDir = "/opt/chrome-data"

	if err := SaveConfig(&cfg, path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	loaded, err := LoadAndValidateConfig(path)
	if err != nil {
		t.Fatalf("LoadAndValidateConfig: %v", err)
	}
	if loaded.Launcher.Grid.Columns != 6 {
		t.Errorf("columns = %d, want 6", loaded.Launcher.Grid.Columns)
	}
	if !loaded.Launcher.Search.Fuzzy {
		t.Error("expected fuzzy search to survive the round trip")
	}
	if loaded.Profiles.ChromeUserDataDir != "/opt/chrome-data" {
		t.Errorf("chrome dir = %q", loaded.Profiles.ChromeUserDataDir)
	}
}

func TestLoadConfig_MalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	if err := os.WriteFile(path, []byte("launcher = not toml"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected parse error for malformed TOML")
	}
}

func TestValidate_Ranges(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"window width too small", func(c *Config) { c.Launcher.Window.Width = 10 }},
		{"zero grid columns", func(c *Config) { c.Launcher.Grid.Columns = 0 }},
		{"icon size out of range", func(c *Config) { c.Launcher.Icons.IconSize = 1024 }},
		{"unknown scaling method", func(c *Config) { c.Launcher.Icons.FallbackScalingMethod = "bilinear" }},
		{"bad preferred size", func(c *Config) { c.Launcher.Icons.PreferredSourceSizes = []int{4} }},
		{"empty channel types", func(c *Config) { c.Profiles.ChannelTypes = nil }},
		{"negative startup delay", func(c *Config) { c.Profiles.StartupCheckDelayMs = -1 }},
		{"bad color", func(c *Config) { c.Styling.AccentColor = "blue" }},
		{"font size out of range", func(c *Config) { c.Styling.FontSize = 99 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
