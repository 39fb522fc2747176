package config

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	AppName  string         `toml:"app_name"`
	Launcher LauncherConfig `toml:"launcher"`
	Profiles ProfilesConfig `toml:"profiles"`
	Styling  StylingConfig  `toml:"styling"`
}

type LauncherConfig struct {
	Window WindowConfig `toml:"window"`
	Grid   GridConfig   `toml:"grid"`
	Icons  IconsConfig  `toml:"icons"`
	Search SearchConfig `toml:"search"`
}

type WindowConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type GridConfig struct {
	Columns  int `toml:"columns"`
	TileSize int `toml:"tile_size"`
}

type IconsConfig struct {
	IconSize              int    `toml:"icon_size"`
	CacheSize             int    `toml:"cache_size"`
	HighQualityScaling    bool   `toml:"high_quality_scaling"`
	DPIAwareScaling       bool   `toml:"dpi_aware_scaling"`
	PreferredSourceSizes  []int  `toml:"preferred_source_sizes"`
	FallbackScalingMethod string `toml:"fallback_scaling_method"`
}

type SearchConfig struct {
	Fuzzy bool `toml:"fuzzy"`
}

type ProfilesConfig struct {
	ChromeUserDataDir   string   `toml:"chrome_user_data_dir"`
	ChannelTypes        []string `toml:"channel_types"`
	SubTypes            []string `toml:"sub_types"`
	StartupCheckDelayMs int      `toml:"startup_check_delay_ms"`
}

type StylingConfig struct {
	BackgroundColor string `toml:"background_color"`
	ForegroundColor string `toml:"foreground_color"`
	AccentColor     string `toml:"accent_color"`
	FontFamily      string `toml:"font_family"`
	FontSize        int    `toml:"font_size"`
}

var DefaultConfig = Config{
	AppName: "SuperLauncher",
	Launcher: LauncherConfig{
		Window: WindowConfig{
			Width:  560,
			Height: 640,
		},
		Grid: GridConfig{
			Columns:  4,
			TileSize: 96,
		},
		Icons: IconsConfig{
			IconSize:              48,
			CacheSize:             100,
			HighQualityScaling:    true,
			DPIAwareScaling:       false,
			PreferredSourceSizes:  []int{32, 48, 64, 128},
			FallbackScalingMethod: "smooth",
		},
		Search: SearchConfig{
			Fuzzy: false,
		},
	},
	Profiles: ProfilesConfig{
		ChromeUserDataDir:   "",
		ChannelTypes:        []string{"user_custom", "Chrome Profile", "Standard", "Premium", "Basic"},
		SubTypes:            []string{"Personal", "Shared", "Test"},
		StartupCheckDelayMs: 2000,
	},
	Styling: StylingConfig{
		BackgroundColor: "#2b2b2b",
		ForegroundColor: "#eeeeee",
		AccentColor:     "#4a90d9",
		FontFamily:      "Segoe UI",
		FontSize:        10,
	},
}

func expandPath(path string) string {
	if path == "" {
		return path
	}
	if path[0] == '~' {
		usr, err := user.Current()
		if err != nil {
			return path
		}
		return filepath.Join(usr.HomeDir, path[1:])
	}
	return path
}

// GetConfigPath returns the default settings.toml location under the user
// config directory.
func GetConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "SuperLauncher", "settings.toml")
}

func LoadConfig(path string) (*Config, error) {
	expandedPath := expandPath(path)

	if _, err := os.Stat(expandedPath); os.IsNotExist(err) {
		cfg := DefaultConfig
		return &cfg, nil
	}

	data, err := os.ReadFile(expandedPath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.Profiles.ChromeUserDataDir = expandPath(cfg.Profiles.ChromeUserDataDir)

	return &cfg, nil
}

func LoadAndValidateConfig(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func SaveConfig(cfg *Config, path string) error {
	expandedPath := expandPath(path)

	dir := filepath.Dir(expandedPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(expandedPath, data, 0644)
}

func (c *Config) Validate() error {
	if err := c.validateWindow(); err != nil {
		return err
	}
	if err := c.validateGrid(); err != nil {
		return err
	}
	if err := c.validateIcons(); err != nil {
		return err
	}
	if err := c.validateProfiles(); err != nil {
		return err
	}
	if err := c.validateStyling(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateWindow() error {
	w := c.Launcher.Window
	if w.Width < 100 || w.Width > 4000 {
		return fmt.Errorf("invalid window width: %d (must be 100-4000)", w.Width)
	}
	if w.Height < 100 || w.Height > 4000 {
		return fmt.Errorf("invalid window height: %d (must be 100-4000)", w.Height)
	}
	return nil
}

func (c *Config) validateGrid() error {
	g := c.Launcher.Grid
	if g.Columns < 1 || g.Columns > 12 {
		return fmt.Errorf("invalid grid columns: %d (must be 1-12)", g.Columns)
	}
	if g.TileSize < 48 || g.TileSize > 512 {
		return fmt.Errorf("invalid tile_size: %d (must be 48-512)", g.TileSize)
	}
	return nil
}

func (c *Config) validateIcons() error {
	i := c.Launcher.Icons
	if i.IconSize < 16 || i.IconSize > 256 {
		return fmt.Errorf("invalid icon_size: %d (must be 16-256)", i.IconSize)
	}
	if i.CacheSize < 10 || i.CacheSize > 10000 {
		return fmt.Errorf("invalid cache_size: %d (must be 10-10000)", i.CacheSize)
	}
	if i.FallbackScalingMethod != "smooth" && i.FallbackScalingMethod != "fast" {
		return fmt.Errorf("invalid fallback_scaling_method: %s (must be smooth or fast)", i.FallbackScalingMethod)
	}
	for _, size := range i.PreferredSourceSizes {
		if size < 16 || size > 512 {
			return fmt.Errorf("invalid preferred source size: %d (must be 16-512)", size)
		}
	}
	return nil
}

func (c *Config) validateProfiles() error {
	p := c.Profiles
	if len(p.ChannelTypes) == 0 {
		return fmt.Errorf("channel_types must not be empty")
	}
	if len(p.SubTypes) == 0 {
		return fmt.Errorf("sub_types must not be empty")
	}
	if p.StartupCheckDelayMs < 0 || p.StartupCheckDelayMs > 60000 {
		return fmt.Errorf("invalid startup_check_delay_ms: %d (must be 0-60000ms)", p.StartupCheckDelayMs)
	}
	return nil
}

func (c *Config) validateStyling() error {
	s := c.Styling
	if s.FontSize < 6 || s.FontSize > 32 {
		return fmt.Errorf("invalid font_size: %d (must be 6-32)", s.FontSize)
	}
	for _, color := range []string{s.BackgroundColor, s.ForegroundColor, s.AccentColor} {
		if color == "" || color[0] != '#' {
			return fmt.Errorf("invalid color %q (must be #rrggbb)", color)
		}
	}
	return nil
}

func ValidateConfig(path string) error {
	cfg, err := LoadConfig(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
