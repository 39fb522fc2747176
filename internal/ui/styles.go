// Package ui holds the GTK windows and dialogs of the suite.
package ui

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gotk3/gotk3/gdk"
	"github.com/gotk3/gotk3/gtk"

	"github.com/supercut-tools/superlauncher/internal/config"
)

const stylesTemplate = `
* {
    font-family: "%[4]s";
    font-size: %[5]dpt;
}

window {
    background-color: %[1]s;
    color: %[2]s;
}

#launcher-window, #profile-window, #keygen-window {
    background-color: %[1]s;
    color: %[2]s;
}

#search-entry {
    background-color: %[1]s;
    color: %[2]s;
    padding: 6px;
    border: 1px solid %[3]s;
    border-radius: 4px;
}

#search-entry:focus {
    border: 1px solid %[2]s;
}

.tile {
    background-color: transparent;
    border-radius: 6px;
    padding: 8px;
}

.tile:hover {
    background-color: %[3]s;
}

.tile-caption {
    color: %[2]s;
}

.flagged-deleted {
    color: #cc3333;
}

.key-display {
    font-family: monospace;
    font-size: %[5]dpt;
    padding: 8px;
}
`

// SetupStyles installs the application CSS derived from the styling config.
func SetupStyles(cfg *config.Config) {
	screen, err := gdk.ScreenGetDefault()
	if err != nil || screen == nil {
		log.Printf("Warning: Failed to get default screen: %v", err)
		return
	}

	css := fmt.Sprintf(stylesTemplate,
		cfg.Styling.BackgroundColor,
		cfg.Styling.ForegroundColor,
		cfg.Styling.AccentColor,
		cfg.Styling.FontFamily,
		cfg.Styling.FontSize,
	)

	provider, _ := gtk.CssProviderNew()
	if err := provider.LoadFromData(css); err != nil {
		log.Printf("Warning: Failed to load styles: %v", err)
		return
	}

	gtk.AddProviderForScreen(screen, provider, gtk.STYLE_PROVIDER_PRIORITY_APPLICATION)
}

// CustomCSSPath is the user stylesheet, next to settings.toml.
func CustomCSSPath() string {
	return filepath.Join(filepath.Dir(config.GetConfigPath()), "custom.css")
}

// LoadCustomCSS layers a user stylesheet on top of the built-in one.
func LoadCustomCSS(path string) {
	screen, err := gdk.ScreenGetDefault()
	if err != nil || screen == nil {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	provider, _ := gtk.CssProviderNew()
	provider.LoadFromData(string(data))
	gtk.AddProviderForScreen(screen, provider, gtk.STYLE_PROVIDER_PRIORITY_USER)
}
