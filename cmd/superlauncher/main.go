package main

import (
	"log"
	"os"

	"github.com/gotk3/gotk3/gtk"

	"github.com/supercut-tools/superlauncher/internal/config"
	"github.com/supercut-tools/superlauncher/internal/icon"
	"github.com/supercut-tools/superlauncher/internal/launcher"
	"github.com/supercut-tools/superlauncher/internal/store"
	"github.com/supercut-tools/superlauncher/internal/ui"
)

func main() {
	// Set up logging to file
	logFile, err := os.OpenFile("superlauncher.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err == nil {
		log.SetOutput(logFile)
		defer logFile.Close()
	}

	cfgPath := config.GetConfigPath()
	cfg, err := config.LoadAndValidateConfig(cfgPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		cfg = &config.DefaultConfig
	}

	// First run: write the defaults so users have a file to edit.
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		if err := config.SaveConfig(cfg, cfgPath); err != nil {
			log.Printf("Failed to write default config: %v", err)
		}
	}

	gtk.Init(nil)
	ui.SetupStyles(cfg)
	ui.LoadCustomCSS(ui.CustomCSSPath())

	st := store.New(store.DefaultPath())
	doc := st.Load()

	// Per-user icon quality settings in config.json override the TOML
	// defaults when present.
	settings := icon.QualitySettings{
		UseHighQualityScaling: cfg.Launcher.Icons.HighQualityScaling,
		UseDPIAwareScaling:    cfg.Launcher.Icons.DPIAwareScaling,
		PreferredSourceSizes:  cfg.Launcher.Icons.PreferredSourceSizes,
		FallbackScalingMethod: cfg.Launcher.Icons.FallbackScalingMethod,
		CacheEnabled:          true,
		CacheSizeLimit:        cfg.Launcher.Icons.CacheSize,
	}
	if doc.IconQuality != nil {
		settings = *doc.IconQuality
	}

	extractor := icon.NewExtractor(settings)
	icons, err := ui.NewPixbufCache(extractor, cfg.Launcher.Icons.CacheSize)
	if err != nil {
		log.Fatalf("Failed to create icon cache: %v", err)
	}

	grid := launcher.NewGrid(st)

	win, err := ui.NewLauncherWindow(cfg, st, grid, icons)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	win.Show()

	gtk.Main()
}
