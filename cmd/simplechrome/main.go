package main

import (
	"log"
	"os"

	"github.com/gotk3/gotk3/gtk"

	"github.com/supercut-tools/superlauncher/internal/config"
	"github.com/supercut-tools/superlauncher/internal/profiles"
	"github.com/supercut-tools/superlauncher/internal/ui"
)

func main() {
	// Set up logging to file
	logFile, err := os.OpenFile("simplechrome.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err == nil {
		log.SetOutput(logFile)
		defer logFile.Close()
	}

	cfg, err := config.LoadAndValidateConfig(config.GetConfigPath())
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		cfg = &config.DefaultConfig
	}

	gtk.Init(nil)
	ui.SetupStyles(cfg)
	ui.LoadCustomCSS(ui.CustomCSSPath())

	chromeDir := cfg.Profiles.ChromeUserDataDir
	if chromeDir == "" {
		chromeDir = profiles.ChromeUserDataDir()
	}

	st := profiles.New(profiles.DefaultPath())
	scanner := profiles.NewScannerAt(chromeDir)
	validator := profiles.NewValidatorAt(chromeDir)

	win, err := ui.NewProfileWindow(cfg, st, scanner, validator)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	win.Show()

	gtk.Main()
}
