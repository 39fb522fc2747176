package main

import (
	"log"
	"os"

	"github.com/gotk3/gotk3/gtk"

	"github.com/supercut-tools/superlauncher/internal/config"
	"github.com/supercut-tools/superlauncher/internal/keygen"
	"github.com/supercut-tools/superlauncher/internal/ui"
)

// Default signing secret, overridable so release builds can carry their
// own via SUPERCUT_KEYGEN_SECRET.
const builtinSecret = "supercut-keygen-2024"

func main() {
	// Set up logging to file
	logFile, err := os.OpenFile("superkeygen.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err == nil {
		log.SetOutput(logFile)
		defer logFile.Close()
	}

	secret := os.Getenv("SUPERCUT_KEYGEN_SECRET")
	if secret == "" {
		secret = builtinSecret
	}

	cfg, err := config.LoadAndValidateConfig(config.GetConfigPath())
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		cfg = &config.DefaultConfig
	}

	gtk.Init(nil)
	ui.SetupStyles(cfg)
	ui.LoadCustomCSS(ui.CustomCSSPath())

	win, err := ui.NewKeygenWindow(keygen.NewGenerator(secret))
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	win.Show()

	gtk.Main()
}
