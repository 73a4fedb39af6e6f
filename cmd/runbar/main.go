package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"runbar/internal/config"
	"runbar/internal/index"
	"runbar/internal/launch"
	"runbar/internal/ui"
)

func main() {
	// Parse command line arguments
	var debug bool
	var configPath string
	flag.BoolVar(&debug, "debug", false, "write a debug log under the config directory")
	flag.StringVar(&configPath, "config", "", "path to an alternative config.toml")
	flag.Parse()

	setupLogging(debug)

	// Load configuration
	configSvc := config.NewConfigService()
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = configSvc.LoadFromPath(configPath)
	} else {
		cfg, err = configSvc.Load()
	}
	if err != nil {
		log.Printf("Error loading config: %v", err)
		// Use default config
		cfg = config.DefaultConfig()
	}

	// Build the command index once, synchronously, before the UI is
	// shown. It is read-only for the rest of the process.
	ix := index.Build()
	log.Printf("Indexed %d commands", ix.Len())

	dispatcher := launch.New(cfg.Exec.Shell)
	model := ui.New(cfg, ix, dispatcher)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging sends the log to a file in debug mode and discards it
// otherwise; a launcher owns the terminal, so nothing may print there.
func setupLogging(debug bool) {
	if !debug {
		log.SetOutput(io.Discard)
		return
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Printf("Could not resolve config dir: %v", err)
		return
	}
	dir := filepath.Join(configDir, "runbar")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("Could not create log dir: %v", err)
		return
	}
	logFile, err := os.OpenFile(filepath.Join(dir, "runbar.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
		return
	}
	log.SetOutput(logFile)
}
