package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	flagConfig string
	flagSpeed  int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run the simulator",
	Long: `Run the Game of Life simulator full screen in the current terminal.

Controls:
  Mouse        - Click or drag to paint/erase cells (while paused)
  Space/P      - Run / pause
  C            - Clear the grid
  R            - Randomize the grid
  +/-          - Faster / slower
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Examples:
  life play
  life play --speed 200
  life play --config ./my-life.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().IntVar(&flagSpeed, "speed", 0, "Initial tick interval in ms (100-2000, 0 = config default)")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagSpeed > 0 {
		cfg.Simulation.DefaultSpeedMs = flagSpeed
	}

	// Get terminal size; the TUI receives resize events afterwards
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open session storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open session database: %v\n", err)
		// Continue without storage - the simulator still works
		store = nil
	}

	// The terminal is busy drawing, so diagnostics go to a log file
	logger := diagnosticsLogger()

	runErr := tui.Run(cfg, store, width, height, logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running simulator: %v\n", runErr)
		os.Exit(1)
	}
}

// diagnosticsLogger returns a logger writing to ~/.life/life.log, or a
// discarding logger if the file cannot be opened.
func diagnosticsLogger() *log.Logger {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	dir := filepath.Join(home, ".life")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil
	}
	f, err := os.OpenFile(filepath.Join(dir, "life.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil
	}
	return log.NewWithOptions(f, log.Options{ReportTimestamp: true, Prefix: "life"})
}
