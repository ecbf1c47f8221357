// life is a terminal Game of Life simulator.
//
// Usage:
//
//	life play                - Run the simulator in the current terminal
//	life serve               - Start SSH server for remote sessions
//	life stats               - Show recent session statistics
//
// Global flags:
//
//	--db <path>     - Set database path (default: ~/.life/sessions.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagDBPath string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "life",
	Short: "Conway's Game of Life in your terminal",
	Long: `life is a terminal simulator for Conway's Game of Life.

Paint cells with the mouse while paused, then let the simulation run.
Dragging from a dead cell paints live cells; dragging from a live cell
erases. The grid sizes itself to the terminal and resets on resize.

Available commands:
  play     - Run the simulator in the current terminal
  serve    - Start SSH server for remote sessions
  stats    - View the session log

Examples:
  life play
  life play --speed 200
  life serve --ssh :2222
  life stats --limit 20`,
	// Bare "life" behaves like "life play".
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.life/sessions.db", "Path to session database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
}
