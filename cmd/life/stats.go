package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	flagStatsLimit  int
	flagInteractive bool
	flagStatsClear  bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show session statistics",
	Long: `Display recent simulator sessions and aggregate totals.

Examples:
  life stats
  life stats --limit 25
  life stats --interactive
  life stats --clear`,
	Run: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagStatsLimit, "limit", 10, "Number of sessions to show")
	statsCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse sessions in a scrollable table")
	statsCmd.Flags().BoolVar(&flagStatsClear, "clear", false, "Delete the whole session log")
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagStatsClear {
		if err := store.ClearSessions(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing sessions: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Session log cleared.")
		return
	}

	if flagInteractive {
		height := 24
		if _, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			height = h
		}
		if err := tui.RunStats(store, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing stats: %v\n", err)
			os.Exit(1)
		}
		return
	}

	sessions, err := store.RecentSessions(flagStatsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent sessions")
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'life play' to start the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-16s  %-9s  %-7s  %-6s  %-8s  %s\n", "Started", "Duration", "Gens", "Peak", "Painted", "Grid")
	fmt.Printf("  %-16s  %-9s  %-7s  %-6s  %-8s  %s\n", "-------", "--------", "----", "----", "-------", "----")

	for _, e := range sessions {
		fmt.Printf("  %-16s  %-9s  %-7d  %-6d  %-8d  %dx%d\n",
			e.StartedAt.Format("2006-01-02 15:04"),
			(time.Duration(e.DurationSecs) * time.Second).String(),
			e.Generations,
			e.PeakPopulation,
			e.CellsPainted,
			e.Rows,
			e.Cols,
		)
	}

	totals, err := store.GetTotals()
	if err == nil {
		fmt.Println()
		fmt.Printf("Total: %d sessions, %d generations, peak population %d\n",
			totals.Sessions, totals.Generations, totals.PeakPopulation)
	}
}
