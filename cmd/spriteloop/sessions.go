package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/spriteloop/internal/platform/tui"
	"github.com/vovakirdan/spriteloop/internal/storage"
)

var (
	flagLimit int
	flagPlain bool
	flagClear bool
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Show recent play sessions",
	Long: `Display the most recent play sessions, newest first.

On a terminal the list opens as a scrollable table; use --plain or pipe the
output for a text listing.

Examples:
  spriteloop sessions
  spriteloop sessions --limit 50
  spriteloop sessions --plain | less
  spriteloop sessions --clear`,
	Args: cobra.NoArgs,
	Run:  runSessions,
}

func init() {
	sessionsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of sessions to show")
	sessionsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a text listing instead of the interactive table")
	sessionsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded sessions")
}

func runSessions(cmd *cobra.Command, args []string) {
	if err := showSessions(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func showSessions() error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening sessions database: %w", err)
	}
	defer store.Close()

	total, err := store.Count()
	if err != nil {
		return fmt.Errorf("counting sessions: %w", err)
	}

	if flagClear {
		if err := store.Clear(); err != nil {
			return fmt.Errorf("clearing sessions: %w", err)
		}
		fmt.Printf("Deleted %d sessions.\n", total)
		return nil
	}

	sessions, err := store.Recent(flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving sessions: %w", err)
	}

	if flagPlain || !tui.IsTerminal(os.Stdout) {
		styles := tui.DefaultStyles()
		fmt.Print(styles.SessionsReport(sessions))
		fmt.Println(styles.Muted.Render(fmt.Sprintf("Showing %d of %d sessions", len(sessions), total)))
		return nil
	}

	width, height := tui.Size(os.Stdout, 80, 24)
	return tui.ShowSessions(sessions, width, height, tea.WithAltScreen())
}
