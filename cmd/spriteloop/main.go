// spriteloop is a minimal 2D sprite game on SDL.
//
// Usage:
//
//	spriteloop play          - Open the window and run the game
//	spriteloop check         - Smoke-test the SDL and SDL_image libraries
//	spriteloop drivers       - List video and render drivers
//	spriteloop sessions      - Show recent play sessions
//	spriteloop config        - Print the effective configuration
//
// Global flags:
//
//	--log-level <level>  - debug, info, warn, error (default: from config)
//	--db <path>          - Set database path (default: ~/.spriteloop/sessions.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/spriteloop/internal/logging"
	"github.com/vovakirdan/spriteloop/internal/storage"
)

var (
	// Global flags
	flagLogLevel string
	flagDBPath   string
	flagConfig   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spriteloop",
	Short: "spriteloop - a minimal SDL sprite game",
	Long: `spriteloop opens an SDL window and moves a single sprite left and
right with the arrow keys (or A/D).

Available commands:
  play      - Run the game
  check     - Smoke-test the multimedia libraries
  drivers   - List available video and render drivers
  sessions  - View recent play sessions
  config    - Print the effective configuration

Examples:
  spriteloop play
  spriteloop play --renderer opengl --fps 120
  spriteloop play --pick
  spriteloop check
  spriteloop sessions --limit 5`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default: from config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to sessions database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config file (.yaml or .toml)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(driversCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the stderr logger. --log-level wins over the config value.
func newLogger(configured string) *log.Logger {
	name := configured
	if flagLogLevel != "" {
		name = flagLogLevel
	}
	level, err := logging.ParseLevel(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logging.Stderr(level)
}
