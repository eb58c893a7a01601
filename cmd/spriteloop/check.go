package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spriteloop/internal/app"
	"github.com/vovakirdan/spriteloop/internal/platform/sdl"
	"github.com/vovakirdan/spriteloop/internal/platform/tui"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Smoke-test the multimedia libraries",
	Long: `Initialize SDL and SDL_image, report their versions and video drivers,
open a window with a renderer, clear it to red once, and allocate a surface.

Exits with status 1 if any step fails.`,
	Args: cobra.NoArgs,
	Run:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) {
	logger := newLogger("warn")
	styles := tui.DefaultStyles()

	report := app.Check(sdl.New(), logger)

	fmt.Println(styles.Title.Render("Library check"))
	fmt.Println()
	for _, step := range report.Steps {
		line := styles.Check(step.Name, step.Err)
		if step.Err == nil && step.Detail != "" {
			line += styles.Muted.Render("  " + step.Detail)
		}
		fmt.Println(line)
	}

	if report.Failed() {
		os.Exit(1)
	}
}
