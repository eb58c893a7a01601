package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spriteloop/internal/platform/sdl"
	"github.com/vovakirdan/spriteloop/internal/platform/tui"
)

var driversCmd = &cobra.Command{
	Use:   "drivers",
	Short: "List video and render drivers",
	Long: `List the video and render drivers compiled into the SDL library.
Render driver names can be passed to 'spriteloop play --renderer'.`,
	Args: cobra.NoArgs,
	Run:  runDrivers,
}

func runDrivers(cmd *cobra.Command, args []string) {
	d := sdl.New()
	styles := tui.DefaultStyles()

	fmt.Print(styles.List("Video drivers", d.VideoDrivers()))
	fmt.Println()
	fmt.Print(styles.List("Render drivers", d.RenderDrivers()))
}
