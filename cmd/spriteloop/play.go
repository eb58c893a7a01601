package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spriteloop/internal/app"
	"github.com/vovakirdan/spriteloop/internal/assets"
	"github.com/vovakirdan/spriteloop/internal/config"
	"github.com/vovakirdan/spriteloop/internal/gfx"
	"github.com/vovakirdan/spriteloop/internal/platform/sdl"
	"github.com/vovakirdan/spriteloop/internal/platform/tui"
	"github.com/vovakirdan/spriteloop/internal/storage"
)

var (
	flagSprite   string
	flagRenderer string
	flagPick     bool
	flagFPS      int
	flagWatch    bool
	flagNoRecord bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run the game",
	Long: `Open the game window and run the frame loop.

Controls:
  Left/A     - Move left
  Right/D    - Move right
  Esc        - Quit

The sprite is loaded from ../Data/idle.png relative to the working
directory unless --sprite or assets.sprite in the config says otherwise.
When a config file is in use, edits to its render section are applied
while the game runs.

Examples:
  spriteloop play
  spriteloop play --sprite ./art/hero.png
  spriteloop play --renderer software --fps 30
  spriteloop play --pick
  spriteloop play --config ./spriteloop.toml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSprite, "sprite", "", "Path to the sprite image")
	playCmd.Flags().StringVar(&flagRenderer, "renderer", "", "Render driver name (see 'spriteloop drivers')")
	playCmd.Flags().BoolVar(&flagPick, "pick", false, "Choose the render driver interactively")
	playCmd.Flags().IntVar(&flagFPS, "fps", 0, "Target frames per second (0 = unpaced, default: from config)")
	playCmd.Flags().BoolVar(&flagWatch, "watch", true, "Reload render settings when the config file changes")
	playCmd.Flags().BoolVar(&flagNoRecord, "no-record", false, "Do not record the session")
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := play(cmd); err != nil {
		app.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

// play runs one game session. It returns instead of exiting so that the
// store and signal handler are released on every path.
func play(cmd *cobra.Command) error {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	if flagSprite != "" {
		cfg.Assets.Sprite = flagSprite
	}
	if flagRenderer != "" {
		cfg.Render.Renderer = flagRenderer
	}
	if cmd.Flags().Changed("fps") {
		cfg.Loop.TargetFPS = flagFPS
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := newLogger(cfg.Log.Level)
	logger.Debug("configuration loaded", "source", source)

	driver := sdl.New()

	if flagPick {
		if !tui.IsTerminal(os.Stdin) {
			return errors.New("--pick needs an interactive terminal")
		}
		name, chosen, err := tui.Pick(driver.RenderDrivers(), cfg.Render.Renderer)
		if err != nil {
			return err
		}
		if !chosen {
			return nil
		}
		cfg.Render.Renderer = name
	}

	spritePath, err := assets.Resolve(cfg.Assets.Sprite)
	if err != nil {
		return err
	}
	if info, inspectErr := assets.Inspect(spritePath); inspectErr == nil {
		logger.Debug("sprite", "path", info.Path, "format", info.Format, "width", info.Width, "height", info.Height)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store *storage.Store
	if !flagNoRecord {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("session history disabled", "error", err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	var updates <-chan gfx.RenderConfig
	if flagWatch && source != config.SourceEmbedded {
		reloads, watchErr := config.Watch(ctx, source, logger)
		if watchErr != nil {
			logger.Warn("config watch disabled", "error", watchErr)
		} else {
			updates = config.RenderUpdates(ctx, reloads)
		}
	}

	stats, err := app.Play(ctx, driver, app.PlayOptions{
		Config:        cfg,
		SpritePath:    spritePath,
		Logger:        logger,
		Store:         store,
		RenderUpdates: updates,
	})
	if err != nil {
		return err
	}

	styles := tui.DefaultStyles()
	fmt.Println(styles.Title.Render("Game over."))
	fmt.Println(styles.Field("Frames", fmt.Sprintf("%d", stats.Frames)))
	fmt.Println(styles.Field("Duration", stats.Duration.Round(10*time.Millisecond).String()))
	fmt.Println(styles.Field("Distance", fmt.Sprintf("%.1f px", stats.Distance)))
	if stats.RenderErrors > 0 {
		fmt.Println(styles.Field("Render errors", fmt.Sprintf("%d", stats.RenderErrors)))
	}
	return nil
}
