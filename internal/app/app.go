// Package app wires the graphics layer, the game loop and session storage
// into the commands the CLI exposes.
package app

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spriteloop/internal/config"
	"github.com/vovakirdan/spriteloop/internal/game"
	"github.com/vovakirdan/spriteloop/internal/gfx"
	"github.com/vovakirdan/spriteloop/internal/storage"
)

// InitErrorTitle is the message box title shown when the library cannot start.
const InitErrorTitle = "SDL Init Error"

// PlayOptions configures one run of the game.
type PlayOptions struct {
	Config     config.Config
	SpritePath string
	Logger     *log.Logger
	// Store records the session when non-nil.
	Store *storage.Store
	// RenderUpdates carries live render settings, may be nil.
	RenderUpdates <-chan gfx.RenderConfig
	Handler       game.Handler
	Now           func() time.Time
}

// Play initializes the backend, creates the window, renderer and sprite
// texture, and runs the loop until it stops or ctx is done. Any startup
// failure is returned after everything acquired so far has been released.
func Play(ctx context.Context, d gfx.Driver, opts PlayOptions) (game.Stats, error) {
	logger := opts.Logger
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	cfg := opts.Config

	m, err := gfx.Initialize(d, logger)
	if err != nil {
		gfx.ShowFatal(d, InitErrorTitle, err)
		return game.Stats{}, err
	}
	defer m.Close()

	win, err := m.CreateWindow(cfg.WindowConfig())
	if err != nil {
		return game.Stats{}, err
	}

	renderCfg := cfg.RenderConfig()
	ren, err := m.CreateRenderer(win.Value(), renderCfg)
	if err != nil {
		win.Release()
		return game.Stats{}, err
	}
	rendererName := ren.Value().Name()

	state := game.NewState(win, ren, cfg.LogicalPresentation())

	tex, err := m.CreateTexture(state.Renderer.Value(), opts.SpritePath, gfx.TextureOptions{Scale: gfx.ScaleNearest})
	if err != nil {
		state.Release()
		return game.Stats{}, err
	}

	loopOpts := []game.Option{game.WithClock(game.NewClock(now))}
	if opts.RenderUpdates != nil {
		loopOpts = append(loopOpts, game.WithRenderUpdates(opts.RenderUpdates))
	}
	if opts.Handler != nil {
		loopOpts = append(loopOpts, game.WithHandler(opts.Handler))
	}
	loop := game.NewLoop(d, logger, state, tex, cfg.LoopConfig(), loopOpts...)
	defer loop.Close()

	logger.Info("press ESC or close the window to quit")
	session := storage.NewSession(now())
	stats := loop.Run(ctx)

	if opts.Store != nil {
		session.Duration = stats.Duration
		session.Frames = stats.Frames
		session.Distance = stats.Distance
		session.Renderer = rendererName
		session.ExitReason = stats.ExitReason
		if _, err := opts.Store.Save(session); err != nil {
			logger.Warn("session not recorded", "error", err)
		}
	}
	return stats, nil
}
