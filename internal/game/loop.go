package game

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spriteloop/internal/core"
	"github.com/vovakirdan/spriteloop/internal/gfx"
	"github.com/vovakirdan/spriteloop/internal/resource"
)

// DefaultMaxStep caps a single frame's delta so stalls do not teleport the
// player.
const DefaultMaxStep = time.Second / 32

// Config tunes the loop.
type Config struct {
	Render       gfx.RenderConfig
	Presentation gfx.LogicalPresentation
	// Speed is the player's horizontal velocity in logical pixels per second.
	Speed   float64
	PlayerY float64
	MaxStep time.Duration
	// TargetFPS paces Run. 0 runs unpaced.
	TargetFPS int
}

// DefaultConfig returns the stock loop settings.
func DefaultConfig() Config {
	return Config{
		Render:       gfx.DefaultRenderConfig(),
		Presentation: gfx.DefaultLogicalPresentation(),
		Speed:        100,
		MaxStep:      DefaultMaxStep,
		TargetFPS:    60,
	}
}

// Handler receives every polled event the loop did not consume as a stop.
type Handler func(ev gfx.Event, s *State)

// Stats summarises a finished run.
type Stats struct {
	Frames       uint64
	Duration     time.Duration
	Distance     float64
	RenderErrors int
	ExitReason   string
}

// Exit reasons recorded in Stats.
const (
	ExitQuit     = "quit"
	ExitEscape   = "escape"
	ExitCanceled = "canceled"
	ExitStopped  = "stopped"
)

// Loop runs the poll, update and render cycle for one sprite.
type Loop struct {
	driver   gfx.Driver
	logger   *log.Logger
	state    *State
	renderer *resource.Ref[gfx.Renderer]
	sprite   *resource.Owned[gfx.Texture]
	cfg      Config
	clock    *Clock
	handler  Handler
	updates  <-chan gfx.RenderConfig

	renderErrors int
	exitReason   string
}

// Option configures a Loop.
type Option func(*Loop)

// WithHandler installs an event hook.
func WithHandler(h Handler) Option {
	return func(l *Loop) { l.handler = h }
}

// WithClock replaces the wall clock, mostly for tests.
func WithClock(c *Clock) Option {
	return func(l *Loop) { l.clock = c }
}

// WithRenderUpdates makes Run apply render settings received on ch between
// iterations.
func WithRenderUpdates(ch <-chan gfx.RenderConfig) Option {
	return func(l *Loop) { l.updates = ch }
}

// NewLoop builds a loop over state. The loop holds its own reference to the
// renderer and takes ownership of sprite, which may be nil.
func NewLoop(d gfx.Driver, logger *log.Logger, state *State, sprite *resource.Owned[gfx.Texture], cfg Config, opts ...Option) *Loop {
	if cfg.MaxStep <= 0 {
		cfg.MaxStep = DefaultMaxStep
	}
	l := &Loop{
		driver:   d,
		logger:   logger,
		state:    state,
		renderer: state.Renderer.Clone(),
		sprite:   sprite.Move(),
		cfg:      cfg,
		clock:    NewClock(nil),
	}
	for _, opt := range opts {
		opt(l)
	}

	state.Player.Y = cfg.PlayerY
	state.Logical = cfg.Presentation
	if r, ok := l.renderer.Get(); ok {
		if err := r.SetLogicalPresentation(cfg.Presentation); err != nil {
			l.logger.Warn("logical presentation not applied", "mode", cfg.Presentation.Mode, "error", err)
		} else {
			l.logger.Debug("logical presentation applied",
				"width", cfg.Presentation.Width, "height", cfg.Presentation.Height, "mode", cfg.Presentation.Mode)
		}
	}
	return l
}

// State returns the shared application state.
func (l *Loop) State() *State {
	return l.state
}

// Config returns the loop's current settings.
func (l *Loop) Config() Config {
	return l.cfg
}

// Stop ends the loop. Only the first reason is kept.
func (l *Loop) Stop(reason string) {
	if !l.state.Running() {
		return
	}
	l.state.Status = StatusStopped
	l.exitReason = reason
	l.logger.Debug("loop stopping", "reason", reason)
}

// Step runs one iteration and reports whether the loop is still running.
// An iteration that sees a stop while polling returns without rendering.
func (l *Loop) Step() bool {
	if !l.state.Running() {
		return false
	}
	if !l.clock.started {
		l.clock.Start()
	}

	l.pollEvents()
	if !l.state.Running() {
		return false
	}

	dt := ClampStep(l.clock.Tick(), l.cfg.MaxStep)
	l.state.Delta = dt

	kb := l.driver.Keyboard()
	dir := core.DirectionFrom(
		kb.Pressed(gfx.KeyLeft) || kb.Pressed(gfx.KeyA),
		kb.Pressed(gfx.KeyRight) || kb.Pressed(gfx.KeyD),
	)
	l.state.Player.Move(dir, l.cfg.Speed, dt)

	l.render()
	l.state.Frames++
	return true
}

// Run iterates until the loop stops or ctx is done, pacing each iteration to
// 1/TargetFPS.
func (l *Loop) Run(ctx context.Context) Stats {
	l.clock.Start()
	budget := frameBudget(l.cfg.TargetFPS)
	l.logger.Info("loop started", "target_fps", l.cfg.TargetFPS, "max_step", l.cfg.MaxStep)

	for l.state.Running() {
		if ctx.Err() != nil {
			l.Stop(ExitCanceled)
			break
		}
		l.applyUpdates()

		if !l.Step() {
			break
		}
		if budget > 0 {
			if spent := l.clock.SinceTick(); spent < budget {
				l.driver.Delay(budget - spent)
			}
		}
	}

	stats := l.Stats()
	l.logger.Info("loop finished", "frames", stats.Frames, "duration", stats.Duration, "reason", stats.ExitReason)
	return stats
}

// Stats reports the run so far.
func (l *Loop) Stats() Stats {
	reason := l.exitReason
	if reason == "" && !l.state.Running() {
		reason = ExitStopped
	}
	return Stats{
		Frames:       l.state.Frames,
		Duration:     l.clock.Elapsed(),
		Distance:     l.state.Player.Distance,
		RenderErrors: l.renderErrors,
		ExitReason:   reason,
	}
}

// Close releases the sprite and every renderer and window reference, in that
// order. The library itself is closed by its owner afterwards.
func (l *Loop) Close() {
	l.sprite.Release()
	l.renderer.Release()
	l.state.Release()
}

func (l *Loop) pollEvents() {
	for {
		ev, ok := l.driver.PollEvent()
		if !ok {
			return
		}
		l.handleEvent(ev)
	}
}

func (l *Loop) handleEvent(ev gfx.Event) {
	switch ev.Type {
	case gfx.EventQuit:
		l.Stop(ExitQuit)
		return
	case gfx.EventKeyDown:
		if ev.Key == gfx.KeyEscape {
			l.Stop(ExitEscape)
			return
		}
	case gfx.EventWindowResized:
		l.state.Logical.Width = ev.Width
		l.state.Logical.Height = ev.Height
	}
	if l.handler != nil {
		l.handler(ev, l.state)
	}
}

func (l *Loop) render() {
	r := l.renderer.Value()
	if err := gfx.RenderStep(r, l.cfg.Render.ClearColor, l.drawSprite); err != nil {
		l.renderErrors++
		l.logger.Debug("render step failed", "error", err)
	}
}

func (l *Loop) drawSprite(r gfx.Renderer) error {
	tex, ok := l.sprite.Get()
	if !ok {
		return nil
	}
	w, h := tex.Size()
	p := l.state.Player
	return r.DrawTexture(tex, core.NewFRect(p.X, p.Y, float64(w), float64(h)), p.Facing.Mirrored())
}

// applyUpdates drains pending render settings without blocking.
func (l *Loop) applyUpdates() {
	for l.updates != nil {
		select {
		case cfg, ok := <-l.updates:
			if !ok {
				l.updates = nil
				return
			}
			l.cfg.Render = cfg
			l.logger.Info("render config reloaded", "clear_color", cfg.ClearColor)
		default:
			return
		}
	}
}

func frameBudget(fps int) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Second / time.Duration(fps)
}
