// Package config provides YAML and TOML configuration loading for spriteloop,
// with embedded defaults and a file watcher for live render settings.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spriteloop/internal/core"
	"github.com/vovakirdan/spriteloop/internal/game"
	"github.com/vovakirdan/spriteloop/internal/gfx"
)

// Config is the full application configuration.
type Config struct {
	Window       WindowSection       `yaml:"window" toml:"window"`
	Render       RenderSection       `yaml:"render" toml:"render"`
	Presentation PresentationSection `yaml:"presentation" toml:"presentation"`
	Player       PlayerSection       `yaml:"player" toml:"player"`
	Loop         LoopSection         `yaml:"loop" toml:"loop"`
	Assets       AssetsSection       `yaml:"assets" toml:"assets"`
	Log          LogSection          `yaml:"log" toml:"log"`
}

// WindowSection configures the main window.
type WindowSection struct {
	Title  string   `yaml:"title" toml:"title"`
	Width  int      `yaml:"width" toml:"width"`
	Height int      `yaml:"height" toml:"height"`
	Flags  []string `yaml:"flags" toml:"flags"`
}

// RenderSection configures the renderer and frame clearing.
type RenderSection struct {
	ClearColor []int  `yaml:"clear_color" toml:"clear_color"` // r, g, b, a
	Renderer   string `yaml:"renderer" toml:"renderer"`
	VSync      bool   `yaml:"vsync" toml:"vsync"`
}

// PresentationSection configures the logical render size.
type PresentationSection struct {
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
	Mode   string `yaml:"mode" toml:"mode"`
}

// PlayerSection configures the sprite's movement.
type PlayerSection struct {
	Speed float64 `yaml:"speed" toml:"speed"`
	Y     float64 `yaml:"y" toml:"y"`
}

// LoopSection configures frame pacing.
type LoopSection struct {
	TargetFPS int     `yaml:"target_fps" toml:"target_fps"`
	MaxStep   float64 `yaml:"max_step" toml:"max_step"` // seconds
}

// AssetsSection locates game assets.
type AssetsSection struct {
	Sprite string `yaml:"sprite" toml:"sprite"`
}

// LogSection configures diagnostics.
type LogSection struct {
	Level string `yaml:"level" toml:"level"`
}

// Default returns the built-in configuration. It matches the embedded
// defaults file.
func Default() Config {
	return Config{
		Window: WindowSection{
			Title:  "spriteloop",
			Width:  1024,
			Height: 768,
			Flags:  []string{"resizable"},
		},
		Render: RenderSection{
			ClearColor: []int{0, 0, 100, 0},
			VSync:      true,
		},
		Presentation: PresentationSection{
			Width:  640,
			Height: 320,
			Mode:   "letterbox",
		},
		Player: PlayerSection{
			Speed: 100,
		},
		Loop: LoopSection{
			TargetFPS: 60,
			MaxStep:   game.DefaultMaxStep.Seconds(),
		},
		Log: LogSection{
			Level: "info",
		},
	}
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if _, err := gfx.ParseWindowFlags(c.Window.Flags); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.clearColor(); err != nil {
		errs = append(errs, err)
	}
	if c.Presentation.Width <= 0 || c.Presentation.Height <= 0 {
		errs = append(errs, fmt.Errorf("logical size must be positive, got %dx%d", c.Presentation.Width, c.Presentation.Height))
	}
	if _, err := gfx.ParsePresentationMode(c.Presentation.Mode); err != nil {
		errs = append(errs, err)
	}
	if c.Player.Speed < 0 {
		errs = append(errs, fmt.Errorf("player speed must not be negative, got %v", c.Player.Speed))
	}
	if c.Loop.TargetFPS < 0 {
		errs = append(errs, fmt.Errorf("target fps must not be negative, got %d", c.Loop.TargetFPS))
	}
	if c.Loop.MaxStep <= 0 {
		errs = append(errs, fmt.Errorf("max step must be positive, got %v", c.Loop.MaxStep))
	}
	if c.Log.Level != "" {
		if _, err := log.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
			errs = append(errs, fmt.Errorf("log level: %w", err))
		}
	}

	return errors.Join(errs...)
}

func (c Config) clearColor() (core.Color, error) {
	ch := c.Render.ClearColor
	if len(ch) != 4 {
		return core.Color{}, fmt.Errorf("clear color needs 4 channels, got %d", len(ch))
	}
	var out [4]uint8
	for i, v := range ch {
		if v < 0 || v > 255 {
			return core.Color{}, fmt.Errorf("clear color channel %d out of range: %d", i, v)
		}
		out[i] = uint8(v)
	}
	return core.ColorFromChannels(out), nil
}

// WindowConfig converts the window section. Call Validate first.
func (c Config) WindowConfig() gfx.WindowConfig {
	flags, _ := gfx.ParseWindowFlags(c.Window.Flags)
	return gfx.WindowConfig{
		Title:  c.Window.Title,
		Width:  c.Window.Width,
		Height: c.Window.Height,
		Flags:  flags,
	}
}

// RenderConfig converts the render section. Call Validate first.
func (c Config) RenderConfig() gfx.RenderConfig {
	color, err := c.clearColor()
	if err != nil {
		color = gfx.DefaultRenderConfig().ClearColor
	}
	return gfx.RenderConfig{
		ClearColor:   color,
		RendererName: c.Render.Renderer,
		VSync:        c.Render.VSync,
	}
}

// LogicalPresentation converts the presentation section. Call Validate first.
func (c Config) LogicalPresentation() gfx.LogicalPresentation {
	mode, err := gfx.ParsePresentationMode(c.Presentation.Mode)
	if err != nil {
		mode = gfx.PresentationLetterbox
	}
	return gfx.LogicalPresentation{
		Width:  c.Presentation.Width,
		Height: c.Presentation.Height,
		Mode:   mode,
	}
}

// LoopConfig builds the game loop settings.
func (c Config) LoopConfig() game.Config {
	return game.Config{
		Render:       c.RenderConfig(),
		Presentation: c.LogicalPresentation(),
		Speed:        c.Player.Speed,
		PlayerY:      c.Player.Y,
		MaxStep:      time.Duration(c.Loop.MaxStep * float64(time.Second)),
		TargetFPS:    c.Loop.TargetFPS,
	}
}
