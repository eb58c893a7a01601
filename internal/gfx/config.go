package gfx

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/spriteloop/internal/core"
)

// WindowFlags is a bitset of window creation options.
type WindowFlags uint32

const (
	WindowFullscreen WindowFlags = 1 << iota
	WindowResizable
	WindowBorderless
	WindowHidden
	WindowHighPixelDensity
	WindowAlwaysOnTop
)

var windowFlagNames = []struct {
	flag WindowFlags
	name string
}{
	{WindowFullscreen, "fullscreen"},
	{WindowResizable, "resizable"},
	{WindowBorderless, "borderless"},
	{WindowHidden, "hidden"},
	{WindowHighPixelDensity, "high_pixel_density"},
	{WindowAlwaysOnTop, "always_on_top"},
}

// Has reports whether every bit of flag is set.
func (f WindowFlags) Has(flag WindowFlags) bool {
	return f&flag == flag
}

// Names returns the configuration names of the set flags.
func (f WindowFlags) Names() []string {
	var names []string
	for _, fn := range windowFlagNames {
		if f.Has(fn.flag) {
			names = append(names, fn.name)
		}
	}
	return names
}

// String joins the flag names with "|", or "none".
func (f WindowFlags) String() string {
	names := f.Names()
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// ParseWindowFlags converts configuration names into a bitset.
func ParseWindowFlags(names []string) (WindowFlags, error) {
	var flags WindowFlags
	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		found := false
		for _, fn := range windowFlagNames {
			if fn.name == name {
				flags |= fn.flag
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown window flag %q", raw)
		}
	}
	return flags, nil
}

// WindowConfig describes the window to create. It is consumed once by
// Manager.CreateWindow.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
	Flags  WindowFlags
}

// DefaultWindowConfig returns the built-in window settings.
func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Title:  "SDL Window",
		Width:  800,
		Height: 600,
	}
}

// RenderConfig is read on every render step.
type RenderConfig struct {
	ClearColor core.Color
	// RendererName selects a backend driver by name; empty picks the default.
	RendererName string
	VSync        bool
}

// DefaultRenderConfig returns the built-in render settings.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		ClearColor: core.ColorSkyBlue,
	}
}

// PresentationMode is how a logical resolution is mapped to the window.
type PresentationMode uint8

const (
	PresentationDisabled PresentationMode = iota
	PresentationLetterbox
	PresentationStretch
	PresentationOverscan
	PresentationIntegerScale
)

var presentationNames = map[PresentationMode]string{
	PresentationDisabled:     "disabled",
	PresentationLetterbox:    "letterbox",
	PresentationStretch:      "stretch",
	PresentationOverscan:     "overscan",
	PresentationIntegerScale: "integer_scale",
}

func (m PresentationMode) String() string {
	if name, ok := presentationNames[m]; ok {
		return name
	}
	return "unknown"
}

// ParsePresentationMode converts a configuration name into a mode.
func ParsePresentationMode(name string) (PresentationMode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for mode, n := range presentationNames {
		if n == name {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("unknown presentation mode %q", name)
}

// LogicalPresentation is a fixed virtual resolution the renderer maps onto the
// actual window size.
type LogicalPresentation struct {
	Width  int
	Height int
	Mode   PresentationMode
}

// DefaultLogicalPresentation returns 640x320 letterboxed.
func DefaultLogicalPresentation() LogicalPresentation {
	return LogicalPresentation{
		Width:  640,
		Height: 320,
		Mode:   PresentationLetterbox,
	}
}

// ScaleMode is the filter used when a texture is scaled.
type ScaleMode uint8

const (
	ScaleNearest ScaleMode = iota
	ScaleLinear
)

// TextureOptions tune a texture after it is loaded.
type TextureOptions struct {
	Scale ScaleMode
}
