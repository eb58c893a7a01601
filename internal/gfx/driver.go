package gfx

import (
	"time"

	"github.com/vovakirdan/spriteloop/internal/core"
	"github.com/vovakirdan/spriteloop/internal/resource"
)

// Window is a native window.
type Window interface {
	resource.Resource
	Size() (int, int)
}

// Renderer is a native 2D renderer bound to a window.
type Renderer interface {
	resource.Resource
	Name() string
	SetDrawColor(c core.Color) error
	Clear() error
	Present() error
	SetLogicalPresentation(p LogicalPresentation) error
	// DrawTexture copies the whole texture into dst, mirrored horizontally
	// when flip is set.
	DrawTexture(t Texture, dst core.FRect, flip bool) error
}

// Texture is a GPU-side image owned by a renderer.
type Texture interface {
	resource.Resource
	Size() (int, int)
	SetScaleMode(m ScaleMode) error
}

// Surface is a CPU-side pixel buffer.
type Surface interface {
	resource.Resource
	Size() (int, int)
}

// Keyboard reports the held state of keys at the time of the call.
type Keyboard interface {
	Pressed(k Key) bool
}

// VersionInfo is a library version triple.
type VersionInfo struct {
	Major, Minor, Patch int
}

// Driver is the multimedia backend. Every call must happen on the goroutine
// that called Init.
type Driver interface {
	Init() error
	Quit()
	Version() VersionInfo
	ImageVersion() VersionInfo
	Revision() string
	// LastError returns the backend's most recent error detail, or "".
	LastError() string
	VideoDrivers() []string
	RenderDrivers() []string

	CreateWindow(cfg WindowConfig) (Window, error)
	CreateRenderer(w Window, cfg RenderConfig) (Renderer, error)
	LoadTexture(r Renderer, path string) (Texture, error)
	CreateSurface(width, height int) (Surface, error)

	// PollEvent returns the next pending event without blocking. The second
	// result is false when the queue is empty.
	PollEvent() (Event, bool)
	Keyboard() Keyboard
	Delay(d time.Duration)
	ShowErrorBox(title, message string, w Window) error
}
