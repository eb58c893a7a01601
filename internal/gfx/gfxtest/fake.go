// Package gfxtest provides an in-memory gfx.Driver for tests. It records every
// call so tests can assert on resource lifetimes and draw order without a
// display.
package gfxtest

import (
	"errors"
	"time"

	"github.com/vovakirdan/spriteloop/internal/core"
	"github.com/vovakirdan/spriteloop/internal/gfx"
	"github.com/vovakirdan/spriteloop/internal/resource"
)

// ErrFake is returned by the fake when a failure is scripted.
var ErrFake = errors.New("fake backend failure")

// Driver is a scriptable fake backend.
type Driver struct {
	// Failure switches.
	FailInit     bool
	FailWindow   bool
	NilWindow    bool
	FailRenderer bool
	FailTexture  bool
	PanicTexture bool

	// Events is the queue returned by PollEvent, front first.
	Events []gfx.Event
	// Held is the keyboard state.
	Held map[gfx.Key]bool

	InitCalls    int
	QuitCalls    int
	LoadCalls    int
	PollCalls    int
	Delays       []time.Duration
	MessageBoxes []string

	Windows   []*Window
	Renderers []*Renderer
	Textures  []*Texture
	Surfaces  []*Surface

	// Destroyed records resource kinds in destruction order.
	Destroyed []resource.Kind

	// OnPoll is called at the start of every PollEvent, letting tests inject
	// events between frames.
	OnPoll func(d *Driver)

	lastError string
}

var _ gfx.Driver = (*Driver)(nil)

// New returns a fake driver with an empty event queue and no keys held.
func New() *Driver {
	return &Driver{Held: make(map[gfx.Key]bool)}
}

func (d *Driver) Init() error {
	d.InitCalls++
	if d.FailInit {
		d.lastError = "no video device"
		return ErrFake
	}
	return nil
}

func (d *Driver) Quit() { d.QuitCalls++ }

func (d *Driver) Version() gfx.VersionInfo      { return gfx.VersionInfo{Major: 2, Minor: 30, Patch: 0} }
func (d *Driver) ImageVersion() gfx.VersionInfo { return gfx.VersionInfo{Major: 2, Minor: 8, Patch: 0} }
func (d *Driver) Revision() string              { return "fake-rev" }
func (d *Driver) LastError() string             { return d.lastError }
func (d *Driver) VideoDrivers() []string        { return []string{"dummy"} }
func (d *Driver) RenderDrivers() []string       { return []string{"software", "opengl"} }

func (d *Driver) CreateWindow(cfg gfx.WindowConfig) (gfx.Window, error) {
	if d.FailWindow {
		d.lastError = "window system unavailable"
		return nil, ErrFake
	}
	if d.NilWindow {
		d.lastError = "null window"
		var w *Window
		return w, nil
	}
	w := &Window{driver: d, Config: cfg, W: cfg.Width, H: cfg.Height}
	d.Windows = append(d.Windows, w)
	return w, nil
}

func (d *Driver) CreateRenderer(w gfx.Window, cfg gfx.RenderConfig) (gfx.Renderer, error) {
	if d.FailRenderer {
		d.lastError = "no render driver"
		return nil, ErrFake
	}
	name := cfg.RendererName
	if name == "" {
		name = "software"
	}
	r := &Renderer{driver: d, name: name}
	d.Renderers = append(d.Renderers, r)
	return r, nil
}

func (d *Driver) LoadTexture(r gfx.Renderer, path string) (gfx.Texture, error) {
	d.LoadCalls++
	if d.PanicTexture {
		panic("decoder crashed")
	}
	if d.FailTexture {
		d.lastError = "unsupported image format"
		return nil, ErrFake
	}
	t := &Texture{driver: d, Path: path, W: 32, H: 32}
	d.Textures = append(d.Textures, t)
	return t, nil
}

func (d *Driver) CreateSurface(width, height int) (gfx.Surface, error) {
	s := &Surface{driver: d, W: width, H: height}
	d.Surfaces = append(d.Surfaces, s)
	return s, nil
}

func (d *Driver) PollEvent() (gfx.Event, bool) {
	d.PollCalls++
	if d.OnPoll != nil {
		hook := d.OnPoll
		d.OnPoll = nil
		hook(d)
	}
	if len(d.Events) == 0 {
		return gfx.Event{}, false
	}
	ev := d.Events[0]
	d.Events = d.Events[1:]
	return ev, true
}

// Push appends events to the queue.
func (d *Driver) Push(events ...gfx.Event) {
	d.Events = append(d.Events, events...)
}

func (d *Driver) Keyboard() gfx.Keyboard { return keyboard(d.Held) }

func (d *Driver) Delay(dur time.Duration) { d.Delays = append(d.Delays, dur) }

func (d *Driver) ShowErrorBox(title, message string, w gfx.Window) error {
	d.MessageBoxes = append(d.MessageBoxes, title+": "+message)
	return nil
}

type keyboard map[gfx.Key]bool

func (k keyboard) Pressed(key gfx.Key) bool { return k[key] }

// Window is a fake native window.
type Window struct {
	driver    *Driver
	Config    gfx.WindowConfig
	W, H      int
	Destroyed int
}

func (w *Window) Kind() resource.Kind { return resource.KindWindow }
func (w *Window) IsNil() bool         { return w == nil }
func (w *Window) Size() (int, int)    { return w.W, w.H }

func (w *Window) Destroy() error {
	if w == nil {
		return nil
	}
	w.Destroyed++
	w.driver.Destroyed = append(w.driver.Destroyed, resource.KindWindow)
	return nil
}

// DrawCall records one DrawTexture call.
type DrawCall struct {
	Texture gfx.Texture
	Dst     core.FRect
	Flip    bool
}

// Renderer is a fake renderer that records what it was asked to do.
type Renderer struct {
	driver       *Driver
	name         string
	Destroyed    int
	Color        core.Color
	Clears       int
	Presents     int
	Draws        []DrawCall
	Presentation gfx.LogicalPresentation
	// Ops lists calls in order: "color", "clear", "draw", "present".
	Ops []string

	FailClear bool
}

func (r *Renderer) Kind() resource.Kind { return resource.KindRenderer }
func (r *Renderer) IsNil() bool         { return r == nil }
func (r *Renderer) Name() string        { return r.name }

func (r *Renderer) Destroy() error {
	if r == nil {
		return nil
	}
	r.Destroyed++
	r.driver.Destroyed = append(r.driver.Destroyed, resource.KindRenderer)
	return nil
}

func (r *Renderer) SetDrawColor(c core.Color) error {
	r.Color = c
	r.Ops = append(r.Ops, "color")
	return nil
}

func (r *Renderer) Clear() error {
	if r.FailClear {
		return ErrFake
	}
	r.Clears++
	r.Ops = append(r.Ops, "clear")
	return nil
}

func (r *Renderer) Present() error {
	r.Presents++
	r.Ops = append(r.Ops, "present")
	return nil
}

func (r *Renderer) SetLogicalPresentation(p gfx.LogicalPresentation) error {
	r.Presentation = p
	return nil
}

func (r *Renderer) DrawTexture(t gfx.Texture, dst core.FRect, flip bool) error {
	r.Draws = append(r.Draws, DrawCall{Texture: t, Dst: dst, Flip: flip})
	r.Ops = append(r.Ops, "draw")
	return nil
}

// Texture is a fake texture.
type Texture struct {
	driver    *Driver
	Path      string
	W, H      int
	Scale     gfx.ScaleMode
	Destroyed int
}

func (t *Texture) Kind() resource.Kind { return resource.KindTexture }
func (t *Texture) IsNil() bool         { return t == nil }
func (t *Texture) Size() (int, int)    { return t.W, t.H }

func (t *Texture) SetScaleMode(m gfx.ScaleMode) error {
	t.Scale = m
	return nil
}

func (t *Texture) Destroy() error {
	if t == nil {
		return nil
	}
	t.Destroyed++
	t.driver.Destroyed = append(t.driver.Destroyed, resource.KindTexture)
	return nil
}

// Surface is a fake surface.
type Surface struct {
	driver    *Driver
	W, H      int
	Destroyed int
}

func (s *Surface) Kind() resource.Kind { return resource.KindSurface }
func (s *Surface) IsNil() bool         { return s == nil }
func (s *Surface) Size() (int, int)    { return s.W, s.H }

func (s *Surface) Destroy() error {
	if s == nil {
		return nil
	}
	s.Destroyed++
	s.driver.Destroyed = append(s.driver.Destroyed, resource.KindSurface)
	return nil
}
