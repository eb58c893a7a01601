// Package sdl implements gfx.Driver on top of go-sdl2.
//
// All calls must come from the goroutine that called Init. The package locks
// the main goroutine to its OS thread in init so that the cmd layer can run
// the whole game on main.
package sdl

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/vovakirdan/spriteloop/internal/gfx"
)

func init() {
	runtime.LockOSThread()
}

// Driver is the go-sdl2 backend.
type Driver struct {
	imageReady bool
}

var _ gfx.Driver = (*Driver)(nil)

// New returns an uninitialized backend.
func New() *Driver {
	return &Driver{}
}

func (d *Driver) Init() error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return err
	}
	if err := img.Init(img.INIT_PNG); err != nil {
		sdl.Quit()
		return err
	}
	d.imageReady = true
	return nil
}

func (d *Driver) Quit() {
	if d.imageReady {
		img.Quit()
		d.imageReady = false
	}
	sdl.Quit()
}

func (d *Driver) Version() gfx.VersionInfo {
	var v sdl.Version
	sdl.GetVersion(&v)
	return gfx.VersionInfo{Major: int(v.Major), Minor: int(v.Minor), Patch: int(v.Patch)}
}

func (d *Driver) ImageVersion() gfx.VersionInfo {
	v := img.LinkedVersion()
	if v == nil {
		return gfx.VersionInfo{}
	}
	return gfx.VersionInfo{Major: int(v.Major), Minor: int(v.Minor), Patch: int(v.Patch)}
}

func (d *Driver) Revision() string {
	return sdl.GetRevision()
}

func (d *Driver) LastError() string {
	if err := sdl.GetError(); err != nil {
		return err.Error()
	}
	return ""
}

func (d *Driver) VideoDrivers() []string {
	n, err := sdl.GetNumVideoDrivers()
	if err != nil {
		return nil
	}
	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		names = append(names, sdl.GetVideoDriver(i))
	}
	return names
}

func (d *Driver) RenderDrivers() []string {
	n, err := sdl.GetNumRenderDrivers()
	if err != nil {
		return nil
	}
	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		var info sdl.RendererInfo
		if _, err := sdl.GetRenderDriverInfo(i, &info); err != nil {
			continue
		}
		names = append(names, info.Name)
	}
	return names
}

// renderDriverIndex maps a driver name to the index CreateRenderer expects.
// -1 selects the first driver supporting the requested flags.
func (d *Driver) renderDriverIndex(name string) (int, error) {
	if name == "" {
		return -1, nil
	}
	for i, n := range d.RenderDrivers() {
		if n == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("render driver %q is not available", name)
}

func (d *Driver) CreateWindow(cfg gfx.WindowConfig) (gfx.Window, error) {
	w, err := sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.Width), int32(cfg.Height), windowFlags(cfg.Flags))
	if err != nil {
		return nil, err
	}
	return &Window{w: w}, nil
}

func (d *Driver) CreateRenderer(w gfx.Window, cfg gfx.RenderConfig) (gfx.Renderer, error) {
	win, ok := w.(*Window)
	if !ok || win.IsNil() {
		return nil, errors.New("window was not created by the SDL backend")
	}
	index, err := d.renderDriverIndex(cfg.RendererName)
	if err != nil {
		return nil, err
	}

	flags := uint32(sdl.RENDERER_ACCELERATED)
	if cfg.VSync {
		flags |= uint32(sdl.RENDERER_PRESENTVSYNC)
	}
	r, err := sdl.CreateRenderer(win.w, index, flags)
	if err != nil {
		return nil, err
	}

	name := cfg.RendererName
	if info, err := r.GetInfo(); err == nil {
		name = info.Name
	}
	return &Renderer{r: r, name: name}, nil
}

func (d *Driver) LoadTexture(r gfx.Renderer, path string) (gfx.Texture, error) {
	ren, ok := r.(*Renderer)
	if !ok || ren.IsNil() {
		return nil, errors.New("renderer was not created by the SDL backend")
	}
	t, err := img.LoadTexture(ren.r, path)
	if err != nil {
		return nil, err
	}
	_, _, tw, th, err := t.Query()
	if err != nil {
		t.Destroy() //nolint:errcheck // Best-effort cleanup, the query error is returned
		return nil, err
	}
	return &Texture{t: t, w: int(tw), h: int(th)}, nil
}

func (d *Driver) CreateSurface(width, height int) (gfx.Surface, error) {
	s, err := sdl.CreateRGBSurfaceWithFormat(0, int32(width), int32(height), 32, uint32(sdl.PIXELFORMAT_RGBA8888))
	if err != nil {
		return nil, err
	}
	return &Surface{s: s}, nil
}

func (d *Driver) PollEvent() (gfx.Event, bool) {
	ev := sdl.PollEvent()
	if ev == nil {
		return gfx.Event{}, false
	}
	return translateEvent(ev), true
}

func (d *Driver) Keyboard() gfx.Keyboard {
	return keyboardState(sdl.GetKeyboardState())
}

func (d *Driver) Delay(dur time.Duration) {
	if dur <= 0 {
		return
	}
	sdl.Delay(uint32(dur / time.Millisecond))
}

func (d *Driver) ShowErrorBox(title, message string, w gfx.Window) error {
	var parent *sdl.Window
	if win, ok := w.(*Window); ok && !win.IsNil() {
		parent = win.w
	}
	return sdl.ShowSimpleMessageBox(sdl.MESSAGEBOX_ERROR, title, message, parent)
}

func windowFlags(f gfx.WindowFlags) uint32 {
	flags := uint32(sdl.WINDOW_SHOWN)
	if f.Has(gfx.WindowFullscreen) {
		flags |= uint32(sdl.WINDOW_FULLSCREEN)
	}
	if f.Has(gfx.WindowResizable) {
		flags |= uint32(sdl.WINDOW_RESIZABLE)
	}
	if f.Has(gfx.WindowBorderless) {
		flags |= uint32(sdl.WINDOW_BORDERLESS)
	}
	if f.Has(gfx.WindowHidden) {
		flags &^= uint32(sdl.WINDOW_SHOWN)
		flags |= uint32(sdl.WINDOW_HIDDEN)
	}
	if f.Has(gfx.WindowHighPixelDensity) {
		flags |= uint32(sdl.WINDOW_ALLOW_HIGHDPI)
	}
	if f.Has(gfx.WindowAlwaysOnTop) {
		flags |= uint32(sdl.WINDOW_ALWAYS_ON_TOP)
	}
	return flags
}
