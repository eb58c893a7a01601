package sdl

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/vovakirdan/spriteloop/internal/core"
	"github.com/vovakirdan/spriteloop/internal/gfx"
	"github.com/vovakirdan/spriteloop/internal/resource"
)

// Window wraps *sdl.Window.
type Window struct {
	w *sdl.Window
}

func (w *Window) Kind() resource.Kind { return resource.KindWindow }
func (w *Window) IsNil() bool         { return w == nil || w.w == nil }

func (w *Window) Size() (int, int) {
	if w.IsNil() {
		return 0, 0
	}
	width, height := w.w.GetSize()
	return int(width), int(height)
}

func (w *Window) Destroy() error {
	if w.IsNil() {
		return nil
	}
	err := w.w.Destroy()
	w.w = nil
	return err
}

// Renderer wraps *sdl.Renderer.
type Renderer struct {
	r    *sdl.Renderer
	name string
}

func (r *Renderer) Kind() resource.Kind { return resource.KindRenderer }
func (r *Renderer) IsNil() bool         { return r == nil || r.r == nil }
func (r *Renderer) Name() string        { return r.name }

func (r *Renderer) Destroy() error {
	if r.IsNil() {
		return nil
	}
	err := r.r.Destroy()
	r.r = nil
	return err
}

func (r *Renderer) SetDrawColor(c core.Color) error {
	return r.r.SetDrawColor(c.R, c.G, c.B, c.A)
}

func (r *Renderer) Clear() error {
	return r.r.Clear()
}

func (r *Renderer) Present() error {
	r.r.Present()
	return nil
}

// SetLogicalPresentation maps the presentation onto SDL2's logical size.
// Letterbox is SDL2's only aspect behaviour; stretch and overscan have no
// equivalent.
func (r *Renderer) SetLogicalPresentation(p gfx.LogicalPresentation) error {
	switch p.Mode {
	case gfx.PresentationDisabled:
		if err := r.r.SetIntegerScale(false); err != nil {
			return err
		}
		return r.r.SetLogicalSize(0, 0)
	case gfx.PresentationLetterbox:
		if err := r.r.SetIntegerScale(false); err != nil {
			return err
		}
		return r.r.SetLogicalSize(int32(p.Width), int32(p.Height))
	case gfx.PresentationIntegerScale:
		if err := r.r.SetLogicalSize(int32(p.Width), int32(p.Height)); err != nil {
			return err
		}
		return r.r.SetIntegerScale(true)
	default:
		return fmt.Errorf("presentation mode %s is not supported by SDL2", p.Mode)
	}
}

func (r *Renderer) DrawTexture(t gfx.Texture, dst core.FRect, flip bool) error {
	tex, ok := t.(*Texture)
	if !ok || tex.IsNil() {
		return fmt.Errorf("texture was not created by the SDL backend")
	}
	mode := sdl.FLIP_NONE
	if flip {
		mode = sdl.FLIP_HORIZONTAL
	}
	rect := sdl.FRect{X: float32(dst.X), Y: float32(dst.Y), W: float32(dst.W), H: float32(dst.H)}
	return r.r.CopyExF(tex.t, nil, &rect, 0, nil, mode)
}

// Texture wraps *sdl.Texture.
type Texture struct {
	t    *sdl.Texture
	w, h int
}

func (t *Texture) Kind() resource.Kind { return resource.KindTexture }
func (t *Texture) IsNil() bool         { return t == nil || t.t == nil }
func (t *Texture) Size() (int, int)    { return t.w, t.h }

func (t *Texture) SetScaleMode(m gfx.ScaleMode) error {
	mode := sdl.ScaleModeNearest
	if m == gfx.ScaleLinear {
		mode = sdl.ScaleModeLinear
	}
	return t.t.SetScaleMode(mode)
}

func (t *Texture) Destroy() error {
	if t.IsNil() {
		return nil
	}
	err := t.t.Destroy()
	t.t = nil
	return err
}

// Surface wraps *sdl.Surface.
type Surface struct {
	s *sdl.Surface
}

func (s *Surface) Kind() resource.Kind { return resource.KindSurface }
func (s *Surface) IsNil() bool         { return s == nil || s.s == nil }

func (s *Surface) Size() (int, int) {
	if s.IsNil() {
		return 0, 0
	}
	return int(s.s.W), int(s.s.H)
}

func (s *Surface) Destroy() error {
	if s.IsNil() {
		return nil
	}
	s.s.Free()
	s.s = nil
	return nil
}
