package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spriteloop/internal/core"
	"github.com/vovakirdan/spriteloop/internal/gfx"
)

// Step is one line of the library smoke test.
type Step struct {
	Name   string
	Detail string
	Err    error
}

// Report collects smoke-test steps.
type Report struct {
	Steps []Step
}

// Failed reports whether any step failed.
func (r Report) Failed() bool {
	for _, s := range r.Steps {
		if s.Err != nil {
			return true
		}
	}
	return false
}

// Err joins the failed steps into one error.
func (r Report) Err() error {
	var errs []error
	for _, s := range r.Steps {
		if s.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.Name, s.Err))
		}
	}
	return errors.Join(errs...)
}

func (r *Report) add(name, detail string, err error) {
	r.Steps = append(r.Steps, Step{Name: name, Detail: detail, Err: err})
}

// Check exercises the backend end to end: init, versions, drivers, a window
// with a renderer that clears to red once, and a CPU surface. Later steps
// still run when a window or renderer step fails.
func Check(d gfx.Driver, logger *log.Logger) Report {
	var r Report

	m, err := gfx.Initialize(d, logger)
	if err != nil {
		r.add("initialize", "", err)
		return r
	}
	defer m.Close()

	v := d.Version()
	r.add("initialize", fmt.Sprintf("SDL %d.%d.%d (%s)", v.Major, v.Minor, v.Patch, d.Revision()), nil)

	drivers := d.VideoDrivers()
	r.add("video drivers", strings.Join(drivers, ", "), nil)

	iv := d.ImageVersion()
	r.add("image library", fmt.Sprintf("SDL_image %d.%d.%d", iv.Major, iv.Minor, iv.Patch), nil)

	win, err := m.CreateWindow(gfx.WindowConfig{Title: "spriteloop check", Width: 640, Height: 480, Flags: gfx.WindowResizable})
	if err != nil {
		r.add("window", "", err)
	} else {
		w, h := win.Value().Size()
		r.add("window", fmt.Sprintf("%dx%d", w, h), nil)

		ren, err := m.CreateRenderer(win.Value(), gfx.DefaultRenderConfig())
		if err != nil {
			r.add("renderer", "", err)
		} else {
			r.add("renderer", ren.Value().Name(), nil)
			r.add("render test", "clear to "+core.ColorRed.String(), gfx.RenderStep(ren.Value(), core.ColorRed, nil))
			ren.Release()
		}
		win.Release()
	}

	surf, err := m.CreateSurface(100, 100)
	if err != nil {
		r.add("surface", "", err)
	} else {
		w, h := surf.Value().Size()
		r.add("surface", fmt.Sprintf("%dx%d", w, h), nil)
		surf.Release()
	}

	return r
}
