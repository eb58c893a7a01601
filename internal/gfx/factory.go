package gfx

import (
	"fmt"
	"os"

	"github.com/vovakirdan/spriteloop/internal/resource"
)

// CreateWindow creates a window from cfg. A nil window from the backend, a
// non-positive size, or a backend panic all yield WindowCreationFailed.
func (m *Manager) CreateWindow(cfg WindowConfig) (h *resource.Owned[Window], err error) {
	if err := m.requireState(); err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			h, err = nil, m.recovered(WindowCreationFailed, r)
		}
	}()

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, m.fail(WindowCreationFailed, fmt.Errorf("invalid window size %dx%d", cfg.Width, cfg.Height))
	}

	w, createErr := m.driver.CreateWindow(cfg)
	if createErr != nil {
		return nil, m.fail(WindowCreationFailed, createErr)
	}
	h = resource.Own(w, m.releaseFunc())
	if !h.Valid() {
		return nil, m.fail(WindowCreationFailed, nil)
	}

	m.logger.Info("window created", "width", cfg.Width, "height", cfg.Height, "flags", cfg.Flags)
	return h, nil
}

// CreateRenderer creates a renderer for w, honouring cfg.RendererName.
func (m *Manager) CreateRenderer(w Window, cfg RenderConfig) (h *resource.Owned[Renderer], err error) {
	if err := m.requireState(); err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			h, err = nil, m.recovered(RendererCreationFailed, r)
		}
	}()

	if resourceIsNil(w) {
		return nil, m.fail(RendererCreationFailed, fmt.Errorf("no window to render into"))
	}

	r, createErr := m.driver.CreateRenderer(w, cfg)
	if createErr != nil {
		return nil, m.fail(RendererCreationFailed, createErr)
	}
	h = resource.Own(r, m.releaseFunc())
	if !h.Valid() {
		return nil, m.fail(RendererCreationFailed, nil)
	}

	m.logger.Info("renderer created", "name", r.Name())
	return h, nil
}

// CreateTexture loads the image at path into a texture for r. A missing file
// fails with TextureCreationFailed before the backend is asked to load it.
func (m *Manager) CreateTexture(r Renderer, path string, opts TextureOptions) (h *resource.Owned[Texture], err error) {
	if err := m.requireState(); err != nil {
		return nil, err
	}
	defer func() {
		if rec := recover(); rec != nil {
			h, err = nil, m.recovered(TextureCreationFailed, rec)
		}
	}()

	if _, statErr := os.Stat(path); statErr != nil {
		return nil, m.fail(TextureCreationFailed, fmt.Errorf("file not found: %s", path))
	}
	if resourceIsNil(r) {
		return nil, m.fail(TextureCreationFailed, fmt.Errorf("no renderer to upload to"))
	}

	t, loadErr := m.driver.LoadTexture(r, path)
	if loadErr != nil {
		return nil, m.fail(TextureCreationFailed, loadErr)
	}
	h = resource.Own(t, m.releaseFunc())
	if !h.Valid() {
		return nil, m.fail(TextureCreationFailed, nil)
	}

	if scaleErr := t.SetScaleMode(opts.Scale); scaleErr != nil {
		m.logger.Warn("could not set texture scale mode", "error", scaleErr)
	}

	tw, th := t.Size()
	m.logger.Info("texture loaded", "path", path, "width", tw, "height", th)
	return h, nil
}

// CreateSurface allocates a CPU-side RGBA surface. Failures are reported as
// StateFailed since surfaces have no dedicated kind.
func (m *Manager) CreateSurface(width, height int) (h *resource.Owned[Surface], err error) {
	if err := m.requireState(); err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			h, err = nil, m.recovered(StateFailed, r)
		}
	}()

	if width <= 0 || height <= 0 {
		return nil, m.fail(StateFailed, fmt.Errorf("invalid surface size %dx%d", width, height))
	}

	s, createErr := m.driver.CreateSurface(width, height)
	if createErr != nil {
		return nil, m.fail(StateFailed, createErr)
	}
	h = resource.Own(s, m.releaseFunc())
	if !h.Valid() {
		return nil, m.fail(StateFailed, nil)
	}
	return h, nil
}

// resourceIsNil reports whether r is nil or wraps a nil native pointer.
func resourceIsNil(r resource.Resource) bool {
	return !resource.Own(r, nil).Valid()
}
