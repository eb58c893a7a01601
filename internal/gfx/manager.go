// Package gfx defines the graphics contracts the game is written against: the
// backend Driver, native resource interfaces, the error taxonomy, the library
// Manager with its factory functions, and the per-frame render step.
package gfx

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spriteloop/internal/resource"
)

// Manager owns the backend's global init/quit lifecycle. It is the single
// logical owner of that state: pass it around by pointer and transfer it with
// Move, never copy it.
type Manager struct {
	driver      Driver
	logger      *log.Logger
	initialized bool
	initErr     error
}

// NewManager attempts backend initialization. Failure is reported through
// Initialized, not returned; the caller decides whether to abort.
func NewManager(d Driver, logger *log.Logger) *Manager {
	m := &Manager{driver: d, logger: logger}
	if err := m.init(); err != nil {
		m.initErr = err
		m.report(err)
		return m
	}
	m.initialized = true
	m.logger.Info("SDL initialized", "revision", d.Revision())
	return m
}

// Initialize returns an initialized manager or an InitFailed error.
func Initialize(d Driver, logger *log.Logger) (m *Manager, err error) {
	m = NewManager(d, logger)
	if !m.Initialized() {
		return nil, m.initErr
	}
	return m, nil
}

func (m *Manager) init() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = newError(InitFailed, fmt.Sprint(r), nil)
		}
	}()
	if initErr := m.driver.Init(); initErr != nil {
		return newError(InitFailed, m.driver.LastError(), initErr)
	}
	return nil
}

// Initialized reports whether backend initialization succeeded and the
// manager still owns it.
func (m *Manager) Initialized() bool {
	return m != nil && m.initialized
}

// Driver returns the backend the manager was created with.
func (m *Manager) Driver() Driver {
	return m.driver
}

// Logger returns the manager's diagnostic logger.
func (m *Manager) Logger() *log.Logger {
	return m.logger
}

// Move transfers ownership of the initialized backend to a new manager. The
// source is left in a state where Close does nothing.
func (m *Manager) Move() *Manager {
	moved := &Manager{driver: m.driver, logger: m.logger, initialized: m.initialized}
	m.initialized = false
	return moved
}

// Close shuts the backend down. It runs at most once, and only if
// initialization succeeded.
func (m *Manager) Close() {
	if !m.Initialized() {
		return
	}
	m.initialized = false
	m.logger.Info("cleaning up SDL")
	m.driver.Quit()
}

// releaseFunc returns a resource.ReleaseFunc that logs destroy failures.
func (m *Manager) releaseFunc() resource.ReleaseFunc {
	return func(kind resource.Kind, err error) {
		m.logger.Warn("resource release failed", "kind", kind, "error", err)
	}
}

// report writes a failure diagnostic to the error stream.
func (m *Manager) report(err error) {
	if e, ok := err.(*Error); ok {
		m.logger.Error(e.Kind.Prefix(), "detail", e.Detail)
		return
	}
	m.logger.Error(err.Error())
}

// fail builds, reports and returns a tagged error.
func (m *Manager) fail(kind ErrorKind, err error) error {
	detail := ""
	if err == nil {
		detail = m.driver.LastError()
	}
	e := newError(kind, detail, err)
	m.report(e)
	return e
}

// recovered converts a backend panic into a tagged error.
func (m *Manager) recovered(kind ErrorKind, r any) error {
	e := newError(kind, fmt.Sprint(r), nil)
	m.report(e)
	return e
}

// requireState fails with StateFailed when the manager no longer owns an
// initialized backend.
func (m *Manager) requireState() error {
	if m.Initialized() {
		return nil
	}
	e := newError(StateFailed, "SDL is not initialized", nil)
	if m != nil {
		m.report(e)
	}
	return e
}

// ShowFatal shows a startup failure in a native message box. The failure has
// already been logged by the manager. The box is best effort: it is skipped
// silently if the backend cannot show it.
func ShowFatal(d Driver, title string, err error) {
	//nolint:errcheck // Best-effort dialog, the error is already on stderr
	d.ShowErrorBox(title, err.Error(), nil)
}
