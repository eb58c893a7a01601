package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spriteloop/internal/config"
	"github.com/vovakirdan/spriteloop/internal/core"
	"github.com/vovakirdan/spriteloop/internal/gfx"
	"github.com/vovakirdan/spriteloop/internal/gfx/gfxtest"
	"github.com/vovakirdan/spriteloop/internal/resource"
	"github.com/vovakirdan/spriteloop/internal/storage"
)

func sprite(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "idle.png")
	if err := os.WriteFile(path, []byte("png"), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func options(t *testing.T) PlayOptions {
	cfg := config.Default()
	cfg.Loop.TargetFPS = 0
	return PlayOptions{
		Config:     cfg,
		SpritePath: sprite(t),
		Logger:     log.New(io.Discard),
	}
}

func TestPlayRunsUntilEscape(t *testing.T) {
	d := gfxtest.New()
	d.Held[gfx.KeyRight] = true

	var hook func(d *gfxtest.Driver)
	hook = func(d *gfxtest.Driver) {
		if d.PollCalls >= 4 {
			d.Push(gfx.KeyDownEvent(gfx.KeyEscape))
			return
		}
		d.OnPoll = hook
	}
	d.OnPoll = hook

	stats, err := Play(context.Background(), d, options(t))
	if err != nil {
		t.Fatalf("Play() failed: %v", err)
	}
	if stats.Frames != 3 || stats.ExitReason != "escape" {
		t.Errorf("stats = %+v", stats)
	}

	expected := []resource.Kind{resource.KindTexture, resource.KindRenderer, resource.KindWindow}
	if len(d.Destroyed) != 3 {
		t.Fatalf("destroyed %v, expected %v", d.Destroyed, expected)
	}
	for i := range expected {
		if d.Destroyed[i] != expected[i] {
			t.Fatalf("destroyed %v, expected %v", d.Destroyed, expected)
		}
	}
	if d.QuitCalls != 1 {
		t.Errorf("QuitCalls = %d, expected 1", d.QuitCalls)
	}
	if d.Textures[0].Scale != gfx.ScaleNearest {
		t.Error("sprite should use nearest scaling")
	}
	if d.Windows[0].Config.Title != "spriteloop" {
		t.Errorf("window title = %q", d.Windows[0].Config.Title)
	}
}

func TestPlayInitFailureShowsMessageBox(t *testing.T) {
	d := gfxtest.New()
	d.FailInit = true

	var logs bytes.Buffer
	opts := options(t)
	opts.Logger = log.New(&logs)

	_, err := Play(context.Background(), d, opts)
	if !errors.Is(err, gfx.InitFailed) {
		t.Fatalf("error = %v, expected InitFailed", err)
	}
	if n := strings.Count(logs.String(), "\n"); n != 1 {
		t.Errorf("init failure logged %d lines, expected 1:\n%s", n, logs.String())
	}
	if len(d.MessageBoxes) != 1 || !strings.HasPrefix(d.MessageBoxes[0], InitErrorTitle) {
		t.Errorf("message boxes = %v", d.MessageBoxes)
	}
	if d.QuitCalls != 0 {
		t.Error("Quit must not run after a failed init")
	}
}

func TestPlayStartupFailuresReleaseEverything(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(d *gfxtest.Driver, o *PlayOptions)
		kind      gfx.ErrorKind
		destroyed int
	}{
		{"window", func(d *gfxtest.Driver, o *PlayOptions) { d.FailWindow = true }, gfx.WindowCreationFailed, 0},
		{"renderer", func(d *gfxtest.Driver, o *PlayOptions) { d.FailRenderer = true }, gfx.RendererCreationFailed, 1},
		{"missing sprite", func(d *gfxtest.Driver, o *PlayOptions) { o.SpritePath = "/nonexistent/Data/idle.png" }, gfx.TextureCreationFailed, 2},
		{"bad sprite", func(d *gfxtest.Driver, o *PlayOptions) { d.FailTexture = true }, gfx.TextureCreationFailed, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := gfxtest.New()
			opts := options(t)
			tc.setup(d, &opts)

			_, err := Play(context.Background(), d, opts)
			if !errors.Is(err, tc.kind) {
				t.Errorf("error = %v, expected %v", err, tc.kind)
			}
			if len(d.Destroyed) != tc.destroyed {
				t.Errorf("destroyed %v, expected %d resources", d.Destroyed, tc.destroyed)
			}
			if d.QuitCalls != 1 {
				t.Errorf("QuitCalls = %d, expected 1", d.QuitCalls)
			}
			if len(d.MessageBoxes) != 0 {
				t.Error("message box is only for init failures")
			}
		})
	}
}

func TestPlayRecordsSession(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	d := gfxtest.New()
	d.Push(gfx.QuitEvent())
	opts := options(t)
	opts.Store = store
	opts.Config.Render.Renderer = "opengl"
	start := time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC)
	opts.Now = func() time.Time { return start }

	if _, err := Play(context.Background(), d, opts); err != nil {
		t.Fatalf("Play() failed: %v", err)
	}

	sessions, err := store.Recent(5)
	if err != nil {
		t.Fatalf("Recent() failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("sessions = %d, expected 1", len(sessions))
	}
	s := sessions[0]
	if s.Renderer != "opengl" || s.ExitReason != "quit" || !s.StartedAt.Equal(start) {
		t.Errorf("session = %+v", s)
	}
}

func TestPlayAppliesRenderUpdates(t *testing.T) {
	d := gfxtest.New()
	updates := make(chan gfx.RenderConfig, 1)
	updates <- gfx.RenderConfig{ClearColor: core.ColorRed}

	var hook func(d *gfxtest.Driver)
	hook = func(d *gfxtest.Driver) {
		if d.PollCalls >= 2 {
			d.Push(gfx.QuitEvent())
			return
		}
		d.OnPoll = hook
	}
	d.OnPoll = hook

	opts := options(t)
	opts.RenderUpdates = updates
	if _, err := Play(context.Background(), d, opts); err != nil {
		t.Fatalf("Play() failed: %v", err)
	}
	if c := d.Renderers[0].Color; c != core.ColorRed {
		t.Errorf("clear color = %v, expected the live update", c)
	}
}

func TestCheck(t *testing.T) {
	d := gfxtest.New()
	var buf bytes.Buffer

	r := Check(d, log.New(&buf))
	if r.Failed() {
		t.Fatalf("Check() failed: %v", r.Err())
	}

	names := make([]string, len(r.Steps))
	for i, s := range r.Steps {
		names[i] = s.Name
	}
	expected := "initialize,video drivers,image library,window,renderer,render test,surface"
	if got := strings.Join(names, ","); got != expected {
		t.Errorf("steps = %s, expected %s", got, expected)
	}
	if r.Steps[0].Detail != "SDL 2.30.0 (fake-rev)" {
		t.Errorf("version detail = %q", r.Steps[0].Detail)
	}
	if r.Steps[6].Detail != "100x100" {
		t.Errorf("surface detail = %q", r.Steps[6].Detail)
	}
	if c := d.Renderers[0].Color; c != core.ColorRed {
		t.Errorf("render test color = %v, expected red", c)
	}
	if d.QuitCalls != 1 {
		t.Errorf("QuitCalls = %d, expected 1", d.QuitCalls)
	}
}

func TestCheckContinuesAfterWindowFailure(t *testing.T) {
	d := gfxtest.New()
	d.FailWindow = true

	r := Check(d, log.New(io.Discard))
	if !r.Failed() {
		t.Fatal("expected a failed report")
	}
	last := r.Steps[len(r.Steps)-1]
	if last.Name != "surface" || last.Err != nil {
		t.Errorf("surface step = %+v, expected it to run and pass", last)
	}
	if !errors.Is(r.Err(), gfx.WindowCreationFailed) {
		t.Errorf("Err() = %v", r.Err())
	}
}

func TestCheckInitFailure(t *testing.T) {
	d := gfxtest.New()
	d.FailInit = true

	r := Check(d, log.New(io.Discard))
	if len(r.Steps) != 1 || !errors.Is(r.Steps[0].Err, gfx.InitFailed) {
		t.Errorf("steps = %+v", r.Steps)
	}
}

func TestPrintError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil", nil, ""},
		{"plain", errors.New("sessions: disk full"), "Error: sessions: disk full\n"},
		{"graphics error already logged", &gfx.Error{Kind: gfx.InitFailed, Detail: "no video"}, ""},
		{"wrapped graphics error", fmt.Errorf("play: %w", &gfx.Error{Kind: gfx.WindowCreationFailed}), ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			PrintError(&buf, tc.err)
			if buf.String() != tc.expected {
				t.Errorf("PrintError() wrote %q, expected %q", buf.String(), tc.expected)
			}
		})
	}
}
