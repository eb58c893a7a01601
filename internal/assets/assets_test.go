package assets

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func writeImage(t *testing.T, path string, encode func(f *os.File, img image.Image) error) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 24, 16))
	img.Set(1, 1, color.RGBA{255, 0, 0, 255})

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := encode(f, img); err != nil {
		t.Fatalf("encode failed: %v", err)
	}
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		file   string
		format string
		encode func(f *os.File, img image.Image) error
	}{
		{"idle.png", "png", func(f *os.File, img image.Image) error { return png.Encode(f, img) }},
		{"idle.bmp", "bmp", func(f *os.File, img image.Image) error { return bmp.Encode(f, img) }},
		{"idle.tiff", "tiff", func(f *os.File, img image.Image) error { return tiff.Encode(f, img, nil) }},
	}

	for _, tc := range tests {
		t.Run(tc.format, func(t *testing.T) {
			path := filepath.Join(dir, tc.file)
			writeImage(t, path, tc.encode)

			info, err := Inspect(path)
			if err != nil {
				t.Fatalf("Inspect() failed: %v", err)
			}
			if info.Format != tc.format || info.Width != 24 || info.Height != 16 {
				t.Errorf("info = %+v", info)
			}
			if info.Size <= 0 {
				t.Error("size should be recorded")
			}
		})
	}
}

func TestInspectErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Inspect(filepath.Join(dir, "missing.png"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, expected ErrNotFound", err)
	}

	junk := filepath.Join(dir, "junk.png")
	if err := os.WriteFile(junk, []byte("not an image"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Inspect(junk); err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, expected a decode error", err)
	}
}

func TestDefaultSpritePath(t *testing.T) {
	root := t.TempDir()
	bin := filepath.Join(root, "bin")
	if err := os.Mkdir(bin, 0o755); err != nil {
		t.Fatal(err)
	}
	chdir(t, bin)

	got, err := DefaultSpritePath()
	if err != nil {
		t.Fatalf("DefaultSpritePath() failed: %v", err)
	}
	expected := filepath.Join(root, "Data", "idle.png")
	if got != expected {
		t.Errorf("DefaultSpritePath() = %q, expected %q", got, expected)
	}
}

func TestResolve(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in       string
		expected string
	}{
		{"sprites/hero.png", filepath.Join("sprites", "hero.png")},
		{"/abs//hero.png", "/abs/hero.png"},
		{"~/sprites/hero.png", filepath.Join(home, "sprites", "hero.png")},
	}

	for _, tc := range tests {
		got, err := Resolve(tc.in)
		if err != nil {
			t.Errorf("Resolve(%q) failed: %v", tc.in, err)
			continue
		}
		if got != tc.expected {
			t.Errorf("Resolve(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}

	def, _ := Resolve("")
	if filepath.Base(def) != SpriteName {
		t.Errorf("Resolve(\"\") = %q, expected the default sprite", def)
	}
}
