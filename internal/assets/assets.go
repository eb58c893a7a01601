// Package assets locates game assets and reads image metadata without
// touching the graphics backend.
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/png" // PNG decoder
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder
)

// SpriteName is the default sprite file name.
const SpriteName = "idle.png"

// ErrNotFound is returned when an asset path does not exist.
var ErrNotFound = errors.New("asset not found")

// DefaultSpritePath returns <parent of cwd>/Data/idle.png.
func DefaultSpritePath() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("assets: cannot get working directory: %w", err)
	}
	return filepath.Join(filepath.Dir(wd), "Data", SpriteName), nil
}

// Resolve returns configured if set, otherwise the default sprite path.
// A leading ~ expands to the home directory.
func Resolve(configured string) (string, error) {
	if configured == "" {
		return DefaultSpritePath()
	}
	if configured[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("assets: cannot expand home directory: %w", err)
		}
		configured = filepath.Join(home, configured[1:])
	}
	return filepath.Clean(configured), nil
}

// Info describes an image file.
type Info struct {
	Path   string
	Format string
	Width  int
	Height int
	Size   int64
}

// Inspect reads the header of the image at path.
func Inspect(path string) (Info, error) {
	st, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Info{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Info{}, fmt.Errorf("assets: cannot stat %s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("assets: cannot open %s: %w", path, err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return Info{}, fmt.Errorf("assets: cannot decode %s: %w", path, err)
	}
	return Info{Path: path, Format: format, Width: cfg.Width, Height: cfg.Height, Size: st.Size()}, nil
}
