package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/vovakirdan/spriteloop/internal/gfx"
)

// Watch reloads path whenever it changes and sends each valid result on the
// returned channel. Invalid edits are logged and skipped. The channel is
// closed when ctx is done.
//
// The parent directory is watched rather than the file so that editors that
// save by rename are still picked up.
func Watch(ctx context.Context, path string, logger *log.Logger) (<-chan Config, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: cannot resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: cannot create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("config: cannot watch %s: %w", path, err)
	}

	out := make(chan Config, 1)
	go func() {
		defer close(out)
		defer w.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				cfg, err := LoadFile(abs)
				if err != nil {
					logger.Warn("config reload skipped", "path", path, "error", err)
					continue
				}
				logger.Debug("config reloaded", "path", path)
				select {
				case out <- cfg:
				case <-ctx.Done():
					return
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Warn("config watcher error", "error", err)
			}
		}
	}()

	return out, nil
}

// RenderUpdates narrows a stream of configs to their render settings. The
// returned channel is closed when in is closed or ctx is done, whichever
// comes first, even if nobody is receiving.
func RenderUpdates(ctx context.Context, in <-chan Config) <-chan gfx.RenderConfig {
	out := make(chan gfx.RenderConfig, 1)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case cfg, ok := <-in:
				if !ok {
					return
				}
				select {
				case out <- cfg.RenderConfig():
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}
