// Package logging builds the stderr logger shared by the CLI and the game.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Prefix tags every line.
const Prefix = "spriteloop"

// ParseLevel accepts charmbracelet/log level names, case-insensitively. An
// empty name means info.
func ParseLevel(name string) (log.Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(name)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("unknown log level %q", name)
	}
	return lvl, nil
}

// New returns a timestamped logger writing to w. Debug level also reports
// the caller.
func New(w io.Writer, level log.Level) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		ReportCaller:    level <= log.DebugLevel,
		TimeFormat:      time.TimeOnly,
		Prefix:          Prefix,
		Level:           level,
	})
	return l
}

// Stderr is New(os.Stderr, level).
func Stderr(level log.Level) *log.Logger {
	return New(os.Stderr, level)
}
