package app

import (
	"fmt"
	"io"

	"github.com/vovakirdan/spriteloop/internal/gfx"
)

// PrintError writes err to w as an "Error:" line, unless it is a graphics
// error, which the manager has already logged.
func PrintError(w io.Writer, err error) {
	if err == nil || gfx.KindOf(err) != 0 {
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
