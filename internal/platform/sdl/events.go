package sdl

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/vovakirdan/spriteloop/internal/gfx"
)

func translateEvent(ev sdl.Event) gfx.Event {
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		return gfx.Event{Type: gfx.EventQuit, Raw: ev}
	case *sdl.KeyboardEvent:
		out := gfx.Event{Type: gfx.EventKeyUp, Key: translateKey(e.Keysym.Sym), Repeat: e.Repeat != 0, Raw: ev}
		if e.Type == sdl.KEYDOWN {
			out.Type = gfx.EventKeyDown
		}
		return out
	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED {
			return gfx.Event{Type: gfx.EventWindowResized, Width: int(e.Data1), Height: int(e.Data2), Raw: ev}
		}
	}
	return gfx.Event{Type: gfx.EventOther, Raw: ev}
}

func translateKey(k sdl.Keycode) gfx.Key {
	switch k {
	case sdl.K_ESCAPE:
		return gfx.KeyEscape
	case sdl.K_LEFT:
		return gfx.KeyLeft
	case sdl.K_RIGHT:
		return gfx.KeyRight
	case sdl.K_UP:
		return gfx.KeyUp
	case sdl.K_DOWN:
		return gfx.KeyDown
	case sdl.K_a:
		return gfx.KeyA
	case sdl.K_d:
		return gfx.KeyD
	case sdl.K_SPACE:
		return gfx.KeySpace
	case sdl.K_RETURN:
		return gfx.KeyEnter
	default:
		return gfx.KeyUnknown
	}
}

// scancodes maps keys to physical positions for held-state queries.
var scancodes = map[gfx.Key]sdl.Scancode{
	gfx.KeyEscape: sdl.SCANCODE_ESCAPE,
	gfx.KeyLeft:   sdl.SCANCODE_LEFT,
	gfx.KeyRight:  sdl.SCANCODE_RIGHT,
	gfx.KeyUp:     sdl.SCANCODE_UP,
	gfx.KeyDown:   sdl.SCANCODE_DOWN,
	gfx.KeyA:      sdl.SCANCODE_A,
	gfx.KeyD:      sdl.SCANCODE_D,
	gfx.KeySpace:  sdl.SCANCODE_SPACE,
	gfx.KeyEnter:  sdl.SCANCODE_RETURN,
}

type keyboardState []uint8

func (k keyboardState) Pressed(key gfx.Key) bool {
	sc, ok := scancodes[key]
	if !ok || int(sc) >= len(k) {
		return false
	}
	return k[sc] != 0
}
