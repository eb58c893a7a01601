// Package game holds the frame loop: shared application state, the player,
// and per-iteration event handling, update and rendering.
package game

import (
	"math"
	"time"

	"github.com/vovakirdan/spriteloop/internal/core"
	"github.com/vovakirdan/spriteloop/internal/gfx"
	"github.com/vovakirdan/spriteloop/internal/resource"
)

// Status is the loop's lifecycle state.
type Status int

const (
	StatusRunning Status = iota
	StatusStopped
)

func (s Status) String() string {
	if s == StatusStopped {
		return "stopped"
	}
	return "running"
}

// Player is the single sprite's position and facing.
type Player struct {
	X, Y   float64
	Facing core.Facing
	// Distance is the total horizontal distance travelled.
	Distance float64
}

// Move advances the player by speed*dt in dir and turns it to face dir.
func (p *Player) Move(dir core.Direction, speed float64, dt time.Duration) {
	p.Facing = p.Facing.Turn(dir)
	if dir == core.DirectionNone {
		return
	}
	dx := speed * dt.Seconds() * float64(dir)
	p.X += dx
	p.Distance += math.Abs(dx)
}

// State is the application state shared between startup and the loop.
type State struct {
	Window   *resource.Ref[gfx.Window]
	Renderer *resource.Ref[gfx.Renderer]

	Logical gfx.LogicalPresentation
	Status  Status
	Player  Player
	// Delta is the clamped duration of the last iteration.
	Delta  time.Duration
	Frames uint64
}

// NewState takes ownership of window and renderer as shared references.
func NewState(window *resource.Owned[gfx.Window], renderer *resource.Owned[gfx.Renderer], logical gfx.LogicalPresentation) *State {
	return &State{
		Window:   resource.Share(window),
		Renderer: resource.Share(renderer),
		Logical:  logical,
		Status:   StatusRunning,
	}
}

// Running reports whether the loop should keep iterating.
func (s *State) Running() bool {
	return s.Status == StatusRunning
}

// Release drops the state's references, renderer first.
func (s *State) Release() {
	s.Renderer.Release()
	s.Window.Release()
}
