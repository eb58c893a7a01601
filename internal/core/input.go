package core

// Direction is the horizontal movement intent derived from held keys.
type Direction int

const (
	DirectionNone  Direction = 0
	DirectionLeft  Direction = -1
	DirectionRight Direction = 1
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirectionNone:
		return "None"
	case DirectionLeft:
		return "Left"
	case DirectionRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// DirectionFrom combines the held state of the left and right movement keys.
// Holding both cancels out.
func DirectionFrom(left, right bool) Direction {
	switch {
	case left && !right:
		return DirectionLeft
	case right && !left:
		return DirectionRight
	default:
		return DirectionNone
	}
}

// Facing tracks which way the sprite looks, for horizontal mirroring.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// String returns a human-readable name for the facing.
func (f Facing) String() string {
	if f == FacingLeft {
		return "Left"
	}
	return "Right"
}

// Turn returns the facing after moving in direction d. No movement keeps the
// current facing.
func (f Facing) Turn(d Direction) Facing {
	switch d {
	case DirectionLeft:
		return FacingLeft
	case DirectionRight:
		return FacingRight
	default:
		return f
	}
}

// Mirrored reports whether a sprite drawn with this facing must be flipped.
// Sprites are authored facing right.
func (f Facing) Mirrored() bool {
	return f == FacingLeft
}
