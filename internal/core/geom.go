// Package core provides fundamental types shared by the game loop, the
// graphics contracts and the platform backends. It has no external
// dependencies so game logic stays testable without a display.
package core

// FRect is an axis-aligned rectangle with float coordinates, used as a draw
// destination.
type FRect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewFRect creates a new rectangle with the given position and dimensions.
func NewFRect(x, y, w, h float64) FRect {
	return FRect{X: x, Y: y, W: w, H: h}
}
