package core

import "fmt"

// Color is a 4-channel RGBA color used for render clears.
type Color struct {
	R, G, B, A uint8
}

// RGBA creates a color from its channels.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Predefined colors.
var (
	ColorBlack    = Color{0, 0, 0, 255}
	ColorWhite    = Color{255, 255, 255, 255}
	ColorRed      = Color{255, 0, 0, 255}
	ColorSkyBlue  = Color{64, 128, 255, 255}
	ColorDeepBlue = Color{0, 0, 100, 0}
)

// Channels returns the color as a 4-element array, in RGBA order.
func (c Color) Channels() [4]uint8 {
	return [4]uint8{c.R, c.G, c.B, c.A}
}

// ColorFromChannels builds a color from a 4-element RGBA array.
func ColorFromChannels(ch [4]uint8) Color {
	return Color{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}
}

// String returns the color as "rgba(r, g, b, a)".
func (c Color) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}
