package render

import "fmt"

// Color is an 8-bit RGB triple.
type Color struct {
	R, G, B uint8
}

var (
	// Off is an unlit pixel.
	Off = Color{}
	// DefaultOn is the color of lit glyph pixels.
	DefaultOn = Color{R: 100}
)

// IsOff indicates the pixel is dark.
func (c Color) IsOff() bool {
	return c == Off
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
