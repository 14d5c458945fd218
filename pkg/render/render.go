// Package render turns a digit into the colors of the LED matrix.
package render

import (
	"bytes"
	"fmt"

	"github.com/robotalks/digitpad/pkg/digit"
	"github.com/robotalks/digitpad/pkg/glyph"
)

// Frame is the color of every LED, in the index order of the glyph table.
type Frame [glyph.Pixels]Color

// Render lights the pixels of digit d's glyph with on and turns off
// everything else. d must be in [0, 9].
func Render(d int, on Color) Frame {
	if d < 0 || d >= digit.Base {
		panic(fmt.Sprintf("render: digit %d out of range", d))
	}
	var f Frame
	g := glyph.For(d)
	for i := range f {
		if g.Lit(i) {
			f[i] = on
		} else {
			f[i] = Off
		}
	}
	return f
}

// Grid draws the frame as text, one line per row, '#' for lit pixels.
func (f *Frame) Grid() string {
	var w bytes.Buffer
	for i, c := range f {
		if c.IsOff() {
			w.WriteByte('.')
		} else {
			w.WriteByte('#')
		}
		if i%glyph.Cols == glyph.Cols-1 {
			w.WriteByte('\n')
		}
	}
	return w.String()
}
