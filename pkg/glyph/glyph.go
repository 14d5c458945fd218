// Package glyph holds the 5x5 digit patterns shown on the LED matrix.
package glyph

// Grid dimensions.
const (
	Rows   = 5
	Cols   = 5
	Pixels = Rows * Cols
)

// Glyph is a 5x5 on/off pattern, row-major.
type Glyph [Rows][Cols]bool

// Lit reports whether pixel i (row*Cols + col) is on.
func (g *Glyph) Lit(i int) bool {
	return g[i/Cols][i%Cols]
}

// Bits packs the glyph into 25 bits, pixel 0 in the most significant bit.
func (g *Glyph) Bits() uint32 {
	var bits uint32
	for i := 0; i < Pixels; i++ {
		bits <<= 1
		if g.Lit(i) {
			bits |= 1
		}
	}
	return bits
}

const (
	o = false
	x = true
)

// Table maps digits 0-9 to their glyph. The patterns are a frozen
// contract with the displayed output and must not be remapped.
var Table = [10]Glyph{
	{ // 0
		{o, x, x, x, o},
		{o, x, o, x, o},
		{o, x, o, x, o},
		{o, x, o, x, o},
		{o, x, x, x, o},
	},
	{ // 1
		{o, x, o, o, o},
		{o, o, o, x, o},
		{o, x, o, o, o},
		{o, o, o, x, o},
		{o, x, o, o, o},
	},
	{ // 2
		{o, x, x, x, o},
		{o, x, o, o, o},
		{o, x, x, x, o},
		{o, o, o, x, o},
		{o, x, x, x, o},
	},
	{ // 3
		{o, x, x, x, o},
		{o, o, o, x, o},
		{o, x, x, o, o},
		{o, o, o, x, o},
		{o, x, x, x, o},
	},
	{ // 4
		{o, x, o, o, o},
		{o, o, o, x, o},
		{o, x, x, x, o},
		{o, x, o, x, o},
		{o, x, o, x, o},
	},
	{ // 5
		{o, x, x, x, o},
		{o, o, o, x, o},
		{o, x, x, x, o},
		{o, x, o, o, o},
		{o, x, x, x, o},
	},
	{ // 6
		{o, x, x, x, o},
		{o, x, o, x, o},
		{o, x, x, x, o},
		{o, x, o, o, o},
		{o, x, x, x, o},
	},
	{ // 7
		{o, x, o, o, o},
		{o, o, o, x, o},
		{o, x, o, o, o},
		{o, o, o, x, o},
		{o, x, x, x, o},
	},
	{ // 8
		{o, x, x, x, o},
		{o, x, o, x, o},
		{o, x, x, x, o},
		{o, x, o, x, o},
		{o, x, x, x, o},
	},
	{ // 9
		{o, x, x, x, o},
		{o, o, o, x, o},
		{o, x, x, x, o},
		{o, x, o, x, o},
		{o, x, x, x, o},
	},
}

// For returns the glyph of digit d. It panics if d is not in [0, 9].
func For(d int) *Glyph {
	return &Table[d]
}
