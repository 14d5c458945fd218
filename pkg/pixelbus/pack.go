package pixelbus

import "github.com/robotalks/digitpad/pkg/render"

// WordBits is the number of data bits per pixel on the wire.
const WordBits = 24

// Pack encodes a color into a GRB word: green in bits 16-23, red in
// 8-15, blue in 0-7.
func Pack(c render.Color) uint32 {
	return uint32(c.G)<<16 | uint32(c.R)<<8 | uint32(c.B)
}

// Unpack decodes a word produced by Pack.
func Unpack(w uint32) render.Color {
	return render.Color{
		G: uint8(w >> 16),
		R: uint8(w >> 8),
		B: uint8(w),
	}
}

// PackFrame encodes every pixel of the frame in order.
func PackFrame(f *render.Frame) []uint32 {
	words := make([]uint32, len(f))
	for i, c := range f {
		words[i] = Pack(c)
	}
	return words
}

// UnpackFrame decodes words back into a frame. Missing words are off,
// extra words are ignored.
func UnpackFrame(words []uint32) (f render.Frame) {
	for i := 0; i < len(f) && i < len(words); i++ {
		f[i] = Unpack(words[i])
	}
	return
}
