package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/digitpad/pkg/glyph"
)

func TestRender(t *testing.T) {
	for d := 0; d < 10; d++ {
		f := Render(d, DefaultOn)
		require.Len(t, f, glyph.Pixels)
		for i, c := range f {
			if glyph.Table[d].Lit(i) {
				require.Equalf(t, DefaultOn, c, "digit %d pixel %d", d, i)
			} else {
				require.Equalf(t, Off, c, "digit %d pixel %d", d, i)
			}
		}
	}
}

func TestRenderPure(t *testing.T) {
	green := Color{G: 20}
	first := Render(3, green)
	Render(8, DefaultOn)
	Render(0, Color{R: 1, G: 2, B: 3})
	require.Equal(t, first, Render(3, green))
	require.NotEqual(t, first, Render(3, DefaultOn))
}

func TestRenderOutOfRange(t *testing.T) {
	require.Panics(t, func() { Render(10, DefaultOn) })
	require.Panics(t, func() { Render(-1, DefaultOn) })
}

func TestGrid(t *testing.T) {
	f := Render(1, DefaultOn)
	require.Equal(t, ".#...\n...#.\n.#...\n...#.\n.#...\n", f.Grid())
}

func TestColor(t *testing.T) {
	require.True(t, Off.IsOff())
	require.False(t, DefaultOn.IsOff())
	require.Equal(t, "#640000", DefaultOn.String())
}
