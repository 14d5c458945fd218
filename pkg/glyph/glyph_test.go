package glyph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTable(t *testing.T) {
	expected := []string{
		"01110 01010 01010 01010 01110",
		"01000 00010 01000 00010 01000",
		"01110 01000 01110 00010 01110",
		"01110 00010 01100 00010 01110",
		"01000 00010 01110 01010 01010",
		"01110 00010 01110 01000 01110",
		"01110 01010 01110 01000 01110",
		"01000 00010 01000 00010 01110",
		"01110 01010 01110 01010 01110",
		"01110 00010 01110 01010 01110",
	}
	for d, pattern := range expected {
		bits := strings.Replace(pattern, " ", "", -1)
		require.Len(t, bits, Pixels)
		g := For(d)
		for i := 0; i < Pixels; i++ {
			require.Equalf(t, bits[i] == '1', g.Lit(i), "digit %d pixel %d", d, i)
		}
	}
}

func TestBits(t *testing.T) {
	testCases := []struct {
		digit  int
		expect uint32
	}{
		{0, 0xe5294e},
		{1, 0x812048},
		{8, 0xe5394e},
	}
	for _, tc := range testCases {
		require.Equalf(t, tc.expect, For(tc.digit).Bits(), "digit %d", tc.digit)
	}
}

func TestGlyphsDistinct(t *testing.T) {
	seen := make(map[uint32]int)
	for d := range Table {
		bits := Table[d].Bits()
		prev, dup := seen[bits]
		require.Falsef(t, dup, "digit %d duplicates digit %d", d, prev)
		seen[bits] = d
	}
}
