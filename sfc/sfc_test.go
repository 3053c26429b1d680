package sfc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMorton32RoundTrip(t *testing.T) {
	for _, xy := range [][2]uint32{{0, 0}, {1, 0}, {0, 1}, {123, 456}, {0xffff, 0xffff}} {
		code := MortonEncode32(xy[0], xy[1])
		x, y := MortonDecode32(code)
		require.Equal(t, xy[0], x)
		require.Equal(t, xy[1], y)
	}
}

func TestMorton64RoundTrip(t *testing.T) {
	for _, xy := range [][2]uint32{{0, 0}, {1, 1}, {1 << 20, 1 << 10}, {0xffffffff, 0xffffffff}} {
		code := MortonEncode64(xy[0], xy[1])
		x, y := MortonDecode64(code)
		require.Equal(t, xy[0], x)
		require.Equal(t, xy[1], y)
	}
}

func TestMortonInterleavesBitOrder(t *testing.T) {
	// x's bit 0 lands at code bit 0; y's bit 0 lands at code bit 1.
	require.Equal(t, uint32(1), MortonEncode32(1, 0))
	require.Equal(t, uint32(2), MortonEncode32(0, 1))
}

func TestHilbert32RoundTrip(t *testing.T) {
	const order = 8
	for s := uint64(0); s < (1 << order); s++ {
		x, y := HilbertDecode32(order, uint32(s))
		back := HilbertEncode32(order, x, y)
		require.Equal(t, uint32(s), back)
	}
}

func TestHilbertIsLocalityPreservingNeighborStep(t *testing.T) {
	const order = 6
	x0, y0 := HilbertDecode32(order, 10)
	x1, y1 := HilbertDecode32(order, 11)
	dx := int(x0) - int(x1)
	dy := int(y0) - int(y1)
	require.LessOrEqual(t, dx*dx+dy*dy, 1) // consecutive indices are grid-adjacent
}

func TestMortonToHilbertRoundTrip64(t *testing.T) {
	const order = 10
	morton := MortonEncode64(37, 511)
	h := MortonToHilbert64(order, morton)
	back := HilbertToMorton64(order, h)
	require.Equal(t, morton, back)
}

func TestMortonToHilbertRoundTrip32(t *testing.T) {
	const order = 6
	morton := MortonEncode32(5, 9)
	h := MortonToHilbert32(order, morton)
	back := HilbertToMorton32(order, h)
	require.Equal(t, morton, back)
}
