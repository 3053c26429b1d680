package sfc

// hilbertXY2D converts grid coordinates (x, y), each in [0, 2^order), to
// their distance along a 2^order × 2^order Hilbert curve. This is the
// standard quadrant-rotation algorithm (Wikipedia, "Hilbert curve").
func hilbertXY2D(order uint, x, y uint64) uint64 {
	if order == 0 {
		return 0
	}
	var d uint64
	for s := uint64(1) << (order - 1); s > 0; s >>= 1 {
		var rx, ry uint64
		if x&s > 0 {
			rx = 1
		}
		if y&s > 0 {
			ry = 1
		}
		d += s * s * ((3 * rx) ^ ry)
		x, y = hilbertRotate(s, x, y, rx, ry)
	}
	return d
}

// hilbertD2XY inverts hilbertXY2D.
func hilbertD2XY(order uint, d uint64) (x, y uint64) {
	t := d
	for s := uint64(1); s < (uint64(1) << order); s <<= 1 {
		rx := uint64(1) & (t / 2)
		ry := uint64(1) & (t ^ rx)
		x, y = hilbertRotate(s, x, y, rx, ry)
		x += s * rx
		y += s * ry
		t /= 4
	}
	return x, y
}

func hilbertRotate(s, x, y, rx, ry uint64) (uint64, uint64) {
	if ry == 0 {
		if rx == 1 {
			x = s - 1 - x
			y = s - 1 - y
		}
		x, y = y, x
	}
	return x, y
}

// HilbertEncode32 converts (x, y), each in [0, 2^order) with order<=16,
// to a 32-bit Hilbert index.
func HilbertEncode32(order uint, x, y uint32) uint32 {
	return uint32(hilbertXY2D(order, uint64(x), uint64(y)))
}

// HilbertDecode32 inverts HilbertEncode32.
func HilbertDecode32(order uint, d uint32) (x, y uint32) {
	xx, yy := hilbertD2XY(order, uint64(d))
	return uint32(xx), uint32(yy)
}

// HilbertEncode64 converts (x, y), each in [0, 2^order) with order<=32,
// to a 64-bit Hilbert index.
func HilbertEncode64(order uint, x, y uint32) uint64 {
	return hilbertXY2D(order, uint64(x), uint64(y))
}

// HilbertDecode64 inverts HilbertEncode64.
func HilbertDecode64(order uint, d uint64) (x, y uint32) {
	xx, yy := hilbertD2XY(order, d)
	return uint32(xx), uint32(yy)
}

// MortonToHilbert64 converts a 64-bit Morton (Z-order) code over an
// order-bit-per-axis grid into the equivalent Hilbert index, per
// spec.md §4.H.2 ("Interleave (s, t) into a Morton code and convert
// Morton → Hilbert").
func MortonToHilbert64(order uint, morton uint64) uint64 {
	x, y := MortonDecode64(morton)
	return HilbertEncode64(order, x, y)
}

// HilbertToMorton64 inverts MortonToHilbert64.
func HilbertToMorton64(order uint, hilbert uint64) uint64 {
	x, y := HilbertDecode64(order, hilbert)
	return MortonEncode64(x, y)
}

// MortonToHilbert32 converts a 32-bit Morton code into the equivalent
// Hilbert index.
func MortonToHilbert32(order uint, morton uint32) uint32 {
	x, y := MortonDecode32(morton)
	return HilbertEncode32(order, x, y)
}

// HilbertToMorton32 inverts MortonToHilbert32.
func HilbertToMorton32(order uint, hilbert uint32) uint32 {
	x, y := HilbertDecode32(order, hilbert)
	return MortonEncode32(x, y)
}
