// Package sfc implements the space-filling-curve helpers pixelization
// needs to map a 2D grid cell to a locality-preserving 1D index: Morton
// (bit-interleaved) and Hilbert codes, each at 32-bit and 64-bit widths,
// with an inverse for every forward transform (spec.md §4.J, "Space-
// filling curve helpers").
package sfc
