// Package sphgeom is a spherical-geometry indexing kernel: exact-arithmetic
// orientation predicates, a small region hierarchy (Circle, Box, Ellipse,
// ConvexPolygon, and their unions/intersections), two hierarchical sky
// pixelizations (HTM and a modified Q3C), and the range-set algebra and
// codec that tie them together for spatial indexing and catalog matching.
//
// It is a direct port of the ideas behind LSST's sphgeom library, reworked
// as a set of small, independently usable Go packages rather than one
// monolithic library:
//
//	bigint/        fixed-capacity exact integer arithmetic
//	orientation/   the exact-arithmetic orientation predicate
//	s2math/        vectors, angles and spherical coordinates
//	interval/      linear and circular 1-D interval arithmetic
//	rangeset/      half-open 64-bit range-set algebra
//	region/        the Region type hierarchy and relate/overlap matrix
//	pixelization/  HTM and modified-Q3C hierarchical sky tilings
//	sfc/           Morton and Hilbert space-filling-curve helpers
//	codec/         the binary + base64/overlap-expression wire format
//	chunker/       sphere-partitioning into catalog storage tiles
//
// None of the above is imported from this root package; it exists only to
// document how the pieces fit together. Start with region and pixelization
// for the public surface most callers need.
//
//	go get github.com/katalvlaran/sphgeom
package sphgeom
