// Package orientation implements the exact-sign-of-a-3x3-determinant
// predicate that the region kernel and the pixelizations build on: given
// three unit vectors a, b, c, Of(a, b, c) returns the sign of the scalar
// triple product a·(b×c), i.e. the winding sense of a, b, c viewed from
// outside S².
//
// The algorithm first tries double precision, falls back to a tighter
// error bound, and only then falls back to exact bigint.ExactInteger
// arithmetic — a fast path with a documented,
// provable fallback boundary rather than an unconditionally exact (and
// unconditionally slow) computation.
package orientation
