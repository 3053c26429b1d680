// Package bigint implements ExactInteger, an arbitrary-precision signed
// integer backed by a caller-supplied digit slice rather than a heap
// allocation. It exists so the orientation predicate's exact fallback
// (see package orientation) never allocates: the caller owns a small
// fixed-size array on the stack and hands bigint a slice over it.
//
// It follows a "non-owning buffer, caller owns storage" pattern — a
// flat backing slice the caller allocates once and reuses — rather than
// the raw-pointer-plus-capacity C++ idiom of the original LSST sphgeom
// implementation, translated into a Go slice with explicit capacity
// checks.
package bigint
