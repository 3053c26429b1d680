// Package rangeset implements RangeSet, a canonical sorted sequence of
// disjoint, non-adjacent half-open 64-bit ranges [begin, end) used by
// package pixelization's Envelope/Interior to report which pixel indices
// a region covers.
//
// It keeps a single canonical internal representation (a flat sorted
// slice) behind a small, orthogonal operation set: Insert and Erase are
// the only primitive mutators, and every set-algebra operation (Union,
// Intersection, Difference, ...) is built on top of them.
package rangeset
