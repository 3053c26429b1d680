// Package s2math defines the scalar and vector primitives shared by every
// other sphgeom package: angles, normalized angles, lon-lat coordinates,
// and 3-vectors (general and unit-length) on the unit sphere S².
//
// All types here are plain value types, freely copyable, with no hidden
// state and no locking — there is nothing to mutate under contention.
package s2math
