// Package region implements the spherical Region hierarchy: Circle, Box,
// Ellipse, ConvexPolygon, and the compound UnionRegion/IntersectionRegion,
// each sharing the common contract (clone, isEmpty, contains, bounding
// shapes, relate, overlaps, encode).
//
// Relate and overlaps are double-dispatched: a Region's Relate method
// type-switches on the concrete type of its argument, with the
// centralized pairwise logic living in dispatch.go rather than forcing
// every region pair through one generic comparison.
package region
