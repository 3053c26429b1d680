// Package codec provides the boundary-facing encodings for sphgeom
// regions: the raw self-describing binary format (delegated to
// region.Encode/region.Decode) plus the base64 container and
// "overlaps" expression language.
//
// A base64 container holds either a single region, or several regions
// delimited by ':' (decoded as a UnionRegion), or an expression of the
// form `A & B | C & D | …` whose `X & Y` groups are pairwise overlap
// queries, OR-ed across groups with short-circuit evaluation once a
// group is known definitely true.
package codec
