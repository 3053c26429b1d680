// Package chunker partitions the unit sphere into longitude-latitude
// "chunks" and "sub-chunks" of roughly equal area, the way a catalog
// storage layer tiles the sky for spatial joins. It is a thin, first-party
// consumer of region, interval and relate — it introduces no new
// geometric primitives, only a chunk-ID numbering scheme layered on top
// of region.Box and region.Relate.
//
// The sphere is cut into numStripes latitude bands of equal height H.
// Each stripe is cut into an integral number of equal-width chunks, wide
// enough that two points in the same stripe separated by at least one
// chunk width are guaranteed to be at least H apart in angular distance —
// this keeps chunks roughly square near the equator and coarser (fewer,
// wider) near the poles. Sub-chunks repeat the same construction one
// level finer, within each stripe's configured number of sub-stripes.
package chunker
