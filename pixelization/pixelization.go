package pixelization

import (
	"github.com/katalvlaran/sphgeom/rangeset"
	"github.com/katalvlaran/sphgeom/region"
	"github.com/katalvlaran/sphgeom/s2math"
)

// Pixelization is the common interface both hierarchical tilings
// implement, per spec.md §4.H.
type Pixelization interface {
	// Universe returns the RangeSet of every valid pixel index at this
	// pixelization's level.
	Universe() rangeset.RangeSet
	// Pixel returns a ConvexPolygon approximating cell i.
	Pixel(i uint64) (region.ConvexPolygon, error)
	// Index returns the 64-bit pixel ID containing unit vector v.
	Index(v s2math.UnitVector3d) uint64
	// ToString returns a human-readable representation of pixel i.
	ToString(i uint64) string
	// Envelope returns a RangeSet containing every cell that intersects
	// region. maxRanges == 0 disables coarsening (unbounded).
	Envelope(r region.Region, maxRanges int) rangeset.RangeSet
	// Interior returns a RangeSet contained within the set of cells
	// fully inside region. maxRanges == 0 disables coarsening.
	Interior(r region.Region, maxRanges int) rangeset.RangeSet
}

// pixelNode is the shared abstraction the generic finder (finder.go)
// recurses over; HtmPixelization and Mq3cPixelization each produce their
// own node representation but expose it through this interface.
type pixelNode interface {
	Polygon() region.ConvexPolygon
	Children() []pixelNode // 4 children, ascending final-index order
	LeafRange() rangeset.Range
}
