package region

import (
	"github.com/katalvlaran/sphgeom/interval"
	"github.com/katalvlaran/sphgeom/relate"
	"github.com/katalvlaran/sphgeom/s2math"
)

// Overlap is the tri-state result of Region.Overlaps: OverlapTrue and
// OverlapFalse are proofs, OverlapUnknown permits either outcome.
type Overlap int8

const (
	OverlapFalse   Overlap = -1
	OverlapUnknown Overlap = 0
	OverlapTrue    Overlap = 1
)

// Box3d is an axis-aligned box in the unit cube, used as a conservative
// bound on a Region's embedding in ℝ³.
type Box3d struct {
	X, Y, Z interval.Interval1d
}

func NewBox3d(x, y, z interval.Interval1d) Box3d { return Box3d{x, y, z} }

func (b Box3d) IsEmpty() bool { return b.X.IsEmpty() || b.Y.IsEmpty() || b.Z.IsEmpty() }

func (b Box3d) Contains(v s2math.Vector3d) bool {
	return b.X.ContainsPoint(v.X) && b.Y.ContainsPoint(v.Y) && b.Z.ContainsPoint(v.Z)
}

func (b Box3d) ExpandTo(o Box3d) Box3d {
	return Box3d{b.X.ExpandTo(o.X), b.Y.ExpandTo(o.Y), b.Z.ExpandTo(o.Z)}
}

func (b Box3d) ClipTo(o Box3d) Box3d {
	return Box3d{b.X.ClipTo(o.X), b.Y.ClipTo(o.Y), b.Z.ClipTo(o.Z)}
}

// Region is the capability set shared by every concrete spherical region
// type. Compound regions (UnionRegion,
// IntersectionRegion) implement it by folding over their owned children.
type Region interface {
	Clone() Region
	IsEmpty() bool
	ContainsPoint(v s2math.UnitVector3d) bool
	BoundingBox() Box
	BoundingBox3d() Box3d
	BoundingCircle() Circle
	Relate(other Region) relate.Relationship
	Overlaps(other Region) Overlap
	Encode() []byte
}

// overlapFromRelate derives a conservative Overlap from a Relationship
// when no tighter pairwise formula is implemented: DISJOINT proves
// false, CONTAINS or WITHIN of a non-empty region proves true (since
// then the regions are certainly not disjoint), otherwise unknown.
func overlapFromRelate(r relate.Relationship) Overlap {
	if r.Has(relate.DISJOINT) {
		return OverlapFalse
	}
	if r.Intersects() && (r.Has(relate.CONTAINS) || r.Has(relate.WITHIN)) {
		return OverlapTrue
	}
	return OverlapUnknown
}
