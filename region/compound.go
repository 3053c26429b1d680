package region

import (
	"errors"

	"github.com/katalvlaran/sphgeom/interval"
	"github.com/katalvlaran/sphgeom/relate"
	"github.com/katalvlaran/sphgeom/s2math"
)

// ErrNoChildren indicates a compound region was constructed with zero
// operands, violating its "≥1 child" invariant.
var ErrNoChildren = errors.New("region: compound region requires at least one child")

// UnionRegion is the union of ≥1 owned child Regions. Cloning performs a
// deep copy; no UnionRegion ever aliases another's children.
type UnionRegion struct {
	children []Region
}

// NewUnionRegion takes ownership of children (which must be clones the
// caller does not retain a reference to, matching the "exclusive
// ownership, no aliasing" contract).
func NewUnionRegion(children []Region) (UnionRegion, error) {
	if len(children) == 0 {
		return UnionRegion{}, ErrNoChildren
	}
	return UnionRegion{children: children}, nil
}

func (u UnionRegion) Children() []Region { return u.children }

func (u UnionRegion) IsEmpty() bool {
	for _, c := range u.children {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

func (u UnionRegion) Clone() Region {
	cp := make([]Region, len(u.children))
	for i, c := range u.children {
		cp[i] = c.Clone()
	}
	return UnionRegion{children: cp}
}

func (u UnionRegion) ContainsPoint(v s2math.UnitVector3d) bool {
	for _, c := range u.children {
		if c.ContainsPoint(v) {
			return true
		}
	}
	return false
}

func (u UnionRegion) BoundingBox() Box {
	b := EmptyBox()
	for _, c := range u.children {
		cb := c.BoundingBox()
		b = NewBox(b.lon.ExpandTo(cb.lon), b.lat.ExpandTo(cb.lat))
	}
	return b
}

func (u UnionRegion) BoundingBox3d() Box3d {
	b := Box3d{interval.EmptyInterval1d(), interval.EmptyInterval1d(), interval.EmptyInterval1d()}
	for _, c := range u.children {
		b = b.ExpandTo(c.BoundingBox3d())
	}
	return b
}

func (u UnionRegion) BoundingCircle() Circle {
	c := EmptyCircle()
	for _, child := range u.children {
		c = c.ExpandTo(child.BoundingCircle())
	}
	return c
}

// relateAsOuter folds UnionRegion's children: AND child relations for
// DISJOINT and WITHIN, OR for CONTAINS.
func (u UnionRegion) relateAsOuter(other Region) relate.Relationship {
	r := relate.DISJOINT | relate.WITHIN
	var contains relate.Relationship
	for _, c := range u.children {
		cr := Relate(c, other)
		r &= cr
		contains |= cr & relate.CONTAINS
	}
	return (r &^ relate.CONTAINS) | contains
}

func (u UnionRegion) Relate(other Region) relate.Relationship { return Relate(u, other) }
func (u UnionRegion) Overlaps(other Region) Overlap            { return RelateOverlaps(u, other) }
func (u UnionRegion) Encode() []byte                           { return encodeUnion(u) }

// IntersectionRegion is the intersection of ≥1 owned child Regions.
type IntersectionRegion struct {
	children []Region
}

func NewIntersectionRegion(children []Region) (IntersectionRegion, error) {
	if len(children) == 0 {
		return IntersectionRegion{}, ErrNoChildren
	}
	return IntersectionRegion{children: children}, nil
}

func (x IntersectionRegion) Children() []Region { return x.children }

func (x IntersectionRegion) IsEmpty() bool {
	if x.BoundingCircle().IsEmpty() {
		return true
	}
	for _, c := range x.children {
		if c.IsEmpty() {
			return true
		}
	}
	return false
}

func (x IntersectionRegion) Clone() Region {
	cp := make([]Region, len(x.children))
	for i, c := range x.children {
		cp[i] = c.Clone()
	}
	return IntersectionRegion{children: cp}
}

func (x IntersectionRegion) ContainsPoint(v s2math.UnitVector3d) bool {
	for _, c := range x.children {
		if !c.ContainsPoint(v) {
			return false
		}
	}
	return true
}

func (x IntersectionRegion) BoundingBox() Box {
	b := FullBox()
	for _, c := range x.children {
		cb := c.BoundingBox()
		b = NewBox(b.lon.ClipTo(cb.lon), b.lat.ClipTo(cb.lat))
	}
	return b
}

func (x IntersectionRegion) BoundingBox3d() Box3d {
	b := Box3d{interval.NewInterval1d(-1, 1), interval.NewInterval1d(-1, 1), interval.NewInterval1d(-1, 1)}
	for _, c := range x.children {
		b = b.ClipTo(c.BoundingBox3d())
	}
	return b
}

func (x IntersectionRegion) BoundingCircle() Circle {
	c := FullCircle()
	for _, child := range x.children {
		c = c.ClipTo(child.BoundingCircle())
	}
	return c
}

// relateAsOuter folds IntersectionRegion's children: OR child relations for
// DISJOINT and WITHIN, AND for CONTAINS.
func (x IntersectionRegion) relateAsOuter(other Region) relate.Relationship {
	var r relate.Relationship
	contains := relate.CONTAINS
	for _, c := range x.children {
		cr := Relate(c, other)
		r |= cr & (relate.DISJOINT | relate.WITHIN)
		contains &= cr
	}
	return r | (contains & relate.CONTAINS)
}

func (x IntersectionRegion) Relate(other Region) relate.Relationship { return Relate(x, other) }
func (x IntersectionRegion) Overlaps(other Region) Overlap            { return RelateOverlaps(x, other) }
func (x IntersectionRegion) Encode() []byte                           { return encodeIntersection(x) }
