package region

import (
	"math"

	"github.com/katalvlaran/sphgeom/orientation"
	"github.com/katalvlaran/sphgeom/relate"
	"github.com/katalvlaran/sphgeom/s2math"
)

// outerRelatable is implemented by the compound region types; it lets
// Relate fold a compound region's relationship to other across its
// children without the compound type needing to know other's concrete
// kind.
type outerRelatable interface {
	relateAsOuter(other Region) relate.Relationship
}

// Relate identifies the concrete pair (Box↔Circle, Circle↔Polygon, etc.)
// and dispatches to the specialized implementation. Compound regions (UnionRegion,
// IntersectionRegion) are folded first, before the concrete-pair switch.
func Relate(a, b Region) relate.Relationship {
	if a.IsEmpty() || b.IsEmpty() {
		return emptyRelation(a, b)
	}
	if outer, ok := a.(outerRelatable); ok {
		return outer.relateAsOuter(b)
	}
	if outer, ok := b.(outerRelatable); ok {
		return relate.Invert(outer.relateAsOuter(a))
	}
	switch x := a.(type) {
	case Circle:
		switch y := b.(type) {
		case Circle:
			return relateCircleCircle(x, y)
		case Box:
			return relateCircleBox(x, y)
		case ConvexPolygon:
			return relate.Invert(relatePolygonCircle(y, x))
		}
	case Box:
		switch y := b.(type) {
		case Circle:
			return relate.Invert(relateCircleBox(y, x))
		case Box:
			return relateBoxBox(x, y)
		case ConvexPolygon:
			return relateBoxPolygon(x, y)
		}
	case ConvexPolygon:
		switch y := b.(type) {
		case Circle:
			return relatePolygonCircle(x, y)
		case Box:
			return relate.Invert(relateBoxPolygon(y, x))
		case ConvexPolygon:
			return relatePolygonPolygon(x, y)
		}
	}
	// Ellipse (on either side) and any otherwise-unhandled pair reduce
	// conservatively to bounding-circle comparison: sound for DISJOINT, silent on CONTAINS/WITHIN since a
	// bounding circle containing another's bounding circle says nothing
	// about the actual shapes.
	return relateBoundingCirclesOnly(a.BoundingCircle(), b.BoundingCircle())
}

// emptyRelation implements the common contract: "empty regions are both
// within and disjoint from any region."
func emptyRelation(a, b Region) relate.Relationship {
	aEmpty, bEmpty := a.IsEmpty(), b.IsEmpty()
	switch {
	case aEmpty && bEmpty:
		return relate.DISJOINT | relate.CONTAINS | relate.WITHIN
	case aEmpty:
		return relate.DISJOINT | relate.WITHIN
	default: // bEmpty
		return relate.DISJOINT | relate.CONTAINS
	}
}

// relateBoundingCirclesOnly asserts DISJOINT when the two bounding
// circles are disjoint (sound, since each circle contains its source
// shape) and otherwise returns no proofs.
func relateBoundingCirclesOnly(a, b Circle) relate.Relationship {
	if a.IsDisjointFrom(b) {
		return relate.DISJOINT
	}
	return 0
}

func relateCircleCircle(a, b Circle) relate.Relationship {
	var r relate.Relationship
	if a.IsDisjointFrom(b) {
		r |= relate.DISJOINT
	}
	if a.Contains(b) {
		r |= relate.CONTAINS
	}
	if b.Contains(a) {
		r |= relate.WITHIN
	}
	return r
}

func relateBoxBox(a, b Box) relate.Relationship {
	lonR := a.lon.Relate(b.lon)
	latR := a.lat.Relate(b.lat)
	var r relate.Relationship
	if !lonR.Intersects() || !latR.Intersects() {
		r |= relate.DISJOINT
	}
	if lonR.Has(relate.CONTAINS) && latR.Has(relate.CONTAINS) {
		r |= relate.CONTAINS
	}
	if lonR.Has(relate.WITHIN) && latR.Has(relate.WITHIN) {
		r |= relate.WITHIN
	}
	return r
}

// relateCircleBox combines a sound DISJOINT proof (via the circle's own
// bounding box, which always contains it) with bounding-shape proofs for
// CONTAINS (c contains the box's bounding circle) and WITHIN (the box
// contains c's bounding box) — conservative, but adequate for the
// "proof-or-unknown" contract.
func relateCircleBox(c Circle, b Box) relate.Relationship {
	var r relate.Relationship
	cBox := c.BoundingBox()
	if cBox.lon.IsDisjointFrom(b.lon) || cBox.lat.IsDisjointFrom(b.lat) {
		r |= relate.DISJOINT
	}
	if c.Contains(b.BoundingCircle()) {
		r |= relate.CONTAINS
	}
	if b.lon.Contains(cBox.lon) && b.lat.Contains(cBox.lat) {
		r |= relate.WITHIN
	}
	return r
}

// relateBoxPolygon reduces to the polygon's bounding box: a sound
// DISJOINT proof when the two boxes are disjoint, and a sound CONTAINS
// proof (box ⊇ polygon) when the box contains that bounding box.
func relateBoxPolygon(b Box, p ConvexPolygon) relate.Relationship {
	var r relate.Relationship
	pBox := p.BoundingBox()
	if b.lon.IsDisjointFrom(pBox.lon) || b.lat.IsDisjointFrom(pBox.lat) {
		r |= relate.DISJOINT
	}
	if b.lon.Contains(pBox.lon) && b.lat.Contains(pBox.lat) {
		r |= relate.CONTAINS
	}
	return r
}

// maxSquaredChordLengthError bounds the rounding error in a squared
// chord length comparison against a circle's own scl, matching the
// padding BoundingCircle already applies to its own scl.
const maxSquaredChordLengthError = 2e-15

func squaredChordLength(a, b s2math.UnitVector3d) float64 {
	return a.Vector3d().Sub(b.Vector3d()).SquaredNorm()
}

// edgeChordLengthExtrema returns the minimum and maximum squared chord
// length from center to any point on the great-circle edge (a, b),
// including its interior. A great-circle edge can bulge closer to or
// farther from an off-edge point than either endpoint, so the endpoint
// values alone are not enough.
//
// The full great circle's closest point to center lies at e, the
// component of center orthogonal to the edge's plane normal n = a×b;
// its antipode is the farthest point. Whether e or its antipode
// actually falls inside the (a, b) arc — rather than the
// complementary arc — is decided by the sign of each endpoint's
// projection onto the plane through center and n, mirroring the
// single-axis latitude-extremum test ConvexPolygon.BoundingBox uses.
func edgeChordLengthExtrema(center, a, b s2math.UnitVector3d) (minD, maxD float64) {
	ca, cb := squaredChordLength(center, a), squaredChordLength(center, b)
	minD, maxD = math.Min(ca, cb), math.Max(ca, cb)
	n := a.Cross(b)
	nn := n.Dot(n)
	if nn == 0 {
		return
	}
	p := center.Vector3d()
	pn := p.Dot(n)
	e := p.Scale(nn).Sub(n.Scale(pn))
	if e.SquaredNorm() == 0 {
		return
	}
	q := p.Cross(n)
	da, db := a.Vector3d().Dot(q), b.Vector3d().Dot(q)
	if da > 0 && db < 0 {
		if u, err := e.Normalize(); err == nil {
			if d := squaredChordLength(center, u); d < minD {
				minD = d
			}
		}
	} else if da < 0 && db > 0 {
		if u, err := e.Neg().Normalize(); err == nil {
			if d := squaredChordLength(center, u); d > maxD {
				maxD = d
			}
		}
	}
	return
}

// relatePolygonCircle returns p's relationship to c (CONTAINS: p ⊇ c,
// WITHIN: p ⊆ c), via vertex-distance classification against c's
// squared chord length, edge-interior extrema, and an antipode check
// for the case where c's complement punches a hole in p.
func relatePolygonCircle(p ConvexPolygon, c Circle) relate.Relationship {
	if c.IsFull() {
		return relate.WITHIN
	}
	verts := p.Vertices()
	n := len(verts)
	inside := false
	for k, v := range verts {
		d := squaredChordLength(v, c.Center())
		if math.Abs(d-c.SCL()) < maxSquaredChordLengthError {
			return 0 // a vertex sits on c's boundary: boundaries cross
		}
		b := d < c.SCL()
		if k == 0 {
			inside = b
		} else if inside != b {
			return 0 // vertices on both sides of c: boundaries cross
		}
	}
	if inside {
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			_, maxD := edgeChordLengthExtrema(c.Center(), verts[i], verts[j])
			if maxD > c.SCL()-maxSquaredChordLengthError {
				return 0 // an edge bulges out to (or past) c's boundary
			}
		}
		if p.ContainsPoint(c.Center().Neg()) {
			return 0 // c's complement punches a hole in p
		}
		return relate.WITHIN
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		minD, _ := edgeChordLengthExtrema(c.Center(), verts[i], verts[j])
		if minD < c.SCL()+maxSquaredChordLengthError {
			return 0 // an edge dips in to (or past) c's boundary
		}
	}
	if p.ContainsPoint(c.Center()) {
		return relate.CONTAINS
	}
	return relate.DISJOINT
}

// relatePolygonPolygon returns a's relationship to b via vertex-in-
// polygon containment (for CONTAINS/WITHIN) and, failing that, an
// edge-pair crossing test via four orientation checks per candidate
// pair (for DISJOINT vs. an undecided intersection).
func relatePolygonPolygon(a, b ConvexPolygon) relate.Relationship {
	av, bv := a.Vertices(), b.Vertices()
	allA, anyA := true, false
	for _, v := range av {
		in := b.ContainsPoint(v)
		allA = allA && in
		anyA = anyA || in
	}
	allB, anyB := true, false
	for _, v := range bv {
		in := a.ContainsPoint(v)
		allB = allB && in
		anyB = anyB || in
	}
	if allA || allB {
		var r relate.Relationship
		if allA {
			r |= relate.WITHIN
		}
		if allB {
			r |= relate.CONTAINS
		}
		return r
	}
	if anyA || anyB {
		return 0
	}
	na, nb := len(av), len(bv)
	for i := 0; i < na; i++ {
		p := (i - 1 + na) % na
		x, y := av[p], av[i]
		for j := 0; j < nb; j++ {
			q := (j - 1 + nb) % nb
			u, w := bv[q], bv[j]
			xuw := orientation.Of(x, u, w)
			ywu := orientation.Of(y, w, u)
			if xuw == ywu && xuw != 0 {
				uyx := orientation.Of(u, y, x)
				wxy := orientation.Of(w, x, y)
				if uyx == wxy && uyx == xuw {
					return 0 // a non-degenerate edge crossing
				}
			}
		}
	}
	return relate.DISJOINT
}

// RelateOverlaps derives the tri-state Overlap for a pair of regions.
func RelateOverlaps(a, b Region) Overlap {
	return overlapFromRelate(Relate(a, b))
}
