package interval

import (
	"math"

	"github.com/katalvlaran/sphgeom/relate"
	"github.com/katalvlaran/sphgeom/s2math"
)

// AngleInterval is a closed interval [a, b] over s2math.Angle. It behaves
// exactly like Interval1d (empty iff !(a<=b), a==b is a point, supports
// the full interval [-Inf, Inf]) but is typed over Angle so callers can't
// accidentally mix plain reals with angular quantities.
type AngleInterval struct {
	a, b s2math.Angle
}

func NewAngleInterval(a, b s2math.Angle) AngleInterval { return AngleInterval{a, b} }

func PointAngleInterval(x s2math.Angle) AngleInterval { return AngleInterval{x, x} }

func EmptyAngleInterval() AngleInterval {
	return AngleInterval{s2math.NewAngle(1), s2math.NewAngle(0)}
}

func FullAngleInterval() AngleInterval {
	return AngleInterval{s2math.NewAngle(math.Inf(-1)), s2math.NewAngle(math.Inf(1))}
}

func (i AngleInterval) A() s2math.Angle { return i.a }
func (i AngleInterval) B() s2math.Angle { return i.b }

func (i AngleInterval) IsEmpty() bool { return !i.a.LessEqual(i.b) }

func (i AngleInterval) Center() s2math.Angle { return i.a.Add(i.b).Mul(0.5) }

func (i AngleInterval) Size() s2math.Angle { return i.b.Sub(i.a) }

func (i AngleInterval) Equal(o AngleInterval) bool {
	return (i.a.Equal(o.a) && i.b.Equal(o.b)) || (i.IsEmpty() && o.IsEmpty())
}

func (i AngleInterval) ContainsPoint(x s2math.Angle) bool {
	return (i.a.LessEqual(x) && x.LessEqual(i.b)) || x.IsNaN()
}

func (i AngleInterval) Contains(o AngleInterval) bool {
	if o.IsEmpty() {
		return true
	}
	if i.IsEmpty() {
		return false
	}
	return i.a.LessEqual(o.a) && o.b.LessEqual(i.b)
}

func (i AngleInterval) IsDisjointFrom(o AngleInterval) bool {
	if i.IsEmpty() || o.IsEmpty() {
		return true
	}
	return o.b.Less(i.a) || i.b.Less(o.a)
}

func (i AngleInterval) Intersects(o AngleInterval) bool { return !i.IsDisjointFrom(o) }

func (i AngleInterval) IsWithin(o AngleInterval) bool { return o.Contains(i) }

func (i AngleInterval) Relate(o AngleInterval) relate.Relationship {
	var r relate.Relationship
	if i.IsDisjointFrom(o) {
		r |= relate.DISJOINT
	}
	if i.Contains(o) {
		r |= relate.CONTAINS
	}
	if i.IsWithin(o) {
		r |= relate.WITHIN
	}
	return r
}

func (i AngleInterval) ClipTo(o AngleInterval) AngleInterval {
	if o.IsEmpty() {
		return o
	}
	if i.IsEmpty() {
		return i
	}
	a := i.a
	if o.a.Radians() > a.Radians() {
		a = o.a
	}
	b := i.b
	if o.b.Radians() < b.Radians() {
		b = o.b
	}
	return AngleInterval{a, b}
}

func (i AngleInterval) ExpandTo(o AngleInterval) AngleInterval {
	if i.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return i
	}
	a := i.a
	if o.a.Less(a) {
		a = o.a
	}
	b := i.b
	if b.Less(o.b) {
		b = o.b
	}
	return AngleInterval{a, b}
}

func (i AngleInterval) ExpandToPoint(x s2math.Angle) AngleInterval {
	if i.IsEmpty() {
		return AngleInterval{x, x}
	}
	if x.Less(i.a) {
		return AngleInterval{x, i.b}
	}
	if i.b.Less(x) {
		return AngleInterval{i.a, x}
	}
	return i
}

// DilateBy grows (x > 0) or shrinks (x < 0) both endpoints outward/inward
// by x; a NaN x or an empty interval leaves i unaffected.
func (i AngleInterval) DilateBy(x s2math.Angle) AngleInterval {
	if x.IsNaN() || i.IsEmpty() {
		return i
	}
	return AngleInterval{i.a.Sub(x), i.b.Add(x)}
}

func (i AngleInterval) ErodeBy(x s2math.Angle) AngleInterval { return i.DilateBy(x.Neg()) }
