package interval

import (
	"math"

	"github.com/katalvlaran/sphgeom/relate"
)

// Interval1d is a closed interval [a, b] over the finite reals. An
// interval with b < a (or either endpoint NaN) is empty; a == b is a
// single point; Full() represents [-Inf, Inf].
type Interval1d struct {
	a, b float64
}

// NewInterval1d returns the closed interval [a, b]. Passing a > b (or a
// NaN endpoint) produces an empty interval, per the type's invariant.
func NewInterval1d(a, b float64) Interval1d { return Interval1d{a, b} }

// PointInterval1d returns the single-point interval {x}.
func PointInterval1d(x float64) Interval1d { return Interval1d{x, x} }

// EmptyInterval1d returns the canonical empty interval.
func EmptyInterval1d() Interval1d { return Interval1d{1, 0} }

// FullInterval1d returns [-Inf, Inf].
func FullInterval1d() Interval1d { return Interval1d{math.Inf(-1), math.Inf(1)} }

func (i Interval1d) A() float64 { return i.a }
func (i Interval1d) B() float64 { return i.b }

// IsEmpty reports whether i contains no points.
func (i Interval1d) IsEmpty() bool { return !(i.a <= i.b) }

// Center returns (a+b)/2; arbitrary for empty intervals.
func (i Interval1d) Center() float64 { return 0.5 * (i.a + i.b) }

// Size returns b - a; negative or NaN for empty intervals.
func (i Interval1d) Size() float64 { return i.b - i.a }

func (i Interval1d) Equal(o Interval1d) bool {
	return (i.a == o.a && i.b == o.b) || (i.IsEmpty() && o.IsEmpty())
}

// ContainsPoint reports whether x lies within i.
func (i Interval1d) ContainsPoint(x float64) bool {
	return (i.a <= x && x <= i.b) || x != x
}

// Contains reports whether i ⊇ o.
func (i Interval1d) Contains(o Interval1d) bool {
	if o.IsEmpty() {
		return true
	}
	if i.IsEmpty() {
		return false
	}
	return i.a <= o.a && i.b >= o.b
}

// IsDisjointFromPoint reports whether i ∩ {x} = ∅.
func (i Interval1d) IsDisjointFromPoint(x float64) bool { return !i.IntersectsPoint(x) }

// IsDisjointFrom reports whether i ∩ o = ∅.
func (i Interval1d) IsDisjointFrom(o Interval1d) bool {
	if i.IsEmpty() || o.IsEmpty() {
		return true
	}
	return i.a > o.b || i.b < o.a
}

func (i Interval1d) IntersectsPoint(x float64) bool { return i.a <= x && x <= i.b }

func (i Interval1d) Intersects(o Interval1d) bool { return !i.IsDisjointFrom(o) }

// IsWithinPoint reports whether i ⊆ {x}: true only for the point interval
// {x} itself, or for any empty interval.
func (i Interval1d) IsWithinPoint(x float64) bool {
	return (i.a == x && i.b == x) || i.IsEmpty()
}

// IsWithin reports whether i ⊆ o.
func (i Interval1d) IsWithin(o Interval1d) bool { return o.Contains(i) }

// RelatePoint returns the relationship of i to the singleton {x}.
func (i Interval1d) RelatePoint(x float64) relate.Relationship {
	var r relate.Relationship
	if i.IsDisjointFromPoint(x) {
		r |= relate.DISJOINT
	}
	if i.Contains(PointInterval1d(x)) {
		r |= relate.CONTAINS
	}
	if i.IsWithinPoint(x) {
		r |= relate.WITHIN
	}
	return r
}

// Relate returns the relationship of i to o.
func (i Interval1d) Relate(o Interval1d) relate.Relationship {
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

// ClipToPoint shrinks i to its intersection with {x} (or, for NaN x, to the
// single-point interval {NaN} — NaN poisons the result, as it does
// throughout this package).
func (i Interval1d) ClipToPoint(x float64) Interval1d {
	if x != x {
		return Interval1d{x, x}
	}
	return Interval1d{math.Max(i.a, x), math.Min(i.b, x)}
}

// ClipTo returns i ∩ o.
func (i Interval1d) ClipTo(o Interval1d) Interval1d {
	if o.IsEmpty() {
		return o
	}
	if i.IsEmpty() {
		return i
	}
	return Interval1d{math.Max(i.a, o.a), math.Min(i.b, o.b)}
}

// ExpandToPoint minimally grows i to contain x.
func (i Interval1d) ExpandToPoint(x float64) Interval1d {
	if i.IsEmpty() {
		return Interval1d{x, x}
	}
	if x < i.a {
		return Interval1d{x, i.b}
	}
	if x > i.b {
		return Interval1d{i.a, x}
	}
	return i
}

// ExpandTo returns the hull of i and o.
func (i Interval1d) ExpandTo(o Interval1d) Interval1d {
	if i.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return i
	}
	return Interval1d{math.Min(i.a, o.a), math.Max(i.b, o.b)}
}

// DilateBy grows (x > 0) or shrinks (x < 0) both endpoints outward/inward
// by x. A NaN x, or an empty interval, is unaffected.
func (i Interval1d) DilateBy(x float64) Interval1d {
	if x != x || i.IsEmpty() {
		return i
	}
	return Interval1d{i.a - x, i.b + x}
}

// ErodeBy is DilateBy(-x).
func (i Interval1d) ErodeBy(x float64) Interval1d { return i.DilateBy(-x) }
