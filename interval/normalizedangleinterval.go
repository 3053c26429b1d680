package interval

import (
	"errors"
	"math"

	"github.com/katalvlaran/sphgeom/relate"
	"github.com/katalvlaran/sphgeom/s2math"
)

// ErrInvalidEndpointOrder is returned by NewNormalizedAngleIntervalFromRaw
// when its two raw (un-normalized) endpoints are not given in ascending
// order; the caller is expected to supply "how far around" the interval
// goes, so a descending pair is ambiguous rather than merely backwards.
var ErrInvalidEndpointOrder = errors.New("interval: raw endpoints must satisfy a <= b")

// NormalizedAngleInterval is a closed interval [a, b] on the circular
// domain of s2math.NormalizedAngle. Unlike AngleInterval, b < a does not
// mean empty — it means the interval wraps through the 0 ≡ 2π seam
// (spec.md §3). Internally a and b are stored as raw radians rather than
// via s2math.NormalizedAngle directly, because the canonical Full
// interval's upper endpoint is the literal value 2π — a value
// s2math.NewNormalizedAngle would fold back to 0.
type NormalizedAngleInterval struct {
	a, b float64
}

const twoPi = s2math.TwoPi

// NewNormalizedAngleIntervalFromEndpoints builds the interval with the
// given (already-normalized) endpoints directly, with no validation: b
// may be less than a, denoting a wrapping interval.
func NewNormalizedAngleIntervalFromEndpoints(a, b s2math.NormalizedAngle) NormalizedAngleInterval {
	return NormalizedAngleInterval{a.Radians(), b.Radians()}
}

// PointNormalizedAngleInterval returns the single-point interval {x}.
func PointNormalizedAngleInterval(x s2math.NormalizedAngle) NormalizedAngleInterval {
	return NormalizedAngleInterval{x.Radians(), x.Radians()}
}

// EmptyNormalizedAngleInterval returns the canonical empty interval.
func EmptyNormalizedAngleInterval() NormalizedAngleInterval {
	return NormalizedAngleInterval{math.NaN(), math.NaN()}
}

// FullNormalizedAngleInterval returns the interval covering the entire
// circle, represented canonically as [0, 2π].
func FullNormalizedAngleInterval() NormalizedAngleInterval {
	return NormalizedAngleInterval{0, twoPi}
}

// NewNormalizedAngleIntervalFromRaw builds an interval from two raw
// (un-normalized) radian values given in ascending order: a <= b. If
// b - a spans a full turn or more, the result is Full; otherwise each
// endpoint is normalized into [0, 2π), which may produce a wrapping
// interval if normalization reorders them. Fails with
// ErrInvalidEndpointOrder if a > b.
func NewNormalizedAngleIntervalFromRaw(a, b float64) (NormalizedAngleInterval, error) {
	if math.IsNaN(a) || math.IsNaN(b) {
		return EmptyNormalizedAngleInterval(), nil
	}
	if a > b {
		return NormalizedAngleInterval{}, ErrInvalidEndpointOrder
	}
	if b-a >= twoPi {
		return FullNormalizedAngleInterval(), nil
	}
	na := s2math.NewNormalizedAngle(s2math.Angle(a)).Radians()
	nb := s2math.NewNormalizedAngle(s2math.Angle(b)).Radians()
	return NormalizedAngleInterval{na, nb}, nil
}

func (i NormalizedAngleInterval) A() s2math.NormalizedAngle { return s2math.NormalizedAngle(i.a) }
func (i NormalizedAngleInterval) B() s2math.NormalizedAngle { return s2math.NormalizedAngle(i.b) }

// IsEmpty reports whether i carries the canonical NaN sentinel.
func (i NormalizedAngleInterval) IsEmpty() bool { return math.IsNaN(i.a) || math.IsNaN(i.b) }

// IsFull reports whether i is exactly the canonical full-circle form.
func (i NormalizedAngleInterval) IsFull() bool { return i.a == 0 && i.b == twoPi }

// Wraps reports whether i crosses the 0 ≡ 2π seam (a > b). Always false
// for an empty interval (NaN comparisons are false).
func (i NormalizedAngleInterval) Wraps() bool { return i.a > i.b }

func (i NormalizedAngleInterval) Center() s2math.NormalizedAngle {
	if i.Wraps() {
		c := 0.5 * (i.a + i.b + twoPi)
		if c >= twoPi {
			c -= twoPi
		}
		return s2math.NormalizedAngle(c)
	}
	return s2math.NormalizedAngle(0.5 * (i.a + i.b))
}

func (i NormalizedAngleInterval) Size() s2math.Angle {
	if i.IsEmpty() {
		return s2math.Angle(math.NaN())
	}
	if i.Wraps() {
		return s2math.Angle(twoPi - i.a + i.b)
	}
	return s2math.Angle(i.b - i.a)
}

func (i NormalizedAngleInterval) Equal(o NormalizedAngleInterval) bool {
	return (i.a == o.a && i.b == o.b) || (i.IsEmpty() && o.IsEmpty())
}

// ContainsPoint reports whether x lies within i.
func (i NormalizedAngleInterval) ContainsPoint(x s2math.NormalizedAngle) bool {
	if x.IsNaN() {
		return i.IsEmpty()
	}
	if i.IsEmpty() {
		return false
	}
	xr := x.Radians()
	if i.Wraps() {
		return xr >= i.a || xr <= i.b
	}
	return i.a <= xr && xr <= i.b
}

// Contains reports whether i ⊇ o.
func (i NormalizedAngleInterval) Contains(o NormalizedAngleInterval) bool {
	if o.IsEmpty() {
		return true
	}
	if i.IsEmpty() {
		return false
	}
	if i.IsFull() {
		return true
	}
	if o.IsFull() {
		return false
	}
	switch {
	case !i.Wraps() && !o.Wraps():
		return i.a <= o.a && o.b <= i.b
	case !i.Wraps() && o.Wraps():
		return false
	case i.Wraps() && !o.Wraps():
		return o.a >= i.a || o.b <= i.b
	default: // both wrap
		return i.a <= o.a && o.b <= i.b
	}
}

// IsDisjointFrom reports whether i ∩ o = ∅.
func (i NormalizedAngleInterval) IsDisjointFrom(o NormalizedAngleInterval) bool {
	if i.IsEmpty() || o.IsEmpty() {
		return true
	}
	if i.IsFull() || o.IsFull() {
		return false
	}
	switch {
	case !i.Wraps() && !o.Wraps():
		return i.b < o.a || o.b < i.a
	case i.Wraps() && !o.Wraps():
		return o.a > i.b && o.b < i.a
	case !i.Wraps() && o.Wraps():
		return i.a > o.b && i.b < o.a
	default: // both wrap: every wrapping interval covers angle 0
		return false
	}
}

func (i NormalizedAngleInterval) Intersects(o NormalizedAngleInterval) bool {
	return !i.IsDisjointFrom(o)
}

func (i NormalizedAngleInterval) IsWithin(o NormalizedAngleInterval) bool { return o.Contains(i) }

// RelatePoint returns the relationship of i to the singleton {x}.
func (i NormalizedAngleInterval) RelatePoint(x s2math.NormalizedAngle) relate.Relationship {
	return i.Relate(PointNormalizedAngleInterval(x))
}

// IsWithinPoint reports whether i ⊆ {x}: true only for the point
// interval {x} itself, or for any empty interval.
func (i NormalizedAngleInterval) IsWithinPoint(x s2math.NormalizedAngle) bool {
	if i.IsEmpty() {
		return true
	}
	return !x.IsNaN() && i.a == x.Radians() && i.b == x.Radians()
}

func (i NormalizedAngleInterval) Relate(o NormalizedAngleInterval) relate.Relationship {
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

// arc is an "unrolled" representation of a circular interval: start is
// its lower endpoint folded into [0, 2π), and end = start + length with
// length in [0, 2π]. Every NormalizedAngleInterval value (point, plain,
// wrapping, or full) is exactly one such arc; this lets ExpandTo and
// ClipTo treat all four shapes uniformly instead of branching on Wraps().
type arc struct {
	start, length float64
}

func (i NormalizedAngleInterval) toArc() arc {
	return arc{start: i.a, length: i.Size().Radians()}
}

func arcToInterval(start, length float64) NormalizedAngleInterval {
	if length >= twoPi {
		return FullNormalizedAngleInterval()
	}
	if length < 0 {
		length = 0
	}
	a := math.Mod(start, twoPi)
	if a < 0 {
		a += twoPi
	}
	b := a + length
	if b >= twoPi {
		b -= twoPi
	}
	return NormalizedAngleInterval{a, b}
}

// ExpandTo returns the smallest NormalizedAngleInterval containing the
// union of i and o. When neither contains the other and the two arcs are
// disjoint, there are two ways to bridge them into one arc; this
// implementation always closes the SMALLER of the two candidate gaps
// (on an exact tie it extends i forward from its own start), which is
// deterministic and always minimal, though `x.ExpandTo(y)` and
// `y.ExpandTo(x)` can differ when the two gaps tie exactly.
func (i NormalizedAngleInterval) ExpandTo(o NormalizedAngleInterval) NormalizedAngleInterval {
	if i.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return i
	}
	if i.IsFull() || o.IsFull() {
		return FullNormalizedAngleInterval()
	}
	a1 := i.toArc()
	a2 := o.toArc()
	s1, e1 := a1.start, a1.start+a1.length
	s2, e2 := a2.start, a2.start+a2.length
	if s2 < s1 {
		s2 += twoPi
		e2 += twoPi
	}
	if s2 <= e1 {
		// Overlapping or touching in this linear window: simple hull.
		hi := e1
		if e2 > hi {
			hi = e2
		}
		return arcToInterval(s1, hi-s1)
	}
	gapDirect := s2 - e1
	gapAround := (s1 + twoPi) - e2
	if gapDirect <= gapAround {
		return arcToInterval(s1, e2-s1)
	}
	return arcToInterval(s2, (e1+twoPi)-s2)
}

// ExpandToPoint is ExpandTo applied to the single-point interval {x}.
func (i NormalizedAngleInterval) ExpandToPoint(x s2math.NormalizedAngle) NormalizedAngleInterval {
	return i.ExpandTo(PointNormalizedAngleInterval(x))
}

// ClipTo returns a conservative approximation of i ∩ o. When the true
// intersection is a single connected arc, the result is exact. When it
// genuinely consists of two disjoint arcs (possible only when at least
// one of i and o wraps), this returns the larger of the two pieces rather than
// attempting to represent both — the same conservative simplification
// spec.md §4.G.1 documents for Circle.ClipTo ("returns the smaller of the
// two operands"; here, the larger surviving piece, since unlike circles
// there is no single operand to prefer).
func (i NormalizedAngleInterval) ClipTo(o NormalizedAngleInterval) NormalizedAngleInterval {
	if i.IsEmpty() || o.IsEmpty() {
		return EmptyNormalizedAngleInterval()
	}
	if i.IsFull() {
		return o
	}
	if o.IsFull() {
		return i
	}
	a1 := i.toArc()
	a2 := o.toArc()
	s1, e1 := a1.start, a1.start+a1.length
	s2, e2 := a2.start, a2.start+a2.length

	type piece struct{ lo, hi float64 }
	var pieces []piece
	for _, shift := range [2]float64{0, -twoPi} {
		s2s, e2s := s2+shift, e2+shift
		lo := s1
		if s2s > lo {
			lo = s2s
		}
		hi := e1
		if e2s < hi {
			hi = e2s
		}
		if lo <= hi {
			pieces = append(pieces, piece{lo, hi})
		}
	}
	// Also try the symmetric shift of arc1 back into arc2's frame, in
	// case s1 > s2 initially pushed a valid overlap out of range above.
	for _, shift := range [2]float64{0, -twoPi} {
		s1s, e1s := s1+shift, e1+shift
		lo := s2
		if s1s > lo {
			lo = s1s
		}
		hi := e2
		if e1s < hi {
			hi = e1s
		}
		if lo <= hi {
			dup := false
			for _, p := range pieces {
				if math.Abs(p.lo-lo) < 1e-12 && math.Abs(p.hi-hi) < 1e-12 {
					dup = true
					break
				}
			}
			if !dup {
				pieces = append(pieces, piece{lo, hi})
			}
		}
	}
	if len(pieces) == 0 {
		return EmptyNormalizedAngleInterval()
	}
	best := pieces[0]
	for _, p := range pieces[1:] {
		if p.hi-p.lo > best.hi-best.lo {
			best = p
		}
	}
	return arcToInterval(best.lo, best.hi-best.lo)
}

func (i NormalizedAngleInterval) ClipToPoint(x s2math.NormalizedAngle) NormalizedAngleInterval {
	return i.ClipTo(PointNormalizedAngleInterval(x))
}

// DilateBy grows (x > 0) or shrinks (x < 0) i by x on both ends, measured
// along the circle; a NaN x or an empty interval is unaffected.
func (i NormalizedAngleInterval) DilateBy(x s2math.Angle) NormalizedAngleInterval {
	if x.IsNaN() || i.IsEmpty() {
		return i
	}
	xr := x.Radians()
	length := i.Size().Radians() + 2*xr
	if length <= 0 {
		// Eroding a non-empty interval down to nothing yields empty,
		// matching dilateBy/erodeBy being inverse operations up to the
		// point of total collapse (spec.md §8 property 9).
		return EmptyNormalizedAngleInterval()
	}
	return arcToInterval(i.a-xr, length)
}

func (i NormalizedAngleInterval) ErodeBy(x s2math.Angle) NormalizedAngleInterval {
	return i.DilateBy(x.Neg())
}
