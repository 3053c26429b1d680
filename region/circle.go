package region

import (
	"math"

	"github.com/katalvlaran/sphgeom/interval"
	"github.com/katalvlaran/sphgeom/relate"
	"github.com/katalvlaran/sphgeom/s2math"
)

// asinEpsilon is the worst-case absolute error of std::asin/math.Asin
// near its domain boundary.
const asinEpsilon = 1.0 / (1 << 52)

// Circle is a spherical cap: the set of points within angular distance θ
// of a center, represented by the center and scl = 4·sin²(θ/2), the
// squared Euclidean chord length — this avoids a trig call in the
// containment predicate's hot path.
type Circle struct {
	center s2math.UnitVector3d
	scl    float64
}

// NewCircle builds the cap of opening angle theta around center. A
// negative or NaN theta yields the empty circle; theta >= π yields Full.
func NewCircle(center s2math.UnitVector3d, theta s2math.Angle) Circle {
	t := theta.Radians()
	if math.IsNaN(t) || t < 0 {
		return EmptyCircle()
	}
	if t >= math.Pi {
		return FullCircle()
	}
	s := math.Sin(t / 2)
	return Circle{center: center, scl: 4 * s * s}
}

// NewCircleFromSCL builds a circle directly from its squared chord length.
func NewCircleFromSCL(center s2math.UnitVector3d, scl float64) Circle {
	if math.IsNaN(scl) || scl < 0 {
		return EmptyCircle()
	}
	return Circle{center: center, scl: scl}
}

func EmptyCircle() Circle { return Circle{scl: -1} }
func FullCircle() Circle  { return Circle{scl: 4} }

func (c Circle) Center() s2math.UnitVector3d { return c.center }
func (c Circle) SCL() float64                { return c.scl }

func (c Circle) IsEmpty() bool { return math.IsNaN(c.scl) || c.scl < 0 }
func (c Circle) IsFull() bool  { return c.scl >= 4 }

// OpeningAngle returns θ; NaN if empty, π if full.
func (c Circle) OpeningAngle() s2math.Angle {
	if c.IsEmpty() {
		return s2math.Angle(math.NaN())
	}
	if c.IsFull() {
		return s2math.Angle(math.Pi)
	}
	return s2math.Angle(2 * math.Asin(math.Sqrt(c.scl)/2))
}

func (c Circle) Clone() Region { return c }

func (c Circle) ContainsPoint(v s2math.UnitVector3d) bool {
	if c.IsFull() {
		return true
	}
	if c.IsEmpty() {
		return false
	}
	d := v.Vector3d().Sub(c.center.Vector3d())
	return d.SquaredNorm() <= c.scl
}

// centerSeparation returns the angle between c's and o's centers.
func centerSeparation(a, b s2math.UnitVector3d) s2math.Angle {
	return s2math.Angle(math.Acos(clamp(a.Dot(b), -1, 1)))
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Contains reports whether c ⊇ o.
func (c Circle) Contains(o Circle) bool {
	if o.IsEmpty() {
		return true
	}
	if c.IsEmpty() {
		return false
	}
	if c.IsFull() {
		return true
	}
	if o.IsFull() {
		return false
	}
	d := centerSeparation(c.center, o.center)
	return d.Radians() <= c.OpeningAngle().Radians()-o.OpeningAngle().Radians()+4*asinEpsilon
}

// IsDisjointFrom reports whether c ∩ o = ∅.
func (c Circle) IsDisjointFrom(o Circle) bool {
	if c.IsEmpty() || o.IsEmpty() {
		return true
	}
	if c.IsFull() || o.IsFull() {
		return false
	}
	d := centerSeparation(c.center, o.center)
	return d.Radians() > c.OpeningAngle().Radians()+o.OpeningAngle().Radians()+4*asinEpsilon
}

func (c Circle) Intersects(o Circle) bool { return !c.IsDisjointFrom(o) }

// ExpandTo returns the minimal bounding circle of c and o.
func (c Circle) ExpandTo(o Circle) Circle {
	if c.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return c
	}
	if c.IsFull() || o.IsFull() {
		return FullCircle()
	}
	if c.Contains(o) {
		return c
	}
	if o.Contains(c) {
		return o
	}
	d := centerSeparation(c.center, o.center)
	a1, a2 := c.OpeningAngle(), o.OpeningAngle()
	theta := 0.5 * (d.Radians() + a1.Radians() + a2.Radians())
	if theta >= math.Pi {
		return FullCircle()
	}
	// Rotate c's center toward o's center by (theta - a1) around the
	// normal of the plane through both centers.
	axis, err := s2math.OrthogonalTo(c.center, o.center)
	if err != nil {
		// Antipodal centers: any circle spanning both is already full.
		return FullCircle()
	}
	newCenter := s2math.Rotate(c.center, axis, s2math.Angle(theta-a1.Radians()))
	result := NewCircle(newCenter, s2math.Angle(theta))
	result.scl += asinEpsilon // inflate so the MBC reliably contains both operands
	return result
}

func (c Circle) ExpandToPoint(v s2math.UnitVector3d) Circle {
	return c.ExpandTo(NewCircle(v, 0))
}

// ClipTo returns a conservative intersection: empty if disjoint, else the
// smaller of the two operands, which is conservative but not minimal.
func (c Circle) ClipTo(o Circle) Circle {
	if c.IsDisjointFrom(o) {
		return EmptyCircle()
	}
	if c.scl <= o.scl {
		return c
	}
	return o
}

// DilateBy grows (r > 0) or shrinks (r < 0) the opening angle by r.
func (c Circle) DilateBy(r s2math.Angle) Circle {
	if c.IsEmpty() || r.IsNaN() {
		return c
	}
	return NewCircle(c.center, s2math.Angle(c.OpeningAngle().Radians()+r.Radians()))
}

// Complement negates the center and replaces θ with π − θ.
func (c Circle) Complement() Circle {
	if c.IsEmpty() {
		return FullCircle()
	}
	if c.IsFull() {
		return EmptyCircle()
	}
	return NewCircle(c.center.Neg(), s2math.Angle(math.Pi-c.OpeningAngle().Radians()))
}

func (c Circle) BoundingCircle() Circle { return c }

// BoundingBox computes a conservative lon/lat rectangle:
// longitude half-width via halfWidthForCircle with
// a slightly inflated radius, latitude band padded by asinEpsilon.
func (c Circle) BoundingBox() Box {
	if c.IsEmpty() {
		return EmptyBox()
	}
	if c.IsFull() {
		return FullBox()
	}
	ll := s2math.LonLatOf(c.center)
	r := c.OpeningAngle().Radians() + 2*asinEpsilon
	halfWidth := halfWidthForCircle(s2math.Angle(r), ll.Lat)
	lon, err := interval.NewNormalizedAngleIntervalFromRaw(ll.Lon.Radians()-halfWidth.Radians(), ll.Lon.Radians()+halfWidth.Radians())
	if err != nil {
		lon = interval.FullNormalizedAngleInterval()
	}
	latLo := ll.Lat.Radians() - r - asinEpsilon
	latHi := ll.Lat.Radians() + r + asinEpsilon
	if latLo < -math.Pi/2 {
		latLo = -math.Pi / 2
	}
	if latHi > math.Pi/2 {
		latHi = math.Pi / 2
	}
	return NewBox(lon, interval.NewAngleInterval(s2math.Angle(latLo), s2math.Angle(latHi)))
}

// BoundingBox3d unions, for each axis, membership of ±e_i with the
// boundary extremum along that axis.
func (c Circle) BoundingBox3d() Box3d {
	if c.IsEmpty() {
		return Box3d{interval.EmptyInterval1d(), interval.EmptyInterval1d(), interval.EmptyInterval1d()}
	}
	if c.IsFull() {
		full := interval.NewInterval1d(-1, 1)
		return Box3d{full, full, full}
	}
	const pad = 6e-16
	cosA := 1 - c.scl/2
	sinA := math.Sqrt(clamp(1-cosA*cosA, 0, 1))
	axisInterval := func(e s2math.UnitVector3d, center float64) interval.Interval1d {
		// Extremum of e_i along the circle boundary, analytic form:
		// e_i*cosA + sqrt(1-e_i^2) term bounding the
		// boundary's projection onto this axis.
		extent := math.Sqrt(clamp(1-center*center, 0, 1)) * sinA
		lo := center*cosA - extent - pad
		hi := center*cosA + extent + pad
		if c.ContainsPoint(e) {
			hi = math.Max(hi, 1)
		}
		if c.ContainsPoint(e.Neg()) {
			lo = math.Min(lo, -1)
		}
		if lo < -1 {
			lo = -1
		}
		if hi > 1 {
			hi = 1
		}
		return interval.NewInterval1d(lo, hi)
	}
	return Box3d{
		X: axisInterval(s2math.UnitX, c.center.X()),
		Y: axisInterval(s2math.UnitY, c.center.Y()),
		Z: axisInterval(s2math.UnitZ, c.center.Z()),
	}
}

func (c Circle) Relate(other Region) relate.Relationship { return Relate(c, other) }
func (c Circle) Overlaps(other Region) Overlap            { return RelateOverlaps(c, other) }

// Encode implements the Region common contract; the wire format is
// defined in this package's encode.go (spec.md §4.F).
func (c Circle) Encode() []byte { return encodeCircle(c) }
