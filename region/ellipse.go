package region

import (
	"math"

	"github.com/katalvlaran/sphgeom/interval"
	"github.com/katalvlaran/sphgeom/relate"
	"github.com/katalvlaran/sphgeom/s2math"
)

// Ellipse is a spherical ellipse: the locus of points whose sum of
// angular distances to two foci equals 2α. Rather than storing the
// canonical-frame transform and (α, β, γ) triple directly,
// this implementation stores the two foci and α
// and derives the canonical quantities on demand — the foci-plus-α form
// doubles as the encode() wire representation with no extra bookkeeping.
type Ellipse struct {
	focus1, focus2 s2math.UnitVector3d
	alpha          s2math.Angle
}

// NewEllipse builds the ellipse with the given foci and major opening
// angle alpha. Negative alpha yields empty; alpha >= π yields full.
func NewEllipse(focus1, focus2 s2math.UnitVector3d, alpha s2math.Angle) Ellipse {
	a := alpha.Radians()
	if math.IsNaN(a) || a < 0 {
		return EmptyEllipse()
	}
	return Ellipse{focus1: focus1, focus2: focus2, alpha: alpha}
}

func EmptyEllipse() Ellipse {
	return Ellipse{alpha: s2math.Angle(-1)}
}

func FullEllipse() Ellipse {
	return Ellipse{alpha: s2math.Angle(math.Pi)}
}

func (e Ellipse) IsEmpty() bool { return e.alpha.Radians() < 0 || e.alpha.IsNaN() }
func (e Ellipse) IsFull() bool  { return e.alpha.Radians() >= math.Pi }

func (e Ellipse) Foci() (s2math.UnitVector3d, s2math.UnitVector3d) { return e.focus1, e.focus2 }
func (e Ellipse) Alpha() s2math.Angle                              { return e.alpha }

// focalHalfAngle (γ) is half the angular separation between the foci.
func (e Ellipse) focalHalfAngle() float64 {
	return centerSeparation(e.focus1, e.focus2).Radians() / 2
}

// canonicalCoords projects v into the frame where the foci lie on the
// x-axis, returning (x, y, z) such that containment reduces to
// z ≥ 0 and x²cot²α + y²cot²β ≤ z² when α ≤ π/2, and (as the complement
// of the antipodal ellipse) to z ≥ 0 or x²cot²α + y²cot²β ≥ z² when α > π/2.
func (e Ellipse) canonicalCoords(v s2math.UnitVector3d) (x, y, z float64) {
	// zAxis (the ellipse's own north pole) is the bisector of the two
	// foci; xAxis is focus1's component orthogonal to zAxis, so the foci
	// lie in the x-z plane as the geometry requires.
	bisector := e.focus1.Vector3d().Add(e.focus2.Vector3d())
	zAxis, errZ := bisector.Normalize()
	if errZ != nil {
		zAxis = e.focus1 // coincident or antipodal foci: degenerates to a circle
	}
	xAxis := e.focus1.Vector3d().Sub(zAxis.Vector3d().Scale(e.focus1.Dot(zAxis)))
	xu, errX := xAxis.Normalize()
	if errX != nil {
		xu = s2math.UnitX
	}
	yu, errY := s2math.OrthogonalTo(zAxis, xu)
	if errY != nil {
		yu = s2math.UnitY
	}
	vv := v.Vector3d()
	return vv.Dot(xu.Vector3d()), vv.Dot(yu.Vector3d()), vv.Dot(zAxis.Vector3d())
}

func (e Ellipse) beta() float64 {
	// β (minor opening) relates to α and γ via spherical-ellipse
	// geometry: cosβ = cosα / cosγ, clamped into [-1,1] for near-
	// degenerate (γ→α) inputs.
	gamma := e.focalHalfAngle()
	return math.Acos(clamp(math.Cos(e.alpha.Radians())/math.Cos(gamma), -1, 1))
}

func (e Ellipse) ContainsPoint(v s2math.UnitVector3d) bool {
	if e.IsFull() {
		return true
	}
	if e.IsEmpty() {
		return false
	}
	x, y, z := e.canonicalCoords(v)
	cotA := 1 / math.Tan(e.alpha.Radians())
	cotB := 1 / math.Tan(e.beta())
	q := x*x*cotA*cotA + y*y*cotB*cotB
	if e.alpha.Radians() <= math.Pi/2 {
		return z >= 0 && q <= z*z
	}
	return z >= 0 || q >= z*z
}

// Complement swaps each focus with its antipode and replaces alpha with
// π − alpha.
func (e Ellipse) Complement() Ellipse {
	if e.IsEmpty() {
		return FullEllipse()
	}
	if e.IsFull() {
		return EmptyEllipse()
	}
	return NewEllipse(e.focus1.Neg(), e.focus2.Neg(), s2math.Angle(math.Pi-e.alpha.Radians()))
}

func (e Ellipse) Clone() Region { return e }

// BoundingCircle returns the circle centered on the foci bisector with
// opening alpha, which always contains the ellipse since alpha is its
// maximal angular extent from that center.
func (e Ellipse) BoundingCircle() Circle {
	if e.IsEmpty() {
		return EmptyCircle()
	}
	if e.IsFull() {
		return FullCircle()
	}
	bisector := e.focus1.Vector3d().Add(e.focus2.Vector3d())
	center, err := bisector.Normalize()
	if err != nil {
		center = e.focus1
	}
	return NewCircle(center, e.alpha)
}

func (e Ellipse) BoundingBox() Box {
	if e.IsEmpty() {
		return EmptyBox()
	}
	c := e.BoundingCircle()
	return c.BoundingBox()
}

func (e Ellipse) BoundingBox3d() Box3d {
	if e.IsEmpty() {
		return Box3d{interval.EmptyInterval1d(), interval.EmptyInterval1d(), interval.EmptyInterval1d()}
	}
	return e.BoundingCircle().BoundingBox3d()
}

// Relate and Overlaps reduce conservatively to the bounding circle.
func (e Ellipse) Relate(other Region) relate.Relationship { return Relate(e, other) }
func (e Ellipse) Overlaps(other Region) Overlap            { return RelateOverlaps(e, other) }

func (e Ellipse) Encode() []byte { return encodeEllipse(e) }
