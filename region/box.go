package region

import (
	"math"

	"github.com/katalvlaran/sphgeom/interval"
	"github.com/katalvlaran/sphgeom/relate"
	"github.com/katalvlaran/sphgeom/s2math"
)

// Box is a longitude × latitude rectangle. The longitude interval may
// wrap through the 0 ≡ 2π seam; the latitude interval is always clipped
// to [−π/2, π/2]. Per invariant, lon is empty iff lat is empty.
type Box struct {
	lon interval.NormalizedAngleInterval
	lat interval.AngleInterval
}

// NewBox builds a Box from the given intervals, clipping lat to
// [−π/2, π/2] and collapsing both to empty if either is empty.
func NewBox(lon interval.NormalizedAngleInterval, lat interval.AngleInterval) Box {
	if lon.IsEmpty() || lat.IsEmpty() {
		return EmptyBox()
	}
	clipped := lat.ClipTo(interval.NewAngleInterval(s2math.Angle(-math.Pi/2), s2math.Angle(math.Pi/2)))
	if clipped.IsEmpty() {
		return EmptyBox()
	}
	return Box{lon: lon, lat: clipped}
}

// NewBoxFromCorners builds a Box from two lon-lat corners.
func NewBoxFromCorners(p1, p2 s2math.LonLat) Box {
	lonLo, lonHi := p1.Lon, p2.Lon
	lon, err := interval.NewNormalizedAngleIntervalFromRaw(math.Min(lonLo.Radians(), lonHi.Radians()), math.Max(lonLo.Radians(), lonHi.Radians()))
	if err != nil {
		lon = interval.FullNormalizedAngleInterval()
	}
	lat := interval.NewAngleInterval(
		s2math.Angle(math.Min(p1.Lat.Radians(), p2.Lat.Radians())),
		s2math.Angle(math.Max(p1.Lat.Radians(), p2.Lat.Radians())),
	)
	return NewBox(lon, lat)
}

// NewBoxFromCenterHalfWidths builds a Box centered on p, dilated by
// (halfWidth, halfHeight).
func NewBoxFromCenterHalfWidths(p s2math.LonLat, halfWidth, halfHeight s2math.Angle) Box {
	b := NewBox(interval.PointNormalizedAngleInterval(p.Lon), interval.PointAngleInterval(p.Lat))
	return b.DilateByWH(halfWidth, halfHeight)
}

func EmptyBox() Box {
	return Box{lon: interval.EmptyNormalizedAngleInterval(), lat: interval.EmptyAngleInterval()}
}

func FullBox() Box {
	return Box{lon: interval.FullNormalizedAngleInterval(), lat: interval.NewAngleInterval(s2math.Angle(-math.Pi/2), s2math.Angle(math.Pi/2))}
}

func (b Box) Lon() interval.NormalizedAngleInterval { return b.lon }
func (b Box) Lat() interval.AngleInterval           { return b.lat }

func (b Box) IsEmpty() bool { return b.lon.IsEmpty() || b.lat.IsEmpty() }

func (b Box) Clone() Region { return b }

func (b Box) ContainsPoint(v s2math.UnitVector3d) bool {
	if b.IsEmpty() {
		return false
	}
	ll := s2math.LonLatOf(v)
	return b.lon.ContainsPoint(ll.Lon) && b.lat.ContainsPoint(ll.Lat)
}

// halfWidthForCircle returns the longitude half-angle of the bounding
// longitude interval for a circle of opening r centered at latitude lat:
// arcsin(sin r / cos lat), clamped to π when
// |lat| + r ≥ π/2, or 0 when r <= 0.
func halfWidthForCircle(r, lat s2math.Angle) s2math.Angle {
	rr := r.Radians()
	if rr <= 0 {
		return s2math.Angle(0)
	}
	if math.Abs(lat.Radians())+rr >= math.Pi/2 {
		return s2math.Angle(math.Pi)
	}
	ratio := math.Sin(rr) / math.Cos(lat.Radians())
	return s2math.Angle(math.Asin(clamp(ratio, -1, 1)))
}

// DilateBy grows the box by r in both longitude (via halfWidthForCircle
// at the more extreme of the two latitude bounds) and latitude.
func (b Box) DilateBy(r s2math.Angle) Box {
	if b.IsEmpty() || r.IsNaN() {
		return b
	}
	maxAbsLat := math.Max(math.Abs(b.lat.A().Radians()), math.Abs(b.lat.B().Radians()))
	hw := halfWidthForCircle(r, s2math.Angle(maxAbsLat))
	return b.DilateByWH(hw, r)
}

// DilateByWH dilates longitude by w and latitude by h independently. A
// box already touching a pole is not dilated further in latitude there.
func (b Box) DilateByWH(w, h s2math.Angle) Box {
	if b.IsEmpty() {
		return b
	}
	lat := b.lat.DilateBy(h)
	if b.lat.A().Radians() <= -math.Pi/2 {
		lat = interval.NewAngleInterval(s2math.Angle(-math.Pi/2), lat.B())
	}
	if b.lat.B().Radians() >= math.Pi/2 {
		lat = interval.NewAngleInterval(lat.A(), s2math.Angle(math.Pi/2))
	}
	return NewBox(b.lon.DilateBy(w), lat)
}

func (b Box) Relate(other Region) relate.Relationship { return Relate(b, other) }
func (b Box) Overlaps(other Region) Overlap            { return RelateOverlaps(b, other) }

func (b Box) BoundingBox() Box { return b }

func (b Box) BoundingBox3d() Box3d {
	if b.IsEmpty() {
		return Box3d{interval.EmptyInterval1d(), interval.EmptyInterval1d(), interval.EmptyInterval1d()}
	}
	// Conservative approach: union the projections of all four corners,
	// the ±e_i axis points the box contains, and every contained point
	// where a coordinate can peak along an edge (latitude 0 and the
	// longitudes at multiples of π/2, crossed with the box's own bounds),
	// padded by a small constant for rounding.
	const pad = 2.5e-15
	corners := b.cornerVectors()
	xs := interval.EmptyInterval1d()
	ys := interval.EmptyInterval1d()
	zs := interval.EmptyInterval1d()
	for _, c := range corners {
		xs = xs.ExpandToPoint(c.X)
		ys = ys.ExpandToPoint(c.Y)
		zs = zs.ExpandToPoint(c.Z)
	}
	for _, lat := range []float64{b.lat.A().Radians(), b.lat.B().Radians(), 0} {
		for _, lon := range []float64{b.lon.A().Radians(), b.lon.B().Radians(), 0, math.Pi / 2, math.Pi, 3 * math.Pi / 2} {
			if !b.lat.ContainsPoint(s2math.Angle(lat)) || !b.lon.ContainsPoint(s2math.NormalizedAngleFromRadians(lon)) {
				continue
			}
			p := s2math.NewLonLat(lon, lat).Vector3d()
			xs = xs.ExpandToPoint(p.X())
			ys = ys.ExpandToPoint(p.Y())
			zs = zs.ExpandToPoint(p.Z())
		}
	}
	for _, e := range []s2math.UnitVector3d{s2math.UnitX, s2math.UnitY, s2math.UnitZ} {
		if b.ContainsPoint(e) {
			xs = xs.ExpandToPoint(e.X())
			ys = ys.ExpandToPoint(e.Y())
			zs = zs.ExpandToPoint(e.Z())
		}
		if b.ContainsPoint(e.Neg()) {
			xs = xs.ExpandToPoint(-e.X())
			ys = ys.ExpandToPoint(-e.Y())
			zs = zs.ExpandToPoint(-e.Z())
		}
	}
	return Box3d{xs.DilateBy(pad), ys.DilateBy(pad), zs.DilateBy(pad)}
}

// cornerVectors returns the box's four corners as plain unit vectors,
// sampling midpoints instead when the longitude span is full.
func (b Box) cornerVectors() []s2math.Vector3d {
	lonA, lonB := b.lon.A(), b.lon.B()
	if b.lon.IsFull() {
		lonA = s2math.NormalizedAngleFromRadians(0)
		lonB = s2math.NormalizedAngleFromRadians(math.Pi)
	}
	lats := []s2math.Angle{b.lat.A(), b.lat.B()}
	lons := []s2math.NormalizedAngle{lonA, lonB}
	var out []s2math.Vector3d
	for _, lat := range lats {
		for _, lon := range lons {
			out = append(out, s2math.NewLonLat(lon.Radians(), lat.Radians()).Vector3d().Vector3d())
		}
	}
	return out
}

// BoundingCircle splits on longitude span: for spans exceeding π it takes
// the smaller of a polar circle (centered on whichever pole gives the
// smaller opening that still reaches the box's far latitude bound) and an
// equatorial circle, and a corner-hull circle otherwise.
func (b Box) BoundingCircle() Circle {
	if b.IsEmpty() {
		return EmptyCircle()
	}
	span := b.lon.Size().Radians()
	if span > math.Pi {
		northR := math.Pi/2 - b.lat.A().Radians()
		southR := math.Pi/2 + b.lat.B().Radians()
		polar := NewCircle(s2math.UnitZ, s2math.Angle(northR))
		if southR < northR {
			polar = NewCircle(s2math.UnitZ.Neg(), s2math.Angle(southR))
		}
		center := b.lon.Center()
		equatorial := NewCircle(s2math.NewLonLat(center.Radians(), 0).Vector3d(), s2math.Angle(span/2))
		if polar.scl <= equatorial.scl {
			equatorial = polar
		}
		equatorial.scl += 2e-15
		return equatorial
	}
	var c Circle = EmptyCircle()
	for _, v := range b.cornerVectors() {
		uv, err := v.Normalize()
		if err != nil {
			continue
		}
		c = c.ExpandTo(NewCircle(uv, 0))
	}
	const sclPad = 2e-15
	c.scl += sclPad
	return c
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

func (b Box) Encode() []byte { return encodeBox(b) }
