package region

import (
	"errors"
	"math"

	"github.com/katalvlaran/sphgeom/interval"
	"github.com/katalvlaran/sphgeom/orientation"
	"github.com/katalvlaran/sphgeom/relate"
	"github.com/katalvlaran/sphgeom/s2math"
)

// ErrTooFewVertices indicates fewer than 3 distinct, non-collinear
// points were supplied to NewConvexPolygon.
var ErrTooFewVertices = errors.New("region: convex polygon needs at least 3 non-collinear vertices")

// ErrAntipodalVertices indicates two input points were exact antipodes,
// which would make the hull's boundary ambiguous.
var ErrAntipodalVertices = errors.New("region: convex polygon input contains antipodal points")

// ErrHemispheric indicates the input points' hull would span a
// hemisphere or more; ConvexPolygon excludes such shapes by invariant.
var ErrHemispheric = errors.New("region: convex hull of input would be hemispheric or larger")

// ConvexPolygon is a convex spherical polygon: vertices in
// counter-clockwise order (viewed from outside S²), each edge the
// shorter great-circle arc between consecutive vertices.
type ConvexPolygon struct {
	vertices []s2math.UnitVector3d
}

// NewConvexPolygon computes the convex hull of points via gift-wrapping
// with orientation checks.
func NewConvexPolygon(points []s2math.UnitVector3d) (ConvexPolygon, error) {
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if points[i].ApproxEqual(points[j].Neg(), 0) {
				return ConvexPolygon{}, ErrAntipodalVertices
			}
		}
	}
	hull, rest, err := findTriangle(points)
	if err != nil {
		return ConvexPolygon{}, err
	}
	for _, v := range rest {
		hull, err = insertPoint(hull, v)
		if err != nil {
			return ConvexPolygon{}, err
		}
	}
	if len(hull) < 3 {
		return ConvexPolygon{}, ErrTooFewVertices
	}
	return ConvexPolygon{vertices: hull}, nil
}

// findTriangle picks the first two distinct points and scans for a
// third non-collinear with them, swapping the first two if needed to
// enforce counter-clockwise orientation. It returns the seed triangle
// and the remaining, not-yet-inserted points.
func findTriangle(points []s2math.UnitVector3d) ([]s2math.UnitVector3d, []s2math.UnitVector3d, error) {
	if len(points) < 3 {
		return nil, nil, ErrTooFewVertices
	}
	p0 := points[0]
	p1Index := -1
	for i := 1; i < len(points); i++ {
		if !points[i].ApproxEqual(p0, 0) {
			p1Index = i
			break
		}
	}
	if p1Index < 0 {
		return nil, nil, ErrTooFewVertices
	}
	p1 := points[p1Index]
	for i := range points {
		if i == 0 || i == p1Index {
			continue
		}
		p2 := points[i]
		o := orientation.Of(p0, p1, p2)
		if o == 0 {
			continue
		}
		rest := make([]s2math.UnitVector3d, 0, len(points)-3)
		for j, p := range points {
			if j != 0 && j != p1Index && j != i {
				rest = append(rest, p)
			}
		}
		if o < 0 {
			p0, p1 = p1, p0
		}
		return []s2math.UnitVector3d{p0, p1, p2}, rest, nil
	}
	return nil, nil, ErrTooFewVertices
}

// insertPoint folds v into hull, following the "classify edges as ccw /
// not-ccw, replace the not-ccw run" procedure.
func insertPoint(hull []s2math.UnitVector3d, v s2math.UnitVector3d) ([]s2math.UnitVector3d, error) {
	n := len(hull)
	ccw := make([]bool, n)
	anyCCW, anyNotCCW := false, false
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		ccw[i] = orientation.Of(hull[i], hull[j], v) >= 0
		if ccw[i] {
			anyCCW = true
		} else {
			anyNotCCW = true
		}
	}
	if !anyNotCCW {
		return hull, nil // v already inside every edge: discard
	}
	if !anyCCW {
		return nil, ErrHemispheric
	}
	start := -1
	for i := 0; i < n; i++ {
		prev := ccw[(i-1+n)%n]
		if prev && !ccw[i] {
			start = i
			break
		}
	}
	end := -1
	for i := 0; i < n; i++ {
		next := ccw[(i+1)%n]
		if !ccw[i] && next {
			end = i
			break
		}
	}
	removed := (end - start + n) % n
	kept := n - removed
	newHull := make([]s2math.UnitVector3d, 0, kept+1)
	idx := (end + 1) % n
	for c := 0; c < kept; c++ {
		newHull = append(newHull, hull[idx])
		idx = (idx + 1) % n
	}
	newHull = append(newHull, v)
	return newHull, nil
}

func (p ConvexPolygon) Vertices() []s2math.UnitVector3d { return p.vertices }

func (p ConvexPolygon) IsEmpty() bool { return len(p.vertices) < 3 }

func (p ConvexPolygon) Clone() Region {
	cp := make([]s2math.UnitVector3d, len(p.vertices))
	copy(cp, p.vertices)
	return ConvexPolygon{vertices: cp}
}

// ContainsPoint tests v against every edge: a single negative
// orientation means v is outside.
func (p ConvexPolygon) ContainsPoint(v s2math.UnitVector3d) bool {
	if p.IsEmpty() {
		return false
	}
	n := len(p.vertices)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if orientation.Of(v, p.vertices[i], p.vertices[j]) < 0 {
			return false
		}
	}
	return true
}

// Centroid returns the direction of the center of mass, normalized to a
// unit vector, via the per-edge n̂·angle formula.
func (p ConvexPolygon) Centroid() (s2math.UnitVector3d, error) {
	if p.IsEmpty() {
		return s2math.UnitVector3d{}, ErrTooFewVertices
	}
	n := len(p.vertices)
	var sum s2math.Vector3d
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a, b := p.vertices[i], p.vertices[j]
		normal := a.Cross(b)
		nu, err := normal.Normalize()
		if err != nil {
			continue // zero-length edge: contributes nothing
		}
		angle := math.Acos(clamp(a.Dot(b), -1, 1))
		sum = sum.Add(nu.Vector3d().Scale(angle))
	}
	return sum.Normalize()
}

func (p ConvexPolygon) BoundingCircle() Circle {
	if p.IsEmpty() {
		return EmptyCircle()
	}
	c := NewCircle(p.vertices[0], 0)
	for _, v := range p.vertices[1:] {
		c = c.ExpandTo(NewCircle(v, 0))
	}
	const sclPad = 2e-15
	c.scl += sclPad
	return c
}

// boundingBoxEps pads every bounding-box latitude this function derives,
// covering the rounding error of the vector-to-LonLat conversion itself:
// roughly 0.1 milli-arcseconds.
const boundingBoxEps = 5e-10

// edgeLatitudeExtrema folds the interior latitude extrema of the
// great-circle edge (a, b) into lat, if either extremum actually falls
// within the edge's angular span rather than its complementary arc.
//
// A great circle's own latitude extremum lies along the meridian plane
// through its normal n: the point (−n.x·n.z, −n.y·n.z, n.x²+n.y²),
// scaled by any positive constant, is the one of the two meridian
// crossings with non-negative z (its antipode has the minimum
// latitude). Whether that crossing — or its antipode — lies between a
// and b is decided by the sign of each endpoint's projection onto the
// plane spanned by the z axis and n: a sign change from + to - along
// (a, b) means the maximum-latitude point is in the interior; a change
// from - to + means the minimum-latitude one is.
func edgeLatitudeExtrema(a, b s2math.UnitVector3d, lat interval.AngleInterval) interval.AngleInterval {
	n := a.Cross(b)
	v := s2math.NewVector3d(-n.X*n.Z, -n.Y*n.Z, n.X*n.X+n.Y*n.Y)
	if v.SquaredNorm() == 0 {
		return lat
	}
	zni := a.Y()*n.X - a.X()*n.Y
	znj := b.Y()*n.X - b.X()*n.Y
	if zni > 0 && znj < 0 {
		if u, err := v.Normalize(); err == nil {
			lat = lat.ExpandToPoint(s2math.LatitudeOf(u) + s2math.Angle(boundingBoxEps))
		}
	} else if zni < 0 && znj > 0 {
		if u, err := v.Neg().Normalize(); err == nil {
			lat = lat.ExpandToPoint(s2math.LatitudeOf(u) - s2math.Angle(boundingBoxEps))
		}
	}
	return lat
}

// BoundingBox unions each vertex's lon-lat, each edge's interior
// latitude extremum, and a conservative check for pole containment:
// a hull with no clockwise-in-z edge contains
// the north pole, and symmetrically for the south. The extrema check
// is required for soundness, not just tightness — a great-circle edge
// between two equal-latitude vertices bulges poleward past both of
// them, so a vertex-only union can under-cover the polygon.
func (p ConvexPolygon) BoundingBox() Box {
	if p.IsEmpty() {
		return EmptyBox()
	}
	lon := interval.EmptyNormalizedAngleInterval()
	lat := interval.EmptyAngleInterval()
	n := len(p.vertices)
	containsNorth, containsSouth := true, true
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		vi, vj := p.vertices[i], p.vertices[j]
		ll := s2math.LonLatOf(vi)
		lon = lon.ExpandToPoint(ll.Lon)
		lat = lat.ExpandToPoint(ll.Lat)
		lat = edgeLatitudeExtrema(vi, vj, lat)
		normal := vi.Cross(vj)
		if normal.Z > 0 {
			containsSouth = false
		}
		if normal.Z < 0 {
			containsNorth = false
		}
	}
	if containsNorth {
		lat = lat.ExpandToPoint(s2math.Angle(math.Pi / 2))
		lon = interval.FullNormalizedAngleInterval()
	}
	if containsSouth {
		lat = lat.ExpandToPoint(s2math.Angle(-math.Pi / 2))
		lon = interval.FullNormalizedAngleInterval()
	}
	return NewBox(lon, lat)
}

// edgeAxisExtrema folds the interior x/y/z extrema of the great-circle
// edge (a, b) into xs/ys/zs. A great circle with unit normal n has its
// extremum along axis i at the projection of e_i onto the circle's
// plane, e_i − n_i·n, whose i-th coordinate is √(1−n_i²); whether that
// point (or its
// antipode) lies within the edge's span, rather than its complementary
// arc, is decided the same way as the 2-axis latitude case: by the sign
// of the candidate direction's projection onto each endpoint.
func edgeAxisExtrema(a, b s2math.UnitVector3d, xs, ys, zs interval.Interval1d) (interval.Interval1d, interval.Interval1d, interval.Interval1d) {
	nRaw := a.Cross(b)
	n, err := nRaw.Normalize()
	if err != nil {
		return xs, ys, zs
	}
	axes := [3]float64{n.X(), n.Y(), n.Z()}
	boxes := [3]*interval.Interval1d{&xs, &ys, &zs}
	for i := 0; i < 3; i++ {
		ni := axes[i]
		d := math.Abs(1 - ni*ni)
		if d == 0 {
			continue
		}
		e := s2math.NewVector3d(n.X()*ni, n.Y()*ni, n.Z()*ni)
		switch i {
		case 0:
			e = s2math.NewVector3d(-d, e.Y, e.Z)
		case 1:
			e = s2math.NewVector3d(e.X, -d, e.Z)
		case 2:
			e = s2math.NewVector3d(e.X, e.Y, -d)
		}
		v := e.Cross(n.Vector3d())
		vdj := v.Dot(a.Vector3d())
		vdk := v.Dot(b.Vector3d())
		sq := math.Sqrt(d)
		if vdj >= 0 && vdk <= 0 {
			*boxes[i] = boxes[i].ExpandToPoint(-sq)
		}
		if vdj <= 0 && vdk >= 0 {
			*boxes[i] = boxes[i].ExpandToPoint(sq)
		}
	}
	return xs, ys, zs
}

// BoundingBox3d unions each vertex's coordinates with each edge's
// interior x/y/z extrema — the same
// over-approximation concern as BoundingBox applies per-axis here.
func (p ConvexPolygon) BoundingBox3d() Box3d {
	if p.IsEmpty() {
		return Box3d{interval.EmptyInterval1d(), interval.EmptyInterval1d(), interval.EmptyInterval1d()}
	}
	xs, ys, zs := interval.EmptyInterval1d(), interval.EmptyInterval1d(), interval.EmptyInterval1d()
	n := len(p.vertices)
	// posAxis[i]/negAxis[i] track whether +eᵢ/-eᵢ is on the polygon side
	// of every edge's half-space; true for all edges means that signed
	// axis direction is inside the polygon, so its coordinate range must
	// reach all the way to ±1 rather than just the vertex/edge extrema.
	posAxis := [3]bool{true, true, true}
	negAxis := [3]bool{true, true, true}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		vi, vj := p.vertices[i], p.vertices[j]
		xs = xs.ExpandToPoint(vi.X())
		ys = ys.ExpandToPoint(vi.Y())
		zs = zs.ExpandToPoint(vi.Z())
		xs, ys, zs = edgeAxisExtrema(vi, vj, xs, ys, zs)
		ox, oy, oz := orientation.OfX(vi, vj), orientation.OfY(vi, vj), orientation.OfZ(vi, vj)
		posAxis[0] = posAxis[0] && ox >= 0
		negAxis[0] = negAxis[0] && ox <= 0
		posAxis[1] = posAxis[1] && oy >= 0
		negAxis[1] = negAxis[1] && oy <= 0
		posAxis[2] = posAxis[2] && oz >= 0
		negAxis[2] = negAxis[2] && oz <= 0
	}
	const maxError = 1e-14
	boxes := [3]*interval.Interval1d{&xs, &ys, &zs}
	for i := 0; i < 3; i++ {
		lo, hi := boxes[i].A(), boxes[i].B()
		if negAxis[i] {
			lo = -1
		} else {
			lo = math.Max(-1, lo-maxError)
		}
		if posAxis[i] {
			hi = 1
		} else {
			hi = math.Min(1, hi+maxError)
		}
		*boxes[i] = interval.NewInterval1d(lo, hi)
	}
	return Box3d{xs, ys, zs}
}

func (p ConvexPolygon) Relate(other Region) relate.Relationship { return Relate(p, other) }
func (p ConvexPolygon) Overlaps(other Region) Overlap            { return RelateOverlaps(p, other) }

func (p ConvexPolygon) Encode() []byte { return encodeConvexPolygon(p) }
