package s2math

import "math"

// LonLat is a spherical coordinate pair: a normalized longitude and a
// latitude clamped to [−π/2, π/2]. If either component is NaN, both are
// (spec.md §3).
//
// Vector conversions follow: x̂ → (0°,0°), ŷ → (90°,0°), ẑ → (0°,+90°).
type LonLat struct {
	Lon NormalizedAngle
	Lat Angle
}

// NewLonLat builds a LonLat from radian values, clamping latitude into
// [−π/2, π/2] and collapsing to the all-NaN representation if either input
// is NaN.
func NewLonLat(lonRadians, latRadians float64) LonLat {
	if math.IsNaN(lonRadians) || math.IsNaN(latRadians) {
		return LonLat{NormalizedAngle(math.NaN()), Angle(math.NaN())}
	}
	lat := latRadians
	if lat > math.Pi/2 {
		lat = math.Pi / 2
	} else if lat < -math.Pi/2 {
		lat = -math.Pi / 2
	}
	return LonLat{NormalizedAngleFromRadians(lonRadians), Angle(lat)}
}

// LonLatFromDegrees is NewLonLat taking degree inputs.
func LonLatFromDegrees(lonDegrees, latDegrees float64) LonLat {
	return NewLonLat(lonDegrees*math.Pi/180, latDegrees*math.Pi/180)
}

// LatitudeOf returns the latitude of the point on S² in the direction of v.
func LatitudeOf(v UnitVector3d) Angle {
	// asin is well-conditioned near the equator but loses precision near
	// the poles relative to atan2; atan2(z, hypot(x,y)) is exact for
	// unit vectors and avoids asin's domain-clamping concerns entirely.
	return Angle(math.Atan2(v.z, math.Hypot(v.x, v.y)))
}

// LongitudeOf returns the longitude of the point on S² in the direction
// of v.
func LongitudeOf(v UnitVector3d) NormalizedAngle {
	return NormalizedAngleFromRadians(math.Atan2(v.y, v.x))
}

// LonLatOf converts v to a LonLat.
func LonLatOf(v UnitVector3d) LonLat {
	return LonLat{LongitudeOf(v), LatitudeOf(v)}
}

// Vector3d converts ll to a point on S².
func (ll LonLat) Vector3d() UnitVector3d {
	cosLat := ll.Lat.Cos()
	return MustUnitVector3d(
		ll.Lon.Cos()*cosLat,
		ll.Lon.Sin()*cosLat,
		ll.Lat.Sin(),
	)
}

// IsNaN reports whether ll carries the all-NaN representation.
func (ll LonLat) IsNaN() bool { return ll.Lon.IsNaN() || ll.Lat.IsNaN() }

func (ll LonLat) Equal(o LonLat) bool { return ll.Lon.Equal(o.Lon) && ll.Lat.Equal(o.Lat) }
