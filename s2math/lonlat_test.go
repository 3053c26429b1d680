package s2math_test

import (
	"testing"

	"github.com/katalvlaran/sphgeom/s2math"
	"github.com/stretchr/testify/require"
)

func TestLonLatVectorConventions(t *testing.T) {
	cases := []struct {
		name       string
		v          s2math.UnitVector3d
		lonDegrees float64
		latDegrees float64
	}{
		{"x-hat", s2math.UnitX, 0, 0},
		{"y-hat", s2math.UnitY, 90, 0},
		{"z-hat", s2math.UnitZ, 0, 90},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ll := s2math.LonLatOf(c.v)
			require.InDelta(t, c.lonDegrees, ll.Lon.Degrees(), 1e-9)
			require.InDelta(t, c.latDegrees, ll.Lat.Degrees(), 1e-9)
		})
	}
}

func TestLonLatRoundTrip(t *testing.T) {
	ll := s2math.LonLatFromDegrees(47, -13)
	v := ll.Vector3d()
	back := s2math.LonLatOf(v)
	require.InDelta(t, ll.Lon.Radians(), back.Lon.Radians(), 1e-9)
	require.InDelta(t, ll.Lat.Radians(), back.Lat.Radians(), 1e-9)
}

func TestLonLatClampsLatitude(t *testing.T) {
	ll := s2math.NewLonLat(0, 10)
	require.InDelta(t, 3.141592653589793/2, ll.Lat.Radians(), 1e-12)
}

func TestLonLatNaNPropagates(t *testing.T) {
	ll := s2math.NewLonLat(1, nan())
	require.True(t, ll.IsNaN())
}

func nan() float64 {
	var z float64
	return z / z
}
