package region

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sphgeom/interval"
	"github.com/katalvlaran/sphgeom/s2math"
)

func TestBoxEmptyInvariant(t *testing.T) {
	b := NewBox(interval.EmptyNormalizedAngleInterval(), interval.NewAngleInterval(0, 1))
	require.True(t, b.IsEmpty())
	require.True(t, b.lon.IsEmpty())
}

func TestBoxContainsPoint(t *testing.T) {
	lon, err := interval.NewNormalizedAngleIntervalFromRaw(0, math.Pi/2)
	require.NoError(t, err)
	lat := interval.NewAngleInterval(s2math.Angle(-0.5), s2math.Angle(0.5))
	b := NewBox(lon, lat)
	require.True(t, b.ContainsPoint(s2math.NewLonLat(math.Pi/4, 0).Vector3d()))
	require.False(t, b.ContainsPoint(s2math.NewLonLat(math.Pi, 0).Vector3d()))
}

func TestBoxClampsLatitudeToPoles(t *testing.T) {
	lon := interval.FullNormalizedAngleInterval()
	lat := interval.NewAngleInterval(s2math.Angle(-math.Pi), s2math.Angle(math.Pi))
	b := NewBox(lon, lat)
	require.InDelta(t, -math.Pi/2, b.lat.A().Radians(), 1e-12)
	require.InDelta(t, math.Pi/2, b.lat.B().Radians(), 1e-12)
}

func TestBoxDilateByDoesNotExceedPole(t *testing.T) {
	lon := interval.PointNormalizedAngleInterval(s2math.NormalizedAngleFromRadians(0))
	lat := interval.PointAngleInterval(s2math.Angle(math.Pi / 2))
	b := NewBox(lon, lat)
	d := b.DilateBy(s2math.Angle(0.2))
	require.InDelta(t, math.Pi/2, d.lat.B().Radians(), 1e-12)
}

func TestBoxBoundingCircleContainsBox(t *testing.T) {
	lon, err := interval.NewNormalizedAngleIntervalFromRaw(0, math.Pi/3)
	require.NoError(t, err)
	lat := interval.NewAngleInterval(s2math.Angle(-0.2), s2math.Angle(0.2))
	b := NewBox(lon, lat)
	bc := b.BoundingCircle()
	for _, v := range b.cornerVectors() {
		uv, err := v.Normalize()
		require.NoError(t, err)
		require.True(t, bc.ContainsPoint(uv))
	}
}

func TestBoxEncodeDecodeRoundTrip(t *testing.T) {
	lon, err := interval.NewNormalizedAngleIntervalFromRaw(0.1, 0.5)
	require.NoError(t, err)
	lat := interval.NewAngleInterval(s2math.Angle(-0.3), s2math.Angle(0.3))
	b := NewBox(lon, lat)
	got, err := Decode(b.Encode())
	require.NoError(t, err)
	back, ok := got.(Box)
	require.True(t, ok)
	require.InDelta(t, b.lon.A().Radians(), back.lon.A().Radians(), 1e-12)
	require.InDelta(t, b.lat.B().Radians(), back.lat.B().Radians(), 1e-12)
}
