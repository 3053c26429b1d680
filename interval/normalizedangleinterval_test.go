package interval

import (
	"math"
	"testing"

	"github.com/katalvlaran/sphgeom/relate"
	"github.com/katalvlaran/sphgeom/s2math"
	"github.com/stretchr/testify/require"
)

func na(r float64) s2math.NormalizedAngle { return s2math.NormalizedAngleFromRadians(r) }

func TestNormalizedAngleIntervalEmpty(t *testing.T) {
	i := EmptyNormalizedAngleInterval()
	require.True(t, i.IsEmpty())
	require.Equal(t, relate.DISJOINT|relate.CONTAINS|relate.WITHIN, i.Relate(i))
	require.Equal(t, relate.DISJOINT|relate.WITHIN, i.RelatePoint(na(1)))
}

func TestNormalizedAngleIntervalFull(t *testing.T) {
	full := FullNormalizedAngleInterval()
	require.True(t, full.IsFull())
	require.False(t, full.Wraps())
	require.InDelta(t, twoPi, full.Size().Radians(), 1e-12)
	plain, err := NewNormalizedAngleIntervalFromRaw(1, 2)
	require.NoError(t, err)
	require.True(t, full.Contains(plain))
	require.Equal(t, full, full.DilateBy(s2math.Angle(5)))
}

func TestNormalizedAngleIntervalFromRaw(t *testing.T) {
	_, err := NewNormalizedAngleIntervalFromRaw(7, 1)
	require.ErrorIs(t, err, ErrInvalidEndpointOrder)

	full1, err := NewNormalizedAngleIntervalFromRaw(-10, 10)
	require.NoError(t, err)
	require.True(t, full1.IsFull())

	full2, err := NewNormalizedAngleIntervalFromRaw(10, 20)
	require.NoError(t, err)
	require.True(t, full2.IsFull())

	wrap, err := NewNormalizedAngleIntervalFromRaw(6, 7)
	require.NoError(t, err)
	require.True(t, wrap.Wraps())

	_, err = NewNormalizedAngleIntervalFromRaw(-1, -20)
	require.ErrorIs(t, err, ErrInvalidEndpointOrder)
}

func TestNormalizedAngleIntervalWrapsSizeAndCenter(t *testing.T) {
	i := NewNormalizedAngleIntervalFromEndpoints(na(2), na(1))
	require.True(t, i.Wraps())
	require.InDelta(t, twoPi-1, i.Size().Radians(), 1e-12)
	require.InDelta(t, math.Pi+1.5, i.Center().Radians(), 1e-9)
}

func TestNormalizedAngleIntervalContainsAcrossWrap(t *testing.T) {
	wrap := NewNormalizedAngleIntervalFromEndpoints(na(5), na(1))
	require.True(t, wrap.ContainsPoint(na(6)))
	require.True(t, wrap.ContainsPoint(na(0.5)))
	require.False(t, wrap.ContainsPoint(na(3)))
}

func TestNormalizedAngleIntervalDisjointCases(t *testing.T) {
	nonWrap := NewNormalizedAngleIntervalFromEndpoints(na(2), na(4))
	wrap := NewNormalizedAngleIntervalFromEndpoints(na(5), na(1))
	require.True(t, nonWrap.IsDisjointFrom(wrap))
	require.True(t, wrap.IsDisjointFrom(nonWrap))

	wrapA := NewNormalizedAngleIntervalFromEndpoints(na(4), na(2))
	wrapB := NewNormalizedAngleIntervalFromEndpoints(na(5), na(3))
	require.True(t, wrapA.Intersects(wrapB))
}

func TestNormalizedAngleIntervalExpandToSymmetricClosesSmallerGap(t *testing.T) {
	a1 := PointNormalizedAngleInterval(na(1))
	a5 := PointNormalizedAngleInterval(na(5))
	want := NewNormalizedAngleIntervalFromEndpoints(na(5), na(1))
	got1 := a1.ExpandTo(a5)
	got2 := a5.ExpandTo(a1)
	require.True(t, want.Equal(got1))
	require.True(t, want.Equal(got2))
}

func TestNormalizedAngleIntervalExpandToNonWrapHull(t *testing.T) {
	i := NewNormalizedAngleIntervalFromEndpoints(na(1), na(2))
	j := NewNormalizedAngleIntervalFromEndpoints(na(3), na(3.5))
	got := i.ExpandTo(j)
	require.False(t, got.Wraps())
	require.InDelta(t, 1.0, got.A().Radians(), 1e-12)
	require.InDelta(t, 3.5, got.B().Radians(), 1e-12)
}

func TestNormalizedAngleIntervalClipToSubset(t *testing.T) {
	i := NewNormalizedAngleIntervalFromEndpoints(na(1), na(3))
	j := NewNormalizedAngleIntervalFromEndpoints(na(2), na(4))
	got := i.ClipTo(j)
	require.True(t, i.Contains(got))
	require.True(t, j.Contains(got))
}

func TestNormalizedAngleIntervalDilateErodeRoundTrip(t *testing.T) {
	i := NewNormalizedAngleIntervalFromEndpoints(na(1), na(2))
	grown := i.DilateBy(s2math.Angle(0.1))
	back := grown.ErodeBy(s2math.Angle(0.1))
	require.InDelta(t, i.A().Radians(), back.A().Radians(), 1e-9)
	require.InDelta(t, i.B().Radians(), back.B().Radians(), 1e-9)
}
