package region

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sphgeom/s2math"
)

func TestEllipseDegeneratesToCircleWhenFociCoincide(t *testing.T) {
	e := NewEllipse(s2math.UnitZ, s2math.UnitZ, s2math.Angle(math.Pi/4))
	require.True(t, e.ContainsPoint(s2math.UnitZ))
	require.False(t, e.ContainsPoint(s2math.UnitX))
}

func TestEllipseEmptyAndFull(t *testing.T) {
	require.True(t, EmptyEllipse().IsEmpty())
	require.True(t, FullEllipse().IsFull())
}

func TestEllipseContainsFociDirectionWithinOpening(t *testing.T) {
	f1 := s2math.MustUnitVector3d(1, 0, 0.3)
	f2 := s2math.MustUnitVector3d(1, 0, -0.3)
	e := NewEllipse(f1, f2, s2math.Angle(0.5))
	// The midpoint direction between the foci must lie inside a
	// reasonably-opened ellipse.
	mid, err := f1.Vector3d().Add(f2.Vector3d()).Normalize()
	require.NoError(t, err)
	require.True(t, e.ContainsPoint(mid))
}

func TestEllipseComplementInvertsContainment(t *testing.T) {
	f1 := s2math.MustUnitVector3d(1, 0, 0.3)
	f2 := s2math.MustUnitVector3d(1, 0, -0.3)
	e := NewEllipse(f1, f2, s2math.Angle(0.3))
	comp := e.Complement()
	require.False(t, comp.IsEmpty())
	mid, err := f1.Vector3d().Add(f2.Vector3d()).Normalize()
	require.NoError(t, err)
	require.NotEqual(t, e.ContainsPoint(mid), comp.ContainsPoint(mid))
}

func TestEllipseBoundingCircleContainsFoci(t *testing.T) {
	f1 := s2math.MustUnitVector3d(1, 0.2, 0)
	f2 := s2math.MustUnitVector3d(1, -0.2, 0)
	e := NewEllipse(f1, f2, s2math.Angle(0.4))
	bc := e.BoundingCircle()
	require.True(t, bc.ContainsPoint(f1))
	require.True(t, bc.ContainsPoint(f2))
}

func TestEllipseEncodeDecodeRoundTrip(t *testing.T) {
	f1 := s2math.MustUnitVector3d(1, 0.2, 0)
	f2 := s2math.MustUnitVector3d(1, -0.2, 0)
	e := NewEllipse(f1, f2, s2math.Angle(0.4))
	got, err := Decode(e.Encode())
	require.NoError(t, err)
	back, ok := got.(Ellipse)
	require.True(t, ok)
	require.InDelta(t, e.alpha.Radians(), back.alpha.Radians(), 1e-12)
}
