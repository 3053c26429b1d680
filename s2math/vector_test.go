package s2math_test

import (
	"testing"

	"github.com/katalvlaran/sphgeom/s2math"
	"github.com/stretchr/testify/require"
)

func TestNewUnitVector3dNormalizes(t *testing.T) {
	v, err := s2math.NewUnitVector3d(3, 4, 0)
	require.NoError(t, err)
	require.InDelta(t, 0.6, v.X(), 1e-12)
	require.InDelta(t, 0.8, v.Y(), 1e-12)
	require.InDelta(t, 0, v.Z(), 1e-12)
}

func TestNewUnitVector3dZeroVector(t *testing.T) {
	_, err := s2math.NewUnitVector3d(0, 0, 0)
	require.ErrorIs(t, err, s2math.ErrZeroVector)
}

func TestRobustCrossMatchesCrossDirection(t *testing.T) {
	a := s2math.MustUnitVector3d(1, 0, 0)
	b := s2math.MustUnitVector3d(0, 1, 0)
	c := a.Cross(b)
	rc := a.RobustCross(b)
	cu, err := c.Normalize()
	require.NoError(t, err)
	ru, err := rc.Normalize()
	require.NoError(t, err)
	require.True(t, cu.ApproxEqual(ru, 1e-9))
}

func TestOrthogonalTo(t *testing.T) {
	a := s2math.MustUnitVector3d(1, 0, 0)
	b := s2math.MustUnitVector3d(0, 1, 0)
	n, err := s2math.OrthogonalTo(a, b)
	require.NoError(t, err)
	require.InDelta(t, 0, n.Dot(a), 1e-9)
	require.InDelta(t, 0, n.Dot(b), 1e-9)
}

func TestNorthFromAtEquator(t *testing.T) {
	v := s2math.MustUnitVector3d(1, 0, 0)
	n, err := s2math.NorthFrom(v)
	require.NoError(t, err)
	require.InDelta(t, 1, n.Z(), 1e-9) // at the equator the north tangent is +z itself
	require.Greater(t, n.Z(), 0.0)
}

func TestRotateFullCircleIsIdentity(t *testing.T) {
	v := s2math.MustUnitVector3d(1, 0, 0)
	axis := s2math.UnitZ
	r := s2math.Rotate(v, axis, s2math.NewAngle(2*3.14159265358979323846))
	require.True(t, r.ApproxEqual(v, 1e-9))
}
