package orientation_test

import (
	"testing"

	"github.com/katalvlaran/sphgeom/orientation"
	"github.com/katalvlaran/sphgeom/s2math"
	"github.com/stretchr/testify/require"
)

func TestOfBasisIsPositive(t *testing.T) {
	// det[x|y|z] = 1 > 0: x, y, z wind counter-clockwise viewed from
	// outside S².
	got := orientation.Of(s2math.UnitX, s2math.UnitY, s2math.UnitZ)
	require.Equal(t, 1, got)
}

func TestOfAntisymmetric(t *testing.T) {
	a := s2math.MustUnitVector3d(1, 2, 3)
	b := s2math.MustUnitVector3d(-2, 1, 0.5)
	c := s2math.MustUnitVector3d(0.3, -0.7, 2)
	require.Equal(t, orientation.Of(a, b, c), -orientation.Of(b, a, c))
}

func TestOfDegenerateCases(t *testing.T) {
	a := s2math.MustUnitVector3d(1, 2, 3)
	b := s2math.MustUnitVector3d(-2, 1, 0.5)

	require.Equal(t, 0, orientation.Of(a, a, b))
	require.Equal(t, 0, orientation.Of(a, b, a))
	require.Equal(t, 0, orientation.Of(a, b, b))
	require.Equal(t, 0, orientation.Of(a, a.Neg(), b))
}

func TestOfNearlyCoplanarKeepsPermutationParity(t *testing.T) {
	// Three vectors very close to coplanar (determinant about 1e-27, still
	// well above the fast path's error bound): the sign must be
	// consistent under permutation parity.
	a := s2math.MustUnitVector3d(1, 0, 0)
	b := s2math.MustUnitVector3d(1, 1e-13, 0)
	c := s2math.MustUnitVector3d(1, 2e-13, 1e-14)
	o1 := orientation.Of(a, b, c)
	o2 := orientation.Of(b, a, c)
	require.Equal(t, -o1, o2)
}

func TestOfAxisSpecializations(t *testing.T) {
	b := s2math.MustUnitVector3d(0, 1, 0)
	c := s2math.MustUnitVector3d(0, 0, 1)
	require.Equal(t, orientation.Of(s2math.UnitX, b, c), orientation.OfX(b, c))

	b2 := s2math.MustUnitVector3d(0, 0, 1)
	c2 := s2math.MustUnitVector3d(1, 0, 0)
	require.Equal(t, orientation.Of(s2math.UnitY, b2, c2), orientation.OfY(b2, c2))

	b3 := s2math.MustUnitVector3d(1, 0, 0)
	c3 := s2math.MustUnitVector3d(0, 1, 0)
	require.Equal(t, orientation.Of(s2math.UnitZ, b3, c3), orientation.OfZ(b3, c3))
}
