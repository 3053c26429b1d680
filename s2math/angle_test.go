package s2math_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/sphgeom/s2math"
	"github.com/stretchr/testify/require"
)

func TestNewNormalizedAngle(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"already normalized", 1.0, 1.0},
		{"exact 2pi maps to 0", s2math.TwoPi, 0},
		{"negative wraps up", -0.5, s2math.TwoPi - 0.5},
		{"large positive wraps down", s2math.TwoPi + 1, 1},
		{"large negative wraps up", -s2math.TwoPi - 1, s2math.TwoPi - 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := s2math.NormalizedAngleFromRadians(c.in)
			require.InDelta(t, c.want, got.Radians(), 1e-9)
		})
	}
}

func TestNewNormalizedAngleNaN(t *testing.T) {
	got := s2math.NormalizedAngleFromRadians(math.NaN())
	require.True(t, got.IsNaN())
}

func TestAngleDegreesRadians(t *testing.T) {
	a := s2math.AngleFromDegrees(180)
	require.InDelta(t, math.Pi, a.Radians(), 1e-12)
	require.InDelta(t, 180, a.Degrees(), 1e-9)
}

func TestAngleArithmetic(t *testing.T) {
	a := s2math.NewAngle(1)
	b := s2math.NewAngle(2)
	require.Equal(t, s2math.NewAngle(3), a.Add(b))
	require.Equal(t, s2math.NewAngle(-1), a.Sub(b))
	require.Equal(t, s2math.NewAngle(2), a.Mul(2))
}
