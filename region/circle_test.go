package region

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sphgeom/s2math"
)

func TestCircleEmptyAndFull(t *testing.T) {
	require.True(t, EmptyCircle().IsEmpty())
	require.True(t, FullCircle().IsFull())
	require.False(t, NewCircle(s2math.UnitZ, s2math.Angle(1)).IsEmpty())
}

func TestCircleContainsPoint(t *testing.T) {
	c := NewCircle(s2math.UnitZ, s2math.Angle(math.Pi/4))
	require.True(t, c.ContainsPoint(s2math.UnitZ))
	require.False(t, c.ContainsPoint(s2math.UnitX))
}

func TestCircleContainsAndDisjoint(t *testing.T) {
	outer := NewCircle(s2math.UnitZ, s2math.Angle(math.Pi/2))
	inner := NewCircle(s2math.UnitZ, s2math.Angle(math.Pi/4))
	require.True(t, outer.Contains(inner))
	require.False(t, inner.Contains(outer))

	far := NewCircle(s2math.UnitX, s2math.Angle(0.01))
	require.True(t, inner.IsDisjointFrom(far))
	require.False(t, inner.Intersects(far))
}

func TestCircleExpandToContainsBoth(t *testing.T) {
	a := NewCircle(s2math.UnitX, s2math.Angle(0.1))
	b := NewCircle(s2math.UnitY, s2math.Angle(0.1))
	u := a.ExpandTo(b)
	require.True(t, u.Contains(a))
	require.True(t, u.Contains(b))
}

func TestCircleClipToConservativeChoice(t *testing.T) {
	small := NewCircle(s2math.UnitZ, s2math.Angle(0.1))
	big := NewCircle(s2math.UnitZ, s2math.Angle(1.0))
	require.Equal(t, small.scl, small.ClipTo(big).scl)

	disjointA := NewCircle(s2math.UnitX, s2math.Angle(0.01))
	disjointB := NewCircle(s2math.UnitZ, s2math.Angle(0.01))
	require.True(t, disjointA.ClipTo(disjointB).IsEmpty())
}

func TestCircleComplement(t *testing.T) {
	c := NewCircle(s2math.UnitZ, s2math.Angle(math.Pi/4))
	comp := c.Complement()
	require.True(t, comp.ContainsPoint(s2math.UnitZ.Neg()))
	require.False(t, comp.ContainsPoint(s2math.UnitZ))
}

func TestCircleBoundingBoxContainsCenter(t *testing.T) {
	c := NewCircle(s2math.UnitZ, s2math.Angle(0.3))
	b := c.BoundingBox()
	require.True(t, b.ContainsPoint(s2math.UnitZ))
}

func TestCircleEncodeDecodeRoundTrip(t *testing.T) {
	c := NewCircle(s2math.UnitX, s2math.Angle(0.5))
	enc := c.Encode()
	got, err := Decode(enc)
	require.NoError(t, err)
	back, ok := got.(Circle)
	require.True(t, ok)
	require.InDelta(t, c.scl, back.scl, 1e-12)
	require.InDelta(t, c.center.X(), back.center.X(), 1e-12)
}
