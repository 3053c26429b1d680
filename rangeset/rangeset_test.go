package rangeset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsertMergesOverlapsAndAdjacency(t *testing.T) {
	var s RangeSet
	s.Insert(10, 20)
	s.Insert(20, 30) // adjacent, must merge
	s.Insert(5, 8)
	require.Equal(t, []Range{{5, 8}, {10, 30}}, s.Ranges())

	s.Insert(7, 12) // bridges the two ranges
	require.Equal(t, []Range{{5, 30}}, s.Ranges())
}

func TestEraseSplitsRange(t *testing.T) {
	var s RangeSet
	s.Insert(0, 100)
	s.Erase(40, 60)
	require.Equal(t, []Range{{0, 40}, {60, 100}}, s.Ranges())
}

func TestEraseToInfinity(t *testing.T) {
	s := Full()
	s.Erase(1<<32, 0)
	require.Equal(t, []Range{{0, 1 << 32}}, s.Ranges())
}

func TestContainsValue(t *testing.T) {
	var s RangeSet
	s.Insert(10, 20)
	require.True(t, s.ContainsValue(10))
	require.True(t, s.ContainsValue(19))
	require.False(t, s.ContainsValue(20))
	require.False(t, s.ContainsValue(9))
}

func TestUnionIntersectionDifference(t *testing.T) {
	a := FromRange(0, 10)
	b := FromRange(5, 15)
	require.Equal(t, []Range{{0, 15}}, a.Union(b).Ranges())
	require.Equal(t, []Range{{5, 10}}, a.Intersection(b).Ranges())
	require.Equal(t, []Range{{0, 5}}, a.Difference(b).Ranges())
	require.Equal(t, []Range{{0, 5}, {10, 15}}, a.SymmetricDifference(b).Ranges())
}

func TestComplementOfEmptyIsFull(t *testing.T) {
	var empty RangeSet
	require.True(t, empty.Complement().IsFull())
	require.True(t, Full().Complement().IsEmpty())
}

func TestContainsAndIsWithin(t *testing.T) {
	outer := FromRange(0, 100)
	inner := FromRange(10, 20)
	require.True(t, outer.Contains(inner))
	require.False(t, inner.Contains(outer))
	require.True(t, inner.IsWithin(outer))
}

func TestDisjointAndIntersects(t *testing.T) {
	a := FromRange(0, 10)
	b := FromRange(20, 30)
	require.True(t, a.IsDisjointFrom(b))
	c := FromRange(5, 25)
	require.True(t, a.Intersects(c))
}

func TestCardinality(t *testing.T) {
	s := FromRange(10, 20)
	require.Equal(t, uint64(10), s.Cardinality())
	require.Equal(t, uint64(0), Full().Cardinality())
}

func TestSimplifyRoundsOutward(t *testing.T) {
	s := FromRange(5, 9)
	simplified := s.Simplify(2) // round to multiples of 4
	require.Equal(t, []Range{{4, 12}}, simplified.Ranges())
	require.True(t, simplified.Contains(s))
}

func TestSimplifyRoundUpOverflowsToInfinity(t *testing.T) {
	s := FromRange(1, 1<<64-1)
	simplified := s.Simplify(8)
	require.Equal(t, uint64(0), simplified.Ranges()[len(simplified.Ranges())-1].End)
}
