package bigint_test

import (
	"testing"

	"github.com/katalvlaran/sphgeom/bigint"
	"github.com/stretchr/testify/require"
)

func newExact(t *testing.T, capacity int) *bigint.ExactInteger {
	t.Helper()
	return bigint.New(make([]uint32, capacity))
}

func TestSetZero(t *testing.T) {
	e := newExact(t, 4)
	require.NoError(t, e.SetInt64(42))
	e.SetZero()
	require.Equal(t, 0, e.Sign())
	require.Equal(t, 0, e.Size())
}

func TestSetInt64Negative(t *testing.T) {
	e := newExact(t, 4)
	require.NoError(t, e.SetInt64(-5))
	require.Equal(t, -1, e.Sign())
}

func TestAddSameSign(t *testing.T) {
	a := newExact(t, 4)
	b := newExact(t, 4)
	require.NoError(t, a.SetInt64(1<<40))
	require.NoError(t, b.SetInt64(1<<40))
	require.NoError(t, a.Add(b))
	want := newExact(t, 4)
	require.NoError(t, want.SetInt64((1<<40)*2))
	require.Equal(t, 0, a.Compare(want))
}

func TestAddOppositeSignsCancel(t *testing.T) {
	a := newExact(t, 4)
	b := newExact(t, 4)
	require.NoError(t, a.SetInt64(7))
	require.NoError(t, b.SetInt64(-7))
	require.NoError(t, a.Add(b))
	require.Equal(t, 0, a.Sign())
}

func TestSubtract(t *testing.T) {
	a := newExact(t, 4)
	b := newExact(t, 4)
	require.NoError(t, a.SetInt64(3))
	require.NoError(t, b.SetInt64(10))
	require.NoError(t, a.Subtract(b))
	want := newExact(t, 4)
	require.NoError(t, want.SetInt64(-7))
	require.Equal(t, 0, a.Compare(want))
}

func TestMultiplyPow2(t *testing.T) {
	a := newExact(t, 4)
	require.NoError(t, a.SetInt64(3))
	require.NoError(t, a.MultiplyPow2(33))
	want := newExact(t, 4)
	require.NoError(t, want.SetInt64(3 * (int64(1) << 33)))
	require.Equal(t, 0, a.Compare(want))
}

func TestMultiply(t *testing.T) {
	a := newExact(t, 6)
	b := newExact(t, 6)
	require.NoError(t, a.SetInt64(1 << 40))
	require.NoError(t, b.SetInt64(-3))
	require.NoError(t, a.Multiply(b))
	require.Equal(t, -1, a.Sign())
	want := newExact(t, 6)
	require.NoError(t, want.SetInt64(-3 * (int64(1) << 40)))
	require.Equal(t, 0, a.Compare(want))
}

func TestMultiplyByZero(t *testing.T) {
	a := newExact(t, 4)
	b := newExact(t, 4)
	require.NoError(t, a.SetInt64(123))
	b.SetZero()
	require.NoError(t, a.Multiply(b))
	require.Equal(t, 0, a.Sign())
}

func TestCapacityExceeded(t *testing.T) {
	a := bigint.New(make([]uint32, 1))
	require.ErrorIs(t, a.SetUint64(1<<40), bigint.ErrCapacityExceeded)
}

func TestAddCapacityExceeded(t *testing.T) {
	a := bigint.New(make([]uint32, 1))
	b := bigint.New(make([]uint32, 2))
	require.NoError(t, a.SetUint64(0xFFFFFFFF))
	require.NoError(t, b.SetUint64(1))
	require.ErrorIs(t, a.Add(b), bigint.ErrCapacityExceeded)
}
