package codec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sphgeom/region"
	"github.com/katalvlaran/sphgeom/s2math"
)

func TestEncodeDecodeBase64SingleRegion(t *testing.T) {
	c := region.NewCircle(s2math.UnitZ, s2math.Angle(0.3))
	s := EncodeToBase64(c)
	got, err := DecodeBase64(s)
	require.NoError(t, err)
	require.IsType(t, region.Circle{}, got)
}

func TestDecodeBase64MultipleRegionsYieldsUnion(t *testing.T) {
	a := region.NewCircle(s2math.UnitX, s2math.Angle(0.1))
	b := region.NewCircle(s2math.UnitZ, s2math.Angle(0.1))
	s := EncodeRegionsToBase64([]region.Region{a, b})
	got, err := DecodeBase64(s)
	require.NoError(t, err)
	require.IsType(t, region.UnionRegion{}, got)
}

func TestEvaluateOverlapExpressionShortCircuitsOnTrue(t *testing.T) {
	a := region.NewCircle(s2math.UnitZ, s2math.Angle(math.Pi/2))
	b := region.NewCircle(s2math.UnitZ, s2math.Angle(0.1))
	expr := EncodeToBase64(a) + " & " + EncodeToBase64(b) + " | not-a-group"
	result, err := EvaluateOverlapExpression(expr)
	require.NoError(t, err)
	require.Equal(t, region.OverlapTrue, result)
}

func TestEvaluateOverlapExpressionFalseWhenDisjoint(t *testing.T) {
	a := region.NewCircle(s2math.UnitX, s2math.Angle(0.01))
	b := region.NewCircle(s2math.UnitZ, s2math.Angle(0.01))
	expr := EncodeToBase64(a) + "&" + EncodeToBase64(b)
	result, err := EvaluateOverlapExpression(expr)
	require.NoError(t, err)
	require.Equal(t, region.OverlapFalse, result)
}

func TestEvaluateOverlapExpressionRejectsMalformedGroup(t *testing.T) {
	a := region.NewCircle(s2math.UnitX, s2math.Angle(0.01))
	_, err := EvaluateOverlapExpression(EncodeToBase64(a))
	require.ErrorIs(t, err, ErrMalformedExpression)
}
