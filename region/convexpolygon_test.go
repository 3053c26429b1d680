package region

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sphgeom/s2math"
)

func squarePatch() []s2math.UnitVector3d {
	return []s2math.UnitVector3d{
		s2math.MustUnitVector3d(1, 1, 1),
		s2math.MustUnitVector3d(1, -1, 1),
		s2math.MustUnitVector3d(1, -1, -1),
		s2math.MustUnitVector3d(1, 1, -1),
	}
}

func TestNewConvexPolygonBuildsHull(t *testing.T) {
	p, err := NewConvexPolygon(squarePatch())
	require.NoError(t, err)
	require.Len(t, p.vertices, 4)
}

func TestNewConvexPolygonRejectsTooFewVertices(t *testing.T) {
	_, err := NewConvexPolygon([]s2math.UnitVector3d{s2math.UnitX, s2math.UnitY})
	require.ErrorIs(t, err, ErrTooFewVertices)
}

func TestNewConvexPolygonRejectsAntipodalVertices(t *testing.T) {
	_, err := NewConvexPolygon([]s2math.UnitVector3d{s2math.UnitX, s2math.UnitX.Neg(), s2math.UnitY})
	require.ErrorIs(t, err, ErrAntipodalVertices)
}

func TestConvexPolygonContainsPoint(t *testing.T) {
	p, err := NewConvexPolygon(squarePatch())
	require.NoError(t, err)
	require.True(t, p.ContainsPoint(s2math.UnitX))
	require.False(t, p.ContainsPoint(s2math.UnitX.Neg()))
}

func TestConvexPolygonInsertInteriorPointDiscarded(t *testing.T) {
	patch := squarePatch()
	interior := s2math.MustUnitVector3d(1, 0, 0)
	p, err := NewConvexPolygon(append(patch, interior))
	require.NoError(t, err)
	require.Len(t, p.vertices, 4) // interior point contributes nothing to the hull
}

func TestConvexPolygonCentroidFacesPatch(t *testing.T) {
	p, err := NewConvexPolygon(squarePatch())
	require.NoError(t, err)
	c, err := p.Centroid()
	require.NoError(t, err)
	require.Greater(t, c.X(), 0.0)
}

func TestConvexPolygonBoundingBoxCoversVertices(t *testing.T) {
	p, err := NewConvexPolygon(squarePatch())
	require.NoError(t, err)
	b := p.BoundingBox()
	for _, v := range p.vertices {
		require.True(t, b.ContainsPoint(v))
	}
}

// TestConvexPolygonBoundingBoxCoversEdgeLatitudeBulge exercises the
// per-edge interior latitude extremum: a great-circle edge between two
// equal-latitude vertices 90 degrees apart in longitude bulges to a
// latitude higher than either endpoint.
func TestConvexPolygonBoundingBoxCoversEdgeLatitudeBulge(t *testing.T) {
	a := s2math.LonLatFromDegrees(0, 45).Vector3d()
	b := s2math.LonLatFromDegrees(90, 45).Vector3d()
	c := s2math.LonLatFromDegrees(45, -60).Vector3d()
	p, err := NewConvexPolygon([]s2math.UnitVector3d{a, b, c})
	require.NoError(t, err)

	bulge, err := a.Vector3d().Add(b.Vector3d()).Normalize()
	require.NoError(t, err)
	require.Greater(t, s2math.LatitudeOf(bulge).Degrees(), 50.0, "sanity: bulge should clear 45 degrees")

	box := p.BoundingBox()
	require.True(t, box.ContainsPoint(bulge), "bounding box must cover the edge's interior latitude bulge")
	require.Greater(t, box.Lat().B().Degrees(), 45.0)
}

func TestConvexPolygonEncodeDecodeRoundTrip(t *testing.T) {
	p, err := NewConvexPolygon(squarePatch())
	require.NoError(t, err)
	got, err := Decode(p.Encode())
	require.NoError(t, err)
	back, ok := got.(ConvexPolygon)
	require.True(t, ok)
	require.Len(t, back.vertices, len(p.vertices))
}
