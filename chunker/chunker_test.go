package chunker

import (
	"testing"

	"github.com/katalvlaran/sphgeom/region"
	"github.com/katalvlaran/sphgeom/s2math"
	"github.com/stretchr/testify/require"
)

func TestNewChunkerRejectsNonPositiveStripes(t *testing.T) {
	_, err := NewChunker(0, 1)
	require.ErrorIs(t, err, ErrInvalidStripes)

	_, err = NewChunker(10, 0)
	require.ErrorIs(t, err, ErrInvalidSubStripes)
}

func TestChunkerStripeAndChunkRoundTrip(t *testing.T) {
	c, err := NewChunker(85, 14)
	require.NoError(t, err)
	require.EqualValues(t, 85, c.NumStripes())
	require.EqualValues(t, 14, c.NumSubStripesPerStripe())

	for _, ch := range c.GetAllChunks()[:5] {
		stripe := c.GetStripe(ch)
		chunk := c.GetChunk(ch, stripe)
		require.Equal(t, ch, c.getChunkID(stripe, chunk))
		require.True(t, c.Valid(ch))
	}
}

func TestChunkBoundingBoxCoversEquator(t *testing.T) {
	c, err := NewChunker(10, 2)
	require.NoError(t, err)

	equatorStripe := c.numStripes / 2
	box, err := c.ChunkBoundingBox(equatorStripe, 0)
	require.NoError(t, err)
	require.False(t, box.IsEmpty())
}

func TestGetChunksIntersectingFindsNonEmptySetForSmallBox(t *testing.T) {
	c, err := NewChunker(85, 14)
	require.NoError(t, err)

	center := s2math.NewLonLat(0, 0.01)
	box := region.NewBoxFromCenterHalfWidths(center, s2math.NewAngle(0.02), s2math.NewAngle(0.02))

	ids := c.GetChunksIntersecting(box)
	require.NotEmpty(t, ids)
	for _, id := range ids {
		require.True(t, c.Valid(id))
	}
}

func TestGetSubChunksIntersectingNestsWithinParentChunks(t *testing.T) {
	c, err := NewChunker(20, 4)
	require.NoError(t, err)

	center := s2math.NewLonLat(0.3, -0.2)
	box := region.NewBoxFromCenterHalfWidths(center, s2math.NewAngle(0.01), s2math.NewAngle(0.01))

	groups := c.GetSubChunksIntersecting(box)
	require.NotEmpty(t, groups)
	for _, g := range groups {
		require.NotEmpty(t, g.SubChunkID)
	}
}

func TestGetAllSubChunksRejectsInvalidChunkID(t *testing.T) {
	c, err := NewChunker(10, 2)
	require.NoError(t, err)

	_, err = c.GetAllSubChunks(-1)
	require.ErrorIs(t, err, ErrInvalidChunkID)
}
