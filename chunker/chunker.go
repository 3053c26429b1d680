package chunker

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sphgeom/interval"
	"github.com/katalvlaran/sphgeom/region"
	"github.com/katalvlaran/sphgeom/relate"
	"github.com/katalvlaran/sphgeom/s2math"
)

// stripe holds the per-stripe geometry derived once at construction.
type stripe struct {
	chunkWidth         s2math.Angle
	numChunksPerStripe int32
}

// subStripe holds the per-sub-stripe geometry, indexed globally across
// all stripes (stripe*numSubStripesPerStripe + subStripeInStripe).
type subStripe struct {
	subChunkWidth        s2math.Angle
	numSubChunksPerChunk int32
}

// Chunker subdivides the unit sphere into longitude-latitude boxes, per
// the original's Chunker.h: numStripes fixed-height latitude bands, each
// further divided into numSubStripesPerStripe sub-bands for sub-chunks.
type Chunker struct {
	numStripes             int32
	numSubStripesPerStripe int32
	maxSubChunksPerChunk   int32
	stripeHeight           s2math.Angle
	subStripeHeight        s2math.Angle
	stripes                []stripe
	subStripes             []subStripe
}

// segmentsForHeight returns the number of equal-width longitude segments
// a latitude band needs so that two points separated by one segment's
// width, at the band's latitude closest to a pole (where circles of
// latitude are narrowest), are never less than height apart in angular
// distance. alpha is that closest-to-pole absolute latitude.
func segmentsForHeight(alpha float64, height s2math.Angle) int32 {
	const poleEpsilon = 1e-9
	if alpha >= math.Pi/2-poleEpsilon {
		return 1
	}
	cosAlpha := math.Cos(alpha)
	if cosAlpha < 1e-15 {
		return 1
	}
	ratio := math.Sin(height.Radians()/2) / cosAlpha
	if ratio >= 1 {
		return 1
	}
	width := 2 * math.Asin(ratio)
	n := int32(math.Floor(2 * math.Pi / width))
	if n < 1 {
		n = 1
	}
	return n
}

// NewChunker builds a Chunker with numStripes latitude bands, each split
// into numSubStripesPerStripe sub-bands.
func NewChunker(numStripes, numSubStripesPerStripe int32) (Chunker, error) {
	if numStripes < 1 {
		return Chunker{}, fmt.Errorf("%w: got %d", ErrInvalidStripes, numStripes)
	}
	if numSubStripesPerStripe < 1 {
		return Chunker{}, fmt.Errorf("%w: got %d", ErrInvalidSubStripes, numSubStripesPerStripe)
	}

	stripeHeight := s2math.NewAngle(math.Pi / float64(numStripes))
	subStripeHeight := s2math.NewAngle(stripeHeight.Radians() / float64(numSubStripesPerStripe))

	c := Chunker{
		numStripes:             numStripes,
		numSubStripesPerStripe: numSubStripesPerStripe,
		stripeHeight:           stripeHeight,
		subStripeHeight:        subStripeHeight,
		stripes:                make([]stripe, numStripes),
		subStripes:             make([]subStripe, numStripes*numSubStripesPerStripe),
	}

	var maxSubChunks int32 = 1
	for s := int32(0); s < numStripes; s++ {
		latMin := -math.Pi/2 + float64(s)*stripeHeight.Radians()
		latMax := latMin + stripeHeight.Radians()
		alpha := math.Max(math.Abs(latMin), math.Abs(latMax))
		numChunks := segmentsForHeight(alpha, stripeHeight)
		chunkWidth := s2math.NewAngle(2 * math.Pi / float64(numChunks))
		c.stripes[s] = stripe{chunkWidth: chunkWidth, numChunksPerStripe: numChunks}

		for ss := int32(0); ss < numSubStripesPerStripe; ss++ {
			subLatMin := latMin + float64(ss)*subStripeHeight.Radians()
			subLatMax := subLatMin + subStripeHeight.Radians()
			subAlpha := math.Max(math.Abs(subLatMin), math.Abs(subLatMax))
			rawSegments := segmentsForHeight(subAlpha, subStripeHeight)

			numSubChunksPerChunk := int32(math.Round(float64(rawSegments) / float64(numChunks)))
			if numSubChunksPerChunk < 1 {
				numSubChunksPerChunk = 1
			}
			subChunkWidth := s2math.NewAngle(chunkWidth.Radians() / float64(numSubChunksPerChunk))

			idx := s*numSubStripesPerStripe + ss
			c.subStripes[idx] = subStripe{subChunkWidth: subChunkWidth, numSubChunksPerChunk: numSubChunksPerChunk}
			if numSubChunksPerChunk > maxSubChunks {
				maxSubChunks = numSubChunksPerChunk
			}
		}
	}
	c.maxSubChunksPerChunk = maxSubChunks

	return c, nil
}

func (c Chunker) NumStripes() int32             { return c.numStripes }
func (c Chunker) NumSubStripesPerStripe() int32 { return c.numSubStripesPerStripe }

// GetStripe returns the stripe a chunk ID belongs to.
func (c Chunker) GetStripe(chunkID int32) int32 {
	return chunkID / (2 * c.numStripes)
}

// GetChunk returns the chunk-within-stripe number for a chunk ID, given
// its stripe (as returned by GetStripe).
func (c Chunker) GetChunk(chunkID, stripe int32) int32 {
	return chunkID - stripe*2*c.numStripes
}

func (c Chunker) getChunkID(stripe, chunk int32) int32 {
	return stripe*2*c.numStripes + chunk
}

func (c Chunker) getSubChunkID(stripe, subStripe, chunk, subChunk int32) int32 {
	y := subStripe - stripe*c.numSubStripesPerStripe
	ss := c.subStripes[subStripe]
	x := subChunk - chunk*ss.numSubChunksPerChunk
	return y*c.maxSubChunksPerChunk + x
}

// Valid reports whether chunkID names an in-range chunk for this
// Chunker's configuration.
func (c Chunker) Valid(chunkID int32) bool {
	if chunkID < 0 {
		return false
	}
	s := c.GetStripe(chunkID)
	if s < 0 || s >= c.numStripes {
		return false
	}
	ch := c.GetChunk(chunkID, s)
	return ch >= 0 && ch < c.stripes[s].numChunksPerStripe
}

// ChunkBoundingBox returns the longitude-latitude box covering the given
// stripe/chunk pair.
func (c Chunker) ChunkBoundingBox(stripe, chunk int32) (region.Box, error) {
	if stripe < 0 || stripe >= c.numStripes {
		return region.Box{}, fmt.Errorf("%w: stripe %d", ErrInvalidChunkID, stripe)
	}
	st := c.stripes[stripe]
	if chunk < 0 || chunk >= st.numChunksPerStripe {
		return region.Box{}, fmt.Errorf("%w: chunk %d", ErrInvalidChunkID, chunk)
	}
	latMin := -math.Pi/2 + float64(stripe)*c.stripeHeight.Radians()
	latMax := latMin + c.stripeHeight.Radians()
	lonMin := float64(chunk) * st.chunkWidth.Radians()
	lonMax := lonMin + st.chunkWidth.Radians()

	lon, err := interval.NewNormalizedAngleIntervalFromRaw(lonMin, lonMax)
	if err != nil {
		return region.Box{}, err
	}
	lat := interval.NewAngleInterval(s2math.NewAngle(latMin), s2math.NewAngle(latMax))
	return region.NewBox(lon, lat), nil
}

// SubChunkBoundingBox returns the longitude-latitude box covering the
// given sub-stripe/sub-chunk pair. subChunk is numbered within its parent
// chunk, starting at 0, and the box's longitude span is measured from
// longitude 0: it is the sub-chunk as it lies in the stripe's chunk 0.
func (c Chunker) SubChunkBoundingBox(subStripe, subChunk int32) (region.Box, error) {
	if subStripe < 0 || int(subStripe) >= len(c.subStripes) {
		return region.Box{}, fmt.Errorf("%w: subStripe %d", ErrInvalidChunkID, subStripe)
	}
	ss := c.subStripes[subStripe]
	if subChunk < 0 || subChunk >= ss.numSubChunksPerChunk {
		return region.Box{}, fmt.Errorf("%w: subChunk %d", ErrInvalidChunkID, subChunk)
	}
	latMin := -math.Pi/2 + float64(subStripe)*c.subStripeHeight.Radians()
	latMax := latMin + c.subStripeHeight.Radians()
	lonMin := float64(subChunk) * ss.subChunkWidth.Radians()
	lonMax := lonMin + ss.subChunkWidth.Radians()

	lon, err := interval.NewNormalizedAngleIntervalFromRaw(lonMin, lonMax)
	if err != nil {
		return region.Box{}, err
	}
	lat := interval.NewAngleInterval(s2math.NewAngle(latMin), s2math.NewAngle(latMax))
	return region.NewBox(lon, lat), nil
}

// GetAllChunks returns every chunk ID in the sky subdivision.
func (c Chunker) GetAllChunks() []int32 {
	var ids []int32
	for s := int32(0); s < c.numStripes; s++ {
		for ch := int32(0); ch < c.stripes[s].numChunksPerStripe; ch++ {
			ids = append(ids, c.getChunkID(s, ch))
		}
	}
	return ids
}

// GetAllSubChunks returns every sub-chunk ID within the given chunk.
func (c Chunker) GetAllSubChunks(chunkID int32) ([]int32, error) {
	stripe := c.GetStripe(chunkID)
	chunk := c.GetChunk(chunkID, stripe)
	if stripe < 0 || stripe >= c.numStripes || chunk < 0 || chunk >= c.stripes[stripe].numChunksPerStripe {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChunkID, chunkID)
	}
	var ids []int32
	for ssOff := int32(0); ssOff < c.numSubStripesPerStripe; ssOff++ {
		subStripe := stripe*c.numSubStripesPerStripe + ssOff
		ss := c.subStripes[subStripe]
		for subChunk := int32(0); subChunk < ss.numSubChunksPerChunk; subChunk++ {
			ids = append(ids, c.getSubChunkID(stripe, subStripe, chunk, subChunk))
		}
	}
	return ids, nil
}

// intersects reports whether box potentially overlaps r: true unless
// their relationship is provably DISJOINT.
func intersects(box region.Box, r region.Region) bool {
	return !region.Relate(box, r).Has(relate.DISJOINT)
}

// GetChunksIntersecting returns every chunk that potentially intersects
// r, in ascending chunk-ID order.
func (c Chunker) GetChunksIntersecting(r region.Region) []int32 {
	var ids []int32
	for s := int32(0); s < c.numStripes; s++ {
		st := c.stripes[s]
		for ch := int32(0); ch < st.numChunksPerStripe; ch++ {
			box, err := c.ChunkBoundingBox(s, ch)
			if err != nil {
				continue
			}
			if intersects(box, r) {
				ids = append(ids, c.getChunkID(s, ch))
			}
		}
	}
	return ids
}

// SubChunks collects the sub-chunk IDs belonging to a single chunk.
type SubChunks struct {
	ChunkID    int32
	SubChunkID []int32
}

// GetSubChunksIntersecting returns, per chunk that potentially
// intersects r, the sub-chunks within it that potentially intersect r.
func (c Chunker) GetSubChunksIntersecting(r region.Region) []SubChunks {
	var out []SubChunks
	for s := int32(0); s < c.numStripes; s++ {
		st := c.stripes[s]
		for ch := int32(0); ch < st.numChunksPerStripe; ch++ {
			chunkBox, err := c.ChunkBoundingBox(s, ch)
			if err != nil || !intersects(chunkBox, r) {
				continue
			}
			sc := SubChunks{ChunkID: c.getChunkID(s, ch)}
			for ssOff := int32(0); ssOff < c.numSubStripesPerStripe; ssOff++ {
				subStripe := s*c.numSubStripesPerStripe + ssOff
				ss := c.subStripes[subStripe]
				for subChunk := int32(0); subChunk < ss.numSubChunksPerChunk; subChunk++ {
					subBox, err := c.SubChunkBoundingBox(subStripe, subChunk)
					if err != nil {
						continue
					}
					lonMin := float64(ch)*st.chunkWidth.Radians() + float64(subChunk)*ss.subChunkWidth.Radians()
					lon, err := interval.NewNormalizedAngleIntervalFromRaw(lonMin, lonMin+ss.subChunkWidth.Radians())
					if err != nil {
						continue
					}
					subBox = region.NewBox(lon, subBox.Lat())
					if intersects(subBox, r) {
						sc.SubChunkID = append(sc.SubChunkID, c.getSubChunkID(s, subStripe, ch, subChunk))
					}
				}
			}
			if len(sc.SubChunkID) > 0 {
				out = append(out, sc)
			}
		}
	}
	return out
}
