package pixelization

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/katalvlaran/sphgeom/orientation"
	"github.com/katalvlaran/sphgeom/rangeset"
	"github.com/katalvlaran/sphgeom/region"
	"github.com/katalvlaran/sphgeom/s2math"
)

// ErrInvalidLevel indicates a pixelization level outside its valid range.
var ErrInvalidLevel = errors.New("pixelization: level out of range")

// ErrInvalidIndex indicates a pixel index with no valid root trixel/face
// tag, or a malformed path.
var ErrInvalidIndex = errors.New("pixelization: invalid pixel index")

// HtmPixelization is the Hierarchical Triangular Mesh of spec.md §4.H.1:
// 8 root trixels (one per octant), each level quadrupling the cell count.
type HtmPixelization struct {
	level int
}

// NewHtmPixelization validates level ∈ [0, 24].
func NewHtmPixelization(level int) (HtmPixelization, error) {
	if level < 0 || level > 24 {
		return HtmPixelization{}, fmt.Errorf("%w: htm level %d", ErrInvalidLevel, level)
	}
	return HtmPixelization{level: level}, nil
}

func (h HtmPixelization) Level() int { return h.level }

// htmRoots holds the 8 fixed root-trixel vertex triples, in the exact
// order and orientation of the reference HTM table: roots 0-3 tile the
// southern hemisphere, roots 4-7 the northern one. Root index r is
// encoded into a pixel index as r+8, so the root nibble always occupies
// the range [8, 16) regardless of subdivision depth.
var htmRoots = [8][3]s2math.UnitVector3d{
	{s2math.UnitX, s2math.UnitZ.Neg(), s2math.UnitY},
	{s2math.UnitY, s2math.UnitZ.Neg(), s2math.UnitX.Neg()},
	{s2math.UnitX.Neg(), s2math.UnitZ.Neg(), s2math.UnitY.Neg()},
	{s2math.UnitY.Neg(), s2math.UnitZ.Neg(), s2math.UnitX},
	{s2math.UnitX, s2math.UnitZ, s2math.UnitY.Neg()},
	{s2math.UnitY.Neg(), s2math.UnitZ, s2math.UnitX.Neg()},
	{s2math.UnitX.Neg(), s2math.UnitZ, s2math.UnitY},
	{s2math.UnitY, s2math.UnitZ, s2math.UnitX},
}

// htmRoot picks the root triangle containing v, matching the reference
// hemisphere-then-quadrant decision tree rather than a generic octant
// test by sign bits: the root boundaries run along the coordinate
// planes but the tie-breaking on those planes is asymmetric between
// hemispheres, so it can't be derived from |x|,|y|,|z| signs alone.
func htmRoot(v s2math.UnitVector3d) int {
	x, y, z := v.X(), v.Y(), v.Z()
	if z < 0 {
		switch {
		case y > 0:
			if x > 0 {
				return 0
			}
			return 1
		case y == 0:
			if x >= 0 {
				return 0
			}
			return 2
		default:
			if x < 0 {
				return 2
			}
			return 3
		}
	}
	switch {
	case y > 0:
		if x > 0 {
			return 7
		}
		return 6
	case y == 0:
		if x >= 0 {
			return 7
		}
		return 5
	default:
		if x < 0 {
			return 5
		}
		return 4
	}
}

func htmMidpoint(a, b s2math.UnitVector3d) s2math.UnitVector3d {
	sum := a.Vector3d().Add(b.Vector3d())
	u, err := sum.Normalize()
	if err != nil {
		return a
	}
	return u
}

// htmSubdivide implements spec.md §4.H.1's child-triangle rule.
func htmSubdivide(tri [3]s2math.UnitVector3d, child int) [3]s2math.UnitVector3d {
	v0, v1, v2 := tri[0], tri[1], tri[2]
	m01 := htmMidpoint(v0, v1)
	m12 := htmMidpoint(v1, v2)
	m20 := htmMidpoint(v2, v0)
	switch child {
	case 0:
		return [3]s2math.UnitVector3d{v0, m01, m20}
	case 1:
		return [3]s2math.UnitVector3d{v1, m12, m01}
	case 2:
		return [3]s2math.UnitVector3d{v2, m20, m12}
	default:
		return [3]s2math.UnitVector3d{m01, m12, m20}
	}
}

func htmTriangleContains(a, b, c, v s2math.UnitVector3d) bool {
	return orientation.Of(a, b, v) >= 0 && orientation.Of(b, c, v) >= 0 && orientation.Of(c, a, v) >= 0
}

// htmClassifyChild picks which of the 4 children of tri contains v. It
// walks the same single-edge cascade as the reference implementation
// rather than a symmetric 3-edge containment test per candidate: the
// first matching orientation test wins, which is what gives boundary
// points (shared edges/vertices) a deterministic, reproducible owner.
func htmClassifyChild(tri [3]s2math.UnitVector3d, v s2math.UnitVector3d) int {
	v0, v1, v2 := tri[0], tri[1], tri[2]
	m01 := htmMidpoint(v0, v1)
	m20 := htmMidpoint(v2, v0)
	if orientation.Of(v, m01, m20) >= 0 {
		return 0
	}
	m12 := htmMidpoint(v1, v2)
	if orientation.Of(v, m12, m01) >= 0 {
		return 1
	}
	if orientation.Of(v, m20, m12) >= 0 {
		return 2
	}
	return 3
}

// htmDepth recovers a pixel index's level: the root nibble (values 8-15)
// always has its top bit set at position 2·depth+3, so the index's total
// bit length is always exactly 2·depth+4 regardless of path bits.
func htmDepth(i uint64) (depth int, ok bool) {
	n := bits.Len64(i)
	if n < 4 {
		return 0, false
	}
	if (n-4)%2 != 0 {
		return 0, false
	}
	depth = (n - 4) / 2
	octant := int(i>>uint(2*depth)) - 8
	if octant < 0 || octant > 7 {
		return 0, false
	}
	return depth, true
}

// Triangle reconstructs the vertex triple for index i by descending from
// the root per spec.md §4.H.1.
func (h HtmPixelization) Triangle(i uint64) ([3]s2math.UnitVector3d, error) {
	depth, ok := htmDepth(i)
	if !ok {
		return [3]s2math.UnitVector3d{}, fmt.Errorf("%w: htm index %d", ErrInvalidIndex, i)
	}
	octant := int(i>>uint(2*depth)) - 8
	tri := htmRoots[octant]
	for k := depth - 1; k >= 0; k-- {
		child := int((i >> uint(2*k)) & 3)
		tri = htmSubdivide(tri, child)
	}
	return tri, nil
}

func (h HtmPixelization) Pixel(i uint64) (region.ConvexPolygon, error) {
	tri, err := h.Triangle(i)
	if err != nil {
		return region.ConvexPolygon{}, err
	}
	return region.NewConvexPolygon(tri[:])
}

// Index classifies v into a root trixel, then descends h.level times,
// choosing the containing child at each step via orientation tests.
func (h HtmPixelization) Index(v s2math.UnitVector3d) uint64 {
	root := htmRoot(v)
	tri := htmRoots[root]
	idx := uint64(8 + root)
	for d := 0; d < h.level; d++ {
		child := htmClassifyChild(tri, v)
		tri = htmSubdivide(tri, child)
		idx = idx<<2 | uint64(child)
	}
	return idx
}

func (h HtmPixelization) ToString(i uint64) string {
	depth, ok := htmDepth(i)
	if !ok {
		return fmt.Sprintf("HTM(invalid:%d)", i)
	}
	root := int(i>>uint(2*depth)) - 8
	prefix := "N"
	if root < 4 {
		prefix = "S"
	}
	s := fmt.Sprintf("%s%d", prefix, root&3)
	for k := depth - 1; k >= 0; k-- {
		s += fmt.Sprintf("%d", (i>>uint(2*k))&3)
	}
	return s
}

func (h HtmPixelization) Universe() rangeset.RangeSet {
	var rs rangeset.RangeSet
	lo := uint64(8) << uint(2*h.level)
	hi := uint64(16) << uint(2*h.level)
	rs.Insert(lo, hi)
	return rs
}

// htmNode is the pixelNode used by the shared finder.
type htmNode struct {
	index    uint64
	depth    int
	tri      [3]s2math.UnitVector3d
	level    int // the pixelization's configured level
}

func (n htmNode) Polygon() region.ConvexPolygon {
	p, _ := region.NewConvexPolygon(n.tri[:])
	return p
}

func (n htmNode) Children() []pixelNode {
	out := make([]pixelNode, 4)
	for c := 0; c < 4; c++ {
		out[c] = htmNode{
			index: n.index<<2 | uint64(c),
			depth: n.depth + 1,
			tri:   htmSubdivide(n.tri, c),
			level: n.level,
		}
	}
	return out
}

func (n htmNode) LeafRange() rangeset.Range {
	shift := uint(2 * (n.level - n.depth))
	lo := n.index << shift
	hi := lo + (uint64(1) << shift)
	return rangeset.Range{Begin: lo, End: hi}
}

func (h HtmPixelization) roots() []pixelNode {
	out := make([]pixelNode, 8)
	for o := 0; o < 8; o++ {
		out[o] = htmNode{index: uint64(8 + o), depth: 0, tri: htmRoots[o], level: h.level}
	}
	return out
}

func (h HtmPixelization) Envelope(r region.Region, maxRanges int) rangeset.RangeSet {
	return runFinder(h.roots(), r, maxRanges, h.level, false)
}

func (h HtmPixelization) Interior(r region.Region, maxRanges int) rangeset.RangeSet {
	return runFinder(h.roots(), r, maxRanges, h.level, true)
}
