package pixelization

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/sphgeom/rangeset"
	"github.com/katalvlaran/sphgeom/region"
	"github.com/katalvlaran/sphgeom/s2math"
	"github.com/katalvlaran/sphgeom/sfc"
)

// Mq3cPixelization is the modified-Q3C tiling of spec.md §4.H.2: the unit
// cube's 6 faces, each gridded at 2^level × 2^level resolution and
// ordered along the face by a Hilbert curve.
type Mq3cPixelization struct {
	level int
}

// NewMq3cPixelization validates level ∈ [0, 30] (keeps 2·level within
// the 64-bit index budget alongside the 4-bit face tag).
func NewMq3cPixelization(level int) (Mq3cPixelization, error) {
	if level < 0 || level > 30 {
		return Mq3cPixelization{}, fmt.Errorf("%w: mq3c level %d", ErrInvalidLevel, level)
	}
	return Mq3cPixelization{level: level}, nil
}

func (m Mq3cPixelization) Level() int { return m.level }

type mq3cFace struct {
	tag              uint64
	normal, u, w     s2math.UnitVector3d
}

// mq3cFaces lists the 6 cube faces, tags 10-15, per spec.md §4.H.2. Each
// face's (u, w) axes are chosen so u × w = normal, keeping the forward
// and back projections consistently CCW.
var mq3cFaces = [6]mq3cFace{
	{10, s2math.UnitZ, s2math.UnitX, s2math.UnitY},
	{11, s2math.UnitX, s2math.UnitY, s2math.UnitZ},
	{12, s2math.UnitY, s2math.UnitZ, s2math.UnitX},
	{13, s2math.UnitX.Neg(), s2math.UnitY.Neg(), s2math.UnitZ},
	{14, s2math.UnitY.Neg(), s2math.UnitZ.Neg(), s2math.UnitX},
	{15, s2math.UnitZ.Neg(), s2math.UnitX.Neg(), s2math.UnitY},
}

func mq3cFaceOf(v s2math.UnitVector3d) int {
	ax, ay, az := math.Abs(v.X()), math.Abs(v.Y()), math.Abs(v.Z())
	switch {
	case ax >= ay && ax >= az:
		if v.X() >= 0 {
			return 1 // +X
		}
		return 3 // -X
	case ay >= ax && ay >= az:
		if v.Y() >= 0 {
			return 2 // +Y
		}
		return 4 // -Y
	default:
		if v.Z() >= 0 {
			return 0 // +Z
		}
		return 5 // -Z
	}
}

// mq3cProject maps v onto its dominant face's tangent plane, returning
// (u, w) ∈ [-1, 1]².
func mq3cProject(face mq3cFace, v s2math.UnitVector3d) (u, w float64) {
	pos := v.Dot(face.normal)
	return v.Dot(face.u) / pos, v.Dot(face.w) / pos
}

// mq3cUnproject reconstructs a unit vector from a face and tangent-plane
// coordinates (u, w), which need not lie within [-1, 1] — points outside
// that range land on a neighboring face once re-normalized and re-faced.
func mq3cUnproject(face mq3cFace, u, w float64) s2math.UnitVector3d {
	n, ua, wa := face.normal.Vector3d(), face.u.Vector3d(), face.w.Vector3d()
	sum := n.Add(ua.Scale(u)).Add(wa.Scale(w))
	unit, err := sum.Normalize()
	if err != nil {
		return face.normal
	}
	return unit
}

func mq3cGridCoord(u float64, side uint64) uint64 {
	s := int64(math.Floor((u + 1) * float64(side) / 2))
	if s < 0 {
		s = 0
	}
	if s >= int64(side) {
		s = int64(side) - 1
	}
	return uint64(s)
}

// Index returns the pixel ID for v: a 4-bit face tag followed by
// 2·level Hilbert-curve bits over the face's grid.
func (m Mq3cPixelization) Index(v s2math.UnitVector3d) uint64 {
	face := mq3cFaces[mq3cFaceOf(v)]
	u, w := mq3cProject(face, v)
	side := uint64(1) << uint(m.level)
	s := mq3cGridCoord(u, side)
	t := mq3cGridCoord(w, side)
	h := sfc.HilbertEncode64(uint(m.level), uint32(s), uint32(t))
	return face.tag<<uint(2*m.level) | h
}

// mq3cCellBounds returns the tangent-plane corners of grid cell (s, t)
// at the given side length, inflated slightly to avoid gaps from
// floating point rounding at shared edges.
func mq3cCellBounds(s, t, side uint64) (u0, w0, u1, w1 float64) {
	const eps = 1e-15
	cell := 2.0 / float64(side)
	u0 = -1 + float64(s)*cell - eps
	u1 = -1 + float64(s+1)*cell + eps
	w0 = -1 + float64(t)*cell - eps
	w1 = -1 + float64(t+1)*cell + eps
	return
}

func (m Mq3cPixelization) quad(i uint64) (mq3cFace, uint64, uint64, uint64, error) {
	tag := i >> uint(2*m.level)
	if tag < 10 || tag > 15 {
		return mq3cFace{}, 0, 0, 0, fmt.Errorf("%w: mq3c index %d", ErrInvalidIndex, i)
	}
	side := uint64(1) << uint(m.level)
	code := i & (side*side - 1)
	s, t := sfc.HilbertDecode64(uint(m.level), code)
	return mq3cFaces[tag-10], uint64(s), uint64(t), side, nil
}

func (m Mq3cPixelization) Pixel(i uint64) (region.ConvexPolygon, error) {
	face, s, t, side, err := m.quad(i)
	if err != nil {
		return region.ConvexPolygon{}, err
	}
	u0, w0, u1, w1 := mq3cCellBounds(s, t, side)
	corners := []s2math.UnitVector3d{
		mq3cUnproject(face, u0, w0),
		mq3cUnproject(face, u1, w0),
		mq3cUnproject(face, u1, w1),
		mq3cUnproject(face, u0, w1),
	}
	return region.NewConvexPolygon(corners)
}

// Neighborhood returns i and its up to 8 grid-adjacent cells (5 at level
// 0, where each cell is a whole face; 8 for a cell at a cube corner; 9
// everywhere else, cube edges included) per spec.md §4.H.2, sorted
// ascending with duplicates removed.
//
// Rather than hand-rolling a per-face wraparound table, each
// neighboring cell's center is reprojected through mq3cUnproject (which
// tolerates (u, w) outside [-1, 1], since it only normalizes a 3-vector)
// and then re-indexed via Index. Index's own face-assignment step
// naturally resolves which face an out-of-range offset actually lands
// on, so cube-edge and cube-corner wraparound fall out of the existing
// forward projection instead of needing a second, bespoke one.
func (m Mq3cPixelization) Neighborhood(i uint64) ([]uint64, error) {
	face, s, t, side, err := m.quad(i)
	if err != nil {
		return nil, err
	}
	cell := 2.0 / float64(side)
	seen := make(map[uint64]struct{}, 9)
	for ds := int64(-1); ds <= 1; ds++ {
		for dt := int64(-1); dt <= 1; dt++ {
			u := -1 + (float64(int64(s)+ds)+0.5)*cell
			w := -1 + (float64(int64(t)+dt)+0.5)*cell
			v := mq3cUnproject(face, u, w)
			seen[m.Index(v)] = struct{}{}
		}
	}
	out := make([]uint64, 0, len(seen))
	for idx := range seen {
		out = append(out, idx)
	}
	sort.Slice(out, func(a, b int) bool { return out[a] < out[b] })
	return out, nil
}

func (m Mq3cPixelization) ToString(i uint64) string {
	tag := i >> uint(2*m.level)
	if tag < 10 || tag > 15 {
		return fmt.Sprintf("Mq3c(invalid:%d)", i)
	}
	code := i & ((uint64(1) << uint(2*m.level)) - 1)
	return fmt.Sprintf("F%d/%d", tag-10, code)
}

func (m Mq3cPixelization) Universe() rangeset.RangeSet {
	var rs rangeset.RangeSet
	span := uint64(1) << uint(2*m.level)
	for tag := uint64(10); tag <= 15; tag++ {
		lo := tag << uint(2*m.level)
		rs.Insert(lo, lo+span)
	}
	return rs
}

// mq3cNode is the pixelNode adapter. Unlike HTM, a node's (s0, t0) grid
// origin is aligned to a 2^(level-depth)-sized block; the key fact that
// lets this reuse the generic finder without tracking Hilbert rotation
// state is that such an aligned block always maps to a contiguous, aligned
// Hilbert range of 4^(level-depth) indices — the iterative Hilbert
// construction processes scales coarsest-to-finest, so the coarse bits of
// (s0, t0) fix the high bits of the index and the finer iterations only
// permute the low 2·(level-depth) bits. The range starts at any of the
// block's cell indices with those low bits cleared; the origin cell's own
// index is not in general the first, since the rotation state can place
// it anywhere in the block.
type mq3cNode struct {
	face     mq3cFace
	s0, t0   uint64 // grid origin, aligned to blockSize
	blockLog uint   // log2 of the block's side length in grid cells
	level    int
}

func (n mq3cNode) Polygon() region.ConvexPolygon {
	side := uint64(1) << uint(n.level)
	blockCells := uint64(1) << n.blockLog
	u0, w0, u1, w1 := mq3cBlockBounds(n.s0, n.t0, blockCells, side)
	corners := []s2math.UnitVector3d{
		mq3cUnproject(n.face, u0, w0),
		mq3cUnproject(n.face, u1, w0),
		mq3cUnproject(n.face, u1, w1),
		mq3cUnproject(n.face, u0, w1),
	}
	p, _ := region.NewConvexPolygon(corners)
	return p
}

func mq3cBlockBounds(s0, t0, blockCells, side uint64) (u0, w0, u1, w1 float64) {
	const eps = 1e-15
	cell := 2.0 / float64(side)
	u0 = -1 + float64(s0)*cell - eps
	u1 = -1 + float64(s0+blockCells)*cell + eps
	w0 = -1 + float64(t0)*cell - eps
	w1 = -1 + float64(t0+blockCells)*cell + eps
	return
}

func (n mq3cNode) Children() []pixelNode {
	half := n.blockLog - 1
	halfCells := uint64(1) << half
	// Plain coordinate bisection — correct regardless of Hilbert
	// rotation state, since subdivision only needs geometric containment,
	// not curve-adjacency order.
	quads := [4]struct{ ds, dt uint64 }{
		{0, 0}, {0, halfCells}, {halfCells, 0}, {halfCells, halfCells},
	}
	children := make([]struct {
		node mq3cNode
		base uint64
	}, 4)
	for k, q := range quads {
		child := mq3cNode{
			face:     n.face,
			s0:       n.s0 + q.ds,
			t0:       n.t0 + q.dt,
			blockLog: half,
			level:    n.level,
		}
		children[k] = struct {
			node mq3cNode
			base uint64
		}{child, sfc.HilbertEncode64(uint(n.level), uint32(child.s0), uint32(child.t0))}
	}
	// Sort ascending by base Hilbert index so callers see the same
	// ordering convention HTM's natural bit-append order provides.
	for i := 1; i < 4; i++ {
		for j := i; j > 0 && children[j].base < children[j-1].base; j-- {
			children[j], children[j-1] = children[j-1], children[j]
		}
	}
	out := make([]pixelNode, 4)
	for k, c := range children {
		out[k] = c.node
	}
	return out
}

func (n mq3cNode) LeafRange() rangeset.Range {
	count := uint64(1) << (2 * n.blockLog)
	base := n.face.tag<<uint(2*n.level) | sfc.HilbertEncode64(uint(n.level), uint32(n.s0), uint32(n.t0))&^(count-1)
	return rangeset.Range{Begin: base, End: base + count}
}

func (m Mq3cPixelization) roots() []pixelNode {
	out := make([]pixelNode, 6)
	for i, f := range mq3cFaces {
		out[i] = mq3cNode{face: f, s0: 0, t0: 0, blockLog: uint(m.level), level: m.level}
	}
	return out
}

func (m Mq3cPixelization) Envelope(r region.Region, maxRanges int) rangeset.RangeSet {
	return runFinder(m.roots(), r, maxRanges, m.level, false)
}

func (m Mq3cPixelization) Interior(r region.Region, maxRanges int) rangeset.RangeSet {
	return runFinder(m.roots(), r, maxRanges, m.level, true)
}
