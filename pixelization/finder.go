package pixelization

import (
	"github.com/katalvlaran/sphgeom/rangeset"
	"github.com/katalvlaran/sphgeom/region"
	"github.com/katalvlaran/sphgeom/relate"
)

// runFinder implements the single pixel-finder algorithm of spec.md
// §4.H.3, parameterized by interiorOnly. roots are the pixelization's
// top-level nodes (depth 0); targetLevel is the pixelization's
// configured level (the depth at which nodes become leaves).
func runFinder(roots []pixelNode, target region.Region, maxRanges, targetLevel int, interiorOnly bool) rangeset.RangeSet {
	var ranges rangeset.RangeSet
	level := targetLevel

	insert := func(n pixelNode) {
		rg := n.LeafRange()
		ranges.Insert(rg.Begin, rg.End)
		if maxRanges <= 0 || ranges.NumRanges() <= maxRanges {
			return
		}
		if level > 0 {
			level--
		}
		depth := 2 * (targetLevel - level)
		if interiorOnly {
			// Coarsening must shrink, not grow, the interior set: simplify
			// the complement outward instead of the set itself.
			ranges = ranges.Complement().Simplify(uint(depth)).Complement()
		} else {
			ranges = ranges.Simplify(uint(depth))
		}
	}

	var visit func(n pixelNode, depth int)
	visit = func(n pixelNode, depth int) {
		if depth > level {
			return
		}
		r := region.Relate(n.Polygon(), target)
		if r.Has(relate.DISJOINT) {
			return
		}
		if r.Has(relate.WITHIN) {
			insert(n)
			return
		}
		if depth == level {
			if !interiorOnly {
				insert(n)
			}
			return
		}
		for _, c := range n.Children() {
			visit(c, depth+1)
		}
	}

	for _, root := range roots {
		visit(root, 0)
	}
	return ranges
}
