package orientation

import (
	"math"
	"sort"

	"github.com/katalvlaran/sphgeom/bigint"
	"github.com/katalvlaran/sphgeom/s2math"
)

// Error bound constants for the 3x3 fast path. See Shewchuk, "Adaptive
// Precision Floating-Point Arithmetic and Fast Robust Geometric
// Predicates," Discrete & Computational Geometry 18(3):305-363 (1997),
// §4.3, for the derivation this mirrors.
const (
	relativeError3    = 5.6e-16
	maxAbsoluteError3 = 1.7e-15
	minAbsoluteError3 = 4.0e-307
)

// Error bound constants for the 2x2 axis-specialized fast path
// (orientationX/Y/Z), tighter than the general 3x3 bounds above.
const (
	relativeError2    = 1.12e-16
	maxAbsoluteError2 = 1.12e-16
	minAbsoluteError2 = 1.0e-307
)

// Of returns -1, 0, or +1: the sign of det[a|b|c], i.e. of a·(b×c).
func Of(a, b, c s2math.UnitVector3d) int {
	bycz := b.Y() * c.Z()
	bzcy := b.Z() * c.Y()
	bzcx := b.Z() * c.X()
	bxcz := b.X() * c.Z()
	bxcy := b.X() * c.Y()
	bycx := b.Y() * c.X()
	det := a.X()*(bycz-bzcy) + a.Y()*(bzcx-bxcz) + a.Z()*(bxcy-bycx)
	if det > maxAbsoluteError3 {
		return 1
	} else if det < -maxAbsoluteError3 {
		return -1
	}
	permanent := math.Abs(a.X())*(math.Abs(bycz)+math.Abs(bzcy)) +
		math.Abs(a.Y())*(math.Abs(bzcx)+math.Abs(bxcz)) +
		math.Abs(a.Z())*(math.Abs(bxcy)+math.Abs(bycx))
	maxErr := relativeError3*permanent + minAbsoluteError3
	if det > maxErr {
		return 1
	} else if det < -maxErr {
		return -1
	}
	if degenerate(a, b, c) {
		return 0
	}
	return exact(a, b, c)
}

// degenerate reports whether any two of a, b, c are identical or
// antipodal, in which case the orientation is always zero and the exact
// fallback can be skipped.
func degenerate(a, b, c s2math.UnitVector3d) bool {
	const eps = 0 // exact equality, matching the source's operator== semantics
	eq := func(u, v s2math.UnitVector3d) bool { return u.ApproxEqual(v, eps) }
	neg := func(u, v s2math.UnitVector3d) bool { return u.ApproxEqual(v.Neg(), eps) }
	return eq(a, b) || eq(b, c) || eq(a, c) || neg(a, b) || neg(b, c) || neg(a, c)
}

func axis2(ab, ba float64) int {
	det := ab - ba
	if det > maxAbsoluteError2 {
		return 1
	} else if det < -maxAbsoluteError2 {
		return -1
	}
	permanent := math.Abs(ab) + math.Abs(ba)
	maxErr := relativeError2*permanent + minAbsoluteError2
	if det > maxErr {
		return 1
	} else if det < -maxErr {
		return -1
	}
	return 0
}

// OfX, OfY, OfZ specialize Of(e_i, b, c) for the standard basis vectors,
// using a tighter 2x2 error bound before falling back to the exact path.
func OfX(b, c s2math.UnitVector3d) int {
	if o := axis2(b.Y()*c.Z(), b.Z()*c.Y()); o != 0 {
		return o
	}
	return exact(s2math.UnitX, b, c)
}

func OfY(b, c s2math.UnitVector3d) int {
	if o := axis2(b.Z()*c.X(), b.X()*c.Z()); o != 0 {
		return o
	}
	return exact(s2math.UnitY, b, c)
}

func OfZ(b, c s2math.UnitVector3d) int {
	if o := axis2(b.X()*c.Y(), b.Y()*c.X()); o != 0 {
		return o
	}
	return exact(s2math.UnitZ, b, c)
}

// exact settles the sign of det[a|b|c] with bigint.ExactInteger
// arithmetic: each of the six signed triple products a_i*b_j*c_k is
// computed exactly via frexp-scaled mantissas, then accumulated with
// exponent-aligned shifts.
func exact(a, b, c s2math.UnitVector3d) int {
	av := a.Vector3d()
	bv := b.Vector3d()
	cv := c.Vector3d()

	type product struct {
		mantissa bigint.ExactInteger
		exponent int
	}
	var bufs [6][6]uint32
	products := make([]*product, 6)
	for i := range products {
		products[i] = &product{mantissa: *bigint.New(bufs[i][:])}
	}

	computeProduct := func(p *product, d0, d1, d2 float64) {
		const scale = 9007199254740992.0 // 2^53
		m0, e0 := math.Frexp(d0)
		m1, e1 := math.Frexp(d1)
		m2, e2 := math.Frexp(d2)
		var tmpBuf [6]uint32
		tmp := bigint.New(tmpBuf[:])
		_ = p.mantissa.SetInt64(int64(m0 * scale))
		_ = tmp.SetInt64(int64(m1 * scale))
		_ = p.mantissa.Multiply(tmp)
		_ = tmp.SetInt64(int64(m2 * scale))
		_ = p.mantissa.Multiply(tmp)
		p.exponent = e0 + e1 + e2 - 3*53
	}

	computeProduct(products[0], av.X, bv.Y, cv.Z)
	computeProduct(products[1], av.X, bv.Z, cv.Y)
	computeProduct(products[2], av.Y, bv.Z, cv.X)
	computeProduct(products[3], av.Y, bv.X, cv.Z)
	computeProduct(products[4], av.Z, bv.X, cv.Y)
	computeProduct(products[5], av.Z, bv.Y, cv.X)
	products[1].mantissa.Negate()
	products[3].mantissa.Negate()
	products[5].mantissa.Negate()

	sort.Slice(products, func(i, j int) bool { return products[i].exponent > products[j].exponent })

	var accBuf [512]uint32
	acc := bigint.New(accBuf[:])
	_ = acc.Assign(&products[0].mantissa)
	for i := 1; i < 6; i++ {
		_ = acc.MultiplyPow2(uint(products[i-1].exponent - products[i].exponent))
		_ = acc.Add(&products[i].mantissa)
	}
	return acc.Sign()
}
