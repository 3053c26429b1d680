package bigint

// ExactInteger is an arbitrary-precision signed integer: a sign in
// {-1, 0, +1} plus a little-endian magnitude of 32-bit limbs. The
// most-significant limb of a non-zero value is non-zero; zero has no
// limbs. All operations are exact — no rounding is ever performed — and
// fail with ErrCapacityExceeded rather than grow the backing array, since
// the backing array is caller-owned and fixed size (see package doc).
type ExactInteger struct {
	digits []uint32 // digits[:size] is the little-endian magnitude; cap(digits) is the capacity
	size   int
	sign   int
}

// New wraps backing as a zero-valued ExactInteger. backing's length is the
// integer's capacity; New never allocates.
func New(backing []uint32) *ExactInteger {
	return &ExactInteger{digits: backing[:0:len(backing)]}
}

// Sign returns -1, 0 or +1.
func (e *ExactInteger) Sign() int { return e.sign }

// Size returns the number of limbs in the current value.
func (e *ExactInteger) Size() int { return e.size }

// Capacity returns the number of limbs the backing array can hold.
func (e *ExactInteger) Capacity() int { return cap(e.digits) }

// Digits returns the little-endian magnitude limbs of the current value
// (length Size(), not Capacity()).
func (e *ExactInteger) Digits() []uint32 { return e.digits[:e.size] }

// SetZero sets e to zero.
func (e *ExactInteger) SetZero() {
	e.size = 0
	e.sign = 0
}

// SetInt64 sets e to x.
func (e *ExactInteger) SetInt64(x int64) error {
	if x < 0 {
		// Negate via uint64 two's-complement trick, safe for MinInt64.
		if err := e.SetUint64(uint64(-(x + 1)) + 1); err != nil {
			return err
		}
		if e.sign != 0 {
			e.sign = -1
		}
		return nil
	}
	return e.SetUint64(uint64(x))
}

// SetUint64 sets e to x.
func (e *ExactInteger) SetUint64(x uint64) error {
	lo := uint32(x)
	hi := uint32(x >> 32)
	n := 0
	if lo != 0 || hi != 0 {
		n = 1
	}
	if hi != 0 {
		n = 2
	}
	if err := e.checkCapacity(n); err != nil {
		return err
	}
	if n > 0 {
		e.digits = e.digits[:n]
		e.digits[0] = lo
		if n == 2 {
			e.digits[1] = hi
		}
	} else {
		e.digits = e.digits[:0]
	}
	e.size = n
	if n == 0 {
		e.sign = 0
	} else {
		e.sign = 1
	}
	return nil
}

// Assign sets e to a copy of b's value.
func (e *ExactInteger) Assign(b *ExactInteger) error {
	if e == b {
		return nil
	}
	if err := e.checkCapacity(b.size); err != nil {
		return err
	}
	e.digits = e.digits[:b.size]
	copy(e.digits, b.digits[:b.size])
	e.size = b.size
	e.sign = b.sign
	return nil
}

// Negate flips e's sign; the magnitude is unchanged. Negating zero is a
// no-op.
func (e *ExactInteger) Negate() { e.sign = -e.sign }

func (e *ExactInteger) checkCapacity(n int) error {
	if cap(e.digits) < n {
		return ErrCapacityExceeded
	}
	return nil
}

// magCompare returns -1, 0, +1 according to whether magnitude a is less
// than, equal to, or greater than magnitude b (both little-endian,
// trimmed so the top limb is non-zero).
func magCompare(a, b []uint32) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// magAdd computes a + b (both unsigned magnitudes) into dst, which must
// have capacity >= max(len(a),len(b))+1. Returns the trimmed result
// length. dst may alias a or b.
func magAdd(dst, a, b []uint32) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	var carry uint64
	n := len(a)
	for i := 0; i < n; i++ {
		var bv uint32
		if i < len(b) {
			bv = b[i]
		}
		sum := uint64(a[i]) + uint64(bv) + carry
		dst[i] = uint32(sum)
		carry = sum >> 32
	}
	if carry != 0 {
		dst[n] = uint32(carry)
		n++
	}
	return trimLen(dst, n)
}

// magSub computes a - b (both unsigned magnitudes) into dst, assuming
// a >= b. dst may alias a or b.
func magSub(dst, a, b []uint32) int {
	var borrow uint64
	n := len(a)
	for i := 0; i < n; i++ {
		var bv uint32
		if i < len(b) {
			bv = b[i]
		}
		d := uint64(a[i]) - uint64(bv) - borrow
		dst[i] = uint32(d)
		if d>>32 != 0 {
			borrow = 1
		} else {
			borrow = 0
		}
	}
	return trimLen(dst, n)
}

func trimLen(dst []uint32, n int) int {
	for n > 0 && dst[n-1] == 0 {
		n--
	}
	return n
}

// Add sets e to e + b.
func (e *ExactInteger) Add(b *ExactInteger) error {
	if e.sign == 0 {
		return e.Assign(b)
	}
	if b.sign == 0 {
		return nil
	}
	needed := maxInt(e.size, b.size) + 1
	if err := e.checkCapacity(needed); err != nil {
		return err
	}
	if e.sign == b.sign {
		n := magAdd(e.digitsCap(needed), e.digits[:e.size], b.digits[:b.size])
		e.setResult(n, e.sign)
		return nil
	}
	// Opposite signs: subtract the smaller magnitude from the larger,
	// result takes the sign of the larger operand.
	cmp := magCompare(e.digits[:e.size], b.digits[:b.size])
	switch {
	case cmp == 0:
		e.SetZero()
	case cmp > 0:
		n := magSub(e.digitsCap(needed), e.digits[:e.size], b.digits[:b.size])
		e.setResult(n, e.sign)
	default:
		n := magSub(e.digitsCap(needed), b.digits[:b.size], e.digits[:e.size])
		e.setResult(n, b.sign)
	}
	return nil
}

// Subtract sets e to e - b.
func (e *ExactInteger) Subtract(b *ExactInteger) error {
	if b.sign == 0 {
		return nil
	}
	neg := ExactInteger{digits: b.digits[:b.size], size: b.size, sign: -b.sign}
	return e.Add(&neg)
}

// MultiplyPow2 sets e to e * 2^n.
func (e *ExactInteger) MultiplyPow2(n uint) error {
	if e.sign == 0 {
		return nil
	}
	limbShift := int(n / 32)
	bitShift := uint(n % 32)
	needed := e.size + limbShift + 1
	if err := e.checkCapacity(needed); err != nil {
		return err
	}
	if e.size > multiplyScratchLimbs {
		return ErrCapacityExceeded
	}
	var src [multiplyScratchLimbs]uint32
	copy(src[:e.size], e.digits[:e.size])
	dst := e.digitsCap(needed)
	for i := range dst {
		dst[i] = 0
	}
	var carry uint32
	for i := 0; i < e.size; i++ {
		shifted := uint64(src[i]) << bitShift
		dst[i+limbShift] = uint32(shifted) | carry
		carry = uint32(shifted >> 32)
	}
	if carry != 0 {
		dst[e.size+limbShift] = carry
	}
	n2 := trimLen(dst, needed)
	e.setResult(n2, e.sign)
	return nil
}

// Multiply sets e to e * b. The product is computed into a fixed-size
// on-stack scratch array (see multiplyScratchLimbs) so this never touches
// the heap regardless of e's or b's backing store, then copied into e's
// backing array; this keeps Multiply safe to call with e and b aliasing
// the same storage.
func (e *ExactInteger) Multiply(b *ExactInteger) error {
	if e.sign == 0 || b.sign == 0 {
		e.SetZero()
		return nil
	}
	needed := e.size + b.size
	if err := e.checkCapacity(needed); err != nil {
		return err
	}
	if needed > multiplyScratchLimbs {
		return ErrCapacityExceeded
	}
	var scratch [multiplyScratchLimbs]uint32
	a := e.digits[:e.size]
	bb := b.digits[:b.size]
	for i := 0; i < len(a); i++ {
		if a[i] == 0 {
			continue
		}
		var carry uint64
		ai := uint64(a[i])
		for j := 0; j < len(bb); j++ {
			prod := ai*uint64(bb[j]) + uint64(scratch[i+j]) + carry
			scratch[i+j] = uint32(prod)
			carry = prod >> 32
		}
		k := i + len(bb)
		for carry != 0 {
			sum := uint64(scratch[k]) + carry
			scratch[k] = uint32(sum)
			carry = sum >> 32
			k++
		}
	}
	n := trimLen(scratch[:needed], needed)
	dst := e.digitsCap(n)
	copy(dst, scratch[:n])
	e.setResult(n, e.sign*b.sign)
	return nil
}

// multiplyScratchLimbs bounds the product of two operands that Multiply
// can compute without consulting the caller's capacity first; sized for
// the orientation exact fallback's accumulator (spec.md §5: ≤6-limb
// mantissas feeding a ≤512-limb accumulator, so a worst-case product of
// two accumulator-sized values needs ≤1024 limbs).
const multiplyScratchLimbs = 1024

func (e *ExactInteger) digitsCap(n int) []uint32 {
	return e.digits[:n:cap(e.digits)]
}

func (e *ExactInteger) setResult(n, sign int) {
	e.digits = e.digits[:n]
	e.size = n
	if n == 0 {
		e.sign = 0
	} else {
		e.sign = sign
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Compare returns -1, 0, +1 according to whether e is less than, equal
// to, or greater than b.
func (e *ExactInteger) Compare(b *ExactInteger) int {
	if e.sign != b.sign {
		if e.sign < b.sign {
			return -1
		}
		return 1
	}
	c := magCompare(e.digits[:e.size], b.digits[:b.size])
	if e.sign < 0 {
		return -c
	}
	return c
}
