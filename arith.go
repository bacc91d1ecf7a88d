package hostnum

// add32 returns the sum of x, y and carry along with the carry out, which is
// always 0 or 1.
func add32(x, y, carry uint32) (sum, carryOut uint32) {
	sum = x + y + carry
	carryOut = ((x & y) | ((x | y) &^ sum)) >> 31
	return sum, carryOut
}

// add64 adds two limb pairs, returning the carry out of the high limb.
func add64(xhi, xlo, yhi, ylo uint32) (hi, lo, carry uint32) {
	lo, carry = add32(xlo, ylo, 0)
	hi, carry = add32(xhi, yhi, carry)
	return hi, lo, carry
}

// Add returns x + y, wrapping on overflow.
func (x Int) Add(y Int) Int {
	xhi, xlo := x.Raw()
	yhi, ylo := y.Raw()
	hi, lo, _ := add64(xhi, xlo, yhi, ylo)
	return makeWide(hi, lo)
}

// Add adds two narrow values. It does not detect results beyond MaxSafe; the
// caller must know the sum fits.
func (rt *Runtime) Add(a, b Int) Int {
	const op = "integer_add"
	x, y := rt.scalar(op, a), rt.scalar(op, b)
	return Int{n: x + y}
}

// Subtract returns a - b for two narrow values. ok is false if the result
// would be negative.
func (rt *Runtime) Subtract(a, b Int) (out Int, ok bool) {
	const op = "integer_subtract"
	x, y := rt.scalar(op, a), rt.scalar(op, b)
	diff := x - y
	if diff < 0 {
		return out, false
	}
	return Int{n: diff}, true
}

// AddChecked32 returns a + b for two narrow values. ok is false if the sum
// does not fit an unsigned 32-bit integer.
func (rt *Runtime) AddChecked32(a, b Int) (out Int, ok bool) {
	const op = "integer_add_u32"
	x, y := rt.scalar(op, a), rt.scalar(op, b)
	sum := x + y
	if sum > maxUint32 {
		return out, false
	}
	return Int{n: sum}, true
}

// AddChecked64 returns a + b for two narrow values. A sum that the host
// scalar cannot hold exactly is promoted to wide form; two valid narrow
// operands can never overflow 64 bits.
func (rt *Runtime) AddChecked64(a, b Int) Int {
	const op = "integer_add_u64"
	x, y := rt.scalar(op, a), rt.scalar(op, b)
	return intFromSafe(uint64(x) + uint64(y))
}

// AddU64 returns a + b for operands in any form. ok is false if the sum
// overflows 64 bits.
func (rt *Runtime) AddU64(a, b Int) (out Int, ok bool) {
	rt.require("integer_add_wide", a.valid() && b.valid())
	ahi, alo := a.Raw()
	bhi, blo := b.Raw()
	hi, lo, carry := add64(ahi, alo, bhi, blo)
	if carry != 0 {
		return out, false
	}
	return makeWide(hi, lo), true
}
