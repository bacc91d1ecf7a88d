package hostnum

func (x Int) And(y Int) Int {
	xhi, xlo := x.Raw()
	yhi, ylo := y.Raw()
	return makeWide(xhi&yhi, xlo&ylo)
}

func (x Int) Or(y Int) Int {
	xhi, xlo := x.Raw()
	yhi, ylo := y.Raw()
	return makeWide(xhi|yhi, xlo|ylo)
}

func (x Int) Xor(y Int) Int {
	xhi, xlo := x.Raw()
	yhi, ylo := y.Raw()
	return makeWide(xhi^yhi, xlo^ylo)
}

// Not returns the 64-bit complement of x. For a narrow x below 1<<32 this is
// the same as Normalize64(^x).
func (x Int) Not() Int {
	hi, lo := x.Raw()
	return makeWide(^hi, ^lo)
}

// Lsh returns x << n, discarding bits shifted out of the high limb.
func (x Int) Lsh(n uint) Int {
	if x.form == FormNarrow {
		return IntFrom64(uint64(x.n) << n)
	}

	hi, lo := x.hi, x.lo
	if n == 0 {
		return makeWide(hi, lo)
	} else if n >= 64 {
		return zeroInt
	} else if n > 32 {
		return makeWide(lo<<(n-32), 0)
	} else if n < 32 {
		return makeWide((hi<<n)|(lo>>(32-n)), lo<<n)
	} else { // n == 32
		return makeWide(lo, 0)
	}
}

func (rt *Runtime) And(a, b Int) Int {
	rt.require("integer_and_u64", a.valid() && b.valid())
	return a.And(b)
}

func (rt *Runtime) Or(a, b Int) Int {
	rt.require("integer_or_u64", a.valid() && b.valid())
	return a.Or(b)
}

func (rt *Runtime) Xor(a, b Int) Int {
	rt.require("integer_xor_u64", a.valid() && b.valid())
	return a.Xor(b)
}

func (rt *Runtime) Not(x Int) Int {
	rt.require("integer_not_u64", x.valid())
	return x.Not()
}

// ShiftLeft returns a << b. The distance must be a narrow scalar in [0, 64);
// a distance in wide form is not implemented.
func (rt *Runtime) ShiftLeft(a, b Int) Int {
	const op = "integer_shift_left_u64"
	if b.form == FormWide {
		rt.notImplemented(op)
		return zeroInt
	}
	rt.require(op, a.valid() && b.n >= 0 && b.n < 64)
	return a.Lsh(uint(b.n))
}
