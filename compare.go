package hostnum

func (x Int) Cmp(y Int) int {
	xhi, xlo := x.Raw()
	yhi, ylo := y.Raw()
	if xhi > yhi {
		return 1
	} else if xhi < yhi {
		return -1
	} else if xlo > ylo {
		return 1
	} else if xlo < ylo {
		return -1
	}
	return 0
}

// Equal reports whether x and y hold the same integer, whatever form either
// of them is in.
func (x Int) Equal(y Int) bool {
	if x.form == FormNarrow && y.form == FormNarrow {
		return x.n == y.n
	}
	xhi, xlo := x.Raw()
	yhi, ylo := y.Raw()
	return xhi == yhi && xlo == ylo
}

func (x Int) LessThan(y Int) bool {
	xhi, xlo := x.Raw()
	yhi, ylo := y.Raw()
	return xhi < yhi || (xhi == yhi && xlo < ylo)
}

func (x Int) GreaterThan(y Int) bool {
	xhi, xlo := x.Raw()
	yhi, ylo := y.Raw()
	return xhi > yhi || (xhi == yhi && xlo > ylo)
}

func (rt *Runtime) StringEquals(a, b string) bool {
	return a == b
}

// IntegerEquals compares the 64-bit values of a and b in any form. Narrow
// operands must hold valid scalars.
func (rt *Runtime) IntegerEquals(a, b Int) bool {
	rt.require("integer_equals", a.valid() && b.valid())
	return a.Equal(b)
}

// IntegerLess orders a and b as unsigned 64-bit integers, high limb first.
// Narrow operands must hold valid scalars.
func (rt *Runtime) IntegerLess(a, b Int) bool {
	rt.require("integer_less", a.valid() && b.valid())
	return a.LessThan(b)
}
