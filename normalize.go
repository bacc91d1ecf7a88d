package hostnum

// Normalize32 reinterprets a host integer holding one 32-bit word as its
// unsigned equivalent. It is not a range check: x must already be bounded to
// [-1<<31, 1<<32) by the caller.
func Normalize32(x int64) uint32 {
	if x < 0 {
		return uint32(wrapUint32 + x)
	}
	return uint32(x)
}

// Normalize64 maps a host integer onto an Int. Negative values are treated as
// sign-extended 64-bit two's complement, which is what the host produces for
// the complement of a small scalar.
func Normalize64(x int64) Int {
	if x < 0 {
		return Int{form: FormWide, hi: maxUint32, lo: Normalize32(x)}
	}
	return Int{n: x}
}

// MakeWide builds the canonical Int for a pair of host limbs, each of which
// may still be in signed form.
func MakeWide(high, low int64) Int {
	return makeWide(Normalize32(high), Normalize32(low))
}

func makeWide(hi, lo uint32) Int {
	if hi == 0 {
		return Int{n: int64(lo)}
	}
	return Int{form: FormWide, hi: hi, lo: lo}
}
