package hostnum

import (
	"fmt"
	"math/big"
	"strconv"
)

// Form identifies which representation an Int is using.
type Form uint8

const (
	FormNarrow Form = iota
	FormWide
)

func (f Form) String() string {
	switch f {
	case FormNarrow:
		return "narrow"
	case FormWide:
		return "wide"
	default:
		return fmt.Sprintf("Form(%d)", uint8(f))
	}
}

// Int is a logical unsigned 64-bit integer, held either as a single host
// scalar (narrow) or as a pair of 32-bit limbs (wide). The zero value is
// narrow 0.
type Int struct {
	form   Form
	n      int64
	hi, lo uint32
}

// IntFromScalar wraps a host scalar as a narrow Int. The scalar is not
// checked; operations on a Runtime reject scalars outside [0, MaxSafe].
func IntFromScalar(v int64) Int { return Int{n: v} }

// IntFromRaw creates a wide Int directly from its limbs, without
// canonicalising it. IntFromRaw(0, 5) is a valid, if non-canonical, 5.
func IntFromRaw(hi, lo uint32) Int { return Int{form: FormWide, hi: hi, lo: lo} }

// IntFrom64 creates the canonical Int for v.
func IntFrom64(v uint64) Int { return makeWide(uint32(v>>32), uint32(v)) }

// IntFromString parses a decimal string the way a host literal would be
// materialised: narrow if the value is exactly representable by the host,
// wide otherwise.
func IntFromString(s string) (out Int, err error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return out, fmt.Errorf("hostnum: int string %q invalid", s)
	}
	return intFromSafe(v), nil
}

// IntFromFloat64 creates an Int from a host number. Any fractional portion
// will be truncated towards zero. Numbers outside the bounds of a 64-bit
// unsigned integer are clamped and inRange is set to false.
//
// NaN is treated as 0, inRange is set to false.
func IntFromFloat64(f float64) (out Int, inRange bool) {
	if f == 0 {
		return zeroInt, true

	} else if f < 0 {
		return zeroInt, false

	} else if f <= maxSafeFloat {
		return Int{n: int64(f)}, true

	} else if f < wrapUint64Float {
		// Everything above 2^53 is already integral:
		return makeWide(splitFloat(f)), true

	} else if f != f { // (f != f) == NaN
		return zeroInt, false

	} else {
		return MaxInt, false
	}
}

func intFromSafe(v uint64) Int {
	if v <= MaxSafe {
		return Int{n: int64(v)}
	}
	return IntFrom64(v)
}

func (x Int) Form() Form     { return x.form }
func (x Int) IsNarrow() bool { return x.form == FormNarrow }
func (x Int) IsWide() bool   { return x.form == FormWide }
func (x Int) IsZero() bool   { return x.Uint64() == 0 }

// IsSafe reports whether x can be held by a host scalar without precision
// loss, regardless of the form it is currently in.
func (x Int) IsSafe() bool { return x.Uint64() <= MaxSafe }

// Raw returns the high and low limbs of x. A narrow scalar is split across
// the limbs, so a scalar below 1<<32 comes back as (0, scalar).
func (x Int) Raw() (hi, lo uint32) {
	if x.form == FormWide {
		return x.hi, x.lo
	}
	return uint32(uint64(x.n) >> 32), uint32(x.n)
}

// Scalar returns the host scalar for x. Wide values are flattened, which the
// host can only represent exactly when IsSafe is true.
func (x Int) Scalar() int64 {
	if x.form == FormNarrow {
		return x.n
	}
	return int64(x.Uint64())
}

func (x Int) Uint64() uint64 {
	hi, lo := x.Raw()
	return uint64(hi)<<32 | uint64(lo)
}

// Canonical returns x in its minimal form: narrow if the high limb is zero.
func (x Int) Canonical() Int {
	return makeWide(x.Raw())
}

// valid reports whether a narrow x holds a scalar in [0, MaxSafe]. Wide
// limbs are always valid.
func (x Int) valid() bool {
	return x.form == FormWide || (x.n >= 0 && x.n <= MaxSafe)
}

// AsFloat64 returns x as the host would see it. Wide values above MaxSafe are
// rounded to the nearest float64.
func (x Int) AsFloat64() float64 {
	if x.form == FormNarrow {
		return float64(x.n)
	}
	return (float64(x.hi) * wrapUint32Float) + float64(x.lo)
}

func (x Int) String() string {
	if x.form == FormNarrow {
		return strconv.FormatInt(x.n, 10)
	}
	return strconv.FormatUint(x.Uint64(), 10)
}

func (x Int) Format(s fmt.State, c rune) {
	new(big.Int).SetUint64(x.Uint64()).Format(s, c)
}

func (x Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

func (x *Int) UnmarshalText(bts []byte) (err error) {
	v, err := IntFromString(string(bts))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

func (x Int) MarshalJSON() ([]byte, error) {
	return []byte(`"` + x.String() + `"`), nil
}

func (x *Int) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("hostnum: int invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := IntFromString(string(bts))
	if err != nil {
		return err
	}
	*x = v
	return nil
}
