package hostnum

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestAdd32(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 50000; i++ {
		x, y := globalRNG.Uint32(), globalRNG.Uint32()
		carry := uint32(globalRNG.Intn(2))

		sum, carryOut := add32(x, y, carry)
		expected := uint64(x) + uint64(y) + uint64(carry)
		tt.MustEqual(uint32(expected), sum, "failed at index %d", i)
		tt.MustEqual(uint32(expected>>32), carryOut, "failed at index %d", i)
	}
}

func TestIntAdd(t *testing.T) {
	for _, tc := range []struct {
		a, b, c Int
	}{
		{narrow(1), narrow(2), narrow(3)},
		{narrow(maxUint32), narrow(1), wide(1, 0)}, // lo carries to hi
		{wide(0, maxUint32), wide(0, maxUint32), wide(1, 0xFFFFFFFE)},
		{MaxInt, narrow(1), narrow(0)}, // Overflow wraps
	} {
		t.Run(fmt.Sprintf("%s+%s=%s", tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.c, tc.a.Add(tc.b))
		})
	}
}

func TestSubtract(t *testing.T) {
	rt := New(Config{})

	for _, tc := range []struct {
		a, b int64
		out  int64
		ok   bool
	}{
		{5, 3, 2, true},
		{3, 3, 0, true},
		{3, 5, 0, false},
		{0, 1, 0, false},
		{MaxSafe, 0, MaxSafe, true},
		{0, MaxSafe, 0, false},
	} {
		t.Run(fmt.Sprintf("%d-%d", tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, ok := rt.Subtract(narrow(tc.a), narrow(tc.b))
			tt.MustEqual(tc.ok, ok)
			tt.MustEqual(narrow(tc.out), out)
		})
	}
}

func TestSubtractRandom(t *testing.T) {
	tt := assert.WrapTB(t)
	rt := New(Config{})
	for i := 0; i < 10000; i++ {
		a, b := int64(globalRNG.Uint64()&MaxSafe), int64(globalRNG.Uint64()&MaxSafe)
		out, ok := rt.Subtract(narrow(a), narrow(b))
		tt.MustEqual(a >= b, ok, "%d - %d", a, b)
		if ok {
			tt.MustEqual(a-b, out.Scalar(), "%d - %d", a, b)
		}
	}
}

func TestAddChecked32(t *testing.T) {
	rt := New(Config{})

	for _, tc := range []struct {
		a, b int64
		out  int64
		ok   bool
	}{
		{1, 2, 3, true},
		{maxUint32, 0, maxUint32, true},
		{maxUint32 - 1, 1, maxUint32, true},
		{maxUint32, 1, 0, false},
		{maxUint32, maxUint32, 0, false},
	} {
		t.Run(fmt.Sprintf("%d+%d", tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, ok := rt.AddChecked32(narrow(tc.a), narrow(tc.b))
			tt.MustEqual(tc.ok, ok)
			tt.MustEqual(narrow(tc.out), out)
		})
	}
}

func TestAddChecked64(t *testing.T) {
	rt := New(Config{})

	for _, tc := range []struct {
		a, b int64
		out  Int
	}{
		{1, 2, narrow(3)},
		{maxUint32, 1, narrow(1 << 32)},
		{MaxSafe - 1, 1, narrow(MaxSafe)},
		{MaxSafe, 1, wide(0x200000, 0)},
		{MaxSafe, MaxSafe, wide(0x3FFFFF, 0xFFFFFFFE)},
	} {
		t.Run(fmt.Sprintf("%d+%d", tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, rt.AddChecked64(narrow(tc.a), narrow(tc.b)))
		})
	}
}

func TestAdd(t *testing.T) {
	tt := assert.WrapTB(t)
	rt := New(Config{})
	tt.MustEqual(narrow(3), rt.Add(narrow(1), narrow(2)))
	tt.MustEqual(narrow(1<<33), rt.Add(narrow(1<<32), narrow(1<<32)))
}

func TestAddU64(t *testing.T) {
	rt := New(Config{})

	for _, tc := range []struct {
		a, b Int
		out  Int
		ok   bool
	}{
		{narrow(1), narrow(2), narrow(3), true},
		{narrow(maxUint32), wide(0, 1), wide(1, 0), true},
		{wide(1, maxUint32), narrow(1), wide(2, 0), true},
		{wide(maxUint32, maxUint32), narrow(0), MaxInt, true},
		{MaxInt, narrow(1), narrow(0), false},
		{wide(0x80000000, 0), wide(0x80000000, 0), narrow(0), false},
	} {
		t.Run(fmt.Sprintf("%s+%s", tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, ok := rt.AddU64(tc.a, tc.b)
			tt.MustEqual(tc.ok, ok)
			tt.MustEqual(tc.out, out)
		})
	}
}

func TestNarrowOnlyOperands(t *testing.T) {
	rt := New(Config{})

	for _, tc := range []struct {
		name string
		fn   func()
	}{
		{"add-wide", func() { rt.Add(wide(1, 0), narrow(1)) }},
		{"add-negative", func() { rt.Add(narrow(-1), narrow(1)) }},
		{"subtract-wide", func() { rt.Subtract(narrow(1), wide(0, 1)) }},
		{"add32-unsafe", func() { rt.AddChecked32(narrow(MaxSafe+1), narrow(0)) }},
		{"add64-wide", func() { rt.AddChecked64(wide(1, 0), narrow(1)) }},
		{"tostring-wide", func() { rt.IntegerToString(wide(0, 5)) }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			tt := assert.WrapTB(t)
			err := catchFailure(tc.fn)
			tt.MustAssert(errors.Is(err, ErrContract), "found %v", err)
		})
	}
}

func TestNarrowOnlyOperandsUnchecked(t *testing.T) {
	tt := assert.WrapTB(t)
	rt := New(Config{Unchecked: true})
	err := catchFailure(func() {
		out, ok := rt.Subtract(narrow(7), wide(0, 2))
		tt.MustAssert(ok)
		tt.MustEqual(narrow(5), out)
	})
	tt.MustOK(err)
}
