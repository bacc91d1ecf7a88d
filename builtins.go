package hostnum

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrUnknownBuiltin = errors.New("hostnum: unknown builtin")
	ErrArity          = errors.New("hostnum: wrong number of arguments")
)

// Value is anything generated code can pass to or receive from a builtin:
// an Int, a string, a bool, or nil for "no value". Go integers are accepted
// as narrow scalars.
type Value = interface{}

type builtin struct {
	arity int
	call  func(rt *Runtime, args []Value) Value
}

// builtins is keyed by the names the code generator emits.
var builtins = map[string]builtin{
	"string_equals": {2, func(rt *Runtime, args []Value) Value {
		const op = "string_equals"
		a, b := rt.argString(op, args[0]), rt.argString(op, args[1])
		return rt.StringEquals(a, b)
	}},

	"integer_equals": {2, func(rt *Runtime, args []Value) Value {
		const op = "integer_equals"
		a, b := rt.argInt(op, args[0]), rt.argInt(op, args[1])
		return rt.IntegerEquals(a, b)
	}},

	"integer_less": {2, func(rt *Runtime, args []Value) Value {
		const op = "integer_less"
		a, b := rt.argInt(op, args[0]), rt.argInt(op, args[1])
		return rt.IntegerLess(a, b)
	}},

	"integer_subtract": {2, func(rt *Runtime, args []Value) Value {
		const op = "integer_subtract"
		a, b := rt.argInt(op, args[0]), rt.argInt(op, args[1])
		return option(rt.Subtract(a, b))
	}},

	"integer_add": {2, func(rt *Runtime, args []Value) Value {
		const op = "integer_add"
		a, b := rt.argInt(op, args[0]), rt.argInt(op, args[1])
		return rt.Add(a, b)
	}},

	"integer_add_u32": {2, func(rt *Runtime, args []Value) Value {
		const op = "integer_add_u32"
		a, b := rt.argInt(op, args[0]), rt.argInt(op, args[1])
		return option(rt.AddChecked32(a, b))
	}},

	"integer_add_u64": {2, func(rt *Runtime, args []Value) Value {
		const op = "integer_add_u64"
		a, b := rt.argInt(op, args[0]), rt.argInt(op, args[1])
		return rt.AddChecked64(a, b)
	}},

	"integer_add_wide": {2, func(rt *Runtime, args []Value) Value {
		const op = "integer_add_wide"
		a, b := rt.argInt(op, args[0]), rt.argInt(op, args[1])
		return option(rt.AddU64(a, b))
	}},

	"normalize_u32": {1, func(rt *Runtime, args []Value) Value {
		return IntFromScalar(int64(Normalize32(rt.argHost("normalize_u32", args[0]))))
	}},

	"normalize_u64": {1, func(rt *Runtime, args []Value) Value {
		return Normalize64(rt.argHost("normalize_u64", args[0]))
	}},

	"make_u64": {2, func(rt *Runtime, args []Value) Value {
		const op = "make_u64"
		hi, lo := rt.argHost(op, args[0]), rt.argHost(op, args[1])
		return MakeWide(hi, lo)
	}},

	"integer_and_u64": {2, func(rt *Runtime, args []Value) Value {
		const op = "integer_and_u64"
		a, b := rt.argInt(op, args[0]), rt.argInt(op, args[1])
		return rt.And(a, b)
	}},

	"integer_or_u64": {2, func(rt *Runtime, args []Value) Value {
		const op = "integer_or_u64"
		a, b := rt.argInt(op, args[0]), rt.argInt(op, args[1])
		return rt.Or(a, b)
	}},

	"integer_xor_u64": {2, func(rt *Runtime, args []Value) Value {
		const op = "integer_xor_u64"
		a, b := rt.argInt(op, args[0]), rt.argInt(op, args[1])
		return rt.Xor(a, b)
	}},

	"integer_not_u64": {1, func(rt *Runtime, args []Value) Value {
		return rt.Not(rt.argInt("integer_not_u64", args[0]))
	}},

	"integer_shift_left_u64": {2, func(rt *Runtime, args []Value) Value {
		const op = "integer_shift_left_u64"
		a, b := rt.argInt(op, args[0]), rt.argInt(op, args[1])
		return rt.ShiftLeft(a, b)
	}},

	"concat": {2, func(rt *Runtime, args []Value) Value {
		const op = "concat"
		a, b := rt.argString(op, args[0]), rt.argString(op, args[1])
		return rt.Concat(a, b)
	}},

	"not": {1, func(rt *Runtime, args []Value) Value {
		return rt.NotBool(rt.argBool("not", args[0]))
	}},

	"side_effect": {0, func(rt *Runtime, args []Value) Value {
		rt.SideEffect()
		return nil
	}},

	"integer_to_string": {1, func(rt *Runtime, args []Value) Value {
		return rt.IntegerToString(rt.argInt("integer_to_string", args[0]))
	}},

	"assert": {1, func(rt *Runtime, args []Value) Value {
		// The condition must be a bool even when the host decides the
		// outcome, so this check ignores both the hook and the profile:
		c, ok := args[0].(bool)
		if !ok {
			rt.Fail(opError("assert", ErrContract))
		}
		rt.Assert(c)
		return nil
	}},

	"fail": {0, func(rt *Runtime, args []Value) Value {
		rt.Fail(ErrFailed)
		return nil
	}},
}

// Builtins returns the names accepted by Call, sorted.
func Builtins() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call invokes a builtin by the name generated code knows it by. Unknown
// names and arity mismatches are returned as errors, as they are bugs in the
// generator rather than in the program. Operand kinds are preconditions:
// a mismatch is reported through the Runtime's hooks before the operation
// has any effect.
//
// Operations that can produce "no value" return a nil Value.
func (rt *Runtime) Call(name string, args ...Value) (out Value, err error) {
	b, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownBuiltin, name)
	}
	if len(args) != b.arity {
		return nil, fmt.Errorf("%w to %s: expected %d, found %d", ErrArity, name, b.arity, len(args))
	}
	return b.call(rt, args), nil
}

func option(v Int, ok bool) Value {
	if !ok {
		return nil
	}
	return v
}

func (rt *Runtime) argString(op string, v Value) string {
	s, ok := v.(string)
	rt.require(op, ok)
	return s
}

func (rt *Runtime) argBool(op string, v Value) bool {
	b, ok := v.(bool)
	rt.require(op, ok)
	return b
}

func (rt *Runtime) argInt(op string, v Value) Int {
	switch v := v.(type) {
	case Int:
		return v
	case int:
		return IntFromScalar(int64(v))
	case int64:
		return IntFromScalar(v)
	case int32:
		return IntFromScalar(int64(v))
	case uint32:
		return IntFromScalar(int64(v))
	}
	rt.require(op, false)
	return zeroInt
}

// argHost accepts a raw host integer, which unlike an Int operand may be
// negative. A narrow Int is unwrapped to its scalar.
func (rt *Runtime) argHost(op string, v Value) int64 {
	switch v := v.(type) {
	case Int:
		rt.require(op, v.form == FormNarrow)
		return v.Scalar()
	case int:
		return int64(v)
	case int64:
		return v
	case int32:
		return int64(v)
	case uint32:
		return int64(v)
	}
	rt.require(op, false)
	return 0
}
