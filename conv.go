package hostnum

import (
	"strconv"
)

func (rt *Runtime) Concat(a, b string) string {
	return a + b
}

func (rt *Runtime) NotBool(x bool) bool {
	return !x
}

// IntegerToString renders a narrow value in base 10. Use Int.String for
// values in either form.
func (rt *Runtime) IntegerToString(x Int) string {
	return strconv.FormatInt(rt.scalar("integer_to_string", x), 10)
}

// SideEffect does nothing. Generated code calls it to pin an evaluation
// order point.
func (rt *Runtime) SideEffect() {}
