/*
Package hostnum provides the primitive integer, string and boolean operations
called by generated code running on a host whose only native number is a
scalar that is exact up to 2^53.

A logical unsigned 64-bit integer is an Int, held in one of two forms:

	narrow: a single host scalar, valid in [0, MaxSafe]
	wide:   a (high, low) pair of 32-bit limbs, (high << 32) | low

Int is a value type; all operations return new values. Binary operations
accept any combination of forms, and the 64-bit operations return results in
canonical form: narrow if the high limb is zero, wide otherwise.

	a := hostnum.IntFromRaw(0x1, 0x80000000)
	fmt.Println(a.Lsh(1))
	// Output: 12884901888

Int values can be created from a variety of sources:

	IntFromScalar(v int64) Int
	IntFromRaw(hi, lo uint32) Int
	IntFrom64(v uint64) Int
	IntFromString(s string) (out Int, err error)
	IntFromFloat64(f float64) (out Int, inRange bool)

Operations that can fail their preconditions hang off a Runtime, which holds
the failure hooks installed by the host:

	rt := hostnum.New(hostnum.Config{
		OnFail: func(err error) { log.Println("runtime failure:", err) },
	})
	diff, ok := rt.Subtract(hostnum.IntFromScalar(3), hostnum.IntFromScalar(5))
	// ok == false: unsigned subtraction underflowed

Int supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

*/
package hostnum
