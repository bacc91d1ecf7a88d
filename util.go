package hostnum

type RandSource interface {
	Uint64() uint64
}

// RandInt generates a canonical Int from an external source.
func RandInt(source RandSource) Int {
	return IntFrom64(source.Uint64())
}

// RandSafeInt generates an Int the host can hold as a scalar, in narrow form.
func RandSafeInt(source RandSource) Int {
	return Int{n: int64(source.Uint64() & MaxSafe)}
}
