package hostnum

const (
	// MaxSafe is the largest integer the host scalar represents exactly. Narrow
	// values must lie in [0, MaxSafe].
	MaxSafe = 1<<53 - 1

	maxUint32  = 1<<32 - 1
	maxUint64  = 1<<64 - 1
	wrapUint32 = 1 << 32

	maxSafeFloat    = float64(MaxSafe)
	wrapUint32Float = float64(maxUint32) + 1 // 1 << 32
	wrapUint64Float = float64(maxUint64) + 1 // 1 << 64
)

var (
	MaxInt = Int{form: FormWide, hi: maxUint32, lo: maxUint32}

	zeroInt Int
)
