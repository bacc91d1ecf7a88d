package hostnum

import (
	"math"
)

// splitFloat splits a non-negative integral host number below 1<<64 into its
// 32-bit limbs. Division by a power of two is exact, so neither limb loses
// precision.
func splitFloat(f float64) (hi, lo uint32) {
	q := math.Floor(f / wrapUint32Float)
	return uint32(q), uint32(f - q*wrapUint32Float)
}
