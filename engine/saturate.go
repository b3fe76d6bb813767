package engine

import (
	"math"
	"math/bits"
)

// satAdd returns a+b clamped to math.MaxUint64.
func satAdd(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return sum
}

// satSub returns a-b clamped to 0.
func satSub(a, b uint64) uint64 {
	diff, borrow := bits.Sub64(a, b, 0)
	if borrow != 0 {
		return 0
	}
	return diff
}

// satMul returns a*b clamped to math.MaxUint64.
func satMul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return math.MaxUint64
	}
	return lo
}

// satDiv returns a/b. Unsigned division cannot overflow; b must be non-zero.
func satDiv(a, b uint64) uint64 {
	return a / b
}
