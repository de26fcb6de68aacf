package picker

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Clamp limits v to [lo,hi]. NaN becomes lo.
func Clamp[T constraints.Float](v, lo, hi T) T {
	if v != v {
		return lo
	}
	return min(max(v, lo), hi)
}

// Wrap reduces v modulo one into [0,1). NaN and infinities become zero.
func Wrap[T constraints.Float](v T) T {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	w := T(f - math.Floor(f))
	// Tiny negative inputs can round up to exactly one.
	if w >= 1 {
		return 0
	}
	return w
}
