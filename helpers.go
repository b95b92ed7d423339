package mediacomp

import "golang.org/x/exp/constraints"

type Number interface {
	constraints.Integer | constraints.Float
}

// bound forces n into [lo, hi].
func bound[N Number](n, lo, hi N) N {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func abs[N Number](n N) N {
	if n < 0 {
		return -n
	}
	return n
}

// clamp255 is the channel clamp used everywhere a color component is built
// from an unconstrained int.
func clamp255(v int) uint8 {
	return uint8(bound(v, 0, 255))
}
