package util

import "golang.org/x/exp/constraints"

// Mod is the euclidean modulo, always in [0, n) for positive n.
func Mod[A constraints.Signed](a A, n A) A {
	res := a % n
	if res < 0 {
		res += n
	}
	return res
}

func Clamp[A constraints.Float](v A, lo A, hi A) A {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
