package util

import "golang.org/x/exp/constraints"

type Number interface {
	constraints.Integer | constraints.Float
}

func Abs[A Number](v A) A {
	if v < 0 {
		return -v
	}
	return v
}

func Min[A constraints.Ordered](a, b A) A {
	if a > b {
		return b
	}
	return a
}

// ArgMin returns the index of the first minimum value. Panics on an empty
// slice.
func ArgMin[A constraints.Ordered](vals []A) int {
	if len(vals) == 0 {
		panic("ArgMin of empty slice")
	}
	best := 0
	for i, v := range vals {
		if v < vals[best] {
			best = i
		}
	}
	return best
}

func Sum[A Number](vals []A) A {
	var total A
	for _, v := range vals {
		total += v
	}
	return total
}

// Diffs returns the successive differences of a slice, one shorter than the
// input.
func Diffs[A Number](vals []A) []A {
	if len(vals) < 2 {
		return nil
	}
	res := make([]A, len(vals)-1)
	for i := 1; i < len(vals); i++ {
		res[i-1] = vals[i] - vals[i-1]
	}
	return res
}
