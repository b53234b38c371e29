package utils

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// SmallestN returns the n elements with the smallest keys, ties kept in
// input order. n <= 0 or n >= len(xs) returns every element, sorted.
// The input is not modified.
func SmallestN[T any, K constraints.Ordered](xs []T, n int, key func(T) K) []T {
	sorted := slices.Clone(xs)
	slices.SortStableFunc(sorted, func(a, b T) int {
		ka, kb := key(a), key(b)
		switch {
		case ka < kb:
			return -1
		case ka > kb:
			return 1
		default:
			return 0
		}
	})
	if n > 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// Min returns the smallest element of a non-empty slice.
func Min[T constraints.Ordered](xs []T) T {
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

// Max returns the largest element of a non-empty slice.
func Max[T constraints.Ordered](xs []T) T {
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	return m
}
