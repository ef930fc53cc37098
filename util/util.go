package util

import (
	"sort"

	"golang.org/x/exp/constraints"
)

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func GetKeysSorted[A constraints.Ordered, B any](m map[A]B) []A {
	keys := GetKeys(m)
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

// Mod is the modulo with the sign of m.
func Mod[A constraints.Signed](a A, m A) A {
	return ((a % m) + m) % m
}

// FloorDiv rounds the quotient towards negative infinity.
func FloorDiv[A constraints.Signed](a A, m A) A {
	return (a - Mod(a, m)) / m
}
