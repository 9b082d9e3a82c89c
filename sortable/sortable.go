// Package sortable provides sortable wrapper types for primitive types to implement comparison interfaces.
package sortable

import (
	"github.com/amp-labs/sortedseq/compare"
)

type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Comparator bridges a Sortable type into the three-way Comparator used by
// the sorted container. Equals is consulted first so that types with
// non-trivial equality semantics keep them.
func Comparator[T Sortable[T]]() compare.Comparator[T] {
	return func(a, b T) compare.Ordering {
		switch {
		case compare.Equals[T](a, b):
			return compare.Equal
		case a.LessThan(b):
			return compare.Less
		default:
			return compare.Greater
		}
	}
}
