package compare

import (
	"cmp"

	"facette.io/natsort"
)

// Ordering is the result of a three-way comparison between two values.
// Exactly three values are recognized: Less, Equal, and Greater. A Comparator
// that produces any other value is considered broken, and consumers of this
// package (notably the sorted container) reject it at the comparison site.
type Ordering int

const (
	// Less means the first operand sorts strictly before the second.
	Less Ordering = -1

	// Equal means the two operands have the same rank.
	Equal Ordering = 0

	// Greater means the first operand sorts strictly after the second.
	Greater Ordering = 1
)

// Valid reports whether the Ordering is one of the three recognized states.
// Comparators are free to misbehave (including nondeterministically), so
// callers must check validity on every comparison, not just the first.
func (o Ordering) Valid() bool {
	return o == Less || o == Equal || o == Greater
}

// String returns a human-readable representation of the Ordering.
func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return "invalid"
	}
}

// Comparator is a three-way comparison function over a pair of values.
// It must return Less, Equal, or Greater; any other Ordering value is a
// contract violation of the comparator, not of the caller.
type Comparator[T any] func(a, b T) Ordering

// Natural returns a Comparator implementing the natural ordering of T.
// It is backed by the standard library's cmp.Compare and always produces
// a valid Ordering.
func Natural[T cmp.Ordered]() Comparator[T] {
	return func(a, b T) Ordering {
		return Ordering(cmp.Compare(a, b))
	}
}

// Reversed returns a Comparator that inverts the order defined by c.
// It swaps the operands rather than negating the result, so invalid results
// from c pass through unchanged and the caller's comparator validation
// still fires.
func Reversed[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) Ordering {
		return c(b, a)
	}
}

// FromFunc adapts a raw three-way int comparison function into a Comparator.
// The int result is passed through without sign normalization: a function
// returning -1, 0, or 1 behaves normally, while any other value surfaces as
// an invalid Ordering for the consumer to reject rather than being papered
// over by sign normalization.
func FromFunc[T any](f func(a, b T) int) Comparator[T] {
	return func(a, b T) Ordering {
		return Ordering(f(a, b))
	}
}

// NaturalStrings returns a Comparator ordering strings the way a human would,
// with embedded numbers compared by value ("file2" before "file10").
// It is backed by the natsort library.
func NaturalStrings() Comparator[string] {
	return func(a, b string) Ordering {
		switch {
		case natsort.Compare(a, b):
			return Less
		case natsort.Compare(b, a):
			return Greater
		default:
			return Equal
		}
	}
}
