// Package sorted provides a self-maintaining sorted sequence container: a
// mutable collection that keeps a total order over its elements across every
// mutation.
//
// # Overview
//
// A [Container] wraps a backing [github.com/amp-labs/sortedseq/sequence.Sequence]
// and layers on a three-way comparator, nil rejection, and a binary-search
// locator that computes the position of each new element in O(log n)
// comparisons (insertion still pays the backing sequence's linear shift
// cost). The public surface only exposes order-preserving mutations, so the
// sort invariant is structural: there is no way to desynchronize the order
// through the API.
//
// # Usage
//
//	seq := sorted.NewNatural[string]()
//	_ = seq.Push("banana", "apple", "cherry")
//	fmt.Println(seq.Entries()) // [apple banana cherry]
//
// A custom ordering is a [github.com/amp-labs/sortedseq/compare.Comparator]
// installed at construction:
//
//	desc := sorted.New(compare.Reversed(compare.Natural[int]()))
//	_ = desc.Push(1, 3, 2)
//	fmt.Println(desc.Entries()) // [3 2 1]
//
// # Tie-breaking
//
// A value that compares equal to an existing element is inserted after the
// element the binary search matched: it lands within the run of equal
// elements (possibly at its head), never before a strictly smaller element
// and never after a strictly greater one. Arrival order among equal values
// is not preserved; if a stricter tie-break is needed, encode the secondary
// key in the comparator.
//
// # Disabled operations
//
// Positional writes (AssignAt, InsertAt, Fill, Prepend) and comparator-free
// reordering (ReverseInPlace, RotateInPlace, ShuffleInPlace, SortInPlace)
// always return [ErrUnsupported]. Removals are permitted: deleting an
// element cannot disturb the order of the rest.
//
// # Thread Safety
//
// A Container is not safe for concurrent use. It is exclusively owned by its
// caller; wrap it in a mutex if multiple goroutines need access.
package sorted
