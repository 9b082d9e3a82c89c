// Package sequence defines the resizable, randomly-indexable backing storage
// used by the sorted container. The container owns ordering; a Sequence only
// promises positional storage, so any implementation that honors the index
// contract below can serve as the backing store.
package sequence

import "iter"

// A Sequence is a mutable ordered collection with positional access.
// Indexes follow Go slice semantics: valid positions are [0, Len()), and an
// out-of-range index panics. Insert additionally accepts index == Len(),
// meaning append at the end.
type Sequence[T any] interface {
	// At returns the element at position index.
	At(index int) T

	// Len returns the number of elements currently stored.
	Len() int

	// Insert places value at position index, shifting later elements right.
	Insert(index int, value T)

	// RemoveAt deletes and returns the element at position index, shifting
	// later elements left.
	RemoveAt(index int) T

	// Append adds value after the last element.
	Append(value T)

	// Replace discards the current contents and copies in values.
	// The Sequence does not retain the argument slice.
	Replace(values []T)

	// Entries returns a copy of the contents in positional order.
	// Mutating the returned slice does not affect the Sequence.
	Entries() []T

	// Seq returns an iterator over (index, element) pairs in positional order.
	Seq() iter.Seq2[int, T]

	// Clear removes all elements.
	Clear()

	// Clone returns an independent copy of the Sequence.
	Clone() Sequence[T]
}
