package sequence

import (
	"iter"
	"slices"
)

// sliceSequence is the default Sequence implementation, backed by a Go slice.
// Insert and RemoveAt shift elements with the usual linear copy cost.
type sliceSequence[T any] struct {
	elements []T
}

var _ Sequence[any] = (*sliceSequence[any])(nil)

// NewSlice creates an empty slice-backed Sequence.
func NewSlice[T any]() Sequence[T] {
	return &sliceSequence[T]{}
}

// NewSliceFrom creates a slice-backed Sequence holding a copy of values.
func NewSliceFrom[T any](values []T) Sequence[T] {
	return &sliceSequence[T]{elements: slices.Clone(values)}
}

func (s *sliceSequence[T]) At(index int) T {
	return s.elements[index]
}

func (s *sliceSequence[T]) Len() int {
	return len(s.elements)
}

func (s *sliceSequence[T]) Insert(index int, value T) {
	s.elements = slices.Insert(s.elements, index, value)
}

func (s *sliceSequence[T]) RemoveAt(index int) T {
	out := s.elements[index]
	s.elements = slices.Delete(s.elements, index, index+1)

	return out
}

func (s *sliceSequence[T]) Append(value T) {
	s.elements = append(s.elements, value)
}

func (s *sliceSequence[T]) Replace(values []T) {
	s.elements = slices.Clone(values)
}

func (s *sliceSequence[T]) Entries() []T {
	return slices.Clone(s.elements)
}

func (s *sliceSequence[T]) Seq() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.elements {
			if !yield(i, v) {
				return
			}
		}
	}
}

func (s *sliceSequence[T]) Clear() {
	s.elements = nil
}

func (s *sliceSequence[T]) Clone() Sequence[T] {
	return &sliceSequence[T]{elements: slices.Clone(s.elements)}
}
