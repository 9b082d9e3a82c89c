package sorted

import (
	"cmp"
	"fmt"
	"iter"
	"log/slog"

	"github.com/amp-labs/sortedseq/assert"
	"github.com/amp-labs/sortedseq/compare"
	"github.com/amp-labs/sortedseq/sequence"
	"github.com/amp-labs/sortedseq/zero"
)

// Container is a mutable sequence that keeps its elements in non-decreasing
// order under a three-way comparator installed at construction. Every mutating
// operation either locates the correct position for new elements by binary
// search or performs a full re-sort, so the order invariant holds after every
// call, including calls that return an error.
//
// The container owns its backing sequence exclusively. It is not safe for
// concurrent use; callers needing shared access must synchronize externally.
type Container[T any] struct {
	elements   sequence.Sequence[T]
	comparator compare.Comparator[T]
	log        *slog.Logger
	observer   Observer
}

// Option configures a Container at construction time.
type Option[T any] func(*Container[T])

// WithSequence installs a custom backing sequence. The container takes
// exclusive ownership: any existing contents are discarded, and the caller
// must not mutate the sequence afterwards.
func WithSequence[T any](backing sequence.Sequence[T]) Option[T] {
	return func(c *Container[T]) {
		assert.NotNil(backing, "backing sequence must not be nil")

		backing.Clear()
		c.elements = backing
	}
}

// WithLogger installs a logger for debug-level mutation logging.
// Without this option the container logs nothing.
func WithLogger[T any](log *slog.Logger) Option[T] {
	return func(c *Container[T]) {
		assert.NotNil(log, "logger must not be nil")

		c.log = log
	}
}

// WithObserver installs an Observer notified of container activity,
// such as a metrics collector.
func WithObserver[T any](observer Observer) Option[T] {
	return func(c *Container[T]) {
		assert.NotNil(observer, "observer must not be nil")

		c.observer = observer
	}
}

// New creates an empty Container ordered by the given comparator.
// The comparator is installed once and never changes for the lifetime of
// the container.
func New[T any](comparator compare.Comparator[T], opts ...Option[T]) *Container[T] {
	assert.NotNil(comparator, "comparator must not be nil")

	out := &Container[T]{
		elements:   sequence.NewSlice[T](),
		comparator: comparator,
		log:        slog.New(slog.DiscardHandler),
		observer:   nopObserver{},
	}

	for _, opt := range opts {
		opt(out)
	}

	return out
}

// NewNatural creates an empty Container using the natural ordering of T.
func NewNatural[T cmp.Ordered](opts ...Option[T]) *Container[T] {
	return New(compare.Natural[T](), opts...)
}

// FromSlice creates a Container holding the given values, ordered by the
// given comparator. The values are validated for nils and then sorted once;
// the argument slice is not retained. Returns ErrNullNotAllowed if any value
// is nil.
func FromSlice[T any](values []T, comparator compare.Comparator[T], opts ...Option[T]) (*Container[T], error) {
	out := New(comparator, opts...)

	if err := out.Replace(values); err != nil {
		return nil, err
	}

	return out, nil
}

// FromSliceNatural creates a Container holding the given values under the
// natural ordering of T.
func FromSliceNatural[T cmp.Ordered](values []T, opts ...Option[T]) (*Container[T], error) {
	return FromSlice(values, compare.Natural[T](), opts...)
}

// Generate creates a Container of size elements produced by calling generate
// with each index from 0 to size-1. Generated values are validated for nils
// and sorted once. Returns ErrNilGenerator when generate is nil (a size
// without a generator would be an ambiguous request to fill with nils) and
// ErrNegativeSize for a negative size.
func Generate[T any](
	size int, generate func(int) T, comparator compare.Comparator[T], opts ...Option[T],
) (*Container[T], error) {
	if generate == nil {
		return nil, fmt.Errorf("%w: %d elements requested", ErrNilGenerator, size)
	}

	if size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSize, size)
	}

	values := make([]T, size)
	for i := range values {
		values[i] = generate(i)
	}

	return FromSlice(values, comparator, opts...)
}

// At returns the element at the given position. Like a raw Go slice,
// an out-of-range index panics.
func (c *Container[T]) At(index int) T {
	return c.elements.At(index)
}

// Len returns the number of elements in the container.
func (c *Container[T]) Len() int {
	return c.elements.Len()
}

// IsEmpty returns true if the container holds no elements.
func (c *Container[T]) IsEmpty() bool {
	return c.elements.Len() == 0
}

// Entries returns a copy of the contents in sorted order.
// Mutating the returned slice does not affect the container.
func (c *Container[T]) Entries() []T {
	return c.elements.Entries()
}

// Seq returns an iterator over (index, element) pairs in sorted order.
// This is compatible with Go 1.23+ range-over-func syntax:
//
//	for i, elem := range container.Seq() {
//	    // process index and element
//	}
func (c *Container[T]) Seq() iter.Seq2[int, T] {
	return c.elements.Seq()
}

// String returns a human-readable representation of the contents.
func (c *Container[T]) String() string {
	return fmt.Sprintf("%v", c.elements.Entries())
}

// Clone creates a copy of the container sharing the comparator, logger, and
// observer but owning an independent backing sequence.
func (c *Container[T]) Clone() *Container[T] {
	return &Container[T]{
		elements:   c.elements.Clone(),
		comparator: c.comparator,
		log:        c.log,
		observer:   c.observer,
	}
}

// Clear removes all elements. An empty container is trivially sorted, so
// this remains on the public surface.
func (c *Container[T]) Clear() {
	c.elements.Clear()
}

// RemoveAt deletes and returns the element at the given position. Removals
// cannot disturb the relative order of the remaining elements, so positional
// deletion is permitted. Returns ErrIndexOutOfRange for an index outside
// [0, Len()).
func (c *Container[T]) RemoveAt(index int) (T, error) {
	if index < 0 || index >= c.elements.Len() {
		return zero.Value[T](), fmt.Errorf("%w: index %d with length %d", ErrIndexOutOfRange, index, c.elements.Len())
	}

	return c.elements.RemoveAt(index), nil
}

// Pop removes and returns the greatest element. The second return value is
// false if the container is empty.
func (c *Container[T]) Pop() (T, bool) {
	if c.IsEmpty() {
		return zero.Value[T](), false
	}

	return c.elements.RemoveAt(c.elements.Len() - 1), true
}

// Shift removes and returns the least element. The second return value is
// false if the container is empty.
func (c *Container[T]) Shift() (T, bool) {
	if c.IsEmpty() {
		return zero.Value[T](), false
	}

	return c.elements.RemoveAt(0), true
}
