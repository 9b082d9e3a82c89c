package sorted

import (
	"github.com/amp-labs/sortedseq/assert"
	"github.com/amp-labs/sortedseq/compare"
)

// Map creates a new Container by applying transform to every element of c
// and sorting the results under the given comparator. Go's static typing
// means a transform can change the element type, so the result is a new
// container rather than an in-place mutation; for same-type transforms,
// Container.MapInPlace mutates in place. The results are nil-validated and
// sorted the same way Replace is, and c itself is never modified.
func Map[T, U any](
	c *Container[T], transform func(T) U, comparator compare.Comparator[U], opts ...Option[U],
) (*Container[U], error) {
	assert.NotNil(transform, "transform must not be nil")

	values := make([]U, 0, c.Len())
	for _, value := range c.Seq() {
		values = append(values, transform(value))
	}

	return FromSlice(values, comparator, opts...)
}

// Flatten creates a new Container holding every element of every slice in c,
// sorted under the given comparator. As with Map, flattening changes the
// element type from []E to E, so the result is a new container; the
// flattened values are nil-validated and bulk-sorted, and c is never
// modified.
func Flatten[S ~[]E, E any](
	c *Container[S], comparator compare.Comparator[E], opts ...Option[E],
) (*Container[E], error) {
	var values []E

	for _, group := range c.Seq() {
		values = append(values, group...)
	}

	return FromSlice(values, comparator, opts...)
}
