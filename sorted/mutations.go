package sorted

import (
	"fmt"
	"slices"

	"github.com/amp-labs/sortedseq/assert"
	commonerrors "github.com/amp-labs/sortedseq/errors"
	"github.com/amp-labs/sortedseq/utils"
)

// Push inserts the given values, each at its sorted position. Values are
// placed in argument order, so later values see earlier ones already in the
// container. Ties are right-biased: a value equal to an existing element is
// inserted after the matched element, landing within the run of equal
// values, not necessarily at its end.
//
// The whole batch is validated for nils before anything is inserted: a
// rejected batch returns ErrNullNotAllowed and leaves the container
// unchanged. A comparator fault mid-batch returns ErrInvalidComparator;
// values placed before the fault remain, and the container is still sorted.
func (c *Container[T]) Push(values ...T) error {
	if err := c.rejectNilish(values); err != nil {
		return err
	}

	for _, value := range values {
		index, err := c.insertionIndex(value)
		if err != nil {
			return err
		}

		c.elements.Insert(index, value)
	}

	c.observer.Pushed(len(values))
	c.log.Debug("pushed elements", "count", len(values), "size", c.elements.Len())

	return nil
}

// Append is an alias for Push.
func (c *Container[T]) Append(values ...T) error {
	return c.Push(values...)
}

// Concat pushes every element of values, in order. Equivalent to
// Push(values...).
func (c *Container[T]) Concat(values []T) error {
	return c.Push(values...)
}

// Replace discards the current contents and installs the given values,
// validated for nils and sorted once with the installed comparator. Bulk
// data is assumed unsorted, so this takes the full-sort path rather than
// repeated binary-search insertion. The sort runs on a scratch copy: if the
// comparator faults, the container keeps its previous contents.
func (c *Container[T]) Replace(values []T) error {
	if err := c.rejectNilish(values); err != nil {
		return err
	}

	installed, err := c.sortWith(values)
	if err != nil {
		return err
	}

	c.elements.Replace(installed)

	c.observer.Replaced(len(installed))
	c.log.Debug("replaced contents", "size", c.elements.Len())

	return nil
}

// MapInPlace applies transform to every element and replaces the contents
// with the results. The transform may reorder values or produce nils, so the
// results go through the same nil validation and full re-sort as Replace.
// On error the container keeps its previous contents.
func (c *Container[T]) MapInPlace(transform func(T) T) error {
	assert.NotNil(transform, "transform must not be nil")

	mapped := c.elements.Entries()
	for i, value := range mapped {
		mapped[i] = transform(value)
	}

	return c.Replace(mapped)
}

// rejectNilish validates that no value in the batch is nil, before any
// mutation happens. Every offending position is reported.
func (c *Container[T]) rejectNilish(values []T) error {
	indexes := utils.NilishIndexes(values)

	col := &commonerrors.Collection{}
	for _, index := range indexes {
		col.Add(fmt.Errorf("%w: nil value at position %d", ErrNullNotAllowed, index))
	}

	if !col.HasError() {
		return nil
	}

	c.observer.Rejected(len(indexes))
	c.log.Debug("rejected batch", "nil_count", len(indexes), "batch_size", len(values))

	return col.GetError()
}

// sortWith stable-sorts a copy of values with the installed comparator.
// The first comparator fault aborts the sort; the partially sorted scratch
// copy is discarded and never reaches the backing sequence.
func (c *Container[T]) sortWith(values []T) ([]T, error) {
	var faulted error

	out := slices.Clone(values)

	slices.SortStableFunc(out, func(a, b T) int {
		order, err := c.compareValues(a, b)
		if err != nil && faulted == nil {
			faulted = err
		}

		return int(order)
	})

	if faulted != nil {
		return nil, faulted
	}

	return out, nil
}
