package sorted

import (
	"fmt"

	"github.com/amp-labs/sortedseq/assert"
	"github.com/amp-labs/sortedseq/compare"
)

// compareValues runs the installed comparator and validates its result.
// An unrecognized Ordering surfaces as ErrInvalidComparator at the comparison
// site; validation happens on every call because a broken comparator may
// misbehave only some of the time.
func (c *Container[T]) compareValues(a, b T) (compare.Ordering, error) {
	out := c.comparator(a, b)

	c.observer.Compared(1)

	if !out.Valid() {
		return out, fmt.Errorf("%w: got %d", ErrInvalidComparator, int(out))
	}

	return out, nil
}

// insertionIndex computes the position at which value must be inserted to
// keep the container sorted. Ties are right-biased: a value equal to an
// existing element is inserted immediately after the element the search
// matched. That lands it somewhere within the run of equal elements, not
// necessarily after all of them; a match found by the neighbor probe places
// the new value at the head of the run.
//
// The search keeps a [start, ending] index window. Each pass either returns
// or strictly narrows the window, so the loop terminates. The greater branch
// peeks at the element one past the midpoint to detect the case where value
// belongs strictly between the two.
func (c *Container[T]) insertionIndex(value T) (int, error) {
	if c.elements.Len() == 0 {
		return 0, nil
	}

	start, ending := 0, c.elements.Len()-1

	for {
		middle := start + (ending-start)/2

		order, err := c.compareValues(value, c.elements.At(middle))
		if err != nil {
			return 0, err
		}

		switch order {
		case compare.Equal:
			return middle + 1, nil

		case compare.Less:
			if c.atLeftEdge(middle) {
				return 0, nil
			}

			ending = middle

		default: // compare.Greater
			if c.atRightEdge(middle) {
				return middle + 1, nil
			}

			next, err := c.compareValues(value, c.elements.At(middle+1))
			if err != nil {
				return 0, err
			}

			if next != compare.Greater {
				return middle + 1, nil
			}

			start = middle + 1
		}
	}
}

// atLeftEdge reports whether index is the first position. Calling an edge
// check on an empty container is a locator bug, not a caller-reachable
// condition, so it fails fast.
func (c *Container[T]) atLeftEdge(index int) bool {
	assert.True(c.elements.Len() > 0, "edge check on empty container")

	return index == 0
}

// atRightEdge reports whether index is the last position.
// Same fail-fast contract as atLeftEdge.
func (c *Container[T]) atRightEdge(index int) bool {
	assert.True(c.elements.Len() > 0, "edge check on empty container")

	return index == c.elements.Len()-1
}
