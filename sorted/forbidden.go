package sorted

import "fmt"

// The operations in this file could place an element at an arbitrary position
// or reorder the container without consulting the comparator, so they are
// disabled outright. Each is defined as its own named method, rather than a
// dispatch table, so the rejection is discoverable in godoc and at call
// sites. They fail unconditionally: the rejection is a capability
// restriction, not argument validation.

// AssignAt always returns ErrUnsupported: writing to an arbitrary index
// could break sort order.
func (c *Container[T]) AssignAt(index int, value T) error {
	return fmt.Errorf("%w: AssignAt", ErrUnsupported)
}

// Fill always returns ErrUnsupported: overwriting the contents with a single
// value bypasses the comparator.
func (c *Container[T]) Fill(value T) error {
	return fmt.Errorf("%w: Fill", ErrUnsupported)
}

// InsertAt always returns ErrUnsupported: inserting at a caller-chosen
// position could break sort order. Use Push, which locates the position
// itself.
func (c *Container[T]) InsertAt(index int, value T) error {
	return fmt.Errorf("%w: InsertAt", ErrUnsupported)
}

// ReverseInPlace always returns ErrUnsupported: a reversed container is no
// longer sorted under the installed comparator.
func (c *Container[T]) ReverseInPlace() error {
	return fmt.Errorf("%w: ReverseInPlace", ErrUnsupported)
}

// RotateInPlace always returns ErrUnsupported: rotation reorders elements
// without consulting the comparator.
func (c *Container[T]) RotateInPlace(count int) error {
	return fmt.Errorf("%w: RotateInPlace", ErrUnsupported)
}

// ShuffleInPlace always returns ErrUnsupported.
func (c *Container[T]) ShuffleInPlace() error {
	return fmt.Errorf("%w: ShuffleInPlace", ErrUnsupported)
}

// SortInPlace always returns ErrUnsupported: the container is already
// sorted, and sorting with anything but the installed comparator would
// desynchronize it.
func (c *Container[T]) SortInPlace() error {
	return fmt.Errorf("%w: SortInPlace", ErrUnsupported)
}

// Prepend always returns ErrUnsupported: new elements go through Push, which
// decides their position.
func (c *Container[T]) Prepend(values ...T) error {
	return fmt.Errorf("%w: Prepend", ErrUnsupported)
}
