// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, enabling their use as elements of sorted containers.
//
// # Overview
//
// The sortable package defines the [Sortable] interface and provides ready-to-use
// implementations for common primitive types: [Int], [Byte], and [String].
// These types are designed to work with the sorted container in this module
// (see [github.com/amp-labs/sortedseq/sorted.New]); the [Comparator] function
// bridges any Sortable type into the container's three-way comparator.
//
// The Sortable interface extends [github.com/amp-labs/sortedseq/compare.Comparable]
// by adding a LessThan method, providing both equality comparison and ordering.
//
// # Usage
//
// Use the provided wrapper types when you need a sorted sequence of primitives
// with a custom element type:
//
//	// Create a sorted sequence of integers
//	seq := sorted.New(sortable.Comparator[sortable.Int]())
//	_ = seq.Push(sortable.Int(42), sortable.Int(10), sortable.Int(25))
//
//	// Elements are kept in sorted order: 10, 25, 42
//	for _, val := range seq.Seq() {
//	    fmt.Println(int(val))
//	}
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type MyType struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (m MyType) Equals(other MyType) bool {
//	    return m.Priority == other.Priority && m.Name == other.Name
//	}
//
//	func (m MyType) LessThan(other MyType) bool {
//	    if m.Priority != other.Priority {
//	        return m.Priority < other.Priority
//	    }
//	    return m.Name < other.Name
//	}
//
// # When to Use Sortable vs a Plain Comparator
//
// Use Sortable types when:
//   - The element type itself knows how to order its values
//   - The same ordering should apply everywhere the type is used
//
// Use a plain [github.com/amp-labs/sortedseq/compare.Comparator] when:
//   - The ordering is a property of one container, not of the type
//   - You need several different orderings over the same element type
//
// # Thread Safety
//
// The wrapper types in this package are value types and are inherently thread-safe
// for read operations. However, collections using these types may not be
// thread-safe and require external synchronization for concurrent access.
package sortable
