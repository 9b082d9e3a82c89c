package utils //nolint:revive // utils is an appropriate package name for utility functions

import "reflect"

// IsNilish returns true if the value is a literal nil
// or if it points to something with a nil value.
func IsNilish(val any) bool {
	if val == nil {
		return true
	}

	valOf := reflect.ValueOf(val)

	switch valOf.Kind() { //nolint:exhaustive
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer,
		reflect.UnsafePointer, reflect.Interface, reflect.Slice:
		return valOf.IsNil()
	}

	return false
}

// NilishIndexes returns the positions of all nilish values in the slice,
// or nil if none are. Value types (ints, strings, structs) are never nilish,
// so for those element types this always returns nil.
func NilishIndexes[T any](values []T) []int {
	var out []int

	for i, v := range values {
		if IsNilish(v) {
			out = append(out, i)
		}
	}

	return out
}
