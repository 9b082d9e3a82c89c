package sorted

import "errors"

var (
	// ErrNullNotAllowed is returned when an operation would introduce a nil
	// value into the container. It is raised before any mutation is applied,
	// so a rejected batch leaves the container exactly as it was.
	ErrNullNotAllowed = errors.New("nil values are not allowed")

	// ErrInvalidComparator is returned when the installed comparator produces
	// a result other than Less, Equal, or Greater. The check runs at every
	// comparison because a faulty comparator may be nondeterministic.
	ErrInvalidComparator = errors.New("comparator returned an unrecognized ordering")

	// ErrUnsupported is returned by every operation that could place an
	// element at an arbitrary position or reorder the container without going
	// through the comparator. These operations never succeed, regardless of
	// arguments or container state.
	ErrUnsupported = errors.New("operation would break sort order")

	// ErrNilGenerator is returned by Generate when a size is requested
	// without a generator function. Filling with zero values silently would
	// be ambiguous, so the request is rejected outright.
	ErrNilGenerator = errors.New("generator function is required")

	// ErrNegativeSize is returned by Generate for a negative size.
	ErrNegativeSize = errors.New("size must not be negative")

	// ErrIndexOutOfRange is returned by positional removals for an index
	// outside [0, Len()).
	ErrIndexOutOfRange = errors.New("index out of range")
)
