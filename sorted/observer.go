package sorted

// Observer receives notifications about container activity. Implementations
// must be cheap and must not call back into the container. The metrics
// package provides a Prometheus-backed implementation.
type Observer interface {
	// Pushed is called after count elements were inserted incrementally.
	Pushed(count int)

	// Replaced is called after a bulk replacement installed count elements.
	Replaced(count int)

	// Rejected is called when a batch was refused because it contained
	// count nil values.
	Rejected(count int)

	// Compared is called after count comparator invocations.
	Compared(count int)
}

// nopObserver is the default Observer. It discards everything.
type nopObserver struct{}

var _ Observer = nopObserver{}

func (nopObserver) Pushed(count int)   {}
func (nopObserver) Replaced(count int) {}
func (nopObserver) Rejected(count int) {}
func (nopObserver) Compared(count int) {}
