//go:build !assertions_disabled

package assert

import (
	"fmt"

	"github.com/amp-labs/sortedseq/utils"
)

// True asserts that the given value is true.
// If the assertion fails, it panics with a message.
// The optional args can be used to provide a formatted panic message:
// - If the first arg is a string, it's used as a format string with remaining args.
// - Otherwise, all args are included in the panic message.
func True(value bool, args ...any) {
	if value {
		return
	}

	if len(args) == 0 {
		panic("assertion failed")
	}

	first := args[0]
	remaining := args[1:]

	if firstStr, ok := first.(string); ok {
		panic(fmt.Sprintf(firstStr, remaining...))
	}

	panic(fmt.Sprintf("assertion failed: %v", args))
}

// NotNil asserts that the given value is not nil. Typed nils count as nil
// (a nil comparator or callback boxed in any is still a nil argument), so the
// check goes through reflection rather than a plain interface comparison.
// The optional args are passed to True and follow the same formatting rules.
func NotNil(value any, args ...any) {
	True(!utils.IsNilish(value), args...)
}
