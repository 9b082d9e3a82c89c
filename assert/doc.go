// Package assert provides internal invariant checks. The assertions panic on
// failure and can be compiled out with the assertions_disabled build tag;
// they guard logic errors, not caller-reachable conditions.
package assert
