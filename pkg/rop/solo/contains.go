//go:build !rop_no_contains

package solo

import "github.com/ib-77/ropresult/pkg/rop"

// Contains reports whether input succeeded with a payload equal to value.
func Contains[T comparable, E any](input rop.Result[T, E], value T) bool {
	v, ok := input.Value()
	return ok && v == value
}

// ContainsErr reports whether input failed with a payload equal to e.
func ContainsErr[T any, E comparable](input rop.Result[T, E], e E) bool {
	got, failed := input.Error()
	return failed && got == e
}

func ContainsErrVoid[E comparable](input rop.Void[E], e E) bool {
	got, failed := input.Error()
	return failed && got == e
}
