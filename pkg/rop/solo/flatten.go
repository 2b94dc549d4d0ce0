//go:build !rop_no_flatten

package solo

import "github.com/ib-77/ropresult/pkg/rop"

// Flatten removes one level of nesting. An outer success yields the inner
// result as is; an outer failure is forwarded.
func Flatten[T, E any](input rop.Result[rop.Result[T, E], E]) rop.Result[T, E] {
	if inner, ok := input.Value(); ok {
		return inner
	}
	return rop.ErrFrom[T, E](input)
}
