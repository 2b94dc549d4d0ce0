//go:build !rop_no_andor

package solo

import "github.com/ib-77/ropresult/pkg/rop"

// AndThen calls onSuccess with the success payload and returns its result.
// On failure onSuccess is not called and the failure is forwarded.
func AndThen[In, Out, E any](input rop.Result[In, E], onSuccess func(In) rop.Result[Out, E]) rop.Result[Out, E] {
	if v, ok := input.Value(); ok {
		return onSuccess(v)
	}
	return rop.ErrFrom[Out, E](input)
}

func AndThenVoid[Out, E any](input rop.Void[E], onSuccess func() rop.Result[Out, E]) rop.Result[Out, E] {
	if input.IsOk() {
		return onSuccess()
	}
	return rop.ErrFrom[Out, E](input)
}

// AndVoid discards a successful Void in favour of next.
func AndVoid[Out, E any](input rop.Void[E], next rop.Result[Out, E]) rop.Result[Out, E] {
	if input.IsOk() {
		return next
	}
	return rop.ErrFrom[Out, E](input)
}
