//go:build !rop_no_andor

package rop

// And returns other if r succeeded, otherwise r's failure.
func (r Result[T, E]) And(other Result[T, E]) Result[T, E] {
	if r.ok {
		return other
	}
	return r
}

// Or returns r if it succeeded, otherwise other.
func (r Result[T, E]) Or(other Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return other
}

// OrElse calls fallback with the failure payload and returns its result.
// On success fallback is not called.
func (r Result[T, E]) OrElse(fallback func(E) Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return fallback(r.err)
}

func (v Void[E]) And(other Void[E]) Void[E] {
	if v.ok {
		return other
	}
	return v
}

func (v Void[E]) Or(other Void[E]) Void[E] {
	if v.ok {
		return v
	}
	return other
}

func (v Void[E]) OrElse(fallback func(E) Void[E]) Void[E] {
	if v.ok {
		return v
	}
	return fallback(v.err)
}
