//go:build !rop_no_inspect

package rop

// Inspect calls f with the success payload and returns r unchanged.
func (r Result[T, E]) Inspect(f func(T)) Result[T, E] {
	if r.ok {
		f(r.value)
	}
	return r
}

// InspectErr calls f with the failure payload and returns r unchanged.
func (r Result[T, E]) InspectErr(f func(E)) Result[T, E] {
	if !r.ok {
		f(r.err)
	}
	return r
}

func (v Void[E]) Inspect(f func()) Void[E] {
	if v.ok {
		f()
	}
	return v
}

func (v Void[E]) InspectErr(f func(E)) Void[E] {
	if !v.ok {
		f(v.err)
	}
	return v
}
