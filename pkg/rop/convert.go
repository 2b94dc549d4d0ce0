//go:build !rop_no_option

package rop

// Ok converts r into an Option holding the success payload.
func (r Result[T, E]) Ok() Option[T] {
	if r.ok {
		return Some(r.value)
	}
	return None[T]()
}

// Err converts r into an Option holding the failure payload.
func (r Result[T, E]) Err() Option[E] {
	if r.ok {
		return None[E]()
	}
	return Some(r.err)
}

func (v Void[E]) Err() Option[E] {
	if v.ok {
		return None[E]()
	}
	return Some(v.err)
}
