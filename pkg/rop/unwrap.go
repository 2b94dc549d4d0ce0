//go:build !rop_no_unwrap

package rop

// Unwrap returns the success payload. Calling it on a failure is a contract
// violation and terminates the process.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		violate(msgUnwrapOnErr)
	}
	return r.value
}

// UnwrapErr returns the failure payload. Calling it on a success is a
// contract violation and terminates the process.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		violate(msgUnwrapErrOk)
	}
	return r.err
}

// Expect is Unwrap with a caller supplied diagnostic.
func (r Result[T, E]) Expect(msg string) T {
	if !r.ok {
		violatef("%s: %v", msg, r.err)
	}
	return r.value
}

// ExpectErr is UnwrapErr with a caller supplied diagnostic.
func (r Result[T, E]) ExpectErr(msg string) E {
	if r.ok {
		violatef("%s: %v", msg, r.value)
	}
	return r.err
}

func (r Result[T, E]) UnwrapOr(fallback T) T {
	if r.ok {
		return r.value
	}
	return fallback
}

// UnwrapOrElse calls supplier only when r is a failure.
func (r Result[T, E]) UnwrapOrElse(supplier func() T) T {
	if r.ok {
		return r.value
	}
	return supplier()
}

func (r Result[T, E]) UnwrapOrDefault() T {
	if r.ok {
		return r.value
	}
	var zero T
	return zero
}

// Unwrap checks that v succeeded.
func (v Void[E]) Unwrap() {
	if !v.ok {
		violate(msgUnwrapOnErr)
	}
}

func (v Void[E]) UnwrapErr() E {
	if v.ok {
		violate(msgUnwrapErrOk)
	}
	return v.err
}

func (v Void[E]) Expect(msg string) {
	if !v.ok {
		violatef("%s: %v", msg, v.err)
	}
}

func (v Void[E]) ExpectErr(msg string) E {
	if v.ok {
		violate(msg)
	}
	return v.err
}
