package rop

// Option is a value that may be absent.
type Option[T any] struct {
	v     T
	valid bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{v: v, valid: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool {
	return o.valid
}

func (o Option[T]) IsNone() bool {
	return !o.valid
}

// Get returns the value and whether it was present.
func (o Option[T]) Get() (T, bool) {
	return o.v, o.valid
}

func (o Option[T]) UnwrapOr(fallback T) T {
	if o.valid {
		return o.v
	}
	return fallback
}
