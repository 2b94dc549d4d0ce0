package rop

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result holds either a success payload of type T or a failure payload of
// type E. The slot of the inactive branch always holds its zero value.
//
// The zero Result is a failure carrying the zero E; the package itself never
// produces one, use Ok or Err.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       E
	ok        bool
}

func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{
		value:     v,
		ok:        true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{
		err:       e,
		ok:        false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Of converts a conventional (value, error) pair. Only err == nil yields
// success; a typed nil pointer stored in err is a failure, as it is for
// any other Go caller.
func Of[T any](v T, err error) Result[T, error] {
	if err == nil {
		return Ok[T, error](v)
	}
	return Err[T](err)
}

// ErrFrom forwards the failure payload of from into a container of another
// success type. The id and creation time of the source are kept.
func ErrFrom[U, E any](from Failure[E]) Result[U, E] {
	e, failed := from.Error()
	if !failed {
		violate("ErrFrom called on Result::Ok()")
	}
	return Result[U, E]{
		err:       e,
		ok:        false,
		createdAt: from.CreatedAt(),
		id:        from.Id(),
	}
}

// OkFrom forwards the success payload of from into a container of another
// failure type. The id and creation time of the source are kept.
func OkFrom[F, T, E any](from Result[T, E]) Result[T, F] {
	if !from.ok {
		violate("OkFrom called on Result::Err()")
	}
	return Result[T, F]{
		value:     from.value,
		ok:        true,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T, E]) IsOk() bool {
	return r.ok
}

func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Value returns the success payload and true, or the zero T and false.
func (r Result[T, E]) Value() (T, bool) {
	return r.value, r.ok
}

// Error returns the failure payload and true, or the zero E and false.
func (r Result[T, E]) Error() (E, bool) {
	return r.err, !r.ok
}

// Pair returns both slots and the discriminant, for guard clauses.
func (r Result[T, E]) Pair() (T, E, bool) {
	return r.value, r.err, r.ok
}

func (r Result[T, E]) IsOkAnd(predicate func(T) bool) bool {
	return r.ok && predicate(r.value)
}

func (r Result[T, E]) IsErrAnd(predicate func(E) bool) bool {
	return !r.ok && predicate(r.err)
}

// Take moves the container out of r, leaving r as the zero Result.
func (r *Result[T, E]) Take() Result[T, E] {
	out := *r
	*r = Result[T, E]{}
	return out
}

func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}

func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

// Equal reports whether a and b are in the same state with equal payloads.
// Provenance (id, creation time) is not compared.
func Equal[T, E comparable](a, b Result[T, E]) bool {
	if a.ok != b.ok {
		return false
	}
	if a.ok {
		return a.value == b.value
	}
	return a.err == b.err
}
