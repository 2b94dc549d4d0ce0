package rop

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Unit is the payload of a success that carries no value.
type Unit struct{}

// Void is the result of an operation that yields nothing on success and an E
// on failure.
type Void[E any] struct {
	id        uuid.UUID
	createdAt time.Time
	err       E
	ok        bool
}

func OkVoid[E any]() Void[E] {
	return Void[E]{
		ok:        true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func ErrVoid[E any](e E) Void[E] {
	return Void[E]{
		err:       e,
		ok:        false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// ErrVoidFrom forwards the failure payload of from, keeping its provenance.
func ErrVoidFrom[E any](from Failure[E]) Void[E] {
	e, failed := from.Error()
	if !failed {
		violate("ErrVoidFrom called on Result::Ok()")
	}
	return Void[E]{
		err:       e,
		ok:        false,
		createdAt: from.CreatedAt(),
		id:        from.Id(),
	}
}

// OkVoidFrom carries the success of from over to another failure type,
// keeping its provenance.
func OkVoidFrom[F any](from Fallible) Void[F] {
	if !from.IsOk() {
		violate("OkVoidFrom called on Result::Err()")
	}
	return Void[F]{
		ok:        true,
		createdAt: from.CreatedAt(),
		id:        from.Id(),
	}
}

// Discard drops the success payload of r.
func Discard[T, E any](r Result[T, E]) Void[E] {
	return Void[E]{
		err:       r.err,
		ok:        r.ok,
		createdAt: r.createdAt,
		id:        r.id,
	}
}

// Result widens v into the general form with a Unit payload.
func (v Void[E]) Result() Result[Unit, E] {
	return Result[Unit, E]{
		err:       v.err,
		ok:        v.ok,
		createdAt: v.createdAt,
		id:        v.id,
	}
}

func (v Void[E]) IsOk() bool {
	return v.ok
}

func (v Void[E]) IsErr() bool {
	return !v.ok
}

func (v Void[E]) Error() (E, bool) {
	return v.err, !v.ok
}

func (v Void[E]) IsErrAnd(predicate func(E) bool) bool {
	return !v.ok && predicate(v.err)
}

func (v *Void[E]) Take() Void[E] {
	out := *v
	*v = Void[E]{}
	return out
}

func (v Void[E]) Id() uuid.UUID {
	return v.id
}

func (v Void[E]) CreatedAt() time.Time {
	return v.createdAt
}

func (v Void[E]) String() string {
	if v.ok {
		return "Ok()"
	}
	return fmt.Sprintf("Err(%v)", v.err)
}

func EqualVoid[E comparable](a, b Void[E]) bool {
	if a.ok != b.ok {
		return false
	}
	return a.ok || a.err == b.err
}
