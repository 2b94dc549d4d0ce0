// Package try provides early-return propagation for functions that return
// rop.Result.
//
// Inside Do, Get yields the success payload of a result or leaves the body
// at once with that result's failure:
//
//	func parseDivide(a, b string) rop.Result[int, string] {
//		return try.Do(func(s *try.Scope[string]) rop.Result[int, string] {
//			x := try.Get(s, parseInt(a))
//			y := try.Get(s, parseInt(b))
//			return safeDiv(x, y)
//		})
//	}
//
// The failure type of every propagated result must be the E of the Scope,
// which the compiler checks. A Scope must only be used on the goroutine
// running its Do and only while Do is running.
//
// Guard is the panic-free alternative for plain guard clauses.
package try

import (
	"fmt"

	"github.com/ib-77/ropresult/pkg/rop"
)

// Scope is the handle through which a Do body propagates failures.
type Scope[E any] struct {
	done bool
}

// exit carries a propagated failure from Get/Let/Check up to Do.
type exit[E any] struct {
	scope  *Scope[E]
	origin rop.Failure[E]
}

// Error is what the runtime prints when an exit escapes every Do, which
// happens when Get, Let or Check run on a goroutine other than Do's.
func (x exit[E]) Error() string {
	e, _ := x.origin.Error()
	return fmt.Sprintf("try: failure %v propagated outside the goroutine of its Do", e)
}

// Do runs body and returns its result. When body propagates a failure
// through s, Do returns that failure retyped to T.
func Do[T, E any](body func(s *Scope[E]) rop.Result[T, E]) (out rop.Result[T, E]) {
	s := &Scope[E]{}
	defer func() {
		s.done = true
		if p := recover(); p != nil {
			ex, ok := p.(exit[E])
			if !ok || ex.scope != s {
				panic(p)
			}
			out = rop.ErrFrom[T, E](ex.origin)
		}
	}()
	return body(s)
}

// DoVoid is Do for bodies that produce no success payload.
func DoVoid[E any](body func(s *Scope[E]) rop.Void[E]) (out rop.Void[E]) {
	s := &Scope[E]{}
	defer func() {
		s.done = true
		if p := recover(); p != nil {
			ex, ok := p.(exit[E])
			if !ok || ex.scope != s {
				panic(p)
			}
			out = rop.ErrVoidFrom[E](ex.origin)
		}
	}()
	return body(s)
}

// Get returns the success payload of r, or leaves the enclosing Do with r's
// failure.
//
// Get must run on the goroutine that called Do. On any other goroutine a
// failure cannot reach Do and crashes the program with a "propagated
// outside the goroutine of its Do" panic.
func Get[T, E any](s *Scope[E], r rop.Result[T, E]) T {
	s.check()
	v, ok := r.Value()
	if !ok {
		panic(exit[E]{scope: s, origin: r})
	}
	return v
}

// Let stores the success payload of r into dst, or leaves the enclosing Do
// with r's failure. dst is left untouched on failure.
func Let[T, E any](s *Scope[E], dst *T, r rop.Result[T, E]) {
	*dst = Get(s, r)
}

// Check leaves the enclosing Do with the failure of f, if any. It accepts
// both rop.Result and rop.Void. Like Get, it must run on Do's goroutine.
func Check[E any](s *Scope[E], f rop.Failure[E]) {
	s.check()
	if f.IsErr() {
		panic(exit[E]{scope: s, origin: f})
	}
}

func (s *Scope[E]) check() {
	if s == nil || s.done {
		rop.Violate("try: scope used outside of its Do")
	}
}

// Guard splits r for a guard clause. When ok is false, failed holds r's
// failure retyped to U, ready to be returned:
//
//	x, failed, ok := try.Guard[int](parseInt(a))
//	if !ok {
//		return failed
//	}
func Guard[U, T, E any](r rop.Result[T, E]) (value T, failed rop.Result[U, E], ok bool) {
	if v, isOk := r.Value(); isOk {
		return v, failed, true
	}
	return value, rop.ErrFrom[U, E](r), false
}
