//go:build !rop_no_map

package solo

import "github.com/ib-77/ropresult/pkg/rop"

// Map applies onSuccess to the success payload. A failure is forwarded
// unchanged, retyped to Out.
func Map[In, Out, E any](input rop.Result[In, E], onSuccess func(In) Out) rop.Result[Out, E] {
	if v, ok := input.Value(); ok {
		return rop.Ok[Out, E](onSuccess(v))
	}
	return rop.ErrFrom[Out, E](input)
}

// MapErr applies onError to the failure payload. A success is forwarded
// unchanged, retyped to F.
func MapErr[T, E, F any](input rop.Result[T, E], onError func(E) F) rop.Result[T, F] {
	if e, failed := input.Error(); failed {
		return rop.Err[T](onError(e))
	}
	return rop.OkFrom[F](input)
}

// MapOr returns onSuccess(payload) on success, otherwise fallback.
func MapOr[In, Out, E any](input rop.Result[In, E], fallback Out, onSuccess func(In) Out) Out {
	if v, ok := input.Value(); ok {
		return onSuccess(v)
	}
	return fallback
}

// MapOrElse returns onSuccess(payload) on success, otherwise onFailure().
func MapOrElse[In, Out, E any](input rop.Result[In, E], onFailure func() Out, onSuccess func(In) Out) Out {
	if v, ok := input.Value(); ok {
		return onSuccess(v)
	}
	return onFailure()
}

// MapVoid turns a successful Void into Ok(supplier()).
func MapVoid[Out, E any](input rop.Void[E], supplier func() Out) rop.Result[Out, E] {
	if input.IsOk() {
		return rop.Ok[Out, E](supplier())
	}
	return rop.ErrFrom[Out, E](input)
}

func MapErrVoid[E, F any](input rop.Void[E], onError func(E) F) rop.Void[F] {
	if e, failed := input.Error(); failed {
		return rop.ErrVoid(onError(e))
	}
	return rop.OkVoidFrom[F](input)
}

func MapOrVoid[Out, E any](input rop.Void[E], fallback Out, onSuccess func() Out) Out {
	if input.IsOk() {
		return onSuccess()
	}
	return fallback
}

func MapOrElseVoid[Out, E any](input rop.Void[E], onFailure func() Out, onSuccess func() Out) Out {
	if input.IsOk() {
		return onSuccess()
	}
	return onFailure()
}
