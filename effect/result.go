// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect

import (
	"code.hybscloud.com/kont"
)

// Result holds either a success value of type T or a failure of type E.
// It is backed by [kont.Either] with the failure on the Left.
// The zero Result is a failure carrying the zero E.
type Result[T, E any] struct {
	either kont.Either[E, T]
}

// Ok creates a successful Result.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{either: kont.Right[E, T](v)}
}

// Err creates a failed Result.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{either: kont.Left[E, T](e)}
}

// FromEither wraps a kont.Either as a Result.
func FromEither[E, T any](e kont.Either[E, T]) Result[T, E] {
	return Result[T, E]{either: e}
}

// Either returns the underlying kont.Either.
func (r Result[T, E]) Either() kont.Either[E, T] {
	return r.either
}

// IsOk reports whether r holds a success value.
func (r Result[T, E]) IsOk() bool {
	return r.either.IsRight()
}

// IsErr reports whether r holds a failure.
func (r Result[T, E]) IsErr() bool {
	return r.either.IsLeft()
}

// Value returns the success value and true, or zero and false.
func (r Result[T, E]) Value() (T, bool) {
	return r.either.GetRight()
}

// Error returns the failure and true, or zero and false.
func (r Result[T, E]) Error() (E, bool) {
	return r.either.GetLeft()
}

// MatchResult calls onOk or onErr depending on the variant of r.
func MatchResult[T, E, R any](r Result[T, E], onOk func(T) R, onErr func(E) R) R {
	return kont.MatchEither(r.either, onErr, onOk)
}

// BindResult applies f to the success value of r.
// A failure is returned unchanged and f is not called.
func BindResult[T, U, E any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	return Result[U, E]{either: kont.FlatMapEither(r.either, func(v T) kont.Either[E, U] {
		return f(v).either
	})}
}

// MapResult applies a plain function to the success value of r.
func MapResult[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	return Result[U, E]{either: kont.MapEither(r.either, f)}
}

// AlterResult applies f to the failure of r.
// A success is returned unchanged and f is not called.
func AlterResult[T, E, F any](r Result[T, E], f func(E) Result[T, F]) Result[T, F] {
	if v, ok := r.either.GetRight(); ok {
		return Ok[T, F](v)
	}
	e, _ := r.either.GetLeft()
	return f(e)
}

// MapErr applies a plain function to the failure of r.
func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	return Result[T, F]{either: kont.MapLeftEither(r.either, f)}
}

// BindResultAsync binds an asynchronous function over a pending Result.
// On failure the remaining computation completes immediately with that failure.
func BindResultAsync[T, U, E any](fr Future[Result[T, E]], f func(T) Future[Result[U, E]]) Future[Result[U, E]] {
	return BindFuture(fr, func(r Result[T, E]) Future[Result[U, E]] {
		if v, ok := r.either.GetRight(); ok {
			return f(v)
		}
		e, _ := r.either.GetLeft()
		return Resolve(Err[U, E](e))
	})
}

// AlterResultAsync binds an asynchronous function over the failure of a pending Result.
func AlterResultAsync[T, E, F any](fr Future[Result[T, E]], f func(E) Future[Result[T, F]]) Future[Result[T, F]] {
	return BindFuture(fr, func(r Result[T, E]) Future[Result[T, F]] {
		if e, ok := r.either.GetLeft(); ok {
			return f(e)
		}
		v, _ := r.either.GetRight()
		return Resolve(Ok[T, F](v))
	})
}

// ComposeResult chains fs left to right, stopping at the first failure.
// With no functions it returns Ok.
func ComposeResult[T, E any](fs ...func(T) Result[T, E]) func(T) Result[T, E] {
	return func(v T) Result[T, E] {
		r := Ok[T, E](v)
		for _, f := range fs {
			if r.IsErr() {
				return r
			}
			r = BindResult(r, f)
		}
		return r
	}
}

// ComposeResultAsync chains asynchronous fs left to right, stopping at the
// first failure. With no functions it returns a completed Ok.
func ComposeResultAsync[T, E any](fs ...func(T) Future[Result[T, E]]) func(T) Future[Result[T, E]] {
	return func(v T) Future[Result[T, E]] {
		fr := Resolve(Ok[T, E](v))
		for _, f := range fs {
			fr = BindResultAsync(fr, f)
		}
		return fr
	}
}
