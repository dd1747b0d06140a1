// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect

import (
	"context"

	"code.hybscloud.com/kont"
)

// Future is a pending computation producing a value of type T.
// It wraps a closure-based [kont.Eff]; nothing runs until [Await].
// The zero Future completes with the zero value of T.
type Future[T any] struct {
	eff kont.Eff[T]
}

// Resolve returns a Future that completes immediately with v.
func Resolve[T any](v T) Future[T] {
	return Future[T]{eff: kont.Pure(v)}
}

// FromEff wraps an effectful kont computation as a Future.
func FromEff[T any](eff kont.Eff[T]) Future[T] {
	return Future[T]{eff: eff}
}

// Perform returns a Future that suspends on op.
// The resume value is supplied by the [Dispatcher] passed to [Await].
func Perform[O kont.Op[O, A], A any](op O) Future[A] {
	return Future[A]{eff: kont.Perform(op)}
}

// Eff returns the underlying kont computation.
func (f Future[T]) Eff() kont.Eff[T] {
	if f.eff == nil {
		var zero T
		return kont.Pure(zero)
	}
	return f.eff
}

// BindFuture sequences f and g: the result of f is passed to g.
// The returned Future is pending; neither f nor g runs until awaited.
func BindFuture[T, U any](f Future[T], g func(T) Future[U]) Future[U] {
	return Future[U]{eff: kont.Bind(f.Eff(), func(v T) kont.Eff[U] {
		return g(v).Eff()
	})}
}

// MapFuture applies a plain function to the result of f.
func MapFuture[T, U any](f Future[T], g func(T) U) Future[U] {
	return Future[U]{eff: kont.Map(f.Eff(), g)}
}

// ThenFuture runs f, discards its result, then runs next.
func ThenFuture[T, U any](f Future[T], next Future[U]) Future[U] {
	return Future[U]{eff: kont.Then(f.Eff(), next.Eff())}
}

// Lift turns a synchronous function into one returning a completed Future.
// Use it to pass a plain function where an asynchronous one is expected.
func Lift[A, B any](g func(A) B) func(A) Future[B] {
	return func(a A) Future[B] {
		return Resolve(g(a))
	}
}

// Dispatcher interprets the operations a Future suspends on.
// Dispatch returns the resume value for op, or an error to abort the run.
type Dispatcher interface {
	Dispatch(ctx context.Context, op kont.Operation) (kont.Resumed, error)
}

// DispatcherFunc adapts an ordinary function to a Dispatcher.
type DispatcherFunc func(ctx context.Context, op kont.Operation) (kont.Resumed, error)

// Dispatch calls fn(ctx, op).
func (fn DispatcherFunc) Dispatch(ctx context.Context, op kont.Operation) (kont.Resumed, error) {
	return fn(ctx, op)
}

// awaitHandler implements kont.Handler for Await.
// A dispatch error or a done context short-circuits with Left.
type awaitHandler[T any] struct {
	ctx context.Context
	d   Dispatcher
}

// Dispatch implements kont.Handler.
func (h awaitHandler[T]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	if err := h.ctx.Err(); err != nil {
		return kont.Left[error, T](err), false
	}
	if h.d == nil {
		panic("effect: unhandled operation in Await")
	}
	v, err := h.d.Dispatch(h.ctx, op)
	if err != nil {
		return kont.Left[error, T](err), false
	}
	return v, true
}

// Await runs f to completion on the calling goroutine, dispatching each
// suspended operation through d. It returns the first dispatch error, or
// ctx.Err() if ctx is done before an operation is dispatched.
//
// Await with a nil Dispatcher panics on the first operation; pure futures
// never reach the dispatcher.
//
// Awaiting the same Future twice runs its computation twice.
func Await[T any](ctx context.Context, d Dispatcher, f Future[T]) (T, error) {
	wrapped := kont.Map(f.Eff(), func(v T) kont.Either[error, T] {
		return kont.Right[error, T](v)
	})
	result := kont.Handle(wrapped, awaitHandler[T]{ctx: ctx, d: d})
	if err, ok := result.GetLeft(); ok {
		var zero T
		return zero, err
	}
	v, _ := result.GetRight()
	return v, nil
}

// MustAwait runs a future that performs no operations and returns its value.
// It panics if f suspends.
func MustAwait[T any](f Future[T]) T {
	v, err := Await(context.Background(), nil, f)
	if err != nil {
		panic(err)
	}
	return v
}
