// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect

// Maybe holds either a present value of type T or nothing.
// Absence is a plain value: None[T]() == None[T]() for comparable T.
// The zero Maybe is None.
type Maybe[T any] struct {
	value T
	ok    bool
}

// Some creates a present Maybe.
func Some[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, ok: true}
}

// None creates an absent Maybe.
func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

// IsSome reports whether m holds a value.
func (m Maybe[T]) IsSome() bool {
	return m.ok
}

// IsNone reports whether m is absent.
func (m Maybe[T]) IsNone() bool {
	return !m.ok
}

// Get returns the value and true, or zero and false.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.ok
}

// OrElse returns the value of m, or def if m is absent.
func (m Maybe[T]) OrElse(def T) T {
	if m.ok {
		return m.value
	}
	return def
}

// BindMaybe applies f to the value of m. An absent m is returned
// unchanged and f is not called.
func BindMaybe[T, U any](m Maybe[T], f func(T) Maybe[U]) Maybe[U] {
	if !m.ok {
		return None[U]()
	}
	return f(m.value)
}

// MapMaybe applies a plain function to the value of m.
func MapMaybe[T, U any](m Maybe[T], f func(T) U) Maybe[U] {
	if !m.ok {
		return None[U]()
	}
	return Some(f(m.value))
}

// AlterMaybe calls f only when m is absent, typically to substitute a default.
func AlterMaybe[T any](m Maybe[T], f func() Maybe[T]) Maybe[T] {
	if m.ok {
		return m
	}
	return f()
}

// BindMaybeAsync binds an asynchronous function over a pending Maybe.
func BindMaybeAsync[T, U any](fm Future[Maybe[T]], f func(T) Future[Maybe[U]]) Future[Maybe[U]] {
	return BindFuture(fm, func(m Maybe[T]) Future[Maybe[U]] {
		if !m.ok {
			return Resolve(None[U]())
		}
		return f(m.value)
	})
}

// AlterMaybeAsync calls the asynchronous f only when the pending Maybe is absent.
func AlterMaybeAsync[T any](fm Future[Maybe[T]], f func() Future[Maybe[T]]) Future[Maybe[T]] {
	return BindFuture(fm, func(m Maybe[T]) Future[Maybe[T]] {
		if m.ok {
			return Resolve(m)
		}
		return f()
	})
}

// ComposeMaybe chains fs left to right, stopping at the first absence.
// With no functions it returns Some.
func ComposeMaybe[T any](fs ...func(T) Maybe[T]) func(T) Maybe[T] {
	return func(v T) Maybe[T] {
		m := Some(v)
		for _, f := range fs {
			if !m.ok {
				return m
			}
			m = f(m.value)
		}
		return m
	}
}
