// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect

// Tag identifies the variant of a [State].
type Tag uint8

const (
	// Right is the good variant: bind continues.
	Right Tag = iota
	// Wrong is an expected, recoverable failure.
	Wrong
	// Error is an unexpected failure carrying an error.
	Error
	// Final is a terminal success: neither bind nor alter runs on it.
	Final
)

func (t Tag) String() string {
	switch t {
	case Right:
		return "right"
	case Wrong:
		return "wrong"
	case Error:
		return "error"
	case Final:
		return "final"
	default:
		return "unknown"
	}
}

// State is a four-way tagged container for railway flows with a
// terminal success. The zero State is Right with the zero T.
type State[T any] struct {
	tag   Tag
	value T
	err   error
}

// RightOf creates a Right state.
func RightOf[T any](v T) State[T] {
	return State[T]{tag: Right, value: v}
}

// WrongOf creates a Wrong state.
func WrongOf[T any](v T) State[T] {
	return State[T]{tag: Wrong, value: v}
}

// ErrorOf creates an Error state carrying err.
func ErrorOf[T any](v T, err error) State[T] {
	return State[T]{tag: Error, value: v, err: err}
}

// FinalOf creates a Final state.
func FinalOf[T any](v T) State[T] {
	return State[T]{tag: Final, value: v}
}

// Tag returns the variant of s.
func (s State[T]) Tag() Tag {
	return s.tag
}

// Value returns the payload of s regardless of its tag.
func (s State[T]) Value() T {
	return s.value
}

// Err returns the error of an Error state, or nil.
func (s State[T]) Err() error {
	return s.err
}

// IsBad reports whether s is Wrong or Error.
func (s State[T]) IsBad() bool {
	return s.tag == Wrong || s.tag == Error
}

// BindState applies f to the payload of a Right state.
// Wrong, Error and Final states are returned unchanged.
func BindState[T any](s State[T], f func(T) State[T]) State[T] {
	if s.tag != Right {
		return s
	}
	return f(s.value)
}

// MapState applies a plain function to the payload of a Right state.
func MapState[T any](s State[T], f func(T) T) State[T] {
	if s.tag != Right {
		return s
	}
	return RightOf(f(s.value))
}

// AlterState applies f to a Wrong or Error state. f receives the payload
// and the carried error (nil for Wrong). Right and Final are unchanged.
func AlterState[T any](s State[T], f func(T, error) State[T]) State[T] {
	if !s.IsBad() {
		return s
	}
	return f(s.value, s.err)
}

// BindStateAsync binds an asynchronous function over a pending State.
func BindStateAsync[T any](fs Future[State[T]], f func(T) Future[State[T]]) Future[State[T]] {
	return BindFuture(fs, func(s State[T]) Future[State[T]] {
		if s.tag != Right {
			return Resolve(s)
		}
		return f(s.value)
	})
}

// AlterStateAsync binds an asynchronous function over a pending Wrong or Error state.
func AlterStateAsync[T any](fs Future[State[T]], f func(T, error) Future[State[T]]) Future[State[T]] {
	return BindFuture(fs, func(s State[T]) Future[State[T]] {
		if !s.IsBad() {
			return Resolve(s)
		}
		return f(s.value, s.err)
	})
}

// ComposeState chains fs left to right while the state stays Right.
func ComposeState[T any](fs ...func(T) State[T]) func(T) State[T] {
	return func(v T) State[T] {
		s := RightOf(v)
		for _, f := range fs {
			if s.tag != Right {
				return s
			}
			s = f(s.value)
		}
		return s
	}
}
