/*
Package option implements an optional value: every Option is either Some,
holding a value, or None.

Options are immutable values. The zero value of Option[T] is None.

Clients may eliminate an Option in several ways: GetOrElse supplies a default,
Fold takes a function per case, and Match supports switch-style matching:

    var v int
    switch m := x.Match(); m {
    case m.Some(&v):
        fmt.Printf("got %d\n", v)
    case m.None():
        fmt.Println("nothing")
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package option

import "fmt"

// Option represents an optional value of type T.
type Option[T any] struct {
	value T
	some  bool
}

// Some creates an Option holding x.
func Some[T any](x T) Option[T] {
	return Option[T]{value: x, some: true}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromOK creates an Option from Go's comma-ok idiom.
func FromOK[T any](x T, ok bool) Option[T] {
	if ok {
		return Some(x)
	}
	return None[T]()
}

// FromNullable maps a nil pointer to None and any other pointer to Some holding
// the value pointed to. A pointer to a zero value (0, false, "") is not nil and
// results in Some.
func FromNullable[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// FromError calls f and returns None if f returns a non-nil error, Some
// otherwise. The error itself is discarded.
func FromError[T any](f func() (T, error)) Option[T] {
	x, err := f()
	if err != nil {
		return None[T]()
	}
	return Some(x)
}

// TryCatch calls f and wraps its result in Some. If f panics, the panic is
// recovered and TryCatch returns None; the panic value is discarded.
func TryCatch[T any](f func() T) (o Option[T]) {
	defer func() {
		_ = recover() // o is still None
	}()
	return Some(f())
}

// TryCatch1 wraps a unary function which may panic. The returned function
// yields Some(f(x)), or None if f panics.
func TryCatch1[A, B any](f func(A) B) func(A) Option[B] {
	return func(x A) Option[B] {
		return TryCatch(func() B { return f(x) })
	}
}

// IsSome is true if o holds a value.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone is true if o is empty.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the value of o and true, or the zero value of T and false.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// GetOrElse returns the value of o, if any, and def otherwise.
func (o Option[T]) GetOrElse(def T) T {
	if o.some {
		return o.value
	}
	return def
}

// Map applies f to the value of o, if any. For None, f is not called.
// To map to a different type, use the package-level function Map.
func (o Option[T]) Map(f func(T) T) Option[T] {
	return Map(f, o)
}

func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// --- Transformers ----------------------------------------------------------

// Map returns Some(f(v)) for x = Some(v) and None for x = None. In the latter
// case f is not called.
func Map[T, S any](f func(T) S, x Option[T]) Option[S] {
	if x.some {
		return Some(f(x.value))
	}
	return None[S]()
}

// FlatMap returns f(v) for x = Some(v) and None for x = None.
// The result of f is not re-wrapped.
func FlatMap[T, S any](f func(T) Option[S], x Option[T]) Option[S] {
	if x.some {
		return f(x.value)
	}
	return None[S]()
}

// Filter returns x if it holds a value satisfying pred, None otherwise.
func Filter[T any](pred func(T) bool, x Option[T]) Option[T] {
	if x.some && pred(x.value) {
		return x
	}
	return None[T]()
}

// OrElse returns x if it holds a value, and the result of alt otherwise.
// alt is called only if x is None.
func OrElse[T any](x Option[T], alt func() Option[T]) Option[T] {
	if x.some {
		return x
	}
	return alt()
}

// Fold eliminates x: it calls onNone for None and onSome for Some.
func Fold[T, S any](x Option[T], onNone func() S, onSome func(T) S) S {
	if x.some {
		return onSome(x.value)
	}
	return onNone()
}

// --- Matching --------------------------------------------------------------

// Matcher supports switch-style matching on an Option. Exactly one of the
// matching methods returns the matcher itself, the other returns nil.
type Matcher[T any] interface {
	Some(*T) Matcher[T]
	None() Matcher[T]
}

// Match returns a matcher for o.
func (o Option[T]) Match() Matcher[T] {
	return &matcher[T]{o: o}
}

type matcher[T any] struct {
	o Option[T]
}

func (om *matcher[T]) Some(v *T) Matcher[T] {
	if om.o.some {
		*v = om.o.value
		return om
	}
	return nil
}

func (om *matcher[T]) None() Matcher[T] {
	if !om.o.some {
		return om
	}
	return nil
}
