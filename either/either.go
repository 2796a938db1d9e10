/*
Package either implements a disjoint union of two types. An Either is a Left
or a Right. By convention, Left holds a failure and Right holds a success.

In Haskell:

    data Either a b = Left a | Right b

Transformers operate on the Right side only; a Left passes through unchanged
(railway-oriented programming). The error is inspected explicitly with
IsLeft, MapLeft, GetOrElse, Fold or Match.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package either

import (
	"fmt"

	"github.com/npillmayer/fp/option"
)

// Either holds either a value of type E (Left) or of type A (Right).
// The zero value is a Left holding the zero value of E.
type Either[E, A any] struct {
	left    E
	right   A
	isRight bool
}

// Left creates a failure. The success type has to be given explicitly, the
// error type is inferred:
//
//     e := either.Left[int]("no number")    // Either[string, int]
//
func Left[A, E any](e E) Either[E, A] {
	return Either[E, A]{left: e}
}

// Right creates a success. The error type has to be given explicitly, the
// success type is inferred:
//
//     e := either.Right[string](42)          // Either[string, int]
//
func Right[E, A any](a A) Either[E, A] {
	return Either[E, A]{right: a, isRight: true}
}

// TryCatch calls f. If f returns normally, its result is wrapped in a Right.
// If f panics, onError is applied to the recovered value and the result is
// wrapped in a Left.
func TryCatch[E, A any](f func() A, onError func(any) E) (x Either[E, A]) {
	done := false
	defer func() {
		if !done {
			x = Left[A](onError(recover()))
		}
	}()
	a := f()
	done = true
	return Right[E](a)
}

// TryCatch1 wraps a unary function which may panic. The returned function
// yields Right(f(x)), or Left(onError(r)) if f panics with r.
func TryCatch1[A, B, E any](f func(A) B, onError func(any) E) func(A) Either[E, B] {
	return func(x A) Either[E, B] {
		return TryCatch(func() B { return f(x) }, onError)
	}
}

// FromOption converts o into a Right, or a Left produced by onNone if o is None.
func FromOption[E, A any](o option.Option[A], onNone func() E) Either[E, A] {
	if a, ok := o.Get(); ok {
		return Right[E](a)
	}
	return Left[A](onNone())
}

// IsLeft is true for a Left.
func (x Either[E, A]) IsLeft() bool {
	return !x.isRight
}

// IsRight is true for a Right.
func (x Either[E, A]) IsRight() bool {
	return x.isRight
}

// Get returns the Right value and true, or the zero value of A and false.
func (x Either[E, A]) Get() (A, bool) {
	return x.right, x.isRight
}

// GetLeft returns the Left value and true, or the zero value of E and false.
func (x Either[E, A]) GetLeft() (E, bool) {
	return x.left, !x.isRight
}

// GetOrElse returns the Right value, or def for a Left.
func (x Either[E, A]) GetOrElse(def A) A {
	if x.isRight {
		return x.right
	}
	return def
}

// Swap turns a Left into a Right and vice versa.
func (x Either[E, A]) Swap() Either[A, E] {
	if x.isRight {
		return Left[E](x.right)
	}
	return Right[A](x.left)
}

// ToOption drops the Left value: Right(a) becomes Some(a), a Left becomes None.
func (x Either[E, A]) ToOption() option.Option[A] {
	return option.FromOK(x.right, x.isRight)
}

func (x Either[E, A]) String() string {
	if x.isRight {
		return fmt.Sprintf("Right(%v)", x.right)
	}
	return fmt.Sprintf("Left(%v)", x.left)
}

// --- Transformers ----------------------------------------------------------

// Map applies f to a Right value. A Left is returned unchanged and f is not
// called.
func Map[E, A, B any](f func(A) B, x Either[E, A]) Either[E, B] {
	if x.isRight {
		return Right[E](f(x.right))
	}
	return Left[B](x.left)
}

// MapLeft applies f to a Left value. A Right is returned unchanged and f is
// not called.
func MapLeft[E, A, G any](f func(E) G, x Either[E, A]) Either[G, A] {
	if x.isRight {
		return Right[G](x.right)
	}
	return Left[A](f(x.left))
}

// FlatMap returns f(a) for a Right(a). A Left short-circuits and is propagated
// unchanged; f is not called.
//
// The error type of f's result has to match E. Use MapLeft to widen an error
// type before chaining.
func FlatMap[E, A, B any](f func(A) Either[E, B], x Either[E, A]) Either[E, B] {
	if x.isRight {
		return f(x.right)
	}
	return Left[B](x.left)
}

// OrElse returns x if it is a Right, and the result of alt applied to the Left
// value otherwise.
func OrElse[E, A, G any](x Either[E, A], alt func(E) Either[G, A]) Either[G, A] {
	if x.isRight {
		return Right[G](x.right)
	}
	return alt(x.left)
}

// Fold eliminates x by calling onLeft or onRight.
func Fold[E, A, S any](x Either[E, A], onLeft func(E) S, onRight func(A) S) S {
	if x.isRight {
		return onRight(x.right)
	}
	return onLeft(x.left)
}

// --- Matching --------------------------------------------------------------

// Matcher supports switch-style matching on an Either:
//
//     var n int
//     var msg string
//     switch m := x.Match(); m {
//     case m.Right(&n):
//         …
//     case m.Left(&msg):
//         …
//     }
//
type Matcher[E, A any] interface {
	Left(*E) Matcher[E, A]
	Right(*A) Matcher[E, A]
}

// Match returns a matcher for x.
func (x Either[E, A]) Match() Matcher[E, A] {
	return &matcher[E, A]{x: x}
}

type matcher[E, A any] struct {
	x Either[E, A]
}

func (em *matcher[E, A]) Left(e *E) Matcher[E, A] {
	if !em.x.isRight {
		*e = em.x.left
		return em
	}
	return nil
}

func (em *matcher[E, A]) Right(a *A) Matcher[E, A] {
	if em.x.isRight {
		*a = em.x.right
		return em
	}
	return nil
}
