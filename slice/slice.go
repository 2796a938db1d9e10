/*
Package slice offers functional helpers for Go slices, mirroring the
operations of package list for plain slices.

Every function returns a freshly allocated slice and leaves its input
untouched, so results never alias their arguments. Returned slices are
never nil.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package slice

import "github.com/npillmayer/fp/option"

// Map returns the slice of f applied to every element of xs, in order.
func Map[A, B any](f func(A) B, xs []A) []B {
	ys := make([]B, 0, len(xs))
	for _, x := range xs {
		ys = append(ys, f(x))
	}
	return ys
}

// Filter returns the elements of xs for which pred holds, in order.
func Filter[A any](pred func(A) bool, xs []A) []A {
	ys := make([]A, 0, len(xs))
	for _, x := range xs {
		if pred(x) {
			ys = append(ys, x)
		}
	}
	return ys
}

// Reduce folds xs from left to right, starting with initial.
func Reduce[A, B any](f func(B, A) B, initial B, xs []A) B {
	acc := initial
	for _, x := range xs {
		acc = f(acc, x)
	}
	return acc
}

// Flatten concatenates a slice of slices.
func Flatten[A any](xss [][]A) []A {
	n := 0
	for _, xs := range xss {
		n += len(xs)
	}
	ys := make([]A, 0, n)
	for _, xs := range xss {
		ys = append(ys, xs...)
	}
	return ys
}

// FlatMap applies f to every element of xs and concatenates the results.
func FlatMap[A, B any](f func(A) []B, xs []A) []B {
	return Flatten(Map(f, xs))
}

// Head returns the first element of xs, or None for an empty slice.
func Head[A any](xs []A) option.Option[A] {
	if len(xs) == 0 {
		return option.None[A]()
	}
	return option.Some(xs[0])
}

// Last returns the last element of xs, or None for an empty slice.
func Last[A any](xs []A) option.Option[A] {
	if len(xs) == 0 {
		return option.None[A]()
	}
	return option.Some(xs[len(xs)-1])
}

// Tail returns a copy of xs without its first element. The tail of an empty
// slice is empty.
func Tail[A any](xs []A) []A {
	if len(xs) == 0 {
		return []A{}
	}
	return clone(xs[1:])
}

// Init returns a copy of xs without its last element. Init of an empty slice
// is empty.
func Init[A any](xs []A) []A {
	if len(xs) == 0 {
		return []A{}
	}
	return clone(xs[:len(xs)-1])
}

func clone[A any](xs []A) []A {
	return append(make([]A, 0, len(xs)), xs...)
}
