package list

import "github.com/npillmayer/fp/typeclass"

// Monoid returns the monoid of lists under concatenation, with the empty list
// as identity element.
func Monoid[A any]() typeclass.Monoid[List[A]] {
	return typeclass.NewMonoid(Nil[A], Concat[A])
}

// ConcatAll folds the elements of l from left to right with m, starting with
// m.Empty().
func ConcatAll[A any](m typeclass.Monoid[A], l List[A]) A {
	return Reduce(m.Concat, m.Empty(), l)
}
