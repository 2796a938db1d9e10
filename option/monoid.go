package option

import "github.com/npillmayer/fp/typeclass"

// Monoid lifts a semigroup for T into a monoid for Option[T]. None is the
// identity element; two Somes are combined with s.
func Monoid[T any](s typeclass.Semigroup[T]) typeclass.Monoid[Option[T]] {
	return typeclass.NewMonoid(
		None[T],
		func(x, y Option[T]) Option[T] {
			switch {
			case x.IsNone():
				return y
			case y.IsNone():
				return x
			}
			return Some(s.Concat(x.value, y.value))
		},
	)
}
