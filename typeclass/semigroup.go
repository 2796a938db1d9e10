package typeclass

// Semigroup is a type with an associative binary operation:
//
//     Concat(Concat(a, b), c) == Concat(a, Concat(b, c))
//
type Semigroup[A any] interface {
	Concat(x, y A) A
}

type semigroup[A any] struct {
	concat func(x, y A) A
}

func (s semigroup[A]) Concat(x, y A) A {
	return s.concat(x, y)
}

// NewSemigroup creates a Semigroup from an associative operation.
func NewSemigroup[A any](concat func(x, y A) A) Semigroup[A] {
	assertThat(concat != nil, "semigroup needs a concat operation")
	return semigroup[A]{concat: concat}
}

// ConcatAllSemigroup combines first and rest from left to right. As a semigroup
// has no identity, at least one value has to be given.
func ConcatAllSemigroup[A any](s Semigroup[A], first A, rest ...A) A {
	acc := first
	for _, a := range rest {
		acc = s.Concat(acc, a)
	}
	return acc
}

// Dual returns a semigroup with the operands of s swapped.
func Dual[A any](s Semigroup[A]) Semigroup[A] {
	return NewSemigroup(func(x, y A) A {
		return s.Concat(y, x)
	})
}

// --- Instances -------------------------------------------------------------

// StringSemigroup is the semigroup of strings under concatenation.
var StringSemigroup = NewSemigroup(func(x, y string) string { return x + y })

// AllSemigroup is the semigroup of booleans under conjunction.
var AllSemigroup = NewSemigroup(func(x, y bool) bool { return x && y })

// AnySemigroup is the semigroup of booleans under disjunction.
var AnySemigroup = NewSemigroup(func(x, y bool) bool { return x || y })

// SumSemigroup is the semigroup of numbers under addition.
func SumSemigroup[N Number]() Semigroup[N] {
	return NewSemigroup(func(x, y N) N { return x + y })
}

// ProductSemigroup is the semigroup of numbers under multiplication.
func ProductSemigroup[N Number]() Semigroup[N] {
	return NewSemigroup(func(x, y N) N { return x * y })
}

// SliceSemigroup is the semigroup of slices under concatenation. Concat always
// returns a fresh slice, the operands are left untouched.
func SliceSemigroup[A any]() Semigroup[[]A] {
	return NewSemigroup(concatSlices[A])
}

// Min is the semigroup selecting the lesser of two values.
func Min[A Ordered]() Semigroup[A] {
	return NewSemigroup(func(x, y A) A {
		if y < x {
			return y
		}
		return x
	})
}

// Max is the semigroup selecting the greater of two values.
func Max[A Ordered]() Semigroup[A] {
	return NewSemigroup(func(x, y A) A {
		if y > x {
			return y
		}
		return x
	})
}

// First is the semigroup which always keeps the left operand.
func First[A any]() Semigroup[A] {
	return NewSemigroup(func(x, _ A) A { return x })
}

// Last is the semigroup which always keeps the right operand.
func Last[A any]() Semigroup[A] {
	return NewSemigroup(func(_, y A) A { return y })
}

func concatSlices[A any](x, y []A) []A {
	z := make([]A, 0, len(x)+len(y))
	z = append(z, x...)
	return append(z, y...)
}
