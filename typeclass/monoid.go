package typeclass

import "fmt"

// Monoid is a Semigroup with an identity element:
//
//     Concat(Empty(), a) == a == Concat(a, Empty())
//
type Monoid[A any] interface {
	Semigroup[A]
	Empty() A
}

type monoid[A any] struct {
	semigroup[A]
	empty func() A
}

func (m monoid[A]) Empty() A {
	return m.empty()
}

// NewMonoid creates a Monoid from an identity element producer and an
// associative operation.
func NewMonoid[A any](empty func() A, concat func(x, y A) A) Monoid[A] {
	assertThat(empty != nil, "monoid needs an identity element")
	assertThat(concat != nil, "monoid needs a concat operation")
	return monoid[A]{semigroup: semigroup[A]{concat: concat}, empty: empty}
}

// ConcatAll combines values from left to right, starting with m.Empty().
// For an empty sequence of values the result is m.Empty().
func ConcatAll[A any](m Monoid[A], values []A) A {
	acc := m.Empty()
	for _, a := range values {
		acc = m.Concat(acc, a)
	}
	return acc
}

// --- Instances -------------------------------------------------------------

// StringMonoid is the monoid of strings under concatenation.
var StringMonoid = NewMonoid(func() string { return "" }, StringSemigroup.Concat)

// All is the monoid of booleans under conjunction.
var All = NewMonoid(func() bool { return true }, AllSemigroup.Concat)

// Any is the monoid of booleans under disjunction.
var Any = NewMonoid(func() bool { return false }, AnySemigroup.Concat)

// Sum is the monoid of numbers under addition.
func Sum[N Number]() Monoid[N] {
	return NewMonoid(func() N { return 0 }, SumSemigroup[N]().Concat)
}

// Product is the monoid of numbers under multiplication.
func Product[N Number]() Monoid[N] {
	return NewMonoid(func() N { return 1 }, ProductSemigroup[N]().Concat)
}

// SliceMonoid is the monoid of slices under concatenation. The identity is an
// empty, non-nil slice.
func SliceMonoid[A any]() Monoid[[]A] {
	return NewMonoid(func() []A { return []A{} }, concatSlices[A])
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("typeclass: "+msg, msgargs...)
		panic(msg)
	}
}
