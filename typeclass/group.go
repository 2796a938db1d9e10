package typeclass

// Group is a Monoid where every element has an inverse:
//
//     Concat(a, Inverse(a)) == Empty() == Concat(Inverse(a), a)
//
type Group[A any] interface {
	Monoid[A]
	Inverse(a A) A
}

type group[A any] struct {
	monoid[A]
	inverse func(A) A
}

func (g group[A]) Inverse(a A) A {
	return g.inverse(a)
}

// NewGroup creates a Group from an identity element producer, an associative
// operation and an inverse operation.
func NewGroup[A any](empty func() A, concat func(x, y A) A, inverse func(A) A) Group[A] {
	assertThat(inverse != nil, "group needs an inverse operation")
	m := NewMonoid(empty, concat).(monoid[A])
	return group[A]{monoid: m, inverse: inverse}
}

// Remove is Concat(x, Inverse(y)), the group's analogue of subtraction.
func Remove[A any](g Group[A], x, y A) A {
	return g.Concat(x, g.Inverse(y))
}

// --- Instances -------------------------------------------------------------

// SumGroup is the group of signed numbers under addition, with negation
// as the inverse.
func SumGroup[N Signed]() Group[N] {
	return NewGroup(
		func() N { return 0 },
		func(x, y N) N { return x + y },
		func(a N) N { return -a },
	)
}

// XorGroup is the group of booleans under exclusive or. Every element is its
// own inverse.
var XorGroup = NewGroup(
	func() bool { return false },
	func(x, y bool) bool { return x != y },
	func(a bool) bool { return a },
)
