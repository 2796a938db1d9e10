package typeclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// checkAssociativity checks the semigroup law for all triples from samples.
func checkAssociativity[A any](t *testing.T, name string, s Semigroup[A], samples []A) {
	t.Helper()
	for _, a := range samples {
		for _, b := range samples {
			for _, c := range samples {
				l := s.Concat(s.Concat(a, b), c)
				r := s.Concat(a, s.Concat(b, c))
				if !assert.Equal(t, l, r, "%s: associativity for (%v, %v, %v)", name, a, b, c) {
					return
				}
			}
		}
	}
}

func checkIdentity[A any](t *testing.T, name string, m Monoid[A], samples []A) {
	t.Helper()
	for _, a := range samples {
		assert.Equal(t, a, m.Concat(m.Empty(), a), "%s: left identity for %v", name, a)
		assert.Equal(t, a, m.Concat(a, m.Empty()), "%s: right identity for %v", name, a)
	}
	assert.Equal(t, m.Empty(), ConcatAll(m, nil), "%s: ConcatAll of nothing", name)
}

func checkInverse[A any](t *testing.T, name string, g Group[A], samples []A) {
	t.Helper()
	for _, a := range samples {
		assert.Equal(t, g.Empty(), g.Concat(a, g.Inverse(a)), "%s: right inverse for %v", name, a)
		assert.Equal(t, g.Empty(), g.Concat(g.Inverse(a), a), "%s: left inverse for %v", name, a)
	}
}

var (
	ints   = []int{-7, -1, 0, 1, 2, 3, 100}
	bools  = []bool{true, false}
	strs   = []string{"", "a", "bc", "def"}
	slices = [][]int{{}, {1}, {2, 3}, {4, 5, 6}}
	floats = []float64{-2.5, 0, 0.5, 4} // exactly representable
)

func TestSemigroupLaws(t *testing.T) {
	checkAssociativity(t, "string", StringSemigroup, strs)
	checkAssociativity(t, "all", AllSemigroup, bools)
	checkAssociativity(t, "any", AnySemigroup, bools)
	checkAssociativity(t, "sum", SumSemigroup[int](), ints)
	checkAssociativity(t, "product", ProductSemigroup[int](), ints)
	checkAssociativity(t, "slice", SliceSemigroup[int](), slices)
	checkAssociativity(t, "min", Min[int](), ints)
	checkAssociativity(t, "max", Max[string](), strs)
	checkAssociativity(t, "first", First[int](), ints)
	checkAssociativity(t, "last", Last[int](), ints)
	checkAssociativity(t, "dual", Dual(StringSemigroup), strs)
	custom := NewSemigroup(func(x, y int) int {
		if x > y {
			return x
		}
		return y
	})
	checkAssociativity(t, "custom max", custom, ints)
}

func TestMonoidLaws(t *testing.T) {
	checkIdentity(t, "string", StringMonoid, strs)
	checkIdentity(t, "all", All, bools)
	checkIdentity(t, "any", Any, bools)
	checkIdentity(t, "sum", Sum[int](), ints)
	checkIdentity(t, "sum float", Sum[float64](), floats)
	checkIdentity(t, "product", Product[int](), ints)
	checkIdentity(t, "slice", SliceMonoid[int](), slices)
	checkAssociativity[string](t, "string monoid", StringMonoid, strs)
	checkAssociativity[[]int](t, "slice monoid", SliceMonoid[int](), slices)
}

type vec2 struct{ x, y int }

func TestGroupLaws(t *testing.T) {
	checkInverse(t, "sum", SumGroup[int](), ints)
	checkInverse(t, "sum float", SumGroup[float64](), floats)
	checkInverse(t, "xor", XorGroup, bools)
	checkIdentity[bool](t, "xor", XorGroup, bools)
	checkAssociativity[bool](t, "xor", XorGroup, bools)
	//
	vectors := NewGroup(
		func() vec2 { return vec2{} },
		func(a, b vec2) vec2 { return vec2{a.x + b.x, a.y + b.y} },
		func(a vec2) vec2 { return vec2{-a.x, -a.y} },
	)
	samples := []vec2{{0, 0}, {1, 2}, {-3, 4}, {5, -6}}
	checkInverse(t, "vec2", vectors, samples)
	checkIdentity[vec2](t, "vec2", vectors, samples)
	checkAssociativity[vec2](t, "vec2", vectors, samples)
	assert.Equal(t, vec2{-2, 2}, Remove(vectors, vec2{1, 2}, vec2{3, 0}))
}

func TestGroupIsMonoid(t *testing.T) {
	var m Monoid[int] = SumGroup[int]()
	assert.Equal(t, 6, ConcatAll(m, []int{1, 2, 3}))
	var s Semigroup[bool] = XorGroup
	assert.False(t, s.Concat(true, true))
}
