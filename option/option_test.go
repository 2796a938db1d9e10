package option_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/npillmayer/fp"
	. "github.com/npillmayer/fp/option"
	"github.com/npillmayer/fp/typeclass"
	"github.com/stretchr/testify/assert"
)

func TestOptionSimple(t *testing.T) {
	x := Some(7) // infers type
	y := None[int]()

	var v int
	switch m := x.Match(); m {
	case m.Some(&v):
		t.Logf("Some(%d)", v)
	case m.None():
		t.Logf("None")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	var w int
	var wasNone bool
	switch m := y.Match(); m {
	case m.Some(&w):
		t.Logf("Some(%d)", w)
	case m.None():
		wasNone = true
	}
	if !wasNone || w != 0 {
		t.Errorf("expected None to match None(), w=%#v", w)
	}
}

func TestMatchOnIncomparableType(t *testing.T) {
	x := Some([]int{1, 2})
	var v []int
	switch m := x.Match(); m {
	case m.Some(&v):
	case m.None():
		t.Error("expected Some([1 2]) to match Some")
	}
	assert.Equal(t, []int{1, 2}, v)
}

func TestZeroValueIsNone(t *testing.T) {
	var o Option[string]
	assert.True(t, o.IsNone())
	assert.False(t, o.IsSome())
	assert.Equal(t, "None", o.String())
	assert.Equal(t, "Some(3)", Some(3).String())
}

func TestOptionGetOrElse(t *testing.T) {
	if xx := Some(7).GetOrElse(100); xx != 7 {
		t.Errorf("expected Some(7) to have value 7, is %d", xx)
	}
	if yy := None[int]().GetOrElse(100); yy != 100 {
		t.Errorf("expected None to default to 100, is %d", yy)
	}
}

func TestOptionMap(t *testing.T) {
	double := func(n int) int { return n * 2 }
	assert.Equal(t, Some(10), Map(double, Some(5)))
	assert.Equal(t, None[int](), Map(double, None[int]()))
	assert.Equal(t, Some(14), Some(7).Map(double))
	assert.Equal(t, Some("7"), Map(strconv.Itoa, Some(7)))
}

func TestMapShortCircuits(t *testing.T) {
	called := false
	Map(func(n int) int {
		called = true
		return n
	}, None[int]())
	if called {
		t.Error("expected Map not to call f for None")
	}
}

func TestFunctorLaws(t *testing.T) {
	f := func(n int) int { return n + 1 }
	g := func(n int) int { return n * 3 }
	for _, x := range []Option[int]{Some(0), Some(-4), Some(9), None[int]()} {
		assert.Equal(t, x, Map(fp.Identity[int], x), "identity for %v", x)
		assert.Equal(t, Map(g, Map(f, x)), Map(fp.Compose(f, g), x), "composition for %v", x)
	}
}

func TestMonadLaws(t *testing.T) {
	half := func(n int) Option[int] {
		if n%2 == 0 {
			return Some(n / 2)
		}
		return None[int]()
	}
	dec := func(n int) Option[int] {
		if n > 0 {
			return Some(n - 1)
		}
		return None[int]()
	}
	for _, a := range []int{-3, 0, 1, 4, 8} {
		// left identity
		assert.Equal(t, half(a), FlatMap(half, Some(a)))
		// right identity
		assert.Equal(t, Some(a), FlatMap(Some[int], Some(a)))
	}
	for _, x := range []Option[int]{Some(0), Some(4), Some(5), Some(12), None[int]()} {
		l := FlatMap(dec, FlatMap(half, x))
		r := FlatMap(func(n int) Option[int] { return FlatMap(dec, half(n)) }, x)
		assert.Equal(t, l, r, "associativity for %v", x)
	}
	assert.Equal(t, None[int](), FlatMap(half, None[int]()))
}

func TestFilterAndOrElse(t *testing.T) {
	positive := func(n int) bool { return n > 0 }
	assert.Equal(t, Some(3), Filter(positive, Some(3)))
	assert.True(t, Filter(positive, Some(-3)).IsNone())
	assert.True(t, Filter(positive, None[int]()).IsNone())
	assert.Equal(t, Some(1), OrElse(Some(1), func() Option[int] { return Some(2) }))
	assert.Equal(t, Some(2), OrElse(None[int](), func() Option[int] { return Some(2) }))
}

func TestFold(t *testing.T) {
	describe := func(o Option[int]) string {
		return Fold(o, func() string { return "none" }, strconv.Itoa)
	}
	assert.Equal(t, "42", describe(Some(42)))
	assert.Equal(t, "none", describe(None[int]()))
}

func TestFromNullable(t *testing.T) {
	zero, no := 0, false
	assert.Equal(t, Some(0), FromNullable(&zero))
	assert.Equal(t, Some(false), FromNullable(&no))
	assert.True(t, FromNullable[int](nil).IsNone())
	assert.Equal(t, Some(5), FromOK(5, true))
	assert.True(t, FromOK(5, false).IsNone())
	m := map[string]int{"a": 1}
	v, ok := m["b"]
	assert.True(t, FromOK(v, ok).IsNone())
}

func TestFromError(t *testing.T) {
	assert.Equal(t, Some(12), FromError(func() (int, error) { return strconv.Atoi("12") }))
	assert.True(t, FromError(func() (int, error) { return 0, errors.New("nope") }).IsNone())
}

func TestTryCatch(t *testing.T) {
	assert.Equal(t, Some(3), TryCatch(func() int { return 3 }))
	o := TryCatch(func() int {
		var m map[string]int
		m["x"] = 1 // assignment to nil map panics
		return 1
	})
	assert.True(t, o.IsNone())
	o = TryCatch(func() int { panic("boom") })
	assert.True(t, o.IsNone())
}

func TestOptionMonoid(t *testing.T) {
	m := Monoid(typeclass.SumSemigroup[int]())
	assert.Equal(t, None[int](), typeclass.ConcatAll(m, nil))
	assert.Equal(t, Some(6), typeclass.ConcatAll(m, []Option[int]{Some(1), None[int](), Some(5)}))
	for _, x := range []Option[int]{Some(2), None[int]()} {
		assert.Equal(t, x, m.Concat(m.Empty(), x))
		assert.Equal(t, x, m.Concat(x, m.Empty()))
	}
}

func TestTryCatch1(t *testing.T) {
	first := TryCatch1(func(xs []string) string { return xs[0] })
	assert.Equal(t, Some("a"), first([]string{"a", "b"}))
	assert.True(t, first(nil).IsNone())
	assert.True(t, TryCatch(func() int { panic(nil) }).IsNone())
}
