package list

import (
	"fmt"
	"strings"

	"github.com/npillmayer/fp/option"
)

// List is an immutable list of elements of type A.
// The zero value is the empty list.
type List[A any] struct {
	c *cell[A]
}

// Nil returns the empty list.
func Nil[A any]() List[A] {
	return List[A]{}
}

// Cons returns a list with head h and tail t. t is shared, not copied.
func Cons[A any](h A, t List[A]) List[A] {
	return List[A]{c: &cell[A]{head: h, tail: t.c}}
}

// Of creates a list from its arguments.
func Of[A any](xs ...A) List[A] {
	return FromSlice(xs)
}

// FromSlice creates a list holding the elements of xs, in order.
func FromSlice[A any](xs []A) List[A] {
	var l List[A]
	for i := len(xs) - 1; i >= 0; i-- {
		l = Cons(xs[i], l)
	}
	return l
}

// Range creates the list of consecutive integers start…end, including end.
// If start > end, the list is empty.
func Range(start, end int) List[int] {
	var l List[int]
	if start > end {
		return l
	}
	for i := end; ; i-- { // count down, as end may be math.MaxInt
		l = Cons(i, l)
		if i == start {
			break
		}
	}
	return l
}

// --- Accessors -------------------------------------------------------------

// IsEmpty is true for the empty list.
func (l List[A]) IsEmpty() bool {
	return l.c == nil
}

// IsNonEmpty is true for a list with at least one element.
func (l List[A]) IsNonEmpty() bool {
	return l.c != nil
}

// Head returns the first element of l, or None for the empty list.
func (l List[A]) Head() option.Option[A] {
	if l.c == nil {
		return option.None[A]()
	}
	return option.Some(l.c.head)
}

// Tail returns l without its first element. The tail of the empty list is
// the empty list.
func (l List[A]) Tail() List[A] {
	if l.c == nil {
		return l
	}
	return List[A]{c: l.c.tail}
}

// Length counts the elements of l. It takes time linear in the length of l.
func (l List[A]) Length() int {
	n := 0
	for c := l.c; c != nil; c = c.tail {
		n++
	}
	return n
}

// ToSlice returns the elements of l as a slice. The slice is never nil.
func (l List[A]) ToSlice() []A {
	xs := make([]A, 0, l.Length())
	for c := l.c; c != nil; c = c.tail {
		xs = append(xs, c.head)
	}
	return xs
}

// ForEach calls f for every element of l, in order.
func (l List[A]) ForEach(f func(A)) {
	for c := l.c; c != nil; c = c.tail {
		f(c.head)
	}
}

func (l List[A]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for c := l.c; c != nil; c = c.tail {
		if c != l.c {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", c.head)
	}
	b.WriteByte(']')
	return b.String()
}

// --- Transformers ----------------------------------------------------------

// Reverse returns a list with the elements of l in opposite order.
func (l List[A]) Reverse() List[A] {
	var r List[A]
	for c := l.c; c != nil; c = c.tail {
		r = Cons(c.head, r)
	}
	return r
}

// Filter returns a list of the elements of l for which pred holds, in order.
// The longest suffix of l for which pred holds throughout is shared with the
// result; if pred holds for every element, the result is l itself.
func (l List[A]) Filter(pred func(A) bool) List[A] {
	var b builder[A]
	run := l.c // start of the current run of accepted cells
	for c := l.c; c != nil; c = c.tail {
		if !pred(c.head) {
			b.copyCells(run, c)
			run = c.tail
		}
	}
	return b.finish(run)
}

// Take returns the first n elements of l. n is clamped to [0, length]:
// for n ≤ 0 the result is empty, for n ≥ length it is l itself.
func (l List[A]) Take(n int) List[A] {
	if n <= 0 {
		return Nil[A]()
	}
	c := l.c
	for i := 0; c != nil && i < n; i++ {
		c = c.tail
	}
	if c == nil {
		return l
	}
	var b builder[A]
	b.copyCells(l.c, c)
	tracer().Debugf("take: copied %d cells", b.n)
	return b.finish(nil)
}

// Drop returns l without its first n elements. n is clamped to [0, length]:
// for n ≤ 0 the result is l, for n ≥ length it is empty.
// The result shares all its cells with l.
func (l List[A]) Drop(n int) List[A] {
	c := l.c
	for i := 0; c != nil && i < n; i++ {
		c = c.tail
	}
	return List[A]{c: c}
}

// Map returns the list of f applied to every element of l, in order.
func Map[A, B any](f func(A) B, l List[A]) List[B] {
	var b builder[B]
	for c := l.c; c != nil; c = c.tail {
		b.push(f(c.head))
	}
	return b.finish(nil)
}

// FlatMap applies f to every element of l and concatenates the results.
func FlatMap[A, B any](f func(A) List[B], l List[A]) List[B] {
	var b builder[B]
	for c := l.c; c != nil; c = c.tail {
		b.copyCells(f(c.head).c, nil)
	}
	return b.finish(nil)
}

// Filter is the function form of l.Filter(pred).
func Filter[A any](pred func(A) bool, l List[A]) List[A] {
	return l.Filter(pred)
}

// Reduce folds l from left to right:
//
//     Reduce(f, z, Cons(h, t)) == Reduce(f, f(z, h), t)
//
func Reduce[A, B any](f func(B, A) B, initial B, l List[A]) B {
	acc := initial
	for c := l.c; c != nil; c = c.tail {
		acc = f(acc, c.head)
	}
	return acc
}

// Concat returns the elements of l1 followed by the elements of l2.
// The cells of l1 are copied, l2 is shared unmodified.
func Concat[A any](l1, l2 List[A]) List[A] {
	if l1.c == nil {
		return l2
	}
	var b builder[A]
	b.copyCells(l1.c, nil)
	tracer().Debugf("concat: copied %d cells", b.n)
	return b.finish(l2.c)
}

// --- Queries ---------------------------------------------------------------

// Contains reports whether item is an element of l. It stops at the first match.
func Contains[A comparable](l List[A], item A) bool {
	return ContainsFunc(l, item, func(a, b A) bool { return a == b })
}

// ContainsFunc reports whether l has an element equal to item, with equality
// determined by eq. It stops at the first match.
func ContainsFunc[A any](l List[A], item A, eq func(a, b A) bool) bool {
	for c := l.c; c != nil; c = c.tail {
		if eq(c.head, item) {
			return true
		}
	}
	return false
}

// Equal reports whether l1 and l2 hold equal elements in the same order.
func Equal[A comparable](l1, l2 List[A]) bool {
	c1, c2 := l1.c, l2.c
	for c1 != nil && c2 != nil {
		if c1 == c2 { // shared suffix
			return true
		}
		if c1.head != c2.head {
			return false
		}
		c1, c2 = c1.tail, c2.tail
	}
	return c1 == c2
}

// --- Matching --------------------------------------------------------------

// Matcher supports switch-style matching on a list:
//
//     var head int
//     var tail list.List[int]
//     switch m := l.Match(); m {
//     case m.Cons(&head, &tail):
//         …
//     case m.Nil():
//         …
//     }
//
type Matcher[A any] interface {
	Cons(*A, *List[A]) Matcher[A]
	Nil() Matcher[A]
}

// Match returns a matcher for l.
func (l List[A]) Match() Matcher[A] {
	return &matcher[A]{l: l}
}

type matcher[A any] struct {
	l List[A]
}

func (lm *matcher[A]) Cons(h *A, t *List[A]) Matcher[A] {
	if lm.l.c != nil {
		*h = lm.l.c.head
		*t = List[A]{c: lm.l.c.tail}
		return lm
	}
	return nil
}

func (lm *matcher[A]) Nil() Matcher[A] {
	if lm.l.c == nil {
		return lm
	}
	return nil
}
