/*
Package listdbg renders the structure of persistent lists for debugging.

Persistent lists share suffixes. Taking the tail as the parent of a cell,
any set of lists forms a tree with the empty list at its root. Print renders
this tree, so shared cells show up exactly once:

    a := list.Of(1, 2, 3)
    b := list.Cons(0, a.Drop(1))
    fmt.Println(listdbg.Print(a, b))

prints

    Lists(n=2, cells=4)
    .
    └── Nil
        └── 3
            └── 2
                ├── 1
                └── 0

A list is read from a leaf up to the root.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package listdbg

import (
	"fmt"

	"github.com/npillmayer/fp/persistent/list"
	tp "github.com/xlab/treeprint"
)

// Print renders the cells of lists as a tree, with each cell a child of its
// tail.
func Print[A any](lists ...list.List[A]) string {
	printer := tp.New()
	children, n := tailTree(lists)
	root := printer.AddBranch("Nil")
	type frame struct {
		l      list.List[A]
		branch tp.Tree
	}
	stack := []frame{{l: list.Nil[A](), branch: root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, ch := range children[top.l] {
			h, _ := ch.Head().Get()
			b := top.branch.AddBranch(fmt.Sprintf("%v", h))
			stack = append(stack, frame{l: ch, branch: b})
		}
	}
	return fmt.Sprintf("\nLists(n=%d, cells=%d)\n", len(lists), n) + printer.String()
}

// CountCells returns the number of distinct cells making up lists. For lists
// without any sharing, this is the sum of their lengths.
func CountCells[A any](lists ...list.List[A]) int {
	_, n := tailTree(lists)
	return n
}

// tailTree maps every list to the lists having it as their tail, and counts
// distinct cells.
func tailTree[A any](lists []list.List[A]) (map[list.List[A]][]list.List[A], int) {
	children := make(map[list.List[A]][]list.List[A])
	seen := make(map[list.List[A]]bool)
	for _, l := range lists {
		for c := l; c.IsNonEmpty() && !seen[c]; c = c.Tail() {
			seen[c] = true
			t := c.Tail()
			children[t] = append(children[t], c)
		}
	}
	return children, len(seen)
}
