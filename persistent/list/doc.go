/*
Package list implements an immutable persistent singly linked list.

A list is either empty (Nil) or a cell holding a head element and a tail,
which again is a list. Cells are never modified after a list has been handed
out, so lists derived from each other may share a common suffix: Cons(x, l)
re-uses all of l, Drop returns a suffix of the original list, and Concat(l1, l2)
copies the cells of l1 only, sharing l2 unmodified.

Lists are inherently concurrency-safe: any number of goroutines may traverse
the same list without synchronization.

None of the operations of this package recurse per list cell. Length of a list
is therefore bounded by available memory only, not by stack depth.

Two list values compare equal with == if and only if they are made of the
very same cells. Use Equal to compare lists element by element.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package list

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.list'.
func tracer() tracing.Trace {
	return tracing.Select("fp.list")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("fp.list: "+msg, msgargs...)
		panic(msg)
	}
}
