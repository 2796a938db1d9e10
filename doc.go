/*
Package fp is a small library of algebraic data types and law-governed
abstractions for functional-style Go.

Sub-packages offer the data types:

   option           optional values (Some / None)
   either           disjoint unions (Left / Right), Left being the failure case
   result           Either[error, T], bridging to Go's (value, error) idiom
   persistent/list  an immutable singly linked list with structural sharing
   typeclass        Semigroup → Monoid → Group and a set of common instances

This package itself holds a linear pattern matcher and a handful of tiny
function combinators.

Pattern Matching

Match evaluates a sequence of patterns against a value, strictly in the order
given. The first pattern whose predicate holds wins:

   size, err := fp.Match(15,
       fp.When(func(n int) bool { return n > 10 }, fp.Const[int]("large")),
       fp.Otherwise(fp.Const[int]("medium")),
   )

If no pattern matches, Match returns an error wrapping ErrNoMatch.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fp

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.match'.
func tracer() tracing.Trace {
	return tracing.Select("fp.match")
}
