/*
Package typeclass implements a hierarchy of algebraic structures:
Semigroup → Monoid → Group.

A Semigroup has an associative binary operation, a Monoid adds an identity
element, and a Group adds an inverse for every element. The hierarchy is
built by interface composition: every Group is a Monoid, every Monoid is a
Semigroup.

Instances are plain values, usually created once and shared. Constructors do
not check the laws at runtime; law conformance is the responsibility of the
instance author (the tests of this package check the provided instances).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package typeclass

// Number is a constraint for numeric types which support + and *.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Signed is a constraint for numeric types with negation.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Ordered is a constraint for types supporting the < operator.
type Ordered interface {
	Number | ~string
}
