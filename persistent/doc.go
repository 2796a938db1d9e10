/*
Package persistent is the home of immutable persistent data structures:
data structures which can be copied and "modified" efficiently, leaving the
original unchanged.

Immutable data structures in many cases offer benefits over mutable data
structures in terms of concurrent access and functional reasoning.
*Persistent* immutable data structures offer structural sharing: if two data
structures are mostly copies of each other, most of the memory they take up
is shared between them. Making a copy of an immutable data structure is thus
cheap in terms of space- and time-complexity.

Sub-package list implements a persistent singly linked list.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
