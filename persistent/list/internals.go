package list

type cell[A any] struct {
	head A
	tail *cell[A]
}

// builder constructs a list front to back. Cells are linked while the list is
// still private to the builder; once finish has been called, the builder must
// not be used any more.
type builder[A any] struct {
	first, last *cell[A]
	n           int
}

func (b *builder[A]) push(a A) {
	c := &cell[A]{head: a}
	if b.last == nil {
		b.first = c
	} else {
		b.last.tail = c
	}
	b.last = c
	b.n++
}

// copyCells appends the heads of cells [from, to) to the builder.
func (b *builder[A]) copyCells(from, to *cell[A]) {
	for c := from; c != to; c = c.tail {
		assertThat(c != nil, "cell range does not end at given cell")
		b.push(c.head)
	}
}

// finish links the last cell of the builder to tail and returns the list.
func (b *builder[A]) finish(tail *cell[A]) List[A] {
	if b.first == nil {
		return List[A]{c: tail}
	}
	b.last.tail = tail
	l := List[A]{c: b.first}
	b.first, b.last = nil, nil
	return l
}
