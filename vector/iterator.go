// Copyright (C) 2019-2025, Lux Partners Limited. All rights reserved.
// See the file LICENSE for licensing terms.

package vector

// Iterator is a restartable forward cursor over a vector.
//
// Multiple iterators over the same vector may be used at once, including
// nested. Their behavior is undefined once the vector is structurally
// modified.
type Iterator[T any] struct {
	vector *Vector[T]
	idx    int
}

// NewIterator returns a cursor positioned before the first element.
func (v *Vector[T]) NewIterator() *Iterator[T] {
	return &Iterator[T]{
		vector: v,
		idx:    -1, // -1 because Next() increments before returning
	}
}

// Next advances the cursor and reports whether it addresses an element.
func (it *Iterator[T]) Next() bool {
	if it.idx < it.vector.size {
		it.idx++
	}
	return it.idx < it.vector.size
}

// Valid reports whether the cursor addresses an element.
func (it *Iterator[T]) Valid() bool {
	return it.idx >= 0 && it.idx < it.vector.size
}

// Index returns the position of the cursor.
func (it *Iterator[T]) Index() int {
	return it.idx
}

// Value returns the element under the cursor, or the zero value if the
// cursor is not on an element.
func (it *Iterator[T]) Value() T {
	if !it.Valid() {
		var zero T
		return zero
	}
	return it.vector.elements[it.idx]
}

// Rewind moves the cursor back before the first element.
func (it *Iterator[T]) Rewind() {
	it.idx = -1
}
