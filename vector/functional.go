// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vector

import "iter"

// All returns an iterator over index/element pairs. It visits at most the
// elements present when iteration starts, so it may feed v itself.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		n := v.size
		for i := 0; i < min(n, v.size); i++ {
			if !yield(i, v.elements[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements. Like All, it is bounded by
// the size at the start of iteration.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		n := v.size
		for i := 0; i < min(n, v.size); i++ {
			if !yield(v.elements[i]) {
				return
			}
		}
	}
}

// Each calls fn for every element in order.
func (v *Vector[T]) Each(fn func(T)) {
	for i := 0; i < v.size; i++ {
		fn(v.elements[i])
	}
}

// AllMatch returns true if pred holds for every element.
func (v *Vector[T]) AllMatch(pred func(T) bool) bool {
	return v.findForward(func(value T) bool { return !pred(value) }, 0, v.size) == -1
}

// AnyMatch returns true if pred holds for at least one element.
func (v *Vector[T]) AnyMatch(pred func(T) bool) bool {
	return v.findForward(pred, 0, v.size) != -1
}

// Filter returns a new vector holding the elements that satisfy pred.
func (v *Vector[T]) Filter(pred func(T) bool) *Vector[T] {
	out := &Vector[T]{config: v.config}
	for i := 0; i < v.size; i++ {
		if pred(v.elements[i]) {
			out.PushBack(v.elements[i])
		}
	}
	return out
}

// FilterInPlace drops the elements that do not satisfy pred.
func (v *Vector[T]) FilterInPlace(pred func(T) bool) {
	kept := 0
	for i := 0; i < v.size; i++ {
		if pred(v.elements[i]) {
			v.elements[kept] = v.elements[i]
			kept++
		}
	}
	clear(v.elements[kept:v.size])
	v.size = kept
}

// MapInPlace replaces every element with fn applied to it.
func (v *Vector[T]) MapInPlace(fn func(T) T) {
	for i := 0; i < v.size; i++ {
		v.elements[i] = fn(v.elements[i])
	}
}

// Map returns a new vector holding fn applied to every element of v.
func Map[T, U any](v *Vector[T], fn func(T) U) *Vector[U] {
	out := &Vector[U]{config: v.config}
	out.Reserve(v.size)
	for i := 0; i < v.size; i++ {
		out.elements[i] = fn(v.elements[i])
	}
	out.size = v.size
	return out
}

// Partition splits the vector into the elements that satisfy pred and those
// that do not, preserving order within each.
func (v *Vector[T]) Partition(pred func(T) bool) (matched *Vector[T], rest *Vector[T]) {
	matched = &Vector[T]{config: v.config}
	rest = &Vector[T]{config: v.config}
	for i := 0; i < v.size; i++ {
		if pred(v.elements[i]) {
			matched.PushBack(v.elements[i])
		} else {
			rest.PushBack(v.elements[i])
		}
	}
	return matched, rest
}
