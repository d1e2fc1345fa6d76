// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package set

import (
	"iter"

	"github.com/luxfi/collections/vector"
)

// All returns an iterator over position/element pairs in ascending order.
func (s *Set[T]) All() iter.Seq2[int, T] {
	return s.elements.All()
}

// Values returns an iterator over the elements in ascending order.
func (s *Set[T]) Values() iter.Seq[T] {
	return s.elements.Values()
}

// NewIterator returns a cursor positioned before the smallest element.
func (s *Set[T]) NewIterator() *vector.Iterator[T] {
	return s.elements.NewIterator()
}

// Each calls fn for every element in ascending order.
func (s *Set[T]) Each(fn func(T)) {
	s.elements.Each(fn)
}

// AllMatch returns true if pred holds for every element.
func (s *Set[T]) AllMatch(pred func(T) bool) bool {
	return s.elements.AllMatch(pred)
}

// AnyMatch returns true if pred holds for at least one element.
func (s *Set[T]) AnyMatch(pred func(T) bool) bool {
	return s.elements.AnyMatch(pred)
}

// Filter returns a new set holding the elements that satisfy pred.
func (s *Set[T]) Filter(pred func(T) bool) *Set[T] {
	return s.derive(s.elements.Filter(pred))
}

// FilterInPlace drops the elements that do not satisfy pred.
func (s *Set[T]) FilterInPlace(pred func(T) bool) {
	s.elements.FilterInPlace(pred)
}

// Partition splits the set into the elements that satisfy pred and those
// that do not.
func (s *Set[T]) Partition(pred func(T) bool) (matched *Set[T], rest *Set[T]) {
	m, r := s.elements.Partition(pred)
	return s.derive(m), s.derive(r)
}

// Map returns a new set holding fn applied to every element. If fn does not
// preserve the order, the result is re-sorted and elements that collide are
// merged.
func (s *Set[T]) Map(fn func(T) T) *Set[T] {
	out := s.Clone()
	out.MapInPlace(fn)
	return out
}

// MapInPlace replaces every element with fn applied to it, re-sorting and
// merging colliding elements if fn does not preserve the order.
func (s *Set[T]) MapInPlace(fn func(T) T) {
	s.elements.MapInPlace(fn)
	if !s.isStrictlyAscending() {
		s.config.Logger.Debug("re-sorting set of %d elements after unordered map", s.Size())
		s.normalize()
	}
}
