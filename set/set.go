// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package set implements a sorted collection of unique elements.
//
// Elements are kept in ascending order according to the set's comparator,
// which lets every relation and algebraic operation run as a single linear
// merge walk over both operands. Two sets may only be combined when they
// share the same *comparator.Comparator.
//
// A Set is not safe for concurrent use.
package set

import (
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/luxfi/collections"
	"github.com/luxfi/collections/comparator"
	"github.com/luxfi/collections/vector"
)

var (
	_ collections.Collection[int] = (*Set[int])(nil)
	_ collections.Iterable[int]   = (*Set[int])(nil)
	_ collections.Predicates[int] = (*Set[int])(nil)
)

// Set is a sorted set of T.
type Set[T any] struct {
	// elements is strictly ascending under cmp.
	elements *vector.Vector[T]
	cmp      *comparator.Comparator[T]

	config collections.Config
}

// New returns a set ordered by the natural order of T.
func New[T constraints.Ordered](elems ...T) *Set[T] {
	return NewFunc(comparator.Natural[T](), elems...)
}

// NewFunc returns a set ordered by cmp.
func NewFunc[T any](cmp *comparator.Comparator[T], elems ...T) *Set[T] {
	return NewWithConfig(cmp, collections.DefaultConfig(), elems...)
}

// NewWithConfig returns a set ordered by cmp and configured by cfg.
// Duplicate elements are dropped.
func NewWithConfig[T any](cmp *comparator.Comparator[T], cfg collections.Config, elems ...T) *Set[T] {
	if cmp == nil {
		panic("set: nil comparator")
	}
	cfg = cfg.WithDefaults()
	s := &Set[T]{
		elements: vector.NewWithConfig(cfg, elems...),
		cmp:      cmp,
		config:   cfg,
	}
	s.normalize()
	return s
}

// derive returns a set over elements sharing the comparator and
// configuration of s. A nil elements yields an empty set.
func (s *Set[T]) derive(elements *vector.Vector[T]) *Set[T] {
	if elements == nil {
		elements = vector.NewWithConfig[T](s.config)
	}
	return &Set[T]{
		elements: elements,
		cmp:      s.cmp,
		config:   s.config,
	}
}

// normalize restores the strictly ascending invariant after elements were
// added without regard to order.
func (s *Set[T]) normalize() {
	if s.isStrictlyAscending() {
		return
	}
	s.elements.SortFunc(s.cmp.Compare)

	var (
		first = true
		last  T
	)
	s.elements.FilterInPlace(func(value T) bool {
		if !first && s.cmp.Compare(last, value) == 0 {
			return false
		}
		first = false
		last = value
		return true
	})
}

func (s *Set[T]) isStrictlyAscending() bool {
	var (
		first = true
		last  T
	)
	for value := range s.elements.Values() {
		if !first && s.cmp.Compare(last, value) >= 0 {
			return false
		}
		first = false
		last = value
	}
	return true
}

// Comparator returns the comparator that orders the set.
func (s *Set[T]) Comparator() *comparator.Comparator[T] {
	return s.cmp
}

// Config returns the configuration the set was created with.
func (s *Set[T]) Config() collections.Config {
	return s.config
}

// Size returns the number of elements.
func (s *Set[T]) Size() int {
	return s.elements.Size()
}

// IsEmpty returns true if the set has no elements.
func (s *Set[T]) IsEmpty() bool {
	return s.elements.IsEmpty()
}

// Clear removes every element.
func (s *Set[T]) Clear() {
	s.elements.Clear()
}

// Elements returns the elements in ascending order.
func (s *Set[T]) Elements() []T {
	return s.elements.Elements()
}

// Clone returns an independent copy of the set sharing its comparator.
func (s *Set[T]) Clone() *Set[T] {
	return s.derive(s.elements.Clone())
}

func (s *Set[T]) String() string {
	return collections.Describe("Set", s.Size(), s.Values())
}

// search returns the position of value, or where it would be inserted.
func (s *Set[T]) search(value T) (int, bool) {
	return s.elements.BinarySearchFunc(value, s.cmp.Compare)
}

// Add inserts value and reports whether it was not already present.
func (s *Set[T]) Add(value T) bool {
	index, found := s.search(value)
	if found {
		return false
	}
	// index is always a valid insertion point.
	_ = s.elements.Insert(index, value)
	return true
}

// AddMany inserts every value and returns how many were not already present.
func (s *Set[T]) AddMany(values ...T) int {
	added := 0
	for _, value := range values {
		if s.Add(value) {
			added++
		}
	}
	return added
}

// AddSeq inserts every value produced by seq and returns how many were not
// already present.
func (s *Set[T]) AddSeq(seq iter.Seq[T]) int {
	added := 0
	for value := range seq {
		if s.Add(value) {
			added++
		}
	}
	return added
}

// Remove deletes value and reports whether it was present.
func (s *Set[T]) Remove(value T) bool {
	index, found := s.search(value)
	if !found {
		return false
	}
	_ = s.elements.Remove(index)
	return true
}

// RemoveMany deletes every value and returns how many were present.
func (s *Set[T]) RemoveMany(values ...T) int {
	removed := 0
	for _, value := range values {
		if s.Remove(value) {
			removed++
		}
	}
	return removed
}

// Pop removes and returns the smallest element.
func (s *Set[T]) Pop() (T, error) {
	value, ok := s.TryPop()
	if !ok {
		return value, collections.ErrEmptyCollection
	}
	return value, nil
}

// TryPop removes and returns the smallest element if there is one.
func (s *Set[T]) TryPop() (T, bool) {
	return s.elements.TryPopFront()
}

// Contains returns true if value is a member.
func (s *Set[T]) Contains(value T) bool {
	_, found := s.search(value)
	return found
}

// Cascade returns the first of keys that is a member. If none is, the
// returned error is a *collections.KeyError naming the last key tried.
func (s *Set[T]) Cascade(keys ...T) (T, error) {
	return s.CascadeSeq(func(yield func(T) bool) {
		for _, key := range keys {
			if !yield(key) {
				return
			}
		}
	})
}

// CascadeWithDefault returns the first of keys that is a member, or def.
func (s *Set[T]) CascadeWithDefault(def T, keys ...T) T {
	value, err := s.Cascade(keys...)
	if err != nil {
		return def
	}
	return value
}

// CascadeSeq is Cascade over the keys produced by seq.
func (s *Set[T]) CascadeSeq(keys iter.Seq[T]) (T, error) {
	var last any
	for key := range keys {
		if s.Contains(key) {
			return key, nil
		}
		last = key
	}
	var zero T
	return zero, &collections.KeyError{Key: last}
}

// CascadeSeqWithDefault is CascadeWithDefault over the keys produced by seq.
func (s *Set[T]) CascadeSeqWithDefault(def T, keys iter.Seq[T]) T {
	value, err := s.CascadeSeq(keys)
	if err != nil {
		return def
	}
	return value
}

// CanCompare returns true if other is a *Set[T] ordered by the same
// comparator.
func (s *Set[T]) CanCompare(other any) bool {
	o, ok := other.(*Set[T])
	return ok && o != nil && o.cmp == s.cmp
}

// Compare orders s and other lexicographically by their elements. Returns
// ErrNotComparable unless CanCompare(other) holds.
func (s *Set[T]) Compare(other any) (int, error) {
	if !s.CanCompare(other) {
		return 0, fmt.Errorf("%w: %T with %T", collections.ErrNotComparable, s, other)
	}
	return s.elements.CompareFunc(other.(*Set[T]).elements, s.cmp.Compare)
}
