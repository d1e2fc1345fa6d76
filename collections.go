// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package collections defines the capability interfaces shared by the
// containers in this module. Concrete types compose the capabilities they
// support rather than inheriting from a common base.
package collections

import "iter"

// Collection wraps the size and lifecycle methods of a container.
type Collection[T any] interface {
	// Size returns the number of elements in the collection.
	Size() int

	// IsEmpty returns true if the collection contains no elements.
	IsEmpty() bool

	// Clear removes every element from the collection.
	Clear()

	// Elements returns the elements in iteration order.
	//
	// Note: the returned slice is a copy and is safe to modify.
	Elements() []T
}

// Iterable wraps the traversal methods of a container.
type Iterable[T any] interface {
	// All returns an iterator over index/element pairs.
	//
	// Mutating the container while the iterator is live is undefined.
	All() iter.Seq2[int, T]

	// Values returns an iterator over the elements.
	Values() iter.Seq[T]

	// Each calls fn for every element in order.
	Each(fn func(T))
}

// Predicates wraps the boolean traversal helpers of a container.
type Predicates[T any] interface {
	// AllMatch returns true if pred holds for every element.
	AllMatch(pred func(T) bool) bool

	// AnyMatch returns true if pred holds for at least one element.
	AnyMatch(pred func(T) bool) bool
}

// Sequence is an ordered, iterable collection.
type Sequence[T any] interface {
	Collection[T]
	Iterable[T]
	Predicates[T]

	// Front returns the first element.
	// Returns ErrEmptyCollection if the sequence is empty.
	Front() (T, error)

	// Back returns the last element.
	// Returns ErrEmptyCollection if the sequence is empty.
	Back() (T, error)
}

// RandomAccess is a sequence addressable by index.
//
// Negative indices address elements from the end, so -1 is the last element.
type RandomAccess[T any] interface {
	Sequence[T]

	// Get returns the element at index.
	// Returns an *IndexError if index is out of range.
	Get(index int) (T, error)

	// Find and FindLast report -1 when nothing matches.
	Find(pred func(T) bool, start int) (int, error)
	FindLast(pred func(T) bool, start int) (int, error)
}

// MutableRandomAccess is a random access sequence that supports positional
// mutation.
type MutableRandomAccess[T any] interface {
	RandomAccess[T]

	Set(index int, value T) error
	Insert(index int, value T) error
	InsertMany(index int, values []T) error
	Remove(index int) error
	RemoveMany(index int, count int) error
	RemoveRange(begin int, end int) error
	Replace(index int, values []T, count int) error
	ReplaceRange(begin int, end int, values []T) error
	Swap(i, j int) error
	TrySwap(i, j int) bool
}

// Sortable is a sequence that can be ordered in place.
type Sortable[T any] interface {
	// SortFunc sorts the sequence in place using cmp.
	SortFunc(cmp func(a, b T) int)

	// ReverseInPlace reverses the order of the sequence in place.
	ReverseInPlace()
}
