// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vector

import (
	"cmp"
	"fmt"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/luxfi/collections"
)

// Slice returns a new vector holding the elements from index to the end.
func (v *Vector[T]) Slice(index int) (*Vector[T], error) {
	return v.SliceCount(index, v.size)
}

// SliceCount returns a new vector holding up to count elements starting at
// index. A count that runs past the end is clamped; a negative count yields
// an empty vector.
func (v *Vector[T]) SliceCount(index int, count int) (*Vector[T], error) {
	index, err := v.validateIndex(index)
	if err != nil {
		return nil, err
	}
	count = max(0, min(count, v.size-index))
	return v.copyOf(index, index+count), nil
}

// Range returns a new vector holding the elements in [begin, end).
// end < begin yields an empty vector.
func (v *Vector[T]) Range(begin int, end int) (*Vector[T], error) {
	begin, end, err := v.validateRange(begin, end)
	if err != nil {
		return nil, err
	}
	return v.copyOf(begin, end), nil
}

func (v *Vector[T]) copyOf(begin, end int) *Vector[T] {
	out := &Vector[T]{config: v.config}
	out.Append(v.elements[begin:end])
	return out
}

// Find returns the index of the first element at or after start that
// satisfies pred, or -1. On an empty vector a start of 0 or -1 reports -1;
// any other start is out of range.
func (v *Vector[T]) Find(pred func(T) bool, start int) (int, error) {
	if v.size == 0 && (start == 0 || start == -1) {
		return -1, nil
	}
	start, err := v.validateIndex(start)
	if err != nil {
		return -1, err
	}
	return v.findForward(pred, start, v.size), nil
}

// FindLast returns the index of the last element at or before start that
// satisfies pred, or -1. Pass -1 as start to search the whole vector; on an
// empty vector only 0 and -1 are accepted.
func (v *Vector[T]) FindLast(pred func(T) bool, start int) (int, error) {
	if v.size == 0 && (start == 0 || start == -1) {
		return -1, nil
	}
	start, err := v.validateIndex(start)
	if err != nil {
		return -1, err
	}
	return v.findBackward(pred, 0, start+1), nil
}

// FindRange returns the index of the first element in [begin, end) that
// satisfies pred, or -1.
func (v *Vector[T]) FindRange(pred func(T) bool, begin, end int) (int, error) {
	begin, end, err := v.validateRange(begin, end)
	if err != nil {
		return -1, err
	}
	return v.findForward(pred, begin, end), nil
}

// FindLastRange returns the index of the last element in [begin, end) that
// satisfies pred, or -1.
func (v *Vector[T]) FindLastRange(pred func(T) bool, begin, end int) (int, error) {
	begin, end, err := v.validateRange(begin, end)
	if err != nil {
		return -1, err
	}
	return v.findBackward(pred, begin, end), nil
}

func (v *Vector[T]) findForward(pred func(T) bool, begin, end int) int {
	for i := begin; i < end; i++ {
		if pred(v.elements[i]) {
			return i
		}
	}
	return -1
}

func (v *Vector[T]) findBackward(pred func(T) bool, begin, end int) int {
	for i := end - 1; i >= begin; i-- {
		if pred(v.elements[i]) {
			return i
		}
	}
	return -1
}

// IndexOf returns the index of the first occurrence of value at or after
// start, or -1.
func IndexOf[T comparable](v *Vector[T], value T, start int) (int, error) {
	return v.Find(equalTo(value), start)
}

// IndexOfLast returns the index of the last occurrence of value at or before
// start, or -1.
func IndexOfLast[T comparable](v *Vector[T], value T, start int) (int, error) {
	return v.FindLast(equalTo(value), start)
}

// Contains returns true if value occurs in v.
func Contains[T comparable](v *Vector[T], value T) bool {
	return v.findForward(equalTo(value), 0, v.size) != -1
}

func equalTo[T comparable](value T) func(T) bool {
	return func(element T) bool {
		return element == value
	}
}

// BinarySearchFunc searches a vector sorted by cmp for target. It returns
// the position where target is found, or where it would be inserted, and
// whether it was found.
func (v *Vector[T]) BinarySearchFunc(target T, cmp func(a, b T) int) (int, bool) {
	return slices.BinarySearchFunc(v.elements[:v.size], target, cmp)
}

// IsSortedFunc reports whether the vector is sorted by cmp.
func (v *Vector[T]) IsSortedFunc(cmp func(a, b T) int) bool {
	return slices.IsSortedFunc(v.elements[:v.size], cmp)
}

// SortFunc sorts the vector in place using cmp. The sort is stable.
func (v *Vector[T]) SortFunc(cmp func(a, b T) int) {
	slices.SortStableFunc(v.elements[:v.size], cmp)
}

// SortedFunc returns a sorted copy of the vector.
func (v *Vector[T]) SortedFunc(cmp func(a, b T) int) *Vector[T] {
	sorted := v.Clone()
	sorted.SortFunc(cmp)
	return sorted
}

// Sort sorts v in place by the natural order of T.
func Sort[T constraints.Ordered](v *Vector[T]) {
	v.SortFunc(cmp.Compare[T])
}

// Sorted returns a copy of v sorted by the natural order of T.
func Sorted[T constraints.Ordered](v *Vector[T]) *Vector[T] {
	return v.SortedFunc(cmp.Compare[T])
}

// ReverseInPlace reverses the order of the elements.
func (v *Vector[T]) ReverseInPlace() {
	slices.Reverse(v.elements[:v.size])
}

// Reversed returns a reversed copy of the vector.
func (v *Vector[T]) Reversed() *Vector[T] {
	reversed := v.Clone()
	reversed.ReverseInPlace()
	return reversed
}

// CanCompare returns true if other is a *Vector[T].
func (v *Vector[T]) CanCompare(other any) bool {
	o, ok := other.(*Vector[T])
	return ok && o != nil
}

// CompareFunc compares v with other lexicographically using cmp. The first
// differing pair decides the result; otherwise the shorter vector is less.
// Returns ErrNotComparable if other is not a *Vector[T].
func (v *Vector[T]) CompareFunc(other any, cmp func(a, b T) int) (int, error) {
	if !v.CanCompare(other) {
		return 0, fmt.Errorf("%w: %T with %T", collections.ErrNotComparable, v, other)
	}
	o := other.(*Vector[T])
	return slices.CompareFunc(v.elements[:v.size], o.elements[:o.size], cmp), nil
}

// Compare compares v with other lexicographically by the natural order of T.
func Compare[T constraints.Ordered](v *Vector[T], other any) (int, error) {
	return v.CompareFunc(other, cmp.Compare[T])
}
