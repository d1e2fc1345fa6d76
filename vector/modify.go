// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vector

import (
	"iter"
	"slices"
)

// Insert places value at index, shifting later elements right.
// index may equal Size() to append.
func (v *Vector[T]) Insert(index int, value T) error {
	index, err := v.validateBound(index)
	if err != nil {
		return err
	}
	v.shiftRight(index, 1)
	v.elements[index] = value
	return nil
}

// InsertMany places values at index, preserving their order. Capacity is
// reserved once for the whole batch.
func (v *Vector[T]) InsertMany(index int, values []T) error {
	index, err := v.validateBound(index)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return nil
	}
	v.shiftRight(index, len(values))
	copy(v.elements[index:], values)
	return nil
}

// InsertSeq places every element produced by seq at index, preserving their
// order. seq is drained before v is modified, so it may iterate over v.
func (v *Vector[T]) InsertSeq(index int, seq iter.Seq[T]) error {
	index, err := v.validateBound(index)
	if err != nil {
		return err
	}
	return v.InsertMany(index, slices.Collect(seq))
}

// InsertRange places the elements of src in [begin, end) at index.
// src may be v itself.
func (v *Vector[T]) InsertRange(index int, src *Vector[T], begin, end int) error {
	index, err := v.validateBound(index)
	if err != nil {
		return err
	}
	begin, end, err = src.validateRange(begin, end)
	if err != nil {
		return err
	}
	return v.InsertMany(index, slices.Clone(src.elements[begin:end]))
}

// Remove deletes the element at index, shifting later elements left.
func (v *Vector[T]) Remove(index int) error {
	index, err := v.validateIndex(index)
	if err != nil {
		return err
	}
	v.shiftLeft(index, 1)
	return nil
}

// RemoveMany deletes up to count elements starting at index. A count that
// runs past the end is clamped.
func (v *Vector[T]) RemoveMany(index int, count int) error {
	index, err := v.validateIndex(index)
	if err != nil {
		return err
	}
	count = min(count, v.size-index)
	if count > 0 {
		v.shiftLeft(index, count)
	}
	return nil
}

// RemoveRange deletes the elements in [begin, end). end < begin removes
// nothing.
func (v *Vector[T]) RemoveRange(begin int, end int) error {
	begin, end, err := v.validateRange(begin, end)
	if err != nil {
		return err
	}
	if end > begin {
		v.shiftLeft(begin, end-begin)
	}
	return nil
}

// Replace removes up to count elements at index and splices values in their
// place.
func (v *Vector[T]) Replace(index int, values []T, count int) error {
	index, err := v.validateIndex(index)
	if err != nil {
		return err
	}
	v.splice(index, max(0, min(count, v.size-index)), values)
	return nil
}

// ReplaceSeq is Replace for a sequence of unknown length.
func (v *Vector[T]) ReplaceSeq(index int, seq iter.Seq[T], count int) error {
	index, err := v.validateIndex(index)
	if err != nil {
		return err
	}
	v.splice(index, max(0, min(count, v.size-index)), slices.Collect(seq))
	return nil
}

// ReplaceRange removes the elements in [begin, end) and splices values in
// their place. end <= begin inserts values at begin.
func (v *Vector[T]) ReplaceRange(begin int, end int, values []T) error {
	begin, end, err := v.validateRange(begin, end)
	if err != nil {
		return err
	}
	v.splice(begin, end-begin, values)
	return nil
}

// splice replaces count elements at index with values in a single shift.
func (v *Vector[T]) splice(index, count int, values []T) {
	switch n := len(values); {
	case n > count:
		v.shiftRight(index+count, n-count)
	case n < count:
		v.shiftLeft(index+n, count-n)
	}
	copy(v.elements[index:], values)
}

// Swap exchanges the elements at i and j.
func (v *Vector[T]) Swap(i, j int) error {
	i, err := v.validateIndex(i)
	if err != nil {
		return err
	}
	j, err = v.validateIndex(j)
	if err != nil {
		return err
	}
	v.elements[i], v.elements[j] = v.elements[j], v.elements[i]
	return nil
}

// TrySwap exchanges the elements at i and j if both are valid.
func (v *Vector[T]) TrySwap(i, j int) bool {
	return v.Swap(i, j) == nil
}

// Append adds the elements of every slice to the end, reserving capacity
// once for all of them.
func (v *Vector[T]) Append(seqs ...[]T) {
	total := 0
	for _, values := range seqs {
		total += len(values)
	}
	if total == 0 {
		return
	}
	v.expand(total)
	for _, values := range seqs {
		copy(v.elements[v.size:], values)
		v.size += len(values)
	}
}

// AppendSeq adds every element produced by seq to the end.
func (v *Vector[T]) AppendSeq(seq iter.Seq[T]) {
	for value := range seq {
		v.PushBack(value)
	}
}

// Join returns a new vector holding v followed by every slice.
func (v *Vector[T]) Join(seqs ...[]T) *Vector[T] {
	joined := v.Clone()
	joined.Append(seqs...)
	return joined
}
