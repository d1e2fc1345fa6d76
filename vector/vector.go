// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package vector implements a growable, index-addressable sequence.
//
// A Vector owns a contiguous buffer whose capacity doubles whenever an
// insertion would overflow it, giving amortized O(1) insertion at the back.
// Negative indices address elements from the end. Slots beyond the logical
// size always hold the zero value so that removed elements are never kept
// reachable.
//
// A Vector is not safe for concurrent use.
package vector

import (
	"fmt"
	"iter"

	"github.com/luxfi/collections"
)

var (
	_ collections.MutableRandomAccess[int] = (*Vector[int])(nil)
	_ collections.Sortable[int]            = (*Vector[int])(nil)
)

// Vector is a dynamic array of T.
type Vector[T any] struct {
	// elements has len == capacity. Slots in [size, capacity) are zeroed.
	elements []T
	size     int

	config collections.Config
}

// New returns a vector holding elems in order.
func New[T any](elems ...T) *Vector[T] {
	return NewWithConfig(collections.DefaultConfig(), elems...)
}

// NewWithConfig returns a vector configured by cfg holding elems in order.
func NewWithConfig[T any](cfg collections.Config, elems ...T) *Vector[T] {
	v := &Vector[T]{config: cfg.WithDefaults()}
	if v.config.Capacity > 0 {
		v.Reserve(v.config.Capacity)
	}
	v.Append(elems)
	return v
}

// FromSeq returns a vector holding every element produced by seq.
func FromSeq[T any](seq iter.Seq[T]) *Vector[T] {
	v := New[T]()
	v.AppendSeq(seq)
	return v
}

// Config returns the configuration the vector was created with.
func (v *Vector[T]) Config() collections.Config {
	return v.config
}

// Size returns the number of elements.
func (v *Vector[T]) Size() int {
	return v.size
}

// Capacity returns the number of allocated slots.
func (v *Vector[T]) Capacity() int {
	return len(v.elements)
}

// IsEmpty returns true if the vector has no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// Clear removes every element. The allocated capacity is retained.
func (v *Vector[T]) Clear() {
	clear(v.elements[:v.size])
	v.size = 0
}

// Elements returns a copy of the elements in order.
func (v *Vector[T]) Elements() []T {
	out := make([]T, v.size)
	copy(out, v.elements[:v.size])
	return out
}

// Clone returns an independent copy of the vector, including its capacity.
func (v *Vector[T]) Clone() *Vector[T] {
	elements := make([]T, len(v.elements))
	copy(elements, v.elements[:v.size])
	return &Vector[T]{
		elements: elements,
		size:     v.size,
		config:   v.config,
	}
}

func (v *Vector[T]) String() string {
	return collections.Describe("Vector", v.size, v.Values())
}

// Reserve grows the capacity to at least n. It never shrinks the buffer.
func (v *Vector[T]) Reserve(n int) {
	if n > len(v.elements) {
		v.reallocate(n)
	}
}

// Shrink releases unused capacity so that Capacity() == Size().
func (v *Vector[T]) Shrink() {
	if len(v.elements) > v.size {
		v.reallocate(v.size)
	}
}

// Resize sets the size to n, appending zero values or truncating as needed.
func (v *Vector[T]) Resize(n int) error {
	var zero T
	return v.ResizeFill(n, zero)
}

// ResizeFill sets the size to n, appending copies of fill or truncating as
// needed.
func (v *Vector[T]) ResizeFill(n int, fill T) error {
	switch {
	case n < 0:
		return fmt.Errorf("%w: negative size %d", collections.ErrInvalidArgument, n)
	case n > v.size:
		v.expand(n - v.size)
		for i := v.size; i < n; i++ {
			v.elements[i] = fill
		}
	case n < v.size:
		clear(v.elements[n:v.size])
	}
	v.size = n
	return nil
}

// expand makes room for count more elements, doubling the capacity until it
// is sufficient.
func (v *Vector[T]) expand(count int) {
	target := v.size + count
	capacity := len(v.elements)
	if target <= capacity {
		return
	}
	for capacity < target {
		capacity = max(1, capacity*2)
	}
	v.reallocate(capacity)
}

func (v *Vector[T]) reallocate(capacity int) {
	oldCapacity := len(v.elements)
	elements := make([]T, capacity)
	copy(elements, v.elements[:v.size])
	v.elements = elements

	v.config.Logger.Debug("vector reallocated from %d to %d slots", oldCapacity, capacity)
	v.config.Observer.Reallocated(oldCapacity, capacity)
}

// shiftRight opens a gap of count slots at index, growing the buffer first if
// needed. The gap holds stale values until the caller overwrites it.
func (v *Vector[T]) shiftRight(index, count int) {
	v.expand(count)
	copy(v.elements[index+count:v.size+count], v.elements[index:v.size])
	v.size += count
}

// shiftLeft closes a gap of count slots at index and zeroes the vacated tail.
func (v *Vector[T]) shiftLeft(index, count int) {
	copy(v.elements[index:], v.elements[index+count:v.size])
	clear(v.elements[v.size-count : v.size])
	v.size -= count
}

// normalize translates a negative index into its from-the-end equivalent.
func (v *Vector[T]) normalize(index int) int {
	if index < 0 {
		return v.size + index
	}
	return index
}

// validateIndex normalizes index and checks it addresses an element.
func (v *Vector[T]) validateIndex(index int) (int, error) {
	index = v.normalize(index)
	if index < 0 || index >= v.size {
		return index, &collections.IndexError{Index: index}
	}
	return index, nil
}

// validateBound normalizes index and checks it is a position between
// elements, so size itself is accepted.
func (v *Vector[T]) validateBound(index int) (int, error) {
	index = v.normalize(index)
	if index < 0 || index > v.size {
		return index, &collections.IndexError{Index: index}
	}
	return index, nil
}

// validateRange normalizes a [begin, end) pair. end < begin is collapsed to an
// empty range at begin.
func (v *Vector[T]) validateRange(begin, end int) (int, int, error) {
	begin, err := v.validateBound(begin)
	if err != nil {
		return 0, 0, err
	}
	end, err = v.validateBound(end)
	if err != nil {
		return 0, 0, err
	}
	return begin, max(begin, end), nil
}
