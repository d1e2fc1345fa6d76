// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vector

import "github.com/luxfi/collections"

// Get returns the element at index.
func (v *Vector[T]) Get(index int) (T, error) {
	index, err := v.validateIndex(index)
	if err != nil {
		var zero T
		return zero, err
	}
	return v.elements[index], nil
}

// TryGet returns the element at index and whether index was valid.
func (v *Vector[T]) TryGet(index int) (T, bool) {
	value, err := v.Get(index)
	return value, err == nil
}

// Set replaces the element at index.
func (v *Vector[T]) Set(index int, value T) error {
	index, err := v.validateIndex(index)
	if err != nil {
		return err
	}
	v.elements[index] = value
	return nil
}

// Front returns the first element.
func (v *Vector[T]) Front() (T, error) {
	value, ok := v.TryFront()
	if !ok {
		return value, collections.ErrEmptyCollection
	}
	return value, nil
}

// TryFront returns the first element and whether the vector was non-empty.
func (v *Vector[T]) TryFront() (T, bool) {
	if v.size == 0 {
		var zero T
		return zero, false
	}
	return v.elements[0], true
}

// Back returns the last element.
func (v *Vector[T]) Back() (T, error) {
	value, ok := v.TryBack()
	if !ok {
		return value, collections.ErrEmptyCollection
	}
	return value, nil
}

// TryBack returns the last element and whether the vector was non-empty.
func (v *Vector[T]) TryBack() (T, bool) {
	if v.size == 0 {
		var zero T
		return zero, false
	}
	return v.elements[v.size-1], true
}

// PushBack appends value. Amortized O(1).
func (v *Vector[T]) PushBack(value T) {
	v.expand(1)
	v.elements[v.size] = value
	v.size++
}

// PushFront prepends value. O(n).
func (v *Vector[T]) PushFront(value T) {
	v.shiftRight(0, 1)
	v.elements[0] = value
}

// PopBack removes and returns the last element.
func (v *Vector[T]) PopBack() (T, error) {
	value, ok := v.TryPopBack()
	if !ok {
		return value, collections.ErrEmptyCollection
	}
	return value, nil
}

// TryPopBack removes and returns the last element if there is one.
func (v *Vector[T]) TryPopBack() (T, bool) {
	if v.size == 0 {
		var zero T
		return zero, false
	}
	v.size--
	value := v.elements[v.size]
	var zero T
	v.elements[v.size] = zero
	return value, true
}

// PopFront removes and returns the first element. O(n).
func (v *Vector[T]) PopFront() (T, error) {
	value, ok := v.TryPopFront()
	if !ok {
		return value, collections.ErrEmptyCollection
	}
	return value, nil
}

// TryPopFront removes and returns the first element if there is one.
func (v *Vector[T]) TryPopFront() (T, bool) {
	if v.size == 0 {
		var zero T
		return zero, false
	}
	value := v.elements[0]
	v.shiftLeft(0, 1)
	return value, true
}
