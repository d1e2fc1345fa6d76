// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package collectiontest provides a conformance suite shared by every
// container in this module.
package collectiontest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/collections"
)

// Container is the capability set exercised by TestSuite.
type Container interface {
	collections.Collection[int]
	collections.Iterable[int]
	collections.Predicates[int]
}

// TestSuite runs a comprehensive test suite against any Container
// implementation. newFn must build a container holding elems in the order
// given; the suite only passes strictly ascending elements. cloneFn must
// return an independent copy.
func TestSuite[C Container](t *testing.T, newFn func(elems ...int) C, cloneFn func(C) C) {
	t.Run("Empty", func(t *testing.T) {
		testEmpty(t, newFn())
	})
	t.Run("Size", func(t *testing.T) {
		testSize(t, newFn(1, 2, 3))
	})
	t.Run("Clear", func(t *testing.T) {
		testClear(t, newFn(1, 2, 3))
	})
	t.Run("ElementsIsCopy", func(t *testing.T) {
		testElementsIsCopy(t, newFn(1, 2, 3))
	})
	t.Run("RoundTrip", func(t *testing.T) {
		testRoundTrip(t, newFn(10, 20, 30, 40), newFn)
	})
	t.Run("CloneIsIndependent", func(t *testing.T) {
		testCloneIsIndependent(t, newFn(1, 2, 3), cloneFn)
	})
	t.Run("Iteration", func(t *testing.T) {
		testIteration(t, newFn(1, 2, 3))
	})
	t.Run("IterationStopsEarly", func(t *testing.T) {
		testIterationStopsEarly(t, newFn(1, 2, 3))
	})
	t.Run("NestedIteration", func(t *testing.T) {
		testNestedIteration(t, newFn(1, 2, 3))
	})
	t.Run("Each", func(t *testing.T) {
		testEach(t, newFn(1, 2, 3))
	})
	t.Run("Predicates", func(t *testing.T) {
		testPredicates(t, newFn(1, 2, 3), newFn())
	})
}

// testEmpty tests a freshly built empty container
func testEmpty(t *testing.T, c Container) {
	require := require.New(t)

	require.Zero(c.Size())
	require.True(c.IsEmpty())
	require.NotNil(c.Elements())
	require.Empty(c.Elements())
}

// testSize tests Size and IsEmpty on a populated container
func testSize(t *testing.T, c Container) {
	require := require.New(t)

	require.Equal(3, c.Size())
	require.False(c.IsEmpty())
	require.Equal([]int{1, 2, 3}, c.Elements())
}

// testClear tests that Clear empties the container
func testClear(t *testing.T, c Container) {
	require := require.New(t)

	c.Clear()
	require.Zero(c.Size())
	require.True(c.IsEmpty())
	require.Empty(c.Elements())
}

// testElementsIsCopy tests that the result of Elements is detached
func testElementsIsCopy(t *testing.T, c Container) {
	require := require.New(t)

	elements := c.Elements()
	elements[0] = 100
	require.Equal([]int{1, 2, 3}, c.Elements())
}

// testRoundTrip tests rebuilding a container from its elements
func testRoundTrip[C Container](t *testing.T, c C, newFn func(elems ...int) C) {
	require := require.New(t)

	rebuilt := newFn(c.Elements()...)
	require.Equal(c.Size(), rebuilt.Size())
	require.Equal(c.Elements(), rebuilt.Elements())
}

// testCloneIsIndependent tests that mutating a clone leaves the original alone
func testCloneIsIndependent[C Container](t *testing.T, c C, cloneFn func(C) C) {
	require := require.New(t)

	clone := cloneFn(c)
	require.Equal(c.Elements(), clone.Elements())

	clone.Clear()
	require.True(clone.IsEmpty())
	require.Equal([]int{1, 2, 3}, c.Elements())
}

// testIteration tests that All and Values visit every element in order
func testIteration(t *testing.T, c Container) {
	require := require.New(t)

	var (
		indices []int
		values  []int
	)
	for i, value := range c.All() {
		indices = append(indices, i)
		values = append(values, value)
	}
	require.Equal([]int{0, 1, 2}, indices)
	require.Equal([]int{1, 2, 3}, values)

	values = values[:0]
	for value := range c.Values() {
		values = append(values, value)
	}
	require.Equal([]int{1, 2, 3}, values)
}

// testIterationStopsEarly tests that breaking out of a range loop is honored
func testIterationStopsEarly(t *testing.T, c Container) {
	require := require.New(t)

	var values []int
	for value := range c.Values() {
		values = append(values, value)
		if value == 2 {
			break
		}
	}
	require.Equal([]int{1, 2}, values)
}

// testNestedIteration tests independent iterators over one container
func testNestedIteration(t *testing.T, c Container) {
	require := require.New(t)

	var output []int
	for range c.Values() {
		for value := range c.Values() {
			output = append(output, value)
		}
	}
	require.Equal([]int{1, 2, 3, 1, 2, 3, 1, 2, 3}, output)
}

// testEach tests that Each visits every element in order
func testEach(t *testing.T, c Container) {
	require := require.New(t)

	var calls []int
	c.Each(func(value int) {
		calls = append(calls, value)
	})
	require.Equal([]int{1, 2, 3}, calls)
}

// testPredicates tests AllMatch and AnyMatch, including on an empty container
func testPredicates(t *testing.T, c Container, empty Container) {
	require := require.New(t)

	positive := func(value int) bool { return value > 0 }
	even := func(value int) bool { return value%2 == 0 }
	large := func(value int) bool { return value > 10 }

	require.True(c.AllMatch(positive))
	require.False(c.AllMatch(even))
	require.True(c.AnyMatch(even))
	require.False(c.AnyMatch(large))

	require.True(empty.AllMatch(large))
	require.False(empty.AnyMatch(positive))
}
