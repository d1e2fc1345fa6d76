// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package comparator provides total-order functions with a stable identity.
//
// Two containers are compatible only when they hold the same *Comparator
// value. Behaviorally equivalent comparators created separately are not
// compatible.
package comparator

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Func is a total order over T. It returns a negative number when a < b,
// zero when a == b and a positive number when a > b.
type Func[T any] func(a, b T) int

// Comparator is an identity token wrapping a Func.
type Comparator[T any] struct {
	name string
	fn   Func[T]
}

// New returns an anonymous comparator. Anonymous comparators can be used
// freely but cannot be restored by name.
func New[T any](fn Func[T]) *Comparator[T] {
	if fn == nil {
		panic("comparator: New called with nil func")
	}
	return &Comparator[T]{fn: fn}
}

// Compare orders a and b.
func (c *Comparator[T]) Compare(a, b T) int {
	return c.fn(a, b)
}

// Func returns the wrapped function.
func (c *Comparator[T]) Func() Func[T] {
	return c.fn
}

// Name returns the registered name, or "" for anonymous comparators.
func (c *Comparator[T]) Name() string {
	return c.name
}

func (c *Comparator[T]) String() string {
	if c.name == "" {
		return fmt.Sprintf("<anonymous %p>", c)
	}
	return c.name
}

// Natural returns the shared comparator for the natural order of T. Each
// distinct type T gets its own token, registered as natural[<pkgpath>.<type>]
// when that name is still free.
func Natural[T constraints.Ordered]() *Comparator[T] {
	return builtin(naturalKind, Func[T](cmp.Compare[T]))
}

// Reverse returns the shared comparator for the reverse natural order of T.
func Reverse[T constraints.Ordered]() *Comparator[T] {
	return builtin(reverseKind, Func[T](func(a, b T) int {
		return cmp.Compare(b, a)
	}))
}
