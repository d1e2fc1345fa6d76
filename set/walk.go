// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package set

import (
	"fmt"

	"github.com/luxfi/collections"
	"github.com/luxfi/collections/vector"
)

// Merge walk operation names, reported to the configured Observer.
const (
	OpEqual         = "equal"
	OpSuperSet      = "superset"
	OpSubSet        = "subset"
	OpProperSuper   = "proper_superset"
	OpProperSub     = "proper_subset"
	OpIntersecting  = "intersecting"
	OpUnion         = "union"
	OpIntersect     = "intersect"
	OpDiff          = "diff"
	OpSymmetricDiff = "symmetric_diff"
)

// membership records which operands hold an element visited by a walk.
type membership uint8

const (
	leftOnly membership = 1 << iota
	rightOnly
	inBoth
)

// counts tallies the elements visited by a walk per membership.
type counts struct {
	left, right, both int
}

func (c counts) steps() int {
	return c.left + c.right + c.both
}

// compatible returns an error unless other can be combined with s.
func (s *Set[T]) compatible(op string, other *Set[T]) error {
	if other == nil {
		return fmt.Errorf("%w: %s with nil set", collections.ErrInvalidArgument, op)
	}
	if other.cmp != s.cmp {
		s.config.Logger.Warn("refusing %s of sets ordered by %s and %s", op, s.cmp, other.cmp)
		return fmt.Errorf("%w: %s of sets ordered by %s and %s", collections.ErrIncompatibleSet, op, s.cmp, other.cmp)
	}
	return nil
}

// walk visits the union of s and other in ascending order, passing each
// element to visit along with the operands that hold it. Elements held by
// both are visited once, with the value taken from s. The walk stops early
// when visit returns false.
func (s *Set[T]) walk(op string, other *Set[T], visit func(value T, m membership) bool) counts {
	var (
		c     counts
		left  = s.elements.NewIterator()
		right = other.elements.NewIterator()

		hasLeft  = left.Next()
		hasRight = right.Next()
	)
	defer func() {
		s.config.Observer.Walked(op, c.steps())
	}()

	for hasLeft || hasRight {
		var (
			value T
			m     membership
		)
		switch {
		case !hasRight:
			value, m = left.Value(), leftOnly
		case !hasLeft:
			value, m = right.Value(), rightOnly
		default:
			switch order := s.cmp.Compare(left.Value(), right.Value()); {
			case order < 0:
				value, m = left.Value(), leftOnly
			case order > 0:
				value, m = right.Value(), rightOnly
			default:
				value, m = left.Value(), inBoth
			}
		}

		switch m {
		case leftOnly:
			c.left++
			hasLeft = left.Next()
		case rightOnly:
			c.right++
			hasRight = right.Next()
		default:
			c.both++
			hasLeft = left.Next()
			hasRight = right.Next()
		}
		if !visit(value, m) {
			break
		}
	}
	return c
}

// until returns a visitor that stops the walk at the first element whose
// membership is in stop.
func until[T any](stop membership) func(T, membership) bool {
	return func(_ T, m membership) bool {
		return m&stop == 0
	}
}

// relation runs a short-circuiting walk and returns its counts.
func (s *Set[T]) relation(op string, other *Set[T], stop membership) (counts, error) {
	if err := s.compatible(op, other); err != nil {
		return counts{}, err
	}
	return s.walk(op, other, until[T](stop)), nil
}

// IsEqualSet returns true if s and other hold the same elements.
func (s *Set[T]) IsEqualSet(other *Set[T]) (bool, error) {
	c, err := s.relation(OpEqual, other, leftOnly|rightOnly)
	return err == nil && c.left == 0 && c.right == 0, err
}

// IsSuperSet returns true if every element of other is in s.
func (s *Set[T]) IsSuperSet(other *Set[T]) (bool, error) {
	c, err := s.relation(OpSuperSet, other, rightOnly)
	return err == nil && c.right == 0, err
}

// IsSubSet returns true if every element of s is in other.
func (s *Set[T]) IsSubSet(other *Set[T]) (bool, error) {
	c, err := s.relation(OpSubSet, other, leftOnly)
	return err == nil && c.left == 0, err
}

// IsProperSuperSet returns true if s is a superset of other and holds at
// least one element other does not.
func (s *Set[T]) IsProperSuperSet(other *Set[T]) (bool, error) {
	c, err := s.relation(OpProperSuper, other, rightOnly)
	return c.right == 0 && c.left > 0, err
}

// IsProperSubSet returns true if s is a subset of other and other holds at
// least one element s does not.
func (s *Set[T]) IsProperSubSet(other *Set[T]) (bool, error) {
	c, err := s.relation(OpProperSub, other, leftOnly)
	return c.left == 0 && c.right > 0, err
}

// IsIntersecting returns true if s and other share at least one element.
func (s *Set[T]) IsIntersecting(other *Set[T]) (bool, error) {
	c, err := s.relation(OpIntersecting, other, inBoth)
	return c.both > 0, err
}

// collect runs a full walk and gathers the elements whose membership is in
// keep, in ascending order.
func (s *Set[T]) collect(op string, other *Set[T], keep membership) (*vector.Vector[T], error) {
	if err := s.compatible(op, other); err != nil {
		return nil, err
	}
	out := vector.NewWithConfig[T](s.config)
	s.walk(op, other, func(value T, m membership) bool {
		if m&keep != 0 {
			out.PushBack(value)
		}
		return true
	})
	return out, nil
}

func (s *Set[T]) combine(op string, other *Set[T], keep membership) (*Set[T], error) {
	out, err := s.collect(op, other, keep)
	if err != nil {
		return nil, err
	}
	return s.derive(out), nil
}

func (s *Set[T]) combineInPlace(op string, other *Set[T], keep membership) error {
	out, err := s.collect(op, other, keep)
	if err != nil {
		return err
	}
	s.elements = out
	return nil
}

// Union returns a new set holding the elements of both s and other.
func (s *Set[T]) Union(other *Set[T]) (*Set[T], error) {
	return s.combine(OpUnion, other, leftOnly|rightOnly|inBoth)
}

// UnionInPlace adds every element of other to s.
func (s *Set[T]) UnionInPlace(other *Set[T]) error {
	return s.combineInPlace(OpUnion, other, leftOnly|rightOnly|inBoth)
}

// Intersect returns a new set holding the elements common to s and other.
func (s *Set[T]) Intersect(other *Set[T]) (*Set[T], error) {
	return s.combine(OpIntersect, other, inBoth)
}

// IntersectInPlace removes every element of s that is not in other.
func (s *Set[T]) IntersectInPlace(other *Set[T]) error {
	return s.combineInPlace(OpIntersect, other, inBoth)
}

// Diff returns a new set holding the elements of s that are not in other.
func (s *Set[T]) Diff(other *Set[T]) (*Set[T], error) {
	return s.combine(OpDiff, other, leftOnly)
}

// DiffInPlace removes every element of other from s.
func (s *Set[T]) DiffInPlace(other *Set[T]) error {
	return s.combineInPlace(OpDiff, other, leftOnly)
}

// SymmetricDiff returns a new set holding the elements in exactly one of s
// and other.
func (s *Set[T]) SymmetricDiff(other *Set[T]) (*Set[T], error) {
	return s.combine(OpSymmetricDiff, other, leftOnly|rightOnly)
}

// SymmetricDiffInPlace replaces s with the elements in exactly one of s and
// other.
func (s *Set[T]) SymmetricDiffInPlace(other *Set[T]) error {
	return s.combineInPlace(OpSymmetricDiff, other, leftOnly|rightOnly)
}
