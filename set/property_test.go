// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package set

import (
	"math/rand/v2"
	"testing"

	"github.com/google/btree"
	"github.com/stretchr/testify/require"
)

const (
	propertyRounds = 200
	propertyDegree = 8
)

// randomMultiset returns up to n values drawn from a small range so that
// operands overlap and repeat.
func randomMultiset(r *rand.Rand, n int) []int {
	values := make([]int, r.IntN(n+1))
	for i := range values {
		values[i] = r.IntN(2 * n)
	}
	return values
}

func treeOf(values []int) *btree.BTreeG[int] {
	tree := btree.NewOrderedG[int](propertyDegree)
	for _, value := range values {
		tree.ReplaceOrInsert(value)
	}
	return tree
}

func ascending(tree *btree.BTreeG[int]) []int {
	out := make([]int, 0, tree.Len())
	tree.Ascend(func(item int) bool {
		out = append(out, item)
		return true
	})
	return out
}

// TestMergeWalkMatchesTree checks every merge walk against the same
// operation computed on ordered trees.
func TestMergeWalkMatchesTree(t *testing.T) {
	require := require.New(t)

	r := rand.New(rand.NewPCG(1, 2))
	for round := 0; round < propertyRounds; round++ {
		a := randomMultiset(r, 16)
		b := randomMultiset(r, 16)

		lhs, rhs := New(a...), New(b...)
		treeA, treeB := treeOf(a), treeOf(b)

		require.Equal(ascending(treeA), lhs.Elements(), "round %d", round)

		union := treeA.Clone()
		treeB.Ascend(func(item int) bool {
			union.ReplaceOrInsert(item)
			return true
		})
		intersect := btree.NewOrderedG[int](propertyDegree)
		diff := btree.NewOrderedG[int](propertyDegree)
		treeA.Ascend(func(item int) bool {
			if treeB.Has(item) {
				intersect.ReplaceOrInsert(item)
			} else {
				diff.ReplaceOrInsert(item)
			}
			return true
		})
		symmetricDiff := diff.Clone()
		treeB.Ascend(func(item int) bool {
			if !treeA.Has(item) {
				symmetricDiff.ReplaceOrInsert(item)
			}
			return true
		})

		result, err := lhs.Union(rhs)
		require.NoError(err)
		require.Equal(ascending(union), result.Elements(), "round %d", round)

		result, err = lhs.Intersect(rhs)
		require.NoError(err)
		require.Equal(ascending(intersect), result.Elements(), "round %d", round)

		result, err = lhs.Diff(rhs)
		require.NoError(err)
		require.Equal(ascending(diff), result.Elements(), "round %d", round)

		result, err = lhs.SymmetricDiff(rhs)
		require.NoError(err)
		require.Equal(ascending(symmetricDiff), result.Elements(), "round %d", round)

		isSubSet, err := lhs.IsSubSet(rhs)
		require.NoError(err)
		require.Equal(intersect.Len() == treeA.Len(), isSubSet, "round %d", round)

		isSuperSet, err := lhs.IsSuperSet(rhs)
		require.NoError(err)
		require.Equal(intersect.Len() == treeB.Len(), isSuperSet, "round %d", round)

		isEqual, err := lhs.IsEqualSet(rhs)
		require.NoError(err)
		require.Equal(isSubSet && isSuperSet, isEqual, "round %d", round)

		isIntersecting, err := lhs.IsIntersecting(rhs)
		require.NoError(err)
		require.Equal(intersect.Len() > 0, isIntersecting, "round %d", round)
	}
}

// TestAddRemoveMatchesTree applies random insertions and removals to a set
// and a tree and checks they hold the same elements throughout.
func TestAddRemoveMatchesTree(t *testing.T) {
	require := require.New(t)

	r := rand.New(rand.NewPCG(3, 4))
	s := New[int]()
	tree := btree.NewOrderedG[int](propertyDegree)
	for i := 0; i < 2000; i++ {
		value := r.IntN(64)
		if r.IntN(3) == 0 {
			_, existed := tree.Delete(value)
			require.Equal(existed, s.Remove(value))
		} else {
			_, existed := tree.ReplaceOrInsert(value)
			require.Equal(!existed, s.Add(value))
		}
		require.Equal(tree.Len(), s.Size())
		require.Equal(tree.Has(value), s.Contains(value))
	}
	require.Equal(ascending(tree), s.Elements())

	for !s.IsEmpty() {
		minimum, ok := tree.DeleteMin()
		require.True(ok)
		value, err := s.Pop()
		require.NoError(err)
		require.Equal(minimum, value)
	}
	require.Zero(tree.Len())
}
