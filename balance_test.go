// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avl"
)

type intItem int

func (i intItem) Compare(x interface{}) int {
	j := x.(intItem)
	switch {
	case i < j:
		return -1
	case i > j:
		return +1
	default:
		return 0
	}
}

func buildTree(keys ...int) *avl.Tree {
	tree := avl.New()
	for _, k := range keys {
		tree.Insert(intItem(k))
	}
	return tree
}

func ascendingKeys(tree *avl.Tree) []int {
	keys := []int{}
	it := tree.Ascending()
	for p := it.Next(); nil != p; p = it.Next() {
		keys = append(keys, int(p.Key().(intItem)))
	}
	return keys
}

func TestInsertBalancedShape(t *testing.T) {
	tree := buildTree(5, 3, 8, 1, 4, 7, 9)

	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, ascendingKeys(tree))
	require.True(t, tree.CheckUp())
	require.True(t, tree.CheckBalance())

	// seven nodes fit in three levels, well inside the AVL bound
	assert.Empty(t, tree.Root().GetChildrenByDepth(3))
}

func TestSingleLeftRotation(t *testing.T) {
	tree := buildTree(1, 2, 3)

	root := tree.Root()
	require.NotNil(t, root)
	assert.Equal(t, intItem(2), root.Key())

	require.NotNil(t, root.LeftChild())
	require.NotNil(t, root.RightChild())
	assert.Equal(t, intItem(1), root.LeftChild().Key())
	assert.Equal(t, intItem(3), root.RightChild().Key())

	assert.Nil(t, root.LeftChild().LeftChild())
	assert.Nil(t, root.LeftChild().RightChild())
	assert.Nil(t, root.RightChild().LeftChild())
	assert.Nil(t, root.RightChild().RightChild())

	require.True(t, tree.CheckUp())
	require.True(t, tree.CheckBalance())
}

func TestDeleteRootWithTwoChildren(t *testing.T) {
	tree := buildTree(5, 3, 8, 1, 4, 7, 9)

	root := tree.Root()
	require.NotNil(t, root)
	require.NotNil(t, root.LeftChild())
	require.NotNil(t, root.RightChild())

	successor := root.Next()
	require.NotNil(t, successor)

	require.True(t, tree.Delete(root.Key()))

	// the successor node itself takes the root position, nodes are
	// relocated, never copied
	assert.Same(t, successor, tree.Root())

	assert.Equal(t, []int{1, 3, 4, 7, 8, 9}, ascendingKeys(tree))
	require.True(t, tree.CheckUp())
	require.True(t, tree.CheckBalance())
}

func TestRoundTrip(t *testing.T) {
	tree := buildTree(5, 3, 8)

	p := tree.Insert(intItem(4))
	require.NotNil(t, p)

	found := tree.Search(intItem(4))
	require.NotNil(t, found)
	assert.Equal(t, intItem(4), found.Key())
	assert.Same(t, p, found)

	require.True(t, tree.Delete(intItem(4)))
	assert.Nil(t, tree.Search(intItem(4)))
}

func TestCardinality(t *testing.T) {
	tree := avl.New()

	inserts := []int{10, 4, 4, 17, 9, 22, 4, 31, 1, 17}
	for _, k := range inserts {
		tree.Insert(intItem(k))
	}
	assert.Equal(t, len(inserts), tree.Count())

	deletes := []int{4, 17, 4, 31}
	for _, k := range deletes {
		require.True(t, tree.Delete(intItem(k)))
	}
	assert.Equal(t, len(inserts)-len(deletes), tree.Count())

	require.True(t, tree.CheckUp())
	require.True(t, tree.CheckBalance())
}

func TestNodeDepth(t *testing.T) {
	tree := buildTree(1, 2, 3, 4, 5, 6, 7)

	root := tree.Root()
	require.NotNil(t, root)
	assert.Equal(t, uint(0), root.Depth())
	assert.Nil(t, root.Parent())

	first := tree.First()
	require.NotNil(t, first)
	assert.Equal(t, uint(2), first.Depth())
	assert.Same(t, root, first.Parent().Parent())
}

func TestEmptyTree(t *testing.T) {
	tree := avl.New()

	assert.True(t, tree.IsEmpty())
	assert.Nil(t, tree.Search(intItem(1)))
	assert.False(t, tree.Delete(intItem(1)))
	assert.Nil(t, tree.First())
	assert.Nil(t, tree.Last())
	assert.Nil(t, tree.Root())
	assert.Equal(t, 0, tree.Count())

	assert.Nil(t, tree.Ascending().Next())
	assert.Nil(t, tree.Descending().Next())
}

// sorted input is the worst case for an unbalanced tree, the AVL
// property must keep the height logarithmic
func TestSortedInsertHeight(t *testing.T) {
	tree := avl.New()
	for k := 0; k < 1024; k += 1 {
		tree.Insert(intItem(k))
	}

	require.True(t, tree.CheckUp())
	require.True(t, tree.CheckBalance())

	// 1.44·log2(1024+2) ≈ 14.4 levels
	assert.Empty(t, tree.Root().GetChildrenByDepth(15))

	for k := 0; k < 1024; k += 1 {
		require.True(t, tree.Delete(intItem(k)))
	}
	assert.True(t, tree.IsEmpty())
}
