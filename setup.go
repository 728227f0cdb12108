// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Tree - type to hold the root node of a tree
type Tree struct {
	root *Node
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root: nil,
	}
}

// IsEmpty - true if tree contains no nodes
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Count - number of nodes currently in the tree
//
// no separate counter is kept, the count is derived by a full
// traversal
func (tree *Tree) Count() int {
	n := 0
	for p := tree.First(); nil != p; p = p.Next() {
		n += 1
	}
	return n
}

// Key - read the key from a node item
func (p *Node) Key() Item {
	return p.key
}

// Parent - return parent node of a node, nil only for the root
func (p *Node) Parent() *Node {
	return p.up
}

// LeftChild - return the left sub-tree of a node or nil
func (p *Node) LeftChild() *Node {
	return p.left
}

// RightChild - return the right sub-tree of a node or nil
func (p *Node) RightChild() *Node {
	return p.right
}

// Depth - get the depth of a node
func (p *Node) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node) GetChildrenByDepth(depth uint) []*Node {
	nodes := []*Node{}

	if depth == 0 {
		nodes = []*Node{p}
	} else {
		left := p.left
		right := p.right
		if left != nil {
			nodes = append(nodes, left.GetChildrenByDepth(depth-1)...)
		}

		if right != nil {
			nodes = append(nodes, right.GetChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}
