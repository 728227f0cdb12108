// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - remove one node matching the key
//
// returns false, without modifying the tree, if the key is not
// present; when duplicates exist a single node is removed per call
func (tree *Tree) Delete(key Item) bool {
	p := tree.Search(key)
	if nil == p {
		return false
	}
	tree.deleteNode(p)
	return true
}

// internal delete, p must be a node of this tree
func (tree *Tree) deleteNode(p *Node) {
	// a node with two children first trades places with its in-order
	// successor, after which it has at most one child
	if nil != p.left && nil != p.right {
		tree.swapSuccessor(p)
	}

	if nil != p.left {
		tree.spliceOut(p, p.left)
	} else if nil != p.right {
		tree.spliceOut(p, p.right)
	} else {
		tree.deleteLeaf(p)
	}
	freeNode(p) // return detached node to pool
}

// splice the sole child c into p's position
func (tree *Tree) spliceOut(p *Node, c *Node) {
	c.up = p.up
	if nil == p.up {
		tree.root = c
		return
	}
	if p == p.up.left {
		p.up.left = c
	} else {
		p.up.right = c
	}
	tree.update(c, -1)
}

// detach a childless node from its parent
func (tree *Tree) deleteLeaf(p *Node) {
	parent := p.up
	if nil == parent {
		tree.root = nil
		return
	}
	if p == parent.left {
		parent.left = nil
		parent.balance -= 1
	} else {
		parent.right = nil
		parent.balance += 1
	}
	switch parent.balance {
	case 1, -1:
		// the parent's height is unchanged, nothing above can tell
	default:
		tree.update(parent, -1)
	}
}

// swapSuccessor - exchange p with the minimum of its right sub-tree
//
// a positional exchange: links and balance factors swap but keys stay
// with their nodes, so outside references into the tree remain valid
func (tree *Tree) swapSuccessor(p *Node) {
	s := p.right.First()

	if s.up == p {
		// s is the direct right child of p
		p.up, s.up = s, p.up
		p.right, s.right = s.right, p
	} else {
		p.up, s.up = s.up, p.up
		p.right, s.right = s.right, p.right
		p.up.left = p // s was its parent's left child
		s.right.up = s
	}

	if nil == s.up {
		tree.root = s
	} else if p == s.up.left {
		s.up.left = s
	} else {
		s.up.right = s
	}

	p.left, s.left = s.left, p.left // s had no left child

	if nil != p.left {
		p.left.up = p
	}
	if nil != p.right {
		p.right.up = p
	}
	if nil != s.left {
		s.left.up = s
	}

	p.balance, s.balance = s.balance, p.balance
}
