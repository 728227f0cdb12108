// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// rotateLeft - promote the right child of p into p's position
//
// balance factors are adjusted incrementally, never recomputed from
// heights
func (tree *Tree) rotateLeft(p *Node) {
	q := p.right
	if nil == q {
		panic("avl: rotate left: no right child")
	}

	// q's left sub-tree moves under p
	p.right = q.left
	if nil != p.right {
		p.right.up = p
	}

	// q takes p's place
	q.up = p.up
	if nil == q.up {
		tree.root = q
	} else if p == q.up.left {
		q.up.left = q
	} else {
		q.up.right = q
	}

	// p moves left of q
	q.left = p
	p.up = q

	p.balance += 1 - min(q.balance, 0)
	q.balance += 1 + max(p.balance, 0)
}

// rotateRight - promote the left child of p into p's position
func (tree *Tree) rotateRight(p *Node) {
	q := p.left
	if nil == q {
		panic("avl: rotate right: no left child")
	}

	// q's right sub-tree moves under p
	p.left = q.right
	if nil != p.left {
		p.left.up = p
	}

	// q takes p's place
	q.up = p.up
	if nil == q.up {
		tree.root = q
	} else if p == q.up.left {
		q.up.left = q
	} else {
		q.up.right = q
	}

	// p moves right of q
	q.right = p
	p.up = q

	p.balance -= 1 + max(q.balance, 0)
	q.balance -= 1 - min(p.balance, 0)
}

// rebalance - restore the AVL condition at p after its balance has
// gone outside ±1, returns the node now occupying p's position
//
// a single rotation pair always suffices for a tree that was balanced
// before the triggering operation, the loops are defensive
func (tree *Tree) rebalance(p *Node) *Node {
	top := p

	for p.balance > 1 { // left heavy
		if p.left.balance < 0 {
			tree.rotateLeft(p.left) // left-right case
		}
		tree.rotateRight(p)
		top = p.up
	}

	for p.balance < -1 { // right heavy
		if p.right.balance > 0 {
			tree.rotateRight(p.right) // right-left case
		}
		tree.rotateLeft(p)
		top = p.up
	}

	return top
}
