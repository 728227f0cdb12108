// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - add a new node to the tree
//
// an equal key is placed in the right sub-tree of the existing node,
// duplicates are kept
func (tree *Tree) Insert(key Item) *Node {
	n := newNode(key)
	if nil == tree.root {
		tree.root = n
		return n
	}

	p := tree.root
descend:
	for {
		if p.key.Compare(key) > 0 { // p.key > key
			if nil == p.left {
				p.left = n
				break descend
			}
			p = p.left
		} else { // p.key <= key: equal keys go right
			if nil == p.right {
				p.right = n
				break descend
			}
			p = p.right
		}
	}
	n.up = p

	tree.update(n, +1)
	return n
}

// update - propagate a height change in the sub-tree at p up the
// parent chain, rebalancing on the way
//
// adjustment is +1 for an insertion below p and -1 for a deletion
//
// the continuation rules differ: an insertion propagates while the
// parent balance becomes non-zero (the sub-tree grew), a deletion
// propagates while it becomes exactly zero (the sub-tree shrank);
// both keep going on an overflow to ±2 so the next round trips the
// rebalance
func (tree *Tree) update(p *Node, adjustment int) {
	for nil != p {
		if p.balance > 1 || p.balance < -1 {
			p = tree.rebalance(p)
			if adjustment > 0 {
				// insertion: the rotation restored the old height
				return
			}
			if 0 != p.balance {
				// deletion: height preserved by the rotation
				return
			}
			// deletion: the sub-tree lost a level, keep going
		}

		parent := p.up
		if nil == parent {
			return
		}
		if p == parent.left {
			parent.balance += adjustment
		} else {
			parent.balance -= adjustment
		}

		if adjustment > 0 {
			if 0 == parent.balance {
				return // height unchanged above this point
			}
		} else if 1 == parent.balance || -1 == parent.balance {
			return // height unchanged above this point
		}
		p = parent
	}
}
