// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest key value in the whole tree
func (tree *Tree) First() *Node {
	return tree.root.First()
}

// Last - return the node with the highest key value in the whole tree
func (tree *Tree) Last() *Node {
	return tree.root.Last()
}

// First - lowest node in the sub-tree anchored at p
func (p *Node) First() *Node {
	if p == nil {
		return nil
	}
	for p.left != nil {
		p = p.left
	}
	return p
}

// Last - highest node in the sub-tree anchored at p
func (p *Node) Last() *Node {
	if p == nil {
		return nil
	}
	for p.right != nil {
		p = p.right
	}
	return p
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes
//
// purely structural, no keys are compared, so equal keys are stepped
// through one by one
func (p *Node) Next() *Node {
	if p.right != nil {
		return p.right.First()
	}
	for p.up != nil && p == p.up.right {
		p = p.up
	}
	return p.up
}

// Prev - given a node, return the node with the next lowest key value
// or nil if no more nodes
func (p *Node) Prev() *Node {
	if p.left != nil {
		return p.left.Last()
	}
	for p.up != nil && p == p.up.left {
		p = p.up
	}
	return p.up
}

// Iterator - a lazy ordered traversal over some part of a tree
//
// Next returns successive nodes, then nil once the sequence is
// exhausted; Reset rewinds to the starting position
//
// the tree must not be modified while an iterator is in use
type Iterator struct {
	begin   func() *Node
	step    func(*Node) *Node
	current *Node
	started bool
}

// Next - return the next node of the sequence or nil at the end
func (it *Iterator) Next() *Node {
	if !it.started {
		it.started = true
		it.current = it.begin()
	} else if nil != it.current {
		it.current = it.step(it.current)
	}
	return it.current
}

// Reset - rewind the iterator to its starting position
func (it *Iterator) Reset() {
	it.started = false
	it.current = nil
}

// Ascending - all nodes of the tree in ascending key order
func (tree *Tree) Ascending() *Iterator {
	return &Iterator{
		begin: tree.First,
		step:  (*Node).Next,
	}
}

// Descending - all nodes of the tree in descending key order
func (tree *Tree) Descending() *Iterator {
	return &Iterator{
		begin: tree.Last,
		step:  (*Node).Prev,
	}
}

// Ascending - the sub-tree anchored at p in ascending key order
func (p *Node) Ascending() *Iterator {
	end := p.Last()
	return &Iterator{
		begin: p.First,
		step: func(q *Node) *Node {
			if q == end {
				return nil
			}
			return q.Next()
		},
	}
}

// Descending - the sub-tree anchored at p in descending key order
func (p *Node) Descending() *Iterator {
	end := p.First()
	return &Iterator{
		begin: p.Last,
		step: func(q *Node) *Node {
			if q == end {
				return nil
			}
			return q.Prev()
		},
	}
}

// LeftDescending - every node of the whole tree ordered before p,
// highest first
//
// the sequence is p's left sub-tree descending, then each ancestor
// holding p in its right sub-tree together with that ancestor's own
// left sub-tree, so the whole tree is covered without restarting from
// the root
func (p *Node) LeftDescending() *Iterator {
	return &Iterator{
		begin: p.Prev,
		step:  (*Node).Prev,
	}
}

// RightAscending - every node of the whole tree ordered after p,
// lowest first
func (p *Node) RightAscending() *Iterator {
	return &Iterator{
		begin: p.Next,
		step:  (*Node).Next,
	}
}
