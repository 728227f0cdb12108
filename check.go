// Copyright (c) 2014-2016 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree) CheckUp() bool {
	return checkUp(tree.root, nil)
}

// internal: consistency checker
func checkUp(p *Node, up *Node) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		fmt.Printf("up pointer fail at node: %v\n", p.key)
		return false
	}
	if !checkUp(p.left, p) {
		return false
	}
	return checkUp(p.right, p)
}

// CheckBalance - verify every balance factor against a full height
// scan
//
// only for tests and diagnostics, normal operation never recomputes
// heights
func (tree *Tree) CheckBalance() bool {
	_, ok := checkBalance(tree.root)
	return ok
}

// internal: returns sub-tree height and validity
func checkBalance(p *Node) (int, bool) {
	if nil == p {
		return 0, true
	}
	lh, ok := checkBalance(p.left)
	if !ok {
		return 0, false
	}
	rh, ok := checkBalance(p.right)
	if !ok {
		return 0, false
	}
	if b := lh - rh; b != p.balance || b < -1 || b > 1 {
		fmt.Printf("balance fail at node: %v  stored: %d  actual: %d\n", p.key, p.balance, lh-rh)
		return 0, false
	}
	return 1 + max(lh, rh), true
}
