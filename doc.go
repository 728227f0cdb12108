// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with the addition of parent
// pointers to allow iteration through the nodes and range traversal
// anchored at any node
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Balance factors are maintained incrementally: every insert and
// delete walks back up the parent chain adjusting balances and
// rotates as soon as a node goes outside ±1, heights are never
// recomputed by scanning sub-trees.
//
// Keys are ordered by a caller supplied Compare and equal keys are
// allowed: inserting an already present key adds a second node to the
// right of the existing one, it does not overwrite.
package avl
