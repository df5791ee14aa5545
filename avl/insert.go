// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Insert - insert a new node into the tree
//
// duplicate keys are kept, each in a node of its own
func (tree *Tree[K]) Insert(key K) {
	tree.root = tree.insert(key, tree.root)
	tree.count += 1
	tree.debugf("insert: %v  count: %d  height: %d", key, tree.count, tree.root.height)
}

// internal routine for insert
// returns the possibly updated root of the sub-tree
func (tree *Tree[K]) insert(key K, p *Node[K]) *Node[K] {
	if nil == p {
		return newNode(key)
	}
	if cmp.Less(key, p.key) {
		p.left = tree.insert(key, p.left)
	} else { // equal keys to the right
		p.right = tree.insert(key, p.right)
	}
	p.resetHeight()
	return tree.rebalance(p)
}
