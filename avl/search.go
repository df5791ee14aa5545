// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Search - find a specific item
//
// returns the node and its zero based in-order index or nil, -1 if
// the key is not in the tree
func (tree *Tree[K]) Search(key K) (*Node[K], int) {
	return search(key, tree.root, 0)
}

func search[K cmp.Ordered](key K, tree *Node[K], index int) (*Node[K], int) {
	if nil == tree {
		return nil, -1
	}

	switch cmp.Compare(tree.key, key) {
	case +1: // tree.key > key
		return search(key, tree.left, index)
	case -1: // tree.key < key
		return search(key, tree.right, index+nodes(tree.left)+1)
	default:
		return tree, index + nodes(tree.left)
	}
}

// Contains - true if at least one node holds key
func (tree *Tree[K]) Contains(key K) bool {
	if nil == tree.root {
		return false
	}
	return nil != tree.root.findPath(key)
}
