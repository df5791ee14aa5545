// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Node - a node in the tree, owning its two sub-trees
type Node[K cmp.Ordered] struct {
	left   *Node[K] // left sub-tree
	right  *Node[K] // right sub-tree
	key    K        // key part for ordering
	height int      // leaf = 0
	nodes  int      // nodes in this sub-tree, including this one
}

// one edge of a root to node path
type step[K cmp.Ordered] struct {
	node *Node[K]
	br   branch // none for the final node of the path
}

func newNode[K cmp.Ordered](key K) *Node[K] {
	return &Node[K]{
		key:    key,
		height: 0,
		nodes:  1,
	}
}

// height of a possibly missing sub-tree
func height[K cmp.Ordered](p *Node[K]) int {
	if nil == p {
		return -1
	}
	return p.height
}

func nodes[K cmp.Ordered](p *Node[K]) int {
	if nil == p {
		return 0
	}
	return p.nodes
}

// recompute the cached values from the children, which must already
// be correct
func (p *Node[K]) resetHeight() {
	p.height = 1 + max(height(p.left), height(p.right))
	p.nodes = 1 + nodes(p.left) + nodes(p.right)
}

// Imbalance - left height minus right height
//
// positive is left heavy, negative is right heavy
func (p *Node[K]) Imbalance() int {
	return height(p.left) - height(p.right)
}

// internal: binary search descent
func (p *Node[K]) find(key K) *Node[K] {
	for nil != p {
		switch cmp.Compare(key, p.key) {
		case -1:
			p = p.left
		case +1:
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// internal: the edges from this node down to the node holding key,
// the last entry being the target itself with branch: none
//
// returns nil if key is not in the sub-tree
func (p *Node[K]) findPath(key K) []step[K] {
	path := []step[K]{}
	for nil != p {
		switch cmp.Compare(key, p.key) {
		case -1:
			path = append(path, step[K]{node: p, br: left})
			p = p.left
		case +1:
			path = append(path, step[K]{node: p, br: right})
			p = p.right
		default:
			return append(path, step[K]{node: p, br: none})
		}
	}
	return nil
}
