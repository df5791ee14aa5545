// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/bitmark-inc/logger"
)

// Tree - type to hold the root node of a tree
type Tree[K cmp.Ordered] struct {
	root  *Node[K]
	count int
	log   *logger.L
}

// New - create an initially empty tree
func New[K cmp.Ordered]() *Tree[K] {
	return &Tree[K]{
		root:  nil,
		count: 0,
	}
}

// SetLog - attach a logger channel to trace rotations and plucks,
// nil disables tracing
func (tree *Tree[K]) SetLog(log *logger.L) {
	tree.log = log
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K]) Count() int {
	return tree.count
}

// Height - height of the root node, zero for both an empty tree and
// a single node
func (tree *Tree[K]) Height() int {
	if nil == tree.root {
		return 0
	}
	return tree.root.height
}

// Root - return the root node of the tree
func (tree *Tree[K]) Root() *Node[K] {
	return tree.root
}

// GetChildrenByDepth - all the nodes that are depth levels below p,
// in key order
func (p *Node[K]) GetChildrenByDepth(depth uint) []*Node[K] {
	level := []*Node[K]{p}
	for ; depth > 0 && 0 != len(level); depth -= 1 {
		next := make([]*Node[K], 0, 2*len(level))
		for _, n := range level {
			if nil != n.left {
				next = append(next, n.left)
			}
			if nil != n.right {
				next = append(next, n.right)
			}
		}
		level = next
	}
	return level
}

// Widths - number of nodes at each depth, starting with the root
func (tree *Tree[K]) Widths() []int {
	widths := []int{}
	if nil == tree.root {
		return widths
	}
	for d := 0; d <= tree.root.height; d += 1 {
		widths = append(widths, len(tree.root.GetChildrenByDepth(uint(d))))
	}
	return widths
}

// Key - read the key from a node item
func (p *Node[K]) Key() K {
	return p.key
}

// Left - the left sub-tree of a node
func (p *Node[K]) Left() *Node[K] {
	return p.left
}

// Right - the right sub-tree of a node
func (p *Node[K]) Right() *Node[K] {
	return p.right
}

// Height - cached height of a node
func (p *Node[K]) Height() int {
	return p.height
}

// Nodes - number of nodes in the sub-tree rooted at this node
func (p *Node[K]) Nodes() int {
	return p.nodes
}

// internal logging that is silent without a channel
func (tree *Tree[K]) tracef(format string, arguments ...interface{}) {
	if nil != tree.log {
		tree.log.Tracef(format, arguments...)
	}
}

func (tree *Tree[K]) debugf(format string, arguments ...interface{}) {
	if nil != tree.log {
		tree.log.Debugf(format, arguments...)
	}
}
