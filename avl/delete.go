// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/zree/fault"
)

// Delete - removes one occurrence of key from the tree
//
// returns fault.ErrKeyNotFound, leaving the tree untouched, if the
// key is not present
func (tree *Tree[K]) Delete(key K) error {
	if nil == tree.root {
		return fault.ErrKeyNotFound
	}
	path := tree.root.findPath(key)
	if nil == path {
		return fault.ErrKeyNotFound
	}

	// the remaining path is root → parent of q
	last := len(path) - 1
	q := path[last].node
	path = path[:last]

	r := (*Node[K])(nil)
	switch {
	case nil != q.left && nil != q.right:
		// take from the taller side
		if q.Imbalance() > 0 {
			_, r = tree.pluck(q, false)
		} else {
			_, r = tree.pluck(q, true)
		}
	case nil != q.left:
		r = q.left
	default:
		r = q.right // or nil for a leaf
	}

	for i := len(path) - 1; i >= 0; i -= 1 {
		p := path[i].node
		if left == path[i].br {
			p.left = r
		} else {
			p.right = r
		}
		p.resetHeight()
		r = tree.rebalance(p)
	}

	tree.root = r
	tree.count -= 1
	tree.debugf("delete: %v  count: %d", key, tree.count)
	return nil
}

// PluckSuccessor - replace the root key by its in-order successor,
// removing the successor's node from the tree
//
// returns the new root key, or fault.ErrNoSuccessor if the root has
// no right sub-tree
func (tree *Tree[K]) PluckSuccessor() (K, error) {
	key, root, err := tree.PluckSuccessorAsRoot(tree.root)
	if nil != err {
		return key, err
	}
	tree.root = root
	tree.count -= 1
	return key, nil
}

// PluckPredecessor - replace the root key by its in-order
// predecessor, removing the predecessor's node from the tree
//
// returns the new root key, or fault.ErrNoPredecessor if the root
// has no left sub-tree
func (tree *Tree[K]) PluckPredecessor() (K, error) {
	key, root, err := tree.PluckPredecessorAsRoot(tree.root)
	if nil != err {
		return key, err
	}
	tree.root = root
	tree.count -= 1
	return key, nil
}

// PluckSuccessorAsRoot - move the successor key of p into p and drop
// the successor's node
//
// returns the plucked key and the new top of the sub-tree, which the
// caller must link in place of p; count and the ancestors of p are
// not updated
func (tree *Tree[K]) PluckSuccessorAsRoot(p *Node[K]) (K, *Node[K], error) {
	if nil == p || nil == p.right {
		var zero K
		return zero, p, fault.ErrNoSuccessor
	}
	key, top := tree.pluck(p, true)
	return key, top, nil
}

// PluckPredecessorAsRoot - mirror of PluckSuccessorAsRoot
func (tree *Tree[K]) PluckPredecessorAsRoot(p *Node[K]) (K, *Node[K], error) {
	if nil == p || nil == p.left {
		var zero K
		return zero, p, fault.ErrNoPredecessor
	}
	key, top := tree.pluck(p, false)
	return key, top, nil
}

// internal pluck: p must have a child on the chosen side
//
// the neighbour is the far end of the chain that first steps away
// from p and then keeps stepping back towards p
func (tree *Tree[K]) pluck(p *Node[K], successor bool) (K, *Node[K]) {
	toward := func(n *Node[K]) *Node[K] {
		if successor {
			return n.left
		}
		return n.right
	}

	next := p.left
	if successor {
		next = p.right
	}

	ancestors := []*Node[K]{}
	for nil != toward(next) {
		ancestors = append(ancestors, next)
		next = toward(next)
	}

	key := next.key
	p.key = key

	// neighbour can only have a child on the side away from p
	r := next.left
	if successor {
		r = next.right
	}

	for i := len(ancestors) - 1; i >= 0; i -= 1 {
		a := ancestors[i]
		if successor {
			a.left = r
		} else {
			a.right = r
		}
		a.resetHeight()
		r = tree.rebalance(a)
	}

	if successor {
		p.right = r
	} else {
		p.left = r
	}
	p.resetHeight()

	tree.tracef("pluck successor: %v  key: %v", successor, key)
	return key, tree.rebalance(p)
}
