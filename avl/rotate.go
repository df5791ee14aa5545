// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// single left rotation, p must have a right child
//
//	  p              r
//	 / \            / \
//	a   r    →     p   c
//	   / \        / \
//	  b   c      a   b
func (tree *Tree[K]) rotateLeft(p *Node[K]) *Node[K] {
	r := p.right
	p.right = r.left
	r.left = p

	p.resetHeight()
	r.resetHeight()

	tree.tracef("rotate left at: %v → %v", p.key, r.key)
	return r
}

// single right rotation, mirror of rotateLeft
func (tree *Tree[K]) rotateRight(p *Node[K]) *Node[K] {
	l := p.left
	p.left = l.right
	l.right = p

	p.resetHeight()
	l.resetHeight()

	tree.tracef("rotate right at: %v → %v", p.key, l.key)
	return l
}

// restore the balance of p whose children are already balanced and
// return the new top of the sub-tree for the caller to link in
//
// the outer branches cover RR and LL, the inner rotations turn RL
// and LR into those
func (tree *Tree[K]) rebalance(p *Node[K]) *Node[K] {
	switch b := p.Imbalance(); {
	case b < -1: // right heavy
		if p.right.Imbalance() > 0 {
			p.right = tree.rotateRight(p.right)
		}
		return tree.rotateLeft(p)

	case b > 1: // left heavy
		if p.left.Imbalance() < 0 {
			p.left = tree.rotateLeft(p.left)
		}
		return tree.rotateRight(p)

	default:
		return p
	}
}
