// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
	"iter"

	"github.com/bitmark-inc/zree/fault"
)

// First - return the node with the lowest key value
func (tree *Tree[K]) First() *Node[K] {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (tree *Node[K]) first() *Node[K] {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// Last - return the node with the highest key value
func (tree *Tree[K]) Last() *Node[K] {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (tree *Node[K]) last() *Node[K] {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}

// Minimum - the lowest key or fault.ErrEmptyCollection
func (tree *Tree[K]) Minimum() (K, error) {
	p := tree.First()
	if nil == p {
		var zero K
		return zero, fault.ErrEmptyCollection
	}
	return p.key, nil
}

// Maximum - the highest key or fault.ErrEmptyCollection
func (tree *Tree[K]) Maximum() (K, error) {
	p := tree.Last()
	if nil == p {
		var zero K
		return zero, fault.ErrEmptyCollection
	}
	return p.key, nil
}

// Iterator - in-order traversal of a tree
//
// the stack holds the nodes whose key has not been returned yet and
// whose far side sub-tree has not been visited
type Iterator[K cmp.Ordered] struct {
	stack   []*Node[K]
	reverse bool
}

// Iterator - cursor that returns the keys in ascending order
func (tree *Tree[K]) Iterator() *Iterator[K] {
	it := &Iterator[K]{}
	it.push(tree.root)
	return it
}

// ReverseIterator - cursor that returns the keys in descending order
func (tree *Tree[K]) ReverseIterator() *Iterator[K] {
	it := &Iterator[K]{reverse: true}
	it.push(tree.root)
	return it
}

// stack p and its chain of near side children
func (it *Iterator[K]) push(p *Node[K]) {
	for nil != p {
		it.stack = append(it.stack, p)
		if it.reverse {
			p = p.right
		} else {
			p = p.left
		}
	}
}

// Next - the next key, false once all keys have been returned
func (it *Iterator[K]) Next() (K, bool) {
	n := len(it.stack)
	if 0 == n {
		var zero K
		return zero, false
	}
	p := it.stack[n-1]
	it.stack = it.stack[:n-1]
	if it.reverse {
		it.push(p.left)
	} else {
		it.push(p.right)
	}
	return p.key, true
}

// All - the keys in ascending order
//
// each range over the result starts a fresh traversal
func (tree *Tree[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		it := tree.Iterator()
		for key, ok := it.Next(); ok; key, ok = it.Next() {
			if !yield(key) {
				return
			}
		}
	}
}

// Backward - the keys in descending order
func (tree *Tree[K]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		it := tree.ReverseIterator()
		for key, ok := it.Next(); ok; key, ok = it.Next() {
			if !yield(key) {
				return
			}
		}
	}
}
