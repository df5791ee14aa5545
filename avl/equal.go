// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Equal - true if both trees have the same shape with the same keys
// and cached heights node for node
//
// two trees holding the same keys in different shapes are not equal,
// compare the All sequences for that
func (tree *Tree[K]) Equal(other *Tree[K]) bool {
	if nil == other {
		return false
	}
	return equal(tree.root, other.root)
}

func equal[K cmp.Ordered](p *Node[K], q *Node[K]) bool {
	if nil == p || nil == q {
		return p == q
	}
	return 0 == cmp.Compare(p.key, q.key) &&
		p.height == q.height &&
		equal(p.left, q.left) &&
		equal(p.right, q.right)
}
