// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
	"fmt"

	"github.com/xlab/treeprint"
)

// Outline - the tree drawn as an indented outline, left sub-tree
// first
//
//	4 [ht=2]
//	├── L 2 [ht=1]
//	│   └── L 1 [ht=0]
//	└── R 5 [ht=0]
func (tree *Tree[K]) Outline() string {
	if nil == tree.root {
		return "empty tree\n"
	}
	t := treeprint.NewWithRoot(label(tree.root, none))
	outline(t, tree.root)
	return t.String()
}

func label[K cmp.Ordered](p *Node[K], br branch) string {
	switch br {
	case left:
		return fmt.Sprintf("L %v [ht=%d]", p.key, p.height)
	case right:
		return fmt.Sprintf("R %v [ht=%d]", p.key, p.height)
	default:
		return fmt.Sprintf("%v [ht=%d]", p.key, p.height)
	}
}

func outline[K cmp.Ordered](t treeprint.Tree, p *Node[K]) {
	for _, c := range []struct {
		node *Node[K]
		br   branch
	}{
		{p.left, left},
		{p.right, right},
	} {
		switch {
		case nil == c.node:
		case nil == c.node.left && nil == c.node.right:
			t.AddNode(label(c.node, c.br))
		default:
			outline(t.AddBranch(label(c.node, c.br)), c.node)
		}
	}
}
