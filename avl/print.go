// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
	"fmt"
	"io"
	"strings"
)

// to control the print routine and to record path directions
type branch int

const (
	none  branch = iota
	left  branch = iota
	right branch = iota
)

// String - pre-order dump, one node per line indented by depth
//
//	4[ht=2]
//	 L2[ht=1]
//	  L1[ht=0]
func (tree *Tree[K]) String() string {
	if nil == tree.root {
		return "empty tree"
	}
	lines := []string{}
	dump(tree.root, none, 0, &lines)
	return strings.Join(lines, "\n")
}

func dump[K cmp.Ordered](p *Node[K], br branch, depth int, lines *[]string) {
	t := ""
	switch br {
	case left:
		t = "L"
	case right:
		t = "R"
	}
	*lines = append(*lines, fmt.Sprintf("%s%s%v[ht=%d]", strings.Repeat(" ", depth), t, p.key, p.height))
	if nil != p.left {
		dump(p.left, left, depth+1, lines)
	}
	if nil != p.right {
		dump(p.right, right, depth+1, lines)
	}
}

// Print - display an ASCII graphic representation of the tree
// returns the maximum depth of the tree
func (tree *Tree[K]) Print(w io.Writer) int {
	return printTree(w, tree.root, "", none)
}

// internal print - returns the maximum depth of the tree
func printTree[K cmp.Ordered](w io.Writer, tree *Node[K], prefix string, br branch) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, tree.right, prefix+t, right)
	}
	switch br {
	case none:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%v %+2d/%d [%d]\n", tree.key, tree.Imbalance(), tree.height, tree.nodes)
	if nil != tree.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, tree.left, prefix+t, left)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
