// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
	"fmt"

	"github.com/bitmark-inc/zree/fault"
)

// Check - verify key order, cached heights and node counts, balance
// and the tree count
//
// returns nil or an error wrapping fault.ErrInvalidStructure that
// describes the first inconsistency found
func (tree *Tree[K]) Check() error {
	n, err := check(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fmt.Errorf("%w: count: %d  actual nodes: %d", fault.ErrInvalidStructure, tree.count, n)
	}
	return nil
}

// internal: consistency checker, returns the number of nodes
//
// equal keys may sit on either side after rotations and plucks, so
// the bounds are inclusive
func check[K cmp.Ordered](p *Node[K], low *K, high *K) (int, error) {
	if nil == p {
		return 0, nil
	}
	if nil != low && cmp.Less(p.key, *low) {
		return 0, fmt.Errorf("%w: key: %v below: %v", fault.ErrInvalidStructure, p.key, *low)
	}
	if nil != high && cmp.Less(*high, p.key) {
		return 0, fmt.Errorf("%w: key: %v above: %v", fault.ErrInvalidStructure, p.key, *high)
	}

	nl, err := check(p.left, low, &p.key)
	if nil != err {
		return 0, err
	}
	nr, err := check(p.right, &p.key, high)
	if nil != err {
		return 0, err
	}

	if h := 1 + max(height(p.left), height(p.right)); h != p.height {
		return 0, fmt.Errorf("%w: key: %v  height: %d  expected: %d", fault.ErrInvalidStructure, p.key, p.height, h)
	}
	if n := 1 + nl + nr; n != p.nodes {
		return 0, fmt.Errorf("%w: key: %v  nodes: %d  expected: %d", fault.ErrInvalidStructure, p.key, p.nodes, n)
	}
	if b := p.Imbalance(); b < -1 || b > 1 {
		return 0, fmt.Errorf("%w: key: %v  imbalance: %+d", fault.ErrInvalidStructure, p.key, b)
	}
	return p.nodes, nil
}
